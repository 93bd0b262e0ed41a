package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/example/vocabquiz/pkg/models"
)

// ErrSessionLocked is returned when the session row lock is held by another
// transaction. Callers may retry with backoff.
var ErrSessionLocked = errors.New("session row is locked")

// pq error code for lock_not_available, raised by FOR UPDATE NOWAIT
const pqLockNotAvailable = "55P03"

// SessionRepository handles database operations for quiz sessions
type SessionRepository struct{}

// NewSessionRepository creates a new repository instance
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{}
}

// Get returns the session for a user and word list without locking it.
func (r *SessionRepository) Get(ctx context.Context, q sqlx.QueryerContext, userID, listID int64) (*models.QuizSession, error) {
	var session models.QuizSession
	err := sqlx.GetContext(ctx, q, &session,
		"SELECT * FROM quiz_sessions WHERE user_id = $1 AND word_list_id = $2", userID, listID)
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// GetForUpdate loads the session row under an exclusive row lock. On Postgres
// this uses FOR UPDATE NOWAIT so lock contention surfaces as ErrSessionLocked
// instead of blocking the request; SQLite serializes writers on its single
// connection, so no lock clause is needed there.
func (r *SessionRepository) GetForUpdate(ctx context.Context, tx *sqlx.Tx, userID, listID int64) (*models.QuizSession, error) {
	query := "SELECT * FROM quiz_sessions WHERE user_id = $1 AND word_list_id = $2"
	if tx.DriverName() == "postgres" {
		query += " FOR UPDATE NOWAIT"
	}

	var session models.QuizSession
	err := tx.GetContext(ctx, &session, query, userID, listID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && string(pqErr.Code) == pqLockNotAvailable {
			return nil, ErrSessionLocked
		}
		return nil, err
	}
	return &session, nil
}

// Create inserts a new session with a fresh public id and default direction.
func (r *SessionRepository) Create(ctx context.Context, q sqlx.ExtContext, userID, listID int64) (*models.QuizSession, error) {
	publicID := uuid.NewString()
	_, err := q.ExecContext(ctx, `
		INSERT INTO quiz_sessions (public_id, user_id, word_list_id, direction, last_asked_words)
		VALUES ($1, $2, $3, $4, '')
	`, publicID, userID, listID, models.DirectionNormal)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %v", err)
	}

	var session models.QuizSession
	err = sqlx.GetContext(ctx, q, &session, "SELECT * FROM quiz_sessions WHERE public_id = $1", publicID)
	if err != nil {
		return nil, fmt.Errorf("failed to load created session: %v", err)
	}
	return &session, nil
}

// Update persists the mutable session fields and stamps updated_at.
func (r *SessionRepository) Update(ctx context.Context, q sqlx.ExtContext, session *models.QuizSession) error {
	_, err := q.ExecContext(ctx, `
		UPDATE quiz_sessions SET
			direction = $1,
			current_translation_id = $2,
			last_asked_words = $3,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
	`, session.Direction, session.CurrentTranslationID, session.LastAskedRaw, session.ID)
	if err != nil {
		return fmt.Errorf("failed to update session: %v", err)
	}
	return nil
}
