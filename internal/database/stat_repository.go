package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/pkg/models"
)

// StatRepository handles database operations for per-session answer statistics
type StatRepository struct{}

// NewStatRepository creates a new repository instance
func NewStatRepository() *StatRepository {
	return &StatRepository{}
}

// RecordAnswer upserts the stat row for (session, translation, direction) and
// applies one answer to it: attempts always increment; a correct answer
// increments correct and clears consecutive_mistakes; an incorrect answer
// increments incorrect and consecutive_mistakes. Returns the updated row.
func (r *StatRepository) RecordAnswer(ctx context.Context, q sqlx.ExtContext, sessionID, translationID int64, direction models.Direction, correct bool) (*models.SessionStat, error) {
	correctInc, incorrectInc := 0, 1
	if correct {
		correctInc, incorrectInc = 1, 0
	}

	_, err := q.ExecContext(ctx, `
		INSERT INTO session_stats (
			session_id, translation_id, direction,
			attempts, correct, incorrect, consecutive_mistakes, last_answered_at
		) VALUES ($1, $2, $3, 1, $4, $5, $5, CURRENT_TIMESTAMP)
		ON CONFLICT (session_id, translation_id, direction) DO UPDATE SET
			attempts = session_stats.attempts + 1,
			correct = session_stats.correct + EXCLUDED.correct,
			incorrect = session_stats.incorrect + EXCLUDED.incorrect,
			consecutive_mistakes = CASE
				WHEN EXCLUDED.incorrect > 0 THEN session_stats.consecutive_mistakes + 1
				ELSE 0
			END,
			last_answered_at = CURRENT_TIMESTAMP
	`, sessionID, translationID, direction, correctInc, incorrectInc)
	if err != nil {
		return nil, fmt.Errorf("failed to record answer: %v", err)
	}

	var stat models.SessionStat
	err = sqlx.GetContext(ctx, q, &stat, `
		SELECT * FROM session_stats
		WHERE session_id = $1 AND translation_id = $2 AND direction = $3
	`, sessionID, translationID, direction)
	if err != nil {
		return nil, fmt.Errorf("failed to load session stat: %v", err)
	}
	return &stat, nil
}

// ErrorCounts returns the total incorrect count per translation across all
// directions of a session. Translations without stat rows are simply absent.
func (r *StatRepository) ErrorCounts(ctx context.Context, q sqlx.QueryerContext, sessionID int64) (map[int64]int, error) {
	rows, err := q.QueryxContext(ctx, `
		SELECT translation_id, COALESCE(SUM(incorrect), 0)
		FROM session_stats
		WHERE session_id = $1
		GROUP BY translation_id
	`, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get error counts: %v", err)
	}
	defer rows.Close()

	counts := make(map[int64]int)
	for rows.Next() {
		var id int64
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan error count row: %v", err)
		}
		counts[id] = count
	}
	return counts, rows.Err()
}

// SumCorrect returns the aggregate correct count for a translation across
// both directions within a session.
func (r *StatRepository) SumCorrect(ctx context.Context, q sqlx.QueryerContext, sessionID, translationID int64) (int, error) {
	var sum int
	err := sqlx.GetContext(ctx, q, &sum, `
		SELECT COALESCE(SUM(correct), 0)
		FROM session_stats
		WHERE session_id = $1 AND translation_id = $2
	`, sessionID, translationID)
	if err != nil {
		return 0, fmt.Errorf("failed to sum correct answers: %v", err)
	}
	return sum, nil
}

// ResetCounters clears correct and consecutive_mistakes for a translation
// across all directions of a session. Called after a level change; attempts
// and incorrect totals are kept as historical counters.
func (r *StatRepository) ResetCounters(ctx context.Context, q sqlx.ExtContext, sessionID, translationID int64) error {
	_, err := q.ExecContext(ctx, `
		UPDATE session_stats SET correct = 0, consecutive_mistakes = 0
		WHERE session_id = $1 AND translation_id = $2
	`, sessionID, translationID)
	if err != nil {
		return fmt.Errorf("failed to reset session stats: %v", err)
	}
	return nil
}
