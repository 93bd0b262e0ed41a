package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/pkg/models"
)

// ProgressRepository handles database operations for per-user word progress.
// A translation without a progress row is treated as Level0 everywhere.
type ProgressRepository struct{}

// NewProgressRepository creates a new repository instance
func NewProgressRepository() *ProgressRepository {
	return &ProgressRepository{}
}

// GetStatus returns the mastery level for a user and translation, defaulting
// to Level0 when no record exists.
func (r *ProgressRepository) GetStatus(ctx context.Context, q sqlx.QueryerContext, userID, translationID int64) (models.Status, error) {
	var status models.Status
	err := sqlx.GetContext(ctx, q, &status,
		"SELECT status FROM word_progress WHERE user_id = $1 AND translation_id = $2", userID, translationID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Level0, nil
	}
	if err != nil {
		return models.Level0, fmt.Errorf("failed to get word progress: %v", err)
	}
	return status, nil
}

// SetStatus upserts the mastery level for a user and translation.
func (r *ProgressRepository) SetStatus(ctx context.Context, q sqlx.ExtContext, userID, translationID int64, status models.Status) error {
	_, err := q.ExecContext(ctx, `
		INSERT INTO word_progress (user_id, translation_id, status)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, translation_id) DO UPDATE SET
			status = EXCLUDED.status,
			updated_at = CURRENT_TIMESTAMP
	`, userID, translationID, status)
	if err != nil {
		return fmt.Errorf("failed to set word progress: %v", err)
	}
	return nil
}

// CountByStatus returns how many translations of a list currently hold the
// given status for a user. Missing progress rows count as Level0.
func (r *ProgressRepository) CountByStatus(ctx context.Context, q sqlx.QueryerContext, userID, listID int64, status models.Status) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, `
		SELECT COUNT(*)
		FROM translations t
		LEFT JOIN word_progress wp ON wp.translation_id = t.id AND wp.user_id = $1
		WHERE t.word_list_id = $2 AND COALESCE(wp.status, 0) = $3
	`, userID, listID, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count by status: %v", err)
	}
	return count, nil
}

// CandidateIDs returns the ids of all translations in a list whose current
// status equals the given status, treating "no record" as Level0.
func (r *ProgressRepository) CandidateIDs(ctx context.Context, q sqlx.QueryerContext, userID, listID int64, status models.Status) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, q, &ids, `
		SELECT t.id
		FROM translations t
		LEFT JOIN word_progress wp ON wp.translation_id = t.id AND wp.user_id = $1
		WHERE t.word_list_id = $2 AND COALESCE(wp.status, 0) = $3
		ORDER BY t.id
	`, userID, listID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get candidate ids: %v", err)
	}
	return ids, nil
}

// RandomUnseenIDs returns up to limit translations of a list still at Level0
// for the user, in random order. Used to replenish the focus pool.
func (r *ProgressRepository) RandomUnseenIDs(ctx context.Context, q sqlx.QueryerContext, userID, listID int64, limit int) ([]int64, error) {
	var ids []int64
	err := sqlx.SelectContext(ctx, q, &ids, `
		SELECT t.id
		FROM translations t
		LEFT JOIN word_progress wp ON wp.translation_id = t.id AND wp.user_id = $1
		WHERE t.word_list_id = $2 AND COALESCE(wp.status, 0) = 0
		ORDER BY RANDOM()
		LIMIT $3
	`, userID, listID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get unseen words: %v", err)
	}
	return ids, nil
}

// StatusBuckets groups the translation ids of a list by their current status
// for a user.
func (r *ProgressRepository) StatusBuckets(ctx context.Context, q sqlx.QueryerContext, userID, listID int64) (map[models.Status][]int64, error) {
	rows, err := q.QueryxContext(ctx, `
		SELECT t.id, COALESCE(wp.status, 0) AS status
		FROM translations t
		LEFT JOIN word_progress wp ON wp.translation_id = t.id AND wp.user_id = $1
		WHERE t.word_list_id = $2
		ORDER BY t.id
	`, userID, listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get status buckets: %v", err)
	}
	defer rows.Close()

	buckets := map[models.Status][]int64{
		models.Level0: {},
		models.Level1: {},
		models.Level2: {},
		models.Level3: {},
	}
	for rows.Next() {
		var id int64
		var status models.Status
		if err := rows.Scan(&id, &status); err != nil {
			return nil, fmt.Errorf("failed to scan status bucket row: %v", err)
		}
		buckets[status] = append(buckets[status], id)
	}
	return buckets, rows.Err()
}
