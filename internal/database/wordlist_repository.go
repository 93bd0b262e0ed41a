package database

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/pkg/models"
)

// WordListRepository handles read-only access to the vocabulary content store.
// Lists and translations are authored by external tooling; the quiz engine
// never writes to these tables.
type WordListRepository struct{}

// NewWordListRepository creates a new repository instance
func NewWordListRepository() *WordListRepository {
	return &WordListRepository{}
}

// GetAll returns all word lists ordered by name.
func (r *WordListRepository) GetAll(ctx context.Context, q sqlx.QueryerContext) ([]models.WordList, error) {
	var lists []models.WordList
	err := sqlx.SelectContext(ctx, q, &lists, "SELECT * FROM word_lists ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to get word lists: %v", err)
	}
	return lists, nil
}

// GetByName returns a word list by its unique name.
func (r *WordListRepository) GetByName(ctx context.Context, q sqlx.QueryerContext, name string) (*models.WordList, error) {
	var list models.WordList
	err := sqlx.GetContext(ctx, q, &list, "SELECT * FROM word_lists WHERE name = $1", name)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// GetTranslations returns the translations of a list in authored order.
func (r *WordListRepository) GetTranslations(ctx context.Context, q sqlx.QueryerContext, listID int64) ([]models.Translation, error) {
	var translations []models.Translation
	err := sqlx.SelectContext(ctx, q, &translations,
		"SELECT * FROM translations WHERE word_list_id = $1 ORDER BY position, id", listID)
	if err != nil {
		return nil, fmt.Errorf("failed to get translations: %v", err)
	}
	return translations, nil
}

// GetTranslationByID returns a single translation pair.
func (r *WordListRepository) GetTranslationByID(ctx context.Context, q sqlx.QueryerContext, id int64) (*models.Translation, error) {
	var t models.Translation
	err := sqlx.GetContext(ctx, q, &t, "SELECT * FROM translations WHERE id = $1", id)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// CountTranslations returns the number of translation pairs in a list.
func (r *WordListRepository) CountTranslations(ctx context.Context, q sqlx.QueryerContext, listID int64) (int, error) {
	var count int
	err := sqlx.GetContext(ctx, q, &count, "SELECT COUNT(*) FROM translations WHERE word_list_id = $1", listID)
	if err != nil {
		return 0, fmt.Errorf("failed to count translations: %v", err)
	}
	return count, nil
}
