package database

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

	"github.com/example/vocabquiz/pkg/models"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := Connect(Config{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func seedTranslations(t *testing.T, db *sqlx.DB, n int) (int64, []int64) {
	t.Helper()
	res, err := db.Exec(
		"INSERT INTO word_lists (name, source_language, target_language) VALUES ('test', 'English', 'Russian')")
	require.NoError(t, err)
	listID, err := res.LastInsertId()
	require.NoError(t, err)

	ids := make([]int64, 0, n)
	for i := 0; i < n; i++ {
		res, err := db.Exec(
			"INSERT INTO translations (word_list_id, source_word, target_word) VALUES ($1, 'a', 'b')", listID)
		require.NoError(t, err)
		id, err := res.LastInsertId()
		require.NoError(t, err)
		ids = append(ids, id)
	}
	return listID, ids
}

func TestProgressDefaultsToLevel0(t *testing.T) {
	db := newTestDB(t)
	_, ids := seedTranslations(t, db, 1)
	repo := NewProgressRepository()
	ctx := context.Background()

	status, err := repo.GetStatus(ctx, db, 1, ids[0])
	require.NoError(t, err)
	require.Equal(t, models.Level0, status)
}

func TestSetStatusUpserts(t *testing.T) {
	db := newTestDB(t)
	listID, ids := seedTranslations(t, db, 3)
	repo := NewProgressRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetStatus(ctx, db, 1, ids[0], models.Level1))
	require.NoError(t, repo.SetStatus(ctx, db, 1, ids[0], models.Level2))

	status, err := repo.GetStatus(ctx, db, 1, ids[0])
	require.NoError(t, err)
	require.Equal(t, models.Level2, status)

	// A single row per (user, translation) despite the double write.
	var rows int
	require.NoError(t, db.Get(&rows, "SELECT COUNT(*) FROM word_progress"))
	require.Equal(t, 1, rows)

	count, err := repo.CountByStatus(ctx, db, 1, listID, models.Level0)
	require.NoError(t, err)
	require.Equal(t, 2, count, "untouched translations still count as Level0")
}

func TestCandidateIDsTreatMissingAsLevel0(t *testing.T) {
	db := newTestDB(t)
	listID, ids := seedTranslations(t, db, 3)
	repo := NewProgressRepository()
	ctx := context.Background()

	require.NoError(t, repo.SetStatus(ctx, db, 1, ids[1], models.Level1))

	level0, err := repo.CandidateIDs(ctx, db, 1, listID, models.Level0)
	require.NoError(t, err)
	require.ElementsMatch(t, []int64{ids[0], ids[2]}, level0)

	level1, err := repo.CandidateIDs(ctx, db, 1, listID, models.Level1)
	require.NoError(t, err)
	require.Equal(t, []int64{ids[1]}, level1)

	// Another user's progress is invisible.
	other, err := repo.CandidateIDs(ctx, db, 2, listID, models.Level1)
	require.NoError(t, err)
	require.Empty(t, other)
}

func TestRecordAnswerAccumulates(t *testing.T) {
	db := newTestDB(t)
	listID, ids := seedTranslations(t, db, 1)
	sessions := NewSessionRepository()
	stats := NewStatRepository()
	ctx := context.Background()

	session, err := sessions.Create(ctx, db, 1, listID)
	require.NoError(t, err)

	stat, err := stats.RecordAnswer(ctx, db, session.ID, ids[0], models.DirectionNormal, false)
	require.NoError(t, err)
	require.Equal(t, 1, stat.Attempts)
	require.Equal(t, 1, stat.Incorrect)
	require.Equal(t, 1, stat.ConsecutiveMistakes)

	stat, err = stats.RecordAnswer(ctx, db, session.ID, ids[0], models.DirectionNormal, false)
	require.NoError(t, err)
	require.Equal(t, 2, stat.ConsecutiveMistakes)

	// A correct answer clears the consecutive-mistake streak.
	stat, err = stats.RecordAnswer(ctx, db, session.ID, ids[0], models.DirectionNormal, true)
	require.NoError(t, err)
	require.Equal(t, 3, stat.Attempts)
	require.Equal(t, 1, stat.Correct)
	require.Equal(t, 2, stat.Incorrect)
	require.Zero(t, stat.ConsecutiveMistakes)

	// Directions keep separate rows; SumCorrect spans both.
	_, err = stats.RecordAnswer(ctx, db, session.ID, ids[0], models.DirectionReverse, true)
	require.NoError(t, err)
	sum, err := stats.SumCorrect(ctx, db, session.ID, ids[0])
	require.NoError(t, err)
	require.Equal(t, 2, sum)

	require.NoError(t, stats.ResetCounters(ctx, db, session.ID, ids[0]))
	sum, err = stats.SumCorrect(ctx, db, session.ID, ids[0])
	require.NoError(t, err)
	require.Zero(t, sum)

	errors, err := stats.ErrorCounts(ctx, db, session.ID)
	require.NoError(t, err)
	require.Equal(t, 2, errors[ids[0]], "incorrect history survives the counter reset")
}
