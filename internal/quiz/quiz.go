// Package quiz implements the adaptive scheduling engine: it decides which
// translation pair a user is asked next, validates submitted answers, and
// moves each pair through the mastery ladder.
package quiz

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/internal/database"
)

const (
	// MaxFocusWords caps how many translations may hold Level1 at once per
	// user and word list.
	MaxFocusWords = 20
	// CorrectAnswersToMaster is the aggregate correct count (both directions)
	// required to promote a translation one level.
	CorrectAnswersToMaster = 3
	// MaxMistakesBeforeDegradation is the consecutive-mistake count in one
	// direction that degrades a translation one level.
	MaxMistakesBeforeDegradation = 3
)

// Rand is the randomness source used for candidate tie-breaking and pool
// picks. Production uses the process-global math/rand source; tests inject a
// seeded *rand.Rand for deterministic orderings.
type Rand interface {
	Intn(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) Intn(n int) int   { return rand.Intn(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// Engine orchestrates question selection, answer evaluation and level
// progression over an injected database handle.
type Engine struct {
	db  *sqlx.DB
	rnd Rand

	lists    *database.WordListRepository
	progress *database.ProgressRepository
	sessions *database.SessionRepository
	stats    *database.StatRepository
}

// NewEngine creates an engine on top of an open database connection.
func NewEngine(db *sqlx.DB) *Engine {
	return &Engine{
		db:       db,
		rnd:      globalRand{},
		lists:    database.NewWordListRepository(),
		progress: database.NewProgressRepository(),
		sessions: database.NewSessionRepository(),
		stats:    database.NewStatRepository(),
	}
}

// transact runs fn inside a transaction, rolling back on error or panic.
func (e *Engine) transact(ctx context.Context, fn func(tx *sqlx.Tx) error) error {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %v", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %v", err)
	}
	return nil
}
