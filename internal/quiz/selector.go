package quiz

import (
	"context"
	"sort"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/pkg/models"
)

// hotPoolSize is how many of the top error-ranked candidates survive into
// the pool the next question is drawn from.
const hotPoolSize = 10

type candidate struct {
	id       int64
	errors   int
	tiebreak float64
}

// pickCandidate implements the error-weighted, recency-filtered draw over a
// candidate pool. currentID (0 when none) is excluded outright; ids in recent
// are a soft preference: they are filtered from the hot pool unless that
// would empty it. Returns false when no candidate remains.
func pickCandidate(ids []int64, errorCounts map[int64]int, currentID int64, recent []int64, rnd Rand) (int64, bool) {
	candidates := make([]candidate, 0, len(ids))
	for _, id := range ids {
		if id == currentID {
			continue
		}
		candidates = append(candidates, candidate{
			id:       id,
			errors:   errorCounts[id],
			tiebreak: rnd.Float64(),
		})
	}
	if len(candidates) == 0 {
		return 0, false
	}

	// Words answered incorrectly more often surface first; ties break on a
	// fresh random draw per call.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].errors != candidates[j].errors {
			return candidates[i].errors > candidates[j].errors
		}
		return candidates[i].tiebreak > candidates[j].tiebreak
	})

	hot := candidates
	if len(hot) > hotPoolSize {
		hot = hot[:hotPoolSize]
	}

	recentSet := make(map[int64]bool, len(recent))
	for _, id := range recent {
		recentSet[id] = true
	}
	pool := make([]candidate, 0, len(hot))
	for _, c := range hot {
		if !recentSet[c.id] {
			pool = append(pool, c)
		}
	}
	if len(pool) == 0 {
		// Recency never starves the session: fall back to the unfiltered
		// hot pool.
		pool = hot
	}

	return pool[rnd.Intn(len(pool))].id, true
}

// selectCandidate loads the candidate pool for the session and status and
// draws the next translation from it.
func (e *Engine) selectCandidate(ctx context.Context, tx *sqlx.Tx, session *models.QuizSession, status models.Status) (int64, bool, error) {
	ids, err := e.progress.CandidateIDs(ctx, tx, session.UserID, session.WordListID, status)
	if err != nil {
		return 0, false, err
	}
	if len(ids) == 0 {
		return 0, false, nil
	}

	counts, err := e.stats.ErrorCounts(ctx, tx, session.ID)
	if err != nil {
		return 0, false, err
	}

	var currentID int64
	if session.CurrentTranslationID.Valid {
		currentID = session.CurrentTranslationID.Int64
	}

	id, ok := pickCandidate(ids, counts, currentID, session.LastAskedWords(), e.rnd)
	return id, ok, nil
}
