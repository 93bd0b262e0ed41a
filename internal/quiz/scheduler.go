package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/internal/database"
	"github.com/example/vocabquiz/pkg/models"
)

// StartOrGetSession returns the session for a user and word list, creating it
// on first access. Idempotent.
func (e *Engine) StartOrGetSession(ctx context.Context, userID int64, listName string) (*SessionState, error) {
	var state *SessionState
	err := e.transact(ctx, func(tx *sqlx.Tx) error {
		list, err := e.findList(ctx, tx, listName)
		if err != nil {
			return err
		}

		session, err := e.sessions.Get(ctx, tx, userID, list.ID)
		if errors.Is(err, sql.ErrNoRows) {
			session, err = e.sessions.Create(ctx, tx, userID, list.ID)
		}
		if err != nil {
			return err
		}

		state, err = e.sessionState(ctx, tx, session)
		return err
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// GetQuizState returns the current session state without taking the row lock.
func (e *Engine) GetQuizState(ctx context.Context, userID int64, listName string) (*SessionState, error) {
	list, err := e.findList(ctx, e.db, listName)
	if err != nil {
		return nil, err
	}

	session, err := e.sessions.Get(ctx, e.db, userID, list.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if err != nil {
		return nil, err
	}

	return e.sessionState(ctx, e.db, session)
}

// GetNextQuestion selects the next translation to ask and makes it the
// session's active question. The whole flow runs under the session row lock.
func (e *Engine) GetNextQuestion(ctx context.Context, userID int64, listName string) (*NextQuestion, error) {
	var next *NextQuestion
	err := e.transact(ctx, func(tx *sqlx.Tx) error {
		list, err := e.findList(ctx, tx, listName)
		if err != nil {
			return err
		}

		session, err := e.lockSession(ctx, tx, userID, list.ID)
		if err != nil {
			return err
		}

		next, err = e.nextQuestionLocked(ctx, tx, list, session)
		return err
	})
	if err != nil {
		return nil, err
	}
	// The exhausted outcome commits first: a reverse->normal auto-correction
	// made on the way must stick even when no candidate was found.
	if next.Exhausted {
		return nil, ErrNoMoreQuestions
	}
	return next, nil
}

// nextQuestionLocked runs the selection state machine for a locked session.
func (e *Engine) nextQuestionLocked(ctx context.Context, tx *sqlx.Tx, list *models.WordList, session *models.QuizSession) (*NextQuestion, error) {
	primary, fallback := models.Level1, models.Level2
	if session.Direction == models.DirectionReverse {
		// Reverse drills mastered-in-progress words first so Level2 words
		// get occasional reinforcement in the opposite direction.
		primary, fallback = models.Level2, models.Level1
	}

	id, ok, err := e.selectCandidate(ctx, tx, session, primary)
	if err != nil {
		return nil, err
	}
	if !ok {
		id, ok, err = e.selectCandidate(ctx, tx, session, fallback)
		if err != nil {
			return nil, err
		}
	}

	if !ok && session.Direction == models.DirectionNormal {
		if err := e.populateFocusWords(ctx, tx, session); err != nil {
			return nil, err
		}
		id, ok, err = e.selectCandidate(ctx, tx, session, primary)
		if err != nil {
			return nil, err
		}
	}

	if !ok && session.Direction == models.DirectionReverse {
		// One-way auto-correction: when reverse practice has starved but
		// Level2 words still exist, force the session back to normal and
		// give those words one more chance.
		level2, err := e.progress.CountByStatus(ctx, tx, session.UserID, session.WordListID, models.Level2)
		if err != nil {
			return nil, err
		}
		if level2 > 0 {
			session.Direction = models.DirectionNormal
			if err := e.sessions.Update(ctx, tx, session); err != nil {
				return nil, err
			}
			id, ok, err = e.selectCandidate(ctx, tx, session, models.Level2)
			if err != nil {
				return nil, err
			}
		}
	}

	if !ok {
		total, err := e.lists.CountTranslations(ctx, tx, list.ID)
		if err != nil {
			return nil, err
		}
		mastered, err := e.progress.CountByStatus(ctx, tx, session.UserID, list.ID, models.Level3)
		if err != nil {
			return nil, err
		}
		if total > 0 && mastered == total {
			return &NextQuestion{Completed: true, TotalWords: total, MasteredWords: mastered}, nil
		}
		return &NextQuestion{Exhausted: true}, nil
	}

	t, err := e.lists.GetTranslationByID(ctx, tx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to load selected translation %d: %v", id, err)
	}

	session.CurrentTranslationID = sql.NullInt64{Int64: id, Valid: true}
	session.PushAskedWord(id)
	if err := e.sessions.Update(ctx, tx, session); err != nil {
		return nil, err
	}

	word := t.SourceWord
	if session.Direction == models.DirectionReverse {
		word = t.TargetWord
	}
	return &NextQuestion{
		Question: &Question{
			TranslationID:  id,
			Word:           word,
			Direction:      session.Direction,
			SourceLanguage: list.SourceLanguage,
			TargetLanguage: list.TargetLanguage,
		},
	}, nil
}

// ToggleDirection flips the practice direction and clears the active question
// so the next call selects fresh. This is the only user-initiated direction
// change; no automatic flipping exists apart from the reverse starvation
// correction above.
func (e *Engine) ToggleDirection(ctx context.Context, userID int64, listName string) (*DirectionState, error) {
	var state *DirectionState
	err := e.transact(ctx, func(tx *sqlx.Tx) error {
		list, err := e.findList(ctx, tx, listName)
		if err != nil {
			return err
		}

		session, err := e.lockSession(ctx, tx, userID, list.ID)
		if err != nil {
			return err
		}

		session.Direction = session.Direction.Toggle()
		session.CurrentTranslationID = sql.NullInt64{}
		if err := e.sessions.Update(ctx, tx, session); err != nil {
			return err
		}

		buckets, err := e.progress.StatusBuckets(ctx, tx, session.UserID, session.WordListID)
		if err != nil {
			return err
		}
		state = &DirectionState{Direction: session.Direction, Buckets: buckets}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return state, nil
}

// populateFocusWords promotes random unseen (Level0) translations to Level1
// until the focus pool holds MaxFocusWords entries.
func (e *Engine) populateFocusWords(ctx context.Context, tx *sqlx.Tx, session *models.QuizSession) error {
	inFocus, err := e.progress.CountByStatus(ctx, tx, session.UserID, session.WordListID, models.Level1)
	if err != nil {
		return err
	}
	spaces := MaxFocusWords - inFocus
	if spaces <= 0 {
		return nil
	}

	ids, err := e.progress.RandomUnseenIDs(ctx, tx, session.UserID, session.WordListID, spaces)
	if err != nil {
		return err
	}
	for _, id := range ids {
		if err := e.progress.SetStatus(ctx, tx, session.UserID, id, models.Level1); err != nil {
			return err
		}
	}
	if len(ids) > 0 {
		log.Printf("focus pool for user %d list %d: promoted %d new words", session.UserID, session.WordListID, len(ids))
	}
	return nil
}

// findList resolves a word list by name, mapping absence to the taxonomy.
func (e *Engine) findList(ctx context.Context, q sqlx.QueryerContext, name string) (*models.WordList, error) {
	list, err := e.lists.GetByName(ctx, q, name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrWordListNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get word list: %v", err)
	}
	return list, nil
}

// lockSession loads the session under the exclusive row lock, mapping lock
// contention and absence to the taxonomy.
func (e *Engine) lockSession(ctx context.Context, tx *sqlx.Tx, userID, listID int64) (*models.QuizSession, error) {
	session, err := e.sessions.GetForUpdate(ctx, tx, userID, listID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSession
	}
	if errors.Is(err, database.ErrSessionLocked) {
		return nil, ErrSessionBusy
	}
	if err != nil {
		return nil, fmt.Errorf("failed to lock session: %v", err)
	}
	return session, nil
}

// sessionState builds the state payload shared by several operations.
func (e *Engine) sessionState(ctx context.Context, q sqlx.QueryerContext, session *models.QuizSession) (*SessionState, error) {
	buckets, err := e.progress.StatusBuckets(ctx, q, session.UserID, session.WordListID)
	if err != nil {
		return nil, err
	}

	state := &SessionState{
		SessionID: session.PublicID,
		Direction: session.Direction,
		Buckets:   buckets,
	}
	if session.CurrentTranslationID.Valid {
		id := session.CurrentTranslationID.Int64
		state.CurrentTranslationID = &id
	}
	return state, nil
}
