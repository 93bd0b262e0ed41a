package quiz

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/example/vocabquiz/internal/answer"
	"github.com/example/vocabquiz/pkg/models"
)

// forceIncorrectAnswer, when non-empty, marks any submission equal to it as
// incorrect regardless of grammar evaluation. Only this package's tests set
// it, to exercise the degradation path deterministically.
var forceIncorrectAnswer string

// SubmitAnswer validates a submission against the active question, updates
// statistics and mastery levels, and returns the verdict together with the
// next question. The evaluation commits before the follow-up selection runs
// in its own transaction.
func (e *Engine) SubmitAnswer(ctx context.Context, userID int64, listName string, translationID int64, userAnswer, displayedWord string) (*AnswerResult, error) {
	var result *AnswerResult
	err := e.transact(ctx, func(tx *sqlx.Tx) error {
		list, err := e.findList(ctx, tx, listName)
		if err != nil {
			return err
		}

		session, err := e.lockSession(ctx, tx, userID, list.ID)
		if err != nil {
			return err
		}

		t, err := e.lists.GetTranslationByID(ctx, tx, translationID)
		if errors.Is(err, sql.ErrNoRows) {
			return ErrTranslationNotFound
		}
		if err != nil {
			return fmt.Errorf("failed to get translation: %v", err)
		}

		// Two independent staleness guards: the displayed word must match
		// the session's direction, and the submitted id must still be the
		// active question. They fail with different refresh hints.
		if displayedWord != "" {
			expected := t.SourceWord
			if session.Direction == models.DirectionReverse {
				expected = t.TargetWord
			}
			if displayedWord != expected {
				return ErrOutOfSync
			}
		}
		if !session.CurrentTranslationID.Valid || session.CurrentTranslationID.Int64 != translationID {
			return ErrStaleQuestion
		}

		correctAnswer := t.TargetWord
		if session.Direction == models.DirectionReverse {
			correctAnswer = t.SourceWord
		}

		correct := answer.IsCorrect(userAnswer, correctAnswer)
		if forceIncorrectAnswer != "" && strings.TrimSpace(userAnswer) == forceIncorrectAnswer {
			correct = false
		}

		stat, err := e.stats.RecordAnswer(ctx, tx, session.ID, translationID, session.Direction, correct)
		if err != nil {
			return err
		}

		levelChanged, err := e.applyProgression(ctx, tx, session, translationID, correct, stat)
		if err != nil {
			return err
		}

		buckets, err := e.progress.StatusBuckets(ctx, tx, session.UserID, session.WordListID)
		if err != nil {
			return err
		}

		message := "Correct!"
		if !correct {
			message = fmt.Sprintf("Wrong. The correct answer is: %s", correctAnswer)
		}
		result = &AnswerResult{
			Correct:       correct,
			Message:       message,
			SourceExample: t.SourceExample,
			TargetExample: t.TargetExample,
			LevelChanged:  levelChanged,
			Buckets:       buckets,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	next, err := e.GetNextQuestion(ctx, userID, listName)
	if errors.Is(err, ErrNoMoreQuestions) {
		next = &NextQuestion{Exhausted: true}
	} else if err != nil {
		return nil, err
	}
	result.Next = next
	return result, nil
}

// applyProgression applies the promotion and degradation rules after one
// recorded answer. Promotion needs CorrectAnswersToMaster aggregate correct
// answers across both directions; degradation needs
// MaxMistakesBeforeDegradation consecutive mistakes in the answered
// direction. A level change resets the translation's correctness counters and
// refills the focus pool when a word leaves it upward.
func (e *Engine) applyProgression(ctx context.Context, tx *sqlx.Tx, session *models.QuizSession, translationID int64, correct bool, stat *models.SessionStat) (bool, error) {
	status, err := e.progress.GetStatus(ctx, tx, session.UserID, translationID)
	if err != nil {
		return false, err
	}

	newStatus := status
	if correct {
		sum, err := e.stats.SumCorrect(ctx, tx, session.ID, translationID)
		if err != nil {
			return false, err
		}
		if sum >= CorrectAnswersToMaster && status < models.Level3 {
			newStatus = status.Next()
		}
	} else if stat.ConsecutiveMistakes >= MaxMistakesBeforeDegradation && status >= models.Level1 {
		newStatus = status.Prev()
	}

	if newStatus == status {
		return false, nil
	}

	if err := e.progress.SetStatus(ctx, tx, session.UserID, translationID, newStatus); err != nil {
		return false, err
	}
	if err := e.stats.ResetCounters(ctx, tx, session.ID, translationID); err != nil {
		return false, err
	}
	if newStatus == models.Level2 {
		// The word left the focus pool upward; backfill its slot.
		if err := e.populateFocusWords(ctx, tx, session); err != nil {
			return false, err
		}
	}
	return true, nil
}
