package models

import (
	"database/sql"
	"strconv"
	"strings"
	"time"
)

// Direction of practice within a session.
type Direction string

const (
	// DirectionNormal shows the source word and expects the target word.
	DirectionNormal Direction = "normal"
	// DirectionReverse shows the target word and expects the source word.
	DirectionReverse Direction = "reverse"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == DirectionNormal {
		return DirectionReverse
	}
	return DirectionNormal
}

// MaxLastAskedWords is the capacity of the recently-asked FIFO kept per session.
const MaxLastAskedWords = 7

// QuizSession is the live practice state for one user on one word list.
// At most one session exists per (user, word list) pair.
type QuizSession struct {
	ID                   int64         `json:"id" db:"id"`
	PublicID             string        `json:"public_id" db:"public_id"`
	UserID               int64         `json:"user_id" db:"user_id"`
	WordListID           int64         `json:"word_list_id" db:"word_list_id"`
	Direction            Direction     `json:"direction" db:"direction"`
	CurrentTranslationID sql.NullInt64 `json:"current_translation_id" db:"current_translation_id"`
	LastAskedRaw         string        `json:"-" db:"last_asked_words"`
	CreatedAt            time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time     `json:"updated_at" db:"updated_at"`
}

// LastAskedWords parses the persisted FIFO of recently asked translation ids,
// oldest first.
func (s *QuizSession) LastAskedWords() []int64 {
	if s.LastAskedRaw == "" {
		return nil
	}
	parts := strings.Split(s.LastAskedRaw, ",")
	ids := make([]int64, 0, len(parts))
	for _, p := range parts {
		id, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}

// PushAskedWord appends a translation id to the FIFO, evicting the oldest
// entries beyond MaxLastAskedWords.
func (s *QuizSession) PushAskedWord(id int64) {
	ids := append(s.LastAskedWords(), id)
	if len(ids) > MaxLastAskedWords {
		ids = ids[len(ids)-MaxLastAskedWords:]
	}
	parts := make([]string, len(ids))
	for i, v := range ids {
		parts[i] = strconv.FormatInt(v, 10)
	}
	s.LastAskedRaw = strings.Join(parts, ",")
}
