package models

import "time"

// Status is the mastery level of a translation for one user.
type Status int

// Mastery levels. Level0 is the implicit default for translations without a
// progress record; Level3 means mastered.
const (
	Level0 Status = 0
	Level1 Status = 1
	Level2 Status = 2
	Level3 Status = 3
)

// Next returns the status one level up, capped at Level3.
func (s Status) Next() Status {
	if s >= Level3 {
		return Level3
	}
	return s + 1
}

// Prev returns the status one level down, capped at Level0.
func (s Status) Prev() Status {
	if s <= Level0 {
		return Level0
	}
	return s - 1
}

// WordProgress tracks a user's mastery level for a specific translation.
// Records are created lazily on the first status change.
type WordProgress struct {
	ID            int64     `json:"id" db:"id"`
	UserID        int64     `json:"user_id" db:"user_id"`
	TranslationID int64     `json:"translation_id" db:"translation_id"`
	Status        Status    `json:"status" db:"status"`
	CreatedAt     time.Time `json:"created_at" db:"created_at"`
	UpdatedAt     time.Time `json:"updated_at" db:"updated_at"`
}
