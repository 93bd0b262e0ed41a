package models

import "database/sql"

// SessionStat accumulates answer statistics for one translation in one
// direction within a session. Correctness counters are reset whenever the
// translation changes mastery level; attempts and incorrect totals are kept
// as historical counters.
type SessionStat struct {
	ID                  int64        `json:"id" db:"id"`
	SessionID           int64        `json:"session_id" db:"session_id"`
	TranslationID       int64        `json:"translation_id" db:"translation_id"`
	Direction           Direction    `json:"direction" db:"direction"`
	Attempts            int          `json:"attempts" db:"attempts"`
	Correct             int          `json:"correct" db:"correct"`
	Incorrect           int          `json:"incorrect" db:"incorrect"`
	ConsecutiveMistakes int          `json:"consecutive_mistakes" db:"consecutive_mistakes"`
	LastAnsweredAt      sql.NullTime `json:"last_answered_at" db:"last_answered_at"`
}
