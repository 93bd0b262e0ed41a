package models

import "time"

// WordList is a named, ordered collection of translation pairs. Lists are
// created by the content tooling and are read-only to the quiz engine.
type WordList struct {
	ID             int64     `json:"id" db:"id"`
	Name           string    `json:"name" db:"name"`
	SourceLanguage string    `json:"source_language" db:"source_language"`
	TargetLanguage string    `json:"target_language" db:"target_language"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}
