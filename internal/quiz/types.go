package quiz

import "github.com/example/vocabquiz/pkg/models"

// Question is one displayed prompt: the word to translate and the languages
// involved, according to the session's direction.
type Question struct {
	TranslationID  int64            `json:"translation_id"`
	Word           string           `json:"word"`
	Direction      models.Direction `json:"direction"`
	SourceLanguage string           `json:"source_language"`
	TargetLanguage string           `json:"target_language"`
}

// NextQuestion is the outcome of a selection round: a question, the terminal
// completed state, or the exhausted state (no candidates but not complete).
type NextQuestion struct {
	Completed     bool      `json:"completed"`
	Exhausted     bool      `json:"exhausted"`
	TotalWords    int       `json:"total_words"`
	MasteredWords int       `json:"mastered_words"`
	Question      *Question `json:"question,omitempty"`
}

// SessionState describes a session for the consumer: direction, the active
// translation if any, and the per-level translation id buckets.
type SessionState struct {
	SessionID            string                    `json:"session_id"`
	Direction            models.Direction          `json:"direction"`
	CurrentTranslationID *int64                    `json:"current_translation_id,omitempty"`
	Buckets              map[models.Status][]int64 `json:"buckets"`
}

// DirectionState is returned by ToggleDirection.
type DirectionState struct {
	Direction models.Direction          `json:"direction"`
	Buckets   map[models.Status][]int64 `json:"buckets"`
}

// AnswerResult combines the verdict on a submission with the follow-up
// question payload.
type AnswerResult struct {
	Correct       bool                      `json:"correct"`
	Message       string                    `json:"message"`
	SourceExample string                    `json:"source_example"`
	TargetExample string                    `json:"target_example"`
	LevelChanged  bool                      `json:"level_changed"`
	Buckets       map[models.Status][]int64 `json:"buckets"`
	Next          *NextQuestion             `json:"next"`
}
