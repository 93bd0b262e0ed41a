package models

// Translation is a source-word/target-word pair with optional usage examples
type Translation struct {
	ID            int64  `json:"id" db:"id"`
	WordListID    int64  `json:"word_list_id" db:"word_list_id"`
	SourceWord    string `json:"source_word" db:"source_word"`
	TargetWord    string `json:"target_word" db:"target_word"`
	SourceExample string `json:"source_example" db:"source_example"`
	TargetExample string `json:"target_example" db:"target_example"`
	Position      int    `json:"position" db:"position"`
}
