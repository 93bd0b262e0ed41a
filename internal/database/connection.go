package database

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// Config holds the database connection settings.
type Config struct {
	// Driver is "postgres" or "sqlite"
	Driver string
	// DSN is the Postgres connection string (ignored for sqlite)
	DSN string
	// Path is the sqlite database file path; ":memory:" for an in-memory database
	Path string
}

// ConfigFromEnv builds a Config from DB_TYPE, DATABASE_URL and SQLITE_PATH.
func ConfigFromEnv() Config {
	cfg := Config{
		Driver: os.Getenv("DB_TYPE"),
		DSN:    os.Getenv("DATABASE_URL"),
		Path:   os.Getenv("SQLITE_PATH"),
	}
	if cfg.Driver == "" {
		cfg.Driver = "postgres"
	}
	if cfg.Path == "" {
		cfg.Path = filepath.Join("data", "vocabquiz.db")
	}
	return cfg
}

// Connect establishes a connection to the database and initializes the schema.
func Connect(cfg Config) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error

	switch cfg.Driver {
	case "sqlite", "sqlite3":
		if cfg.Path != ":memory:" {
			if mkErr := os.MkdirAll(filepath.Dir(cfg.Path), 0755); mkErr != nil {
				return nil, fmt.Errorf("failed to create data directory: %v", mkErr)
			}
		}
		db, err = sqlx.Connect("sqlite3", cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to sqlite database: %v", err)
		}
		if _, err = db.Exec("PRAGMA foreign_keys = ON"); err != nil {
			return nil, fmt.Errorf("failed to enable foreign keys: %v", err)
		}
		// SQLite doesn't support multiple writers
		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	case "postgres":
		db, err = sqlx.Connect("postgres", cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres database: %v", err)
		}
	default:
		return nil, fmt.Errorf("unsupported DB_TYPE %q", cfg.Driver)
	}

	if err := initializeSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}

// initializeSchema creates necessary tables if they don't exist
func initializeSchema(db *sqlx.DB) error {
	pk := "BIGSERIAL PRIMARY KEY"
	if db.DriverName() == "sqlite3" {
		pk = "INTEGER PRIMARY KEY AUTOINCREMENT"
	}

	statements := []string{
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS word_lists (
				id %s,
				name TEXT NOT NULL UNIQUE,
				source_language TEXT NOT NULL,
				target_language TEXT NOT NULL,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
			)
		`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS translations (
				id %s,
				word_list_id BIGINT NOT NULL,
				source_word TEXT NOT NULL,
				target_word TEXT NOT NULL,
				source_example TEXT NOT NULL DEFAULT '',
				target_example TEXT NOT NULL DEFAULT '',
				position INTEGER NOT NULL DEFAULT 0,
				FOREIGN KEY (word_list_id) REFERENCES word_lists(id)
			)
		`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS word_progress (
				id %s,
				user_id BIGINT NOT NULL,
				translation_id BIGINT NOT NULL,
				status INTEGER NOT NULL DEFAULT 0,
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (translation_id) REFERENCES translations(id),
				UNIQUE(user_id, translation_id)
			)
		`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS quiz_sessions (
				id %s,
				public_id TEXT NOT NULL UNIQUE,
				user_id BIGINT NOT NULL,
				word_list_id BIGINT NOT NULL,
				direction TEXT NOT NULL DEFAULT 'normal',
				current_translation_id BIGINT,
				last_asked_words TEXT NOT NULL DEFAULT '',
				created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
				FOREIGN KEY (word_list_id) REFERENCES word_lists(id),
				UNIQUE(user_id, word_list_id)
			)
		`, pk),
		fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS session_stats (
				id %s,
				session_id BIGINT NOT NULL,
				translation_id BIGINT NOT NULL,
				direction TEXT NOT NULL,
				attempts INTEGER NOT NULL DEFAULT 0,
				correct INTEGER NOT NULL DEFAULT 0,
				incorrect INTEGER NOT NULL DEFAULT 0,
				consecutive_mistakes INTEGER NOT NULL DEFAULT 0,
				last_answered_at TIMESTAMP,
				FOREIGN KEY (session_id) REFERENCES quiz_sessions(id),
				FOREIGN KEY (translation_id) REFERENCES translations(id),
				UNIQUE(session_id, translation_id, direction)
			)
		`, pk),
	}

	for _, stmt := range statements {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("failed to initialize schema: %v", err)
		}
	}
	return nil
}
