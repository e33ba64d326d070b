// Package sqlite stores the planner document in a SQLite database.
package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"

	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/models"
)

// Store keeps one row per cached week plan plus a single settings row.
type Store struct {
	db     *sql.DB
	logger zerolog.Logger
}

const createTables = `
CREATE TABLE IF NOT EXISTS weeks (
	cache_key TEXT PRIMARY KEY,
	plan TEXT NOT NULL,
	created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);
CREATE TABLE IF NOT EXISTS settings (
	id INTEGER PRIMARY KEY CHECK (id = 1),
	data TEXT NOT NULL
);
`

// New opens the database at dbPath and creates the schema.
func New(dbPath string, logger zerolog.Logger) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open storage db: %w", err)
	}

	if _, err := db.Exec(createTables); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate storage db: %w", err)
	}

	return &Store{
		db:     db,
		logger: logger.With().Str("component", "sqlite").Str("path", dbPath).Logger(),
	}, nil
}

// Load reads every cached week and the settings snapshot. Rows that cannot be
// decoded are skipped; a failed query yields an empty document.
func (s *Store) Load() models.Document {
	doc := models.NewDocument()

	rows, err := s.db.Query(`SELECT cache_key, plan FROM weeks`)
	if err != nil {
		s.logger.Warn().Err(err).Msg("cannot read weeks, starting empty")
		return doc
	}
	defer rows.Close()

	for rows.Next() {
		var key, plan string
		if err := rows.Scan(&key, &plan); err != nil {
			s.logger.Warn().Err(err).Msg("cannot scan week row")
			continue
		}
		var week models.WeekPlan
		if err := json.Unmarshal([]byte(plan), &week); err != nil {
			s.logger.Warn().Err(err).Str("key", key).Msg("malformed week row, skipping")
			continue
		}
		if !menu.ValidWeek(week) {
			s.logger.Warn().Str("key", key).Msg("incomplete week row, skipping")
			continue
		}
		doc.Weeks[key] = week
	}
	if err := rows.Err(); err != nil {
		s.logger.Warn().Err(err).Msg("week rows interrupted, starting empty")
		return models.NewDocument()
	}

	var data string
	err = s.db.QueryRow(`SELECT data FROM settings WHERE id = 1`).Scan(&data)
	if err == nil {
		var settings models.Settings
		if err := json.Unmarshal([]byte(data), &settings); err == nil {
			doc.Settings = &settings
		}
	}

	return doc
}

// Save replaces the stored weeks and settings with doc in one transaction.
// Existing rows keep their created_at.
func (s *Store) Save(doc models.Document) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("storage save: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	keys := make([]any, 0, len(doc.Weeks))
	for key, week := range doc.Weeks {
		plan, err := json.Marshal(week)
		if err != nil {
			return fmt.Errorf("encode week %s: %w", key, err)
		}
		_, err = tx.Exec(
			`INSERT INTO weeks (cache_key, plan, created_at) VALUES (?, ?, ?)
			 ON CONFLICT(cache_key) DO UPDATE SET plan = excluded.plan`,
			key, string(plan), time.Now().UTC(),
		)
		if err != nil {
			return fmt.Errorf("storage save: %w", err)
		}
		keys = append(keys, key)
	}

	if err := deleteOthers(tx, keys); err != nil {
		return err
	}

	if doc.Settings != nil {
		data, err := json.Marshal(doc.Settings)
		if err != nil {
			return fmt.Errorf("encode settings: %w", err)
		}
		if _, err := tx.Exec(`INSERT OR REPLACE INTO settings (id, data) VALUES (1, ?)`, string(data)); err != nil {
			return fmt.Errorf("storage save: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("storage save: %w", err)
	}
	return nil
}

// deleteOthers removes week rows whose key is not in keys.
func deleteOthers(tx *sql.Tx, keys []any) error {
	query := `DELETE FROM weeks`
	if len(keys) > 0 {
		query += ` WHERE cache_key NOT IN (?` + strings.Repeat(",?", len(keys)-1) + `)`
	}
	if _, err := tx.Exec(query, keys...); err != nil {
		return fmt.Errorf("storage save: %w", err)
	}
	return nil
}

// count returns the number of stored week rows.
func (s *Store) count() (int64, error) {
	var count int64
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM weeks`).Scan(&count); err != nil {
		return 0, fmt.Errorf("storage count: %w", err)
	}
	return count, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}
