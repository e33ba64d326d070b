// Package jsonfile stores the planner document as a single JSON file.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/menuplan/menuplan/pkg/menu"
	"github.com/menuplan/menuplan/pkg/models"
)

// Store is a JSON file backed document store.
type Store struct {
	path   string
	logger zerolog.Logger
}

// New creates a Store for the file at path. The file need not exist.
func New(path string, logger zerolog.Logger) *Store {
	return &Store{
		path:   path,
		logger: logger.With().Str("component", "jsonfile").Str("path", path).Logger(),
	}
}

// Load reads the document. A missing or malformed file yields an empty document.
func (s *Store) Load() models.Document {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			s.logger.Warn().Err(err).Msg("cannot read storage, starting empty")
		}
		return models.NewDocument()
	}

	var doc models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		s.logger.Warn().Err(err).Msg("malformed storage, starting empty")
		return models.NewDocument()
	}
	if doc.Weeks == nil {
		doc.Weeks = make(map[string]models.WeekPlan)
	}
	for key, week := range doc.Weeks {
		if !menu.ValidWeek(week) {
			s.logger.Warn().Str("key", key).Msg("malformed week, skipping")
			delete(doc.Weeks, key)
		}
	}
	return doc
}

// Save writes the document, creating parent directories as needed.
func (s *Store) Save(doc models.Document) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0750); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode storage: %w", err)
	}

	// Write to a temp file first, then rename over the old one.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("write storage: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace storage: %w", err)
	}
	return nil
}

// Close is a no-op; the file is only open during Load and Save.
func (s *Store) Close() error {
	return nil
}
