// Package store persists the planner document between runs.
package store

import "github.com/menuplan/menuplan/pkg/models"

// Store loads the document once at start and saves it once at end.
// Load never fails: missing or unreadable data yields an empty document.
type Store interface {
	Load() models.Document
	Save(doc models.Document) error
	Close() error
}
