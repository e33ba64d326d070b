package store

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/menuplan/menuplan/pkg/config"
	"github.com/menuplan/menuplan/pkg/store/jsonfile"
	"github.com/menuplan/menuplan/pkg/store/sqlite"
)

// Open returns the Store configured by cfg.
func Open(cfg config.StorageConfig, logger zerolog.Logger) (Store, error) {
	switch cfg.Backend {
	case config.BackendJSON, "":
		return jsonfile.New(cfg.Path, logger), nil
	case config.BackendSQLite:
		s, err := sqlite.New(cfg.Path, logger)
		if err != nil {
			return nil, err
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
