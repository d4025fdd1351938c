// Package infrastructure builds the systems every module shares: the
// lifecycle coordinator, the root logger, the PostgreSQL pool, and blob
// storage for saved designs.
package infrastructure

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/pkg/database"
	"github.com/JaimeStill/stylarch/pkg/lifecycle"
	"github.com/JaimeStill/stylarch/pkg/storage"
)

// Infrastructure holds the shared systems. Construction opens no network
// connections; Start schedules them on the lifecycle coordinator.
type Infrastructure struct {
	Lifecycle *lifecycle.Coordinator
	Logger    *slog.Logger
	Database  database.System
	Storage   storage.System
}

// New creates an Infrastructure from cfg, logging to stderr.
func New(cfg *config.Config) (*Infrastructure, error) {
	logger := slog.New(cfg.Logging.Handler(os.Stderr)).With(
		"service", "stylarch",
		"env", cfg.Env(),
		"version", cfg.Version,
	)

	db, err := database.New(&cfg.Database, logger)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	store, err := storage.New(&cfg.Storage, logger)
	if err != nil {
		db.Connection().Close()
		return nil, fmt.Errorf("storage: %w", err)
	}

	return &Infrastructure{
		Lifecycle: lifecycle.New(),
		Logger:    logger,
		Database:  db,
		Storage:   store,
	}, nil
}

// Start registers the startup and shutdown hooks of each system, in order.
func (i *Infrastructure) Start() error {
	systems := []struct {
		name string
		sys  interface {
			Start(lc *lifecycle.Coordinator) error
		}
	}{
		{"database", i.Database},
		{"storage", i.Storage},
	}

	for _, s := range systems {
		if err := s.sys.Start(i.Lifecycle); err != nil {
			return fmt.Errorf("start %s: %w", s.name, err)
		}
	}
	return nil
}
