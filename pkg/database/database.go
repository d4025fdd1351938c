// Package database manages the PostgreSQL pool and ties its startup ping and
// close to the service lifecycle.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/JaimeStill/stylarch/pkg/lifecycle"
)

// retryInterval spaces startup pings while the server is still coming up.
const retryInterval = 500 * time.Millisecond

// System owns the connection pool.
type System interface {
	// Connection returns the pool. It is usable before Start, but queries
	// fail until the server is reachable.
	Connection() *sql.DB
	// Start schedules the startup ping and the shutdown close on lc and
	// registers the "database" readiness check.
	Start(lc *lifecycle.Coordinator) error
	// Ready reports whether a startup ping has succeeded.
	Ready() bool
}

type database struct {
	conn        *sql.DB
	logger      *slog.Logger
	connTimeout time.Duration
	ready       atomic.Bool
}

// New opens a pool over the pgx driver. No connection is made until Start.
func New(cfg *Config, logger *slog.Logger) (System, error) {
	db, err := sql.Open("pgx", cfg.URL())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetimeDuration())

	return &database{
		conn:        db,
		logger:      logger.With("system", "database"),
		connTimeout: cfg.ConnTimeoutDuration(),
	}, nil
}

func (d *database) Connection() *sql.DB {
	return d.conn
}

func (d *database) Ready() bool {
	return d.ready.Load()
}

func (d *database) Start(lc *lifecycle.Coordinator) error {
	lc.Register("database", d)

	lc.OnStartup(func() {
		if err := d.ping(lc.Context()); err != nil {
			d.logger.Error("database unreachable", "timeout", d.connTimeout, "error", err)
			return
		}
		d.ready.Store(true)
		d.logger.Info("database connected", "open_conns", d.conn.Stats().OpenConnections)
	})

	lc.OnShutdown(func() {
		<-lc.Context().Done()
		d.ready.Store(false)

		if err := d.conn.Close(); err != nil {
			d.logger.Error("database close failed", "error", err)
			return
		}
		d.logger.Info("database closed")
	})

	return nil
}

// ping retries until the server answers or connTimeout elapses.
func (d *database) ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, d.connTimeout)
	defer cancel()

	ticker := time.NewTicker(retryInterval)
	defer ticker.Stop()

	for attempt := 1; ; attempt++ {
		err := d.conn.PingContext(ctx)
		if err == nil {
			return nil
		}
		d.logger.Debug("database ping failed", "attempt", attempt, "error", err)

		select {
		case <-ctx.Done():
			return fmt.Errorf("after %d attempts: %w", attempt, err)
		case <-ticker.C:
		}
	}
}
