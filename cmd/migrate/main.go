// Command migrate applies the embedded schema migrations and seed data to the
// STYLARCH database.
package main

import (
	"embed"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source/iofs"

	_ "github.com/golang-migrate/migrate/v4/database/postgres"

	"github.com/JaimeStill/stylarch/internal/config"
	"github.com/JaimeStill/stylarch/pkg/database"
)

//go:embed migrations/*.sql
var migrations embed.FS

type options struct {
	dsn     string
	up      bool
	down    bool
	steps   int
	version bool
	force   int
	forced  bool
}

func main() {
	var opts options
	flag.StringVar(&opts.dsn, "dsn", "", "Database URL; defaults to the STYLARCH_DB_* environment")
	flag.BoolVar(&opts.up, "up", false, "Apply all pending migrations")
	flag.BoolVar(&opts.down, "down", false, "Revert all migrations")
	flag.IntVar(&opts.steps, "steps", 0, "Apply N migrations, or revert when negative")
	flag.BoolVar(&opts.version, "version", false, "Print the current migration version")
	flag.IntVar(&opts.force, "force", -1, "Set the version without running migrations, clearing the dirty flag")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		opts.forced = opts.forced || f.Name == "force"
	})

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil)).With("cmd", "migrate")
	if err := run(opts, logger); err != nil {
		logger.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

func run(opts options, logger *slog.Logger) error {
	if opts.dsn == "" {
		var db database.Config
		if err := db.Finalize(config.DatabaseEnv); err != nil {
			return fmt.Errorf("database config: %w", err)
		}
		opts.dsn = db.URL()
	}

	source, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("migration source: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", source, opts.dsn)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer m.Close()

	switch {
	case opts.version:
		v, dirty, err := m.Version()
		if errors.Is(err, migrate.ErrNilVersion) {
			logger.Info("no migrations applied")
			return nil
		}
		if err != nil {
			return err
		}
		logger.Info("current version", "version", v, "dirty", dirty)
		return nil
	case opts.forced:
		if err := m.Force(opts.force); err != nil {
			return err
		}
		logger.Warn("version forced", "version", opts.force)
		return nil
	case opts.up:
		return report(logger, "applied all migrations", m.Up())
	case opts.down:
		return report(logger, "reverted all migrations", m.Down())
	case opts.steps != 0:
		return report(logger, fmt.Sprintf("applied %d steps", opts.steps), m.Steps(opts.steps))
	}

	fmt.Fprintln(os.Stderr, "usage: migrate [-dsn URL] -up | -down | -steps N | -version | -force N")
	flag.PrintDefaults()
	return nil
}

func report(logger *slog.Logger, done string, err error) error {
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("already up to date")
		return nil
	case err != nil:
		return err
	}
	logger.Info(done)
	return nil
}
