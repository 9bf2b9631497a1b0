// Package migrations embeds the SQL schema and applies it with golang-migrate.
package migrations

import (
	"embed"
	"log/slog"

	"storefront/internal/errors"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres" // registers the postgres:// driver
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed sql/*.sql
var files embed.FS

// Migrator wraps a golang-migrate instance bound to the embedded schema.
type Migrator struct {
	m      *migrate.Migrate
	logger *slog.Logger
}

// NewMigrator opens the embedded source and the database behind dsn.
func NewMigrator(dsn string, logger *slog.Logger) (*Migrator, error) {
	if dsn == "" {
		return nil, errors.New("migration dsn is empty")
	}

	src, err := Source()
	if err != nil {
		return nil, err
	}

	m, err := migrate.NewWithSourceInstance("iofs", src, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize migration instance")
	}

	return &Migrator{m: m, logger: logger}, nil
}

// Source exposes the embedded migrations as a golang-migrate source driver.
func Source() (source.Driver, error) {
	src, err := iofs.New(files, "sql")
	if err != nil {
		return nil, errors.Wrap(err, "failed to open embedded migrations")
	}

	return src, nil
}

// Up applies all pending migrations. No pending migration is not an error.
func (mg *Migrator) Up() error {
	return mg.report("up", mg.m.Up())
}

// Down rolls back the given number of migrations.
func (mg *Migrator) Down(steps int) error {
	if steps <= 0 {
		return errors.Errorf("invalid step count %d", steps)
	}

	return mg.report("down", mg.m.Steps(-steps))
}

// Version returns the current schema version and whether it is dirty.
func (mg *Migrator) Version() (uint, bool, error) {
	version, dirty, err := mg.m.Version()
	if errors.Is(err, migrate.ErrNilVersion) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, errors.Wrap(err, "failed to read schema version")
	}

	return version, dirty, nil
}

// Close releases the source and database handles.
func (mg *Migrator) Close() error {
	srcErr, dbErr := mg.m.Close()

	return errors.Join(srcErr, dbErr)
}

func (mg *Migrator) report(direction string, err error) error {
	if errors.Is(err, migrate.ErrNoChange) {
		mg.logger.Info("No migrations to apply", slog.String("direction", direction))

		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "migrate %s failed", direction)
	}

	mg.logger.Info("Migrations applied", slog.String("direction", direction))

	return nil
}
