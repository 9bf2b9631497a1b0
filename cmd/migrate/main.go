// Command migrate applies or rolls back the embedded SQL migrations.
//
//	migrate up
//	migrate down [steps]
//	migrate version
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"
	"storefront/internal/infra/persistence/migrations"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: migrate up | down [steps] | version")
	}

	cfg, err := config.New()
	if err != nil {
		return errors.Wrap(err, "load config")
	}
	if cfg.Migration == nil || cfg.Migration.DSN == "" {
		return errors.New("migration.dsn is not configured")
	}

	logger, err := logs.New(logs.Params{Config: cfg})
	if err != nil {
		return errors.Wrap(err, "create logger")
	}

	migrator, err := migrations.NewMigrator(cfg.Migration.DSN, logger)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := migrator.Close(); cerr != nil {
			logger.Warn("Failed to close migrator", slog.Any("error", cerr))
		}
	}()

	switch args[0] {
	case "up":
		return migrator.Up()
	case "down":
		steps := 1
		if len(args) > 1 {
			if steps, err = strconv.Atoi(args[1]); err != nil || steps < 1 {
				return errors.Errorf("invalid step count %q", args[1])
			}
		}

		return migrator.Down(steps)
	case "version":
		version, dirty, err := migrator.Version()
		if err != nil {
			return err
		}
		fmt.Printf("version=%d dirty=%t\n", version, dirty)

		return nil
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
}
