package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/arvindkinja/date-day-count/internal/config"
	"github.com/arvindkinja/date-day-count/internal/storage/postgres"
	"github.com/arvindkinja/date-day-count/pkg/logger"
	"github.com/golang-migrate/migrate/v4"
)

const usage = "usage: migrate [up|down|version]"

func main() {
	flag.Usage = func() { fmt.Fprintln(os.Stderr, usage) }
	flag.Parse()

	cmd := flag.Arg(0)
	if cmd == "" {
		cmd = "up"
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("Error to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "date_day_count_migrate")

	m, err := postgres.NewMigrator(cfg)
	if err != nil {
		log.Error("could not open migrator", slog.String("err", err.Error()))
		os.Exit(1)
	}
	defer m.Close()

	switch cmd {
	case "up":
		err = m.Up()
	case "down":
		err = m.Down()
	case "version":
		version, dirty, verr := m.Version()
		if verr != nil && !errors.Is(verr, migrate.ErrNilVersion) {
			err = verr
			break
		}
		log.Info("schema version", slog.Uint64("version", uint64(version)), slog.Bool("dirty", dirty))
		return
	default:
		flag.Usage()
		os.Exit(2)
	}

	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Error("migration failed", slog.String("cmd", cmd), slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("migration done", slog.String("cmd", cmd))
}
