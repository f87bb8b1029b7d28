package postgres

import (
	"database/sql"
	"log/slog"
	"time"

	"github.com/arvindkinja/date-day-count/internal/config"
	_ "github.com/lib/pq"
)

func NewPostgres(cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Error("failed to connect database", slog.String("error", err.Error()))
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)
	if err := db.Ping(); err != nil {
		log.Error("database ping failed", slog.String("error", err.Error()))
		db.Close()
		return nil, err
	}

	log.Info("database connection established",
		slog.String("host", cfg.Database.Host),
		slog.Int("port", cfg.Database.Port),
		slog.String("database", cfg.Database.DBName),
	)

	return db, nil
}
