package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/arvindkinja/date-day-count/internal/config"
	"github.com/arvindkinja/date-day-count/internal/handler"
	"github.com/arvindkinja/date-day-count/internal/repository"
	"github.com/arvindkinja/date-day-count/internal/service"
	"github.com/arvindkinja/date-day-count/internal/storage/postgres"
	"github.com/arvindkinja/date-day-count/pkg/logger"
)

//@title Date Day Count
//@version 1.0
//@description Counts the days between two calendar dates.

// host@ localhost:8080
// basePath /
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Printf("cant load config: %s\n", err)
		os.Exit(1)
	}

	log := logger.SetupLogger(cfg.Logger.Level, cfg.Logger.Format, "date_day_count")

	var repo repository.CalculationInterface
	if cfg.DayCount.HistoryEnabled {
		db, err := openHistory(cfg, log)
		if err != nil {
			log.Error("history store init failed", slog.String("err", err.Error()))
			os.Exit(1)
		}
		defer db.Close()
		repo = repository.NewCalculationRepository(db, log)
	}

	svc := service.NewDayCountService(repo, cfg.DayCount.Method, log)
	h := handler.NewHandlerDayCount(svc, log)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      h.SetupRouter(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	go func() {
		log.Info("server starting...",
			slog.String("port", cfg.Server.Port),
			slog.String("method", cfg.DayCount.Method.String()),
			slog.Bool("history", cfg.DayCount.HistoryEnabled),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("listen error", slog.String("err", err.Error()))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("stopping server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("forced shutdown", slog.String("error", err.Error()))
	}

	log.Info("server stopped")
}

// migrations run before the pool is opened
func openHistory(cfg *config.Config, log *slog.Logger) (*sql.DB, error) {
	if cfg.DayCount.MigrationsEnabled {
		if err := postgres.RunMigrations(cfg, log); err != nil {
			return nil, err
		}
	}
	return postgres.NewPostgres(cfg, log)
}
