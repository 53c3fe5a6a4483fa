package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hibiken/asynq"

	"github.com/inkwell-app/inkwell/internal/app"
	"github.com/inkwell-app/inkwell/internal/platform/db"
	"github.com/inkwell-app/inkwell/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping worker startup")
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	logger := app.NewLogger(cfg)

	pool, err := db.New(ctx, db.Config{DSN: cfg.PGDSN, MaxConns: cfg.PGMaxConns})
	if err != nil {
		logger.Error("connect postgres", slog.Any("error", err))
		os.Exit(1)
	}
	defer pool.Close()

	worker := jobs.NewWorker(jobs.WorkerConfig{
		RedisOpts:  asynq.RedisClientOpt{Addr: cfg.RedisAddr},
		Logger:     logger,
		AuthEvents: jobs.NewAuthEventWriter(pool, logger),
	})

	go func() {
		<-ctx.Done()
		logger.Info("shutting down worker")
		worker.Shutdown()
	}()

	logger.Info("starting worker")
	if err := worker.Run(); err != nil {
		logger.Error("worker", slog.Any("error", err))
		os.Exit(1)
	}
}
