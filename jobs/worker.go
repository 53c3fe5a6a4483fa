package jobs

import (
	"log/slog"

	"github.com/hibiken/asynq"
)

// Worker wraps the Asynq server.
type Worker struct {
	server *asynq.Server
	mux    *asynq.ServeMux
	logger *slog.Logger
}

// WorkerConfig collects dependencies required to bootstrap the worker.
type WorkerConfig struct {
	RedisOpts  asynq.RedisClientOpt
	Logger     *slog.Logger
	AuthEvents *AuthEventWriter
}

// NewWorker constructs a Worker instance.
func NewWorker(cfg WorkerConfig) *Worker {
	srv := asynq.NewServer(cfg.RedisOpts, asynq.Config{
		Concurrency: 5,
		Queues: map[string]int{
			QueueDefault: 1,
		},
	})
	mux := asynq.NewServeMux()
	if cfg.AuthEvents != nil {
		mux.Handle(TaskTypeAuthEvent, cfg.AuthEvents)
	}
	return &Worker{server: srv, mux: mux, logger: cfg.Logger}
}

// Run starts the worker and blocks until shutdown.
func (w *Worker) Run() error {
	return w.server.Run(w.mux)
}

// Shutdown stops the worker gracefully.
func (w *Worker) Shutdown() {
	w.server.Shutdown()
}
