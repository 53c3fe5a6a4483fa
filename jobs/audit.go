package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/auth"
)

// AuthEventWriter persists audit events delivered by the worker.
type AuthEventWriter struct {
	pool   *pgxpool.Pool
	logger *slog.Logger
}

// NewAuthEventWriter constructs an AuthEventWriter.
func NewAuthEventWriter(pool *pgxpool.Pool, logger *slog.Logger) *AuthEventWriter {
	return &AuthEventWriter{pool: pool, logger: logger}
}

// ProcessTask handles TaskTypeAuthEvent tasks.
func (w *AuthEventWriter) ProcessTask(ctx context.Context, t *asynq.Task) error {
	var event auth.AuditEvent
	if err := json.Unmarshal(t.Payload(), &event); err != nil {
		w.logger.Warn("undecodable audit event", slog.Any("error", err))
		return asynq.SkipRetry
	}
	const query = `
		INSERT INTO audit_events (id, kind, account_id, username, ip, user_agent, occurred_at)
		VALUES ($1, $2, NULLIF($3, 0), NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), $7)
		ON CONFLICT (id) DO NOTHING`
	_, err := w.pool.Exec(ctx, query,
		event.ID, event.Kind, event.AccountID, event.Username, event.IP, event.UserAgent, event.At)
	if err != nil {
		return err
	}
	return nil
}
