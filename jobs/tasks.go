package jobs

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/hibiken/asynq"

	"github.com/inkwell-app/inkwell/internal/auth"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeAuthEvent is the task type for audit-trail writes.
	TaskTypeAuthEvent = "auth:event"
)

// NewAuthEventTask constructs an Asynq task from an audit event.
func NewAuthEventTask(event auth.AuditEvent) (*asynq.Task, error) {
	data, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeAuthEvent, data, asynq.Queue(QueueDefault)), nil
}

// Auditor enqueues audit events for the worker. It implements auth.Auditor;
// enqueue failures are logged and swallowed so the request path never blocks
// on the queue.
type Auditor struct {
	client *asynq.Client
	logger *slog.Logger
}

// NewAuditor constructs an Auditor around an Asynq client.
func NewAuditor(client *asynq.Client, logger *slog.Logger) *Auditor {
	return &Auditor{client: client, logger: logger}
}

// Record implements auth.Auditor.
func (a *Auditor) Record(ctx context.Context, event auth.AuditEvent) {
	if a == nil || a.client == nil {
		return
	}
	task, err := NewAuthEventTask(event)
	if err != nil {
		a.logger.Warn("marshal audit event", slog.Any("error", err))
		return
	}
	if _, err := a.client.EnqueueContext(ctx, task); err != nil {
		a.logger.Warn("enqueue audit event", slog.String("kind", event.Kind), slog.Any("error", err))
	}
}

var _ auth.Auditor = (*Auditor)(nil)
