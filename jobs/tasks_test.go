package jobs

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/inkwell-app/inkwell/internal/auth"
)

func TestNewAuthEventTask(t *testing.T) {
	t.Parallel()

	event := auth.AuditEvent{
		ID:        "2b6ad688-3a1f-4d26-9b9c-2d1f9a1f8b11",
		Kind:      auth.AuditLogin,
		AccountID: 42,
		Username:  "alice",
		IP:        "192.0.2.1:1234",
		At:        time.Now().UTC(),
	}
	task, err := NewAuthEventTask(event)
	if err != nil {
		t.Fatalf("new task: %v", err)
	}
	if task.Type() != TaskTypeAuthEvent {
		t.Fatalf("task type: got %q", task.Type())
	}

	var decoded auth.AuditEvent
	if err := json.Unmarshal(task.Payload(), &decoded); err != nil {
		t.Fatalf("decode payload: %v", err)
	}
	if decoded.Kind != event.Kind || decoded.AccountID != event.AccountID || decoded.ID != event.ID {
		t.Fatalf("payload mismatch: %+v", decoded)
	}
}

func TestAuditorNilClient(t *testing.T) {
	t.Parallel()

	// A nil auditor or client must never panic on the request path.
	var auditor *Auditor
	auditor.Record(context.Background(), auth.AuditEvent{Kind: auth.AuditLogout})
}
