package auth

import "context"

// Auditor records authentication outcomes. Implementations must be
// best-effort and never block or fail the request path.
type Auditor interface {
	Record(ctx context.Context, event AuditEvent)
}

// NopAuditor discards events.
type NopAuditor struct{}

// Record implements Auditor.
func (NopAuditor) Record(context.Context, AuditEvent) {}
