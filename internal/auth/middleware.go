package auth

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/platform/httpx"
	"github.com/inkwell-app/inkwell/internal/shared"
)

// Middleware resolves the caller's identity for protected routes.
type Middleware struct {
	logger  *slog.Logger
	service *Service
	auditor Auditor
}

// NewMiddleware constructs a Middleware instance.
func NewMiddleware(logger *slog.Logger, service *Service, auditor Auditor) *Middleware {
	if auditor == nil {
		auditor = NopAuditor{}
	}
	return &Middleware{logger: logger, service: service, auditor: auditor}
}

// RequireIdentity runs the per-request resolution pipeline: extract the token,
// decode it, load the account and store the identity in context. A missing
// credential and a bad credential both answer 401 but are logged and audited
// separately.
func (m *Middleware) RequireIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := TokenFromRequest(r)
		if !ok {
			m.logger.Debug("request without credential", slog.String("path", r.URL.Path))
			m.audit(r, AuditMissingCredential, 0)
			httpx.RespondError(w, shared.ErrUnauthenticated)
			return
		}
		account, err := m.service.ResolveIdentity(r.Context(), token)
		if err != nil {
			// An account deleted after issuance presents to the caller the
			// same way as a forged or expired token.
			m.logger.Info("rejected credential", slog.String("path", r.URL.Path), slog.Any("error", err))
			m.audit(r, AuditRejectedToken, 0)
			httpx.RespondError(w, shared.ErrInvalidToken)
			return
		}
		identity := shared.Identity{
			ID:       account.ID,
			Username: account.Username,
			Email:    account.Email,
			IsAdmin:  account.IsAdmin,
		}
		next.ServeHTTP(w, r.WithContext(shared.ContextWithIdentity(r.Context(), identity)))
	})
}

func (m *Middleware) audit(r *http.Request, kind string, accountID int64) {
	m.auditor.Record(r.Context(), AuditEvent{
		ID:        uuid.NewString(),
		Kind:      kind,
		AccountID: accountID,
		IP:        r.RemoteAddr,
		UserAgent: r.UserAgent(),
		At:        time.Now().UTC(),
	})
}
