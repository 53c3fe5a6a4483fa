package auth

import "time"

// Account represents a registered user account.
type Account struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	IsAdmin      bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAccount carries validated signup input. The plaintext password exists
// only for the duration of the request and is never persisted or logged.
type NewAccount struct {
	Username string
	Email    string
	Password string
}

// Token is an issued bearer credential.
type Token struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"-"`
}

// Audit event kinds. Unauthenticated (no credential supplied) and rejected
// (bad credential supplied) stay distinct for auditability even though both
// surface to callers as 401.
const (
	AuditSignup            = "signup"
	AuditLogin             = "login"
	AuditLoginFailed       = "login_failed"
	AuditLogout            = "logout"
	AuditRejectedToken     = "rejected_token"
	AuditMissingCredential = "missing_credential"
)

// AuditEvent captures an authentication outcome for async audit logging.
type AuditEvent struct {
	ID        string    `json:"id"`
	Kind      string    `json:"kind"`
	AccountID int64     `json:"account_id,omitempty"`
	Username  string    `json:"username,omitempty"`
	IP        string    `json:"ip,omitempty"`
	UserAgent string    `json:"user_agent,omitempty"`
	At        time.Time `json:"at"`
}
