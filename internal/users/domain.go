package users

import "time"

// User represents an account as seen by the management endpoints. The
// password hash never leaves the repository layer.
type User struct {
	ID        int64
	Username  string
	Email     string
	IsAdmin   bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// UpdateUser is the explicit allow-list of mutable account fields. Anything
// not listed here is unreachable from client payloads.
type UpdateUser struct {
	Username *string
	Email    *string
	Password *string
}
