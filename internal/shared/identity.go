package shared

// Identity is the account resolved for the current request. It is re-derived
// from the presented token on every request and never cached across requests.
type Identity struct {
	ID       int64
	Username string
	Email    string
	IsAdmin  bool
}

// OwnerOrAdmin reports whether the identity may mutate a resource owned by
// ownerID.
func OwnerOrAdmin(identity Identity, ownerID int64) bool {
	return identity.ID == ownerID || identity.IsAdmin
}
