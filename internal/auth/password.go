package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// Hasher performs one-way password hashing and verification.
type Hasher struct {
	cost int
}

// NewHasher constructs a Hasher. A non-positive cost falls back to the bcrypt
// default.
func NewHasher(cost int) Hasher {
	if cost <= 0 {
		cost = bcrypt.DefaultCost
	}
	return Hasher{cost: cost}
}

// Hash derives a salted hash from the plaintext password.
func (h Hasher) Hash(plaintext string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("auth: hash password: %w", err)
	}
	return string(hashed), nil
}

// Verify reports whether plaintext matches the stored hash. A malformed hash
// verifies as false rather than erroring.
func (h Hasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
