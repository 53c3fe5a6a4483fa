package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// tokenType is fixed; there is no refresh flow, expired tokens force re-login.
const tokenType = "bearer"

// Codec encodes and decodes signed, expiring identity claims. The signing
// algorithm is fixed to HMAC-SHA256 and never negotiated from token input.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec constructs a Codec from the shared secret and token lifetime.
func NewCodec(secret string, ttl time.Duration) Codec {
	return Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the configured token lifetime.
func (c Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a claim for the given account id.
func (c Codec) Issue(accountID int64) (Token, error) {
	now := time.Now()
	expiresAt := now.Add(c.ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(accountID, 10),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		ID:        uuid.NewString(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(c.secret)
	if err != nil {
		return Token{}, err
	}
	return Token{AccessToken: signed, TokenType: tokenType, ExpiresAt: expiresAt}, nil
}

// Decode verifies the token and returns the embedded account id. Signature
// mismatch, algorithm mismatch (including "none"), elapsed expiry and a
// missing or non-numeric subject all yield shared.ErrInvalidToken.
func (c Codec) Decode(token string) (int64, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !parsed.Valid {
		return 0, shared.ErrInvalidToken
	}
	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || accountID <= 0 {
		return 0, shared.ErrInvalidToken
	}
	return accountID, nil
}
