package auth

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell-app/inkwell/internal/shared"
)

func TestTokenRoundTrip(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if token.TokenType != "bearer" {
		t.Fatalf("token type: got %q", token.TokenType)
	}

	accountID, err := codec.Decode(token.AccessToken)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if accountID != 42 {
		t.Fatalf("account id: got %d want 42", accountID)
	}
}

func TestDecodeExpired(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", -time.Second)
	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := codec.Decode(token.AccessToken); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for expired token, got %v", err)
	}
}

func TestDecodeWrongSecret(t *testing.T) {
	t.Parallel()

	token, err := NewCodec("right-secret", time.Hour).Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if _, err := NewCodec("wrong-secret", time.Hour).Decode(token.AccessToken); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestDecodeTamperedSignature(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	token, err := codec.Issue(42)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}

	parts := strings.Split(token.AccessToken, ".")
	if len(parts) != 3 {
		t.Fatalf("expected three token segments, got %d", len(parts))
	}
	sig := []byte(parts[2])
	// Flip one byte of the signature segment.
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	if _, err := codec.Decode(tampered); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for tampered signature, got %v", err)
	}
}

func TestDecodeRejectsForeignAlgorithm(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)

	unsigned := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	noneToken, err := unsigned.SignedString(jwt.UnsafeAllowNoneSignatureType)
	if err != nil {
		t.Fatalf("sign none: %v", err)
	}
	if _, err := codec.Decode(noneToken); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf(`expected ErrInvalidToken for alg "none", got %v`, err)
	}

	hs512 := jwt.NewWithClaims(jwt.SigningMethodHS512, jwt.RegisteredClaims{
		Subject:   "42",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	})
	hs512Token, err := hs512.SignedString([]byte("super-secret"))
	if err != nil {
		t.Fatalf("sign hs512: %v", err)
	}
	if _, err := codec.Decode(hs512Token); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for alg mismatch, got %v", err)
	}
}

func TestDecodeRejectsBadSubject(t *testing.T) {
	t.Parallel()

	secret := []byte("super-secret")
	codec := NewCodec("super-secret", time.Hour)

	for name, subject := range map[string]string{
		"missing":    "",
		"nonNumeric": "alice",
		"negative":   "-7",
	} {
		claims := jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		}
		if subject != "" {
			claims.Subject = subject
		}
		signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
		if err != nil {
			t.Fatalf("%s: sign: %v", name, err)
		}
		if _, err := codec.Decode(signed); !errors.Is(err, shared.ErrInvalidToken) {
			t.Fatalf("%s: expected ErrInvalidToken, got %v", name, err)
		}
	}
}

func TestDecodeMalformed(t *testing.T) {
	t.Parallel()

	codec := NewCodec("super-secret", time.Hour)
	if _, err := codec.Decode("not.a.jwt"); !errors.Is(err, shared.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for malformed token, got %v", err)
	}
}
