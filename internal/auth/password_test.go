package auth

import "testing"

func TestHashVerifyRoundTrip(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(4)
	hash, err := hasher.Hash("password1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if hash == "password1" {
		t.Fatal("hash must not equal plaintext")
	}
	if !hasher.Verify("password1", hash) {
		t.Fatal("expected matching password to verify")
	}
	if hasher.Verify("password2", hash) {
		t.Fatal("expected mismatched password to fail")
	}
}

func TestHashSalted(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(4)
	first, err := hasher.Hash("password1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	second, err := hasher.Hash("password1")
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	if first == second {
		t.Fatal("expected distinct salts to produce distinct hashes")
	}
}

func TestVerifyMalformedHash(t *testing.T) {
	t.Parallel()

	hasher := NewHasher(4)
	if hasher.Verify("password1", "not-a-bcrypt-hash") {
		t.Fatal("malformed hash must verify as false")
	}
	if hasher.Verify("password1", "") {
		t.Fatal("empty hash must verify as false")
	}
}
