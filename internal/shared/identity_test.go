package shared

import (
	"context"
	"testing"
)

func TestOwnerOrAdmin(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		identity Identity
		ownerID  int64
		want     bool
	}{
		{"owner", Identity{ID: 1}, 1, true},
		{"stranger", Identity{ID: 2}, 1, false},
		{"admin", Identity{ID: 2, IsAdmin: true}, 1, true},
		{"adminOwner", Identity{ID: 1, IsAdmin: true}, 1, true},
	}
	for _, tc := range cases {
		if got := OwnerOrAdmin(tc.identity, tc.ownerID); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestIdentityContextRoundTrip(t *testing.T) {
	t.Parallel()

	if _, ok := IdentityFromContext(context.Background()); ok {
		t.Fatal("expected no identity in fresh context")
	}

	identity := Identity{ID: 7, Username: "alice", IsAdmin: true}
	ctx := ContextWithIdentity(context.Background(), identity)
	got, ok := IdentityFromContext(ctx)
	if !ok || got != identity {
		t.Fatalf("got (%+v, %v), want stored identity", got, ok)
	}
}
