package posts

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newTestCache(t *testing.T) (*Cache, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewCache(client, logger), mr
}

func TestCacheRoundTrip(t *testing.T) {
	cache, mr := newTestCache(t)
	ctx := context.Background()

	post := &Post{
		ID:        7,
		Title:     "hello",
		Body:      "world",
		AuthorID:  1,
		CreatedAt: time.Now().UTC().Truncate(time.Millisecond),
		UpdatedAt: time.Now().UTC().Truncate(time.Millisecond),
	}
	cache.Set(ctx, post)

	got := cache.Get(ctx, 7)
	if got == nil {
		t.Fatal("expected cache hit")
	}
	if got.ID != post.ID || got.Title != post.Title || got.Body != post.Body || got.AuthorID != post.AuthorID {
		t.Fatalf("cached post mismatch: %+v", got)
	}
	if !got.CreatedAt.Equal(post.CreatedAt) {
		t.Fatalf("created_at mismatch: got %v want %v", got.CreatedAt, post.CreatedAt)
	}

	if mr.TTL("post:7") <= 0 {
		t.Fatal("expected expiry on cache entry")
	}
}

func TestCacheMiss(t *testing.T) {
	cache, _ := newTestCache(t)
	if got := cache.Get(context.Background(), 99); got != nil {
		t.Fatalf("expected miss, got %+v", got)
	}
}

func TestCacheInvalidate(t *testing.T) {
	cache, _ := newTestCache(t)
	ctx := context.Background()

	post := &Post{ID: 7, Title: "hello", Body: "world", AuthorID: 1, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	cache.Set(ctx, post)
	cache.Invalidate(ctx, 7)

	if got := cache.Get(ctx, 7); got != nil {
		t.Fatalf("expected entry to be gone, got %+v", got)
	}
}

func TestCacheDisabled(t *testing.T) {
	// A nil client disables the cache without panics.
	cache := NewCache(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := context.Background()
	cache.Set(ctx, &Post{ID: 1})
	cache.Invalidate(ctx, 1)
	if got := cache.Get(ctx, 1); got != nil {
		t.Fatalf("expected nil from disabled cache, got %+v", got)
	}
}
