package posts

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const cacheTTL = time.Hour

// Cache is a redis-backed read-through cache for single posts. A nil client
// disables caching entirely; every operation is best-effort and a cache
// failure never fails the request.
type Cache struct {
	client *redis.Client
	logger *slog.Logger
}

// NewCache constructs a Cache. Client may be nil.
func NewCache(client *redis.Client, logger *slog.Logger) *Cache {
	return &Cache{client: client, logger: logger}
}

func cacheKey(id int64) string {
	return fmt.Sprintf("post:%d", id)
}

// Get returns the cached post, or nil on miss.
func (c *Cache) Get(ctx context.Context, id int64) *Post {
	if c == nil || c.client == nil {
		return nil
	}
	fields, err := c.client.HGetAll(ctx, cacheKey(id)).Result()
	if err != nil || len(fields) == 0 {
		return nil
	}
	post, err := postFromFields(fields)
	if err != nil {
		c.logger.Warn("cache entry unreadable", slog.Int64("post_id", id), slog.Any("error", err))
		return nil
	}
	return post
}

// Set stores the post as a redis hash with a one hour expiry.
func (c *Cache) Set(ctx context.Context, post *Post) {
	if c == nil || c.client == nil || post == nil {
		return
	}
	key := cacheKey(post.ID)
	fields := map[string]any{
		"id":         strconv.FormatInt(post.ID, 10),
		"title":      post.Title,
		"body":       post.Body,
		"author_id":  strconv.FormatInt(post.AuthorID, 10),
		"created_at": post.CreatedAt.Format(time.RFC3339Nano),
		"updated_at": post.UpdatedAt.Format(time.RFC3339Nano),
	}
	if err := c.client.HSet(ctx, key, fields).Err(); err != nil {
		c.logger.Warn("cache set failed", slog.Int64("post_id", post.ID), slog.Any("error", err))
		return
	}
	if err := c.client.Expire(ctx, key, cacheTTL).Err(); err != nil {
		c.logger.Warn("cache expire failed", slog.Int64("post_id", post.ID), slog.Any("error", err))
	}
}

// Invalidate drops the cached post.
func (c *Cache) Invalidate(ctx context.Context, id int64) {
	if c == nil || c.client == nil {
		return
	}
	if err := c.client.Del(ctx, cacheKey(id)).Err(); err != nil {
		c.logger.Warn("cache del failed", slog.Int64("post_id", id), slog.Any("error", err))
	}
}

func postFromFields(fields map[string]string) (*Post, error) {
	id, err := strconv.ParseInt(fields["id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse id: %w", err)
	}
	authorID, err := strconv.ParseInt(fields["author_id"], 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parse author_id: %w", err)
	}
	createdAt, err := time.Parse(time.RFC3339Nano, fields["created_at"])
	if err != nil {
		return nil, fmt.Errorf("parse created_at: %w", err)
	}
	updatedAt, err := time.Parse(time.RFC3339Nano, fields["updated_at"])
	if err != nil {
		return nil, fmt.Errorf("parse updated_at: %w", err)
	}
	return &Post{
		ID:        id,
		Title:     fields["title"],
		Body:      fields["body"],
		AuthorID:  authorID,
		CreatedAt: createdAt,
		UpdatedAt: updatedAt,
	}, nil
}
