package posts

import (
	"context"
	"strconv"

	"golang.org/x/sync/singleflight"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// Service handles post business logic.
type Service struct {
	repo  RepositoryPort
	cache *Cache
	group singleflight.Group
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, cache *Cache) *Service {
	return &Service{repo: repo, cache: cache}
}

// CreatePost stores a new post owned by the identity.
func (s *Service) CreatePost(ctx context.Context, identity shared.Identity, title, body string) (*Post, error) {
	post := &Post{Title: title, Body: body, AuthorID: identity.ID}
	created, err := s.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, created)
	return created, nil
}

// GetPost returns one post, consulting the cache first. Concurrent misses for
// the same post collapse into a single store lookup.
func (s *Service) GetPost(ctx context.Context, id int64) (*Post, error) {
	if post := s.cache.Get(ctx, id); post != nil {
		return post, nil
	}
	value, err, _ := s.group.Do(strconv.FormatInt(id, 10), func() (any, error) {
		// The flight result is shared; detach it from the winning caller so
		// its cancellation does not fail the collapsed followers.
		flightCtx := context.WithoutCancel(ctx)
		post, err := s.repo.GetPost(flightCtx, id)
		if err != nil {
			return nil, err
		}
		s.cache.Set(flightCtx, post)
		return post, nil
	})
	if err != nil {
		return nil, err
	}
	return value.(*Post), nil
}

// ListPosts returns an author's posts, newest first.
func (s *Service) ListPosts(ctx context.Context, filter ListFilter) ([]Post, error) {
	if filter.Limit <= 0 {
		filter.Limit = 10
	}
	if filter.Limit > 100 {
		filter.Limit = 100
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}
	return s.repo.ListPosts(ctx, filter)
}

// UpdatePost applies an allow-listed partial update after the owner-or-admin
// check, then invalidates the cache entry.
func (s *Service) UpdatePost(ctx context.Context, identity shared.Identity, id int64, patch UpdatePost) (*Post, error) {
	existing, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return nil, err
	}
	if !shared.OwnerOrAdmin(identity, existing.AuthorID) {
		return nil, shared.ErrForbidden
	}
	updated, err := s.repo.UpdatePost(ctx, id, patch.Title, patch.Body)
	if err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx, id)
	return updated, nil
}

// DeletePost removes a post after the owner-or-admin check.
func (s *Service) DeletePost(ctx context.Context, identity shared.Identity, id int64) error {
	existing, err := s.repo.GetPost(ctx, id)
	if err != nil {
		return err
	}
	if !shared.OwnerOrAdmin(identity, existing.AuthorID) {
		return shared.ErrForbidden
	}
	if err := s.repo.DeletePost(ctx, id); err != nil {
		return err
	}
	s.cache.Invalidate(ctx, id)
	return nil
}
