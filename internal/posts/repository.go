package posts

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// RepositoryPort defines data access methods for posts.
type RepositoryPort interface {
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPost(ctx context.Context, id int64) (*Post, error)
	ListPosts(ctx context.Context, filter ListFilter) ([]Post, error)
	UpdatePost(ctx context.Context, id int64, title, body *string) (*Post, error)
	DeletePost(ctx context.Context, id int64) error
}

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// CreatePost inserts a post row.
func (r *Repository) CreatePost(ctx context.Context, post *Post) (*Post, error) {
	const query = `
		INSERT INTO posts (title, body, author_id)
		VALUES ($1, $2, $3)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, post.Title, post.Body, post.AuthorID).
		Scan(&post.ID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return post, nil
}

// GetPost returns one post by id.
func (r *Repository) GetPost(ctx context.Context, id int64) (*Post, error) {
	const query = `
		SELECT id, title, body, author_id, created_at, updated_at
		FROM posts WHERE id = $1`
	var post Post
	err := r.pool.QueryRow(ctx, query, id).
		Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// ListPosts returns an author's posts, newest first.
func (r *Repository) ListPosts(ctx context.Context, filter ListFilter) ([]Post, error) {
	const query = `
		SELECT id, title, body, author_id, created_at, updated_at
		FROM posts
		WHERE author_id = $1
		ORDER BY created_at DESC
		OFFSET $2 LIMIT $3`
	rows, err := r.pool.Query(ctx, query, filter.AuthorID, filter.Offset, filter.Limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var posts []Post
	for rows.Next() {
		var post Post
		if err := rows.Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt); err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return posts, nil
}

// UpdatePost applies the non-nil fields and returns the updated row.
func (r *Repository) UpdatePost(ctx context.Context, id int64, title, body *string) (*Post, error) {
	const query = `
		UPDATE posts
		SET title = COALESCE($2, title),
		    body = COALESCE($3, body),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, title, body, author_id, created_at, updated_at`
	var post Post
	err := r.pool.QueryRow(ctx, query, id, title, body).
		Scan(&post.ID, &post.Title, &post.Body, &post.AuthorID, &post.CreatedAt, &post.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &post, nil
}

// DeletePost removes the post.
func (r *Repository) DeletePost(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM posts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
