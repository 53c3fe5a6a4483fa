package users

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/platform/db"
	"github.com/inkwell-app/inkwell/internal/shared"
)

// RepositoryPort defines data access methods for users.
type RepositoryPort interface {
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, id int64) (*User, error)
	UpdateUser(ctx context.Context, id int64, username, email *string, passwordHash *string) (*User, error)
	DeleteUser(ctx context.Context, id int64) error
}

const uniqueViolation = "23505"

// Repository provides PostgreSQL backed persistence.
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a repository.
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{pool: pool}
}

// ListUsers returns all users.
func (r *Repository) ListUsers(ctx context.Context) ([]User, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, username, email, is_admin, created_at, updated_at FROM accounts ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var users []User
	for rows.Next() {
		var user User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// GetUser returns one user by id.
func (r *Repository) GetUser(ctx context.Context, id int64) (*User, error) {
	var user User
	err := r.pool.QueryRow(ctx,
		`SELECT id, username, email, is_admin, created_at, updated_at FROM accounts WHERE id = $1`, id).
		Scan(&user.ID, &user.Username, &user.Email, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUser applies the non-nil fields and returns the updated row. The row
// is locked for the duration of the patch so the existence check and the
// update stay atomic; COALESCE keeps untouched columns as they are.
func (r *Repository) UpdateUser(ctx context.Context, id int64, username, email, passwordHash *string) (*User, error) {
	const lock = `SELECT id FROM accounts WHERE id = $1 FOR UPDATE`
	const query = `
		UPDATE accounts
		SET username = COALESCE($2, username),
		    email = COALESCE($3, email),
		    password_hash = COALESCE($4, password_hash),
		    updated_at = now()
		WHERE id = $1
		RETURNING id, username, email, is_admin, created_at, updated_at`
	var user User
	err := db.WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		var locked int64
		if err := tx.QueryRow(ctx, lock, id).Scan(&locked); err != nil {
			return err
		}
		return tx.QueryRow(ctx, query, id, username, email, passwordHash).
			Scan(&user.ID, &user.Username, &user.Email, &user.IsAdmin, &user.CreatedAt, &user.UpdatedAt)
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: username or email already taken", shared.ErrConflict)
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes the account. Owned posts cascade via foreign key.
func (r *Repository) DeleteUser(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ RepositoryPort = (*Repository)(nil)
