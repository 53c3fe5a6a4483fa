package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// Repository defines persistence operations for the auth module.
type Repository interface {
	CreateAccount(ctx context.Context, account *Account) (*Account, error)
	FindAccountByID(ctx context.Context, id int64) (*Account, error)
	FindAccountByUsername(ctx context.Context, username string) (*Account, error)
}

const uniqueViolation = "23505"

// PGRepository implements Repository using PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// CreateAccount inserts a new account row. Username/email uniqueness is
// enforced by the database; a violation surfaces as shared.ErrConflict.
func (r *PGRepository) CreateAccount(ctx context.Context, account *Account) (*Account, error) {
	const query = `
		INSERT INTO accounts (username, email, password_hash, is_admin)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at`
	err := r.pool.QueryRow(ctx, query, account.Username, account.Email, account.PasswordHash, account.IsAdmin).
		Scan(&account.ID, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: username or email already taken", shared.ErrConflict)
		}
		return nil, err
	}
	return account, nil
}

// FindAccountByID fetches an account by primary key.
func (r *PGRepository) FindAccountByID(ctx context.Context, id int64) (*Account, error) {
	const query = `
		SELECT id, username, email, password_hash, is_admin, created_at, updated_at
		FROM accounts WHERE id = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, id))
}

// FindAccountByUsername fetches an account by its unique username.
func (r *PGRepository) FindAccountByUsername(ctx context.Context, username string) (*Account, error) {
	const query = `
		SELECT id, username, email, password_hash, is_admin, created_at, updated_at
		FROM accounts WHERE username = $1`
	return r.scanAccount(r.pool.QueryRow(ctx, query, username))
}

func (r *PGRepository) scanAccount(row pgx.Row) (*Account, error) {
	var account Account
	err := row.Scan(&account.ID, &account.Username, &account.Email, &account.PasswordHash,
		&account.IsAdmin, &account.CreatedAt, &account.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

var _ Repository = (*PGRepository)(nil)
