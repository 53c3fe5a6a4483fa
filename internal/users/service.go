package users

import (
	"context"
	"strings"

	"github.com/inkwell-app/inkwell/internal/auth"
	"github.com/inkwell-app/inkwell/internal/shared"
)

// Service handles user management business logic.
type Service struct {
	repo   RepositoryPort
	hasher auth.Hasher
}

// NewService builds a Service instance.
func NewService(repo RepositoryPort, hasher auth.Hasher) *Service {
	return &Service{repo: repo, hasher: hasher}
}

// ListUsers returns all users.
func (s *Service) ListUsers(ctx context.Context) ([]User, error) {
	return s.repo.ListUsers(ctx)
}

// GetUser returns one user by id.
func (s *Service) GetUser(ctx context.Context, id int64) (*User, error) {
	return s.repo.GetUser(ctx, id)
}

// UpdateUser applies an allow-listed partial update. Only the owner or an
// admin may mutate the account; a new password is re-hashed before storage.
func (s *Service) UpdateUser(ctx context.Context, identity shared.Identity, id int64, patch UpdateUser) (*User, error) {
	if !shared.OwnerOrAdmin(identity, id) {
		return nil, shared.ErrForbidden
	}
	if patch.Username != nil {
		trimmed := strings.TrimSpace(*patch.Username)
		patch.Username = &trimmed
	}
	if patch.Email != nil {
		normalized := strings.ToLower(strings.TrimSpace(*patch.Email))
		patch.Email = &normalized
	}
	var passwordHash *string
	if patch.Password != nil {
		hash, err := s.hasher.Hash(*patch.Password)
		if err != nil {
			return nil, err
		}
		passwordHash = &hash
	}
	return s.repo.UpdateUser(ctx, id, patch.Username, patch.Email, passwordHash)
}

// DeleteUser removes an account and, via cascade, its posts.
func (s *Service) DeleteUser(ctx context.Context, identity shared.Identity, id int64) error {
	if !shared.OwnerOrAdmin(identity, id) {
		return shared.ErrForbidden
	}
	return s.repo.DeleteUser(ctx, id)
}
