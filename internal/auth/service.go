package auth

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/inkwell-app/inkwell/internal/shared"
)

// Service wraps authentication business rules.
type Service struct {
	repo   Repository
	hasher Hasher
	codec  Codec
}

// NewService constructs a new Service.
func NewService(repo Repository, hasher Hasher, codec Codec) *Service {
	return &Service{repo: repo, hasher: hasher, codec: codec}
}

// TokenTTL returns the lifetime of issued tokens.
func (s *Service) TokenTTL() time.Duration {
	return s.codec.TTL()
}

// Signup creates an account. Duplicate username or email surfaces as
// shared.ErrConflict.
func (s *Service) Signup(ctx context.Context, input NewAccount) (*Account, error) {
	hash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return nil, err
	}
	account := &Account{
		Username:     strings.TrimSpace(input.Username),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		PasswordHash: hash,
	}
	return s.repo.CreateAccount(ctx, account)
}

// Login validates username/password credentials and issues a token. Any
// failure collapses into shared.ErrInvalidCredentials; a failed check is
// reported immediately and never retried.
func (s *Service) Login(ctx context.Context, username, password string) (*Account, Token, error) {
	account, err := s.repo.FindAccountByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, Token{}, shared.ErrInvalidCredentials
		}
		return nil, Token{}, err
	}
	if !s.hasher.Verify(password, account.PasswordHash) {
		return nil, Token{}, shared.ErrInvalidCredentials
	}
	token, err := s.codec.Issue(account.ID)
	if err != nil {
		return nil, Token{}, err
	}
	return account, token, nil
}

// ResolveIdentity decodes the token and loads the matching account. Decode
// failures yield shared.ErrInvalidToken; an account deleted after issuance
// yields shared.ErrNotFound so callers can distinguish the two.
func (s *Service) ResolveIdentity(ctx context.Context, token string) (*Account, error) {
	accountID, err := s.codec.Decode(token)
	if err != nil {
		return nil, err
	}
	return s.repo.FindAccountByID(ctx, accountID)
}
