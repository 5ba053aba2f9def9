package admin

import (
	"context"
	"errors"
	"strings"

	"github.com/penzionapp/guesthouse-booking-backend/internal/auth"
)

type LoginResult struct {
	Token    string
	AdminID  string
	Username string
}

type Service interface {
	Login(ctx context.Context, username, password string) (*LoginResult, error)
	VerifyPassword(ctx context.Context, adminID, password string) error
	Register(ctx context.Context, username, password, email string) (*Admin, error)
}

type service struct {
	repo   Repository
	hasher auth.PasswordHasher
	jwt    *auth.JWTManager
}

func NewService(repo Repository, hasher auth.PasswordHasher, jwt *auth.JWTManager) Service {
	return &service{repo: repo, hasher: hasher, jwt: jwt}
}

func (s *service) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	a, err := s.repo.GetByUsername(ctx, strings.TrimSpace(username))
	if errors.Is(err, ErrNotFound) {
		// Same error as a wrong password so usernames cannot be probed.
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateAccessToken(a.ID, a.Username)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Token: token, AdminID: a.ID, Username: a.Username}, nil
}

// VerifyPassword re-checks the caller's password. Destructive admin
// operations require it in addition to a valid token.
func (s *service) VerifyPassword(ctx context.Context, adminID, password string) error {
	a, err := s.repo.GetByID(ctx, adminID)
	if err != nil {
		return err
	}
	if err := s.hasher.Compare(a.PasswordHash, password); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

func (s *service) Register(ctx context.Context, username, password, email string) (*Admin, error) {
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, &Admin{
		Username:     strings.TrimSpace(username),
		PasswordHash: hash,
		Email:        email,
	})
}
