package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/callmeAyanda/digital-healthcare-management-system/internal/platform/auth"
)

type Service struct {
	users    Repository
	secret   string
	tokenTTL time.Duration
}

func NewService(users Repository, secret string, tokenTTL time.Duration) *Service {
	return &Service{users: users, secret: secret, tokenTTL: tokenTTL}
}

// Register creates an account and returns a signed access token. A duplicate
// email is reported as ErrEmailTaken without confirming which field collided.
func (s *Service) Register(ctx context.Context, email, password, name, role string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, "", fmt.Errorf("valid email is required")
	}
	if len(password) < 8 {
		return nil, "", fmt.Errorf("password must be at least 8 characters")
	}
	if name == "" {
		return nil, "", fmt.Errorf("name is required")
	}
	if !ValidRole(role) {
		return nil, "", fmt.Errorf("invalid role: %s", role)
	}

	hash, err := auth.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	u := &User{Email: email, PasswordHash: hash, Name: name, Role: role}
	if err := s.users.Create(ctx, u); err != nil {
		return nil, "", err
	}

	token, err := auth.MakeToken(u.ID.String(), u.Role, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login verifies credentials. Unknown email and wrong password produce the
// same ErrInvalidCredentials so the response shape leaks nothing.
func (s *Service) Login(ctx context.Context, email, password string) (*User, string, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", err
	}
	if !auth.CheckPassword(u.PasswordHash, password) {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.MakeToken(u.ID.String(), u.Role, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}
