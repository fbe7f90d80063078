package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexedwards/argon2id"

	"github.com/minervatires/site-api/internal/domain"
	"github.com/minervatires/site-api/internal/platform/auth"
	"github.com/minervatires/site-api/internal/repo/postgres"
	"github.com/minervatires/site-api/pkg/logger"
)

// AuthService signs staff and admin accounts into the back office.
// This is a convenience gate, not a security boundary; customers never
// authenticate.
type AuthService interface {
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

type authService struct {
	users      postgres.UserRepository
	jwtSecret  string
	sessionTTL time.Duration
}

func NewAuthService(users postgres.UserRepository, jwtSecret string, sessionTTL time.Duration) AuthService {
	return &authService{
		users:      users,
		jwtSecret:  jwtSecret,
		sessionTTL: sessionTTL,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		return "", nil, ErrInvalidCredentials
	}

	match, err := argon2id.ComparePasswordAndHash(password, user.PasswordHash)
	if err != nil {
		return "", nil, fmt.Errorf("compare password: %w", err)
	}
	if !match {
		return "", nil, ErrInvalidCredentials
	}

	token, err := auth.NewSessionToken(user.ID, user.Email, user.Role, s.jwtSecret, s.sessionTTL)
	if err != nil {
		return "", nil, fmt.Errorf("sign session token: %w", err)
	}

	logger.InfoContext(ctx, "user signed in", "user_id", user.ID, "role", user.Role)
	return token, user, nil
}
