package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/aussiebroadwan/taskboard/internal/tasks/domain"
	"github.com/aussiebroadwan/taskboard/internal/tasks/store"
	"github.com/aussiebroadwan/taskboard/pkg/cryptox"
	"github.com/aussiebroadwan/taskboard/pkg/jwtx"
	"github.com/aussiebroadwan/taskboard/pkg/slogx"
)

// MaxNameLength bounds user names; they end up in keys and token claims.
const MaxNameLength = 64

type AuthService struct {
	Store    store.Store
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TokenTTL time.Duration

	// Now is the clock used to stamp tokens and users. Defaults to time.Now.
	Now func() time.Time
}

func (s *AuthService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *AuthService) ttl() time.Duration {
	if s.TokenTTL > 0 {
		return s.TokenTTL
	}
	return jwtx.DefaultTokenTTL
}

// Register hashes password and stores a new user called name.
func (s *AuthService) Register(ctx context.Context, name, password string) error {
	if err := validateCredentials(name, password); err != nil {
		return err
	}

	_, err := s.Store.Users().GetUserByName(ctx, name)
	switch {
	case err == nil:
		return ErrUserExists
	case !errors.Is(err, store.ErrNotFound):
		return fmt.Errorf("lookup user: %w", err)
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return invalid("password", "must be at most 72 bytes")
		}
		return fmt.Errorf("hash password: %w", err)
	}

	err = s.Store.Users().CreateUser(ctx, domain.User{
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    s.now(),
	})
	if err != nil {
		// Lost a race with a concurrent registration of the same name.
		if errors.Is(err, store.ErrAlreadyExists) {
			return ErrUserExists
		}
		return fmt.Errorf("create user: %w", err)
	}

	slogx.FromContext(ctx).Info("user registered", "user", name)
	return nil
}

// Login checks the password for name and issues a signed token.
func (s *AuthService) Login(ctx context.Context, name, password string) (token string, user string, err error) {
	if err := validateCredentials(name, password); err != nil {
		return "", "", err
	}

	u, err := s.Store.Users().GetUserByName(ctx, name)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", "", ErrUserNotFound
		}
		return "", "", fmt.Errorf("lookup user: %w", err)
	}

	if err := cryptox.VerifyPassword(password, u.PasswordHash); err != nil {
		if errors.Is(err, cryptox.ErrPasswordMismatch) {
			slogx.FromContext(ctx).Info("login rejected", "user", name)
			return "", "", ErrInvalidCredentials
		}
		return "", "", fmt.Errorf("verify password: %w", err)
	}

	claims := jwtx.NewClaims(u.Name, s.Issuer, s.ttl(), s.now())
	token, err = s.Signer.Sign(claims)
	if err != nil {
		return "", "", fmt.Errorf("sign token: %w", err)
	}

	return token, u.Name, nil
}

// Authenticate resolves a token to the name it was issued for.
func (s *AuthService) Authenticate(token string) (string, error) {
	if strings.TrimSpace(token) == "" {
		return "", ErrMissingToken
	}

	claims, err := s.Verifier.Verify(token)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims.Name == "" {
		return "", fmt.Errorf("%w: empty name claim", ErrInvalidToken)
	}
	return claims.Name, nil
}

func validateCredentials(name, password string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return invalid("name", "is required")
	case len(name) > MaxNameLength:
		return invalid("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	case password == "":
		return invalid("password", "is required")
	}
	return nil
}
