package services

import (
	"context"
	"errors"

	"github.com/HBortolim/btg-challenge/repositories"
	"github.com/HBortolim/btg-challenge/security"
	"go.uber.org/zap"
)

// CredentialsAuthenticator verifies a principal's credentials. It
// succeeds silently or fails with ErrBadCredentials,
// ErrAccountDisabled or ErrAccountLocked. AuthService delegates to
// this contract instead of comparing hashes itself.
type CredentialsAuthenticator interface {
	Authenticate(ctx context.Context, username, password string) error
}

// LocalAuthenticator checks credentials against the local user store
// with a one-way hash comparison. It is the fallback used when no
// external identity authority is configured.
type LocalAuthenticator struct {
	users  repositories.UserRepository
	hasher security.PasswordHasher
	logger *zap.Logger
}

// NewLocalAuthenticator creates a store-backed credentials authenticator
func NewLocalAuthenticator(users repositories.UserRepository, hasher security.PasswordHasher, logger *zap.Logger) *LocalAuthenticator {
	return &LocalAuthenticator{
		users:  users,
		hasher: hasher,
		logger: logger,
	}
}

// Authenticate verifies the username/password pair. An unknown
// username reports ErrBadCredentials rather than not-found, so the
// response does not reveal which usernames exist.
func (a *LocalAuthenticator) Authenticate(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput
	}

	user, err := a.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrBadCredentials
		}
		return WrapInternal("credential lookup failed", err)
	}

	if !user.Enabled {
		return ErrAccountDisabled
	}
	if user.Locked {
		return ErrAccountLocked
	}

	if !a.hasher.Matches(password, user.PasswordHash) {
		a.logger.Debug("password mismatch", zap.String("username", username))
		return ErrBadCredentials
	}

	return nil
}
