package services

import (
	"context"
	"errors"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"github.com/HBortolim/btg-challenge/security"
	"go.uber.org/zap"
)

// TokenIssuer issues a signed bearer token for a principal
type TokenIssuer interface {
	Generate(username string) (string, error)
}

// AuthService implements the two public operations of the identity
// boundary: registration and login.
type AuthService struct {
	users         repositories.UserRepository
	hasher        security.PasswordHasher
	authenticator CredentialsAuthenticator
	tokens        TokenIssuer
	logger        *zap.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(
	users repositories.UserRepository,
	hasher security.PasswordHasher,
	authenticator CredentialsAuthenticator,
	tokens TokenIssuer,
	logger *zap.Logger,
) *AuthService {
	return &AuthService{
		users:         users,
		hasher:        hasher,
		authenticator: authenticator,
		tokens:        tokens,
		logger:        logger,
	}
}

// Register hashes the plaintext password and persists a new user.
// No uniqueness pre-check is made; a duplicate username surfaces as
// the store's conflict error.
func (s *AuthService) Register(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		return ErrInvalidInput.WithDetail("reason", "username and password are required")
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return WrapInternal("password hashing failed", err)
	}

	user := models.NewUser(username, hash)
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrDuplicate) {
			return ErrDuplicateUsername
		}
		return WrapInternal("user persistence failed", err)
	}

	s.logger.Info("user registered", zap.String("username", username))
	return nil
}

// Login verifies the credentials and returns a signed token for the
// principal. Credential-check failures (bad credentials, disabled,
// locked) are surfaced verbatim. A principal missing from the store
// after a successful credential check is an unrecoverable
// inconsistency.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if err := s.authenticator.Authenticate(ctx, username, password); err != nil {
		return "", err
	}

	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			s.logger.Error("authenticated principal missing from user store",
				zap.String("username", username))
			return "", ErrInconsistentState
		}
		return "", WrapInternal("user lookup failed", err)
	}

	tok, err := s.tokens.Generate(user.Username)
	if err != nil {
		return "", WrapInternal("token issuance failed", err)
	}

	s.logger.Info("user logged in", zap.String("username", username))
	return tok, nil
}
