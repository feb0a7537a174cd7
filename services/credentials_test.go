package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
)

func TestLocalAuthenticator_Authenticate(t *testing.T) {
	ctx := context.Background()

	activeUser := func() *models.User {
		return models.NewUser("alice", "$2a$10$hash")
	}

	t.Run("accepts a matching password on an active account", func(t *testing.T) {
		users := &mockUserRepository{}
		hasher := &mockHasher{}
		authn := NewLocalAuthenticator(users, hasher, zap.NewNop())

		users.On("FindByUsername", ctx, "alice").Return(activeUser(), nil)
		hasher.On("Matches", "secret123", "$2a$10$hash").Return(true)

		assert.NoError(t, authn.Authenticate(ctx, "alice", "secret123"))
	})

	t.Run("rejects a password mismatch", func(t *testing.T) {
		users := &mockUserRepository{}
		hasher := &mockHasher{}
		authn := NewLocalAuthenticator(users, hasher, zap.NewNop())

		users.On("FindByUsername", ctx, "alice").Return(activeUser(), nil)
		hasher.On("Matches", "wrong", "$2a$10$hash").Return(false)

		assert.ErrorIs(t, authn.Authenticate(ctx, "alice", "wrong"), ErrBadCredentials)
	})

	t.Run("reports an unknown username as bad credentials", func(t *testing.T) {
		users := &mockUserRepository{}
		hasher := &mockHasher{}
		authn := NewLocalAuthenticator(users, hasher, zap.NewNop())

		users.On("FindByUsername", ctx, "ghost").Return(nil, repositories.ErrNotFound)

		assert.ErrorIs(t, authn.Authenticate(ctx, "ghost", "whatever"), ErrBadCredentials)
		hasher.AssertNotCalled(t, "Matches", mock.Anything, mock.Anything)
	})

	t.Run("rejects a disabled account before comparing hashes", func(t *testing.T) {
		users := &mockUserRepository{}
		hasher := &mockHasher{}
		authn := NewLocalAuthenticator(users, hasher, zap.NewNop())

		user := activeUser()
		user.Enabled = false
		users.On("FindByUsername", ctx, "alice").Return(user, nil)

		assert.ErrorIs(t, authn.Authenticate(ctx, "alice", "secret123"), ErrAccountDisabled)
		hasher.AssertNotCalled(t, "Matches", mock.Anything, mock.Anything)
	})

	t.Run("rejects a locked account before comparing hashes", func(t *testing.T) {
		users := &mockUserRepository{}
		hasher := &mockHasher{}
		authn := NewLocalAuthenticator(users, hasher, zap.NewNop())

		user := activeUser()
		user.Locked = true
		users.On("FindByUsername", ctx, "alice").Return(user, nil)

		assert.ErrorIs(t, authn.Authenticate(ctx, "alice", "secret123"), ErrAccountLocked)
		hasher.AssertNotCalled(t, "Matches", mock.Anything, mock.Anything)
	})

	t.Run("rejects empty input", func(t *testing.T) {
		users := &mockUserRepository{}
		authn := NewLocalAuthenticator(users, &mockHasher{}, zap.NewNop())

		assert.ErrorIs(t, authn.Authenticate(ctx, "", "secret"), ErrInvalidInput)
		assert.ErrorIs(t, authn.Authenticate(ctx, "alice", ""), ErrInvalidInput)
		users.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})

	t.Run("wraps store failures as internal", func(t *testing.T) {
		users := &mockUserRepository{}
		authn := NewLocalAuthenticator(users, &mockHasher{}, zap.NewNop())

		users.On("FindByUsername", ctx, "alice").Return(nil, errors.New("connection reset"))

		assert.True(t, IsInternalError(authn.Authenticate(ctx, "alice", "secret123")))
	})
}
