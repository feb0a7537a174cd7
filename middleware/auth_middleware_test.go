package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/repositories"
	"github.com/HBortolim/btg-challenge/token"
)

type mockDecoder struct {
	mock.Mock
}

func (m *mockDecoder) DecodeClaims(tokenString string) (*token.Claims, error) {
	args := m.Called(tokenString)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*token.Claims), args.Error(1)
}

type mockResolver struct {
	mock.Mock
}

func (m *mockResolver) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func protectedRequest(t *testing.T, m *AuthMiddleware, authHeader string) (*httptest.ResponseRecorder, *models.User) {
	t.Helper()

	var seen *models.User
	handler := m.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = GetPrincipalFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/friends", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec, seen
}

func TestAuthMiddleware_RequireAuth(t *testing.T) {
	t.Run("binds the resolved principal on a valid token", func(t *testing.T) {
		provider := token.NewProvider([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
		tok, err := provider.Generate("alice")
		require.NoError(t, err)

		resolver := &mockResolver{}
		user := models.NewUser("alice", "$2a$10$hash")
		resolver.On("FindByUsername", mock.Anything, "alice").Return(user, nil)

		m := NewAuthMiddleware(provider, resolver, zap.NewNop())
		rec, seen := protectedRequest(t, m, "Bearer "+tok)

		assert.Equal(t, http.StatusOK, rec.Code)
		require.NotNil(t, seen)
		assert.Equal(t, "alice", seen.Username)
	})

	t.Run("rejects a missing header without calling the decoder", func(t *testing.T) {
		decoder := &mockDecoder{}
		resolver := &mockResolver{}
		m := NewAuthMiddleware(decoder, resolver, zap.NewNop())

		rec, seen := protectedRequest(t, m, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
		decoder.AssertNotCalled(t, "DecodeClaims", mock.Anything)
	})

	t.Run("rejects a non-bearer scheme", func(t *testing.T) {
		decoder := &mockDecoder{}
		m := NewAuthMiddleware(decoder, &mockResolver{}, zap.NewNop())

		rec, _ := protectedRequest(t, m, "Basic dXNlcjpwYXNz")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		decoder.AssertNotCalled(t, "DecodeClaims", mock.Anything)
	})

	t.Run("rejects any decode failure before business logic", func(t *testing.T) {
		cases := []struct {
			name string
			err  error
		}{
			{"malformed", token.ErrMalformedToken},
			{"bad signature", token.ErrBadSignature},
			{"expired", token.ErrExpired},
		}
		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				decoder := &mockDecoder{}
				resolver := &mockResolver{}
				decoder.On("DecodeClaims", "some-token").Return(nil, tc.err)

				m := NewAuthMiddleware(decoder, resolver, zap.NewNop())
				rec, seen := protectedRequest(t, m, "Bearer some-token")

				assert.Equal(t, http.StatusUnauthorized, rec.Code)
				assert.Nil(t, seen)
				resolver.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("rejects a token whose subject no longer exists", func(t *testing.T) {
		provider := token.NewProvider([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
		tok, err := provider.Generate("ghost")
		require.NoError(t, err)

		resolver := &mockResolver{}
		resolver.On("FindByUsername", mock.Anything, "ghost").Return(nil, repositories.ErrNotFound)

		m := NewAuthMiddleware(provider, resolver, zap.NewNop())
		rec, seen := protectedRequest(t, m, "Bearer "+tok)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Nil(t, seen)
	})

	t.Run("rejects an expired token end to end", func(t *testing.T) {
		provider := token.NewProvider([]byte("0123456789abcdef0123456789abcdef"), -time.Hour)
		tok, err := provider.Generate("alice")
		require.NoError(t, err)

		resolver := &mockResolver{}
		live := token.NewProvider([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
		m := NewAuthMiddleware(live, resolver, zap.NewNop())
		rec, _ := protectedRequest(t, m, "Bearer "+tok)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		resolver.AssertNotCalled(t, "FindByUsername", mock.Anything, mock.Anything)
	})
}

func TestExtractBearerToken(t *testing.T) {
	cases := []struct {
		name   string
		header string
		want   string
	}{
		{"standard bearer", "Bearer abc.def.ghi", "abc.def.ghi"},
		{"case-insensitive scheme", "bearer abc.def.ghi", "abc.def.ghi"},
		{"missing header", "", ""},
		{"no scheme", "abc.def.ghi", ""},
		{"wrong scheme", "Basic abc", ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			assert.Equal(t, tc.want, extractBearerToken(req))
		})
	}
}

func TestPrincipalContext(t *testing.T) {
	t.Run("round-trips the principal", func(t *testing.T) {
		user := models.NewUser("alice", "$2a$10$hash")
		ctx := WithPrincipal(context.Background(), user)

		assert.Same(t, user, GetPrincipalFromContext(ctx))
		assert.Equal(t, "alice", GetUsernameFromContext(ctx))
	})

	t.Run("anonymous context yields nil", func(t *testing.T) {
		ctx := context.Background()

		assert.Nil(t, GetPrincipalFromContext(ctx))
		assert.Empty(t, GetUsernameFromContext(ctx))
	})
}
