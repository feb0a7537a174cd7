package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/HBortolim/btg-challenge/models"
	"github.com/HBortolim/btg-challenge/token"
	"github.com/HBortolim/btg-challenge/utils"
	"go.uber.org/zap"
)

// TokenDecoder decodes and verifies a bearer token, returning its
// claims
type TokenDecoder interface {
	DecodeClaims(tokenString string) (*token.Claims, error)
}

// PrincipalResolver resolves a token subject to a stored principal
type PrincipalResolver interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// AuthMiddleware gates protected routes behind bearer-token
// authentication. Tokens are never persisted; each request is decoded
// and re-verified independently.
type AuthMiddleware struct {
	decoder  TokenDecoder
	resolver PrincipalResolver
	logger   *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(decoder TokenDecoder, resolver PrincipalResolver, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		decoder:  decoder,
		resolver: resolver,
		logger:   logger,
	}
}

// RequireAuth rejects the request unless it carries a valid bearer
// token for a principal that still exists. On success the principal
// is bound to the request context for downstream handlers. No codec
// failure lets the request reach business logic.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := chimiddleware.GetReqID(ctx)

		tokenString := extractBearerToken(r)
		if tokenString == "" {
			m.logger.Warn("missing bearer token",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w, "Missing or invalid authorization")
			return
		}

		claims, err := m.decoder.DecodeClaims(tokenString)
		if err != nil {
			// A signature mismatch means a tampered or wrong-key
			// token; keep it visible as a security event.
			if errors.Is(err, token.ErrBadSignature) {
				m.logger.Warn("token signature verification failed",
					zap.String("request_id", requestID),
					zap.Error(err))
			} else {
				m.logger.Debug("token rejected",
					zap.String("request_id", requestID),
					zap.Error(err))
			}
			_ = utils.WriteUnauthorized(w, "Invalid or expired token")
			return
		}

		// Tokens are not revocable; a principal deleted after
		// issuance is caught here.
		user, err := m.resolver.FindByUsername(ctx, claims.Username())
		if err != nil {
			m.logger.Warn("token subject not resolvable",
				zap.String("request_id", requestID),
				zap.String("subject", claims.Username()),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, "Invalid or expired token")
			return
		}

		ctx = WithPrincipal(ctx, user)

		m.logger.Debug("authentication successful",
			zap.String("request_id", requestID),
			zap.String("subject", claims.Username()))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// extractBearerToken extracts the Bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
