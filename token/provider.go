// Package token issues and verifies the signed bearer tokens used to
// authenticate API requests. Tokens are standard three-segment JWTs
// signed with HMAC-SHA256 under a single process-wide secret, carrying
// only a subject, an issued-at and an expiry claim.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Codec errors. Callers can test them with errors.Is; each represents
// a distinct rejection reason.
var (
	// ErrInvalidArgument is returned for a nil/empty token or subject,
	// before any decoding is attempted.
	ErrInvalidArgument = errors.New("token: invalid argument")

	// ErrMalformedToken is returned when the token is not structurally
	// a valid three-segment JWT.
	ErrMalformedToken = errors.New("token: malformed token")

	// ErrBadSignature is returned when the signature does not verify
	// under the configured secret.
	ErrBadSignature = errors.New("token: signature verification failed")

	// ErrExpired is returned when the signature verifies but the token
	// has expired. Expiry is never reported for a token whose
	// signature does not verify.
	ErrExpired = errors.New("token: expired")
)

// Claims are the decoded token fields: subject, issued-at, expires-at.
type Claims struct {
	jwt.RegisteredClaims
}

// Username returns the principal identifier the token was issued to
func (c *Claims) Username() string {
	return c.Subject
}

// Provider issues and verifies HS256 signed tokens. The secret and
// TTL are fixed at construction; a Provider is safe for concurrent
// use by any number of goroutines.
type Provider struct {
	secret []byte
	ttl    time.Duration
}

// NewProvider creates a Provider signing with the given secret. ttl
// may be non-positive, in which case issued tokens are already
// expired; verification rejects them with ErrExpired.
func NewProvider(secret []byte, ttl time.Duration) *Provider {
	return &Provider{secret: secret, ttl: ttl}
}

// Generate issues a signed token for the given username with
// issued-at now and expires-at now+ttl.
func (p *Provider) Generate(username string) (string, error) {
	if username == "" {
		return "", fmt.Errorf("%w: empty subject", ErrInvalidArgument)
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(p.ttl)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// DecodeClaims parses the token, verifies its signature and expiry,
// and returns the claims. Failure modes, in order of detection:
// ErrInvalidArgument (empty token), ErrMalformedToken (structure),
// ErrBadSignature (MAC mismatch), ErrExpired (past expiry, signature
// already verified).
func (p *Provider) DecodeClaims(tokenString string) (*Claims, error) {
	if tokenString == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidArgument)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return p.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenMalformed):
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, fmt.Errorf("%w: %v", ErrBadSignature, err)
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, fmt.Errorf("%w: %v", ErrExpired, err)
		default:
			return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
		}
	}

	return claims, nil
}

// ExtractUsername decodes the token and returns its subject
func (p *Provider) ExtractUsername(tokenString string) (string, error) {
	return ExtractClaim(p, tokenString, (*Claims).Username)
}

// ExtractExpiration decodes the token and returns its expiry time
func (p *Provider) ExtractExpiration(tokenString string) (time.Time, error) {
	return ExtractClaim(p, tokenString, func(c *Claims) time.Time {
		return c.ExpiresAt.Time
	})
}

// ExtractIssuedAt decodes the token and returns its issue time
func (p *Provider) ExtractIssuedAt(tokenString string) (time.Time, error) {
	return ExtractClaim(p, tokenString, func(c *Claims) time.Time {
		return c.IssuedAt.Time
	})
}

// ExtractClaim decodes the token and applies the given projection to
// its claims. It fails with the same errors as DecodeClaims.
func ExtractClaim[T any](p *Provider, tokenString string, projector func(*Claims) T) (T, error) {
	claims, err := p.DecodeClaims(tokenString)
	if err != nil {
		var zero T
		return zero, err
	}
	return projector(claims), nil
}

// ValidateForUser reports whether the token is valid and was issued
// to the given username. Decode failures (empty, malformed, bad
// signature, expired) are returned as errors; a valid token issued to
// a different principal yields (false, nil).
func (p *Provider) ValidateForUser(tokenString, username string) (bool, error) {
	claims, err := p.DecodeClaims(tokenString)
	if err != nil {
		return false, err
	}
	return claims.Subject == username, nil
}
