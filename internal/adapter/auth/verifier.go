package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"adframe/internal/core/domain"
)

// Verifier checks HS256 access tokens issued by the hosted auth provider
// and turns them into a domain.Principal.
type Verifier struct {
	secret   []byte
	audience string
	leeway   time.Duration
}

// NewVerifier returns a verifier for tokens signed with secret. An empty
// audience disables the audience check.
func NewVerifier(secret, audience string, leeway time.Duration) (*Verifier, error) {
	if secret == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret), audience: audience, leeway: leeway}, nil
}

// Verify parses raw and returns the caller it identifies. Any failure is
// reported as domain.ErrUnauthorized.
func (v *Verifier) Verify(raw string) (domain.Principal, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithLeeway(v.leeway),
		jwt.WithExpirationRequired(),
	}
	if v.audience != "" {
		opts = append(opts, jwt.WithAudience(v.audience))
	}

	parsed, err := jwt.ParseWithClaims(raw, &jwt.RegisteredClaims{}, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}, opts...)
	if err != nil {
		return domain.Principal{}, fmt.Errorf("%w: %w", domain.ErrUnauthorized, err)
	}
	c, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok || !parsed.Valid || c.Subject == "" {
		return domain.Principal{}, fmt.Errorf("%w: invalid token claims", domain.ErrUnauthorized)
	}
	return domain.Principal{UserID: c.Subject}, nil
}
