package jwtx

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/staffdb/pkg/cryptox"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultAccessTokenTTL is the lifetime of an access token when the caller
// does not ask for anything else.
const DefaultAccessTokenTTL = 30 * time.Minute

// Claims are the access-token claims. The subject is the authenticated
// operator; everything else is registered claims.
type Claims struct {
	jwt.RegisteredClaims
}

// NewAccessClaims builds claims for subject valid from now for ttl. A
// negative ttl yields claims that are already expired.
func NewAccessClaims(subject, issuer string, ttl time.Duration, now time.Time) (Claims, error) {
	jti, err := NewJTI()
	if err != nil {
		return Claims{}, err
	}
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        jti,
		},
	}, nil
}

// generateJTI is swapped in tests to simulate an entropy failure.
var generateJTI = func() (string, error) {
	return cryptox.GenerateToken(cryptox.TokenSize128)
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() (string, error) {
	jti, err := generateJTI()
	if err != nil {
		return "", fmt.Errorf("jwtx: generate jti: %w", err)
	}
	return jti, nil
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil
	}
	if c.Issuer != expected {
		return ErrIssuer
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't used before
// nbf, allowing leeway for clock skew in both directions.
func (c *Claims) ValidateExpiry(now time.Time, leeway time.Duration) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}
	if !now.Before(c.ExpiresAt.Add(leeway)) {
		return ErrExpired
	}
	if c.NotBefore != nil && now.Before(c.NotBefore.Add(-leeway)) {
		return ErrNotYetValid
	}
	return nil
}
