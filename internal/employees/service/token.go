package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/staffdb/internal/employees/domain"
	"github.com/aussiebroadwan/staffdb/pkg/cryptox"
	"github.com/aussiebroadwan/staffdb/pkg/jwtx"
	"github.com/aussiebroadwan/staffdb/pkg/slogx"
)

// TokenConfig is the immutable configuration of the token authority.
type TokenConfig struct {
	Secret []byte
	Issuer string
	TTL    time.Duration
	Leeway time.Duration

	// Operator credentials accepted by Login. PasswordHash is an argon2id
	// PHC string produced with Pepper.
	Username     string
	PasswordHash string
	Pepper       string
}

// TokenService issues and verifies HS256 access tokens and exchanges the
// operator credentials for one.
type TokenService struct {
	cfg      TokenConfig
	signer   *jwtx.HS256Signer
	verifier *jwtx.HS256Verifier
	hasher   cryptox.PasswordHasher
}

// NewTokenService validates cfg and builds the signer and verifier from it.
func NewTokenService(cfg *TokenConfig) (*TokenService, error) {
	if cfg == nil {
		return nil, errors.New("token config is required")
	}
	c := *cfg
	if c.TTL == 0 {
		c.TTL = jwtx.DefaultAccessTokenTTL
	}

	signer, err := jwtx.NewSignerHS256("", c.Secret)
	if err != nil {
		return nil, err
	}
	if c.Username == "" || !cryptox.IsPHCHash(c.PasswordHash) {
		return nil, errors.New("operator username and argon2id password hash are required")
	}

	return &TokenService{
		cfg:      c,
		signer:   signer,
		verifier: jwtx.NewVerifierHS256(c.Secret, c.Issuer, c.Leeway),
		hasher:   cryptox.PasswordHasher{Pepper: c.Pepper},
	}, nil
}

// TTL is the default lifetime of issued tokens.
func (s *TokenService) TTL() time.Duration { return s.cfg.TTL }

// Issue signs a token for subject with the default lifetime.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.cfg.TTL)
}

// IssueWithTTL signs a token for subject valid for ttl. A negative ttl gives
// a token that is already expired.
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	claims, err := jwtx.NewAccessClaims(subject, s.cfg.Issuer, ttl, time.Now())
	if err != nil {
		return "", err
	}
	return s.signer.Sign(claims)
}

// Verify checks token and returns its claims. Every failure wraps
// ErrUnauthorized together with the jwtx reason.
func (s *TokenService) Verify(token string) (jwtx.Claims, error) {
	claims, err := s.verifier.Verify(token)
	if err != nil {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, err)
	}
	if claims.Subject == "" {
		return jwtx.Claims{}, fmt.Errorf("%w: %w", ErrUnauthorized, jwtx.ErrInvalidClaim)
	}
	return claims, nil
}

// Ready reports whether tokens can be signed.
func (s *TokenService) Ready() error { return s.signer.Validate() }

// Login exchanges the operator credentials for an access token.
func (s *TokenService) Login(ctx context.Context, username, password string) (domain.AccessToken, error) {
	l := slogx.FromContext(ctx)

	// The password is always checked so a wrong username costs the same.
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.cfg.Username)) == 1
	passErr := s.hasher.Verify(password, s.cfg.PasswordHash)

	if passErr != nil && !errors.Is(passErr, cryptox.ErrMismatch) {
		l.Error("operator password hash unusable", slog.Any("err", passErr))
		return domain.AccessToken{}, fmt.Errorf("verify password: %w", passErr)
	}
	if !userOK || passErr != nil {
		l.Info("login rejected", slog.String("username", username))
		return domain.AccessToken{}, fmt.Errorf("%w: incorrect username or password", ErrUnauthorized)
	}

	token, err := s.Issue(username)
	if err != nil {
		return domain.AccessToken{}, fmt.Errorf("sign token: %w", err)
	}

	l.Info("login succeeded", slog.String("username", username))
	return domain.AccessToken{
		AccessToken: token,
		TokenType:   domain.TokenTypeBearer,
		ExpiresIn:   int64(s.cfg.TTL / time.Second),
	}, nil
}
