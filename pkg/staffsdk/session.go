package staffsdk

import (
	"errors"
	"sync"
	"time"
)

// ErrSessionExpired is returned before sending a request with a token the
// session already knows to be expired.
var ErrSessionExpired = errors.New("access token expired, log in again")

// Session carries an access token for the protected endpoints. It is safe
// for concurrent use.
type Session struct {
	client *Client

	mu          sync.RWMutex
	accessToken string
	expiresAt   time.Time
}

func newSession(client *Client, tokenResp *TokenResponse) *Session {
	s := &Session{
		client:      client,
		accessToken: tokenResp.AccessToken,
	}
	if tokenResp.ExpiresIn > 0 {
		s.expiresAt = time.Now().Add(time.Duration(tokenResp.ExpiresIn) * time.Second)
	}
	return s
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// ExpiresAt is when the token stops being accepted. Zero means unknown.
func (s *Session) ExpiresAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expiresAt
}

func (s *Session) validToken() (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.expiresAt.IsZero() && !time.Now().Before(s.expiresAt) {
		return "", ErrSessionExpired
	}
	return s.accessToken, nil
}
