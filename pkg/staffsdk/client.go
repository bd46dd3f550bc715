package staffsdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to the public endpoints of a staffdb service and opens
// Sessions for the protected ones.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the service at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an access token obtained elsewhere.
func (c *Client) NewSession(accessToken string, expiresIn int) *Session {
	return newSession(c, &TokenResponse{
		AccessToken: accessToken,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
	})
}
