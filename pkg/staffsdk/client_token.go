package staffsdk

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// RequestToken exchanges the operator credentials for an access token.
func (c *Client) RequestToken(ctx context.Context, username, password string) (*TokenResponse, error) {
	data := url.Values{
		"username": {username},
		"password": {password},
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/token",
		strings.NewReader(data.Encode()),
		map[string]string{"Content-Type": "application/x-www-form-urlencoded"},
	)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, http.StatusOK); err != nil {
		return nil, err
	}

	return &tokenResp, nil
}

// Login requests a token and wraps it in a Session.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	tokenResp, err := c.RequestToken(ctx, username, password)
	if err != nil {
		return nil, err
	}

	return newSession(c, tokenResp), nil
}
