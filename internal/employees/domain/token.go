package domain

// AccessToken is what a successful login hands back.
type AccessToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// TokenTypeBearer is the only token type issued.
const TokenTypeBearer = "bearer"
