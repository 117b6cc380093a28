package domain

import (
	"time"

	"github.com/google/uuid"
)

// TokenPayload is the claim set carried inside a signed token. It is never
// persisted; it exists only for the validity window of the encoded string.
type TokenPayload struct {
	SubjectID uuid.UUID `json:"subject_id"`
	ExpiresAt time.Time `json:"expires_at"`
}

// IsExpired checks whether the payload's expiry has passed.
func (p TokenPayload) IsExpired() bool {
	return time.Now().After(p.ExpiresAt)
}

// TokenPair is the access/refresh tuple returned after registration, login,
// or refresh. Callers are responsible for storing both tokens.
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

// RegisterRequest represents a registration attempt
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest represents a login attempt
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// RefreshRequest represents a token refresh attempt
type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}
