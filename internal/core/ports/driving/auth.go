package driving

import (
	"context"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// AuthService handles registration, credential verification, and the token
// lifecycle.
type AuthService interface {
	// Register creates a new user and mints its first token pair.
	// Returns domain.ErrAlreadyExists on a username collision.
	Register(ctx context.Context, username, password string) (*domain.User, *domain.TokenPair, error)

	// Login verifies credentials and mints a fresh token pair. Unknown
	// users and wrong passwords both return domain.ErrNotAuthorized.
	Login(ctx context.Context, username, password string) (*domain.TokenPair, error)

	// Refresh exchanges a valid refresh token for a brand-new pair. The
	// old refresh token is not invalidated server-side; it remains usable
	// until natural expiry.
	Refresh(ctx context.Context, refreshToken string) (*domain.TokenPair, error)

	// DecodeAccessToken validates a token and returns its subject id, for
	// use by request-authentication middleware. Any codec failure surfaces
	// as domain.ErrNotAuthorized.
	DecodeAccessToken(ctx context.Context, token string) (uuid.UUID, error)
}
