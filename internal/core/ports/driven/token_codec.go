package driven

import (
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
)

// TokenCodec encodes and decodes signed, time-bound tokens carrying a
// subject identifier. The same codec mints both access and refresh tokens,
// differentiated only by TTL.
type TokenCodec interface {
	// Encode signs a claim set {subjectID, now + ttl} and returns the
	// compact representation. A non-positive ttl falls back to the
	// codec's documented default.
	Encode(subjectID uuid.UUID, ttl time.Duration) (string, error)

	// Decode verifies signature and expiry. It returns
	// domain.ErrInvalidToken for tampered, malformed, or expired tokens
	// and domain.ErrMissingSubject when the claims verify but carry no
	// usable subject identifier.
	Decode(token string) (domain.TokenPayload, error)
}
