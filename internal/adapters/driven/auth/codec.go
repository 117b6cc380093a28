package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
)

// DefaultTTL applies when Encode is called with a non-positive ttl. All
// current callers pass an explicit ttl; this is a documented fallback only.
const DefaultTTL = 15 * time.Minute

// Ensure Codec implements TokenCodec
var _ driven.TokenCodec = (*Codec)(nil)

// tokenClaims is the wire shape of the claim set
type tokenClaims struct {
	UserID string `json:"user_id"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens with a process-wide secret. The
// secret and algorithm are fixed at construction and never mutated, so a
// single Codec is safe for concurrent use.
type Codec struct {
	secret []byte
}

// NewCodec creates a codec with the given signing secret
func NewCodec(secret string) *Codec {
	return &Codec{secret: []byte(secret)}
}

// Encode signs a claim set {subjectID, now + ttl} and returns the compact
// representation
func (c *Codec) Encode(subjectID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	claims := tokenClaims{
		UserID: subjectID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(c.secret)
}

// Decode verifies signature and expiry and returns the embedded payload
func (c *Codec) Decode(tokenString string) (domain.TokenPayload, error) {
	token, err := jwt.ParseWithClaims(tokenString, &tokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return c.secret, nil
	})
	// jwt/v5 folds expiry into parse errors; tampered, malformed, and
	// expired tokens are all the same failure class to callers.
	if err != nil {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*tokenClaims)
	if !ok || !token.Valid {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}

	if claims.UserID == "" {
		return domain.TokenPayload{}, domain.ErrMissingSubject
	}

	subjectID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return domain.TokenPayload{}, domain.ErrMissingSubject
	}

	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}

	return domain.TokenPayload{
		SubjectID: subjectID,
		ExpiresAt: expiresAt,
	}, nil
}
