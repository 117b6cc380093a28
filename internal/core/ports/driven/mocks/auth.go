package mocks

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/authcore/internal/core/domain"
	"github.com/custodia-labs/authcore/internal/core/ports/driven"
)

// Ensure mocks implement the ports
var (
	_ driven.PasswordHasher = (*MockPasswordHasher)(nil)
	_ driven.TokenCodec     = (*MockTokenCodec)(nil)
)

// MockPasswordHasher is a mock implementation of PasswordHasher for testing.
// It uses plain text comparison. NOT secure - only for testing.
type MockPasswordHasher struct{}

// NewMockPasswordHasher creates a new MockPasswordHasher
func NewMockPasswordHasher() *MockPasswordHasher {
	return &MockPasswordHasher{}
}

// Hash returns the password as-is (for testing only)
func (m *MockPasswordHasher) Hash(password string) (string, error) {
	return password, nil
}

// Verify compares password with hash directly (for testing only)
func (m *MockPasswordHasher) Verify(password, hash string) bool {
	return password == hash
}

// MockTokenCodec is a mock implementation of TokenCodec for testing. Tokens
// are base64-encoded JSON payloads with no signature; expiry is still
// enforced so TTL behaviour can be tested.
type MockTokenCodec struct{}

// NewMockTokenCodec creates a new MockTokenCodec
func NewMockTokenCodec() *MockTokenCodec {
	return &MockTokenCodec{}
}

// Encode creates a base64-encoded JSON token for the subject
func (m *MockTokenCodec) Encode(subjectID uuid.UUID, ttl time.Duration) (string, error) {
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	payload := domain.TokenPayload{
		SubjectID: subjectID,
		ExpiresAt: time.Now().UTC().Add(ttl),
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal payload: %w", err)
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// Decode parses a base64-encoded JSON token and checks expiry
func (m *MockTokenCodec) Decode(token string) (domain.TokenPayload, error) {
	data, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}

	var payload domain.TokenPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}

	if payload.IsExpired() {
		return domain.TokenPayload{}, domain.ErrInvalidToken
	}

	if payload.SubjectID == uuid.Nil {
		return domain.TokenPayload{}, domain.ErrMissingSubject
	}

	return payload, nil
}
