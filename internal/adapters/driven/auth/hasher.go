package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/custodia-labs/authcore/internal/core/ports/driven"
)

// Ensure Hasher implements PasswordHasher
var _ driven.PasswordHasher = (*Hasher)(nil)

// Hasher handles password hashing and verification using bcrypt. The hash
// string is self-describing (algorithm, cost, salt, digest), so the cost
// factor can be raised later without a schema change.
type Hasher struct {
	cost int
}

// NewHasher creates a hasher with the default bcrypt cost
func NewHasher() *Hasher {
	return &Hasher{cost: bcrypt.DefaultCost}
}

// NewHasherWithCost creates a hasher with a custom bcrypt cost
func NewHasherWithCost(cost int) *Hasher {
	return &Hasher{cost: cost}
}

// Hash generates a bcrypt hash from a plaintext password. A fresh random
// salt is drawn per call, so repeated hashes of one password differ.
func (h *Hasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Verify checks if a password matches a bcrypt hash. bcrypt's comparison is
// constant time; malformed hash strings simply verify as false.
func (h *Hasher) Verify(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	return err == nil
}
