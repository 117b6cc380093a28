package auth

import (
	"testing"
)

// Low bcrypt cost keeps these tests fast; the cost factor does not change
// verification semantics.
const testCost = 4

func TestNewHasher(t *testing.T) {
	hasher := NewHasher()
	if hasher == nil {
		t.Fatal("expected non-nil hasher")
	}
}

func TestNewHasherWithCost(t *testing.T) {
	hasher := NewHasherWithCost(testCost)
	if hasher.cost != testCost {
		t.Errorf("expected cost %d, got %d", testCost, hasher.cost)
	}
}

func TestHasher_Hash(t *testing.T) {
	hasher := NewHasherWithCost(testCost)

	hash, err := hasher.Hash("mypassword")
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	if hash == "" {
		t.Error("expected non-empty hash")
	}

	if hash == "mypassword" {
		t.Error("hash should not equal plaintext password")
	}

	// Hash should be a full self-describing bcrypt string
	if len(hash) < 60 {
		t.Error("expected bcrypt hash to be at least 60 characters")
	}
}

func TestHasher_Hash_DifferentHashesForSamePassword(t *testing.T) {
	hasher := NewHasherWithCost(testCost)

	hash1, _ := hasher.Hash("password123")
	hash2, _ := hasher.Hash("password123")

	if hash1 == hash2 {
		t.Error("expected different hashes for same password (due to salt)")
	}
}

func TestHasher_Hash_EmptyPassword(t *testing.T) {
	hasher := NewHasherWithCost(testCost)

	hash, err := hasher.Hash("")
	if err != nil {
		t.Fatalf("unexpected error hashing empty password: %v", err)
	}
	if !hasher.Verify("", hash) {
		t.Error("expected empty password to verify against its own hash")
	}
	if hasher.Verify("nonempty", hash) {
		t.Error("expected non-empty password to fail against empty-password hash")
	}
}

func TestHasher_Verify_CorrectPassword(t *testing.T) {
	hasher := NewHasherWithCost(testCost)

	password := "correctpassword"
	hash, _ := hasher.Hash(password)

	if !hasher.Verify(password, hash) {
		t.Error("expected password verification to succeed")
	}
}

func TestHasher_Verify_IncorrectPassword(t *testing.T) {
	hasher := NewHasherWithCost(testCost)

	hash, _ := hasher.Hash("correctpassword")

	if hasher.Verify("wrongpassword", hash) {
		t.Error("expected password verification to fail for wrong password")
	}
}

func TestHasher_Verify_MalformedHash(t *testing.T) {
	hasher := NewHasher()

	malformed := []string{
		"",
		"not-a-valid-hash",
		"$2a$banana",
		"plaintext-that-looks-long-enough-to-be-a-hash-but-is-not-one",
	}

	for _, hash := range malformed {
		if hasher.Verify("password", hash) {
			t.Errorf("expected verification to fail for malformed hash %q", hash)
		}
	}
}
