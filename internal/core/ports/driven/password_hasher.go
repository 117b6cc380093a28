package driven

// PasswordHasher handles one-way password hashing and verification.
type PasswordHasher interface {
	// Hash derives a salted, self-describing hash from a plaintext
	// password. Two calls on the same input yield different strings.
	Hash(password string) (string, error)

	// Verify reports whether password matches the given hash string,
	// using the salt and cost embedded in it. Returns false (never an
	// error) for malformed hash strings.
	Verify(password, hash string) bool
}
