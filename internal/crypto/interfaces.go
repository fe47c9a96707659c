package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/password_hasher_mock.go -package=mock

// PasswordHasher derives and verifies password hashes. Implementations must
// never make the plaintext password recoverable from the stored encoding.
type PasswordHasher interface {
	// Hash derives a self-describing encoded hash from the plaintext
	// password. The encoding carries the algorithm parameters and salt, so
	// parameters can be tuned later without invalidating stored hashes.
	Hash(password string) (string, error)

	// Verify reports whether password matches the encoded hash. A malformed
	// encoding is an error; a clean mismatch is (false, nil).
	Verify(password, encoded string) (bool, error)
}
