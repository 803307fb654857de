// Package crypto implements the credential-hashing layer of the application.
// Passwords are hashed with Argon2id using a fresh random salt per call and
// stored as self-describing PHC-formatted digest strings, so hashing
// parameters can be tuned without invalidating existing credentials.
package crypto

// PasswordHasher is the one-way credential hashing contract used at
// registration and login time.
type PasswordHasher interface {
	// HashPassword derives an Argon2id digest of password with a fresh
	// random salt. Two calls with the same password produce different
	// digests.
	HashPassword(password string) (string, error)

	// VerifyPassword recomputes the digest of password using the salt and
	// parameters embedded in digest and compares the results in constant
	// time. Returns false (with nil error) on a mismatch and
	// ErrMalformedDigest if digest is not a valid PHC string.
	VerifyPassword(digest string, password string) (bool, error)
}
