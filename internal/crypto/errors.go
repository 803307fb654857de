package crypto

import "errors"

var (
	// ErrMalformedDigest is returned by VerifyPassword when the stored
	// digest cannot be parsed as a PHC-formatted Argon2id string.
	ErrMalformedDigest = errors.New("malformed password digest")

	// ErrIncompatibleVersion is returned when the digest was produced by an
	// Argon2 version this build does not implement.
	ErrIncompatibleVersion = errors.New("incompatible argon2 version")

	// ErrHashingFailed is returned when the OS CSPRNG cannot supply salt
	// bytes for a new digest.
	ErrHashingFailed = errors.New("password hashing failed")
)
