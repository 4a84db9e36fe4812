package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// Configuration for Argon2id hashing.
const (
	memory      = 19 * 1024 // Memory usage in KiB (19 MiB)
	iterations  = 2         // Iteration count
	parallelism = 1         // Number of threads
	keyLength   = 32        // Length of the generated hash
	saltLength  = 16        // Length of the salt
)

// ErrPasswordMismatch is returned by Verify when the password is wrong.
var ErrPasswordMismatch = errors.New("password does not match")

// PasswordHasher hashes passwords with Argon2id. The pepper is mixed into
// every password and is never stored next to the hashes.
type PasswordHasher struct {
	pepper string
}

// NewPasswordHasher returns a hasher using pepper. An empty pepper is allowed
// but weakens stolen-database attacks.
func NewPasswordHasher(pepper string) *PasswordHasher {
	return &PasswordHasher{pepper: pepper}
}

// Hash generates a PHC-format Argon2id hash string including salt and parameters.
func (h *PasswordHasher) Hash(password string) (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	hash := argon2.IDKey([]byte(password+h.pepper), salt, iterations, memory, parallelism, keyLength)

	return fmt.Sprintf(
		"$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		memory,
		iterations,
		parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(hash),
	), nil
}

// Verify compares a plaintext password against a PHC-style Argon2id hash.
// It returns ErrPasswordMismatch for a wrong password and a descriptive error
// for a malformed hash.
func (h *PasswordHasher) Verify(password, encodedHash string) error {
	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", "salt", "hash"]
	parts := strings.Split(encodedHash, "$")
	if len(parts) != 6 {
		return errors.New("invalid hash format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid hash format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid hash format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid hash format: failed to parse parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid hash format: failed to decode hash: %w", err)
	}

	computed := argon2.IDKey(
		[]byte(password+h.pepper),
		salt,
		iters,
		mem,
		par,
		uint32(len(expected)), // #nosec G115 - If this overflows we have bigger problems
	)

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}
