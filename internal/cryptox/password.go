// Package cryptox implements the hashing and random-string capabilities
// used by the credential and token components.
package cryptox

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"

	"golang.org/x/crypto/argon2"
)

// Argon2id parameters. Changing them only affects new digests: verification
// reads the parameters back from the encoded hash.
const (
	argonIterations  uint32 = 1
	argonMemory      uint32 = 64 * 1024
	argonParallelism uint8  = 4
	argonKeyLength   uint32 = 32
	argonSaltLength         = 16
)

var ErrPasswordMismatch = errors.New("password does not match")

// HashPassword generates a PHC-format argon2id digest including salt and
// parameters.
func HashPassword(password string) (string, error) {
	salt := make([]byte, argonSaltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}

	hash := argon2.IDKey([]byte(password), salt, argonIterations, argonMemory, argonParallelism, argonKeyLength)

	b64Salt := base64.RawStdEncoding.EncodeToString(salt)
	b64Hash := base64.RawStdEncoding.EncodeToString(hash)

	return fmt.Sprintf("$argon2id$v=19$m=%d,t=%d,p=%d$%s$%s",
		argonMemory, argonIterations, argonParallelism, b64Salt, b64Hash), nil
}

// VerifyPassword compares a plaintext password against a PHC-format
// argon2id digest. It returns ErrPasswordMismatch when the password does
// not match, and a descriptive error when the digest is malformed.
func VerifyPassword(password, encodedDigest string) error {
	parts := splitDigest(encodedDigest)

	// ["", "argon2id", "v=19", "m=X,t=Y,p=Z", salt, hash]
	if len(parts) != 6 {
		return errors.New("invalid digest format: expected 6 parts")
	}
	if parts[1] != "argon2id" {
		return errors.New("invalid digest format: not argon2id")
	}
	if parts[2] != "v=19" {
		return errors.New("invalid digest format: wrong version")
	}

	var mem, iters uint32
	var par uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &mem, &iters, &par); err != nil {
		return fmt.Errorf("invalid digest format: parameters: %w", err)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return fmt.Errorf("invalid digest format: salt: %w", err)
	}
	expected, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return fmt.Errorf("invalid digest format: hash: %w", err)
	}

	computed := argon2.IDKey([]byte(password), salt, iters, mem, par, uint32(len(expected)))

	if subtle.ConstantTimeCompare(computed, expected) == 1 {
		return nil
	}
	return ErrPasswordMismatch
}

func splitDigest(s string) []string {
	parts := make([]string, 0, 6)
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '$' {
			parts = append(parts, s[start:i])
			start = i + 1
		}
	}
	return append(parts, s[start:])
}
