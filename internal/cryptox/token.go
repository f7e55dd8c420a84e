package cryptox

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const alphanumeric = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// MakeRandString generates a cryptographically random alphanumeric string
// of the given length. Refresh token values and invite suffixes are built
// from it.
func MakeRandString(length int) (string, error) {
	if length <= 0 {
		return "", fmt.Errorf("string length must be positive, got %d", length)
	}

	out := make([]byte, length)
	max := big.NewInt(int64(len(alphanumeric)))
	for i := range out {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("error generating random string: %w", err)
		}
		out[i] = alphanumeric[n.Int64()]
	}
	return string(out), nil
}
