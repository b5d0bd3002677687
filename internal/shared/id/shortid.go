// Package id generates URL-safe random identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Base62 alphabet: 0-9, A-Z, a-z
const alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	// DefaultLength is the default length for generated short IDs.
	DefaultLength = 12

	// PublicTokenLength gives log2(62^43) ≈ 256 bits of entropy.
	PublicTokenLength = 43
)

// Generate creates a cryptographically random Base62 string of the given length.
func Generate(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}

	result := make([]byte, length)
	max := big.NewInt(int64(len(alphabet)))
	for i := range result {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random number: %w", err)
		}
		result[i] = alphabet[n.Int64()]
	}
	return string(result), nil
}

// NewPublicToken returns an unguessable token for sharing a job card link.
func NewPublicToken() (string, error) {
	return Generate(PublicTokenLength)
}

// IsBase62 reports whether s consists only of Base62 characters.
func IsBase62(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= '0' && c <= '9' || c >= 'A' && c <= 'Z' || c >= 'a' && c <= 'z') {
			return false
		}
	}
	return true
}
