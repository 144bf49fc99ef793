// Package codes generates the short manual fallback codes attendees use when
// their QR code cannot be scanned.
package codes

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const (
	charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	// Length is the number of characters in a manual code. Six characters
	// keeps the code short enough for verbal relay at a checkpoint.
	Length = 6
)

// Generate returns a random upper-case alphanumeric manual code. Uniqueness
// is enforced by the store, not here; callers retry on collision.
func Generate() (string, error) {
	buf := make([]byte, Length)
	max := big.NewInt(int64(len(charset)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("generate manual code: %w", err)
		}
		buf[i] = charset[n.Int64()]
	}
	return string(buf), nil
}
