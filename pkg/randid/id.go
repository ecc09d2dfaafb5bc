// Package randid generates short random identifiers for generated content.
package randid

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

// Generate returns a random lowercase alphanumeric string of the given length.
func Generate(length int) string {
	if length <= 0 {
		return ""
	}

	max := big.NewInt(int64(len(alphabet)))
	buf := make([]byte, length)
	for i := range buf {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back
			// to a fixed character rather than panic in an ID helper.
			buf[i] = alphabet[0]
			continue
		}
		buf[i] = alphabet[n.Int64()]
	}

	return string(buf)
}
