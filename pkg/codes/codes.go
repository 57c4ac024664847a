package codes

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"math/big"
)

// Handshake codes are read over the phone or off a screen, so the alphabet
// drops the characters people confuse: 0/O, 1/I/L.
const alphabet = "ABCDEFGHJKMNPQRSTUVWXYZ23456789"

const (
	// StartCodeLength is used for the provider-verified start code.
	StartCodeLength = 8
	// EndCodeLength is used for the customer-verified end code.
	EndCodeLength = 6
)

// Generate returns an n-character code from the unambiguous alphabet using
// a cryptographically secure source. It has no side effects and the result
// must never be logged or persisted in plaintext beyond the one-time
// display column.
func Generate(n int) (string, error) {
	out := make([]byte, n)
	max := big.NewInt(int64(len(alphabet)))
	for i := range out {
		idx, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		out[i] = alphabet[idx.Int64()]
	}
	return string(out), nil
}

// Hash computes the one-way SHA-256 hex digest of a code.
func Hash(code string) string {
	sum := sha256.Sum256([]byte(code))
	return hex.EncodeToString(sum[:])
}

// Verify re-hashes the candidate and compares digests. Verification never
// compares plaintext to plaintext.
func Verify(hash, candidate string) bool {
	return hash != "" && Hash(candidate) == hash
}
