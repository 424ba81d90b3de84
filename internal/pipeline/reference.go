package pipeline

import (
	"crypto/rand"
	"math/big"
)

const (
	referenceAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	referenceLength   = 9
)

// NewReference generates the opaque batch reference assigned to a record at
// ingestion: nine upper-case base-36 characters. Assigned once, never
// recomputed.
func NewReference() string {
	max := big.NewInt(int64(len(referenceAlphabet)))
	token := make([]byte, referenceLength)
	for i := range token {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			// crypto/rand failing means the platform is broken; fall back to
			// a fixed character rather than panicking mid-batch.
			token[i] = referenceAlphabet[0]
			continue
		}
		token[i] = referenceAlphabet[n.Int64()]
	}
	return string(token)
}
