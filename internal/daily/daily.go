package daily

import (
	"encoding/binary"
	"time"

	"golang.org/x/crypto/blake2b"
)

// DateKey returns YYYY-MM-DD in UTC.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// WordIndex returns a deterministic index for a date using keyed
// BLAKE2b-256(salt, YYYY-MM-DD) % listLen.
func WordIndex(date time.Time, salt string, listLen int) int {
	if listLen <= 0 {
		return 0
	}
	key := []byte(salt)
	if len(key) > blake2b.Size {
		// blake2b keys are at most 64 bytes
		sum := blake2b.Sum256(key)
		key = sum[:]
	}
	h, err := blake2b.New256(key)
	if err != nil {
		return 0
	}
	h.Write([]byte(DateKey(date)))
	sum := h.Sum(nil)
	// take first 8 bytes to uint64 for modulus distribution
	n := binary.BigEndian.Uint64(sum[:8])
	return int(n % uint64(listLen))
}
