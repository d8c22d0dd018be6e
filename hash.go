package tamperlog

import (
	"crypto/sha256"
	"encoding/hex"
)

// Commit computes the commitment hash binding a payload to its
// predecessor: SHA-256 over prevHash || timestamp || "," || value,
// rendered as lowercase hex. Pure and deterministic.
func Commit(prev Hash, timestamp, value string) Hash {
	h := sha256.New()
	h.Write([]byte(prev))
	h.Write([]byte(timestamp))
	h.Write([]byte(Delimiter))
	h.Write([]byte(value))
	return Hash(hex.EncodeToString(h.Sum(nil)))
}

// hashEqual performs constant-time comparison of two hashes.
func hashEqual(a, b Hash) bool {
	if len(a) != len(b) {
		return false
	}
	var result byte
	for i := 0; i < len(a); i++ {
		result |= a[i] ^ b[i]
	}
	return result == 0
}
