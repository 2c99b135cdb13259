package translations

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"
)

// Fingerprint computes the SHA-256 digest of a dictionary over its sorted
// key/value pairs. Two dictionaries with the same entries always produce
// the same fingerprint regardless of map iteration order.
func Fingerprint(d Dictionary) string {
	keys := make([]string, 0, len(d))
	for k := range d {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(d[k]))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// ShortFingerprint returns the first 12 hex characters of Fingerprint,
// enough for log correlation.
func ShortFingerprint(d Dictionary) string {
	return Fingerprint(d)[:12]
}
