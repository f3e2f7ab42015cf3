package primitives

import (
	"crypto/sha256"
	"encoding/hex"

	rc "github.com/comalice/rivercrossing"
)

// Fingerprint returns a deterministic identifier for a path: the first
// eight bytes of the SHA-256 of its canonical state keys, hex encoded. An
// empty path has the fingerprint of no input.
func Fingerprint(path []rc.State) string {
	h := sha256.New()
	for _, s := range path {
		h.Write([]byte(s.Key()))
		h.Write([]byte{'\n'})
	}
	sum := h.Sum(nil)
	return hex.EncodeToString(sum[:8])
}
