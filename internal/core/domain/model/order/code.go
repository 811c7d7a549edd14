package order

import (
	"crypto/rand"
	"fmt"
	"time"
)

// codePrefix brands every order code shown to customers and bakers.
const codePrefix = "LC"

// GenerateCode produces a short human-facing order code of the form
// "LC" + unix timestamp + 2 random hex bytes, for example "LC1725012345A7F3".
// The code is what support and bakers quote; the UUID stays internal.
func GenerateCode(now time.Time) string {
	suffix := make([]byte, 2)
	_, _ = rand.Read(suffix)
	return fmt.Sprintf("%s%d%X", codePrefix, now.Unix(), suffix)
}
