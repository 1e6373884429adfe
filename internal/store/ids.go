package store

import (
	"crypto/rand"
	"encoding/base32"
	"fmt"
	"strings"
	"time"
)

// newRandomID returns prefix-<suffix> where suffix is n bytes of base32
// (lowercase, no padding). 5 bytes -> 8 chars -> ~40 bits of space.
func newRandomID(prefix string, n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	enc := base32.StdEncoding.WithPadding(base32.NoPadding)
	return prefix + "-" + strings.ToLower(enc.EncodeToString(b)), nil
}

// NewEntryID generates a random entry id (ent-xxxxxxxx).
func NewEntryID() string {
	id, err := newRandomID("ent", 5)
	if err != nil {
		// crypto/rand failing is effectively fatal; keep going with a
		// timestamp id so a bulk import doesn't die halfway.
		return fmt.Sprintf("ent-%d", time.Now().UnixNano())
	}
	return id
}

// NewEntryIDLong generates a 16-char-suffix entry id for collision fallback.
func NewEntryIDLong() string {
	id, err := newRandomID("ent", 10)
	if err != nil {
		return fmt.Sprintf("ent-%d", time.Now().UnixNano())
	}
	return id
}
