package id

import (
	"crypto/rand"
	"encoding/hex"
)

// NewID32 returns exactly 32 hex characters (no separators/prefixes).
func NewID32() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

// New returns a prefixed public id, e.g. New("loan") -> "loan-<32 hex>".
// Prefixes make stored ids self-describing when collections are
// inspected by hand.
func New(prefix string) string {
	if prefix == "" {
		return NewID32()
	}
	return prefix + "-" + NewID32()
}
