package cache

import (
	"fmt"
	"strings"
)

// MaxKeyLength is the maximum allowed length of a key's exchange part.
const MaxKeyLength = 64

// Key identifies one exchange year.
type Key struct {
	Exchange string
	Year     int
}

// String returns the key in holidays:<exchange>:<year> form.
// It is deterministic and unique per key.
func (k Key) String() string {
	return fmt.Sprintf("holidays:%s:%d", k.Exchange, k.Year)
}

// ValidateKey checks if a key is valid for caching.
func ValidateKey(k Key) error {
	if strings.TrimSpace(k.Exchange) == "" {
		return ErrInvalidKey
	}
	if len(k.Exchange) > MaxKeyLength {
		return ErrKeyTooLong
	}
	// Reject exchanges with separators or line breaks
	if strings.ContainsAny(k.Exchange, ":\n\r") {
		return ErrInvalidKey
	}
	return nil
}
