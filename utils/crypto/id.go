package crypto

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
)

// IDLength is the number of random bytes in a generated identifier.
// Hex-encoded, an identifier is twice this long.
const IDLength = 16

// NewID generates a cryptographically secure random identifier used as the
// primary key for every inserted row.
func NewID() (string, error) {
	buf := make([]byte, IDLength)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return "", fmt.Errorf("failed to generate identifier: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
