package secret

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

// NewHex returns 2*n lowercase hex characters read from crypto/rand.
func NewHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("read random: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// NewPassword returns a 32 character one-time password.
func NewPassword() (string, error) { return NewHex(16) }
