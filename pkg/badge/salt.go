package badge

import (
	"crypto/rand"
	"fmt"
	"io"
)

// GenerateSchemaSalt returns a fresh 32-byte schema salt from crypto/rand.
func GenerateSchemaSalt() ([32]byte, error) {
	return readSalt(rand.Reader)
}

func readSalt(source io.Reader) ([32]byte, error) {
	var salt [32]byte
	if _, err := io.ReadFull(source, salt[:]); err != nil {
		return [32]byte{}, fmt.Errorf("failed to generate schema salt: %w", err)
	}
	return salt, nil
}
