// Package random provides the random sources used by template helpers.
//
// Production code draws from crypto/rand through Secure. Tests and fixtures
// use Seeded, a deterministic ChaCha8 stream, through the same Source
// interface.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
)

// NewSeed generates a random seed using crypto/rand.
func NewSeed() (int64, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}

	return int64(binary.LittleEndian.Uint64(b[:])), nil
}
