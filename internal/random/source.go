package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/big"
	mrand "math/rand/v2"
	"strconv"
	"sync"

	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
)

// Source supplies uniform integers and raw bytes.
type Source interface {
	// IntRange returns a uniform integer in the closed interval [lo, hi].
	IntRange(lo, hi int) (int, error)
	// Read fills p with random bytes.
	Read(p []byte) (int, error)
}

// Secure draws from crypto/rand. The zero value is ready to use and safe for
// concurrent callers.
type Secure struct{}

// NewSecure returns the crypto/rand backed source.
func NewSecure() Secure {
	return Secure{}
}

// IntRange implements Source.
func (Secure) IntRange(lo, hi int) (int, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	span := new(big.Int).Sub(big.NewInt(int64(hi)), big.NewInt(int64(lo)))
	span.Add(span, big.NewInt(1))
	n, err := crand.Int(crand.Reader, span)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeRandomSourceFailure, "draw random integer", err)
	}
	return lo + int(n.Int64()), nil
}

// Read implements Source.
func (Secure) Read(p []byte) (int, error) {
	n, err := crand.Read(p)
	if err != nil {
		return n, apperrors.Wrap(apperrors.CodeRandomSourceFailure, "read random bytes", err)
	}
	return n, nil
}

// Seeded is a deterministic source. It is not suitable for padding served to
// clients.
type Seeded struct {
	mu     sync.Mutex
	stream *mrand.ChaCha8
	rng    *mrand.Rand
}

// NewSeeded returns a deterministic source whose stream depends only on seed.
func NewSeeded(seed int64) *Seeded {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	stream := mrand.NewChaCha8(key)
	return &Seeded{stream: stream, rng: mrand.New(stream)}
}

// IntRange implements Source.
func (s *Seeded) IntRange(lo, hi int) (int, error) {
	if err := checkRange(lo, hi); err != nil {
		return 0, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	span := uint64(hi-lo) + 1
	return lo + int(s.rng.Uint64N(span)), nil
}

// Read implements Source.
func (s *Seeded) Read(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stream.Read(p)
}

func checkRange(lo, hi int) error {
	if hi < lo {
		return apperrors.WithMetadata(apperrors.CodeRandomInvalidRange, "random range upper bound below lower bound", map[string]string{
			"lo": strconv.Itoa(lo),
			"hi": strconv.Itoa(hi),
		})
	}
	return nil
}
