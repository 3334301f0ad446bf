// Package padding generates random filler used to obscure response sizes.
//
// Padding is URL-safe base64 text split into randomly sized chunks so one
// chunk can trail a response body while the rest ride along in hidden form
// fields of the next request.
package padding

import (
	"encoding/base64"
	"slices"
	"strconv"

	apperrors "github.com/whistlebox/webfilters/internal/platform/errors"
	"github.com/whistlebox/webfilters/internal/random"
)

const (
	// DefaultChunkCount is the chunk count used when callers pass none.
	DefaultChunkCount = 1
	// DefaultMaxSize bounds the total padding length when callers pass none.
	DefaultMaxSize = 1 << 20

	// maxDrawAttempts caps each rejection loop. Valid inputs almost never
	// reach it.
	maxDrawAttempts = 1 << 16
)

// Generator produces padding chunks from an injected random source.
type Generator struct {
	src random.Source
}

// New returns a Generator drawing from src.
func New(src random.Source) *Generator {
	return &Generator{src: src}
}

// NewSecure returns a Generator backed by crypto/rand.
func NewSecure() *Generator {
	return New(random.NewSecure())
}

// GenerateDefault returns a single chunk of up to DefaultMaxSize characters.
func (g *Generator) GenerateDefault() ([]string, error) {
	return g.Generate(DefaultChunkCount, DefaultMaxSize)
}

// Generate returns chunkCount non-empty chunks whose concatenation is a
// random URL-safe base64 string with length in [chunkCount, maxSize].
func (g *Generator) Generate(chunkCount, maxSize int) ([]string, error) {
	if chunkCount <= 0 {
		return nil, apperrors.WithMetadata(apperrors.CodePaddingInvalidChunkCount, "chunk count must be positive", map[string]string{
			"chunk_count": strconv.Itoa(chunkCount),
		})
	}
	if maxSize < chunkCount {
		return nil, apperrors.WithMetadata(apperrors.CodePaddingSizeTooSmall, "max size is smaller than chunk count", map[string]string{
			"chunk_count": strconv.Itoa(chunkCount),
			"max_size":    strconv.Itoa(maxSize),
		})
	}

	padAmt, err := g.drawAmount(chunkCount, maxSize)
	if err != nil {
		return nil, err
	}

	text, err := g.encode(padAmt)
	if err != nil {
		return nil, err
	}

	cuts, err := g.drawCuts(chunkCount, padAmt)
	if err != nil {
		return nil, err
	}

	chunks := make([]string, 0, chunkCount)
	for i := 0; i < len(cuts)-1; i++ {
		chunks = append(chunks, text[cuts[i]:cuts[i+1]])
	}
	return chunks, nil
}

// drawAmount picks the total padding length uniformly from [0, maxSize],
// redrawing until it can hold chunkCount chunks. If the cap is hit it draws
// from [chunkCount, maxSize] directly, which has the same distribution.
func (g *Generator) drawAmount(chunkCount, maxSize int) (int, error) {
	for attempt := 0; attempt < maxDrawAttempts; attempt++ {
		n, err := g.src.IntRange(0, maxSize)
		if err != nil {
			return 0, err
		}
		if n >= chunkCount {
			return n, nil
		}
	}
	return g.src.IntRange(chunkCount, maxSize)
}

// encode returns exactly padAmt base64 characters. Base64 carries 4
// characters per 3 bytes, so ceil(padAmt*3/4) bytes always suffice.
func (g *Generator) encode(padAmt int) (string, error) {
	raw := make([]byte, (padAmt*3+3)/4)
	if _, err := g.src.Read(raw); err != nil {
		return "", apperrors.Wrap(apperrors.CodeRandomSourceFailure, "read padding bytes", err)
	}
	return base64.URLEncoding.EncodeToString(raw)[:padAmt], nil
}

// drawCuts returns the sorted chunk boundaries: 0, chunkCount-1 distinct
// interior points from [1, padAmt-1], and padAmt.
func (g *Generator) drawCuts(chunkCount, padAmt int) ([]int, error) {
	cuts := make([]int, 0, chunkCount+1)
	cuts = append(cuts, 0, padAmt)
	taken := make(map[int]struct{}, chunkCount+1)
	taken[0] = struct{}{}
	taken[padAmt] = struct{}{}

	for len(cuts) < chunkCount+1 {
		placed := false
		for attempt := 0; attempt < maxDrawAttempts; attempt++ {
			index, err := g.src.IntRange(1, padAmt-1)
			if err != nil {
				return nil, err
			}
			if _, dup := taken[index]; dup {
				continue
			}
			taken[index] = struct{}{}
			cuts = append(cuts, index)
			placed = true
			break
		}
		if !placed {
			index, err := g.pickFree(taken, padAmt)
			if err != nil {
				return nil, err
			}
			taken[index] = struct{}{}
			cuts = append(cuts, index)
		}
	}

	slices.Sort(cuts)
	return cuts, nil
}

// pickFree chooses uniformly among the interior indexes not yet taken.
func (g *Generator) pickFree(taken map[int]struct{}, padAmt int) (int, error) {
	free := make([]int, 0, padAmt-1)
	for i := 1; i < padAmt; i++ {
		if _, ok := taken[i]; !ok {
			free = append(free, i)
		}
	}
	n, err := g.src.IntRange(0, len(free)-1)
	if err != nil {
		return 0, err
	}
	return free[n], nil
}
