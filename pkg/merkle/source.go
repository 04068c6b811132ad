package merkle

import (
	"io"
	"math/rand"
)

// NewSeededSource returns a deterministic entropy source for reproducible
// paths. Two sources built from the same seed yield byte-identical streams,
// so a Builder over either generates the same leaves, siblings, and
// orientations. Not for production randomness; pass a nil reader to
// NewBuilder to use crypto/rand instead.
func NewSeededSource(seed int64) io.Reader {
	return rand.New(rand.NewSource(seed))
}
