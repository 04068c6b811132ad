package merkle

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/zkvectors/merklepath-go/pkg/crypto"
)

// ErrInvalidDepth rejects path depths below one. A zero-depth path would make
// the leaf and the root the same value, which no harness should ever receive.
var ErrInvalidDepth = errors.New("path depth must be at least 1")

// ParentHash computes the digest of a || b, a first. Concatenation order is
// significant: ParentHash(a, b) and ParentHash(b, a) differ. Which operand
// plays a is decided by the step's Orientation, never by this function.
func ParentHash(hash crypto.HashFunc, a, b Hash256) Hash256 {
	return Hash256(hash(a[:], b[:]))
}

// RandomHash draws exactly HashSize bytes from rng. A nil rng draws from
// crypto/rand.Reader.
func RandomHash(rng io.Reader) (Hash256, error) {
	if rng == nil {
		rng = rand.Reader
	}
	var h Hash256
	if _, err := io.ReadFull(rng, h[:]); err != nil {
		return Hash256{}, fmt.Errorf("failed to draw random hash: %w", err)
	}
	return h, nil
}

// randomOrientation draws one byte from rng and keeps its least-significant
// bit: 1 is Left, 0 is Right. The bit is drawn after the sibling bytes, and
// that order is part of the seeded-reproducibility contract.
func randomOrientation(rng io.Reader) (Orientation, error) {
	var b [1]byte
	if _, err := io.ReadFull(rng, b[:]); err != nil {
		return OrientationRight, fmt.Errorf("failed to draw orientation bit: %w", err)
	}
	if b[0]&1 == 1 {
		return OrientationLeft, nil
	}
	return OrientationRight, nil
}

// Builder constructs random authentication paths from an injected entropy
// source and a configured pairing digest.
//
// The entropy source is consumed in a fixed order (sibling bytes, then one
// orientation byte, per level), so two Builders over identically seeded
// sources produce identical paths. A Builder is not safe for concurrent use;
// parallel runs need independent sources.
type Builder struct {
	hash   crypto.HashFunc
	rng    io.Reader
	logger *zap.Logger
}

// NewBuilder creates a Builder for the given digest algorithm. A nil rng
// falls back to crypto/rand.Reader; a nil logger discards debug output.
func NewBuilder(alg crypto.Algorithm, rng io.Reader, logger *zap.Logger) (*Builder, error) {
	hashFn, err := alg.HashFunc()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve digest: %w", err)
	}
	if rng == nil {
		rng = rand.Reader
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Builder{
		hash:   hashFn,
		rng:    rng,
		logger: logger,
	}, nil
}

// JunctionStep draws a fresh sibling and a fair-coin orientation for child,
// computes the parent on the drawn side, and returns (orientation, parent,
// sibling).
func (b *Builder) JunctionStep(child Hash256) (Orientation, Hash256, Hash256, error) {
	sibling, err := RandomHash(b.rng)
	if err != nil {
		return OrientationRight, Hash256{}, Hash256{}, err
	}

	orientation, err := randomOrientation(b.rng)
	if err != nil {
		return OrientationRight, Hash256{}, Hash256{}, err
	}

	var parent Hash256
	if orientation == OrientationLeft {
		parent = ParentHash(b.hash, sibling, child)
	} else {
		parent = ParentHash(b.hash, child, sibling)
	}

	return orientation, parent, sibling, nil
}

// BuildRandomPath generates a random leaf and walks depth junction steps up
// from it, collecting the (orientation, sibling) pair at each level. The
// parent computed by the final step is the root; there is no extra root
// iteration beyond the depth steps.
func (b *Builder) BuildRandomPath(depth int) (*MerklePathResult, error) {
	if depth < 1 {
		return nil, ErrInvalidDepth
	}

	leaf, err := RandomHash(b.rng)
	if err != nil {
		return nil, fmt.Errorf("failed to generate leaf: %w", err)
	}

	steps := make([]PathStep, 0, depth)
	child := leaf
	for i := 0; i < depth; i++ {
		orientation, parent, sibling, err := b.JunctionStep(child)
		if err != nil {
			return nil, fmt.Errorf("junction step %d failed: %w", i, err)
		}
		steps = append(steps, PathStep{Orientation: orientation, Sibling: sibling})
		child = parent
	}

	b.logger.Sugar().Debugw("built random authentication path",
		"depth", depth,
		"leaf", fmt.Sprintf("%x", leaf),
		"root", fmt.Sprintf("%x", child),
	)

	return &MerklePathResult{
		Leaf:  leaf,
		Steps: steps,
		Root:  child,
	}, nil
}

// VerifyPath replays result's steps from the leaf with the given digest and
// checks that the fold terminates at the recorded root. Generated paths must
// always replay cleanly; a failure means the result was tampered with or
// built under a different digest.
func VerifyPath(alg crypto.Algorithm, result *MerklePathResult) error {
	hashFn, err := alg.HashFunc()
	if err != nil {
		return fmt.Errorf("failed to resolve digest: %w", err)
	}
	if result == nil {
		return errors.New("cannot verify nil path result")
	}

	child := result.Leaf
	for _, step := range result.Steps {
		if step.Orientation == OrientationLeft {
			child = ParentHash(hashFn, step.Sibling, child)
		} else {
			child = ParentHash(hashFn, child, step.Sibling)
		}
	}

	if child != result.Root {
		return fmt.Errorf("path does not replay to recorded root: got %x, want %x", child, result.Root)
	}
	return nil
}
