package merkle

// HashSize is the byte length of every digest in an authentication path.
const HashSize = 32

// Hash256 is a fixed 32-byte node digest. Values are immutable once produced;
// every operation in this package copies rather than aliases.
type Hash256 [HashSize]byte

// Bytes returns the digest as a byte slice.
func (h Hash256) Bytes() []byte {
	return h[:]
}

// Orientation records which side of the hash concatenation the sibling took
// when the parent was computed. Concatenation order is significant, so a
// verifier replaying the path needs the side recorded at every level.
type Orientation uint8

const (
	// OrientationRight means the sibling was concatenated after the child:
	// parent = H(child || sibling).
	OrientationRight Orientation = iota

	// OrientationLeft means the sibling was concatenated before the child:
	// parent = H(sibling || child).
	OrientationLeft
)

// String returns the output label for the orientation.
func (o Orientation) String() string {
	if o == OrientationLeft {
		return "Left"
	}
	return "Right"
}

// PathStep is one level of an authentication path: the sibling digest and the
// side it was hashed on.
type PathStep struct {
	// Orientation is the sibling's side in the parent computation
	Orientation Orientation

	// Sibling is the sibling digest at this level
	Sibling Hash256
}

// MerklePathResult is a complete generated authentication path.
// It is constructed once per run and never mutated afterwards.
type MerklePathResult struct {
	// Leaf is the bottom-most digest the path starts from
	Leaf Hash256

	// Steps are the (orientation, sibling) pairs in bottom-to-top order
	Steps []PathStep

	// Root is the digest reached after applying every step
	Root Hash256
}

// Depth returns the number of sibling levels below the root.
func (r *MerklePathResult) Depth() int {
	return len(r.Steps)
}
