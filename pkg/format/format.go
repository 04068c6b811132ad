package format

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/google/uuid"

	"github.com/zkvectors/merklepath-go/pkg/crypto"
	"github.com/zkvectors/merklepath-go/pkg/merkle"
)

// Mode selects how path dumps are rendered.
type Mode string

const (
	// ModeInts prints each hash as two 128-bit decimal integers, one per
	// 16-byte half. Downstream circuit harnesses consume hashes as
	// field-sized chunks rather than byte strings.
	ModeInts Mode = "ints"
	// ModeHex prints each hash as 64 lowercase hex characters.
	ModeHex Mode = "hex"
	// ModeJSON prints each vector as a machine-readable JSON envelope.
	ModeJSON Mode = "json"
)

func (m Mode) String() string {
	return string(m)
}

// Validate checks that m names a known rendering mode.
func (m Mode) Validate() error {
	switch m {
	case ModeInts, ModeHex, ModeJSON:
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", m)
	}
}

// SupportedModes returns the rendering modes in presentation order.
func SupportedModes() []Mode {
	return []Mode{ModeInts, ModeHex, ModeJSON}
}

// SupportedModesString returns the supported mode names as a comma-separated
// list, for flag usage strings and validation errors.
func SupportedModesString() string {
	modes := SupportedModes()
	names := make([]string, len(modes))
	for i, mode := range modes {
		names[i] = string(mode)
	}
	return strings.Join(names, ", ")
}

// halfSize is the split point for the ints mode: two 128-bit halves.
const halfSize = merkle.HashSize / 2

// HexString renders h as 64 lowercase hexadecimal characters.
func HexString(h merkle.Hash256) string {
	return hex.EncodeToString(h.Bytes())
}

// ParseHex decodes a 64-character hexadecimal string back into a hash.
func ParseHex(s string) (merkle.Hash256, error) {
	var h merkle.Hash256
	raw, err := hex.DecodeString(s)
	if err != nil {
		return h, fmt.Errorf("failed to decode hash hex: %w", err)
	}
	if len(raw) != merkle.HashSize {
		return h, fmt.Errorf("decoded hash is %d bytes, want %d", len(raw), merkle.HashSize)
	}
	copy(h[:], raw)
	return h, nil
}

// SplitLittleEndian splits h at the 16-byte boundary and returns the halves
// as 128-bit unsigned integers. Each half is byte-reversed and read as a
// little-endian integer, which is the same as reading the original half
// big-endian. The names are positional: low is the first half of the hash,
// high the second, regardless of numeric magnitude.
func SplitLittleEndian(h merkle.Hash256) (low, high *big.Int) {
	low = new(big.Int).SetBytes(h[:halfSize])
	high = new(big.Int).SetBytes(h[halfSize:])
	return low, high
}

// FromSplit reassembles a hash from the positional halves produced by
// SplitLittleEndian. Each half must be non-negative and fit in 128 bits.
func FromSplit(low, high *big.Int) (merkle.Hash256, error) {
	var h merkle.Hash256
	if low == nil || high == nil {
		return h, errors.New("split halves must be non-nil")
	}
	if low.Sign() < 0 || high.Sign() < 0 {
		return h, errors.New("split halves must be non-negative")
	}
	if low.BitLen() > halfSize*8 || high.BitLen() > halfSize*8 {
		return h, fmt.Errorf("split halves must fit in %d bits", halfSize*8)
	}
	low.FillBytes(h[:halfSize])
	high.FillBytes(h[halfSize:])
	return h, nil
}

// SplitString renders h in the bracketed decimal form of the ints mode.
func SplitString(h merkle.Hash256) string {
	low, high := SplitLittleEndian(h)
	return fmt.Sprintf("[%s, %s]", low, high)
}

// VectorStep is one authentication-path level of the JSON envelope.
type VectorStep struct {
	Orientation string `json:"orientation"`
	Sibling     string `json:"sibling"`
}

// Vector is the machine-readable form of one generated path. The ID lets
// downstream harnesses correlate vectors within a batch.
type Vector struct {
	ID     uuid.UUID    `json:"id"`
	Digest string       `json:"digest"`
	Leaf   string       `json:"leaf"`
	Steps  []VectorStep `json:"steps"`
	Root   string       `json:"root"`
}

// NewVector wraps result in a JSON envelope under a fresh ID, with every
// hash rendered as 64-character lowercase hex.
func NewVector(digest crypto.Algorithm, result *merkle.MerklePathResult) Vector {
	steps := make([]VectorStep, len(result.Steps))
	for i, step := range result.Steps {
		steps[i] = VectorStep{
			Orientation: step.Orientation.String(),
			Sibling:     HexString(step.Sibling),
		}
	}
	return Vector{
		ID:     uuid.New(),
		Digest: string(digest),
		Leaf:   HexString(result.Leaf),
		Steps:  steps,
		Root:   HexString(result.Root),
	}
}

// WriteResult renders one path to w in the given mode: the leaf line, one
// line per step bottom-to-top, then the root line.
func WriteResult(w io.Writer, mode Mode, digest crypto.Algorithm, result *merkle.MerklePathResult) error {
	switch mode {
	case ModeInts:
		return writeInts(w, result)
	case ModeHex:
		return writeHex(w, result)
	case ModeJSON:
		return writeJSON(w, NewVector(digest, result))
	default:
		return fmt.Errorf("unsupported output format: %s", mode)
	}
}

// WriteAll renders a batch of paths. The text modes separate consecutive
// vectors with a blank line; JSON emits a single object for one vector and
// an array otherwise.
func WriteAll(w io.Writer, mode Mode, digest crypto.Algorithm, results []*merkle.MerklePathResult) error {
	if mode == ModeJSON {
		if len(results) == 1 {
			return writeJSON(w, NewVector(digest, results[0]))
		}
		vectors := make([]Vector, len(results))
		for i, result := range results {
			vectors[i] = NewVector(digest, result)
		}
		return writeJSON(w, vectors)
	}

	for i, result := range results {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := WriteResult(w, mode, digest, result); err != nil {
			return err
		}
	}
	return nil
}

func writeInts(w io.Writer, result *merkle.MerklePathResult) error {
	if _, err := fmt.Fprintf(w, "leaf: %s\n", SplitString(result.Leaf)); err != nil {
		return err
	}
	for i, step := range result.Steps {
		if _, err := fmt.Fprintf(w, "Digest %d: %s %s\n", i, step.Orientation, SplitString(step.Sibling)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Root: %s\n", SplitString(result.Root))
	return err
}

func writeHex(w io.Writer, result *merkle.MerklePathResult) error {
	if _, err := fmt.Fprintf(w, "leaf: %s\n", HexString(result.Leaf)); err != nil {
		return err
	}
	for i, step := range result.Steps {
		if _, err := fmt.Fprintf(w, "%d %s: %s\n", i, step.Orientation, HexString(step.Sibling)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "Root: %s\n", HexString(result.Root))
	return err
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
