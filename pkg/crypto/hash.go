package crypto

import (
	"crypto/sha256"
	"fmt"
	"strings"

	ethcrypto "github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/blake2b"
)

// Algorithm selects the 256-bit digest used for parent-hash computation.
// Downstream harnesses differ in which pairing hash they expect, so the
// generator supports the ones the surrounding ecosystem actually uses.
type Algorithm string

const (
	// SHA256 is the default pairing digest.
	SHA256 Algorithm = "sha256"
	// Keccak256 matches Solidity's hashing, for vectors replayed on-chain.
	Keccak256 Algorithm = "keccak256"
	// Blake2b256 is the 256-bit BLAKE2b variant.
	Blake2b256 Algorithm = "blake2b256"
)

// HashFunc computes a 32-byte digest over the concatenation of its inputs.
type HashFunc func(data ...[]byte) [32]byte

func (a Algorithm) String() string {
	return string(a)
}

// HashFunc resolves the digest function for a. Unknown algorithm names are an
// error so a misconfigured run fails before any output is produced.
func (a Algorithm) HashFunc() (HashFunc, error) {
	switch a {
	case SHA256:
		return sha256Sum, nil
	case Keccak256:
		return keccak256Sum, nil
	case Blake2b256:
		return blake2b256Sum, nil
	default:
		return nil, fmt.Errorf("unsupported digest algorithm: %s", a)
	}
}

// Validate reports whether a names a supported digest.
func (a Algorithm) Validate() error {
	_, err := a.HashFunc()
	return err
}

// SupportedAlgorithms returns all supported digest algorithms.
func SupportedAlgorithms() []Algorithm {
	return []Algorithm{SHA256, Keccak256, Blake2b256}
}

// SupportedAlgorithmsString returns the supported algorithm names for CLI help.
func SupportedAlgorithmsString() string {
	names := make([]string, 0, len(SupportedAlgorithms()))
	for _, a := range SupportedAlgorithms() {
		names = append(names, a.String())
	}
	return strings.Join(names, ", ")
}

func sha256Sum(data ...[]byte) [32]byte {
	h := sha256.New()
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func keccak256Sum(data ...[]byte) [32]byte {
	hash := ethcrypto.Keccak256Hash(data...)
	return [32]byte(hash)
}

func blake2b256Sum(data ...[]byte) [32]byte {
	h, _ := blake2b.New256(nil) // keyless, cannot fail
	for _, d := range data {
		_, _ = h.Write(d)
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}
