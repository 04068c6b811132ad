package testutil

import (
	"testing"

	"github.com/zkvectors/merklepath-go/pkg/crypto"
	"github.com/zkvectors/merklepath-go/pkg/merkle"
)

// CreateTestPath builds a deterministic authentication path from a seeded
// source, so fixtures are reproducible across runs
func CreateTestPath(t *testing.T, alg crypto.Algorithm, seed int64, depth int) *merkle.MerklePathResult {
	t.Helper()

	builder, err := merkle.NewBuilder(alg, merkle.NewSeededSource(seed), nil)
	if err != nil {
		t.Fatalf("Failed to create builder: %v", err)
	}

	result, err := builder.BuildRandomPath(depth)
	if err != nil {
		t.Fatalf("Failed to build path: %v", err)
	}
	return result
}

// CreateTestPaths builds n deterministic paths with consecutive seeds
func CreateTestPaths(t *testing.T, alg crypto.Algorithm, seed int64, depth, n int) []*merkle.MerklePathResult {
	t.Helper()

	results := make([]*merkle.MerklePathResult, n)
	for i := 0; i < n; i++ {
		results[i] = CreateTestPath(t, alg, seed+int64(i), depth)
	}
	return results
}
