package config

import (
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/zkvectors/merklepath-go/pkg/crypto"
	"github.com/zkvectors/merklepath-go/pkg/format"
)

// Environment variable names for generator configuration
const (
	EnvPathgenDepth   = "PATHGEN_DEPTH"
	EnvPathgenCount   = "PATHGEN_COUNT"
	EnvPathgenSeed    = "PATHGEN_SEED"
	EnvPathgenDigest  = "PATHGEN_DIGEST"
	EnvPathgenFormat  = "PATHGEN_FORMAT"
	EnvPathgenVerbose = "PATHGEN_VERBOSE"
)

// Flag defaults
const (
	DefaultDepth = 2
	DefaultCount = 1
)

// GeneratorConfig represents the complete configuration for one generator run
type GeneratorConfig struct {
	// Path shape
	Depth int `json:"depth"` // sibling levels below the root
	Count int `json:"count"` // vectors per run

	// Entropy
	Seed   int64 `json:"seed,omitempty"`
	Seeded bool  `json:"seeded"` // false means OS entropy

	// Output
	Digest  crypto.Algorithm `json:"digest"`
	Format  format.Mode      `json:"format"`
	Verbose bool             `json:"verbose"`
}

// Validate validates the generator configuration, aggregating one error per
// broken field so a misconfigured run reports everything at once.
func (c *GeneratorConfig) Validate() error {
	var allErrors field.ErrorList
	if c.Depth < 1 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("depth"), c.Depth, "depth must be at least 1"))
	}
	if c.Count < 1 {
		allErrors = append(allErrors, field.Invalid(field.NewPath("count"), c.Count, "count must be at least 1"))
	}
	if err := c.Digest.Validate(); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("digest"), c.Digest, crypto.SupportedAlgorithms()))
	}
	if err := c.Format.Validate(); err != nil {
		allErrors = append(allErrors, field.NotSupported(field.NewPath("format"), c.Format, format.SupportedModes()))
	}
	if len(allErrors) > 0 {
		return allErrors.ToAggregate()
	}
	return nil
}
