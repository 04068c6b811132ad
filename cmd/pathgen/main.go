package main

import (
	"fmt"
	"io"
	"log"
	"os"

	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"github.com/zkvectors/merklepath-go/pkg/config"
	"github.com/zkvectors/merklepath-go/pkg/crypto"
	"github.com/zkvectors/merklepath-go/pkg/format"
	"github.com/zkvectors/merklepath-go/pkg/logger"
	"github.com/zkvectors/merklepath-go/pkg/merkle"
)

func main() {
	app := &cli.App{
		Name:  "pathgen",
		Usage: "Merkle authentication path test-vector generator",
		Description: `Generates synthetic Merkle authentication paths for test harnesses.

Each vector starts from a random leaf and walks a configurable number of
junction steps upward, drawing a random sibling and a random left/right
orientation per level; the parent of the final step is the root. Vectors
print as split 128-bit decimal integers, hex strings, or a JSON envelope.`,
		Version: "1.0.0",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "depth",
				Aliases: []string{"d"},
				Value:   config.DefaultDepth,
				Usage:   "sibling levels below the root",
				EnvVars: []string{config.EnvPathgenDepth},
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Value:   config.DefaultCount,
				Usage:   "number of vectors to generate",
				EnvVars: []string{config.EnvPathgenCount},
			},
			&cli.Int64Flag{
				Name:    "seed",
				Usage:   "seed for deterministic output (omit for OS entropy)",
				EnvVars: []string{config.EnvPathgenSeed},
			},
			&cli.StringFlag{
				Name:    "digest",
				Value:   string(crypto.SHA256),
				Usage:   fmt.Sprintf("pairing digest: %s", crypto.SupportedAlgorithmsString()),
				EnvVars: []string{config.EnvPathgenDigest},
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   string(format.ModeInts),
				Usage:   fmt.Sprintf("output format: %s", format.SupportedModesString()),
				EnvVars: []string{config.EnvPathgenFormat},
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Usage:   "Enable verbose logging",
				EnvVars: []string{config.EnvPathgenVerbose},
			},
		},
		Action: runPathgen,
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func runPathgen(c *cli.Context) error {
	// Create logger
	l, err := logger.NewLogger(&logger.LoggerConfig{
		Debug: c.Bool("verbose"),
	})
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = l.Sync() }()

	// Parse configuration from flags/environment
	generatorConfig, err := parseGeneratorConfig(c)
	if err != nil {
		return fmt.Errorf("configuration error: %w", err)
	}

	// Validate configuration
	if err := generatorConfig.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	var rng io.Reader
	if generatorConfig.Seeded {
		rng = merkle.NewSeededSource(generatorConfig.Seed)
		l.Sugar().Debugw("Using seeded entropy", "seed", generatorConfig.Seed)
	}

	builder, err := merkle.NewBuilder(generatorConfig.Digest, rng, l)
	if err != nil {
		return errors.Wrap(err, "failed to create builder")
	}

	if generatorConfig.Verbose {
		l.Sugar().Infow("Generator configuration",
			"depth", generatorConfig.Depth,
			"count", generatorConfig.Count,
			"digest", generatorConfig.Digest,
			"format", generatorConfig.Format,
			"seeded", generatorConfig.Seeded)
	}

	results := make([]*merkle.MerklePathResult, 0, generatorConfig.Count)
	for i := 0; i < generatorConfig.Count; i++ {
		result, err := builder.BuildRandomPath(generatorConfig.Depth)
		if err != nil {
			return errors.Wrapf(err, "failed to generate vector %d of %d", i+1, generatorConfig.Count)
		}
		results = append(results, result)
	}

	// Vectors go to stdout, diagnostics stay on stderr
	if err := format.WriteAll(os.Stdout, generatorConfig.Format, generatorConfig.Digest, results); err != nil {
		return errors.Wrap(err, "failed to write output")
	}
	return nil
}

func parseGeneratorConfig(c *cli.Context) (*config.GeneratorConfig, error) {
	return &config.GeneratorConfig{
		Depth:   c.Int("depth"),
		Count:   c.Int("count"),
		Seed:    c.Int64("seed"),
		Seeded:  c.IsSet("seed"),
		Digest:  crypto.Algorithm(c.String("digest")),
		Format:  format.Mode(c.String("format")),
		Verbose: c.Bool("verbose"),
	}, nil
}
