// Package sampledata generates CSV fixtures for trying out the leaderboard:
// one ground truth file and a set of team prediction files with varying
// amounts of noise, so the four metrics produce a meaningful spread.
package sampledata

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
)

// Default generation parameters.
const (
	defaultRows  = 100
	defaultTeams = 5
	defaultSeed  = 42

	truthMin   = 1.0
	truthRange = 9.0
	noiseStep  = 0.05

	filePerm = 0o644
	dirPerm  = 0o755
)

// Option applies a configuration option to the Generator.
type Option func(*Generator)

// WithRows sets the number of data rows per file.
func WithRows(rows int) Option {
	return func(g *Generator) {
		if rows > 0 {
			g.rows = rows
		}
	}
}

// WithTeams sets the number of team files to generate.
func WithTeams(teams int) Option {
	return func(g *Generator) {
		if teams > 0 {
			g.teams = teams
		}
	}
}

// WithSeed sets the random seed for reproducible fixtures.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// Generator writes a deterministic fixture set into a directory.
type Generator struct {
	rows  int
	teams int
	seed  int64
}

// NewGenerator creates a generator with configuration options.
func NewGenerator(opts ...Option) *Generator {
	g := &Generator{
		rows:  defaultRows,
		teams: defaultTeams,
		seed:  defaultSeed,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate writes truth.csv and Team<N>.csv files into dir and returns the
// written paths. Team1 predicts the truth exactly; each later team adds one
// more step of uniform noise, so ranks are stable and human-checkable.
func (g *Generator) Generate(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("create fixture dir: %w", err)
	}

	rng := rand.New(rand.NewSource(g.seed)) //nolint:gosec // deterministic fixtures, not crypto

	truth := make([]float64, g.rows)
	for i := range truth {
		truth[i] = truthMin + rng.Float64()*truthRange
	}

	paths := make([]string, 0, g.teams+1)

	truthPath := filepath.Join(dir, "truth.csv")
	if err := writeCSV(truthPath, truth); err != nil {
		return nil, err
	}
	paths = append(paths, truthPath)

	for t := 1; t <= g.teams; t++ {
		noise := noiseStep * float64(t-1)
		predictions := make([]float64, g.rows)
		for i, v := range truth {
			predictions[i] = v + (rng.Float64()*2-1)*noise
		}
		path := filepath.Join(dir, fmt.Sprintf("Team%d.csv", t))
		if err := writeCSV(path, predictions); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// writeCSV writes an id,value file with a header row.
func writeCSV(path string, values []float64) error {
	var sb strings.Builder
	sb.WriteString("id,value\n")
	for i, v := range values {
		fmt.Fprintf(&sb, "%d,%.6f\n", i+1, v)
	}
	if err := os.WriteFile(path, []byte(sb.String()), filePerm); err != nil {
		return fmt.Errorf("write fixture %s: %w", path, err)
	}
	return nil
}
