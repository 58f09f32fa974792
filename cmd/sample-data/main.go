// Command sample-data writes a deterministic CSV fixture set (ground truth
// plus team predictions) for trying the leaderboard locally.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/okian/podium/internal/sampledata"
)

func main() {
	dir := flag.String("dir", "fixtures", "output directory")
	rows := flag.Int("rows", 100, "data rows per file")
	teams := flag.Int("teams", 5, "number of team files")
	seed := flag.Int64("seed", 42, "random seed")
	flag.Parse()

	gen := sampledata.NewGenerator(
		sampledata.WithRows(*rows),
		sampledata.WithTeams(*teams),
		sampledata.WithSeed(*seed),
	)

	paths, err := gen.Generate(*dir)
	if err != nil {
		os.Stderr.WriteString("failed to generate fixtures: " + err.Error() + "\n")
		os.Exit(1)
	}

	for _, p := range paths {
		fmt.Println(p)
	}
}
