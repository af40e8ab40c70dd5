// Package app holds the command-line commands of the reflex prediction
// tool: predict, split, compare and datasets.
package app

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gonuts/commander"

	"github.com/gcelano/ST2022/align"
)

var (
	// file names
	trainFile     string
	outFile       string
	predFile      string
	solutionsFile string
	outDir        string
	datasetsFile  string

	// split options
	props string
	seed  int64

	// model options
	threshold   int
	maxCliques  int
	alignMethod string
)

// requireFlags reports the first required flag left at its empty default.
func requireFlags(cmd *commander.Command, required ...string) error {
	for _, name := range required {
		f := cmd.Flag.Lookup(name)
		if f == nil || f.Value.String() == "" {
			cmd.Usage()
			return fmt.Errorf("app: required flag -%s not set", name)
		}
	}
	return nil
}

// defaultOut derives an output file name from an input file name.
func defaultOut(in string) string {
	if strings.HasSuffix(in, ".tsv") {
		return strings.TrimSuffix(in, ".tsv") + "-out.tsv"
	}
	return in + "-out.tsv"
}

// parseProps parses a comma-separated list of split proportions.
func parseProps(s string) ([]float64, error) {
	var out []float64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		p, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return nil, fmt.Errorf("app: bad proportion %q: %w", part, err)
		}
		out = append(out, p)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("app: no proportions in %q", s)
	}
	return out, nil
}

// parseMethod maps a flag value onto an alignment strategy.
func parseMethod(name string) (align.Method, error) {
	switch name {
	case align.Progressive.String():
		return align.Progressive, nil
	case align.RightPad.String():
		return align.RightPad, nil
	default:
		return 0, fmt.Errorf("app: unknown alignment method %q", name)
	}
}
