// Package align defines options and error values for sequence alignment.
package align

import "errors"

// Sentinel errors for alignment.
var (
	// ErrNoSequences indicates Align was called with an empty input set.
	ErrNoSequences = errors.New("align: no sequences to align")

	// ErrEmptySequence indicates a sequence is empty after gap stripping.
	ErrEmptySequence = errors.New("align: empty sequence")

	// ErrUnknownMethod indicates Options.Method is not a known strategy.
	ErrUnknownMethod = errors.New("align: unknown alignment method")
)

// Method selects the alignment strategy.
//
//   - Progressive — consensus-guided progressive multiple-sequence
//     alignment. Higher quality; O(k·n²).
//   - RightPad — pad shorter sequences with trailing gaps. Fast, never
//     reorders content.
type Method int

const (
	// Progressive selects consensus-guided progressive MSA.
	Progressive Method = iota

	// RightPad selects trailing-gap length normalization.
	RightPad
)

// String returns the method name for logs and flags.
func (m Method) String() string {
	switch m {
	case Progressive:
		return "progressive"
	case RightPad:
		return "rightpad"
	default:
		return "unknown"
	}
}

// Options configures Align.
//
// Fields:
//   - Method — alignment strategy (Progressive or RightPad).
//   - Gap    — the gap symbol. Occurrences of it in the input are
//     stripped before aligning; it is reinserted by the aligner.
type Options struct {
	Method Method
	Gap    string
}

// DefaultOptions returns Options with the Progressive strategy and the
// conventional "-" gap symbol.
func DefaultOptions() Options {
	return Options{
		Method: Progressive,
		Gap:    "-",
	}
}
