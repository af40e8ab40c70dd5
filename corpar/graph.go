package corpar

import (
	"strconv"
	"strings"
)

// node is one distinct observed (pattern, target) tuple. Nodes live in a
// flat slice indexed by first-occurrence order; edges reference them by
// index, so the graph carries no pointer cycles.
type node struct {
	tuple  []int // pattern positions followed by the target value
	weight int   // occurrence count in the training data
}

// patternKey encodes an integer pattern as a map key.
func patternKey(p []int) string {
	var b strings.Builder
	for i, v := range p {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.Itoa(v))
	}

	return b.String()
}

// compatible counts agreeing and disagreeing positions of a and b,
// skipping positions where either side holds the missing value.
// Trailing positions of the longer tuple are ignored.
// compatible(a, b) == compatible(b, a) for all tuples.
func compatible(a, b []int, missing int) (match, mismatch int) {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		switch {
		case a[i] == missing || b[i] == missing:
		case a[i] == b[i]:
			match++
		default:
			mismatch++
		}
	}

	return match, mismatch
}

// lessPattern reports whether a orders lexicographically before b.
func lessPattern(a, b []int) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}

	return len(a) < len(b)
}
