// Package align produces equal-length aligned rows from variable-length
// sound sequences.
package align

import "fmt"

// Needleman–Wunsch scoring. Linear gap cost; ties in the traceback are
// resolved diagonal-first so alignments are reproducible.
const (
	matchScore    = 1
	mismatchScore = -1
	gapScore      = -1
)

// Align aligns seqs into equal-length rows, preserving input order.
// Gap symbols already present in the input are stripped before aligning.
// Returns ErrNoSequences, ErrEmptySequence, or ErrUnknownMethod on
// invalid input; otherwise every returned row has the same length.
func Align(seqs [][]string, opts *Options) ([][]string, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if o.Gap == "" {
		o.Gap = DefaultOptions().Gap
	}
	if len(seqs) == 0 {
		return nil, ErrNoSequences
	}

	stripped := make([][]string, len(seqs))
	for i, seq := range seqs {
		s := make([]string, 0, len(seq))
		for _, sym := range seq {
			if sym != o.Gap {
				s = append(s, sym)
			}
		}
		if len(s) == 0 {
			return nil, fmt.Errorf("%w: sequence %d", ErrEmptySequence, i)
		}
		stripped[i] = s
	}

	switch o.Method {
	case Progressive:
		return progressive(stripped, o.Gap), nil
	case RightPad:
		return rightPad(stripped, o.Gap), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownMethod, int(o.Method))
	}
}

// progressive folds each sequence into the profile of the rows aligned
// so far by pairwise-aligning it against the profile consensus.
func progressive(seqs [][]string, gap string) [][]string {
	first := make([]string, len(seqs[0]))
	copy(first, seqs[0])
	rows := [][]string{first}

	for _, seq := range seqs[1:] {
		cons := consensus(rows, gap)
		pa, pb := pairwise(cons, seq)

		// Fold the pairwise gaps back into every existing row,
		// then append the newly aligned row.
		next := make([][]string, 0, len(rows)+1)
		for _, row := range rows {
			nr := make([]string, len(pa))
			for k, ai := range pa {
				if ai < 0 {
					nr[k] = gap
				} else {
					nr[k] = row[ai]
				}
			}
			next = append(next, nr)
		}
		nr := make([]string, len(pb))
		for k, bi := range pb {
			if bi < 0 {
				nr[k] = gap
			} else {
				nr[k] = seq[bi]
			}
		}
		rows = append(next, nr)
	}

	return rows
}

// consensus returns one representative symbol per profile column: the
// most frequent non-gap symbol, frequency ties broken lexicographically,
// or the gap when the column holds nothing else.
func consensus(rows [][]string, gap string) []string {
	width := len(rows[0])
	cons := make([]string, width)
	counts := make(map[string]int)
	for i := 0; i < width; i++ {
		for k := range counts {
			delete(counts, k)
		}
		for _, row := range rows {
			if row[i] != gap {
				counts[row[i]]++
			}
		}
		best, bestN := gap, 0
		for sym, n := range counts {
			if n > bestN || (n == bestN && bestN > 0 && sym < best) {
				best, bestN = sym, n
			}
		}
		cons[i] = best
	}

	return cons
}

// pairwise globally aligns a and b with Needleman–Wunsch and returns two
// equal-length index paths into a and b; -1 marks a gap position.
func pairwise(a, b []string) (pa, pb []int) {
	n, m := len(a), len(b)
	dp := make([][]int, n+1)
	for i := range dp {
		dp[i] = make([]int, m+1)
	}
	for i := 1; i <= n; i++ {
		dp[i][0] = i * gapScore
	}
	for j := 1; j <= m; j++ {
		dp[0][j] = j * gapScore
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= m; j++ {
			best := dp[i-1][j-1] + substScore(a[i-1], b[j-1])
			if v := dp[i-1][j] + gapScore; v > best {
				best = v
			}
			if v := dp[i][j-1] + gapScore; v > best {
				best = v
			}
			dp[i][j] = best
		}
	}

	// Traceback; diagonal beats vertical beats horizontal on ties.
	i, j := n, m
	for i > 0 || j > 0 {
		switch {
		case i > 0 && j > 0 && dp[i][j] == dp[i-1][j-1]+substScore(a[i-1], b[j-1]):
			pa = append(pa, i-1)
			pb = append(pb, j-1)
			i--
			j--
		case i > 0 && dp[i][j] == dp[i-1][j]+gapScore:
			pa = append(pa, i-1)
			pb = append(pb, -1)
			i--
		default:
			pa = append(pa, -1)
			pb = append(pb, j-1)
			j--
		}
	}
	reverseInts(pa)
	reverseInts(pb)

	return pa, pb
}

// substScore scores one symbol pair.
func substScore(a, b string) int {
	if a == b {
		return matchScore
	}

	return mismatchScore
}

// reverseInts reverses s in place.
func reverseInts(s []int) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}

// rightPad pads every sequence with trailing gaps to the longest length.
func rightPad(seqs [][]string, gap string) [][]string {
	width := 0
	for _, seq := range seqs {
		if len(seq) > width {
			width = len(seq)
		}
	}
	rows := make([][]string, len(seqs))
	for i, seq := range seqs {
		row := make([]string, width)
		copy(row, seq)
		for j := len(seq); j < width; j++ {
			row[j] = gap
		}
		rows[i] = row
	}

	return rows
}
