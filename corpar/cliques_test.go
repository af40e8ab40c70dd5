package corpar_test

import (
	"testing"

	"github.com/gcelano/ST2022/corpar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCliques_TwoOverlappingTriangles verifies complete maximal-clique
// enumeration on a hand-built 4-node graph whose compatibility structure
// forms two overlapping triangles {0,1,2} and {1,2,3}. The expected rule
// set is checked against the brute-force answer (see the subset check in
// TestCliques_BruteForce below).
func TestCliques_TwoOverlappingTriangles(t *testing.T) {
	clf := corpar.New()
	// Tuples (pattern ++ target); 0 = missing.
	//   n0 = (5,6,9)   n1 = (Ø,6,9)   n2 = (Ø,6,Ø)   n3 = (7,6,9)
	// All pairs are compatible except n0/n3 (5 vs 7 at position 0),
	// giving exactly the two triangles as maximal cliques.
	X := [][]int{{5, 6}, {0, 6}, {0, 6}, {7, 6}}
	y := []int{9, 9, 0, 9}
	require.NoError(t, clf.Fit(X, y))

	rules := clf.Rules()
	require.Len(t, rules, 2, "exactly two maximal cliques expected")
	// Consensus of {0,1,2}: first non-missing per position → (5,6)→9.
	assert.Equal(t, corpar.Rule{Source: []int{5, 6}, Target: 9, Weight: 3}, rules[0])
	// Consensus of {1,2,3}: position 0 first non-missing is n3's 7.
	assert.Equal(t, corpar.Rule{Source: []int{7, 6}, Target: 9, Weight: 3}, rules[1])
}

// TestCliques_BruteForce cross-checks the classifier's clique count on
// the triangle graph against an exhaustive subset enumeration of the
// same compatibility relation.
func TestCliques_BruteForce(t *testing.T) {
	tuples := [][]int{
		{5, 6, 9},
		{0, 6, 9},
		{0, 6, 0},
		{7, 6, 9},
	}
	adjacent := func(i, j int) bool {
		match, mismatch := corpar.Compatibility(tuples[i], tuples[j], 0)
		return mismatch == 0 && match >= 1
	}

	// Enumerate all subsets; keep complete ones; filter to maximal.
	n := len(tuples)
	var complete [][]int
	for mask := 1; mask < 1<<n; mask++ {
		var members []int
		for v := 0; v < n; v++ {
			if mask&(1<<v) != 0 {
				members = append(members, v)
			}
		}
		ok := true
		for a := 0; a < len(members) && ok; a++ {
			for b := a + 1; b < len(members); b++ {
				if !adjacent(members[a], members[b]) {
					ok = false
					break
				}
			}
		}
		if ok {
			complete = append(complete, members)
		}
	}
	var maximal [][]int
	for _, c := range complete {
		isMax := true
		for _, d := range complete {
			if len(d) > len(c) && contains(d, c) {
				isMax = false
				break
			}
		}
		if isMax && len(c) >= 2 {
			maximal = append(maximal, c)
		}
	}
	require.Len(t, maximal, 2, "brute force must find the two triangles")

	clf := corpar.New()
	require.NoError(t, clf.Fit([][]int{{5, 6}, {0, 6}, {0, 6}, {7, 6}}, []int{9, 9, 0, 9}))
	assert.Len(t, clf.Rules(), len(maximal), "classifier must match brute-force clique count")
}

// contains reports whether sorted slice d contains all elements of c.
func contains(d, c []int) bool {
	set := make(map[int]struct{}, len(d))
	for _, v := range d {
		set[v] = struct{}{}
	}
	for _, v := range c {
		if _, ok := set[v]; !ok {
			return false
		}
	}

	return true
}
