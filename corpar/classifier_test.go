package corpar_test

import (
	"testing"

	"github.com/gcelano/ST2022/corpar"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Indices follow the alphabet convention: 0 = missing. Values are
// arbitrary but fixed so clique structure is known by hand.

// TestFit_ConsensusFromPartialObservations verifies a full and a partial
// observation of one correspondence merge into a single consensus rule.
func TestFit_ConsensusFromPartialObservations(t *testing.T) {
	clf := corpar.New()
	// (2,2)→5 observed twice, (2,Ø)→5 once, (3,3)→6 isolated.
	X := [][]int{{2, 2}, {2, 2}, {2, 0}, {3, 3}}
	y := []int{5, 5, 5, 6}
	require.NoError(t, clf.Fit(X, y))

	rules := clf.Rules()
	require.Len(t, rules, 1, "one clique, one consensus rule")
	assert.Equal(t, []int{2, 2}, rules[0].Source)
	assert.Equal(t, 5, rules[0].Target)
	assert.Equal(t, 2, rules[0].Weight)

	out := clf.Predict([][]int{{2, 2}, {2, 0}, {3, 3}})
	assert.Equal(t, 5, out[0], "exact consensus hit")
	assert.Equal(t, 5, out[1], "observed pattern resolved via back-reference")
	assert.Equal(t, 0, out[2], "isolated tuple forms no rule; missing sentinel")
}

// TestPredict_FallbackSearch verifies a query pattern never observed
// resolves through the (position, value) fallback index and is cached.
func TestPredict_FallbackSearch(t *testing.T) {
	cache := corpar.NewCache()
	clf := corpar.New(corpar.WithCache(cache))
	X := [][]int{{2, 2}, {2, 0}}
	y := []int{5, 5}
	require.NoError(t, clf.Fit(X, y))

	// (Ø,2) was never observed; position 1 carries value 2, which the
	// consensus (2,2) holds there too: zero-mismatch fallback hit.
	out := clf.Predict([][]int{{0, 2}})
	assert.Equal(t, []int{5}, out)
	assert.Equal(t, 1, cache.Len(), "fallback result must be cached")

	got, ok := cache.Get([]int{0, 2})
	require.True(t, ok)
	assert.Equal(t, 5, got)

	// Second query hits the cache, not the search.
	assert.Equal(t, []int{5}, clf.Predict([][]int{{0, 2}}))
	assert.Equal(t, 1, cache.Len())
}

// TestPredict_FallbackPrefersZeroMismatch verifies the candidate class
// ordering: a zero-mismatch candidate outranks a higher-scoring one
// that disagrees somewhere.
func TestPredict_FallbackPrefersZeroMismatch(t *testing.T) {
	clf := corpar.New()
	// Two separate cliques with distinct targets:
	//   (2,2,2)→5  and  (2,2,3)→6
	X := [][]int{
		{2, 2, 2}, {2, 2, 0},
		{2, 2, 3}, {0, 2, 3},
	}
	y := []int{5, 5, 6, 6}
	require.NoError(t, clf.Fit(X, y))
	require.Len(t, clf.Rules(), 2)

	// Query (Ø,Ø,3): against (2,2,2) no shared non-missing agreement;
	// against (2,2,3) one match, zero mismatches → target 6.
	out := clf.Predict([][]int{{0, 0, 3}})
	assert.Equal(t, []int{6}, out)

	// Query (2,2,4): two matches + one mismatch against both rules —
	// no zero-mismatch candidate, score match−mismatch = 1; the
	// earliest-discovered rule wins the tie.
	out = clf.Predict([][]int{{2, 2, 4}})
	assert.Equal(t, []int{5}, out)
}

// TestFit_TieBreakSmallerTarget verifies equal-weight cliques sharing a
// consensus source resolve to the smaller target index.
func TestFit_TieBreakSmallerTarget(t *testing.T) {
	clf := corpar.New()
	// Clique {(2,2,5),(2,Ø,5)} and clique {(2,2,6),(Ø,2,6)} both
	// produce consensus source (2,2), with targets 5 and 6, weight 2.
	X := [][]int{
		{2, 2}, {2, 0},
		{2, 2}, {0, 2},
	}
	y := []int{5, 5, 6, 6}
	require.NoError(t, clf.Fit(X, y))

	assert.Equal(t, []int{5}, clf.Predict([][]int{{2, 2}}), "equal weight resolves to smaller target")
}

// TestFit_EmptyAndDegenerate verifies fitting with fewer than two
// distinct tuples yields an empty model, not an error.
func TestFit_EmptyAndDegenerate(t *testing.T) {
	clf := corpar.New()
	require.NoError(t, clf.Fit(nil, nil))
	assert.Empty(t, clf.Rules())
	assert.Equal(t, []int{0}, clf.Predict([][]int{{1, 2}}))

	require.NoError(t, clf.Fit([][]int{{2, 2}, {2, 2}}, []int{5, 5}))
	assert.Empty(t, clf.Rules(), "a single distinct tuple builds no graph")
	assert.Equal(t, []int{0}, clf.Predict([][]int{{2, 2}}))
}

// TestFit_InputValidation covers the sentinel errors.
func TestFit_InputValidation(t *testing.T) {
	assert.ErrorIs(t,
		corpar.New().Fit([][]int{{1}}, []int{1, 2}),
		corpar.ErrDimensionMismatch)

	assert.ErrorIs(t,
		corpar.New().Fit([][]int{{1, 2}, {1}}, []int{1, 2}),
		corpar.ErrRaggedPattern)

	assert.ErrorIs(t,
		corpar.New(corpar.WithThreshold(0)).Fit([][]int{{1}}, []int{1}),
		corpar.ErrOptionViolation)

	assert.ErrorIs(t,
		corpar.New(corpar.WithMaxCliques(-1)).Fit([][]int{{1}}, []int{1}),
		corpar.ErrOptionViolation)
}

// TestFit_CliqueBudget verifies the safety valve aborts fitting when the
// clique count exceeds the cap.
func TestFit_CliqueBudget(t *testing.T) {
	// Two disjoint two-node cliques.
	X := [][]int{
		{2, 2}, {2, 0},
		{3, 3}, {3, 0},
	}
	y := []int{5, 5, 6, 6}

	require.NoError(t, corpar.New().Fit(X, y))
	assert.ErrorIs(t, corpar.New(corpar.WithMaxCliques(1)).Fit(X, y), corpar.ErrCliqueBudget)
}

// TestFit_Deterministic verifies fitting twice on identical ordered
// input yields identical rule sets and prediction tables.
func TestFit_Deterministic(t *testing.T) {
	X := [][]int{
		{2, 2, 0}, {2, 0, 4}, {0, 2, 4},
		{3, 3, 0}, {3, 0, 5}, {2, 2, 4},
	}
	y := []int{7, 7, 7, 8, 8, 7}

	a := corpar.New()
	require.NoError(t, a.Fit(X, y))
	b := corpar.New()
	require.NoError(t, b.Fit(X, y))

	assert.Equal(t, a.Rules(), b.Rules())
	assert.Equal(t, a.PredictionTable(), b.PredictionTable())
}

// TestCompatibility_Symmetry verifies compatible(a,b) == compatible(b,a)
// across a grid of pattern pairs.
func TestCompatibility_Symmetry(t *testing.T) {
	patterns := [][]int{
		{0, 0, 0},
		{2, 0, 3},
		{2, 2, 3},
		{4, 2, 0},
		{4, 4, 4},
	}
	for _, a := range patterns {
		for _, b := range patterns {
			ma, mma := corpar.Compatibility(a, b, 0)
			mb, mmb := corpar.Compatibility(b, a, 0)
			assert.Equal(t, ma, mb, "match count must be symmetric for %v/%v", a, b)
			assert.Equal(t, mma, mmb, "mismatch count must be symmetric for %v/%v", a, b)
		}
	}
}

// TestPredict_FallbackTotality verifies predict always returns either a
// previously seen target or the missing sentinel, never failing.
func TestPredict_FallbackTotality(t *testing.T) {
	clf := corpar.New()
	X := [][]int{{2, 2}, {2, 0}, {3, 3}, {3, 0}}
	y := []int{5, 5, 6, 6}
	require.NoError(t, clf.Fit(X, y))

	seen := map[int]bool{0: true, 5: true, 6: true}
	queries := [][]int{
		{0, 0}, {2, 3}, {3, 2}, {9, 9}, {0, 2}, {2, 0}, {0, 9},
	}
	for _, q := range queries {
		out := clf.Predict([][]int{q})
		require.Len(t, out, 1)
		assert.True(t, seen[out[0]], "query %v produced unseen target %d", q, out[0])
	}
}
