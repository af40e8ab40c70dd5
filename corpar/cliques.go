package corpar

import (
	"fmt"
	"sort"
)

// maximalCliques enumerates every maximal clique of the undirected graph
// over vertices [0..n) given by the neighbor sets nb. Isolated vertices
// are skipped (they never form correspondence rules). Each clique is
// returned sorted ascending; the clique list itself follows the
// deterministic Bron–Kerbosch visit order.
//
// limit > 0 caps the number of cliques; exceeding it aborts with
// ErrCliqueBudget. Enumeration is complete, never sampled: consensus
// rules are only correct over the full clique set.
func maximalCliques(n int, nb []map[int]struct{}, limit int) ([][]int, error) {
	p := make([]int, 0, n)
	for v := 0; v < n; v++ {
		if len(nb[v]) > 0 {
			p = append(p, v)
		}
	}

	var out [][]int
	var bk func(r, p, x []int) error
	bk = func(r, p, x []int) error {
		if len(p) == 0 && len(x) == 0 {
			clique := make([]int, len(r))
			copy(clique, r)
			sort.Ints(clique)
			out = append(out, clique)
			if limit > 0 && len(out) > limit {
				return fmt.Errorf("%w: more than %d cliques", ErrCliqueBudget, limit)
			}

			return nil
		}

		u := pivot(p, x, nb)
		// Branch only on candidates outside the pivot's neighborhood.
		// Snapshot them first: p shrinks while we iterate.
		candidates := make([]int, 0, len(p))
		for _, v := range p {
			if _, ok := nb[u][v]; !ok {
				candidates = append(candidates, v)
			}
		}
		for _, v := range candidates {
			var nextP, nextX []int
			for _, w := range p {
				if _, ok := nb[v][w]; ok {
					nextP = append(nextP, w)
				}
			}
			for _, w := range x {
				if _, ok := nb[v][w]; ok {
					nextX = append(nextX, w)
				}
			}
			if err := bk(append(r, v), nextP, nextX); err != nil {
				return err
			}
			p = removeVertex(p, v)
			x = insertVertex(x, v)
		}

		return nil
	}

	if err := bk(nil, p, nil); err != nil {
		return nil, err
	}

	return out, nil
}

// pivot picks the vertex of p ∪ x with the most candidate neighbors,
// smallest index on ties, so branching is reproducible.
func pivot(p, x []int, nb []map[int]struct{}) int {
	best, bestDeg := -1, -1
	consider := func(u int) {
		deg := 0
		for _, v := range p {
			if _, ok := nb[u][v]; ok {
				deg++
			}
		}
		if deg > bestDeg || (deg == bestDeg && u < best) {
			best, bestDeg = u, deg
		}
	}
	for _, u := range p {
		consider(u)
	}
	for _, u := range x {
		consider(u)
	}

	return best
}

// removeVertex deletes v from the sorted slice s, preserving order.
func removeVertex(s []int, v int) []int {
	for i, w := range s {
		if w == v {
			return append(s[:i], s[i+1:]...)
		}
	}

	return s
}

// insertVertex adds v to the sorted slice s, preserving order.
func insertVertex(s []int, v int) []int {
	i := sort.SearchInts(s, v)
	s = append(s, 0)
	copy(s[i+1:], s[i:])
	s[i] = v

	return s
}
