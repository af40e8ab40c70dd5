// Package corpar provides the correspondence-pattern ("CorPaR") graph
// classifier: an analogical learner over fixed-width integer patterns
// used to predict missing reflexes in cognate sets.
//
// What
//
//   - Fit groups identical (pattern, target) tuples, connects every pair
//     that agrees on all shared non-missing positions (at least
//     Threshold agreements, zero disagreements), enumerates all maximal
//     cliques of the resulting compatibility graph, and condenses each
//     clique into a consensus rule: per position, the first non-missing
//     value across clique members; the final position is the rule's
//     predicted target.
//   - The prediction table maps every consensus source pattern to its
//     best target and every observed source pattern to the target of the
//     consensus that claims it with the most weight.
//   - Predict resolves queries by exact lookup; on a miss it searches a
//     (position, value) fallback index for the most compatible consensus
//     pattern, caches the result, and returns its target. With no
//     candidate at all it returns the missing sentinel.
//
// Why
//
//	Sound change is largely regular: the same source correspondence
//	recurs with the same target across a language family. Mutually
//	compatible partial observations of one correspondence form a clique;
//	its consensus reconstructs the full pattern, letting the classifier
//	generalize to rows never observed verbatim.
//
// Determinism
//
//	Node order is first occurrence in the training data; cliques are
//	enumerated by a pivoting Bron–Kerbosch over ascending node indices;
//	weight ties resolve to the smaller target index or lexicographically
//	smaller pattern. Fitting twice on identical ordered input yields an
//	identical model. Clique enumeration is complete, never sampled —
//	consensus rules are only correct over the full clique set.
//
// Concurrency
//
//	The fitted model is immutable. The fallback cache is the only state
//	Predict mutates; it is mutex-guarded, so concurrent Predict calls on
//	one Classifier are safe. Fit must not run concurrently with Predict.
//
// Complexity (t = distinct tuples, w = pattern width)
//
//   - Edge construction: O(t²·w)
//   - Maximal cliques: worst-case exponential in t — the scalability
//     risk; cap it with WithMaxCliques when inventories grow.
//
// Usage
//
//	clf := corpar.New(corpar.WithThreshold(1))
//	if err := clf.Fit(rows, targets); err != nil {
//	    // ErrOptionViolation, ErrDimensionMismatch,
//	    // ErrRaggedPattern, or ErrCliqueBudget
//	}
//	out := clf.Predict(queries) // never fails; missing sentinel on no match
//
// Errors
//
//   - ErrOptionViolation   — invalid Option supplied to New.
//   - ErrDimensionMismatch — rows and targets differ in length.
//   - ErrRaggedPattern     — pattern rows of unequal width.
//   - ErrCliqueBudget      — clique cap exceeded (WithMaxCliques).
package corpar
