// Package alphabet provides a deterministic embedding of sound symbols
// into small integer indices, shared by every classifier in a run.
//
// What
//
//   - Build an Alphabet once from every distinct symbol observed in the
//     training corpus (any language, source or target position).
//   - Reserved indices: the missing-value sentinel maps to 0 and the gap
//     symbol maps to 1; all remaining symbols receive indices 2..N+1,
//     assigned by lexicographic order of the symbol strings.
//   - Encode never fails: a symbol unseen at build time (it can only occur
//     at prediction time) encodes to the missing index.
//   - Decode never fails: an index outside the alphabet decodes to the
//     unknown-output sentinel.
//
// Why
//
//	The compatibility-graph classifier works on fixed-width integer
//	patterns only. Assigning indices by sorted symbol order makes the
//	embedding independent of encounter order, so two fits over the same
//	corpus produce identical models.
//
// Determinism
//
//	Build sorts the distinct symbol set before assigning indices;
//	indices never change after construction.
//
// Complexity (S = distinct symbols)
//
//   - Build:  O(S log S) time, O(S) memory
//   - Encode / Decode: O(1)
package alphabet
