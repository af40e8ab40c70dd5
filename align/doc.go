// Package align turns variable-length sound sequences into equal-length
// alignment matrices and post-processes them for correspondence training.
//
// What
//
//   - Align produces one aligned row per input sequence, all of equal
//     length, preserving input order. Two interchangeable strategies:
//   - Progressive — consensus-guided progressive multiple-sequence
//     alignment: each sequence is Needleman–Wunsch-aligned against the
//     consensus of the rows aligned so far, and the gaps of that pairwise
//     alignment are folded back into the whole profile.
//   - RightPad — length normalization that right-pads shorter sequences
//     with gaps, never reordering content. Cheap and trivially
//     deterministic; useful as a baseline strategy.
//   - MergeProtoGaps collapses one-to-many sound correspondences: columns
//     in which every non-reference row holds a gap are folded into the
//     nearest preceding column, joining multi-segment reference material
//     into one composite cell ("p.h"). Applying the merge to its own
//     output is a no-op.
//
// Why
//
//	A single ancestral sound that surfaces as several segments in one
//	language should train as one composite correspondence cell, not as a
//	run of gap-diluted columns. Equal row length is what gives downstream
//	patterns their fixed width.
//
// Determinism
//
//	Both strategies are fully deterministic: Needleman–Wunsch traceback
//	prefers diagonal, then vertical, then horizontal moves on ties, and
//	column consensus breaks frequency ties lexicographically.
//
// Complexity (k = sequences, n = max sequence length)
//
//   - Progressive: O(k·n²) time, O(n²) memory
//   - RightPad:    O(k·n) time
//   - MergeProtoGaps: O(k·n) time
//
// Errors
//
//   - ErrNoSequences    — Align called with zero sequences.
//   - ErrEmptySequence  — a sequence is empty after gap stripping.
//   - ErrUnknownMethod  — Options.Method is not a known strategy.
package align
