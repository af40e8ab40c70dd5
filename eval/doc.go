// Package eval scores predicted word forms against held-out solutions.
//
// What
//
//   - Distance is unit-cost Levenshtein over sound-symbol slices.
//   - Compare walks the solution cells of a solutions table, looks up the
//     matching cells in a predictions table, and aggregates per-language
//     mean edit distance and mean length-normalized edit distance plus a
//     TOTAL row over all compared cells.
//   - Report.Format renders the aggregates as an aligned text table.
//
// A solution cell with no matching prediction (absent, or still carrying
// the prediction request marker) scores as if an empty form had been
// predicted: distance = solution length, normalized distance = 1.
//
// Determinism
//
//	Languages are reported in the solutions table's canonical order;
//	equal inputs produce byte-equal reports.
package eval
