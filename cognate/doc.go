// Package cognate models tabular cognate data: one row per cognate set,
// one column per language, each cell a sequence of sound symbols.
//
// What
//
//   - Table holds cognate sets in input order with a fixed canonical
//     language order. An empty cell means the language has no form in
//     the set; a cell holding the single symbol "?" marks a form to be
//     predicted.
//   - Read/Write speak the shared tab-separated format: a header row
//     naming the identifier pseudo-column and the languages, then one
//     row per cognate set with space-separated sound sequences.
//   - Split carves per-language held-out samples out of a table for
//     evaluation: sampled cells are replaced by "?" in the training copy
//     and collected verbatim in a solutions table. The random seed is an
//     explicit parameter — sampling never touches process-wide state.
//
// Determinism
//
//	Row order and language order are preserved end to end; Split is a
//	pure function of (table, ratio, seed).
//
// Errors
//
//   - ErrBadHeader — header row missing or without languages.
//   - ErrBadRow    — data row with the wrong number of columns.
//   - ErrBadRatio  — Split ratio outside (0, 1).
package cognate
