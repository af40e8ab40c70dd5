// Package alphabet maps sound symbols to stable integer indices and back.
package alphabet

import "sort"

// Reserved symbol defaults shared across the module.
const (
	// DefaultMissing is the missing-value sentinel symbol.
	DefaultMissing = "Ø"

	// DefaultGap is the alignment gap symbol.
	DefaultGap = "-"

	// DefaultUnknown is the unknown-output sentinel returned by Decode
	// for indices outside the alphabet.
	DefaultUnknown = "?"
)

// Reserved indices. They hold for every Alphabet regardless of corpus.
const (
	// MissingIndex is the index of the missing-value sentinel.
	MissingIndex = 0

	// GapIndex is the index of the gap symbol.
	GapIndex = 1
)

// Option configures an Alphabet before the symbol indices are assigned.
type Option func(*Alphabet)

// WithMissing overrides the missing-value sentinel symbol.
func WithMissing(sym string) Option {
	return func(a *Alphabet) { a.missing = sym }
}

// WithGap overrides the gap symbol.
func WithGap(sym string) Option {
	return func(a *Alphabet) { a.gap = sym }
}

// WithUnknown overrides the unknown-output sentinel returned by Decode.
func WithUnknown(sym string) Option {
	return func(a *Alphabet) { a.unknown = sym }
}

// Alphabet is an immutable symbol ↔ index embedding.
// The zero value is not usable; construct with Build.
type Alphabet struct {
	missing string
	gap     string
	unknown string

	index   map[string]int
	symbols []string // position i holds the symbol with index i
}

// Build constructs an Alphabet from every symbol in syms.
// Duplicates and occurrences of the sentinels are tolerated; the
// sentinels always keep indices 0 and 1. Remaining distinct symbols are
// sorted lexicographically and assigned indices 2..N+1.
func Build(syms []string, opts ...Option) *Alphabet {
	a := &Alphabet{
		missing: DefaultMissing,
		gap:     DefaultGap,
		unknown: DefaultUnknown,
	}
	for _, opt := range opts {
		opt(a)
	}

	seen := make(map[string]struct{}, len(syms))
	for _, s := range syms {
		if s == a.missing || s == a.gap {
			continue
		}
		seen[s] = struct{}{}
	}
	rest := make([]string, 0, len(seen))
	for s := range seen {
		rest = append(rest, s)
	}
	sort.Strings(rest)

	a.symbols = make([]string, 0, len(rest)+2)
	a.symbols = append(a.symbols, a.missing, a.gap)
	a.symbols = append(a.symbols, rest...)
	a.index = make(map[string]int, len(a.symbols))
	for i, s := range a.symbols {
		a.index[s] = i
	}

	return a
}

// Encode returns the index of sym, or MissingIndex when sym was not part
// of the corpus the Alphabet was built from. Encode never fails.
func (a *Alphabet) Encode(sym string) int {
	if i, ok := a.index[sym]; ok {
		return i
	}

	return MissingIndex
}

// EncodeRow encodes a row of symbols position by position.
func (a *Alphabet) EncodeRow(row []string) []int {
	out := make([]int, len(row))
	for i, s := range row {
		out[i] = a.Encode(s)
	}

	return out
}

// Decode returns the symbol at idx, or the unknown sentinel when idx is
// outside the alphabet. Decode never fails.
func (a *Alphabet) Decode(idx int) string {
	if idx < 0 || idx >= len(a.symbols) {
		return a.unknown
	}

	return a.symbols[idx]
}

// DecodeRow decodes a row of indices position by position.
func (a *Alphabet) DecodeRow(row []int) []string {
	out := make([]string, len(row))
	for i, idx := range row {
		out[i] = a.Decode(idx)
	}

	return out
}

// Missing returns the missing-value sentinel symbol.
func (a *Alphabet) Missing() string { return a.missing }

// Gap returns the gap symbol.
func (a *Alphabet) Gap() string { return a.gap }

// Unknown returns the unknown-output sentinel symbol.
func (a *Alphabet) Unknown() string { return a.unknown }

// Len returns the number of indexed symbols, sentinels included.
func (a *Alphabet) Len() int { return len(a.symbols) }
