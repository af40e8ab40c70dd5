package reflex

import (
	"errors"

	"github.com/gcelano/ST2022/align"
)

// Sentinel errors returned by Predictor.
var (
	// ErrNotFitted indicates Predict was called before a successful Fit.
	ErrNotFitted = errors.New("reflex: predictor not fitted")

	// ErrUnknownLanguage indicates a language outside the table's
	// canonical language set.
	ErrUnknownLanguage = errors.New("reflex: unknown language")

	// ErrUnknownCognate indicates a cognate-set identifier the table does
	// not contain.
	ErrUnknownCognate = errors.New("reflex: unknown cognate set")

	// ErrNoDonorForms indicates a prediction request with no attested
	// donor forms to predict from.
	ErrNoDonorForms = errors.New("reflex: no donor forms")

	// ErrDimensionMismatch indicates donor language and form slices of
	// different lengths.
	ErrDimensionMismatch = errors.New("reflex: languages and forms length mismatch")

	// ErrRaggedAlignment indicates aligned rows of unequal width; it marks
	// an internal invariant violation.
	ErrRaggedAlignment = errors.New("reflex: ragged alignment")
)

// Options configures a Predictor.
type Options struct {
	// Threshold is the minimum number of matching non-missing positions
	// for two correspondence patterns to count as compatible.
	Threshold int
	// MaxCliques bounds clique enumeration per classifier; 0 means
	// unbounded.
	MaxCliques int
	// Method selects the multiple-sequence-alignment strategy.
	Method align.Method
}

// DefaultOptions mirrors the classifier and aligner defaults.
func DefaultOptions() Options {
	return Options{
		Threshold:  1,
		MaxCliques: 0,
		Method:     align.Progressive,
	}
}

// Option mutates Options.
type Option func(*Options)

// WithThreshold sets the pattern-compatibility match threshold.
func WithThreshold(n int) Option {
	return func(o *Options) { o.Threshold = n }
}

// WithMaxCliques bounds clique enumeration per language model.
func WithMaxCliques(n int) Option {
	return func(o *Options) { o.MaxCliques = n }
}

// WithMethod selects the alignment strategy.
func WithMethod(m align.Method) Option {
	return func(o *Options) { o.Method = m }
}
