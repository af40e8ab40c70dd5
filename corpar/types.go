// Package corpar defines options and error values for the
// correspondence-pattern graph classifier.
package corpar

import (
	"errors"
	"fmt"
)

// Sentinel errors for classifier construction and fitting.
var (
	// ErrOptionViolation is returned by Fit when an invalid Option was
	// supplied to New.
	ErrOptionViolation = errors.New("corpar: invalid option supplied")

	// ErrDimensionMismatch indicates len(rows) != len(targets).
	ErrDimensionMismatch = errors.New("corpar: rows and targets differ in length")

	// ErrRaggedPattern indicates pattern rows of unequal width.
	ErrRaggedPattern = errors.New("corpar: pattern rows differ in width")

	// ErrCliqueBudget indicates the maximal-clique search exceeded the
	// cap configured with WithMaxCliques.
	ErrCliqueBudget = errors.New("corpar: maximal-clique budget exhausted")
)

// Option configures a Classifier via functional arguments. Invalid
// options are recorded and surfaced as ErrOptionViolation by Fit.
type Option func(*Options)

// Options holds classifier parameters.
type Options struct {
	// Threshold is the minimum number of agreeing non-missing positions
	// required for two patterns to be connected. Default 1.
	Threshold int

	// Missing is the index of the missing-value sentinel. Positions
	// holding it are skipped by the compatibility measure. Default 0.
	Missing int

	// MaxCliques caps maximal-clique enumeration as a safety valve
	// against pathological graphs. 0 disables the cap; when the cap is
	// exceeded Fit fails with ErrCliqueBudget rather than training on a
	// silently incomplete clique set.
	MaxCliques int

	// Cache receives fallback prediction results. When nil, the
	// classifier creates a private cache at Fit time.
	Cache *Cache

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with threshold 1, missing index 0,
// no clique cap, and a private cache.
func DefaultOptions() Options {
	return Options{
		Threshold:  1,
		Missing:    0,
		MaxCliques: 0,
		Cache:      nil,
		err:        nil,
	}
}

// WithThreshold sets the minimum agreement count for an edge.
//
//	n >= 1: use n
//	n <  1: invalid option → ErrOptionViolation
func WithThreshold(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = errOption("Threshold must be >= 1", n)
			return
		}
		o.Threshold = n
	}
}

// WithMissing sets the index of the missing-value sentinel.
func WithMissing(idx int) Option {
	return func(o *Options) {
		if idx < 0 {
			o.err = errOption("Missing index cannot be negative", idx)
			return
		}
		o.Missing = idx
	}
}

// WithMaxCliques caps clique enumeration.
//
//	n > 0: fail Fit with ErrCliqueBudget past n cliques
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCliques(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = errOption("MaxCliques cannot be negative", n)
			return
		}
		o.MaxCliques = n
	}
}

// WithCache injects a shared prediction cache. The classifier clears it
// on every Fit; see Cache for the concurrency contract.
func WithCache(c *Cache) Option {
	return func(o *Options) {
		if c != nil {
			o.Cache = c
		}
	}
}

// errOption wraps ErrOptionViolation with the offending value.
func errOption(msg string, v int) error {
	return fmt.Errorf("%w: %s (%d)", ErrOptionViolation, msg, v)
}

// Rule is one consensus correspondence rule derived from a clique.
type Rule struct {
	// Source is the consensus source pattern.
	Source []int

	// Target is the rule's predicted target value.
	Target int

	// Weight is the size of the largest clique backing this rule.
	Weight int
}
