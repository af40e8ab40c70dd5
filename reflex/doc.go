// Package reflex predicts missing cognate reflexes from the attested
// forms of related languages.
//
// What
//
//	Predictor glues the pipeline together. Fit trains one correspondence
//	classifier per language from a cognate table:
//
//	  1. For every target language L and every cognate set where L and at
//	     least one other language are attested, the attested forms are
//	     multiple-sequence aligned and one-to-many correspondences are
//	     merged relative to L.
//	  2. Every alignment column becomes a training instance: the sounds of
//	     the non-target languages at their canonical positions (absent
//	     languages hold the missing sentinel) form the pattern, the sound
//	     of L the target class.
//	  3. Instances are embedded through one alphabet shared by all
//	     languages and fed to a corpar.Classifier per language.
//
//	Predict reverses the pipeline for one cognate set: the donor forms
//	are aligned, each column is classified by the target language's
//	model, and the decoded column sounds are concatenated. Gap symbols
//	are dropped and merged composite sounds ("t.ʰ") are split back into
//	their parts; a position no rule or analogy can resolve surfaces as
//	the missing sentinel.
//
// Determinism
//
//	Languages train in canonical table order, instances in row order.
//	Classifier fits run concurrently but each model's input is fixed
//	beforehand; equal tables and options yield equal predictions.
//
// Errors
//
//   - ErrNotFitted        — Predict before a successful Fit.
//   - ErrUnknownLanguage  — language outside the table's canonical set.
//   - ErrUnknownCognate   — cognate-set identifier not in the table.
//   - ErrNoDonorForms     — nothing attested to predict from.
//   - ErrRaggedAlignment  — internal alignment width disagreement.
//
// Usage
//
//	p := reflex.New(table)
//	if err := p.Fit(); err != nil { ... }
//	form, err := p.Predict("412", "Latin")
package reflex
