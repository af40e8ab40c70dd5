package cognate

import (
	"fmt"
	"math/rand"
)

// Split partitions the table into a training copy and a solutions table
// for evaluation. For each language it samples ratio of that language's
// known cells (rounded to nearest), replaces them with the prediction
// marker in the training copy, and records the original forms in the
// solutions table. Cells already marked for prediction are never sampled.
//
// Determinism: sampling uses a local generator seeded with seed; equal
// inputs yield equal partitions.
func (t *Table) Split(ratio float64, seed int64) (training, solutions *Table, err error) {
	if ratio <= 0 || ratio >= 1 {
		return nil, nil, fmt.Errorf("%w: %v not in (0, 1)", ErrBadRatio, ratio)
	}
	rng := rand.New(rand.NewSource(seed))

	training = t.Clone()
	solutions = NewTable(t.Languages)

	sampled := make(map[string]map[string]struct{}, len(t.ids))
	for _, lang := range t.Languages {
		var known []string
		for _, id := range t.ids {
			form := t.rows[id][lang]
			if len(form) == 0 || IsToPredict(form) {
				continue
			}
			known = append(known, id)
		}
		take := int(ratio*float64(len(known)) + 0.5)
		for _, k := range rng.Perm(len(known))[:take] {
			id := known[k]
			if sampled[id] == nil {
				sampled[id] = make(map[string]struct{})
			}
			sampled[id][lang] = struct{}{}
		}
	}

	for _, id := range t.ids {
		langs, ok := sampled[id]
		if !ok {
			continue
		}
		for _, lang := range t.Languages {
			if _, ok := langs[lang]; !ok {
				continue
			}
			solutions.SetForm(id, lang, t.rows[id][lang])
			training.SetForm(id, lang, []string{ToPredictMarker})
		}
	}
	return training, solutions, nil
}
