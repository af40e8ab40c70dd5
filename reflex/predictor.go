package reflex

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/gcelano/ST2022/align"
	"github.com/gcelano/ST2022/alphabet"
	"github.com/gcelano/ST2022/cognate"
	"github.com/gcelano/ST2022/corpar"
)

// Predictor trains one correspondence classifier per language of a
// cognate table and predicts unattested reflexes.
// Not safe for concurrent use while Fit is running; after Fit it is safe
// for concurrent Predict calls.
type Predictor struct {
	table *cognate.Table
	opts  Options

	langIdx map[string]int

	alpha  *alphabet.Alphabet
	models map[string]*corpar.Classifier
	fitted bool
}

// New returns an unfitted Predictor over table.
func New(table *cognate.Table, opts ...Option) *Predictor {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	idx := make(map[string]int, len(table.Languages))
	for i, lang := range table.Languages {
		idx[lang] = i
	}
	return &Predictor{
		table:   table,
		opts:    o,
		langIdx: idx,
		models:  make(map[string]*corpar.Classifier),
	}
}

// Languages lists the canonical languages of the underlying table.
func (p *Predictor) Languages() []string {
	return append([]string(nil), p.table.Languages...)
}

// instances holds one language's training material in symbol space.
type instances struct {
	patterns [][]string
	targets  []string
}

// Fit trains every language's classifier from the table's attested forms.
func (p *Predictor) Fit() error {
	langs := p.table.Languages
	train := make([]instances, len(langs))

	seen := make(map[string]struct{})
	var symbols []string
	collect := func(sym string) {
		if _, ok := seen[sym]; ok {
			return
		}
		seen[sym] = struct{}{}
		symbols = append(symbols, sym)
	}

	for _, id := range p.table.IDs() {
		row := p.table.Row(id)
		var knownIdx []int
		for i, form := range row {
			if len(form) > 0 && !cognate.IsToPredict(form) {
				knownIdx = append(knownIdx, i)
			}
		}
		if len(knownIdx) < 2 {
			continue
		}
		seqs := make([][]string, len(knownIdx))
		setLangs := make([]string, len(knownIdx))
		for k, i := range knownIdx {
			seqs[k] = row[i]
			setLangs[k] = langs[i]
		}
		alm, err := align.Align(seqs, &align.Options{Method: p.opts.Method, Gap: alphabet.DefaultGap})
		if err != nil {
			return fmt.Errorf("reflex: cognate set %s: %w", id, err)
		}

		for k, li := range knownIdx {
			target := langs[li]
			merged := align.MergeProtoGaps(alm, setLangs, target, alphabet.DefaultGap)
			width := len(merged[0])
			for _, mrow := range merged {
				if len(mrow) != width {
					return fmt.Errorf("%w: cognate set %s, target %s", ErrRaggedAlignment, id, target)
				}
			}
			pos := make(map[int]int, len(knownIdx)) // canonical index -> merged row
			for kk, ii := range knownIdx {
				pos[ii] = kk
			}
			for col := 0; col < width; col++ {
				pattern := make([]string, 0, len(langs)-1)
				for i := range langs {
					if i == li {
						continue
					}
					sym := alphabet.DefaultMissing
					if r, ok := pos[i]; ok {
						sym = merged[r][col]
					}
					pattern = append(pattern, sym)
					collect(sym)
				}
				tgt := merged[k][col]
				collect(tgt)
				train[li].patterns = append(train[li].patterns, pattern)
				train[li].targets = append(train[li].targets, tgt)
			}
		}
	}

	p.alpha = alphabet.Build(symbols)

	var wg sync.WaitGroup
	errs := make([]error, len(langs))
	for i, lang := range langs {
		model := corpar.New(
			corpar.WithThreshold(p.opts.Threshold),
			corpar.WithMaxCliques(p.opts.MaxCliques),
			corpar.WithMissing(alphabet.MissingIndex),
		)
		p.models[lang] = model

		rows := make([][]int, len(train[i].patterns))
		for r, pat := range train[i].patterns {
			rows[r] = p.alpha.EncodeRow(pat)
		}
		targets := make([]int, len(train[i].targets))
		for r, t := range train[i].targets {
			targets[r] = p.alpha.Encode(t)
		}

		wg.Add(1)
		go func(slot int, m *corpar.Classifier, rows [][]int, targets []int) {
			defer wg.Done()
			errs[slot] = m.Fit(rows, targets)
		}(i, model, rows, targets)
	}
	wg.Wait()
	if err := errors.Join(errs...); err != nil {
		return err
	}

	p.fitted = true
	return nil
}

// Predict infers the reflex of target in the cognate set id from the
// set's attested donor forms.
func (p *Predictor) Predict(id, target string) ([]string, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	ti, ok := p.langIdx[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, target)
	}
	if !p.table.Has(id) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCognate, id)
	}

	row := p.table.Row(id)
	var donorLangs []string
	var donorForms [][]string
	for i, form := range row {
		if i == ti || len(form) == 0 || cognate.IsToPredict(form) {
			continue
		}
		donorLangs = append(donorLangs, p.table.Languages[i])
		donorForms = append(donorForms, form)
	}
	if len(donorLangs) == 0 {
		return nil, fmt.Errorf("%w: cognate set %s, target %s", ErrNoDonorForms, id, target)
	}
	return p.PredictForms(donorLangs, donorForms, target)
}

// PredictForms infers the reflex of target from explicit donor forms.
// Donor entries naming the target itself are dropped — a prediction
// never peeks at the language it predicts. Donors are reordered into
// canonical language order; a duplicate donor keeps its first form.
func (p *Predictor) PredictForms(languages []string, forms [][]string, target string) ([]string, error) {
	if !p.fitted {
		return nil, ErrNotFitted
	}
	ti, ok := p.langIdx[target]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, target)
	}
	if len(languages) != len(forms) {
		return nil, fmt.Errorf("%w: %d languages, %d forms", ErrDimensionMismatch, len(languages), len(forms))
	}

	byLang := make(map[string][]string, len(languages))
	for i, lang := range languages {
		if _, ok := p.langIdx[lang]; !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownLanguage, lang)
		}
		if lang == target {
			continue
		}
		if _, ok := byLang[lang]; !ok {
			byLang[lang] = forms[i]
		}
	}
	var donorLangs []string
	var seqs [][]string
	var donorIdx []int
	for i, lang := range p.table.Languages {
		form, ok := byLang[lang]
		if !ok {
			continue
		}
		donorLangs = append(donorLangs, lang)
		seqs = append(seqs, form)
		donorIdx = append(donorIdx, i)
	}
	if len(seqs) == 0 {
		return nil, fmt.Errorf("%w: target %s", ErrNoDonorForms, target)
	}

	alm, err := align.Align(seqs, &align.Options{Method: p.opts.Method, Gap: alphabet.DefaultGap})
	if err != nil {
		return nil, fmt.Errorf("reflex: %w", err)
	}
	// The target is absent from the rows, so the merge is a no-op; it is
	// applied anyway to keep fit and predict on one code path.
	merged := align.MergeProtoGaps(alm, donorLangs, target, alphabet.DefaultGap)
	width := len(merged[0])
	for _, mrow := range merged {
		if len(mrow) != width {
			return nil, fmt.Errorf("%w: target %s", ErrRaggedAlignment, target)
		}
	}

	pos := make(map[int]int, len(donorIdx)) // canonical index -> merged row
	for k, i := range donorIdx {
		pos[i] = k
	}
	rows := make([][]int, width)
	for col := 0; col < width; col++ {
		pattern := make([]string, 0, len(p.table.Languages)-1)
		for i := range p.table.Languages {
			if i == ti {
				continue
			}
			sym := alphabet.DefaultMissing
			if r, ok := pos[i]; ok {
				sym = merged[r][col]
			}
			pattern = append(pattern, sym)
		}
		rows[col] = p.alpha.EncodeRow(pattern)
	}

	classes := p.models[target].Predict(rows)
	var out []string
	for _, cls := range classes {
		sym := p.alpha.Decode(cls)
		if sym == p.alpha.Gap() {
			continue
		}
		for _, part := range strings.Split(sym, ".") {
			if part != "" && part != p.alpha.Gap() {
				out = append(out, part)
			}
		}
	}
	if len(out) == 0 {
		out = []string{p.alpha.Missing()}
	}
	return out, nil
}

// ToPredict fills every cell marked with the prediction request marker
// and returns the completed copy of the table. Cells with no attested
// donors keep their marker.
func (p *Predictor) ToPredict() (*cognate.Table, error) {
	out := p.table.Clone()
	if err := p.fillMarked(out); err != nil {
		return nil, err
	}
	return out, nil
}

// PredictMarked predicts every cell marked with the prediction request
// marker and returns a table holding only those cells. Cells with no
// attested donors are omitted.
func (p *Predictor) PredictMarked() (*cognate.Table, error) {
	out := cognate.NewTable(p.table.Languages)
	if err := p.fillMarked(out); err != nil {
		return nil, err
	}
	return out, nil
}

// fillMarked writes the prediction of every marked cell into out.
func (p *Predictor) fillMarked(out *cognate.Table) error {
	if !p.fitted {
		return ErrNotFitted
	}
	ids, langs := p.table.ToPredict()
	for i, id := range ids {
		form, err := p.Predict(id, langs[i])
		if errors.Is(err, ErrNoDonorForms) {
			continue
		}
		if err != nil {
			return err
		}
		out.SetForm(id, langs[i], form)
	}
	return nil
}
