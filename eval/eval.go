package eval

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/gcelano/ST2022/cognate"
)

// TotalLabel names the cross-language aggregate row of a Report.
const TotalLabel = "TOTAL"

// Score holds the aggregated accuracy of one language (or the TOTAL row).
type Score struct {
	Language string
	// Items is the number of solution cells compared.
	Items int
	// ED is the mean unit-cost edit distance.
	ED float64
	// NED is the mean edit distance normalized by the longer form.
	NED float64
}

// Report lists per-language scores in canonical language order, followed
// by the TOTAL row.
type Report struct {
	Scores []Score
}

// Distance computes the unit-cost Levenshtein distance between two
// sound sequences.
func Distance(a, b []string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min3(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}

// normalized scales a distance by the longer of the two forms; two empty
// forms are identical.
func normalized(d int, a, b []string) float64 {
	n := len(a)
	if len(b) > n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	return float64(d) / float64(n)
}

// Compare scores every solution cell against the predictions table.
func Compare(predicted, solutions *cognate.Table) *Report {
	type acc struct {
		items int
		ed    float64
		ned   float64
	}
	perLang := make(map[string]*acc, len(solutions.Languages))
	for _, lang := range solutions.Languages {
		perLang[lang] = &acc{}
	}
	total := &acc{}

	for _, id := range solutions.IDs() {
		for _, lang := range solutions.Languages {
			sol, ok := solutions.Form(id, lang)
			if !ok {
				continue
			}
			pred, ok := predicted.Form(id, lang)
			if !ok || cognate.IsToPredict(pred) {
				pred = nil
			}
			d := Distance(pred, sol)
			nd := normalized(d, pred, sol)
			for _, a := range []*acc{perLang[lang], total} {
				a.items++
				a.ed += float64(d)
				a.ned += nd
			}
		}
	}

	r := &Report{}
	emit := func(label string, a *acc) {
		s := Score{Language: label, Items: a.items}
		if a.items > 0 {
			s.ED = a.ed / float64(a.items)
			s.NED = a.ned / float64(a.items)
		}
		r.Scores = append(r.Scores, s)
	}
	for _, lang := range solutions.Languages {
		emit(lang, perLang[lang])
	}
	emit(TotalLabel, total)
	return r
}

// Format renders the report as an aligned table.
func (r *Report) Format(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	if _, err := fmt.Fprintln(tw, "LANGUAGE\tITEMS\tED\tNED"); err != nil {
		return err
	}
	for _, s := range r.Scores {
		if _, err := fmt.Fprintf(tw, "%s\t%d\t%.4f\t%.4f\n", s.Language, s.Items, s.ED, s.NED); err != nil {
			return err
		}
	}
	return tw.Flush()
}
