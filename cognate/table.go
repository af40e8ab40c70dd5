package cognate

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Sentinel errors returned by the table codec and splitter.
var (
	// ErrBadHeader marks a missing header row or one that names no languages.
	ErrBadHeader = errors.New("cognate: bad header")
	// ErrBadRow marks a data row whose column count disagrees with the header.
	ErrBadRow = errors.New("cognate: bad row")
	// ErrBadRatio marks a Split ratio outside the open interval (0, 1).
	ErrBadRatio = errors.New("cognate: bad ratio")
)

// Format constants of the tab-separated cognate table.
const (
	// IDColumn is the header label of the identifier pseudo-column.
	IDColumn = "COGID"
	// ToPredictMarker is the single-symbol cell content requesting a prediction.
	ToPredictMarker = "?"
)

// Table is an ordered collection of cognate sets over a fixed set of
// languages. Rows keep input order; languages keep header order.
type Table struct {
	// Languages lists the column languages in canonical (header) order.
	Languages []string

	ids  []string
	rows map[string]map[string][]string
}

// NewTable returns an empty table over the given languages.
func NewTable(languages []string) *Table {
	return &Table{
		Languages: append([]string(nil), languages...),
		rows:      make(map[string]map[string][]string),
	}
}

// Len reports the number of cognate sets.
func (t *Table) Len() int { return len(t.ids) }

// Has reports whether the table contains a cognate set with the given
// identifier.
func (t *Table) Has(id string) bool {
	_, ok := t.rows[id]
	return ok
}

// IDs returns the cognate-set identifiers in input order.
func (t *Table) IDs() []string {
	return append([]string(nil), t.ids...)
}

// Form returns the sound sequence of one cell. The second result is false
// when the language has no form in the set.
func (t *Table) Form(id, language string) ([]string, bool) {
	row, ok := t.rows[id]
	if !ok {
		return nil, false
	}
	form, ok := row[language]
	return form, ok
}

// SetForm stores a sound sequence in one cell, creating the row when the
// identifier is new. A nil or empty form deletes the cell.
func (t *Table) SetForm(id, language string, form []string) {
	row, ok := t.rows[id]
	if !ok {
		row = make(map[string][]string)
		t.rows[id] = row
		t.ids = append(t.ids, id)
	}
	if len(form) == 0 {
		delete(row, language)
		return
	}
	row[language] = append([]string(nil), form...)
}

// Row returns the forms of one cognate set in canonical language order;
// absent cells are nil.
func (t *Table) Row(id string) [][]string {
	out := make([][]string, len(t.Languages))
	row, ok := t.rows[id]
	if !ok {
		return out
	}
	for i, lang := range t.Languages {
		if form, ok := row[lang]; ok {
			out[i] = form
		}
	}
	return out
}

// Clone returns a deep copy of the table.
func (t *Table) Clone() *Table {
	c := NewTable(t.Languages)
	for _, id := range t.ids {
		for lang, form := range t.rows[id] {
			c.SetForm(id, lang, form)
		}
	}
	// SetForm appends ids as encountered per row; preserve original order.
	c.ids = append([]string(nil), t.ids...)
	return c
}

// IsToPredict reports whether a cell content is the prediction request
// marker.
func IsToPredict(form []string) bool {
	return len(form) == 1 && form[0] == ToPredictMarker
}

// ToPredict lists the (id, language) cells marked with the prediction
// request marker, in row order then canonical language order.
func (t *Table) ToPredict() (ids, languages []string) {
	for _, id := range t.ids {
		row := t.rows[id]
		for _, lang := range t.Languages {
			if IsToPredict(row[lang]) {
				ids = append(ids, id)
				languages = append(languages, lang)
			}
		}
	}
	return ids, languages
}

// Symbols returns the distinct sound symbols appearing in the table, in
// first-encounter order (row order, then language order, then position).
// The prediction marker is not a sound and is skipped.
func (t *Table) Symbols() []string {
	seen := make(map[string]struct{})
	var out []string
	for _, id := range t.ids {
		row := t.rows[id]
		for _, lang := range t.Languages {
			form := row[lang]
			if IsToPredict(form) {
				continue
			}
			for _, s := range form {
				if _, ok := seen[s]; ok {
					continue
				}
				seen[s] = struct{}{}
				out = append(out, s)
			}
		}
	}
	return out
}

// Read parses a tab-separated cognate table from r.
func Read(r io.Reader) (*Table, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: empty input", ErrBadHeader)
	}
	header := strings.Split(strings.TrimRight(sc.Text(), "\r\n"), "\t")
	if len(header) < 2 {
		return nil, fmt.Errorf("%w: need %s plus at least one language", ErrBadHeader, IDColumn)
	}
	t := NewTable(header[1:])

	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r\n")
		if text == "" {
			continue
		}
		cells := strings.Split(text, "\t")
		if len(cells) != len(header) {
			return nil, fmt.Errorf("%w: line %d has %d columns, want %d", ErrBadRow, line, len(cells), len(header))
		}
		id := cells[0]
		for i, lang := range t.Languages {
			form := strings.Fields(cells[i+1])
			if len(form) == 0 {
				// still register the row even if every cell is empty
				if _, ok := t.rows[id]; !ok {
					t.rows[id] = make(map[string][]string)
					t.ids = append(t.ids, id)
				}
				continue
			}
			t.SetForm(id, lang, form)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return t, nil
}

// ReadFile parses a tab-separated cognate table from a file.
func ReadFile(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}

// Write renders the table as tab-separated text.
func (t *Table) Write(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := fmt.Fprintf(bw, "%s\t%s\n", IDColumn, strings.Join(t.Languages, "\t")); err != nil {
		return err
	}
	for _, id := range t.ids {
		row := t.rows[id]
		cells := make([]string, 0, len(t.Languages)+1)
		cells = append(cells, id)
		for _, lang := range t.Languages {
			cells = append(cells, strings.Join(row[lang], " "))
		}
		if _, err := fmt.Fprintln(bw, strings.Join(cells, "\t")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile renders the table as tab-separated text into a file.
func (t *Table) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := t.Write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
