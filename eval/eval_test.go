package eval

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcelano/ST2022/cognate"
)

func TestDistance(t *testing.T) {
	cases := []struct {
		a, b []string
		want int
	}{
		{nil, nil, 0},
		{[]string{"p", "a"}, nil, 2},
		{nil, []string{"p", "a"}, 2},
		{[]string{"p", "a"}, []string{"p", "a"}, 0},
		{[]string{"p", "a"}, []string{"b", "a"}, 1},
		{[]string{"p", "a", "t"}, []string{"p", "a"}, 1},
		{[]string{"k", "i", "t", "t", "e", "n"}, []string{"s", "i", "t", "t", "i", "n", "g"}, 3},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Distance(c.a, c.b), "%v vs %v", c.a, c.b)
	}
}

func readTable(t *testing.T, tsv string) *cognate.Table {
	t.Helper()
	tbl, err := cognate.Read(strings.NewReader(tsv))
	require.NoError(t, err)
	return tbl
}

func TestCompare(t *testing.T) {
	solutions := readTable(t, "COGID\tA\tB\n"+
		"1\tp a\tb a\n"+
		"2\tt i\t\n")
	predicted := readTable(t, "COGID\tA\tB\n"+
		"1\tp a\tb e\n"+
		"2\tt i k\t\n")

	r := Compare(predicted, solutions)
	require.Len(t, r.Scores, 3)

	a := r.Scores[0]
	assert.Equal(t, "A", a.Language)
	assert.Equal(t, 2, a.Items)
	assert.InDelta(t, 0.5, a.ED, 1e-9)           // (0 + 1) / 2
	assert.InDelta(t, 1.0/6.0, a.NED, 1e-9)      // (0 + 1/3) / 2

	b := r.Scores[1]
	assert.Equal(t, "B", b.Language)
	assert.Equal(t, 1, b.Items)
	assert.InDelta(t, 1.0, b.ED, 1e-9)
	assert.InDelta(t, 0.5, b.NED, 1e-9)

	total := r.Scores[2]
	assert.Equal(t, TotalLabel, total.Language)
	assert.Equal(t, 3, total.Items)
	assert.InDelta(t, 2.0/3.0, total.ED, 1e-9)
	assert.InDelta(t, (0+1.0/3.0+0.5)/3.0, total.NED, 1e-9)
}

func TestCompare_MissingPredictionScoresAsEmpty(t *testing.T) {
	solutions := readTable(t, "COGID\tA\n1\tp a\n")
	predicted := readTable(t, "COGID\tA\n1\t?\n")

	r := Compare(predicted, solutions)
	a := r.Scores[0]
	assert.Equal(t, 1, a.Items)
	assert.InDelta(t, 2.0, a.ED, 1e-9)
	assert.InDelta(t, 1.0, a.NED, 1e-9)
}

func TestFormat(t *testing.T) {
	r := &Report{Scores: []Score{
		{Language: "A", Items: 2, ED: 0.5, NED: 0.25},
		{Language: TotalLabel, Items: 2, ED: 0.5, NED: 0.25},
	}}
	var buf bytes.Buffer
	require.NoError(t, r.Format(&buf))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "LANGUAGE")
	assert.Contains(t, lines[1], "0.5000")
	assert.Contains(t, lines[2], TotalLabel)
}
