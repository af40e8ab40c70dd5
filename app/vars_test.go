package app

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gcelano/ST2022/align"
)

func TestDefaultOut(t *testing.T) {
	assert.Equal(t, "data/rom-out.tsv", defaultOut("data/rom.tsv"))
	assert.Equal(t, "rom-out.tsv", defaultOut("rom"))
}

func TestParseProps(t *testing.T) {
	got, err := parseProps("0.1, 0.2,0.5")
	require.NoError(t, err)
	assert.Equal(t, []float64{0.1, 0.2, 0.5}, got)

	_, err = parseProps("")
	assert.Error(t, err)

	_, err = parseProps("0.1,nope")
	assert.Error(t, err)
}

func TestParseMethod(t *testing.T) {
	m, err := parseMethod("progressive")
	require.NoError(t, err)
	assert.Equal(t, align.Progressive, m)

	m, err = parseMethod("rightpad")
	require.NoError(t, err)
	assert.Equal(t, align.RightPad, m)

	_, err = parseMethod("needleman")
	assert.Error(t, err)
}
