package alphabet_test

import (
	"testing"

	"github.com/gcelano/ST2022/alphabet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBuild_ReservedIndices verifies the sentinel symbols always occupy
// indices 0 and 1, regardless of whether they appear in the input.
func TestBuild_ReservedIndices(t *testing.T) {
	a := alphabet.Build([]string{"b", "a", "-", "Ø"})

	assert.Equal(t, alphabet.MissingIndex, a.Encode("Ø"), "missing sentinel must map to 0")
	assert.Equal(t, alphabet.GapIndex, a.Encode("-"), "gap must map to 1")
	assert.Equal(t, 4, a.Len(), "two sentinels plus two symbols")
}

// TestBuild_SortedAssignment verifies indices follow lexicographic symbol
// order, independent of encounter order.
func TestBuild_SortedAssignment(t *testing.T) {
	a := alphabet.Build([]string{"t", "p", "a", "i"})
	b := alphabet.Build([]string{"a", "i", "p", "t"})

	for _, s := range []string{"a", "i", "p", "t"} {
		assert.Equal(t, a.Encode(s), b.Encode(s), "index of %q must not depend on encounter order", s)
	}
	// a < i < p < t ⇒ indices 2..5
	assert.Equal(t, 2, a.Encode("a"))
	assert.Equal(t, 3, a.Encode("i"))
	assert.Equal(t, 4, a.Encode("p"))
	assert.Equal(t, 5, a.Encode("t"))
}

// TestRoundTrip verifies decode(encode(s)) == s for every corpus symbol.
func TestRoundTrip(t *testing.T) {
	syms := []string{"p", "a", "t", "i", "kʷ", "ʔ", "a.b"}
	a := alphabet.Build(syms)

	for _, s := range syms {
		assert.Equal(t, s, a.Decode(a.Encode(s)), "round-trip of %q", s)
	}
	assert.Equal(t, "Ø", a.Decode(alphabet.MissingIndex))
	assert.Equal(t, "-", a.Decode(alphabet.GapIndex))
}

// TestEncode_UnseenSymbol verifies unseen symbols encode to the missing
// index instead of failing.
func TestEncode_UnseenSymbol(t *testing.T) {
	a := alphabet.Build([]string{"p", "a"})

	assert.Equal(t, alphabet.MissingIndex, a.Encode("z"), "unseen symbol must encode to missing")
}

// TestDecode_UnseenIndex verifies out-of-range indices decode to the
// unknown sentinel.
func TestDecode_UnseenIndex(t *testing.T) {
	a := alphabet.Build([]string{"p", "a"})

	assert.Equal(t, alphabet.DefaultUnknown, a.Decode(99))
	assert.Equal(t, alphabet.DefaultUnknown, a.Decode(-1))
}

// TestCustomSentinels verifies the option overrides.
func TestCustomSentinels(t *testing.T) {
	a := alphabet.Build(
		[]string{"x"},
		alphabet.WithMissing("?"),
		alphabet.WithGap("_"),
		alphabet.WithUnknown("<unk>"),
	)

	require.Equal(t, "?", a.Missing())
	require.Equal(t, "_", a.Gap())
	assert.Equal(t, 0, a.Encode("?"))
	assert.Equal(t, 1, a.Encode("_"))
	assert.Equal(t, "<unk>", a.Decode(42))
}

// TestEncodeRow_DecodeRow exercises the row helpers.
func TestEncodeRow_DecodeRow(t *testing.T) {
	a := alphabet.Build([]string{"p", "a"})

	row := []string{"p", "a", "Ø", "-"}
	enc := a.EncodeRow(row)
	assert.Equal(t, row, a.DecodeRow(enc))
}
