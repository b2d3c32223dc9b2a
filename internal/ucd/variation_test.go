package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVariationSequences(t *testing.T) {
	input := strings.Join([]string{
		"# StandardizedVariants.txt",
		"0030 FE00; short diagonal stroke form; # DIGIT ZERO",
		"4E0D FE00; CJK COMPATIBILITY IDEOGRAPH-F967;",
	}, "\n")

	seqs, err := ParseVariationSequences(strings.NewReader(input), "StandardizedVariants.txt")
	require.NoError(t, err)
	require.Len(t, seqs, 2)

	assert.Equal(t, VariationSequence{Base: 0x0030, Selector: 0xFE00, Description: "short diagonal stroke form"}, seqs[0])
	assert.Equal(t, VariationSequence{Base: 0x4E0D, Selector: 0xFE00, Description: "CJK COMPATIBILITY IDEOGRAPH-F967"}, seqs[1])
}

func TestParseVariationSequencesDuplicatesAcrossSourcesCoexist(t *testing.T) {
	standardized := "0023 FE0E; text style;\n"
	emoji := "0023 FE0E; text presentation selector;\n"

	first, err := ParseVariationSequences(strings.NewReader(standardized), "StandardizedVariants.txt")
	require.NoError(t, err)
	second, err := ParseVariationSequences(strings.NewReader(emoji), "emoji-variation-sequences.txt")
	require.NoError(t, err)

	// Merging is plain concatenation: both rows survive with their own
	// descriptions.
	merged := append(first, second...)
	require.Len(t, merged, 2)
	assert.Equal(t, merged[0].Base, merged[1].Base)
	assert.Equal(t, merged[0].Selector, merged[1].Selector)
	assert.NotEqual(t, merged[0].Description, merged[1].Description)
}

func TestParseVariationSequencesErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{name: "single codepoint", input: "0023; text style;"},
		{name: "three codepoints", input: "0023 FE0E FE0F; text style;"},
		{name: "missing separator", input: "0023 FE0E"},
		{name: "bad hex", input: "00G3 FE0E; text style;"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseVariationSequences(strings.NewReader(tc.input), "variants.txt")
			assert.Error(t, err)
		})
	}
}
