package ucd

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyMappingThreeColumn(t *testing.T) {
	// JIS X 0208 style: shift-jis, kuten, unicode.
	input := strings.Join([]string{
		"# JIS X 0208 (1990) to Unicode",
		"0x8140\t0x2121\t0x3000\t# IDEOGRAPHIC SPACE",
		"0x8141\t0x2122\t0x3001\t# IDEOGRAPHIC COMMA",
	}, "\n")

	set, err := ParseLegacyMapping(strings.NewReader(input), "JIS0208.TXT")
	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Contains(t, set, rune(0x3000))
	assert.Contains(t, set, rune(0x3001))
	assert.NotContains(t, set, rune(0x8140), "only the final hex token is the Unicode codepoint")
}

func TestParseLegacyMappingTwoColumn(t *testing.T) {
	// JIS X 0201 style: byte, unicode.
	input := "0xB1 0xFF71 # HALFWIDTH KATAKANA LETTER A\n"

	set, err := ParseLegacyMapping(strings.NewReader(input), "JIS0201.TXT")
	require.NoError(t, err)
	assert.Len(t, set, 1)
	assert.Contains(t, set, rune(0xFF71))
}

func TestParseLegacyMappingCollapsesDuplicates(t *testing.T) {
	input := "0x20 0x0020\n0x21 0x0020\n"

	set, err := ParseLegacyMapping(strings.NewReader(input), "JIS0201.TXT")
	require.NoError(t, err)
	assert.Len(t, set, 1)
}

func TestParseLegacyMappingRejectsBadToken(t *testing.T) {
	_, err := ParseLegacyMapping(strings.NewReader("0x20 0020\n"), "JIS0201.TXT")
	assert.Error(t, err, "final token without 0x prefix is structural")

	_, err = ParseLegacyMapping(strings.NewReader("0x20 0xZZZZ\n"), "JIS0201.TXT")
	assert.Error(t, err)
}

func TestParseLegacyMappingCommentOnlyPayload(t *testing.T) {
	// A line whose payload vanishes after comment stripping is skipped.
	set, err := ParseLegacyMapping(strings.NewReader("0xB1 0xFF71\n   # trailing comment only\n"), "JIS0201.TXT")
	require.NoError(t, err)
	assert.Len(t, set, 1)
}
