package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sdkawata/unicode3/internal/ucd"
)

func TestBuildDocuments(t *testing.T) {
	src := &Sources{
		Characters: []ucd.CharacterLine{
			{Codepoint: 0x0041, Name: "LATIN CAPITAL LETTER A", HasName: true},
			{Codepoint: 0x0000, HasName: false},
			{Codepoint: 0x4E00, Name: "CJK Ideograph-4E00", HasName: true},
		},
		Unihan: []ucd.UnihanProperty{
			{Codepoint: 0x4E00, Name: "kJapaneseOn", Value: "ICHI ITSU"},
			{Codepoint: 0x4E00, Name: "kDefinition", Value: "one; a, an; alone"},
			{Codepoint: 0x4E00, Name: "kTotalStrokes", Value: "1"},
		},
		Annotations: []ucd.Annotation{
			{Codepoint: 0x1F600, Keywords: []string{"face", "grin"}, TTS: "grinning face"},
		},
	}

	docs := BuildDocuments(src)
	require.Len(t, docs, 3, "nameless codepoints without text fields get no document")

	// Ascending codepoint order.
	assert.Equal(t, rune(0x0041), docs[0].Codepoint)
	assert.Equal(t, rune(0x4E00), docs[1].Codepoint)
	assert.Equal(t, rune(0x1F600), docs[2].Codepoint)

	han := docs[1]
	assert.Equal(t, "CJK Ideograph-4E00", han.Name)
	assert.Equal(t, []string{"ICHI ITSU", "one; a, an; alone"}, han.Texts,
		"only reading and definition properties contribute text")

	emoji := docs[2]
	assert.Empty(t, emoji.Name, "annotation-only codepoints have no display name")
	assert.Equal(t, []string{"face", "grin", "grinning face"}, emoji.Texts)
}
