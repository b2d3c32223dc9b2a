package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreName(t *testing.T) {
	testCases := []struct {
		name  string
		query string
		want  int
	}{
		// Substring at position 3, no boundary on either side: 50 + (100-7).
		{name: "CATFISH", query: "FISH", want: 143},
		// Leading word ending on a space boundary: 600 + (100-9).
		{name: "FISH CAKE", query: "FISH", want: 691},
		// Exact match, case-insensitive, no length bonus.
		{name: "FISH", query: "fish", want: 1000},
		// Standalone interior word: 400 + (100-14).
		{name: "FLYING FISH UP", query: "FISH", want: 486},
		// Prefix of a compound: 200 + (100-8).
		{name: "FISHCAKE", query: "FISH", want: 292},
		// Word prefix after a boundary: 150 + (100-12).
		{name: "RAW FISHCAKE", query: "FISH", want: 238},
		// Hyphen counts as a boundary.
		{name: "CAT-FISH", query: "FISH", want: 492},
		// No occurrence at all scores zero, without the bonus.
		{name: "SQUID", query: "FISH", want: 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ScoreName(tc.name, tc.query))
		})
	}
}

func TestScoreNameBestOccurrenceWins(t *testing.T) {
	// "FISH FISHCAKE": occurrence 1 is a leading word (600), occurrence 2
	// only a word prefix (150); the best single occurrence counts.
	assert.Equal(t, 600+100-13, ScoreName("FISH FISHCAKE", "FISH"))
}

func TestScoreNameLongNameHasNoBonus(t *testing.T) {
	name := "FISH AAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAAA"
	require.Greater(t, len(name), 100)
	assert.Equal(t, 600, ScoreName(name, "FISH"))
}

func newRankIndex(names map[rune]string) *Index {
	docs := make([]Document, 0, len(names))
	for cp, name := range names {
		docs = append(docs, Document{Codepoint: cp, Name: name})
	}
	return Build(docs)
}

func TestRankOrdering(t *testing.T) {
	idx := newRankIndex(map[rune]string{
		0x0100: "CATFISH",
		0x0200: "FISH CAKE",
		0x0300: "FISH",
	})

	ranked := idx.Rank([]rune{0x0100, 0x0200, 0x0300}, "FISH")
	assert.Equal(t, []rune{0x0300, 0x0200, 0x0100}, ranked)
}

func TestRankDeterministic(t *testing.T) {
	idx := newRankIndex(map[rune]string{
		0x0041: "FISH ONE",
		0x0042: "FISH TWO",
		0x0043: "FISH SIX", // same length, same score as the others
	})
	candidates := []rune{0x0043, 0x0041, 0x0042}

	first := idx.Rank(candidates, "FISH")
	second := idx.Rank(candidates, "FISH")
	assert.Equal(t, first, second)
	// Equal scores fall back to ascending codepoint.
	assert.Equal(t, []rune{0x0041, 0x0042, 0x0043}, first)
}

func TestRankMissingNameScoresZero(t *testing.T) {
	idx := newRankIndex(map[rune]string{0x0041: "FISH"})

	ranked := idx.Rank([]rune{0x0100, 0x0041}, "FISH")
	assert.Equal(t, []rune{0x0041, 0x0100}, ranked, "nameless candidate sinks to the end")
}
