package search

import (
	"sort"
	"strings"
)

// Scoring tiers for a query occurrence inside a display name. A boundary is
// the start or end of the name, or a position adjacent to a space or
// hyphen.
const (
	scoreExact        = 1000 // name equals query
	scoreLeadingWord  = 600  // occurrence at position 0 ending on a boundary
	scoreInteriorWord = 400  // standalone word, not at position 0
	scorePrefix       = 200  // at position 0, no trailing boundary
	scoreWordPrefix   = 150  // starts on a boundary, no trailing boundary
	scoreSubstring    = 50   // no boundary on either side
)

// Rank orders candidates by how well their display name matches the query.
// Ordering is fully deterministic: descending score, ties broken by
// ascending codepoint. Candidates without a display name score zero and
// sink to the end (still in codepoint order).
func (idx *Index) Rank(candidates []rune, query string) []rune {
	type scored struct {
		cp    rune
		score int
	}
	scoredCandidates := make([]scored, len(candidates))
	for i, cp := range candidates {
		score := 0
		if name, ok := idx.names[cp]; ok {
			score = ScoreName(name, query)
		}
		scoredCandidates[i] = scored{cp: cp, score: score}
	}
	sort.Slice(scoredCandidates, func(i, j int) bool {
		if scoredCandidates[i].score != scoredCandidates[j].score {
			return scoredCandidates[i].score > scoredCandidates[j].score
		}
		return scoredCandidates[i].cp < scoredCandidates[j].cp
	})
	ranked := make([]rune, len(scoredCandidates))
	for i, sc := range scoredCandidates {
		ranked[i] = sc.cp
	}
	return ranked
}

// ScoreName computes the relevance score of a display name for a query.
// Comparison is case-insensitive. Every occurrence of the query inside the
// name is examined and the single best tier wins; a length bonus of
// max(0, 100-len(name)) rewards shorter names within a tier. A name that
// does not contain the query at all scores zero, without the bonus.
func ScoreName(name, query string) int {
	if name == "" || query == "" {
		return 0
	}
	loweredName := strings.ToLower(name)
	loweredQuery := strings.ToLower(query)
	if loweredName == loweredQuery {
		return scoreExact
	}

	best := 0
	for from := 0; ; {
		i := strings.Index(loweredName[from:], loweredQuery)
		if i < 0 {
			break
		}
		pos := from + i
		end := pos + len(loweredQuery)
		if tier := occurrenceTier(loweredName, pos, end); tier > best {
			best = tier
		}
		from = pos + 1
	}
	if best == 0 {
		return 0
	}
	bonus := 100 - len(name)
	if bonus < 0 {
		bonus = 0
	}
	return best + bonus
}

func occurrenceTier(name string, pos, end int) int {
	startsAtBoundary := pos == 0 || isBoundaryByte(name[pos-1])
	endsAtBoundary := end == len(name) || isBoundaryByte(name[end])
	switch {
	case pos == 0 && endsAtBoundary:
		return scoreLeadingWord
	case startsAtBoundary && endsAtBoundary:
		return scoreInteriorWord
	case pos == 0:
		return scorePrefix
	case startsAtBoundary:
		return scoreWordPrefix
	default:
		return scoreSubstring
	}
}

func isBoundaryByte(b byte) bool {
	return b == ' ' || b == '-'
}
