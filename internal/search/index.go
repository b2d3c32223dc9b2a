// Package search builds the fuzzy text-search structure over character
// names, readings and keywords, and ranks raw index hits.
package search

import (
	"sort"
	"strings"

	"github.com/derekparker/trie"
)

// Document is the composite search text of one codepoint: the display name
// plus any readings, definitions and keywords, space-joined downstream.
type Document struct {
	Codepoint rune
	Name      string   // display name, used for ranking; may be empty
	Texts     []string // additional searchable fields
}

// Index is the token index. Every suffix of every document token is a trie
// key, so a substring query is a prefix search over suffixes. Postings are
// kept in a plain map keyed by suffix; the trie only answers prefix
// expansion. A codepoint -> display-name side table serves ranking, not
// matching.
type Index struct {
	trie     *trie.Trie
	postings map[string][]rune
	names    map[rune]string
}

// Build constructs the index from the document set.
func Build(docs []Document) *Index {
	idx := &Index{
		trie:     trie.New(),
		postings: make(map[string][]rune),
		names:    make(map[rune]string),
	}
	for i := range docs {
		idx.addDocument(&docs[i])
	}
	for suffix, cps := range idx.postings {
		sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
		idx.postings[suffix] = cps
		idx.trie.Add(suffix, nil)
	}
	return idx
}

func (idx *Index) addDocument(doc *Document) {
	if doc.Name != "" {
		idx.names[doc.Codepoint] = doc.Name
	}
	seen := make(map[string]struct{})
	for _, token := range tokenize(doc.Name, doc.Texts) {
		for i := range token {
			suffix := token[i:]
			if _, dup := seen[suffix]; dup {
				continue
			}
			seen[suffix] = struct{}{}
			idx.postings[suffix] = append(idx.postings[suffix], doc.Codepoint)
		}
	}
}

// tokenize lowercases and splits the document fields on whitespace.
func tokenize(name string, texts []string) []string {
	var tokens []string
	if name != "" {
		tokens = append(tokens, strings.Fields(strings.ToLower(name))...)
	}
	for _, text := range texts {
		tokens = append(tokens, strings.Fields(strings.ToLower(text))...)
	}
	return tokens
}

// Lookup returns up to limit codepoints whose document contains every
// whitespace-separated query token as a substring. Results are in
// ascending codepoint order; the index is not relevance-aware, callers
// over-fetch and rank.
func (idx *Index) Lookup(query string, limit int) []rune {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return nil
	}

	var result map[rune]struct{}
	for _, token := range tokens {
		matches := make(map[rune]struct{})
		for _, suffix := range idx.trie.PrefixSearch(token) {
			for _, cp := range idx.postings[suffix] {
				matches[cp] = struct{}{}
			}
		}
		if result == nil {
			result = matches
			continue
		}
		for cp := range result {
			if _, ok := matches[cp]; !ok {
				delete(result, cp)
			}
		}
		if len(result) == 0 {
			return nil
		}
	}

	cps := make([]rune, 0, len(result))
	for cp := range result {
		cps = append(cps, cp)
	}
	sort.Slice(cps, func(i, j int) bool { return cps[i] < cps[j] })
	if limit > 0 && len(cps) > limit {
		cps = cps[:limit]
	}
	return cps
}

// DisplayName returns the ranking name of a codepoint.
func (idx *Index) DisplayName(cp rune) (string, bool) {
	name, ok := idx.names[cp]
	return name, ok
}

// Size returns the number of indexed suffix keys.
func (idx *Index) Size() int {
	return len(idx.postings)
}
