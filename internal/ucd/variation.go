package ucd

import (
	"io"
	"strings"
)

// ParseVariationSequences parses a variation sequence list: each line is
// "BASE SELECTOR; description;" with whitespace between the two hex tokens
// and a ';'-delimited trailer. The two standard lists (standardized
// variants and emoji presentation variants) share this shape and are parsed
// independently; merging is plain concatenation downstream.
func ParseVariationSequences(r io.Reader, source string) ([]VariationSequence, error) {
	ls := newLineScanner(r, source)
	var seqs []VariationSequence
	for ls.next() {
		data := stripComment(ls.line)
		if strings.TrimSpace(data) == "" {
			continue
		}
		spec, rest, found := strings.Cut(data, ";")
		if !found {
			return nil, ls.formatError("missing ';' after codepoint pair")
		}
		tokens := strings.Fields(spec)
		if len(tokens) != 2 {
			return nil, ls.formatError("expected exactly two hex codepoints before ';'")
		}
		base, ok := parseCodepoint(tokens[0])
		if !ok {
			return nil, ls.formatError("malformed base codepoint")
		}
		selector, ok := parseCodepoint(tokens[1])
		if !ok {
			return nil, ls.formatError("malformed variation selector")
		}
		description, _, _ := strings.Cut(rest, ";")
		seqs = append(seqs, VariationSequence{
			Base:        base,
			Selector:    selector,
			Description: strings.TrimSpace(description),
		})
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	return seqs, nil
}
