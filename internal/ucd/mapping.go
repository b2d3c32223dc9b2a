package ucd

import (
	"io"
	"strings"
)

// ParseLegacyMapping parses a vendor mapping table of whitespace-separated
// hex tokens prefixed "0x" (JIS X 0201 / JIS X 0208 style). Only the final
// hex token of each line, the Unicode codepoint, is retained; duplicates
// across lines collapse into the returned set.
func ParseLegacyMapping(r io.Reader, source string) (map[rune]struct{}, error) {
	ls := newLineScanner(r, source)
	set := make(map[rune]struct{})
	for ls.next() {
		tokens := strings.Fields(stripComment(ls.line))
		if len(tokens) == 0 {
			continue
		}
		last := tokens[len(tokens)-1]
		hex, found := strings.CutPrefix(last, "0x")
		if !found {
			return nil, ls.formatError("final token is not a 0x-prefixed hex codepoint")
		}
		cp, ok := parseCodepoint(hex)
		if !ok {
			return nil, ls.formatError("malformed hex codepoint")
		}
		set[cp] = struct{}{}
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	return set, nil
}
