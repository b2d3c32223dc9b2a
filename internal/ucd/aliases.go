package ucd

import (
	"io"
	"strings"
)

// ParseNameAliases parses the name alias table: one "CP;alias;type" triple
// per line, no range support.
func ParseNameAliases(r io.Reader, source string) ([]Alias, error) {
	ls := newLineScanner(r, source)
	var aliases []Alias
	for ls.next() {
		fields := strings.Split(ls.line, ";")
		if len(fields) < 3 {
			return nil, ls.formatError("expected CP;alias;type")
		}
		cp, ok := parseCodepoint(fields[0])
		if !ok {
			return nil, ls.formatError("malformed codepoint field")
		}
		aliases = append(aliases, Alias{
			Codepoint: cp,
			Alias:     strings.TrimSpace(fields[1]),
			Type:      strings.TrimSpace(fields[2]),
		})
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	return aliases, nil
}
