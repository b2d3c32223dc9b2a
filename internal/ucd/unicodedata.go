package ucd

import (
	"fmt"
	"io"
	"strings"

	"github.com/sdkawata/unicode3/internal/errors"
)

// unicodeDataMinFields is the number of ';'-delimited fields a primary table
// line must carry up to and including the decomposition mapping. Trailing
// fields are ignored.
const unicodeDataMinFields = 6

// pendingRange tracks an open <X, First> declaration until its matching
// <X, Last> line arrives.
type pendingRange struct {
	base  string
	first CharacterLine
}

// ParseUnicodeData parses the primary codepoint table (UnicodeData.txt).
// A name of the form <X, First> opens a compressed range which the matching
// <X, Last> line closes; one record per codepoint in the range is
// synthesized with the generated name "X-{hex}". Other bracketed names
// (<control> etc.) yield nameless records.
func ParseUnicodeData(r io.Reader, source string) ([]CharacterLine, error) {
	ls := newLineScanner(r, source)
	var records []CharacterLine
	var pending *pendingRange

	for ls.next() {
		fields := strings.Split(ls.line, ";")
		if len(fields) < unicodeDataMinFields {
			return nil, ls.formatError(fmt.Sprintf("expected at least %d fields, got %d", unicodeDataMinFields, len(fields)))
		}
		cp, ok := parseCodepoint(fields[0])
		if !ok {
			return nil, ls.formatError("malformed codepoint field")
		}
		decomp, ok := parseDecomposition(fields[5])
		if !ok {
			return nil, ls.formatError("malformed decomposition field")
		}

		rec := CharacterLine{
			Codepoint:       cp,
			GeneralCategory: fields[2],
			CombiningClass:  fields[3],
			BidiClass:       fields[4],
			Decomposition:   decomp,
		}

		name := fields[1]
		switch {
		case isRangeMarker(name, ", First>"):
			if pending != nil {
				return nil, ls.formatError("range opened while a previous range is still unclosed")
			}
			rec.HasName = false
			pending = &pendingRange{base: rangeBase(name, ", First>"), first: rec}
			continue
		case isRangeMarker(name, ", Last>"):
			if pending == nil {
				return nil, ls.formatError("range closed without a matching First line")
			}
			base := rangeBase(name, ", Last>")
			if base != pending.base {
				return nil, ls.formatError(fmt.Sprintf("range name mismatch: %q opened, %q closed", pending.base, base))
			}
			if cp < pending.first.Codepoint {
				return nil, ls.formatError("range Last codepoint precedes First codepoint")
			}
			records = append(records, synthesizeRange(pending, cp)...)
			pending = nil
			continue
		case strings.HasPrefix(name, "<"):
			// Bracketed but not a range marker: nameless record.
			rec.HasName = false
		default:
			rec.Name = name
			rec.HasName = true
		}
		records = append(records, rec)
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	if pending != nil {
		return nil, errors.Newf("%s: range %q opened by a First line but never closed", source, pending.base).
			Component("ucd").
			Category(errors.CategoryFileParsing).
			Context("source_file", source).
			Build()
	}
	return records, nil
}

// synthesizeRange expands a closed First/Last pair into one record per
// codepoint, with the deterministic generated name "base-%04X" and no
// decomposition.
func synthesizeRange(p *pendingRange, last rune) []CharacterLine {
	records := make([]CharacterLine, 0, last-p.first.Codepoint+1)
	for cp := p.first.Codepoint; cp <= last; cp++ {
		records = append(records, CharacterLine{
			Codepoint:       cp,
			Name:            fmt.Sprintf("%s-%04X", p.base, cp),
			HasName:         true,
			GeneralCategory: p.first.GeneralCategory,
			CombiningClass:  p.first.CombiningClass,
			BidiClass:       p.first.BidiClass,
		})
	}
	return records
}

func isRangeMarker(name, suffix string) bool {
	return strings.HasPrefix(name, "<") && strings.HasSuffix(name, suffix)
}

func rangeBase(name, suffix string) string {
	return strings.TrimPrefix(strings.TrimSuffix(name, suffix), "<")
}

// parseDecomposition parses the decomposition mapping field: an optional
// bracketed compatibility tag followed by a space-delimited hex codepoint
// list. An empty list forces the type back to empty even when a tag token
// was present.
func parseDecomposition(field string) (Decomposition, bool) {
	field = strings.TrimSpace(field)
	if field == "" {
		return Decomposition{}, true
	}
	typ := "canonical"
	if strings.HasPrefix(field, "<") {
		end := strings.IndexByte(field, '>')
		if end < 0 {
			return Decomposition{}, false
		}
		typ = field[1:end]
		field = strings.TrimSpace(field[end+1:])
	}
	if field == "" {
		// Tag without targets: no decomposition.
		return Decomposition{}, true
	}
	tokens := strings.Fields(field)
	targets := make([]rune, 0, len(tokens))
	for _, tok := range tokens {
		cp, ok := parseCodepoint(tok)
		if !ok {
			return Decomposition{}, false
		}
		targets = append(targets, cp)
	}
	return Decomposition{Type: typ, Targets: targets}, true
}
