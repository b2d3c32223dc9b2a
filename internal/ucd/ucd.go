// Package ucd parses Unicode Character Database flat files and the auxiliary
// vendor mapping tables into typed record streams. File formats are defined
// in https://www.unicode.org/reports/tr44/.
//
// All parsers share the same line discipline: blank lines and lines starting
// with '#' are skipped silently, a structurally malformed line is a fatal
// parse error that names the source file and the offending line verbatim.
package ucd

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/sdkawata/unicode3/internal/errors"
)

// MaxCodepoint is the upper bound of the Unicode codespace.
const MaxCodepoint rune = 0x10FFFF

// CharacterLine is one record of the primary codepoint table. Records
// synthesized from a First/Last range pair carry a generated name and no
// decomposition.
type CharacterLine struct {
	Codepoint       rune
	Name            string // empty when HasName is false
	HasName         bool   // false for <control> and other bracketed names
	GeneralCategory string
	CombiningClass  string
	BidiClass       string
	Decomposition   Decomposition
}

// Decomposition is the parsed decomposition field of a primary table record.
// An empty Targets list means no decomposition, regardless of tag.
type Decomposition struct {
	Type    string // "canonical" or a compatibility tag such as "compat", "wide"
	Targets []rune
}

// IsZero reports whether no decomposition mapping is present.
func (d Decomposition) IsZero() bool {
	return len(d.Targets) == 0
}

// Alias is one name alias record.
type Alias struct {
	Codepoint rune
	Alias     string
	Type      string
}

// Interval maps a codepoint range to a property value. Intervals keep their
// source-file order, which is load-bearing for resolution (see Table).
type Interval struct {
	Lo, Hi rune
	Value  string
}

// UnihanProperty is one record of the tab-delimited Unihan property files.
type UnihanProperty struct {
	Codepoint rune
	Name      string
	Value     string
}

// Annotation is a CLDR character annotation. Only single-codepoint
// annotations are modeled; sequence keys are dropped at parse time.
type Annotation struct {
	Codepoint rune
	Keywords  []string
	TTS       string
}

// VariationSequence pairs a base codepoint with a variation selector.
type VariationSequence struct {
	Base        rune
	Selector    rune
	Description string
}

// lineScanner iterates the data lines of a UCD flat file, skipping comments
// and blank lines and tracking line numbers for error reporting.
type lineScanner struct {
	scanner *bufio.Scanner
	source  string
	line    string
	lineNo  int
}

func newLineScanner(r io.Reader, source string) *lineScanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	return &lineScanner{scanner: sc, source: source}
}

// next advances to the next non-comment, non-blank line.
func (ls *lineScanner) next() bool {
	for ls.scanner.Scan() {
		ls.lineNo++
		line := ls.scanner.Text()
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") {
			continue
		}
		ls.line = line
		return true
	}
	return false
}

func (ls *lineScanner) err() error {
	if err := ls.scanner.Err(); err != nil {
		return errors.New(err).
			Component("ucd").
			Category(errors.CategoryFileIO).
			Context("source_file", ls.source).
			Build()
	}
	return nil
}

// formatError builds the fatal error for a structurally malformed line.
func (ls *lineScanner) formatError(msg string) error {
	return errors.Newf("%s: %s", ls.source, msg).
		Component("ucd").
		Category(errors.CategoryFileParsing).
		FormatContext(ls.source, ls.line, ls.lineNo).
		Build()
}

// stripComment removes an inline '#' comment from a data line.
func stripComment(line string) string {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		return line[:i]
	}
	return line
}

// parseCodepoint parses a bare hex codepoint such as "1F600".
func parseCodepoint(s string) (rune, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 16, 32)
	if err != nil || rune(n) > MaxCodepoint {
		return 0, false
	}
	return rune(n), true
}

// parseCodepointRange parses either "XXXX" or "XXXX..YYYY".
func parseCodepointRange(s string) (lo, hi rune, ok bool) {
	s = strings.TrimSpace(s)
	if lo8, hi8, found := strings.Cut(s, ".."); found {
		lo, ok = parseCodepoint(lo8)
		if !ok {
			return 0, 0, false
		}
		hi, ok = parseCodepoint(hi8)
		if !ok || hi < lo {
			return 0, 0, false
		}
		return lo, hi, true
	}
	lo, ok = parseCodepoint(s)
	return lo, lo, ok
}
