package ucd

import (
	"io"
	"strings"
)

// ParseIntervals parses an interval property table (Blocks.txt, Scripts.txt,
// EastAsianWidth.txt): each line is "CP;VALUE" or "CP1..CP2;VALUE[;...]".
// Only the first ';'-delimited token after the codepoint spec is the value.
// Source-file order of the returned intervals is preserved; resolution
// depends on it.
func ParseIntervals(r io.Reader, source string) ([]Interval, error) {
	return parseIntervals(r, source, "")
}

// ParseEmoji parses an emoji property table, keeping only the intervals
// whose property token is exactly "Emoji". Sibling properties sharing the
// same line shape (Extended_Pictographic, Emoji_Presentation, ...) are
// discarded.
func ParseEmoji(r io.Reader, source string) ([]Interval, error) {
	return parseIntervals(r, source, "Emoji")
}

func parseIntervals(r io.Reader, source, propertyFilter string) ([]Interval, error) {
	ls := newLineScanner(r, source)
	var intervals []Interval
	for ls.next() {
		data := stripComment(ls.line)
		if strings.TrimSpace(data) == "" {
			continue
		}
		spec, rest, found := strings.Cut(data, ";")
		if !found {
			return nil, ls.formatError("missing ';' value separator")
		}
		lo, hi, ok := parseCodepointRange(spec)
		if !ok {
			return nil, ls.formatError("malformed codepoint range")
		}
		value, _, _ := strings.Cut(rest, ";")
		value = strings.TrimSpace(value)
		if propertyFilter != "" && value != propertyFilter {
			continue
		}
		intervals = append(intervals, Interval{Lo: lo, Hi: hi, Value: value})
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	return intervals, nil
}
