package ucd

import (
	"sort"
	"unicode/utf8"

	"github.com/antonholmquist/jason"

	"github.com/sdkawata/unicode3/internal/errors"
)

// ParseCLDRAnnotations parses a CLDR annotation document: a nested JSON
// object keyed by literal character strings. Keys decoding to more than one
// codepoint (ZWJ emoji, flag sequences, keycaps) are dropped; sequence
// annotations are outside the single-codepoint data model. The result is
// sorted by codepoint so the record stream is deterministic.
func ParseCLDRAnnotations(data []byte, source string) ([]Annotation, error) {
	root, err := jason.NewObjectFromBytes(data)
	if err != nil {
		return nil, errors.New(err).
			Component("ucd").
			Category(errors.CategoryFileParsing).
			Context("source_file", source).
			Build()
	}
	annotations, err := root.GetObject("annotations", "annotations")
	if err != nil {
		return nil, errors.Newf("%s: missing annotations.annotations object: %w", source, err).
			Component("ucd").
			Category(errors.CategoryFileParsing).
			Context("source_file", source).
			Build()
	}

	var out []Annotation
	for key, value := range annotations.Map() {
		cp, size := utf8.DecodeRuneInString(key)
		// A size of 1 with RuneError means malformed UTF-8; a genuine U+FFFD
		// key decodes with size 3 and is a valid annotation.
		if (cp == utf8.RuneError && size == 1) || size != len(key) {
			continue
		}
		entry, err := value.Object()
		if err != nil {
			return nil, errors.Newf("%s: annotation for %q is not an object: %w", source, key, err).
				Component("ucd").
				Category(errors.CategoryFileParsing).
				Context("source_file", source).
				Build()
		}
		ann := Annotation{Codepoint: cp}
		if keywords, err := entry.GetStringArray("default"); err == nil {
			ann.Keywords = keywords
		}
		if tts, err := entry.GetStringArray("tts"); err == nil && len(tts) > 0 {
			ann.TTS = tts[0]
		}
		out = append(out, ann)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Codepoint < out[j].Codepoint })
	return out, nil
}
