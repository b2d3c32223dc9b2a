package ucd

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/sdkawata/unicode3/internal/errors"
)

// ParseUnihanDir scans dir for Unihan property files ("Unihan_*.txt"),
// concatenating their tab-delimited records. Each data line is
// "U+HHHH<TAB>PropertyName<TAB>Value" where the value may itself contain
// embedded tabs and is kept verbatim. Files are visited in lexical order so
// the record stream is deterministic.
func ParseUnihanDir(dir string) ([]UnihanProperty, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.New(err).
			Component("ucd").
			Category(errors.CategoryFileIO).
			Context("directory", dir).
			Build()
	}
	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if entry.Type().IsRegular() && strings.HasPrefix(name, "Unihan_") && strings.HasSuffix(name, ".txt") {
			files = append(files, name)
		}
	}
	sort.Strings(files)

	var props []UnihanProperty
	for _, name := range files {
		path := filepath.Join(dir, name)
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.New(err).
				Component("ucd").
				Category(errors.CategoryFileIO).
				Context("source_file", path).
				Build()
		}
		fileProps, err := parseUnihanFile(f, name)
		closeErr := f.Close()
		if err != nil {
			return nil, err
		}
		if closeErr != nil {
			return nil, errors.New(closeErr).
				Component("ucd").
				Category(errors.CategoryFileIO).
				Context("source_file", path).
				Build()
		}
		props = append(props, fileProps...)
	}
	return props, nil
}

func parseUnihanFile(f *os.File, source string) ([]UnihanProperty, error) {
	ls := newLineScanner(f, source)
	var props []UnihanProperty
	for ls.next() {
		// SplitN keeps embedded tabs of the value intact.
		parts := strings.SplitN(ls.line, "\t", 3)
		if len(parts) != 3 {
			return nil, ls.formatError("expected U+HHHH<TAB>property<TAB>value")
		}
		hex, found := strings.CutPrefix(parts[0], "U+")
		if !found {
			return nil, ls.formatError("codepoint field is not U+ prefixed")
		}
		cp, ok := parseCodepoint(hex)
		if !ok {
			return nil, ls.formatError("malformed hex codepoint")
		}
		props = append(props, UnihanProperty{
			Codepoint: cp,
			Name:      parts[1],
			Value:     parts[2],
		})
	}
	if err := ls.err(); err != nil {
		return nil, err
	}
	return props, nil
}
