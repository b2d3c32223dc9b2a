// sources.go parses all input files, independent files in parallel
package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/errors"
	"github.com/sdkawata/unicode3/internal/observability"
	"github.com/sdkawata/unicode3/internal/ucd"
)

// Sources holds every parsed record stream. Each field is written by
// exactly one parser task; nothing reads the struct until the errgroup
// barrier in ParseAll has passed.
type Sources struct {
	Characters  []ucd.CharacterLine
	Aliases     []ucd.Alias
	Blocks      []ucd.Interval
	Scripts     []ucd.Interval
	Widths      []ucd.Interval
	Emoji       []ucd.Interval
	JIS0201     map[rune]struct{}
	JIS0208     map[rune]struct{}
	Unihan      []ucd.UnihanProperty
	Annotations []ucd.Annotation
	Variations  []ucd.VariationSequence
}

// ParseAll runs one parser task per independent source file and waits for
// all of them. The first parse error cancels the remaining tasks and fails
// the run; no partial recovery is attempted.
func ParseAll(ctx context.Context, in *conf.InputSettings, log *slog.Logger, metrics *observability.Metrics) (*Sources, error) {
	src := &Sources{}
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		src.Characters, err = parseFile(ctx, in.Resolve(in.UnicodeData), ucd.ParseUnicodeData)
		return err
	})
	g.Go(func() error {
		var err error
		src.Aliases, err = parseFile(ctx, in.Resolve(in.NameAliases), ucd.ParseNameAliases)
		return err
	})
	g.Go(func() error {
		var err error
		src.Blocks, err = parseFile(ctx, in.Resolve(in.Blocks), ucd.ParseIntervals)
		return err
	})
	g.Go(func() error {
		var err error
		src.Scripts, err = parseFile(ctx, in.Resolve(in.Scripts), ucd.ParseIntervals)
		return err
	})
	g.Go(func() error {
		var err error
		src.Widths, err = parseFile(ctx, in.Resolve(in.EastAsianWidth), ucd.ParseIntervals)
		return err
	})
	g.Go(func() error {
		var err error
		src.Emoji, err = parseFile(ctx, in.Resolve(in.EmojiData), ucd.ParseEmoji)
		return err
	})
	g.Go(func() error {
		var err error
		src.JIS0201, err = parseFile(ctx, in.Resolve(in.JIS0201), ucd.ParseLegacyMapping)
		return err
	})
	g.Go(func() error {
		var err error
		src.JIS0208, err = parseFile(ctx, in.Resolve(in.JIS0208), ucd.ParseLegacyMapping)
		return err
	})
	g.Go(func() error {
		var err error
		src.Unihan, err = ucd.ParseUnihanDir(in.Resolve(in.UnihanDir))
		return err
	})
	g.Go(func() error {
		path := in.Resolve(in.CLDRAnnotations)
		data, err := os.ReadFile(path)
		if err != nil {
			return errors.New(err).
				Component("pipeline").
				Category(errors.CategoryFileIO).
				Context("source_file", path).
				Build()
		}
		src.Annotations, err = ucd.ParseCLDRAnnotations(data, path)
		return err
	})
	g.Go(func() error {
		// The two variation lists are parsed sequentially inside one task:
		// their concatenation order is part of the output contract.
		for _, file := range in.VariationSequences {
			seqs, err := parseFile(ctx, in.Resolve(file), ucd.ParseVariationSequences)
			if err != nil {
				return err
			}
			src.Variations = append(src.Variations, seqs...)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	metrics.RecordRecordsParsed("unicode_data", len(src.Characters))
	metrics.RecordRecordsParsed("name_aliases", len(src.Aliases))
	metrics.RecordRecordsParsed("blocks", len(src.Blocks))
	metrics.RecordRecordsParsed("scripts", len(src.Scripts))
	metrics.RecordRecordsParsed("east_asian_width", len(src.Widths))
	metrics.RecordRecordsParsed("emoji_data", len(src.Emoji))
	metrics.RecordRecordsParsed("jis0201", len(src.JIS0201))
	metrics.RecordRecordsParsed("jis0208", len(src.JIS0208))
	metrics.RecordRecordsParsed("unihan", len(src.Unihan))
	metrics.RecordRecordsParsed("cldr_annotations", len(src.Annotations))
	metrics.RecordRecordsParsed("variation_sequences", len(src.Variations))

	log.Info("All sources parsed",
		"characters", len(src.Characters),
		"aliases", len(src.Aliases),
		"blocks", len(src.Blocks),
		"scripts", len(src.Scripts),
		"unihan_properties", len(src.Unihan),
		"annotations", len(src.Annotations),
		"variation_sequences", len(src.Variations))
	return src, nil
}

// parseFile opens path and feeds it to a parser, honoring context
// cancellation between files.
func parseFile[T any](ctx context.Context, path string, parse func(io.Reader, string) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}
	f, err := os.Open(path)
	if err != nil {
		return zero, errors.New(err).
			Component("pipeline").
			Category(errors.CategoryFileIO).
			Context("source_file", path).
			Build()
	}
	defer f.Close()
	return parse(f, path)
}
