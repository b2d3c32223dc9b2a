// Package pipeline orchestrates the single-pass batch job that turns the
// Unicode Character Database source files into the SQLite artifact and the
// search index blob.
package pipeline

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/datastore"
	"github.com/sdkawata/unicode3/internal/errors"
	"github.com/sdkawata/unicode3/internal/observability"
	"github.com/sdkawata/unicode3/internal/search"
)

// Pipeline owns the lifecycle of one run: parse, normalize, persist,
// index, publish. All collaborators are injected; the pipeline holds no
// ambient state and a failed run leaves the previously published artifacts
// untouched.
type Pipeline struct {
	settings *conf.Settings
	log      *slog.Logger
	metrics  *observability.Metrics
}

// New creates a pipeline for the given settings.
func New(settings *conf.Settings, log *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		settings: settings,
		log:      log,
		metrics:  metrics,
	}
}

// Run executes the whole pipeline once. The run is not resumable: any
// parse or write error aborts it and the operator re-executes from the
// beginning.
func (p *Pipeline) Run(ctx context.Context) error {
	runID := uuid.New().String()
	log := p.log.With("run_id", runID)
	log.Info("Pipeline run starting")
	runStart := time.Now()

	parseStart := time.Now()
	src, err := ParseAll(ctx, &p.settings.Input, log, p.metrics)
	if err != nil {
		return err
	}
	p.metrics.RecordStageDuration("parse", time.Since(parseStart).Seconds())

	normalizeStart := time.Now()
	ds := Normalize(src, log)
	p.metrics.RecordStageDuration("normalize", time.Since(normalizeStart).Seconds())

	// Persistence and index construction only read the immutable dataset
	// and sources; they run concurrently.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return p.persist(gctx, ds, log)
	})
	g.Go(func() error {
		return p.buildIndex(src, log)
	})
	if err := g.Wait(); err != nil {
		return err
	}

	p.metrics.RecordStageDuration("run", time.Since(runStart).Seconds())
	p.metrics.LogSummary(log)
	log.Info("Pipeline run finished", "duration", time.Since(runStart).Round(time.Millisecond))
	return nil
}

// persist writes the dataset to the scratch database and swaps it into
// place only after a fully successful commit.
func (p *Pipeline) persist(ctx context.Context, ds *datastore.Dataset, log *slog.Logger) error {
	stageStart := time.Now()
	store, err := datastore.Open(p.settings.Output.SQLite.Path, log)
	if err != nil {
		return err
	}

	writer := datastore.NewWriter(store, p.settings.Writer.BatchSize, log, p.metrics)
	if err := writer.Write(ctx, ds); err != nil {
		store.Discard()
		return err
	}
	if err := store.Publish(); err != nil {
		store.Discard()
		return err
	}
	p.metrics.RecordStageDuration("persist", time.Since(stageStart).Seconds())
	return nil
}

// buildIndex constructs the search index and exports it next to the
// database artifact, with the same scratch-then-rename swap.
func (p *Pipeline) buildIndex(src *Sources, log *slog.Logger) error {
	stageStart := time.Now()
	docs := BuildDocuments(src)
	idx := search.Build(docs)
	log.Info("Search index built", "documents", len(docs), "keys", idx.Size())

	path := p.settings.Output.Index.Path
	scratch := path + ".building"
	f, err := os.Create(scratch)
	if err != nil {
		return errors.New(err).
			Component("pipeline").
			Category(errors.CategoryFileIO).
			Context("path", scratch).
			Build()
	}
	if err := idx.Export(f); err != nil {
		f.Close()
		os.Remove(scratch)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(scratch)
		return errors.New(err).
			Component("pipeline").
			Category(errors.CategoryFileIO).
			Context("path", scratch).
			Build()
	}
	if err := os.Rename(scratch, path); err != nil {
		os.Remove(scratch)
		return errors.New(err).
			Component("pipeline").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	p.metrics.RecordStageDuration("index", time.Since(stageStart).Seconds())
	log.Info("Search index published", "path", path)
	return nil
}
