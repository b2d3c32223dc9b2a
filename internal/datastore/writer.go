// writer.go commits the normalized dataset in bounded-size batches
package datastore

import (
	"context"
	"log/slog"
	"time"

	"gorm.io/gorm/clause"

	"github.com/sdkawata/unicode3/internal/errors"
	"github.com/sdkawata/unicode3/internal/observability"
)

// Writer commits a Dataset to the store. Tables are written strictly
// sequentially: SQLite serializes writers anyway, and a deterministic
// write order makes failure reports reproducible.
type Writer struct {
	store     *Store
	batchSize int
	log       *slog.Logger
	metrics   *observability.Metrics
}

// NewWriter creates a writer with the given batch size (rows per insert
// statement).
func NewWriter(store *Store, batchSize int, log *slog.Logger, metrics *observability.Metrics) *Writer {
	return &Writer{
		store:     store,
		batchSize: batchSize,
		log:       log,
		metrics:   metrics,
	}
}

// Write inserts every table of the dataset. Tables that may receive
// logically-duplicate rows from multiple sources (aliases, Unihan
// properties, annotations) insert with ignore-on-conflict semantics keyed
// on their declared uniqueness constraints, so a rerun is idempotent. Any
// batch failure aborts the whole run before the artifact swap.
func (w *Writer) Write(ctx context.Context, ds *Dataset) error {
	if err := writeTable(ctx, w, "characters", ds.Characters, false); err != nil {
		return err
	}
	if err := writeTable(ctx, w, "decompositions", ds.Decompositions, false); err != nil {
		return err
	}
	if err := writeTable(ctx, w, "name_aliases", ds.NameAliases, true); err != nil {
		return err
	}
	if err := writeTable(ctx, w, "blocks", ds.Blocks, false); err != nil {
		return err
	}
	if err := writeTable(ctx, w, "unihan_properties", ds.UnihanProperties, true); err != nil {
		return err
	}
	if err := writeTable(ctx, w, "annotations", ds.Annotations, true); err != nil {
		return err
	}
	// Variation sequences keep duplicates across sources; the surrogate key
	// never conflicts, insert-or-ignore is still harmless on reruns.
	if err := writeTable(ctx, w, "variation_sequences", ds.VariationSequences, true); err != nil {
		return err
	}
	return w.store.Compact(ctx)
}

// writeTable is the generic batched insert for one table.
func writeTable[T any](ctx context.Context, w *Writer, table string, rows []T, ignoreConflicts bool) error {
	if len(rows) == 0 {
		w.log.Debug("No rows to write", "table", table)
		return nil
	}
	start := time.Now()

	tx := w.store.DB.WithContext(ctx)
	if ignoreConflicts {
		tx = tx.Clauses(clause.OnConflict{DoNothing: true})
	}
	result := tx.CreateInBatches(rows, w.batchSize)
	if result.Error != nil {
		w.metrics.RecordBatchFailure(table)
		return errors.Newf("batch insert into %s failed: %w", table, result.Error).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("table", table).
			Context("rows", len(rows)).
			Timing("batch_insert", time.Since(start)).
			Build()
	}

	w.metrics.RecordRowsWritten(table, int(result.RowsAffected))
	w.log.Info("Table written",
		"table", table,
		"rows", len(rows),
		"inserted", result.RowsAffected,
		"skipped", int64(len(rows))-result.RowsAffected,
		"duration", time.Since(start).Round(time.Millisecond))
	return nil
}
