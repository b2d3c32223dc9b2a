package datastore

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sdkawata/unicode3/internal/observability"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestMetrics(t *testing.T) *observability.Metrics {
	t.Helper()
	metrics, err := observability.NewMetrics()
	require.NoError(t, err)
	return metrics
}

func testDataset() *Dataset {
	name := "LATIN CAPITAL LETTER A WITH GRAVE"
	block := "Latin-1 Supplement"
	decompType := "canonical"
	return &Dataset{
		Characters: []Character{
			{
				Codepoint:         0x00C0,
				Name:              &name,
				GeneralCategory:   "Lu",
				BlockName:         &block,
				BidiClass:         "L",
				DecompositionType: &decompType,
			},
		},
		Decompositions: []Decomposition{
			{Codepoint: 0x00C0, Position: 0, Target: 0x0041},
			{Codepoint: 0x00C0, Position: 1, Target: 0x0300},
		},
		NameAliases: []NameAlias{
			{Codepoint: 0x0000, Alias: "NULL", Type: "control"},
			{Codepoint: 0x0000, Alias: "NUL", Type: "abbreviation"},
		},
		Blocks: []Block{
			{StartCp: 0x0080, EndCp: 0x00FF, Name: "Latin-1 Supplement"},
		},
		UnihanProperties: []UnihanProperty{
			{Codepoint: 0x4E00, Name: "kJapaneseOn", Value: "ICHI ITSU"},
		},
		Annotations: []Annotation{
			{Codepoint: 0x1F600, Keywords: "face|grin", TTS: "grinning face"},
		},
		VariationSequences: []VariationSequence{
			{Base: 0x0023, Selector: 0xFE0E, Description: "text style"},
			{Base: 0x0023, Selector: 0xFE0E, Description: "text presentation selector"},
		},
	}
}

func TestWriterWriteAndPublish(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "unicode.db")

	store, err := Open(dbPath, discardLogger())
	require.NoError(t, err)

	writer := NewWriter(store, 500, discardLogger(), newTestMetrics(t))
	require.NoError(t, writer.Write(context.Background(), testDataset()))
	require.NoError(t, store.Publish())

	// The scratch file is gone, the artifact is in place.
	_, err = os.Stat(dbPath + buildSuffix)
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(dbPath)
	require.NoError(t, err)

	// Reopen the published artifact and verify row counts.
	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	defer func() {
		sqlDB, _ := db.DB()
		_ = sqlDB.Close()
	}()

	var count int64
	require.NoError(t, db.Model(&Character{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
	require.NoError(t, db.Model(&Decomposition{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	require.NoError(t, db.Model(&NameAlias{}).Count(&count).Error)
	assert.Equal(t, int64(2), count)
	require.NoError(t, db.Model(&VariationSequence{}).Count(&count).Error)
	assert.Equal(t, int64(2), count, "duplicate variation pairs are preserved as distinct rows")

	var char Character
	require.NoError(t, db.First(&char, "codepoint = ?", 0x00C0).Error)
	require.NotNil(t, char.Name)
	assert.Equal(t, "LATIN CAPITAL LETTER A WITH GRAVE", *char.Name)
	require.NotNil(t, char.DecompositionType)
	assert.Equal(t, "canonical", *char.DecompositionType)
}

func TestWriteTableInsertOrIgnoreIsIdempotent(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "unicode.db"), discardLogger())
	require.NoError(t, err)
	defer store.Discard()

	writer := NewWriter(store, 500, discardLogger(), newTestMetrics(t))
	aliases := []NameAlias{
		{Codepoint: 0x0000, Alias: "NULL", Type: "control"},
	}

	require.NoError(t, writeTable(context.Background(), writer, "name_aliases", aliases, true))
	// A rerun delivering the same logical rows must not fail or duplicate.
	require.NoError(t, writeTable(context.Background(), writer, "name_aliases", aliases, true))

	var count int64
	require.NoError(t, store.DB.Model(&NameAlias{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestWriteTableConflictWithoutIgnoreFails(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "unicode.db"), discardLogger())
	require.NoError(t, err)
	defer store.Discard()

	writer := NewWriter(store, 500, discardLogger(), newTestMetrics(t))
	blocks := []Block{{StartCp: 0, EndCp: 0x7F, Name: "Basic Latin"}}

	require.NoError(t, writeTable(context.Background(), writer, "blocks", blocks, false))
	assert.Error(t, writeTable(context.Background(), writer, "blocks", blocks, false))
}

func TestOpenRemovesStaleScratchFile(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "unicode.db")
	require.NoError(t, os.WriteFile(dbPath+buildSuffix, []byte("stale"), 0o644))

	store, err := Open(dbPath, discardLogger())
	require.NoError(t, err)
	store.Discard()
}

func TestDiscardLeavesPublishedArtifact(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "unicode.db")
	require.NoError(t, os.WriteFile(dbPath, []byte("published artifact"), 0o644))

	store, err := Open(dbPath, discardLogger())
	require.NoError(t, err)
	store.Discard()

	data, err := os.ReadFile(dbPath)
	require.NoError(t, err)
	assert.Equal(t, "published artifact", string(data))
}

func TestWriteEmptyDataset(t *testing.T) {
	dir := t.TempDir()
	store, err := Open(filepath.Join(dir, "unicode.db"), discardLogger())
	require.NoError(t, err)
	defer store.Discard()

	writer := NewWriter(store, 500, discardLogger(), newTestMetrics(t))
	require.NoError(t, writer.Write(context.Background(), &Dataset{}))
}
