package logging

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTeeDeliversToBothHandlers(t *testing.T) {
	var a, b bytes.Buffer
	la := slog.New(slog.NewJSONHandler(&a, nil))
	lb := slog.New(slog.NewJSONHandler(&b, nil))

	log := Tee(la, lb)
	log.Info("pipeline started", "run_id", "abc")

	assert.Contains(t, a.String(), "pipeline started")
	assert.Contains(t, a.String(), "abc")
	assert.Contains(t, b.String(), "pipeline started")
}

func TestTeeRespectsPerHandlerLevel(t *testing.T) {
	var quiet, verbose bytes.Buffer
	lq := slog.New(slog.NewJSONHandler(&quiet, &slog.HandlerOptions{Level: slog.LevelWarn}))
	lv := slog.New(slog.NewJSONHandler(&verbose, &slog.HandlerOptions{Level: slog.LevelDebug}))

	log := Tee(lq, lv)
	log.Debug("table written")

	assert.Empty(t, quiet.String())
	assert.Contains(t, verbose.String(), "table written")
}

func TestTeeWithAttrs(t *testing.T) {
	var a, b bytes.Buffer
	log := Tee(
		slog.New(slog.NewJSONHandler(&a, nil)),
		slog.New(slog.NewJSONHandler(&b, nil)),
	).With("service", "pipeline")

	log.Info("sources parsed")

	assert.Contains(t, a.String(), `"service":"pipeline"`)
	assert.Contains(t, b.String(), `"service":"pipeline"`)
}

func TestNewFileLoggerWritesJSONRecords(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "unicode3.log")

	log, closeLog, err := NewFileLogger(path, "pipeline", slog.LevelInfo)
	require.NoError(t, err)

	log.Info("run finished", "tables", 7)
	log.Debug("suppressed below the configured level")
	require.NoError(t, closeLog())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"service":"pipeline"`)
	assert.Contains(t, content, "run finished")
	assert.False(t, strings.Contains(content, "suppressed"))
}
