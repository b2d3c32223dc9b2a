// Package datastore persists the normalized unicode dataset to an embedded
// SQLite database via GORM.
package datastore

import (
	"context"
	"log/slog"
	"os"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/sdkawata/unicode3/internal/errors"
)

// buildSuffix is appended to the artifact path while a run is in progress.
// The previous artifact stays untouched until Publish renames the finished
// database over it.
const buildSuffix = ".building"

// Store owns the SQLite connection for one pipeline run. The database is
// written at a scratch path and atomically swapped into place on Publish;
// a failed run leaves the published artifact as it was.
type Store struct {
	DB        *gorm.DB
	finalPath string
	buildPath string
	log       *slog.Logger
}

// Open creates the scratch database for a new run. Any stale scratch file
// from an aborted run is removed first.
func Open(path string, log *slog.Logger) (*Store, error) {
	buildPath := path + buildSuffix
	if err := os.Remove(buildPath); err != nil && !os.IsNotExist(err) {
		return nil, errors.New(err).
			Component("datastore").
			Category(errors.CategoryFileIO).
			Context("path", buildPath).
			Build()
	}

	gl := NewGormLogger(log, DefaultSlowQueryThreshold, gormlogger.Warn)
	db, err := gorm.Open(sqlite.Open(buildPath), &gorm.Config{Logger: gl})
	if err != nil {
		return nil, errors.Newf("failed to open SQLite database: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Context("path", buildPath).
			Build()
	}

	store := &Store{
		DB:        db,
		finalPath: path,
		buildPath: buildPath,
		log:       log,
	}
	if err := store.reset(); err != nil {
		store.Discard()
		return nil, err
	}
	return store, nil
}

// reset creates all output tables from scratch.
func (s *Store) reset() error {
	if err := s.DB.AutoMigrate(allModels()...); err != nil {
		return errors.Newf("failed to create tables: %w", err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}

// Compact runs the statistics and compaction pass after all rows are
// committed.
func (s *Store) Compact(ctx context.Context) error {
	for _, stmt := range []string{"ANALYZE", "VACUUM"} {
		if err := s.DB.WithContext(ctx).Exec(stmt).Error; err != nil {
			return errors.Newf("compaction statement %s failed: %w", stmt, err).
				Component("datastore").
				Category(errors.CategoryDatabase).
				Build()
		}
	}
	return nil
}

// Publish closes the scratch database and renames it over the published
// artifact path. The swap is atomic on POSIX filesystems.
func (s *Store) Publish() error {
	if err := s.close(); err != nil {
		return err
	}
	if err := os.Rename(s.buildPath, s.finalPath); err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryFileIO).
			Context("from", s.buildPath).
			Context("to", s.finalPath).
			Build()
	}
	s.log.Info("Database artifact published", "path", s.finalPath)
	return nil
}

// Discard closes the scratch database and deletes it, leaving the
// published artifact untouched. Safe to call after a failed run.
func (s *Store) Discard() {
	if err := s.close(); err != nil {
		s.log.Warn("Failed to close scratch database", "error", err)
	}
	if err := os.Remove(s.buildPath); err != nil && !os.IsNotExist(err) {
		s.log.Warn("Failed to remove scratch database", "path", s.buildPath, "error", err)
	}
}

func (s *Store) close() error {
	sqlDB, err := s.DB.DB()
	if err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	if err := sqlDB.Close(); err != nil {
		return errors.New(err).
			Component("datastore").
			Category(errors.CategoryDatabase).
			Build()
	}
	return nil
}
