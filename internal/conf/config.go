// Package conf holds the pipeline configuration, loaded from an optional
// YAML file and command-line flags via viper.
package conf

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/sdkawata/unicode3/internal/errors"
)

// InputSettings names every source file the pipeline consumes. Relative
// paths are resolved against DataDir.
type InputSettings struct {
	DataDir            string   // base directory for UCD source files
	UnicodeData        string   // primary codepoint table
	NameAliases        string   // name alias table
	Blocks             string   // block intervals
	Scripts            string   // script intervals
	EastAsianWidth     string   // width intervals
	EmojiData          string   // emoji property intervals
	JIS0201            string   // single-byte legacy mapping table
	JIS0208            string   // double-byte legacy mapping table
	UnihanDir          string   // directory of Unihan property files
	CLDRAnnotations    string   // CLDR annotation JSON document
	VariationSequences []string // variation sequence lists, merged in order
}

// OutputSettings describes the produced artifacts.
type OutputSettings struct {
	SQLite struct {
		Path string // final location of the database artifact
	}
	Index struct {
		Path string // serialized search index blob
	}
}

// WriterSettings tunes the persistence writer.
type WriterSettings struct {
	BatchSize int // rows per insert batch
}

// SearchSettings tunes query behavior.
type SearchSettings struct {
	Limit     int // ranked results returned to the caller
	Overfetch int // multiplier for raw index hits before ranking
}

// LogSettings configures the optional pipeline log file.
type LogSettings struct {
	Enabled bool
	Path    string
}

// Settings contains all runtime configuration.
type Settings struct {
	Debug  bool
	Input  InputSettings
	Output OutputSettings
	Writer WriterSettings
	Search SearchSettings
	Log    LogSettings
}

// Resolve returns an input path joined with the data directory unless it is
// already absolute.
func (in *InputSettings) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(in.DataDir, path)
}

// Load reads the configuration file (if present) and returns the settings.
// The settings instance is passed through the call graph explicitly; there
// is no package-level singleton.
func Load(configPath string) (*Settings, error) {
	settings := &Settings{}

	if err := initViper(configPath); err != nil {
		return nil, fmt.Errorf("error initializing viper: %w", err)
	}

	if err := viper.Unmarshal(settings); err != nil {
		return nil, fmt.Errorf("error unmarshaling config into struct: %w", err)
	}

	if err := ValidateSettings(settings); err != nil {
		return nil, fmt.Errorf("error validating settings: %w", err)
	}

	return settings, nil
}

// initViper initializes viper with default values and reads the configuration file.
func initViper(configPath string) error {
	viper.SetConfigName("unicode3")
	viper.SetConfigType("yaml")

	if configPath != "" {
		viper.SetConfigFile(configPath)
	} else {
		viper.AddConfigPath(".")
	}

	setDefaultConfig()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			// No config file is fine, defaults plus flags apply.
			return nil
		}
		return fmt.Errorf("fatal error reading config file: %w", err)
	}

	return nil
}

// ValidateSettings rejects configurations the pipeline cannot run with.
func ValidateSettings(settings *Settings) error {
	if settings.Writer.BatchSize <= 0 {
		return errors.Newf("writer batch size must be positive, got %d", settings.Writer.BatchSize).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}
	if settings.Output.SQLite.Path == "" {
		return errors.Newf("output sqlite path must not be empty").
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}
	if settings.Search.Overfetch < 1 {
		return errors.Newf("search overfetch multiplier must be at least 1, got %d", settings.Search.Overfetch).
			Component("conf").
			Category(errors.CategoryValidation).
			Build()
	}
	return nil
}
