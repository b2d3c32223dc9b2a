// Package build implements the pipeline subcommand.
package build

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/logging"
	"github.com/sdkawata/unicode3/internal/observability"
	"github.com/sdkawata/unicode3/internal/pipeline"
)

// Command creates the build command, which runs the whole pipeline once:
// parse, normalize, persist, index.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the unicode database and search index from UCD source files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logging.ForService("pipeline")

			// An optional rotated log file receives the run's records in
			// addition to stdout.
			if settings.Log.Enabled {
				level := slog.LevelInfo
				if settings.Debug {
					level = slog.LevelDebug
				}
				fileLog, closeLog, err := logging.NewFileLogger(settings.Log.Path, "pipeline", level)
				if err != nil {
					return err
				}
				consoleLog := log
				defer func() {
					if err := closeLog(); err != nil {
						consoleLog.Warn("Failed to close log file", "path", settings.Log.Path, "error", err)
					}
				}()
				log = logging.Tee(log, fileLog)
			}

			metrics, err := observability.NewMetrics()
			if err != nil {
				return err
			}

			p := pipeline.New(settings, log, metrics)
			return p.Run(cmd.Context())
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().IntVar(&settings.Writer.BatchSize, "batch-size", settings.Writer.BatchSize, "Rows per insert batch")
	cmd.Flags().StringVar(&settings.Input.UnihanDir, "unihan-dir", settings.Input.UnihanDir, "Directory of Unihan property files")
}
