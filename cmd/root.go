// Package cmd assembles the unicode3 command tree.
package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/sdkawata/unicode3/cmd/build"
	"github.com/sdkawata/unicode3/cmd/search"
	"github.com/sdkawata/unicode3/internal/buildinfo"
	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/logging"
)

// RootCommand creates and returns the root command
func RootCommand(settings *conf.Settings) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "unicode3",
		Short:   "Unicode character database pipeline and search CLI",
		Version: buildinfo.String(),
		// The log level depends on flags, so it is settled only after
		// cobra has parsed them.
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if settings.Debug {
				level = slog.LevelDebug
			}
			logging.Init(level)
		},
	}

	setupFlags(rootCmd, settings)

	subcommands := []*cobra.Command{
		build.Command(settings),
		search.Command(settings),
	}
	rootCmd.AddCommand(subcommands...)

	return rootCmd
}

// setupFlags configures the global flags and binds them through viper so
// command-line arguments take precedence over the config file.
func setupFlags(rootCmd *cobra.Command, settings *conf.Settings) {
	rootCmd.PersistentFlags().BoolVar(&settings.Debug, "debug", viper.GetBool("debug"), "Enable debug output")
	rootCmd.PersistentFlags().StringVar(&settings.Input.DataDir, "data-dir", viper.GetString("input.datadir"), "Base directory for UCD source files")
	rootCmd.PersistentFlags().StringVar(&settings.Output.SQLite.Path, "db", viper.GetString("output.sqlite.path"), "Path of the SQLite artifact")
	rootCmd.PersistentFlags().StringVar(&settings.Output.Index.Path, "index", viper.GetString("output.index.path"), "Path of the search index blob")

	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		cobra.CheckErr(err)
	}
}
