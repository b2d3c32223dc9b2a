package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/sdkawata/unicode3/cmd"
	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/logging"
)

func main() {
	settings, err := conf.Load(os.Getenv("UNICODE3_CONFIG"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Initial level; the root command re-evaluates it once flags are parsed.
	logging.Init(slog.LevelInfo)

	rootCmd := cmd.RootCommand(settings)
	if err := rootCmd.Execute(); err != nil {
		logging.Fatal("Command failed", "error", err)
	}
}
