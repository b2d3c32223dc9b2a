// Package search implements the query subcommand.
package search

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/sdkawata/unicode3/internal/conf"
	"github.com/sdkawata/unicode3/internal/errors"
	searchindex "github.com/sdkawata/unicode3/internal/search"
)

// Command creates the search command: import the index blob, look up the
// query with over-fetch, rank, truncate and print.
func Command(settings *conf.Settings) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [query]",
		Short: "Search characters by name, reading or keyword",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(settings, args[0], cmd.OutOrStdout())
		},
	}

	setupFlags(cmd, settings)

	return cmd
}

func setupFlags(cmd *cobra.Command, settings *conf.Settings) {
	cmd.Flags().IntVarP(&settings.Search.Limit, "limit", "n", settings.Search.Limit, "Maximum number of results")
}

func runSearch(settings *conf.Settings, query string, out io.Writer) error {
	f, err := os.Open(settings.Output.Index.Path)
	if err != nil {
		return errors.New(err).
			Component("search-cmd").
			Category(errors.CategoryFileIO).
			Context("path", settings.Output.Index.Path).
			Build()
	}
	defer f.Close()

	idx, err := searchindex.Import(f)
	if err != nil {
		return err
	}

	// The token index is not relevance-aware; over-fetch raw hits before
	// ranking and truncating.
	limit := settings.Search.Limit
	candidates := idx.Lookup(query, limit*settings.Search.Overfetch)
	ranked := idx.Rank(candidates, query)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	for _, cp := range ranked {
		name, _ := idx.DisplayName(cp)
		score := searchindex.ScoreName(name, query)
		fmt.Fprintf(out, "U+%04X\t%s\t%d\n", cp, name, score)
	}
	return nil
}
