package commands

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"questgraph/lib/telemetry"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "questgraph",
	Short: "questgraph maps quest prerequisites against a player's skill levels.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		telemetry.InitSlog(*verbose)
	},
}

var (
	questData *string
	verbose   *bool
)

func init() {
	questData = rootCmd.PersistentFlags().String(
		"quest-data", "",
		"Load the quest database from a dump file instead of scraping the wiki list.",
	)
	verbose = rootCmd.PersistentFlags().Bool(
		"verbose", false,
		"Enable debug logging, including http transcripts when a debug directory is configured.",
	)
}

func ExecuteContext(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func fatal(message string, err error) {
	slog.Error(message, "err", err.Error())
	os.Exit(1)
}
