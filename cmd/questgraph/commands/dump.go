package commands

import (
	"log/slog"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(dumpCmd)
}

var dumpCmd = &cobra.Command{
	Use:   "dump <path>",
	Short: "Writes the quest database to a JSON file for later --quest-data runs.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newWikiClient(cfg)
		db := loadQuestDatabase(cmd.Context(), client)

		err := db.DumpToFile(args[0])
		if err != nil {
			fatal("failed to write quest database", err)
		}
		slog.Info("wrote quest database", "path", args[0], "quests", db.Len())
	},
}
