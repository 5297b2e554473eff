package commands

import (
	"fmt"
	"log/slog"
	"questgraph/lib/prereq"
	"questgraph/lib/requirement"
	"time"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(graphCmd)
}

var graphCmd = &cobra.Command{
	Use:   "graph <quest>",
	Short: "Resolves every prerequisite of a quest and prints the tree as DOT.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		client := newWikiClient(cfg)
		db := loadQuestDatabase(cmd.Context(), client)
		quest := requireQuest(db, args[0])

		resolver := prereq.Resolver{
			Source: client,
			Known:  db,
		}

		t1 := time.Now()
		result, err := resolver.Resolve(cmd.Context(), quest.Title)
		if err != nil {
			fatal("failed to resolve prerequisites", err)
		}
		t2 := time.Now()

		slog.Info(
			"resolved prerequisites",
			"quests", len(result.Visited),
			"seconds", t2.Sub(t1).Seconds(),
		)
		fmt.Println(requirement.Dot(result.Tree))
	},
}
