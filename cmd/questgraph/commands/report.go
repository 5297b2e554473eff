package commands

import (
	"log/slog"
	"os"
	"questgraph/lib/questdb"
	"questgraph/lib/report"

	"github.com/spf13/cobra"
)

var reportQuests *[]string

func init() {
	reportQuests = reportCmd.Flags().StringSlice(
		"quests", nil,
		"Only report on these quest titles.",
	)
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report <player> [--quests <titles>]",
	Short: "Compares required skill levels against a player's hiscores.",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		cfg := readConfig()
		wikiClient := newWikiClient(cfg)
		hiscoresClient := newHiscoresClient(cfg)
		db := loadQuestDatabase(cmd.Context(), wikiClient)

		player := args[0]
		levels, err := hiscoresClient.Levels(cmd.Context(), player)
		if err != nil {
			fatal("failed to fetch hiscores levels", err)
		}
		slog.Debug("fetched hiscores", "player", player, "skills", len(levels))

		var quests []questdb.Quest
		if len(*reportQuests) > 0 {
			for _, title := range *reportQuests {
				quests = append(quests, requireQuest(db, title))
			}
		} else {
			quests = db.Quests()
		}

		for _, quest := range quests {
			required, err := wikiClient.SkillRequirements(cmd.Context(), quest.Slug)
			if err != nil {
				slog.Error(
					"failed to scrape skill requirements",
					"quest", quest.Title,
					"err", err,
				)
				continue
			}

			rows := report.Build(required, levels)
			if len(rows) == 0 {
				slog.Debug("quest has no skill requirements", "quest", quest.Title)
				continue
			}
			report.Render(os.Stdout, quest.Title, rows)
		}
	},
}
