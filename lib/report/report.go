// Package report renders per-quest skill requirement tables against a
// player's hiscores levels.
package report

import (
	"io"
	"log/slog"
	"questgraph/lib/scrapers/hiscores"
	"sort"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Row compares one required skill against the player's current level.
type Row struct {
	Skill    string
	Required int
	Current  int
	Met      bool
}

// Build lines required skills up against the player's levels, sorted
// by skill name. Requirement names that aren't hiscores skills (quest
// pages mark a few oddities like combat level the same way) are
// logged and skipped.
func Build(required map[string]int, levels map[string]hiscores.Level) []Row {
	skills := make([]string, 0, len(required))
	for skill := range required {
		skills = append(skills, skill)
	}
	sort.Strings(skills)

	var rows []Row
	for _, skill := range skills {
		level, ok := levels[skill]
		if !ok {
			slog.Warn("requirement is not a hiscores skill", "skill", skill)
			continue
		}
		rows = append(rows, Row{
			Skill:    skill,
			Required: required[skill],
			Current:  level.Level,
			Met:      level.Level >= required[skill],
		})
	}
	return rows
}

// Render writes one rounded table titled with the quest name.
func Render(out io.Writer, title string, rows []Row) {
	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Skill", "Required", "Current", "Met"})

	for _, row := range rows {
		met := "no"
		if row.Met {
			met = "yes"
		}
		t.AppendRow(table.Row{row.Skill, row.Required, row.Current, met})
	}

	t.SetStyle(table.StyleRounded)
	t.Render()
}
