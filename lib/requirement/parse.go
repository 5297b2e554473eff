package requirement

import (
	"errors"
	"log/slog"
	"questgraph/lib/wikitext"
	"strconv"
	"strings"
)

var (
	// ErrTooManyAddedLevels means a list line nested more than one
	// level deeper than the line before it.
	ErrTooManyAddedLevels = errors.New("requirement list adds more than one nesting level at once")
	// ErrNoRemainingParents means a list line tried to outdent past
	// the node the parse was anchored at.
	ErrNoRemainingParents = errors.New("requirement list ascends past its root")
)

// TitleSet reports whether a page title names a known quest.
type TitleSet interface {
	Exists(title string) bool
}

const skillTemplate = "Skill clickpic"

// Parse reads an asterisk-indented requirement list and attaches one
// node per line under anchor, nesting children according to how many
// asterisks deeper each line sits than the one before it. Lines that
// link to quests in known become quest nodes, skill template lines
// become skill nodes, lines with no markup at all become placeholders
// for RemoveEmpty to splice out, and anything else is kept as an
// unknown requirement so no information is dropped.
//
// The returned slice holds the known quest titles the list referenced,
// deduplicated, in first-seen order.
func Parse(t *Tree, anchor NodeID, source string, known TitleSet) ([]string, error) {
	current := anchor
	last := NoNode
	lastLevel := 0

	var discovered []string
	seen := map[string]bool{}

	for _, line := range strings.Split(strings.TrimSpace(source), "\n") {
		// the leading character is the line's own bullet, nesting
		// is counted from the markers after it
		if line != "" {
			line = line[1:]
		}
		content := strings.TrimLeft(line, "*")
		level := len(line) - len(content)

		if level > lastLevel {
			if level-lastLevel > 1 || last == NoNode {
				return nil, ErrTooManyAddedLevels
			}
			current = last
			lastLevel = level
		} else {
			for level < lastLevel {
				if current == anchor || t.Parent(current) == NoNode {
					return nil, ErrNoRemainingParents
				}
				current = t.Parent(current)
				lastLevel--
			}
		}

		if !strings.Contains(content, "{{") && !strings.Contains(content, "[[") {
			last = t.Attach(current, Empty())
			continue
		}

		if strings.Contains(content, skillTemplate) {
			skill, ok := parseSkillLine(content)
			if !ok {
				slog.Warn("could not determine the skill a line requires, skipping it", "line", content)
				continue
			}
			last = t.Attach(current, skill)
			continue
		}

		matched := false
		for _, target := range wikitext.Links(content) {
			if !known.Exists(target) {
				continue
			}
			last = t.Attach(current, Quest(target))
			matched = true
			if !seen[target] {
				seen[target] = true
				discovered = append(discovered, target)
			}
		}
		if !matched {
			last = t.Attach(current, Unknown(wikitext.StripBrackets(content)))
		}
	}

	return discovered, nil
}

// parseSkillLine understands the two shapes skill requirements come in:
// the level inside the template ({{Skill clickpic|Attack|40}}) and the
// level leading the line (40 {{Skill clickpic|Attack}} [[Attack]]).
func parseSkillLine(content string) (Node, bool) {
	tpls := wikitext.Templates(content, skillTemplate)
	if len(tpls) == 0 {
		return Node{}, false
	}

	name, ok := tpls[0].Positional(0)
	if !ok || name == "" {
		return Node{}, false
	}

	levelText := content
	if strings.HasPrefix(content, "{{") {
		levelText, ok = tpls[0].Positional(1)
		if !ok {
			return Node{}, false
		}
	}
	fields := strings.Fields(levelText)
	if len(fields) == 0 {
		return Node{}, false
	}
	level, err := strconv.Atoi(fields[0])
	if err != nil || level < 1 {
		return Node{}, false
	}

	return Skill(name, level), true
}
