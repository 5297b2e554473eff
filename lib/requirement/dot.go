package requirement

import (
	"fmt"
	"strconv"
	"strings"
)

// Dot renders the tree as a Graphviz digraph. Quest nodes are declared
// first, root leading, and filled darkslategray1. Skill nodes follow in
// darkseagreen when there are any. Unknown requirements are never
// declared up front, so they first appear in the edge list and pick up
// the white fill active there. Edges point from each requirement to the
// node that requires it.
//
// A root with no requirements renders as just its quoted label.
func Dot(t *Tree) string {
	root := t.Root()
	if len(t.Children(root)) == 0 {
		return quoteLabel(t.Node(root))
	}

	quests := []string{quoteLabel(t.Node(root)) + ";"}
	var skills []string
	var edges []string

	queue := append([]NodeID{}, t.Children(root)...)
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]

		label := quoteLabel(t.Node(id))
		switch t.Node(id).Kind {
		case KindQuest:
			quests = append(quests, label+";")
		case KindSkill:
			skills = append(skills, label+";")
		}
		edges = append(edges, fmt.Sprintf("%s -> %s;", label, quoteLabel(t.Node(t.Parent(id)))))

		queue = append(queue, t.Children(id)...)
	}

	var b strings.Builder
	b.WriteString("digraph {\n")
	b.WriteString("  node[style=filled, fillcolor=darkslategray1];\n")
	for _, quest := range quests {
		b.WriteString("  " + quest + "\n")
	}
	if len(skills) > 0 {
		b.WriteString("  node[style=filled, fillcolor=darkseagreen];\n")
		for _, skill := range skills {
			b.WriteString("  " + skill + "\n")
		}
	}
	b.WriteString("  node[style=filled, fillcolor=white];\n")
	for _, edge := range edges {
		b.WriteString("  " + edge + "\n")
	}
	b.WriteString("}")
	return b.String()
}

// quoteLabel escapes the label so titles with quotes in them can't break
// the document.
func quoteLabel(n Node) string {
	return strconv.Quote(n.Label())
}
