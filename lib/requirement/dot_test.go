package requirement

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDotChildlessRoot(t *testing.T) {
	tr := NewTree(Quest("Dragon Slayer I"))
	require.Equal(t, `"Dragon Slayer I"`, Dot(tr))
}

func TestDotFullDocument(t *testing.T) {
	tr := NewTree(Quest("Dragon Slayer I"))
	quest := tr.Attach(tr.Root(), Quest("Cook's Assistant"))
	tr.Attach(quest, Skill("Cooking", 10))
	tr.Attach(tr.Root(), Unknown("32 Quest points"))

	expected := strings.Join([]string{
		"digraph {",
		"  node[style=filled, fillcolor=darkslategray1];",
		`  "Dragon Slayer I";`,
		`  "Cook's Assistant";`,
		"  node[style=filled, fillcolor=darkseagreen];",
		`  "10 Cooking";`,
		"  node[style=filled, fillcolor=white];",
		`  "Cook's Assistant" -> "Dragon Slayer I";`,
		`  "32 Quest points" -> "Dragon Slayer I";`,
		`  "10 Cooking" -> "Cook's Assistant";`,
		"}",
	}, "\n")
	require.Equal(t, expected, Dot(tr))
}

func TestDotSkillSectionOmittedWithoutSkills(t *testing.T) {
	tr := NewTree(Quest("Root"))
	tr.Attach(tr.Root(), Quest("A"))

	expected := strings.Join([]string{
		"digraph {",
		"  node[style=filled, fillcolor=darkslategray1];",
		`  "Root";`,
		`  "A";`,
		"  node[style=filled, fillcolor=white];",
		`  "A" -> "Root";`,
		"}",
	}, "\n")
	require.Equal(t, expected, Dot(tr))
}

func TestDotEscapesQuotes(t *testing.T) {
	tr := NewTree(Quest("Root"))
	tr.Attach(tr.Root(), Unknown(`defeat "Elvarg" underground`))

	require.Contains(t, Dot(tr), `  "defeat \"Elvarg\" underground" -> "Root";`)
}
