package wikitext

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

const quickGuidePage = `__NOTOC__
{{Quest details
|name = Dragon Slayer I
|requirements =
*Able to defeat a level 83 [[dragon]]
**32 {{Skill clickpic|Quest}} [[Quest points]]
|items = Yes
}}

==Walkthrough==
{{Skill clickpic|Magic|33}} is useful here.`

func TestTemplates(t *testing.T) {
	cases := []struct {
		desc   string
		source string
		name   string
		count  int
	}{
		{"none", "no templates here", "Quest details", 0},
		{"single", "{{Quest details|requirements=*x}}", "Quest details", 1},
		{"case insensitive", "{{quest details|requirements=*x}}", "Quest details", 1},
		{"two", "{{Quest details}} and {{Quest details}}", "Quest details", 2},
		{"other names ignored", "{{Infobox}} {{Quest details}}", "Quest details", 1},
		{"unclosed", "{{Quest details|requirements=*x", "Quest details", 0},
		{"nested is found", "{{Outer|p={{Skill clickpic|Attack|40}}}}", "Skill clickpic", 1},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			require.Len(t, Templates(c.source, c.name), c.count)
		})
	}
}

func TestTemplateParams(t *testing.T) {
	tpls := Templates(quickGuidePage, "Quest details")
	require.Len(t, tpls, 1)

	name, ok := tpls[0].Param("name")
	require.True(t, ok)
	require.Equal(t, " Dragon Slayer I\n", name)

	requirements, ok := tpls[0].Param("requirements")
	require.True(t, ok)
	require.Equal(
		t,
		"\n*Able to defeat a level 83 [[dragon]]\n**32 {{Skill clickpic|Quest}} [[Quest points]]\n",
		requirements,
	)

	_, ok = tpls[0].Param("missing")
	require.False(t, ok)
}

func TestTemplatePositional(t *testing.T) {
	tpls := Templates("{{Skill clickpic|Attack|40 [[Attack]]}}", "Skill clickpic")
	require.Len(t, tpls, 1)

	skill, ok := tpls[0].Positional(0)
	require.True(t, ok)
	require.Equal(t, "Attack", skill)

	level, ok := tpls[0].Positional(1)
	require.True(t, ok)
	require.Equal(t, "40 [[Attack]]", level)

	_, ok = tpls[0].Positional(2)
	require.False(t, ok)
}

func TestPipesInsideLinksDoNotSplitParams(t *testing.T) {
	tpls := Templates("{{Quest details|requirements=*[[Cook's Assistant|the cook quest]]}}", "Quest details")
	require.Len(t, tpls, 1)

	value, ok := tpls[0].Param("requirements")
	require.True(t, ok)
	require.Equal(t, "*[[Cook's Assistant|the cook quest]]", value)
}

func TestLinks(t *testing.T) {
	cases := []struct {
		desc     string
		source   string
		expected []string
	}{
		{"none", "plain prose", nil},
		{"single", "see [[Dragon Slayer I]]", []string{"Dragon Slayer I"}},
		{"label dropped", "[[Dragon Slayer I|the dragon quest]]", []string{"Dragon Slayer I"}},
		{
			"order kept",
			"*Completion of [[Cook's Assistant]] and [[Rune Mysteries|runes]]",
			[]string{"Cook's Assistant", "Rune Mysteries"},
		},
	}
	for _, c := range cases {
		t.Run(c.desc, func(t *testing.T) {
			diff := cmp.Diff(c.expected, Links(c.source))
			require.Empty(t, diff)
		})
	}
}

func TestStripBrackets(t *testing.T) {
	require.Equal(t, "Quest points", StripBrackets("[[Quest points]]"))
	require.Equal(t, "32 Quest points earned", StripBrackets("32 [[Quest points]] earned"))
}
