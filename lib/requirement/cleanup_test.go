package requirement

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestRemoveEmptySplicesChildrenUp(t *testing.T) {
	tr := NewTree(Quest("Root"))
	empty := tr.Attach(tr.Root(), Empty())
	tr.Attach(empty, Skill("Agility", 50))
	tr.Attach(empty, Quest("A"))
	tr.Attach(tr.Root(), Quest("B"))

	RemoveEmpty(tr)

	// spliced children land after the parent's surviving children,
	// keeping their order relative to each other
	expected := []string{
		`quest "Root"`,
		`  quest "B"`,
		`  skill "50 Agility"`,
		`  quest "A"`,
	}
	require.Empty(t, cmp.Diff(expected, sketch(tr)))
}

func TestRemoveEmptyCollapsesNestedPlaceholders(t *testing.T) {
	tr := NewTree(Quest("Root"))
	outer := tr.Attach(tr.Root(), Empty())
	inner := tr.Attach(outer, Empty())
	tr.Attach(inner, Quest("A"))

	RemoveEmpty(tr)

	expected := []string{
		`quest "Root"`,
		`  quest "A"`,
	}
	require.Empty(t, cmp.Diff(expected, sketch(tr)))
}

func TestRemoveEmptyDropsChildlessPlaceholders(t *testing.T) {
	tr := NewTree(Quest("Root"))
	tr.Attach(tr.Root(), Empty())

	RemoveEmpty(tr)

	require.Empty(t, tr.Children(tr.Root()))
}

func TestRemoveEmptyKeepsPlaceholderRoot(t *testing.T) {
	tr := NewTree(Empty())
	tr.Attach(tr.Root(), Quest("A"))

	RemoveEmpty(tr)

	expected := []string{
		`empty ""`,
		`  quest "A"`,
	}
	require.Empty(t, cmp.Diff(expected, sketch(tr)))
}

func TestRemoveEmptyIsIdempotent(t *testing.T) {
	tr := NewTree(Quest("Root"))
	empty := tr.Attach(tr.Root(), Empty())
	tr.Attach(empty, Quest("A"))
	quest := tr.Attach(tr.Root(), Quest("B"))
	tr.Attach(quest, Empty())
	tr.Attach(quest, Skill("Magic", 33))

	RemoveEmpty(tr)
	once := sketch(tr)
	RemoveEmpty(tr)

	require.Empty(t, cmp.Diff(once, sketch(tr)))
}
