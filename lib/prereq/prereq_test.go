package prereq

import (
	"context"
	"errors"
	"fmt"
	"questgraph/lib/requirement"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

// fakeSource serves requirement lists from memory and counts how often
// each quest is fetched.
type fakeSource struct {
	pages   map[string]string
	fetches map[string]int
	err     error
}

func newFakeSource(pages map[string]string) *fakeSource {
	return &fakeSource{pages: pages, fetches: map[string]int{}}
}

func (s *fakeSource) QuickGuideRequirements(ctx context.Context, quest string) (string, error) {
	s.fetches[quest]++
	if s.err != nil {
		return "", s.err
	}
	return s.pages[quest], nil
}

func (s *fakeSource) Exists(title string) bool {
	_, ok := s.pages[title]
	return ok
}

func sketch(tr *requirement.Tree) []string {
	var lines []string
	var walk func(id requirement.NodeID, depth int)
	walk = func(id requirement.NodeID, depth int) {
		lines = append(lines, fmt.Sprintf(
			"%s%s",
			strings.Repeat("  ", depth), tr.Node(id).Label(),
		))
		for _, child := range tr.Children(id) {
			walk(child, depth+1)
		}
	}
	walk(tr.Root(), 0)
	return lines
}

func TestResolveMergesTransitiveRequirements(t *testing.T) {
	source := newFakeSource(map[string]string{
		"Quest A": "*Completion of [[Quest B]]\n*40 {{Skill clickpic|Attack}}",
		"Quest B": "*Completion of [[Quest C]]",
		"Quest C": "",
	})
	resolver := Resolver{Source: source, Known: source}

	result, err := resolver.Resolve(context.Background(), "Quest A")
	require.NoError(t, err)

	expected := []string{
		"Quest A",
		"  Quest B",
		"    Quest C",
		"  40 Attack",
	}
	require.Empty(t, cmp.Diff(expected, sketch(result.Tree)))
	require.Equal(t, []string{"Quest A", "Quest B", "Quest C"}, result.Visited)
}

func TestResolveFetchesSharedRequirementOnce(t *testing.T) {
	// C is required by A and by B, it must still only be fetched once
	source := newFakeSource(map[string]string{
		"Quest A": "*[[Quest B]]\n*[[Quest C]]",
		"Quest B": "*[[Quest C]]",
		"Quest C": "",
	})
	resolver := Resolver{Source: source, Known: source}

	_, err := resolver.Resolve(context.Background(), "Quest A")
	require.NoError(t, err)

	for quest, count := range source.fetches {
		require.Equal(t, 1, count, quest)
	}
}

func TestResolveTerminatesOnCycles(t *testing.T) {
	source := newFakeSource(map[string]string{
		"Quest A": "*[[Quest B]]",
		"Quest B": "*[[Quest A]]",
	})
	resolver := Resolver{Source: source, Known: source}

	result, err := resolver.Resolve(context.Background(), "Quest A")
	require.NoError(t, err)
	require.Equal(t, 1, source.fetches["Quest A"])
	require.Equal(t, 1, source.fetches["Quest B"])
	require.Equal(t, []string{"Quest A", "Quest B"}, result.Visited)
}

func TestResolveQuestWithoutRequirements(t *testing.T) {
	source := newFakeSource(map[string]string{"Quest A": ""})
	resolver := Resolver{Source: source, Known: source}

	result, err := resolver.Resolve(context.Background(), "Quest A")
	require.NoError(t, err)

	// the placeholder the empty list produced is cleaned away
	require.Empty(t, result.Tree.Children(result.Tree.Root()))
	require.Equal(t, []string{"Quest A"}, result.Visited)
}

func TestResolvePlaceholdersSplicedOut(t *testing.T) {
	source := newFakeSource(map[string]string{
		"Quest A": "*One of:\n**[[Quest B]]",
		"Quest B": "",
	})
	resolver := Resolver{Source: source, Known: source}

	result, err := resolver.Resolve(context.Background(), "Quest A")
	require.NoError(t, err)

	expected := []string{
		"Quest A",
		"  Quest B",
	}
	require.Empty(t, cmp.Diff(expected, sketch(result.Tree)))
}

func TestResolvePropagatesFetchErrors(t *testing.T) {
	source := newFakeSource(nil)
	source.err = errors.New("wiki unreachable")
	resolver := Resolver{Source: source, Known: source}

	_, err := resolver.Resolve(context.Background(), "Quest A")
	require.ErrorIs(t, err, source.err)
}

func TestResolvePropagatesParseErrors(t *testing.T) {
	source := newFakeSource(map[string]string{
		"Quest A": "*[[Quest B]]\n***[[Quest B]]",
		"Quest B": "",
	})
	resolver := Resolver{Source: source, Known: source}

	_, err := resolver.Resolve(context.Background(), "Quest A")
	require.ErrorIs(t, err, requirement.ErrTooManyAddedLevels)
}
