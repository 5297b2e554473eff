// Package prereq builds the full prerequisite tree of a quest by
// fetching requirement lists and following every quest they mention
// until nothing new turns up.
package prereq

import (
	"context"
	"fmt"
	"log/slog"
	"questgraph/lib/requirement"
	"sort"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("prereq")

// WikitextSource fetches the raw requirement list markup for a quest.
// An empty string with a nil error means the quest has no requirements.
type WikitextSource interface {
	QuickGuideRequirements(ctx context.Context, quest string) (string, error)
}

// Resolver expands a single quest into its whole prerequisite tree.
type Resolver struct {
	Source WikitextSource
	Known  requirement.TitleSet
}

// Result is a fully resolved prerequisite tree. Visited holds every
// quest title that was fetched while building it, the queried quest
// included, sorted.
type Result struct {
	Tree    *requirement.Tree
	Visited []string
}

// Resolve fetches the quest's requirement list, parses it into a tree
// anchored at the quest's node, and keeps going breadth-first through
// every quest the lists reference. A quest is claimed the moment it is
// discovered, so shared prerequisites and requirement cycles are
// fetched exactly once. Placeholder nodes are spliced out before the
// tree is returned.
func (r Resolver) Resolve(ctx context.Context, quest string) (*Result, error) {
	ctx, span := tracer.Start(ctx, "prereq:Resolve")
	defer span.End()
	span.SetAttributes(attribute.String("quest", quest))

	tree := requirement.NewTree(requirement.Quest(quest))
	visited := map[string]bool{quest: true}
	worklist := []string{quest}

	for len(worklist) > 0 {
		name := worklist[0]
		worklist = worklist[1:]

		anchor := tree.FindQuest(name)
		if anchor == requirement.NoNode {
			anchor = tree.Root()
		}

		source, err := r.Source.QuickGuideRequirements(ctx, name)
		if err != nil {
			err = fmt.Errorf("fetch requirements of %q: %w", name, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to fetch a requirement list")
			return nil, err
		}

		discovered, err := requirement.Parse(tree, anchor, source, r.Known)
		if err != nil {
			err = fmt.Errorf("parse requirements of %q: %w", name, err)
			span.RecordError(err)
			span.SetStatus(codes.Error, "failed to parse a requirement list")
			return nil, err
		}

		sort.Strings(discovered)
		for _, found := range discovered {
			if visited[found] {
				continue
			}
			visited[found] = true
			worklist = append(worklist, found)
		}
		slog.Debug(
			"merged requirements",
			"quest", name,
			"discovered", len(discovered),
			"pending", len(worklist),
		)
	}

	requirement.RemoveEmpty(tree)

	names := make([]string, 0, len(visited))
	for name := range visited {
		names = append(names, name)
	}
	sort.Strings(names)

	return &Result{Tree: tree, Visited: names}, nil
}
