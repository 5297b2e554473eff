package wiki

import (
	"bytes"
	"context"
	"log/slog"
	"questgraph/lib/htmlutil"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

// SkillRequirements scrapes a quest's own page (by its list slug) for
// skill requirement markers and returns skill name to required level.
// Quests without skill requirements return an empty map.
func (c *Client) SkillRequirements(ctx context.Context, slug string) (map[string]int, error) {
	ctx, span := tracer.Start(ctx, "client:SkillRequirements")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(slug)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	doc, err := goquery.NewDocumentFromReader(bytes.NewBuffer(res.Body()))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse html")
		return nil, err
	}

	return skillsFromDocument(doc), nil
}

// skillsFromDocument reads the "SkillClickPic" markers quest pages
// decorate their requirement tables with. Each marker renders as
// "<level> <skill icon link>"; markers outside a table cell are
// decoration elsewhere on the page and don't count. Later markers win
// when a skill repeats.
func skillsFromDocument(doc *goquery.Document) map[string]int {
	skills := map[string]int{}
	doc.Find("span.SkillClickPic").Each(func(_ int, span *goquery.Selection) {
		if span.Closest("td").Length() == 0 {
			return
		}

		text := strings.TrimSpace(htmlutil.Text(span.Get(0)))
		levelText, _, _ := strings.Cut(text, " ")
		if levelText == "" {
			return
		}
		level, err := strconv.Atoi(levelText)
		if err != nil {
			slog.Warn("skipping unparsable skill level", "text", text)
			return
		}

		name, ok := span.Find("a").First().Attr("title")
		if !ok {
			slog.Warn("skipping skill marker without a titled link", "text", text)
			return
		}
		skills[strings.ToLower(name)] = level
	})
	return skills
}
