package wiki

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"questgraph/lib/htmlutil"
	"questgraph/lib/questdb"
	"strconv"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/codes"
)

const questListPath = "/w/Quests/List"

var ErrNoQuests = errors.New("quest list page has no quest rows")

// QuestList scrapes the wiki's quest list table into quest records.
func (c *Client) QuestList(ctx context.Context) ([]questdb.Quest, error) {
	ctx, span := tracer.Start(ctx, "client:QuestList")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		Get(questListPath)
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

	quests := questsFromDocument(ctx, doc)
	if len(quests) == 0 {
		span.RecordError(ErrNoQuests)
		span.SetStatus(codes.Error, "no quest rows")
		return nil, ErrNoQuests
	}
	return quests, nil
}

// questsFromDocument collects every table row shaped like a quest list
// entry: number, linked title, difficulty, length, quest points,
// series. Header rows and rows that don't parse are skipped, the
// list page mixes several table layouts.
func questsFromDocument(ctx context.Context, doc *goquery.Document) []questdb.Quest {
	var quests []questdb.Quest
	doc.Find("tr").Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() != 6 {
			return
		}

		number, err := strconv.ParseFloat(htmlutil.CleanText(cells.Get(0)), 64)
		if err != nil {
			slog.WarnContext(
				ctx, "skipping quest row with unparsable number",
				"cell", htmlutil.CleanText(cells.Get(0)),
			)
			return
		}
		questPoints, err := strconv.Atoi(htmlutil.CleanText(cells.Get(4)))
		if err != nil {
			slog.WarnContext(
				ctx, "skipping quest row with unparsable quest points",
				"cell", htmlutil.CleanText(cells.Get(4)),
			)
			return
		}

		title := htmlutil.CleanText(cells.Get(1))
		anchors := htmlutil.Anchors(ctx, cells.Eq(1).Find("a"))
		if title == "" || len(anchors) == 0 || anchors[0].Href == "" {
			slog.WarnContext(ctx, "skipping quest row without a linked title", "title", title)
			return
		}

		quests = append(quests, questdb.Quest{
			Number:      number,
			Title:       title,
			Slug:        anchors[0].Href,
			Difficulty:  htmlutil.CleanText(cells.Get(2)),
			Length:      htmlutil.CleanText(cells.Get(3)),
			QuestPoints: questPoints,
			Series:      htmlutil.CleanText(cells.Get(5)),
		})
	})
	return quests
}
