// Package htmlutil has small helpers for pulling clean text and links
// out of parsed HTML documents.
package htmlutil

import (
	"context"
	"net/url"
	"regexp"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/net/html"
)

var tracer = otel.Tracer("questgraph.lib.htmlutil")

var innerWhitespace = regexp.MustCompile(`\s\s+`)

// Text returns the concatenated text content of a node and everything
// under it.
func Text(node *html.Node) string {
	var b strings.Builder
	appendText(node, &b)
	return b.String()
}

func appendText(node *html.Node, b *strings.Builder) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		b.WriteString(node.Data)
		return
	}
	for child := node.FirstChild; child != nil; child = child.NextSibling {
		appendText(child, b)
	}
}

// CleanText flattens the text content of a node into a single printable
// line: non-printable runes dropped, runs of whitespace collapsed.
func CleanText(node *html.Node) string {
	text := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, Text(node))
	text = strings.TrimSpace(text)
	return innerWhitespace.ReplaceAllString(text, " ")
}

// Anchor is a parsed <a> element.
type Anchor struct {
	Name string
	Href string
}

// Anchors extracts every anchor in the selection, display text
// flattened to one line, href normalized. Anchors whose href doesn't
// parse are skipped.
func Anchors(ctx context.Context, sel *goquery.Selection) []Anchor {
	ctx, span := tracer.Start(ctx, "Anchors")
	defer span.End()

	anchors := []Anchor{}
	for _, node := range sel.Nodes {
		var href string
		for _, attr := range node.Attr {
			if attr.Key == "href" {
				href = attr.Val
				break
			}
		}
		link, err := url.Parse(href)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "skipping anchor with unparsable href")
			continue
		}

		anchor := Anchor{Name: CleanText(node), Href: link.String()}
		anchors = append(anchors, anchor)
		span.AddEvent("anchor", trace.WithAttributes(
			attribute.String("name", anchor.Name),
			attribute.String("url", anchor.Href),
		))
	}
	return anchors
}
