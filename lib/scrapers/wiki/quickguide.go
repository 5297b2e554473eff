package wiki

import (
	"context"
	"errors"
	"questgraph/lib/wikitext"

	"cgt.name/pkg/go-mwclient/params"
	"go.opentelemetry.io/otel/codes"
)

// detailsTemplate heads every quest page and carries the raw
// requirements list.
const detailsTemplate = "Quest details"

var (
	ErrDetailsNotFound     = errors.New("no quest details template on page")
	ErrTooManyDetailsFound = errors.New("more than one quest details template on page")
)

// QuickGuideRequirements fetches the wikitext of a quest's
// "<quest>/Quick guide" subpage and returns the requirements parameter
// of its quest details template. A details template without a
// requirements parameter yields "" with no error.
func (c *Client) QuickGuideRequirements(ctx context.Context, quest string) (string, error) {
	_, span := tracer.Start(ctx, "client:QuickGuideRequirements")
	defer span.End()

	res, err := c.api.Get(params.Values{
		"action": "parse",
		"prop":   "wikitext",
		"page":   quest + "/Quick guide",
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch wikitext")
		return "", err
	}
	source, err := res.GetString("parse", "wikitext")
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected api response shape")
		return "", err
	}

	requirements, err := requirementsFromSource(source)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to locate quest details")
		return "", err
	}
	return requirements, nil
}

func requirementsFromSource(source string) (string, error) {
	details := wikitext.Templates(source, detailsTemplate)
	if len(details) == 0 {
		return "", ErrDetailsNotFound
	}
	if len(details) > 1 {
		return "", ErrTooManyDetailsFound
	}
	requirements, ok := details[0].Param("requirements")
	if !ok {
		return "", nil
	}
	return requirements, nil
}
