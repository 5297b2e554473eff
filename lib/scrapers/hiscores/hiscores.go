// Package hiscores reads player skill levels off the game's lite
// hiscores endpoint.
package hiscores

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"questgraph/lib/restyutil"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("scrapers/hiscores")

const (
	DefaultBaseUrl = "https://secure.runescape.com"
	litePath       = "/m=hiscore_oldschool/index_lite.ws"
)

// SkillNames lists every skill in the order the lite endpoint reports
// them, the overall total first. The endpoint carries no names, lines
// map onto this list positionally.
var SkillNames = []string{
	"total",
	"attack",
	"defence",
	"strength",
	"hitpoints",
	"ranged",
	"prayer",
	"magic",
	"cooking",
	"woodcutting",
	"fletching",
	"fishing",
	"firemaking",
	"crafting",
	"smithing",
	"mining",
	"herblore",
	"agility",
	"thieving",
	"slayer",
	"farming",
	"runecraft",
	"hunter",
	"construction",
}

// Level is one hiscores entry for one skill.
type Level struct {
	Rank       int
	Level      int
	Experience int
}

var ErrPlayerNotFound = errors.New("player not on the hiscores")

var restyOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput mirrors http transcripts of all clients
// created afterwards to the given output. Call it before NewClient.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyOutput = output
}

type ClientOptions struct {
	// BaseUrl overrides DefaultBaseUrl.
	BaseUrl string
}

type Client struct {
	Http *resty.Client
}

func NewClient(opts ClientOptions) *Client {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, restyOutput)

	return &Client{Http: client}
}

// Levels fetches a player's levels keyed by skill name. Unknown
// players surface as ErrPlayerNotFound.
func (c *Client) Levels(ctx context.Context, player string) (map[string]Level, error) {
	ctx, span := tracer.Start(ctx, "client:Levels")
	defer span.End()

	res, err := c.Http.R().
		SetContext(ctx).
		SetQueryParam("player", player).
		Get(litePath)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to fetch")
		return nil, err
	}
	if res.StatusCode() == http.StatusNotFound {
		err := fmt.Errorf("%w: %q", ErrPlayerNotFound, player)
		span.RecordError(err)
		span.SetStatus(codes.Error, "player not found")
		return nil, err
	}
	if res.StatusCode() != http.StatusOK {
		err := fmt.Errorf("hiscores returned status %q", res.Status())
		span.RecordError(err)
		span.SetStatus(codes.Error, "unexpected status")
		return nil, err
	}

	levels, err := parseLevels(res.String())
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "failed to parse response")
		return nil, err
	}
	return levels, nil
}

// parseLevels reads the lite format: one rank,level,experience line
// per skill in SkillNames order. Activity entries are rank,score pairs
// with no experience column and don't consume a skill name. Parsing
// stops once every skill name has a level.
func parseLevels(data string) (map[string]Level, error) {
	levels := map[string]Level{}
	counter := 0
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if counter >= len(SkillNames) {
			break
		}

		fields := strings.Split(line, ",")
		if len(fields) == 2 {
			continue
		}
		if len(fields) != 3 {
			return nil, fmt.Errorf("malformed hiscores line: %q", line)
		}
		rank, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, fmt.Errorf("malformed hiscores line %q: %w", line, err)
		}
		level, err := strconv.Atoi(fields[1])
		if err != nil {
			return nil, fmt.Errorf("malformed hiscores line %q: %w", line, err)
		}
		experience, err := strconv.Atoi(fields[2])
		if err != nil {
			return nil, fmt.Errorf("malformed hiscores line %q: %w", line, err)
		}

		levels[SkillNames[counter]] = Level{
			Rank:       rank,
			Level:      level,
			Experience: experience,
		}
		counter++
	}
	return levels, nil
}
