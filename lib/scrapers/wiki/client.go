// Package wiki scrapes the Old School RuneScape wiki. It pulls quest
// metadata off the quest list page, requirement lists out of quick
// guide wikitext through the MediaWiki api and skill requirements off
// rendered quest pages.
package wiki

import (
	"net/url"
	"questgraph/lib/restyutil"
	"time"

	"cgt.name/pkg/go-mwclient"
	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("scrapers/wiki")

const (
	DefaultBaseUrl = "https://oldschool.runescape.wiki"
	// DefaultUserAgent identifies the scraper to the wiki operators,
	// their api policy asks for a descriptive user agent.
	DefaultUserAgent = "questgraph quest prerequisite scraper"
)

var restyOutput restyutil.InstrumentOutput

// SetRestyInstrumentOutput mirrors http transcripts of all clients
// created afterwards to the given output. Call it before NewClient.
func SetRestyInstrumentOutput(output restyutil.InstrumentOutput) {
	restyOutput = output
}

type ClientOptions struct {
	// BaseUrl overrides DefaultBaseUrl, for mirrors or other wikis
	// that share the quest page layout.
	BaseUrl   string
	UserAgent string
}

type Client struct {
	BaseUrl *url.URL
	Http    *resty.Client
	api     *mwclient.Client
}

func NewClient(opts ClientOptions) (*Client, error) {
	if opts.BaseUrl == "" {
		opts.BaseUrl = DefaultBaseUrl
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}

	baseUrl, err := url.Parse(opts.BaseUrl)
	if err != nil {
		return nil, err
	}

	api, err := mwclient.New(opts.BaseUrl+"/api.php", opts.UserAgent)
	if err != nil {
		return nil, err
	}

	client := resty.New()
	client.SetBaseURL(opts.BaseUrl)
	client.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(client.GetClient().Transport)

	client.SetHeader("user-agent", opts.UserAgent)
	client.SetRedirectPolicy(resty.DomainCheckRedirectPolicy(baseUrl.Hostname()))
	client.SetTimeout(time.Second * 30)

	restyutil.InstrumentClient(client, tracer, restyOutput)

	return &Client{
		BaseUrl: baseUrl,
		Http:    client,
		api:     api,
	}, nil
}
