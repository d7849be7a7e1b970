package apod

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	apodhttp "github.com/apodgrab/apodgrab/internal/http"
	"github.com/apodgrab/apodgrab/pkg/daterange"
)

// API defaults.
const (
	DefaultEndpoint = "https://api.nasa.gov/planetary/apod"

	// DefaultAPIKey is NASA's shared demo key. It works without signup but
	// is heavily rate limited.
	DefaultAPIKey = "DEMO_KEY"
)

// Options configures the APOD client.
type Options struct {
	// Endpoint is the API base URL. Default: DefaultEndpoint.
	Endpoint string

	// APIKey authenticates requests. Default: DefaultAPIKey.
	APIKey string
}

// Client fetches APOD metadata. The transport is injected so one connection
// pool can be shared with asset downloads.
type Client struct {
	http *apodhttp.Client
	opts Options
}

// NewClient creates an APOD client on top of the given transport.
func NewClient(transport *apodhttp.Client, opts Options) *Client {
	if opts.Endpoint == "" {
		opts.Endpoint = DefaultEndpoint
	}
	if opts.APIKey == "" {
		opts.APIKey = DefaultAPIKey
	}
	return &Client{http: transport, opts: opts}
}

// Fetch retrieves the record for a single date.
func (c *Client) Fetch(ctx context.Context, date daterange.Date) (Record, error) {
	params := url.Values{}
	params.Set("date", date.String())

	recs, err := c.get(ctx, params)
	if err != nil {
		return Record{}, err
	}
	if len(recs) != 1 {
		return Record{}, fmt.Errorf("got %d records for date %s, want 1", len(recs), date)
	}
	return recs[0], nil
}

// FetchRange retrieves all records in the inclusive range, in the API's
// ascending date order. The date and start/end parameters are mutually
// exclusive on the API side; this method only ever sends the pair.
func (c *Client) FetchRange(ctx context.Context, r daterange.Range) ([]Record, error) {
	params := url.Values{}
	params.Set("start_date", r.Start.String())
	params.Set("end_date", r.End.String())

	return c.get(ctx, params)
}

func (c *Client) get(ctx context.Context, params url.Values) ([]Record, error) {
	params.Set("api_key", c.opts.APIKey)
	requestURL := c.opts.Endpoint + "?" + params.Encode()

	var body json.RawMessage
	if err := c.http.GetJSON(ctx, requestURL, &body); err != nil {
		return nil, fmt.Errorf("fetch apod metadata: %w", err)
	}

	recs, err := normalize(body)
	if err != nil {
		return nil, fmt.Errorf("fetch apod metadata: %w", err)
	}
	return recs, nil
}
