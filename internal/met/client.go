package met

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Fetcher defines the two collection endpoints metsearch reads.
// This interface is implemented by *Client and can be used for testing.
type Fetcher interface {
	Search(ctx context.Context, query string) (SearchResponse, error)
	FetchObject(ctx context.Context, id ObjectID) (Object, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

// Client talks to the collection HTTP API.
type Client struct {
	baseURL   *url.URL
	http      *http.Client
	userAgent string
}

const (
	// DefaultBaseURL is the public collection API root.
	DefaultBaseURL   = "https://collectionapi.metmuseum.org/public/collection/v1"
	defaultUserAgent = "metsearch/0.1"
)

var tracer = otel.Tracer("github.com/five82/metsearch/internal/met")

// NewClient builds a Client rooted at baseURL. A zero timeout leaves
// requests unbounded.
func NewClient(baseURL string, timeout time.Duration) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	return &Client{
		baseURL: base,
		http: &http.Client{
			Timeout: timeout,
		},
		userAgent: defaultUserAgent,
	}, nil
}

// Search runs a free-text query against /search.
func (c *Client) Search(ctx context.Context, query string) (SearchResponse, error) {
	if c == nil {
		return SearchResponse{}, errors.New("client is nil")
	}
	ctx, span := tracer.Start(ctx, "met.Search", trace.WithAttributes(
		attribute.String("met.endpoint", "search"),
	))
	defer span.End()

	values := url.Values{}
	values.Set("q", query)
	u := c.baseURL.JoinPath("search")
	u.RawQuery = values.Encode()

	var payload SearchResponse
	if err := c.get(ctx, u, &payload); err != nil {
		recordError(span, err)
		return SearchResponse{}, err
	}
	span.SetAttributes(attribute.Int("met.results", len(payload.ObjectIDs)))
	return payload, nil
}

// FetchObject retrieves the full record for one identifier.
func (c *Client) FetchObject(ctx context.Context, id ObjectID) (Object, error) {
	if c == nil {
		return nil, errors.New("client is nil")
	}
	ctx, span := tracer.Start(ctx, "met.FetchObject", trace.WithAttributes(
		attribute.String("met.endpoint", "objects"),
		attribute.String("met.object_id", id.String()),
	))
	defer span.End()

	u := c.baseURL.JoinPath("objects", id.String())

	var payload Object
	if err := c.get(ctx, u, &payload); err != nil {
		recordError(span, err)
		return nil, err
	}
	// A bare null decodes without error but is not an object record.
	if payload == nil {
		err := errors.Mark(errors.Newf("object %s: payload is not a JSON object", id), ErrParse)
		recordError(span, err)
		return nil, err
	}
	return payload, nil
}

func (c *Client) get(ctx context.Context, u *url.URL, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return errors.Wrap(err, "create request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Mark(errors.Wrap(err, "execute request"), ErrNetwork)
	}
	defer func() { _ = resp.Body.Close() }()

	trace.SpanFromContext(ctx).SetAttributes(attribute.Int("http.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return errors.Mark(&StatusError{Path: u.Path, StatusCode: resp.StatusCode}, ErrHTTPStatus)
	}

	decoder := json.NewDecoder(resp.Body)
	decoder.UseNumber()
	if err := decoder.Decode(dest); err != nil {
		return errors.Mark(errors.Wrap(err, "decode response"), ErrParse)
	}
	return nil
}

func recordError(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, Kind(err))
}

// parseBaseURL normalises baseURL for NewClient. Config loading already
// requires a scheme; the https default only applies to direct callers.
func parseBaseURL(raw string) (*url.URL, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	if !strings.Contains(trimmed, "://") {
		trimmed = "https://" + trimmed
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, errors.Wrapf(err, "parse api_base %q", raw)
	}
	u.Path = strings.TrimRight(u.Path, "/")
	u.RawPath = ""
	u.RawQuery = ""
	u.Fragment = ""
	return u, nil
}
