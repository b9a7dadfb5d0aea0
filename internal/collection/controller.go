package collection

import (
	"context"
	"io"
	"log/slog"

	"github.com/segmentio/ksuid"

	"github.com/five82/metsearch/internal/met"
	"github.com/five82/metsearch/internal/state"
)

// DefaultFallbackImage is stored in place of an empty primaryImageSmall.
const DefaultFallbackImage = "./notAvailable1.jpg"

// Controller owns the browsing state and performs all API I/O. Views read
// snapshots and call these methods; they never touch the store directly.
type Controller struct {
	client        met.Fetcher
	store         *state.Store
	logger        *slog.Logger
	fallbackImage string
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the diagnostics logger. Failures are only ever reported
// there.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithFallbackImage overrides the path stored for objects without an image.
func WithFallbackImage(path string) Option {
	return func(c *Controller) {
		if path != "" {
			c.fallbackImage = path
		}
	}
}

// New builds a Controller around client and store. A nil store gets a fresh
// one.
func New(client met.Fetcher, store *state.Store, opts ...Option) *Controller {
	if store == nil {
		store = &state.Store{}
	}
	c := &Controller{
		client:        client,
		store:         store,
		logger:        slog.New(slog.NewTextHandler(io.Discard, nil)),
		fallbackImage: DefaultFallbackImage,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FallbackImage returns the path substituted for missing images.
func (c *Controller) FallbackImage() string {
	return c.fallbackImage
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() state.Snapshot {
	return c.store.Snapshot()
}

// Subscribe registers fn for state changes. See state.Store.Subscribe.
func (c *Controller) Subscribe(fn state.Listener) func() {
	return c.store.Subscribe(fn)
}

// SetQuery records the search field's text. No validation or trimming.
func (c *Controller) SetQuery(query string) {
	c.store.SetQuery(query)
}

// RunSearch queries the API with the current query text. On success the
// result list is replaced; on failure it is left as it was and the error is
// logged. The error is returned for callers that care; the UI does not.
func (c *Controller) RunSearch(ctx context.Context) error {
	query := c.store.Snapshot().Query
	log := c.logger.With("request_id", ksuid.New().String(), "op", "search")
	log.Debug("search started", "query", query)

	c.store.BeginRequest()
	defer c.store.EndRequest()

	resp, err := c.client.Search(ctx, query)
	if err != nil {
		log.Error("search failed", "query", query, "kind", met.Kind(err), "error", err)
		return err
	}

	ids := resp.ObjectIDs
	if ids == nil {
		ids = []met.ObjectID{}
	}
	c.store.SetResults(ids)
	log.Info("search completed", "query", query, "results", len(ids), "total", resp.Total)
	return nil
}

// SelectObject marks id in the list and loads its record. On success the
// record replaces the selected object; on failure the selection is left as it
// was and the error is logged.
func (c *Controller) SelectObject(ctx context.Context, id met.ObjectID) error {
	log := c.logger.With("request_id", ksuid.New().String(), "op", "object", "object_id", id.String())
	c.store.Mark(id)
	log.Debug("object fetch started")

	c.store.BeginRequest()
	defer c.store.EndRequest()

	obj, err := c.client.FetchObject(ctx, id)
	if err != nil {
		log.Error("object fetch failed", "kind", met.Kind(err), "status", met.StatusCode(err), "error", err)
		return err
	}

	c.store.SetSelected(ingest(obj, c.fallbackImage))
	log.Info("object fetch completed", "title", obj.Title())
	return nil
}

// ingest applies the one substitution made to fetched records: an empty
// image URL becomes the local fallback. An absent field is left absent.
func ingest(obj met.Object, fallback string) met.Object {
	out := obj.Clone()
	if v, ok := out[met.FieldPrimaryImageSmall]; ok {
		if s, isString := v.(string); isString && s == "" {
			out[met.FieldPrimaryImageSmall] = fallback
		}
	}
	return out
}
