package collection

import (
	"bytes"
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/metsearch/internal/met"
	"github.com/five82/metsearch/internal/state"
)

type fakeFetcher struct {
	mu       sync.Mutex
	queries  []string
	objects  []met.ObjectID
	search   func(query string) (met.SearchResponse, error)
	fetchObj func(id met.ObjectID) (met.Object, error)
}

func (f *fakeFetcher) Search(_ context.Context, query string) (met.SearchResponse, error) {
	f.mu.Lock()
	f.queries = append(f.queries, query)
	f.mu.Unlock()
	return f.search(query)
}

func (f *fakeFetcher) FetchObject(_ context.Context, id met.ObjectID) (met.Object, error) {
	f.mu.Lock()
	f.objects = append(f.objects, id)
	f.mu.Unlock()
	return f.fetchObj(id)
}

func ids(values ...string) []met.ObjectID {
	out := make([]met.ObjectID, len(values))
	for i, v := range values {
		out[i] = met.ObjectID(v)
	}
	return out
}

func TestRunSearch_IssuesOneRequestWithCurrentQuery(t *testing.T) {
	for _, query := range []string{"sunflowers", "", "  spaced  ", "a&b"} {
		f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
			return met.SearchResponse{ObjectIDs: ids("1")}, nil
		}}
		c := New(f, nil)
		c.SetQuery(query)

		require.NoError(t, c.RunSearch(context.Background()))
		assert.Equal(t, []string{query}, f.queries)
	}
}

func TestRunSearch_ReplacesResultsInServerOrder(t *testing.T) {
	f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
		return met.SearchResponse{Total: 3, ObjectIDs: ids("1", "2", "3")}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.RunSearch(context.Background()))
	assert.Equal(t, ids("1", "2", "3"), c.Snapshot().Results)
}

func TestRunSearch_MissingIDsYieldsEmptyResults(t *testing.T) {
	calls := 0
	f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
		calls++
		if calls == 1 {
			return met.SearchResponse{ObjectIDs: ids("5", "6")}, nil
		}
		return met.SearchResponse{Total: 0}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.RunSearch(context.Background()))
	require.NoError(t, c.RunSearch(context.Background()))

	results := c.Snapshot().Results
	assert.NotNil(t, results)
	assert.Empty(t, results)
}

func TestRunSearch_FailureKeepsResultsAndLogs(t *testing.T) {
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fail := false
	f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
		if fail {
			return met.SearchResponse{}, errors.Mark(errors.New("boom"), met.ErrNetwork)
		}
		return met.SearchResponse{ObjectIDs: ids("1", "2")}, nil
	}}
	c := New(f, nil, WithLogger(logger))
	c.SetQuery("vase")

	require.NoError(t, c.RunSearch(context.Background()))
	fail = true
	err := c.RunSearch(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, met.ErrNetwork))
	assert.Equal(t, ids("1", "2"), c.Snapshot().Results)
	assert.Equal(t, 0, c.Snapshot().Pending)
	assert.Contains(t, logs.String(), "search failed")
	assert.Contains(t, logs.String(), "kind=network")
	assert.Contains(t, logs.String(), "request_id=")
}

func TestRunSearch_SameQueryTwiceIsIdempotent(t *testing.T) {
	f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
		return met.SearchResponse{ObjectIDs: ids("9", "4", "9")}, nil
	}}
	c := New(f, nil)
	c.SetQuery("armor")

	require.NoError(t, c.RunSearch(context.Background()))
	first := c.Snapshot().Results
	require.NoError(t, c.RunSearch(context.Background()))

	assert.Equal(t, first, c.Snapshot().Results)
	assert.Equal(t, ids("9", "4", "9"), first)
}

func TestRunSearch_LastResolvedWins(t *testing.T) {
	started := make(chan string, 2)
	release := map[string]chan struct{}{
		"a": make(chan struct{}),
		"b": make(chan struct{}),
	}
	f := &fakeFetcher{search: func(query string) (met.SearchResponse, error) {
		started <- query
		<-release[query]
		return met.SearchResponse{ObjectIDs: ids(query)}, nil
	}}
	c := New(f, nil)

	done := make(chan struct{}, 2)
	run := func() {
		_ = c.RunSearch(context.Background())
		done <- struct{}{}
	}

	c.SetQuery("a")
	go run()
	require.Equal(t, "a", <-started)
	c.SetQuery("b")
	go run()
	require.Equal(t, "b", <-started)

	close(release["b"])
	<-done
	assert.Equal(t, ids("b"), c.Snapshot().Results)

	close(release["a"])
	<-done
	assert.Equal(t, ids("a"), c.Snapshot().Results, "the older request resolved last and wins")
}

func TestSelectObject_EmptyImageFallsBack(t *testing.T) {
	f := &fakeFetcher{fetchObj: func(met.ObjectID) (met.Object, error) {
		return met.Object{met.FieldTitle: "Vase", met.FieldPrimaryImageSmall: ""}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.SelectObject(context.Background(), "205"))

	selected := c.Snapshot().Selected
	assert.Equal(t, DefaultFallbackImage, selected.PrimaryImageSmall())
	assert.Equal(t, "Vase", selected.Title())
}

func TestSelectObject_CustomFallbackPath(t *testing.T) {
	f := &fakeFetcher{fetchObj: func(met.ObjectID) (met.Object, error) {
		return met.Object{met.FieldPrimaryImageSmall: ""}, nil
	}}
	c := New(f, nil, WithFallbackImage("/srv/assets/none.jpg"))

	require.NoError(t, c.SelectObject(context.Background(), "1"))
	assert.Equal(t, "/srv/assets/none.jpg", c.Snapshot().Selected.PrimaryImageSmall())
	assert.Equal(t, "/srv/assets/none.jpg", c.FallbackImage())
}

func TestSelectObject_ImagePassesThrough(t *testing.T) {
	const src = "https://images.metmuseum.org/CRDImages/ep/web-large/DT1567.jpg"
	f := &fakeFetcher{fetchObj: func(met.ObjectID) (met.Object, error) {
		return met.Object{met.FieldPrimaryImageSmall: src}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.SelectObject(context.Background(), "436535"))
	assert.Equal(t, src, c.Snapshot().Selected.PrimaryImageSmall())
}

func TestSelectObject_AbsentImageStaysAbsent(t *testing.T) {
	f := &fakeFetcher{fetchObj: func(met.ObjectID) (met.Object, error) {
		return met.Object{met.FieldTitle: "Untitled"}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.SelectObject(context.Background(), "3"))
	assert.False(t, c.Snapshot().Selected.Has(met.FieldPrimaryImageSmall))
}

func TestSelectObject_FailureKeepsPreviousSelection(t *testing.T) {
	f := &fakeFetcher{fetchObj: func(id met.ObjectID) (met.Object, error) {
		if id == "404" {
			return nil, errors.Mark(&met.StatusError{Path: "/objects/404", StatusCode: http.StatusNotFound}, met.ErrHTTPStatus)
		}
		return met.Object{met.FieldTitle: "Vase"}, nil
	}}
	c := New(f, nil)

	require.Error(t, c.SelectObject(context.Background(), "404"))
	assert.False(t, c.Snapshot().HasSelection(), "empty selection stays empty")

	require.NoError(t, c.SelectObject(context.Background(), "1"))
	require.Error(t, c.SelectObject(context.Background(), "404"))
	assert.Equal(t, "Vase", c.Snapshot().Selected.Title(), "loaded selection stays loaded")
}

func TestSelectObject_MarksAccumulate(t *testing.T) {
	f := &fakeFetcher{fetchObj: func(id met.ObjectID) (met.Object, error) {
		if id == "bad" {
			return nil, errors.Mark(errors.New("eof"), met.ErrParse)
		}
		return met.Object{met.FieldTitle: id.String()}, nil
	}}
	c := New(f, nil)

	require.NoError(t, c.SelectObject(context.Background(), "101"))
	require.NoError(t, c.SelectObject(context.Background(), "205"))
	require.Error(t, c.SelectObject(context.Background(), "bad"))

	snap := c.Snapshot()
	assert.True(t, snap.IsMarked("101"))
	assert.True(t, snap.IsMarked("205"))
	assert.True(t, snap.IsMarked("bad"), "entries are marked before the fetch resolves")
	assert.Equal(t, ids("101", "205", "bad"), f.objects)
}

func TestIngest_DoesNotMutateInput(t *testing.T) {
	in := met.Object{met.FieldPrimaryImageSmall: ""}
	out := ingest(in, "x.jpg")

	assert.Equal(t, "", in.PrimaryImageSmall())
	assert.Equal(t, "x.jpg", out.PrimaryImageSmall())
}

func TestController_NotifiesSubscribers(t *testing.T) {
	f := &fakeFetcher{search: func(string) (met.SearchResponse, error) {
		return met.SearchResponse{ObjectIDs: ids("1")}, nil
	}}
	store := &state.Store{}
	c := New(f, store)

	var versions []uint64
	c.Subscribe(func(s state.Snapshot) { versions = append(versions, s.Version) })

	c.SetQuery("q")
	require.NoError(t, c.RunSearch(context.Background()))

	// SetQuery, BeginRequest, SetResults, EndRequest.
	assert.Equal(t, []uint64{1, 2, 3, 4}, versions)
}

func TestEndToEnd_SearchSelectAndFallback(t *testing.T) {
	var searchQueries []string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case strings.HasSuffix(r.URL.Path, "/search"):
			searchQueries = append(searchQueries, r.URL.Query().Get("q"))
			_, _ = w.Write([]byte(`{"total":2,"objectIDs":[101,205]}`))
		case strings.HasSuffix(r.URL.Path, "/objects/205"):
			_, _ = w.Write([]byte(`{"title":"Vase","artistDisplayName":"Unknown","primaryImageSmall":""}`))
		default:
			http.NotFound(w, r)
		}
	}))
	t.Cleanup(server.Close)

	client, err := met.NewClient(server.URL+"/public/collection/v1", 0)
	require.NoError(t, err)
	c := New(client, nil)

	assert.False(t, c.Snapshot().HasSelection())

	c.SetQuery("vase")
	require.NoError(t, c.RunSearch(context.Background()))
	assert.Equal(t, []string{"vase"}, searchQueries)
	assert.Equal(t, ids("101", "205"), c.Snapshot().Results)

	require.NoError(t, c.SelectObject(context.Background(), c.Snapshot().Results[1]))
	selected := c.Snapshot().Selected
	assert.Equal(t, "Vase", selected.Title())
	assert.Equal(t, "Unknown", selected.ArtistDisplayName())
	assert.Equal(t, DefaultFallbackImage, selected.PrimaryImageSmall())

	err = c.SelectObject(context.Background(), "999")
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, met.StatusCode(err))
	assert.Equal(t, "Vase", c.Snapshot().Selected.Title())
}

func TestSelectObject_MarksFollowIdentifierAcrossSearches(t *testing.T) {
	results := ids("9", "4", "9")
	f := &fakeFetcher{
		search: func(string) (met.SearchResponse, error) {
			return met.SearchResponse{ObjectIDs: results}, nil
		},
		fetchObj: func(id met.ObjectID) (met.Object, error) {
			return met.Object{met.FieldTitle: id.String()}, nil
		},
	}
	c := New(f, nil)

	require.NoError(t, c.RunSearch(context.Background()))
	require.NoError(t, c.SelectObject(context.Background(), "9"))

	snap := c.Snapshot()
	for i, id := range snap.Results {
		assert.Equal(t, id == "9", snap.IsMarked(id), "row %d (%s)", i, id)
	}

	results = ids("4", "9")
	require.NoError(t, c.RunSearch(context.Background()))
	snap = c.Snapshot()
	assert.False(t, snap.IsMarked(snap.Results[0]), "row position does not carry the mark")
	assert.True(t, snap.IsMarked(snap.Results[1]), "the identifier does")
}
