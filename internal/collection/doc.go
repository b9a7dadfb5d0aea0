// Package collection implements the controller that owns metsearch's browsing
// state and performs every request to the collection API.
//
// # Overview
//
// A Controller wraps a met.Fetcher and a state.Store. Views never mutate the
// store themselves; they call the controller and read snapshots:
//
//	ui.Model ──SetQuery/RunSearch/SelectObject──> Controller ──> met.Fetcher
//	    ▲                                             │
//	    │                                             ▼
//	    └──────────── Subscribe / Snapshot ─────── state.Store
//
// # Operations
//
//	SetQuery(q)        store q verbatim, no trimming or validation
//	RunSearch(ctx)     one GET /search with the current query
//	SelectObject(id)   mark id, then GET /objects/{id}
//
// RunSearch replaces the result list in server order. A response without
// objectIDs, or with null, yields an empty list. SelectObject replaces the
// selected object wholesale after ingestion, which substitutes the fallback
// image path for an empty primaryImageSmall. An absent field stays absent.
//
// Marks are added before the fetch and never removed.
//
// # Failures
//
// Network, status and parse failures are all handled the same way: the
// relevant state is left as it was, and the failure is logged with its kind,
// a ksuid request_id and, for objects, the object_id. The error is also
// returned, but the UI discards it.
//
// # Concurrency
//
// Calls may run concurrently from Bubble Tea commands. There is no
// cancellation or sequencing, so the last request to resolve wins. Each
// call brackets its request with BeginRequest/EndRequest so the UI can show
// activity.
//
// # Usage
//
//	client, _ := met.NewClient(met.DefaultBaseURL, 0)
//	ctrl := collection.New(client, &state.Store{},
//		collection.WithLogger(logger),
//		collection.WithFallbackImage("./notAvailable1.jpg"),
//	)
//	ctrl.SetQuery("sunflowers")
//	_ = ctrl.RunSearch(ctx)
package collection
