// Package state holds the browsing state shared by the controller and the UI.
//
// # Overview
//
// A single Store owns the three pieces of state the application has:
//
//   - Query: the text in the search field
//   - Results: the identifiers returned by the last successful search
//   - Selected: the object returned by the last successful detail fetch
//
// plus the set of list entries marked as selected and a count of requests in
// flight for the activity indicator.
//
// # Ownership
//
// Only the collection controller calls the mutating methods. Views read
// snapshots and never write back:
//
//	collection.Controller ──SetResults/SetSelected/Mark──> Store
//	                                                         │
//	                                           Subscribe ────┘
//	                                               │
//	                                               ▼
//	                                      ui.Model re-reads Snapshot()
//
// # Concurrency Model
//
// Bubble Tea runs commands on their own goroutines, so two requests can
// complete at the same time. Every mutation takes the write lock, bumps
// Version and copies the snapshot; listeners are then called outside the lock
// with that copy. Completion order decides the final state: the last request
// to resolve wins.
//
// # Snapshots
//
// Snapshot returns deep copies of Results, Selected and Marked, so callers
// may keep or modify them freely.
package state
