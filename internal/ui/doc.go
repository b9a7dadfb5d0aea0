// Package ui renders metsearch as a Bubble Tea terminal program.
//
// # Layout
//
//	┌ header: title, result count, viewed count, activity spinner ┐
//	┌─────────────────────── Search ───────────────────────┐
//	│ › query                                              │
//	└──────────────────────────────────────────────────────┘
//	┌── Results ──┐┌──────────── Object 205 ────────────────┐
//	│● 101        ││ Vase                                   │
//	│● 205        ││ Unknown                                │
//	│  436535     ││ src / alt / title                      │
//	└─────────────┘└────────────────────────────────────────┘
//	 footer: key help or the result of the last action
//
// # State
//
// The model never owns browsing state. It holds the latest state.Snapshot
// and re-reads it whenever the store notifies (snapshotMsg) or a controller
// call returns (requestDoneMsg). Notifications carry the store version so a
// late delivery cannot roll the view back.
//
// The search field is controlled: each edit calls Controller.SetQuery and the
// field is reset from Snapshot.Query on every update. Enter in the field
// submits the query as typed, including an empty one. Enter on a result row
// selects that object. Neither shows errors; failures only reach the
// diagnostics log.
//
// # Keys
//
// Tab and Shift+Tab move focus between the search field, the result list and
// the detail panel. While the search field is focused it receives every key
// except Tab, Shift+Tab, Esc and Ctrl+C. Elsewhere:
//
//	j/k, g/G, pgup/pgdown  move in the list or scroll the details
//	/                      focus the search field
//	y / Y                  copy object id / image URL
//	o                      open the image in the system viewer
//	T                      cycle theme (saved to prefs)
//	?                      help overlay
//	q, ctrl+c              quit
package ui
