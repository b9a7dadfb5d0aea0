// Package app is the composition root of metsearch.
//
// Run performs, in order:
//
//  1. Load ~/.config/metsearch/config.toml (or the --config path)
//  2. Open the diagnostics log (slog text handler, append-only)
//  3. Load UI preferences; a broken prefs file is logged and ignored
//  4. Build the collection API client, the state store and the controller
//  5. Run the Bubble Tea UI until the user quits or the context is cancelled
//
// Nothing is polled. State changes only in response to user actions, and the
// UI learns about them through the store's subscription.
//
// ResolveLogPath serves the `metsearch logs` subcommand, which reads the same
// file without starting the UI.
package app
