// Package config loads metsearch's TOML configuration.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/metsearch/config.toml (default)
//  3. If the config file doesn't exist, fall back to built-in defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Keys
//
//	api_base         collection API root
//	                 (default https://collectionapi.metmuseum.org/public/collection/v1)
//	fallback_image   path stored for objects without an image (default ./notAvailable1.jpg)
//	log_file         diagnostics log (default ~/.local/state/metsearch/metsearch.log)
//	request_timeout  Go duration; empty or "0s" means requests never time out
//
// All values are trimmed. log_file has ~ expanded and is made absolute;
// fallback_image is kept as written because it is stored into object
// records and shown in the UI.
//
// # Errors
//
// A missing file is not an error. Unreadable files, invalid TOML and bad
// durations are returned wrapped with the step that failed. The resolved
// config is then checked with go-playground/validator: api_base must be an
// absolute http or https URL.
package config
