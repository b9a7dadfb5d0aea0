// Package met provides an HTTP client for the Metropolitan Museum of Art
// collection API.
//
// # Endpoints
//
// Two read-only endpoints are used:
//
//   - GET {base}/search?q={query}: returns {"total": N, "objectIDs": [...]}
//   - GET {base}/objects/{id}: returns the full record for one object
//
// The base defaults to DefaultBaseURL and can be overridden through the
// api_base config key, which is mostly useful for tests and mirrors.
//
// # Types
//
// ObjectID is kept as text so identifiers round-trip verbatim from the search
// response into the detail URL, whether the API sends numbers or strings.
//
// Object is the decoded detail payload as a field map rather than a struct:
// the UI shows a handful of recognised fields, but the record is stored whole
// and an empty map is the "nothing selected" state. Accessors such as Title
// and PrimaryImageSmall return "" for missing or null fields.
//
// # Errors
//
// Every failure is marked with one of ErrNetwork, ErrHTTPStatus or ErrParse
// (cockroachdb/errors marks), so callers can classify with errors.Is while
// keeping the wrapped context:
//
//	obj, err := client.FetchObject(ctx, id)
//	if errors.Is(err, met.ErrHTTPStatus) {
//		log.Printf("status %d", met.StatusCode(err))
//	}
//
// A 2xx response whose body is not JSON, or a detail body that is not a JSON
// object, is a parse failure.
//
// # Tracing
//
// Search and FetchObject each run in an OpenTelemetry span from the global
// tracer provider. Without an installed provider the spans are no-ops.
//
// # Request Handling
//
// All requests:
//   - Use context for cancellation
//   - Set Accept: application/json
//   - Set User-Agent: metsearch/0.1
//   - Have no timeout unless one is passed to NewClient
package met
