// Package logtail reads and colorizes the metsearch diagnostics log.
//
// Read extracts the last N lines of a file with a ring buffer, so memory
// stays at O(N) regardless of file size. A missing file yields nil, nil;
// other I/O errors are returned wrapped.
//
// Colorizer highlights records written by slog's text handler
// (time=... level=INFO msg="..." key=value). Level values are colored by
// severity, request and object ids stand out, and failure attributes are
// red. Rendering goes through a lipgloss renderer, so output to a pipe or a
// dumb terminal stays plain text.
//
//	lines, err := logtail.Read(path, 200)
//	if err != nil {
//		return err
//	}
//	for _, line := range logtail.NewColorizer(nil).Lines(lines) {
//		fmt.Println(line)
//	}
package logtail
