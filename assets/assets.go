// Package assets embeds the static files metsearch ships with.
package assets

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// FallbackImageName is the file name of the placeholder image.
const FallbackImageName = "notAvailable1.jpg"

// FallbackImage is the placeholder shown for objects without an image.
//
//go:embed notAvailable1.jpg
var FallbackImage []byte

// EnsureFile writes the placeholder image to path unless a file is already
// there. Parent directories are created as needed.
func EnsureFile(path string) error {
	if path == "" {
		return errors.New("fallback image path is empty")
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, os.ErrNotExist) {
		return errors.Wrap(err, "stat fallback image")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "create fallback image dir")
	}
	if err := os.WriteFile(path, FallbackImage, 0o644); err != nil {
		return errors.Wrap(err, "write fallback image")
	}
	return nil
}
