package app

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
)

// openDiagnostics opens the append-only diagnostics log. The terminal is owned
// by the TUI, so this file is the only place failures are reported.
func openDiagnostics(path string, debug bool) (*slog.Logger, func(), error) {
	if path == "" {
		return nil, nil, errors.New("diagnostics log path is empty")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, errors.Wrapf(err, "create log dir for %s", path)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, errors.Wrapf(err, "open log %s", path)
	}

	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(file, &slog.HandlerOptions{Level: level}))
	return logger, func() { _ = file.Close() }, nil
}
