package app

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestOpenDiagnostics_CreatesDirAndAppends(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state", "metsearch", "metsearch.log")

	logger, closeLog, err := openDiagnostics(path, false)
	if err != nil {
		t.Fatalf("openDiagnostics returned error: %v", err)
	}
	logger.Info("search completed", "request_id", "2Fh8", "results", 2)
	logger.Debug("search started")
	closeLog()

	logger, closeLog, err = openDiagnostics(path, true)
	if err != nil {
		t.Fatalf("second openDiagnostics returned error: %v", err)
	}
	logger.Debug("object fetch started", "object_id", "205")
	closeLog()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	text := string(data)
	if !strings.Contains(text, `msg="search completed"`) || !strings.Contains(text, "request_id=2Fh8") {
		t.Fatalf("log missing first record:\n%s", text)
	}
	if strings.Contains(text, `msg="search started"`) {
		t.Fatalf("debug record written at info level:\n%s", text)
	}
	if !strings.Contains(text, "object_id=205") {
		t.Fatalf("log missing appended debug record:\n%s", text)
	}
}

func TestOpenDiagnostics_EmptyPath(t *testing.T) {
	if _, _, err := openDiagnostics("", false); err == nil {
		t.Fatalf("openDiagnostics(\"\") returned nil error")
	}
}

func TestResolveLogPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	got, err := ResolveLogPath(filepath.Join(home, "missing.toml"), "")
	if err != nil {
		t.Fatalf("ResolveLogPath returned error: %v", err)
	}
	if want := filepath.Join(home, ".local", "state", "metsearch", "metsearch.log"); got != want {
		t.Fatalf("ResolveLogPath default = %q, want %q", got, want)
	}

	cfgPath := filepath.Join(home, "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`log_file = "~/logs/m.log"`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got, err = ResolveLogPath(cfgPath, "")
	if err != nil {
		t.Fatalf("ResolveLogPath returned error: %v", err)
	}
	if want := filepath.Join(home, "logs", "m.log"); got != want {
		t.Fatalf("ResolveLogPath from config = %q, want %q", got, want)
	}

	got, err = ResolveLogPath(cfgPath, "~/override.log")
	if err != nil {
		t.Fatalf("ResolveLogPath returned error: %v", err)
	}
	if want := filepath.Join(home, "override.log"); got != want {
		t.Fatalf("ResolveLogPath override = %q, want %q", got, want)
	}
}

func TestResolveLogPath_BadConfig(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(cfgPath, []byte(`log_file = [`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := ResolveLogPath(cfgPath, ""); err == nil {
		t.Fatalf("ResolveLogPath returned nil error for invalid config")
	}
}
