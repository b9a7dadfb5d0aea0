package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLogsCommand_PrintsTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "metsearch.log")
	content := "level=INFO msg=one\nlevel=INFO msg=two\nlevel=ERROR msg=three\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	a.ErrWriter = &out
	if err := a.RunContext(context.Background(), []string{"metsearch", "--log-file", path, "logs", "-n", "2"}); err != nil {
		t.Fatalf("logs returned error: %v", err)
	}

	got := out.String()
	if strings.Contains(got, "one") {
		t.Fatalf("output includes a line beyond the tail:\n%s", got)
	}
	if !strings.Contains(got, "two") || !strings.Contains(got, "three") {
		t.Fatalf("output missing tail lines:\n%s", got)
	}
}

func TestLogsCommand_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "none.log")

	var out bytes.Buffer
	a := newApp()
	a.Writer = &out
	a.ErrWriter = &out
	if err := a.RunContext(context.Background(), []string{"metsearch", "--log-file", path, "logs"}); err != nil {
		t.Fatalf("logs returned error: %v", err)
	}
	if !strings.Contains(out.String(), "no diagnostics recorded") {
		t.Fatalf("output = %q, want a hint", out.String())
	}
}
