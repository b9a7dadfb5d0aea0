package assets

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestFallbackImage_IsJPEG(t *testing.T) {
	if !bytes.HasPrefix(FallbackImage, []byte{0xFF, 0xD8, 0xFF}) {
		t.Fatalf("embedded image does not start with a JPEG marker")
	}
}

func TestEnsureFile_WritesWhenMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", FallbackImageName)
	if err := EnsureFile(path); err != nil {
		t.Fatalf("EnsureFile returned error: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !bytes.Equal(got, FallbackImage) {
		t.Fatalf("written file differs from embedded image")
	}
}

func TestEnsureFile_KeepsExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), FallbackImageName)
	if err := os.WriteFile(path, []byte("custom"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if err := EnsureFile(path); err != nil {
		t.Fatalf("EnsureFile returned error: %v", err)
	}
	got, _ := os.ReadFile(path)
	if string(got) != "custom" {
		t.Fatalf("EnsureFile overwrote an existing file: %q", got)
	}
}

func TestEnsureFile_EmptyPath(t *testing.T) {
	if err := EnsureFile(""); err == nil {
		t.Fatalf("EnsureFile(\"\") returned nil error")
	}
}
