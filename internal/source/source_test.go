package source

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "main.py")
	content := "print('hello')\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	f, err := LoadFile(path, 1024)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if f.Name != "main.py" {
		t.Errorf("Name = %q", f.Name)
	}
	if f.Language != "python" {
		t.Errorf("Language = %q, want python", f.Language)
	}
	if f.Content != content {
		t.Errorf("Content = %q", f.Content)
	}
	if f.Size != int64(len(content)) {
		t.Errorf("Size = %d", f.Size)
	}
}

func TestLoadFileOversize(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "big.go")
	if err := os.WriteFile(path, []byte(strings.Repeat("x", 100)), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFile(path, 10)
	if err == nil {
		t.Fatal("expected error for oversize file")
	}
	if !strings.Contains(err.Error(), "exceeds limit") {
		t.Errorf("err = %v", err)
	}
}

func TestLoadFileRejectsDirectory(t *testing.T) {
	if _, err := LoadFile(t.TempDir(), 1024); err == nil {
		t.Error("expected error for directory")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.py"), 1024); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestFromReader(t *testing.T) {
	f, err := FromReader(strings.NewReader("x = 1"), "", "", 1024)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if f.Name != "snippet.py" {
		t.Errorf("Name = %q, want snippet.py default", f.Name)
	}
	if f.Language != "python" {
		t.Errorf("Language = %q", f.Language)
	}
}

func TestFromReaderExplicitLanguage(t *testing.T) {
	f, err := FromReader(strings.NewReader("fn main() {}"), "main.rs", "", 1024)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if f.Language != "rust" {
		t.Errorf("Language = %q, want rust from extension", f.Language)
	}

	f, err = FromReader(strings.NewReader("code"), "whatever.txt", "kotlin", 1024)
	if err != nil {
		t.Fatalf("FromReader: %v", err)
	}
	if f.Language != "kotlin" {
		t.Errorf("Language = %q, want explicit kotlin", f.Language)
	}
}

func TestFromReaderOversize(t *testing.T) {
	if _, err := FromReader(strings.NewReader(strings.Repeat("x", 50)), "", "", 10); err == nil {
		t.Error("expected error for oversize input")
	}
}
