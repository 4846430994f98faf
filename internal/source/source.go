package source

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cwray/audex/internal/analysis"
)

// File is a unit of code ready for auditing.
type File struct {
	Path     string
	Name     string
	Language string
	Size     int64
	Content  string
}

// LoadFile reads a file from disk, enforcing the size limit and detecting
// the language from the extension. Oversize files are rejected before any
// API call is made.
func LoadFile(path string, maxBytes int64) (File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return File{}, fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return File{}, fmt.Errorf("%s is a directory", path)
	}
	if maxBytes > 0 && info.Size() > maxBytes {
		return File{}, fmt.Errorf("%s is %d bytes, exceeds limit of %d", path, info.Size(), maxBytes)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading %s: %w", path, err)
	}
	name := filepath.Base(path)
	return File{
		Path:     path,
		Name:     name,
		Language: analysis.DetectLanguage(name),
		Size:     info.Size(),
		Content:  string(data),
	}, nil
}

// FromReader builds a File from an arbitrary reader (typically stdin). The
// name is used for language detection unless lang is set explicitly.
func FromReader(r io.Reader, name, lang string, maxBytes int64) (File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return File{}, fmt.Errorf("reading input: %w", err)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return File{}, fmt.Errorf("input is %d bytes, exceeds limit of %d", len(data), maxBytes)
	}
	if name == "" {
		name = "snippet.py"
	}
	if lang == "" {
		lang = analysis.DetectLanguage(name)
	}
	return File{
		Path:     name,
		Name:     filepath.Base(name),
		Language: lang,
		Size:     int64(len(data)),
		Content:  string(data),
	}, nil
}
