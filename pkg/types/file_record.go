package types

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileRecord is the scanner's view of a single directory entry. Records are
// built once during a scan and never mutated or persisted.
type FileRecord struct {
	Path     string `json:"path"` // Absolute path to the file.
	Name     string `json:"name"` // Base name including extension.
	Ext      string `json:"ext"`  // Lowercase extension with leading dot, "" if none.
	Size     int64  `json:"size"`
	TopLevel bool   `json:"top_level"`
}

// NewFileRecord derives a record from an absolute path and size.
func NewFileRecord(path string, size int64) FileRecord {
	name := filepath.Base(path)
	return FileRecord{
		Path:     path,
		Name:     name,
		Ext:      strings.ToLower(filepath.Ext(name)),
		Size:     size,
		TopLevel: true,
	}
}

// Stem returns the base name without its extension.
func (f FileRecord) Stem() string {
	return strings.TrimSuffix(f.Name, filepath.Ext(f.Name))
}

// String returns a human-readable representation.
func (f FileRecord) String() string {
	return fmt.Sprintf("%s (%d bytes)", f.Name, f.Size)
}
