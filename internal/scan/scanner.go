// Package scan lists the files eligible for organization. Only top-level
// entries are considered; subdirectories, hidden files, and OS metadata
// files are filtered out before classification ever sees them.
package scan

import (
	"os"
	"path/filepath"

	"cleanify/internal/log"
	"cleanify/pkg/types"
)

// OS metadata files that should never be organized.
var systemFiles = map[string]bool{
	".DS_Store":    true,
	".AppleDouble": true,
	".LSOverride":  true,
	"Thumbs.db":    true,
	"desktop.ini":  true,
}

// Directory returns a record for every regular top-level file in path,
// in directory order, skipping hidden and system files.
func Directory(path string) ([]types.FileRecord, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(abs)
	if err != nil {
		return nil, err
	}

	var files []types.FileRecord
	for _, entry := range entries {
		if entry.IsDir() || Skip(entry.Name()) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			// Entry vanished between listing and stat; nothing to organize.
			log.Debug("skipping %s: %v", entry.Name(), err)
			continue
		}
		if !info.Mode().IsRegular() {
			continue
		}

		files = append(files, types.NewFileRecord(filepath.Join(abs, entry.Name()), info.Size()))
	}

	return files, nil
}

// Skip reports whether a file name belongs to a hidden or system file.
func Skip(name string) bool {
	if len(name) > 0 && name[0] == '.' {
		return true
	}
	return systemFiles[name]
}
