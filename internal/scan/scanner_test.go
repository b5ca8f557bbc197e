package scan_test

import (
	"os"
	"path/filepath"
	"testing"

	"cleanify/internal/scan"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDirectoryListsTopLevelFiles(t *testing.T) {
	root := t.TempDir()

	for _, name := range []string{"notes.pdf", "Screenshot A.png", "archive.tar.gz"} {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte("x"), 0644))
	}
	// Noise that must be filtered out.
	require.NoError(t, os.WriteFile(filepath.Join(root, ".hidden"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, ".DS_Store"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "Thumbs.db"), []byte("x"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "subdir"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "subdir", "nested.txt"), []byte("x"), 0644))

	files, err := scan.Directory(root)
	require.NoError(t, err)
	require.Len(t, files, 3, "only visible top-level regular files are scanned")

	names := make(map[string]bool)
	for _, file := range files {
		names[file.Name] = true
		assert.True(t, file.TopLevel)
		assert.True(t, filepath.IsAbs(file.Path))
	}
	assert.True(t, names["notes.pdf"])
	assert.True(t, names["Screenshot A.png"])
	assert.True(t, names["archive.tar.gz"])
}

func TestDirectoryRecords(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "Photo.JPG"), []byte("12345"), 0644))

	files, err := scan.Directory(root)
	require.NoError(t, err)
	require.Len(t, files, 1)

	record := files[0]
	assert.Equal(t, "Photo.JPG", record.Name, "base name keeps its casing")
	assert.Equal(t, ".jpg", record.Ext, "extension is lowercased with the dot")
	assert.Equal(t, int64(5), record.Size)
	assert.Equal(t, "Photo", record.Stem())
}

func TestDirectoryMissingPath(t *testing.T) {
	_, err := scan.Directory(filepath.Join(t.TempDir(), "gone"))
	assert.Error(t, err)
}

func TestSkip(t *testing.T) {
	assert.True(t, scan.Skip(".anything"))
	assert.True(t, scan.Skip(".DS_Store"))
	assert.True(t, scan.Skip("Thumbs.db"))
	assert.True(t, scan.Skip("desktop.ini"))
	assert.False(t, scan.Skip("report.pdf"))
	assert.False(t, scan.Skip("desktop.png"))
}
