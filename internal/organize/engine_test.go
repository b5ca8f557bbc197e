package organize_test

import (
	"os"
	"path/filepath"
	"testing"

	"cleanify/internal/errors"
	"cleanify/internal/organize"
	"cleanify/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte("content"), 0644))
}

func decisionFor(root, name, destination string) types.Decision {
	rule := &types.Rule{Name: destination, Destination: destination}
	return types.Decision{
		File:        types.NewFileRecord(filepath.Join(root, name), 7),
		Rule:        rule,
		Destination: destination,
	}
}

func TestExecuteOneMovesFile(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.pdf"))

	engine := organize.New()
	outcome := engine.ExecuteOne(root, decisionFor(root, "notes.pdf", "Documents"))

	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Moved)
	assert.False(t, outcome.Renamed)
	assert.Equal(t, filepath.Join(root, "Documents", "notes.pdf"), outcome.FinalPath)

	_, err := os.Stat(filepath.Join(root, "notes.pdf"))
	assert.ErrorIs(t, err, os.ErrNotExist, "source should be gone after the move")
	_, err = os.Stat(outcome.FinalPath)
	assert.NoError(t, err)
}

func TestExecuteOneResolvesCollisions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "Images", "a.png"))

	engine := organize.New()

	// Second a.png becomes a(1).png.
	writeFile(t, filepath.Join(root, "a.png"))
	outcome := engine.ExecuteOne(root, decisionFor(root, "a.png", "Images"))
	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Renamed)
	assert.Equal(t, filepath.Join(root, "Images", "a(1).png"), outcome.FinalPath)

	// Third collision becomes a(2).png.
	writeFile(t, filepath.Join(root, "a.png"))
	outcome = engine.ExecuteOne(root, decisionFor(root, "a.png", "Images"))
	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Renamed)
	assert.Equal(t, filepath.Join(root, "Images", "a(2).png"), outcome.FinalPath)

	entries, err := os.ReadDir(filepath.Join(root, "Images"))
	require.NoError(t, err)
	assert.Len(t, entries, 3)
}

func TestExecuteOneDryRun(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "notes.pdf"))

	engine := organize.New()
	engine.SetDryRun(true)

	first := engine.ExecuteOne(root, decisionFor(root, "notes.pdf", "Documents"))
	require.NoError(t, first.Err)
	assert.False(t, first.Moved)
	assert.Equal(t, filepath.Join(root, "Documents", "notes.pdf"), first.FinalPath)

	// Dry run must not touch the filesystem: no destination folder, source
	// untouched, and a second run reports the exact same outcome.
	_, err := os.Stat(filepath.Join(root, "Documents"))
	assert.ErrorIs(t, err, os.ErrNotExist, "dry-run must not create folders")
	_, err = os.Stat(filepath.Join(root, "notes.pdf"))
	assert.NoError(t, err)

	second := engine.ExecuteOne(root, decisionFor(root, "notes.pdf", "Documents"))
	assert.Equal(t, first, second, "dry-run is idempotent")
}

func TestExecuteOneDryRunReportsPendingRename(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.png"))
	writeFile(t, filepath.Join(root, "Images", "a.png"))

	engine := organize.New()
	engine.SetDryRun(true)

	outcome := engine.ExecuteOne(root, decisionFor(root, "a.png", "Images"))
	require.NoError(t, outcome.Err)
	assert.True(t, outcome.Renamed)
	assert.Equal(t, filepath.Join(root, "Images", "a(1).png"), outcome.FinalPath)

	// Still nothing moved.
	_, err := os.Stat(filepath.Join(root, "a.png"))
	assert.NoError(t, err)
}

func TestExecuteContinuesPastFailures(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "second.txt"))

	engine := organize.New()
	decisions := []types.Decision{
		decisionFor(root, "vanished.txt", "Text"), // never created
		decisionFor(root, "second.txt", "Text"),
	}

	outcomes := engine.Execute(root, decisions)
	require.Len(t, outcomes, 2)

	require.Error(t, outcomes[0].Err)
	assert.True(t, errors.IsFileNotFound(outcomes[0].Err))

	require.NoError(t, outcomes[1].Err, "one failure must not abort the batch")
	assert.True(t, outcomes[1].Moved)
}

func TestExecuteSkipsUnmatchedDecisions(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "stray.bin"))

	engine := organize.New()
	outcomes := engine.Execute(root, []types.Decision{
		{File: types.NewFileRecord(filepath.Join(root, "stray.bin"), 7)},
	})

	assert.Empty(t, outcomes, "unmatched decisions produce no move outcome")
	_, err := os.Stat(filepath.Join(root, "stray.bin"))
	assert.NoError(t, err)
}

func TestExecuteOneSameFileIsNotACollision(t *testing.T) {
	root := t.TempDir()
	// The file already sits in its destination.
	writeFile(t, filepath.Join(root, "Docs", "kept.pdf"))

	rule := &types.Rule{Name: "Docs", Destination: "Docs"}
	decision := types.Decision{
		File:        types.NewFileRecord(filepath.Join(root, "Docs", "kept.pdf"), 7),
		Rule:        rule,
		Destination: "Docs",
	}

	engine := organize.New()
	outcome := engine.ExecuteOne(root, decision)
	require.NoError(t, outcome.Err)
	assert.False(t, outcome.Renamed, "moving a file onto itself must not trigger the disambiguator")
	assert.Equal(t, filepath.Join(root, "Docs", "kept.pdf"), outcome.FinalPath)
}

func TestSummarize(t *testing.T) {
	matched := decisionFor("/r", "a.png", "Images")
	unmatched := types.Decision{File: types.NewFileRecord("/r/b.txt", 1)}

	decisions := []types.Decision{matched, unmatched, matched}
	outcomes := []types.MoveOutcome{
		{Moved: true},
		{Err: errors.New("boom")},
	}

	summary := organize.Summarize(decisions, outcomes)
	assert.Equal(t, 2, summary.Classified)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 1, summary.Moved)
	assert.Equal(t, 1, summary.Failed)
}
