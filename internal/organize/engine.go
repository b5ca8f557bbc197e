// Package organize executes classification decisions: it creates
// destination folders, resolves name collisions with a numeric suffix, and
// moves files with a single rename. Dry-run mode computes everything but
// touches nothing.
package organize

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cleanify/internal/config"
	"cleanify/internal/errors"
	"cleanify/internal/log"
	"cleanify/pkg/types"
)

// maxConflictAttempts bounds the collision counter so a pathological
// destination folder cannot loop the mover forever.
const maxConflictAttempts = 1000

// Engine performs (or simulates) the moves a plan calls for.
type Engine struct {
	dryRun     bool
	createDirs bool
}

// New creates an engine with directory creation enabled.
func New() *Engine {
	return &Engine{createDirs: true}
}

// NewWithConfig creates an engine honoring the configured settings.
func NewWithConfig(cfg *config.Config) *Engine {
	return &Engine{
		dryRun:     cfg.Settings.DryRun,
		createDirs: cfg.Settings.CreateDirs,
	}
}

// SetDryRun sets whether operations should be performed or just simulated.
func (e *Engine) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// IsDryRun returns whether the engine is in dry run mode.
func (e *Engine) IsDryRun() bool {
	return e.dryRun
}

// Execute runs a whole batch of decisions against root. Unmatched decisions
// produce no outcome; a failed move is recorded and the batch continues.
// Callers that need cancellation between files should loop ExecuteOne
// themselves instead.
func (e *Engine) Execute(root string, decisions []types.Decision) []types.MoveOutcome {
	var outcomes []types.MoveOutcome
	for _, decision := range decisions {
		if !decision.Matched() {
			continue
		}
		outcomes = append(outcomes, e.ExecuteOne(root, decision))
	}
	return outcomes
}

// ExecuteOne carries out a single matched decision. The returned outcome
// carries the final path (after any collision renaming) and, in live mode,
// whether the move actually happened.
func (e *Engine) ExecuteOne(root string, decision types.Decision) types.MoveOutcome {
	outcome := types.MoveOutcome{Source: decision.File.Path}

	targetDir := filepath.Join(root, filepath.FromSlash(decision.Destination))

	if !e.dryRun && e.createDirs {
		if err := os.MkdirAll(targetDir, 0755); err != nil {
			outcome.Err = errors.NewFileError("failed to create destination directory", targetDir, errors.MoveFailed, err)
			return outcome
		}
	}

	finalPath, renamed, err := resolveCollision(decision.File.Path, targetDir, decision.File.Name)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	outcome.FinalPath = finalPath
	outcome.Renamed = renamed

	if e.dryRun {
		log.Debug("would move %s -> %s", decision.File.Path, finalPath)
		return outcome
	}

	if err := os.Rename(decision.File.Path, finalPath); err != nil {
		outcome.Err = moveError(decision.File.Path, err)
		return outcome
	}

	outcome.Moved = true
	log.Info("moved %s -> %s", decision.File.Name, finalPath)
	return outcome
}

// resolveCollision picks the final destination path for a file, appending
// (1), (2), ... before the extension until a free name is found. The search
// is monotonic and bounded.
func resolveCollision(src, targetDir, name string) (string, bool, error) {
	candidate := filepath.Join(targetDir, name)

	if occupied, same := pathTaken(src, candidate); !occupied || same {
		return candidate, false, nil
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for counter := 1; counter <= maxConflictAttempts; counter++ {
		next := filepath.Join(targetDir, fmt.Sprintf("%s(%d)%s", stem, counter, ext))
		if occupied, _ := pathTaken(src, next); !occupied {
			return next, true, nil
		}
	}

	return "", false, errors.NewFileError(
		fmt.Sprintf("no free name after %d attempts", maxConflictAttempts),
		candidate, errors.ConflictExhausted, nil)
}

// pathTaken reports whether candidate already exists, and whether it is the
// source file itself (moving a file onto itself is not a collision).
func pathTaken(src, candidate string) (occupied, same bool) {
	candidateInfo, err := os.Stat(candidate)
	if err != nil {
		// Treat unreadable paths as free; the rename will surface the real
		// error if there is one.
		return false, false
	}
	srcInfo, err := os.Stat(src)
	if err != nil {
		return true, false
	}
	return true, os.SameFile(srcInfo, candidateInfo)
}

// moveError classifies a rename failure into the application error kinds.
func moveError(path string, err error) error {
	switch {
	case os.IsNotExist(err):
		return errors.NewFileError("source vanished before move", path, errors.FileNotFound, err)
	case os.IsPermission(err):
		return errors.NewFileError("permission denied", path, errors.FileAccessDenied, err)
	default:
		return errors.NewFileError("failed to move file", path, errors.MoveFailed, err)
	}
}
