package main

import (
	"fmt"
	"os"
	"path/filepath"

	"cleanify/internal/organize"
	"cleanify/pkg/types"

	"github.com/spf13/cobra"
)

// NewOrganizeCmd creates the organize command.
func NewOrganizeCmd() *cobra.Command {
	var (
		path   string
		dryRun bool
	)

	cmd := &cobra.Command{
		Use:   "organize",
		Short: "Classify and move the files in a directory",
		Long:  `Match every top-level file against the rule list and move matches into their destination folders. Use --dry-run to preview without touching anything.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(path)
			if err != nil {
				return err
			}

			mode := "LIVE"
			if dryRun {
				mode = "DRY RUN"
			}
			cmd.Printf("Organizing %s (%s, %d rules)\n\n", target, mode, len(cfg.Rules))

			engine := organize.NewWithConfig(cfg)
			engine.SetDryRun(dryRun)

			result, err := engine.Organize(target, cfg.Rules)
			if err != nil {
				return err
			}

			printResult(cmd, result, dryRun)
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "directory to organize (default is your desktop)")
	cmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "show what would be done without moving files")

	return cmd
}

// resolveTarget validates the scan directory before anything runs.
func resolveTarget(path string) (string, error) {
	if path == "" {
		if cfg != nil && cfg.Directories.Default != "" {
			path = cfg.Directories.Default
		} else {
			path = defaultScanPath()
		}
	}

	if home, err := os.UserHomeDir(); err == nil && len(path) > 1 && path[:2] == "~/" {
		path = filepath.Join(home, path[2:])
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("cannot access %s: %w", path, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", path)
	}
	return path, nil
}

// printResult renders the per-file lines and the session summary. Outcomes
// line up with the matched decisions in order.
func printResult(cmd *cobra.Command, result *organize.Result, dryRun bool) {
	next := 0
	for _, decision := range result.Decisions {
		if !decision.Matched() {
			cmd.Printf("%s %s %s\n", dimText("[SKIP]"), decision.File.Name, dimText("(no matching rule)"))
			continue
		}

		outcome := result.Outcomes[next]
		next++
		printOutcome(cmd, decision, outcome, dryRun)
	}

	cmd.Printf("\nSummary: %d classified, %d skipped\n", result.Summary.Classified, result.Summary.Skipped)
	if dryRun {
		cmd.Println(infoText("Dry-run complete. No files were moved."))
	} else {
		cmd.Printf("Files moved: %d, Errors: %d\n", result.Summary.Moved, result.Summary.Failed)
	}
}

func printOutcome(cmd *cobra.Command, decision types.Decision, outcome types.MoveOutcome, dryRun bool) {
	switch {
	case outcome.Err != nil:
		cmd.Printf("%s %s: %v\n", errorText("[FAIL]"), decision.File.Name, outcome.Err)
	case dryRun && outcome.Renamed:
		cmd.Printf("%s Would move: %s → %s/%s\n", warnText("[DRY RUN]"), decision.File.Name, decision.Destination, filepath.Base(outcome.FinalPath))
	case dryRun:
		cmd.Printf("%s Would move: %s → %s/\n", warnText("[DRY RUN]"), decision.File.Name, decision.Destination)
	case outcome.Renamed:
		cmd.Printf("%s %s → %s/%s\n", successText("[MOVE]"), decision.File.Name, decision.Destination, filepath.Base(outcome.FinalPath))
	default:
		cmd.Printf("%s %s → %s/\n", successText("[MOVE]"), decision.File.Name, decision.Destination)
	}
}
