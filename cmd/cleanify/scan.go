package main

import (
	"cleanify/internal/classify"
	"cleanify/internal/scan"

	"github.com/spf13/cobra"
)

// NewScanCmd creates the scan command, a read-only preview of what a run
// would classify.
func NewScanCmd() *cobra.Command {
	var path string

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List the files a run would consider, with their matched rules",
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveTarget(path)
			if err != nil {
				return err
			}

			files, err := scan.Directory(target)
			if err != nil {
				return err
			}

			cmd.Printf("Found %d file(s) in %s\n\n", len(files), target)
			for _, decision := range classify.Plan(files, cfg.Rules) {
				if decision.Matched() {
					cmd.Printf("  %s → %s (%s)\n", decision.File.Name, decision.Destination, infoText(decision.Rule.Name))
				} else {
					cmd.Printf("  %s %s\n", decision.File.Name, dimText("(unmatched)"))
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&path, "path", "p", "", "directory to scan (default is your desktop)")

	return cmd
}
