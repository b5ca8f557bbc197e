package main

import (
	"os"
	"path/filepath"

	"cleanify/internal/config"
	"cleanify/internal/log"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
	cfg     *config.Config
)

// NewRootCmd creates the root command.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "cleanify",
		Short: "Organize the files on your desktop with declarative rules",
		Long: `Cleanify matches the files in a folder against an ordered rule list and
moves them into destination folders, renaming on collision. Rules come
from the config file, the interactive editor, or plain English:

    cleanify rules parse "move all screenshots to Screenshots"
    cleanify organize --path ~/Desktop --dry-run`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetDebug(verbose)

			// A malformed config is fatal before anything is scanned; a
			// missing one just means an empty rule store.
			var err error
			if cfgFile != "" {
				cfg, err = config.LoadFile(cfgFile)
			} else {
				cfg, err = config.Load()
			}
			if err != nil {
				return err
			}

			for _, rejected := range cfg.Rejected {
				cmd.PrintErrln(warnText("⚠ " + rejected.Error()))
			}
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cleanify/rules.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	rootCmd.AddCommand(NewOrganizeCmd())
	rootCmd.AddCommand(NewScanCmd())
	rootCmd.AddCommand(NewRulesCmd())
	rootCmd.AddCommand(NewEditCmd())

	return rootCmd
}

// configPath returns the path rule edits are saved to.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.DefaultPath()
}

// defaultScanPath is the directory organized when --path is not given:
// the user's desktop, falling back to the current directory.
func defaultScanPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "."
	}
	return filepath.Join(home, "Desktop")
}
