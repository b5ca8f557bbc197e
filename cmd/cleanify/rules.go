package main

import (
	"fmt"
	"strconv"
	"strings"

	"cleanify/internal/config"
	"cleanify/internal/instruct"
	"cleanify/pkg/types"

	"github.com/spf13/cobra"
)

// NewRulesCmd creates the rules command family.
func NewRulesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Manage the ordered rule list",
		Long:  `List, add, remove, and parse rules. Rule order matters: the first matching rule wins, so earlier rules take precedence.`,
	}

	cmd.AddCommand(newRulesListCmd())
	cmd.AddCommand(newRulesAddCmd())
	cmd.AddCommand(newRulesRemoveCmd())
	cmd.AddCommand(newRulesParseCmd())

	return cmd
}

func newRulesListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Show the rules in evaluation order",
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(cfg.Rules) == 0 {
				cmd.Println("No rules configured. Add one with 'cleanify rules add' or 'cleanify edit'.")
				return nil
			}
			for i, rule := range cfg.Rules {
				cmd.Printf("%d. %s → %s\n", i+1, infoText(rule.Name), rule.Destination)
				cmd.Printf("   %s\n", dimText(describeMatch(rule.Match)))
			}
			return nil
		},
	}
}

func newRulesAddCmd() *cobra.Command {
	var (
		name        string
		contains    []string
		extensions  []string
		pattern     string
		destination string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Append a rule to the list",
		RunE: func(cmd *cobra.Command, args []string) error {
			rule := types.Rule{
				Name: name,
				Match: types.MatchSpec{
					Contains:   contains,
					Extensions: extensions,
					Pattern:    pattern,
				},
				Destination: destination,
			}
			if err := saveRule(rule); err != nil {
				return err
			}
			cmd.Println(successText(fmt.Sprintf("Added rule %q → %s", rule.Name, rule.Destination)))
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "rule name")
	cmd.Flags().StringSliceVar(&contains, "contains", nil, "substrings of the file name (any one matches)")
	cmd.Flags().StringSliceVar(&extensions, "ext", nil, "file extensions, with or without the dot")
	cmd.Flags().StringVar(&pattern, "pattern", "", "glob matched against the file name")
	cmd.Flags().StringVar(&destination, "dest", "", "destination folder, relative to the organized directory")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("dest")

	return cmd
}

func newRulesRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <number>",
		Short: "Remove a rule by its position in 'rules list'",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			position, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("not a rule number: %s", args[0])
			}
			if err := cfg.RemoveRule(position - 1); err != nil {
				return err
			}
			path, err := configPath()
			if err != nil {
				return err
			}
			if err := config.Save(cfg, path); err != nil {
				return err
			}
			cmd.Println(successText(fmt.Sprintf("Removed rule %d", position)))
			return nil
		},
	}
}

func newRulesParseCmd() *cobra.Command {
	var save bool

	cmd := &cobra.Command{
		Use:   "parse \"<instruction>\"",
		Short: "Turn a plain-English instruction into a rule",
		Long: `Translate instructions like "move all screenshots to Screenshots" or
"put simulator files in my sim folder" into a rule. Without --save the
candidate rule is only printed, so you can check it first.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rule, err := instruct.Parse(args[0])
			if err != nil {
				return err
			}

			cmd.Printf("Candidate rule:\n")
			cmd.Printf("  name:        %s\n", infoText(rule.Name))
			cmd.Printf("  match:       %s\n", describeMatch(rule.Match))
			cmd.Printf("  destination: %s\n", rule.Destination)

			if !save {
				cmd.Println(dimText("\nRe-run with --save to append it to your rules."))
				return nil
			}

			if err := saveRule(rule); err != nil {
				return err
			}
			cmd.Println(successText("\nRule saved."))
			return nil
		},
	}

	cmd.Flags().BoolVar(&save, "save", false, "append the parsed rule to the config")

	return cmd
}

// saveRule validates, appends, and persists a rule in one step.
func saveRule(rule types.Rule) error {
	if err := cfg.AddRule(rule); err != nil {
		return err
	}
	path, err := configPath()
	if err != nil {
		return err
	}
	return config.Save(cfg, path)
}

func describeMatch(match types.MatchSpec) string {
	var parts []string
	if len(match.Contains) > 0 {
		parts = append(parts, "contains "+strings.Join(match.Contains, "|"))
	}
	if len(match.Extensions) > 0 {
		parts = append(parts, "ext "+strings.Join(match.Extensions, "|"))
	}
	if match.Pattern != "" {
		parts = append(parts, "pattern "+match.Pattern)
	}
	return strings.Join(parts, " AND ")
}
