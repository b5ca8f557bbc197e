package main

import (
	"fmt"

	"cleanify/internal/instruct"
	"cleanify/internal/tui"
	"cleanify/pkg/types"

	"github.com/spf13/cobra"
)

// NewEditCmd creates the edit command: an interactive form for composing a
// rule, optionally prefilled from a plain-English instruction.
func NewEditCmd() *cobra.Command {
	var instruction string

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Compose a rule interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var initial types.Rule
			if instruction != "" {
				parsed, err := instruct.Parse(instruction)
				if err != nil {
					return err
				}
				initial = parsed
			}

			rule, accepted, err := tui.Run(initial)
			if err != nil {
				return err
			}
			if !accepted {
				cmd.Println(dimText("Cancelled, no rule added."))
				return nil
			}

			if err := saveRule(rule); err != nil {
				return err
			}
			cmd.Println(successText(fmt.Sprintf("Added rule %q → %s", rule.Name, rule.Destination)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&instruction, "instruction", "i", "", "prefill the form from a plain-English instruction")

	return cmd
}
