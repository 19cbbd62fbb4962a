package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"formlang/internal/workbench"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Build every entry of the workbench and report invalid ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := rootOpts.workbench()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if err := wb.Validate(); err != nil {
				errs := workbench.ValidationErrors(err)
				for _, e := range errs {
					fmt.Fprintf(out, "✗ %s\n", e)
				}
				return NewExitError(ExitFailure, fmt.Sprintf("%d invalid entries", len(errs)))
			}
			fmt.Fprintf(out, "✓ %d automata, %d grammars valid\n", len(wb.Automata), len(wb.Grammars))
			return nil
		},
	}
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the automata and grammars of the workbench",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wb, err := rootOpts.workbench()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "automata:")
			for _, name := range wb.AutomatonNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			fmt.Fprintln(out, "grammars:")
			for _, name := range wb.GrammarNames() {
				fmt.Fprintf(out, "  %s\n", name)
			}
			return nil
		},
	}
}
