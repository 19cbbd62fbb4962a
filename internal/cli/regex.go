package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"formlang/internal/automaton"
	"formlang/internal/regex"
)

type regexOptions struct {
	dfa      bool
	minimize bool
	format   string
	trace    string
}

// NewRegexCommand creates the regex command.
func NewRegexCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &regexOptions{}
	cmd := &cobra.Command{
		Use:   "regex <pattern> [word...]",
		Short: "Compile a regular expression into an automaton",
		Long: `Compile a regular expression into an automaton. With words, report which of
them match in full; without, print the automaton.

Syntax: literals, | * + ? ( ), [a-z], {m}, {m,}, {m,n}, # for the empty word,
\ to escape an operator.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := regex.Compile(args[0])
			if err != nil {
				return WrapExitError(ExitCommandError, "bad pattern", err)
			}
			rootOpts.logger().Debug("pattern compiled", "states", len(a.States()))
			if opts.dfa || opts.minimize {
				a = a.ConvertToDFA()
			}
			if opts.minimize {
				a = automaton.Minimize(a)
			}

			if len(args) == 1 {
				return writeAutomaton(cmd, a, opts.format, opts.trace)
			}
			for _, word := range args[1:] {
				verdict := "no match"
				if a.Simulate(automaton.Symbols(word)) {
					verdict = "match"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", showWord(word), verdict)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.dfa, "dfa", false, "determinise the compiled automaton")
	cmd.Flags().BoolVar(&opts.minimize, "minimize", false, "determinise and minimize")
	addFormatFlags(cmd, &opts.format, &opts.trace)
	return cmd
}
