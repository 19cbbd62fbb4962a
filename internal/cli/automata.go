package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"formlang/internal/automaton"
	"formlang/internal/render"
)

type acceptsOptions struct {
	simulate bool
	sep      string
}

// NewAcceptsCommand creates the accepts command.
func NewAcceptsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &acceptsOptions{}
	cmd := &cobra.Command{
		Use:   "accepts <automaton> <word>...",
		Short: "Run an automaton on words",
		Long: `Run a named automaton on each word and report whether it is accepted.

By default a single run follows one target per step, which is exact for
deterministic automata. --simulate follows every target instead.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.automaton(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, word := range args[1:] {
				input := splitWord(word, opts.sep)
				ok := a.Accepts(input)
				if opts.simulate {
					ok = a.Simulate(input)
				}
				verdict := "rejected"
				if ok {
					verdict = "accepted"
				}
				fmt.Fprintf(out, "%s: %s\n", showWord(word), verdict)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&opts.simulate, "simulate", false, "follow every nondeterministic branch")
	cmd.Flags().StringVar(&opts.sep, "sep", "", "symbol separator inside words (default: one symbol per character)")
	return cmd
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "check <automaton>",
		Short: "Print an automaton and its determinism properties",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.automaton(args[0])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, a.String())
			fmt.Fprintf(out, "Deterministic: %t\n", a.IsDeterministic())
			fmt.Fprintf(out, "Single-valued: %t\n", a.IsSingleValued())
			fmt.Fprintf(out, "Reachable: %s\n", joinStates(a.Reachable()))
			return nil
		},
	}
}

type dfaOptions struct {
	minimize bool
	format   string
	trace    string
}

// NewDFACommand creates the dfa command.
func NewDFACommand(rootOpts *RootOptions) *cobra.Command {
	opts := &dfaOptions{}
	cmd := &cobra.Command{
		Use:   "dfa <automaton>",
		Short: "Determinise an automaton by subset construction",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.automaton(args[0])
			if err != nil {
				return err
			}
			dfa := a.ConvertToDFA()
			rootOpts.logger().Debug("subset construction done", "states", len(dfa.States()))
			if opts.minimize {
				dfa = automaton.Minimize(dfa)
				rootOpts.logger().Debug("minimized", "states", len(dfa.States()))
			}
			return writeAutomaton(cmd, dfa, opts.format, opts.trace)
		},
	}
	cmd.Flags().BoolVar(&opts.minimize, "minimize", false, "merge equivalent states")
	addFormatFlags(cmd, &opts.format, &opts.trace)
	return cmd
}

// NewRegularGrammarCommand creates the regular-grammar command.
func NewRegularGrammarCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "regular-grammar <automaton>",
		Short: "Print the right-linear rules read off an automaton",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.automaton(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), a.ToRegularGrammar())
			return nil
		},
	}
}

// NewEquivalentCommand creates the equivalent command.
func NewEquivalentCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "equivalent <automaton> <automaton>",
		Short: "Decide whether two automata accept the same language",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := rootOpts.automaton(args[0])
			if err != nil {
				return err
			}
			b, err := rootOpts.automaton(args[1])
			if err != nil {
				return err
			}
			if automaton.Equivalent(a, b) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s and %s are equivalent\n", args[0], args[1])
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s and %s differ\n", args[0], args[1])
			return nil
		},
	}
}

func addFormatFlags(cmd *cobra.Command, format, trace *string) {
	cmd.Flags().StringVar(format, "format", string(render.FormatText), fmt.Sprintf("output format %v", render.Formats))
	cmd.Flags().StringVar(trace, "trace", "", "highlight the run on this word (mermaid only)")
}

func writeAutomaton(cmd *cobra.Command, a *automaton.Automaton, format, trace string) error {
	var overlay *render.Overlay
	if cmd.Flags().Changed("trace") {
		overlay = render.TraceOverlay(a, automaton.Symbols(trace))
	}
	text, err := render.Render(a, render.Format(format), overlay)
	if err != nil {
		return WrapExitError(ExitCommandError, "bad --format", err)
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}

func joinStates(states []automaton.State) string {
	names := make([]string, len(states))
	for i, s := range states {
		names[i] = s.String()
	}
	return strings.Join(names, ", ")
}
