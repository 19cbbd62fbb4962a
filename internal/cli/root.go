package cli

import (
	"log/slog"

	"github.com/spf13/cobra"

	"formlang/internal/logging"
	"formlang/internal/workbench"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	File    string
	Verbose bool

	log *slog.Logger
}

// NewRootCommand creates the root command for the formlang CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "formlang",
		Short: "Finite automata and formal grammars workbench",
		Long: `formlang runs, determinises and renders finite automata and classifies
and samples formal grammars. Named automata and grammars are read from a YAML
workbench file.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			opts.log = logging.New(cmd.ErrOrStderr(), logging.Level(opts.Verbose))
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.File, "file", "f", "workbench.yaml", "workbench file")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewAcceptsCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewDFACommand(opts))
	cmd.AddCommand(NewRegularGrammarCommand(opts))
	cmd.AddCommand(NewEquivalentCommand(opts))
	cmd.AddCommand(NewClassifyCommand(opts))
	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewRegexCommand(opts))
	cmd.AddCommand(NewExprCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))
	cmd.AddCommand(NewListCommand(opts))

	return cmd
}

func (o *RootOptions) logger() *slog.Logger {
	if o.log == nil {
		return logging.NewNop()
	}
	return o.log
}

func (o *RootOptions) workbench() (*workbench.File, error) {
	wb, err := workbench.Load(o.File)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "cannot load workbench", err)
	}
	o.logger().Debug("workbench loaded", "file", o.File,
		"automata", len(wb.Automata), "grammars", len(wb.Grammars))
	return wb, nil
}
