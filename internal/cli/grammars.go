package cli

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"formlang/internal/grammar"
)

// NewClassifyCommand creates the classify command.
func NewClassifyCommand(rootOpts *RootOptions) *cobra.Command {
	var show bool
	cmd := &cobra.Command{
		Use:   "classify <grammar>",
		Short: "Place a grammar in the Chomsky hierarchy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := rootOpts.grammar(args[0])
			if err != nil {
				return err
			}
			if show {
				fmt.Fprint(cmd.OutOrStdout(), g.String())
			}
			fmt.Fprintln(cmd.OutOrStdout(), g.Classify())
			return nil
		},
	}
	cmd.Flags().BoolVar(&show, "show", false, "print the rules before the class")
	return cmd
}

type generateOptions struct {
	count int
	depth int
	seed  int64
	from  string
	tree  bool
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate <grammar>",
		Short: "Derive random strings from a grammar",
		Long: `Derive random strings from a grammar, choosing alternatives uniformly.

Each expansion costs one unit of --depth; nonterminals left when the depth runs
out contribute nothing. Pass --seed to make the output reproducible.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := rootOpts.grammar(args[0])
			if err != nil {
				return err
			}
			if opts.count < 0 {
				return NewExitError(ExitCommandError, "--count must not be negative")
			}
			if !cmd.Flags().Changed("seed") {
				opts.seed = time.Now().UnixNano()
			}
			rootOpts.logger().Debug("generating", "seed", opts.seed, "count", opts.count, "depth", opts.depth)
			rng := rand.New(rand.NewSource(opts.seed))

			out := cmd.OutOrStdout()
			if opts.from == "" && !opts.tree {
				for _, s := range g.GenerateStrings(rng, opts.count, opts.depth) {
					fmt.Fprintln(out, showWord(s))
				}
				return nil
			}

			from := g.Start()
			if opts.from != "" {
				from = grammar.Symbol(opts.from)
			}
			for i := 0; i < opts.count; i++ {
				if !opts.tree {
					fmt.Fprintln(out, showWord(g.GenerateString(rng, from, opts.depth)))
					continue
				}
				tree := g.GenerateTree(rng, from, opts.depth)
				fmt.Fprintf(out, "%s\n  %s\n", showWord(tree.Yield()), tree)
				for _, step := range tree.Steps() {
					fmt.Fprintf(out, "  %s\n", step)
				}
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.count, "count", "n", 5, "number of strings")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 10, "maximum derivation depth")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "random seed (default: time based)")
	cmd.Flags().StringVar(&opts.from, "from", "", "symbol to derive from (default: start symbol)")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the derivation tree and rule applications")
	return cmd
}
