package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"formlang/internal/arith"
)

type exprOptions struct {
	vars   map[string]int64
	tree   bool
	tokens bool
}

// NewExprCommand creates the expr command.
func NewExprCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &exprOptions{}
	cmd := &cobra.Command{
		Use:   "expr <expression>",
		Short: "Tokenize, parse and evaluate an integer expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if opts.tokens {
				toks, err := arith.Tokenize(args[0])
				if err != nil {
					return WrapExitError(ExitFailure, "tokenize failed", err)
				}
				for _, tok := range toks {
					fmt.Fprintln(out, tok)
				}
			}

			node, err := arith.Parse(args[0])
			if err != nil {
				return WrapExitError(ExitFailure, "parse failed", err)
			}
			if opts.tree {
				fmt.Fprintln(out, node)
			}
			rootOpts.logger().Debug("evaluating", "tree", node.String(), "vars", len(opts.vars))
			v, err := node.Eval(arith.Env(opts.vars))
			if err != nil {
				return WrapExitError(ExitFailure, "evaluation failed", err)
			}
			fmt.Fprintln(out, v)
			return nil
		},
	}
	cmd.Flags().StringToInt64Var(&opts.vars, "var", nil, "variable binding name=value (repeatable)")
	cmd.Flags().BoolVar(&opts.tree, "tree", false, "print the parenthesised expression tree")
	cmd.Flags().BoolVar(&opts.tokens, "tokens", false, "print the token stream")
	return cmd
}
