package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiam/sexpr"
	"github.com/xiam/sexpr/ast"
)

func newParseCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse [expr...]",
		Short: "Parse each expression and print the resulting tree",
		Long:  "Parse each argument, or each line of standard input when no argument (or \"-\") is given.",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			format := a.v.GetString("format")
			encode, err := encoderFor(format)
			if err != nil {
				return err
			}

			failed := 0
			for _, input := range inputs {
				var results []sexpr.Result
				if a.v.GetBool("all") {
					results = sexpr.InterpretAll(input, a.parserOptions()...)
				} else {
					results = []sexpr.Result{sexpr.Interpret(input, a.parserOptions()...)}
				}

				for _, res := range results {
					if syntaxErr, ok := res.Err(); ok {
						failed++
						a.logger.Info("syntax error", zap.String("input", input), zap.Error(syntaxErr))
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", input, syntaxErr)
						continue
					}

					node, _ := res.Node()
					if err := encode(cmd.OutOrStdout(), node); err != nil {
						return fmt.Errorf("encode: %w", err)
					}
				}
			}

			if failed > 0 {
				return fmt.Errorf("%d of %d inputs failed to parse", failed, len(inputs))
			}
			return nil
		},
	}

	cmd.Flags().StringP("format", "f", "text", "output format (text, sexpr, tree, json)")
	cmd.Flags().Bool("all", false, "parse a sequence of expressions per input")

	_ = a.v.BindPFlag("format", cmd.Flags().Lookup("format"))
	_ = a.v.BindPFlag("all", cmd.Flags().Lookup("all"))

	return cmd
}

type encoderFunc func(w io.Writer, node *ast.Node) error

func encoderFor(format string) (encoderFunc, error) {
	switch format {
	case "text":
		return func(w io.Writer, node *ast.Node) error {
			_, err := fmt.Fprintln(w, ast.Format(node))
			return err
		}, nil
	case "sexpr":
		return func(w io.Writer, node *ast.Node) error {
			_, err := fmt.Fprintf(w, "%s\n", ast.Encode(node))
			return err
		}, nil
	case "tree":
		return ast.Print, nil
	case "json":
		return func(w io.Writer, node *ast.Node) error {
			return json.NewEncoder(w).Encode(node)
		}, nil
	}
	return nil, fmt.Errorf("unknown format: %s", format)
}
