package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/xiam/sexpr/lexer"
)

func newTokensCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tokens [expr...]",
		Short: "Print the tokens of each expression",
		RunE: func(cmd *cobra.Command, args []string) error {
			inputs, err := readInputs(args, cmd.InOrStdin())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, input := range inputs {
				tokens := lexer.Tokenize(input)
				a.logger.Debug("tokenized", zap.String("input", input), zap.Int("tokens", len(tokens)))

				for i, tok := range tokens {
					fmt.Fprintf(out, "token[%d] (offset: %d)\t-> %q\n", i, tok.Pos(), tok.Text())
				}
			}
			return nil
		},
	}

	return cmd
}
