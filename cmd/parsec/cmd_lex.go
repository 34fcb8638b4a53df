package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dhamidi/parsec/ebnflex"
)

func newLexCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:           "lex <grammar.ebnf> <file>",
		Short:         "Tokenize a file with the token productions of an EBNF grammar",
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			grammar, err := ebnflex.LoadGrammar(args[0])
			if err != nil {
				printErrors(cmd.ErrOrStderr(), err)
				return err
			}

			src, err := os.ReadFile(args[1])
			if err != nil {
				return fmt.Errorf("read input: %w", err)
			}

			tokens, err := ebnflex.NewLexer(grammar, src, ebnflex.WithFilename(args[1])).Tokenize()
			if err != nil {
				return fmt.Errorf("tokenize: %w", err)
			}
			if !all {
				tokens = ebnflex.Filter(tokens)
			}

			out := cmd.OutOrStdout()
			for _, tok := range tokens {
				fmt.Fprintln(out, tok)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include whitespace, comments and EOF")

	return cmd
}
