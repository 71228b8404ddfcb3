package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tr701/grammar"
)

func newGrammarCmd() *cobra.Command {
	var startProduction string
	var list bool

	cmd := &cobra.Command{
		Use:   "grammar",
		Short: "Print and verify the TR-701 EBNF grammar",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			if err := grammar.Verify(startProduction); err != nil {
				return err
			}

			if !list {
				fmt.Fprint(out, grammar.Source())
				return nil
			}

			g, err := grammar.Load()
			if err != nil {
				return err
			}
			for _, name := range grammar.Productions(g) {
				kind := "syntax"
				if grammar.IsLexical(name) {
					kind = "token"
				}
				fmt.Fprintf(out, "%s %s\n", kindStyle.Render(kind), name)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&startProduction, "start", grammar.Start, "start production for verification (if empty, only checks syntax)")
	cmd.Flags().BoolVar(&list, "list", false, "list production names instead of printing the grammar")

	return cmd
}
