package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tr701/lang/parser"
	"github.com/dhamidi/tr701/lang/source"
)

type jsonToken struct {
	Kind    string `json:"kind"`
	Literal string `json:"literal"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	Offset  int    `json:"offset"`
}

func newTokensCmd(a *app) *cobra.Command {
	var outputFormat string

	cmd := &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream of a TR-701 program",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename := args[0]
			units, err := source.Open(filename)
			if err != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("unreadable:"), err)
				return errUnreadable
			}

			tokens, lexErr := parser.Tokenize(units, parser.WithFile(filename), parser.WithKeywords(a.keywords))
			out := cmd.OutOrStdout()

			switch outputFormat {
			case "text":
				for _, tok := range tokens {
					fmt.Fprintf(out, "%s %s %q\n",
						dimStyle.Render(fmt.Sprintf("%d:%d", tok.Pos.Line, tok.Pos.Column)),
						kindStyle.Render(tok.Kind.String()),
						tok.Literal)
				}
			case "json":
				list := make([]jsonToken, 0, len(tokens))
				for _, tok := range tokens {
					list = append(list, jsonToken{
						Kind:    tok.Kind.String(),
						Literal: tok.Literal,
						Line:    tok.Pos.Line,
						Column:  tok.Pos.Column,
						Offset:  tok.Pos.Offset,
					})
				}
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(list); err != nil {
					return fmt.Errorf("encode json: %w", err)
				}
			default:
				return fmt.Errorf("unknown format: %s", outputFormat)
			}

			if lexErr != nil {
				fmt.Fprintln(cmd.ErrOrStderr(), errorStyle.Render("rejected:"), lexErr)
				return errRejected
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFormat, "format", "f", "text", "output format (text, json)")

	return cmd
}
