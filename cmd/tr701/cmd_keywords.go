package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dhamidi/tr701/lang/parser"
)

func newKeywordsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "keywords",
		Short: "Print the active keyword table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if path := a.config.Path(); path != "" {
				fmt.Fprintln(out, dimStyle.Render("# from "+path))
			}
			for _, kind := range parser.KeywordKinds() {
				word, _ := a.keywords.Spelling(kind)
				fmt.Fprintf(out, "%s %s\n", kindStyle.Render(kind.String()), word)
			}
			return nil
		},
	}
}
