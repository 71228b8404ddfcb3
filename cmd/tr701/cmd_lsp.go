package main

import (
	"github.com/spf13/cobra"

	"github.com/dhamidi/tr701/lsp"
)

func newLSPCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			server := lsp.NewServer(version, a.keywords)
			return server.RunStdio()
		},
	}
}
