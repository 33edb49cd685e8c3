package main

import (
	"github.com/spf13/cobra"

	"github.com/bedrock-tools/mccmd/catalog"
	"github.com/bedrock-tools/mccmd/langserver"
	"github.com/bedrock-tools/mccmd/translate"
)

func newLSPCmd() *cobra.Command {
	var gameVersion string

	cmd := &cobra.Command{
		Use:   "lsp",
		Short: "Start the Language Server Protocol server",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := grammarFor(gameVersion)
			if err != nil {
				return err
			}
			server := langserver.New(root, catalog.Builtin(), translate.New(), version)
			return server.RunStdio()
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version to analyze for, e.g. 1.19.80 (default: latest)")

	return cmd
}
