package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bedrock-tools/mccmd/command"
	"github.com/bedrock-tools/mccmd/translate"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold)
	fileLabel  = color.New(color.Bold)
)

func newCheckCmd() *cobra.Command {
	var gameVersion string
	var locale string

	cmd := &cobra.Command{
		Use:   "check <file>...",
		Short: "Check command files and report one problem per line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := grammarFor(gameVersion)
			if err != nil {
				return err
			}
			tr := translate.New()

			problems := 0
			for _, name := range args {
				source, err := readSource(name)
				if err != nil {
					return err
				}
				walker := command.NewWalker(source, root)
				for _, d := range walker.ParseAll() {
					problems++
					fileLabel.Fprintf(os.Stdout, "%s:%s", name, d.Span.Start)
					fmt.Print(": ")
					errorLabel.Print("error")
					fmt.Printf(": %s\n", command.Render(d, tr, locale))
				}
			}
			if problems > 0 {
				cmd.SilenceUsage = true
				return fmt.Errorf("%d problem(s) found", problems)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version to analyze for, e.g. 1.19.80 (default: latest)")
	cmd.Flags().StringVar(&locale, "locale", "en_US", "locale for diagnostic messages")

	return cmd
}
