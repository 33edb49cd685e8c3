package main

import (
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

func main() {
	rootCmd := &cobra.Command{
		Use:   "mccmd",
		Short: "Analyze Bedrock command files",
	}

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newHighlightCmd())
	rootCmd.AddCommand(newCompleteCmd())
	rootCmd.AddCommand(newREPLCmd())
	rootCmd.AddCommand(newLSPCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
