package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/bedrock-tools/mccmd/catalog"
	"github.com/bedrock-tools/mccmd/command"
)

func newCompleteCmd() *cobra.Command {
	var gameVersion string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "complete <file> <line> <col>",
		Short: "List completions at a cursor position",
		Long: "List completions at the 1-based line and column of a command file. " +
			"Pass \"-\" as the file to read from stdin.",
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := grammarFor(gameVersion)
			if err != nil {
				return err
			}
			source, err := readSource(args[0])
			if err != nil {
				return err
			}
			line, err := strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid line %q: %w", args[1], err)
			}
			col, err := strconv.Atoi(args[2])
			if err != nil {
				return fmt.Errorf("invalid column %q: %w", args[2], err)
			}

			completer := command.NewCompleter(root, catalog.Builtin())
			items := completer.At(source, line, col)

			if asJSON {
				return writeCompletionsJSON(os.Stdout, items)
			}
			for _, item := range items {
				label := item.Label
				if label == "" {
					label = item.Insert
				}
				if item.Hint != "" {
					fmt.Printf("%s\t%s\n", label, item.Hint)
				} else {
					fmt.Println(label)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version to analyze for, e.g. 1.19.80 (default: latest)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "emit completions as JSON")

	return cmd
}

type completionJSON struct {
	Insert      string `json:"insert,omitempty"`
	Label       string `json:"label"`
	Hint        string `json:"hint,omitempty"`
	Font        string `json:"font"`
	FromCatalog bool   `json:"fromCatalog,omitempty"`
	Placeholder bool   `json:"placeholder,omitempty"`
}

func writeCompletionsJSON(w *os.File, items []command.CompletionItem) error {
	out := make([]completionJSON, len(items))
	for i, item := range items {
		label := item.Label
		if label == "" {
			label = item.Insert
		}
		out[i] = completionJSON{
			Insert:      item.Insert,
			Label:       label,
			Hint:        item.Hint,
			Font:        item.Font.String(),
			FromCatalog: item.FromCatalog,
			Placeholder: item.Placeholder,
		}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode completions: %w", err)
	}
	return nil
}
