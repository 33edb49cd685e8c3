package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/bedrock-tools/mccmd/catalog"
	"github.com/bedrock-tools/mccmd/command"
	"github.com/bedrock-tools/mccmd/translate"
)

func newREPLCmd() *cobra.Command {
	var gameVersion string
	var locale string

	cmd := &cobra.Command{
		Use:   "repl",
		Short: "Check commands interactively, with tab completion",
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := grammarFor(gameVersion)
			if err != nil {
				return err
			}
			completer := command.NewCompleter(root, catalog.Builtin())
			tr := translate.New()

			l, err := readline.NewEx(&readline.Config{
				Prompt:            "mccmd> ",
				HistoryFile:       "/tmp/.mccmd-history",
				InterruptPrompt:   "^C",
				EOFPrompt:         "bye",
				HistorySearchFold: true,
				AutoComplete:      &replCompleter{completer: completer},
			})
			if err != nil {
				return fmt.Errorf("initialize readline: %w", err)
			}
			defer l.Close()

			for {
				line, err := l.Readline()
				if err == readline.ErrInterrupt {
					continue
				}
				if err == io.EOF {
					return nil
				}
				if err != nil {
					return err
				}
				if strings.TrimSpace(line) == "" {
					continue
				}
				checkOne(line, root, tr, locale)
			}
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version to analyze for, e.g. 1.19.80 (default: latest)")
	cmd.Flags().StringVar(&locale, "locale", "en_US", "locale for diagnostic messages")

	return cmd
}

// checkOne analyzes a single typed line and prints either an ok marker
// or the diagnostic with a caret under the offending span.
func checkOne(line string, root *command.Node, tr command.Translator, locale string) {
	walker := command.NewWalker(line, root)
	diag := walker.ParseLine()
	if diag == nil {
		fmt.Println("ok")
		return
	}
	from, to := diag.Span.Start.Column, diag.Span.End.Column
	if to <= from {
		to = from + 1
	}
	fmt.Println("  " + line)
	fmt.Println("  " + strings.Repeat(" ", from-1) + strings.Repeat("^", to-from))
	errorLabel.Print("error")
	fmt.Printf(": %s\n", command.Render(*diag, tr, locale))
}

// replCompleter adapts the grammar-driven completer to readline. The
// returned candidates are the suffixes to append after the partially
// typed token.
type replCompleter struct {
	completer *command.Completer
}

func (rc *replCompleter) Do(line []rune, pos int) ([][]rune, int) {
	text := string(line)
	items := rc.completer.At(text, 1, pos+1)

	// Everything from the last terminator or space to the cursor is the
	// token being completed.
	partial := partialToken(text[:byteIndex(text, pos)])

	var candidates [][]rune
	for _, item := range items {
		if item.Placeholder {
			continue
		}
		if !strings.HasPrefix(strings.ToLower(item.Insert), strings.ToLower(partial)) {
			continue
		}
		candidates = append(candidates, []rune(item.Insert[len(partial):]))
	}
	return candidates, len([]rune(partial))
}

func partialToken(prefix string) string {
	start := 0
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case ' ', '\t', ',', '=', '[', ']', '{', '}', '@', '!':
			start = i + 1
		}
	}
	return prefix[start:]
}

func byteIndex(s string, runePos int) int {
	runes := []rune(s)
	if runePos > len(runes) {
		runePos = len(runes)
	}
	return len(string(runes[:runePos]))
}
