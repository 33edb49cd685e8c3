package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bedrock-tools/mccmd/command"
)

// fontColors maps highlighting categories to terminal styles.
var fontColors = map[command.Font]*color.Color{
	command.FontCommand:    color.New(color.FgYellow, color.Bold),
	command.FontKeyword:    color.New(color.FgYellow),
	command.FontNumber:     color.New(color.FgCyan),
	command.FontBoolean:    color.New(color.FgCyan, color.Bold),
	command.FontString:     color.New(color.FgGreen),
	command.FontPosition:   color.New(color.FgMagenta),
	command.FontTarget:     color.New(color.FgBlue, color.Bold),
	command.FontScoreboard: color.New(color.FgBlue),
	command.FontTag:        color.New(color.FgGreen, color.Bold),
	command.FontMeta:       color.New(color.FgWhite),
	command.FontComment:    color.New(color.FgHiBlack),
}

func newHighlightCmd() *cobra.Command {
	var gameVersion string

	cmd := &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a command file with semantic colors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := grammarFor(gameVersion)
			if err != nil {
				return err
			}
			source, err := readSource(args[0])
			if err != nil {
				return err
			}

			walker := command.NewWalker(source, root)
			walker.ParseAll()
			marks := walker.FontMarks()

			lines := strings.Split(strings.ReplaceAll(source, "\r\n", "\n"), "\n")
			for no, line := range lines {
				fmt.Println(renderLine(line, no+1, marks))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&gameVersion, "game-version", "", "game version to analyze for, e.g. 1.19.80 (default: latest)")

	return cmd
}

// renderLine applies the marks that fall on the given line. Marks are
// ordered and non-overlapping, so a single left-to-right pass suffices.
func renderLine(line string, lineNo int, marks []command.FontMark) string {
	var out strings.Builder
	col := 1
	for _, m := range marks {
		if m.Span.Start.Line != lineNo {
			continue
		}
		from, to := m.Span.Start.Column, m.Span.End.Column
		if from > len(line)+1 {
			continue
		}
		if to > len(line)+1 {
			to = len(line) + 1
		}
		if from > col {
			out.WriteString(line[col-1 : from-1])
		}
		style, ok := fontColors[m.Font]
		if !ok {
			out.WriteString(line[from-1 : to-1])
		} else {
			out.WriteString(style.Sprint(line[from-1 : to-1]))
		}
		col = to
	}
	if col <= len(line) {
		out.WriteString(line[col-1:])
	}
	return out.String()
}
