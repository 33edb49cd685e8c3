package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bedrock-tools/mccmd/command"
	"github.com/bedrock-tools/mccmd/command/grammar"
)

// grammarFor resolves the --game-version flag into a frozen graph.
func grammarFor(versionFlag string) (*command.Node, error) {
	if versionFlag == "" {
		return grammar.For(grammar.Latest()), nil
	}
	v, err := command.ParseGameVersion(versionFlag)
	if err != nil {
		return nil, err
	}
	return grammar.For(v), nil
}

// readSource reads a command file, or stdin when the name is "-".
func readSource(name string) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", name, err)
	}
	return string(data), nil
}
