package langserver

import (
	"testing"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/bedrock-tools/mccmd/command"
)

func TestToProtocolRange(t *testing.T) {
	lines := []string{"say hi", "say ho", "kill zombie"}
	span := command.Span{
		Start: command.Position{Line: 3, Column: 5},
		End:   command.Position{Line: 3, Column: 9},
	}
	got := toProtocolRange(span, lines)
	want := protocol.Range{
		Start: protocol.Position{Line: 2, Character: 4},
		End:   protocol.Position{Line: 2, Character: 8},
	}
	if got != want {
		t.Errorf("toProtocolRange() = %+v, want %+v", got, want)
	}
}

func TestToProtocolRangeUTF16(t *testing.T) {
	// "ö" is two bytes but a single UTF-16 code unit, so byte columns
	// past it shift left by one in the protocol range.
	lines := []string{`kill "Zömbie"`}
	span := command.Span{
		Start: command.Position{Line: 1, Column: 6},
		End:   command.Position{Line: 1, Column: 15},
	}
	got := toProtocolRange(span, lines)
	want := protocol.Range{
		Start: protocol.Position{Line: 0, Character: 5},
		End:   protocol.Position{Line: 0, Character: 13},
	}
	if got != want {
		t.Errorf("toProtocolRange() = %+v, want %+v", got, want)
	}
}

func TestByteColumn(t *testing.T) {
	line := `kill "Zömbie"`
	tests := []struct {
		character int
		want      int
	}{
		{0, 1},
		{6, 7},
		{8, 10},
		{13, 15},
		{99, 15},
	}
	for _, tt := range tests {
		if got := byteColumn(line, tt.character); got != tt.want {
			t.Errorf("byteColumn(%d) = %d, want %d", tt.character, got, tt.want)
		}
	}
}

func TestToProtocolKind(t *testing.T) {
	tests := []struct {
		name string
		item command.CompletionItem
		want protocol.CompletionItemKind
	}{
		{
			name: "catalog id",
			item: command.CompletionItem{FromCatalog: true},
			want: protocol.CompletionItemKindValue,
		},
		{
			name: "command word",
			item: command.CompletionItem{Font: command.FontCommand},
			want: protocol.CompletionItemKindFunction,
		},
		{
			name: "keyword",
			item: command.CompletionItem{Font: command.FontKeyword},
			want: protocol.CompletionItemKindKeyword,
		},
		{
			name: "selector",
			item: command.CompletionItem{Font: command.FontTarget},
			want: protocol.CompletionItemKindVariable,
		},
		{
			name: "anything else",
			item: command.CompletionItem{Font: command.FontNumber},
			want: protocol.CompletionItemKindText,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := toProtocolKind(tt.item); got != tt.want {
				t.Errorf("toProtocolKind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestDiagnosticMessageRendered(t *testing.T) {
	root := command.Empty()
	root.Branch(command.Keyword("say").Branch(command.BareText(false).Finish()))
	root.Freeze(command.V(1, 20, 0))

	s := New(root, nil, kindTranslator{}, "test")
	d := command.Diagnostic{
		Kind: command.DiagTrailingInput,
		Span: command.Span{Start: command.Position{Line: 1, Column: 1}, End: command.Position{Line: 1, Column: 2}},
	}
	got := s.toProtocolDiagnostic(d, []string{"x extra"})
	if got.Message != "trailing_input" {
		t.Errorf("Message = %q", got.Message)
	}
	if got.Severity == nil || *got.Severity != protocol.DiagnosticSeverityError {
		t.Error("diagnostics must be errors")
	}
	if got.Source == nil || *got.Source != lsName {
		t.Error("diagnostic source not set")
	}
}

type kindTranslator struct{}

func (kindTranslator) Resolve(kind command.DiagnosticKind, params map[string]string, locale string) string {
	return string(kind)
}
