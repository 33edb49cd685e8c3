// Package langserver exposes the command analyzer over the Language
// Server Protocol: push diagnostics on open and change, plus
// completion. Documents use full-sync; command files are single lines
// to a few hundred lines, so re-analyzing the whole document per change
// is cheap.
package langserver

import (
	"strings"
	"sync"
	"unicode/utf16"

	"github.com/tliron/commonlog"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
	"github.com/tliron/glsp/server"

	_ "github.com/tliron/commonlog/simple"

	"github.com/bedrock-tools/mccmd/command"
)

const lsName = "mccmd"

var log = commonlog.GetLogger("mccmd.lsp")

type Server struct {
	root      *command.Node
	completer *command.Completer
	tr        command.Translator
	locale    string

	handler protocol.Handler
	server  *server.Server
	version string

	mu   sync.Mutex
	docs map[protocol.DocumentUri]string
}

// New builds a language server over a frozen grammar graph. The catalog
// may be nil; completion then falls back to placeholders.
func New(root *command.Node, catalog command.Catalog, tr command.Translator, version string) *Server {
	s := &Server{
		root:      root,
		completer: command.NewCompleter(root, catalog),
		tr:        tr,
		locale:    "en_US",
		version:   version,
		docs:      make(map[protocol.DocumentUri]string),
	}

	s.handler = protocol.Handler{
		Initialize:             s.initialize,
		Initialized:            s.initialized,
		Shutdown:               s.shutdown,
		SetTrace:               s.setTrace,
		TextDocumentDidOpen:    s.textDocumentDidOpen,
		TextDocumentDidChange:  s.textDocumentDidChange,
		TextDocumentDidClose:   s.textDocumentDidClose,
		TextDocumentCompletion: s.textDocumentCompletion,
	}

	s.server = server.NewServer(&s.handler, lsName, false)

	return s
}

func (s *Server) RunStdio() error {
	return s.server.RunStdio()
}

func (s *Server) initialize(ctx *glsp.Context, params *protocol.InitializeParams) (any, error) {
	if params.Locale != nil && *params.Locale != "" {
		s.locale = *params.Locale
	}

	capabilities := s.handler.CreateServerCapabilities()

	capabilities.TextDocumentSync = &protocol.TextDocumentSyncOptions{
		OpenClose: boolPtr(true),
		Change:    syncKindPtr(protocol.TextDocumentSyncKindFull),
	}
	capabilities.CompletionProvider = &protocol.CompletionOptions{
		TriggerCharacters: []string{"@", "[", "{", "=", ","},
	}

	return protocol.InitializeResult{
		Capabilities: capabilities,
		ServerInfo: &protocol.InitializeResultServerInfo{
			Name:    lsName,
			Version: &s.version,
		},
	}, nil
}

func (s *Server) initialized(ctx *glsp.Context, params *protocol.InitializedParams) error {
	return nil
}

func (s *Server) shutdown(ctx *glsp.Context) error {
	return nil
}

func (s *Server) setTrace(ctx *glsp.Context, params *protocol.SetTraceParams) error {
	protocol.SetTraceValue(params.Value)
	return nil
}

func (s *Server) textDocumentDidOpen(ctx *glsp.Context, params *protocol.DidOpenTextDocumentParams) error {
	s.update(ctx, params.TextDocument.URI, params.TextDocument.Text)
	return nil
}

func (s *Server) textDocumentDidChange(ctx *glsp.Context, params *protocol.DidChangeTextDocumentParams) error {
	if len(params.ContentChanges) == 0 {
		return nil
	}
	change := params.ContentChanges[len(params.ContentChanges)-1]
	if whole, ok := change.(protocol.TextDocumentContentChangeEventWhole); ok {
		s.update(ctx, params.TextDocument.URI, whole.Text)
	}
	return nil
}

func (s *Server) textDocumentDidClose(ctx *glsp.Context, params *protocol.DidCloseTextDocumentParams) error {
	s.mu.Lock()
	delete(s.docs, params.TextDocument.URI)
	s.mu.Unlock()

	// Clear stale squiggles for the closed document.
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         params.TextDocument.URI,
		Diagnostics: []protocol.Diagnostic{},
	})
	return nil
}

// update stores the new document text, re-analyzes it, and pushes the
// resulting diagnostics.
func (s *Server) update(ctx *glsp.Context, uri protocol.DocumentUri, text string) {
	s.mu.Lock()
	s.docs[uri] = text
	s.mu.Unlock()

	walker := command.NewWalker(text, s.root)
	diags := walker.ParseAll()
	log.Debugf("analyzed %s: %d diagnostics", uri, len(diags))

	lines := docLines(text)
	out := make([]protocol.Diagnostic, 0, len(diags))
	for _, d := range diags {
		out = append(out, s.toProtocolDiagnostic(d, lines))
	}
	ctx.Notify(protocol.ServerTextDocumentPublishDiagnostics, protocol.PublishDiagnosticsParams{
		URI:         uri,
		Diagnostics: out,
	})
}

func (s *Server) textDocumentCompletion(ctx *glsp.Context, params *protocol.CompletionParams) (any, error) {
	s.mu.Lock()
	text, ok := s.docs[params.TextDocument.URI]
	s.mu.Unlock()
	if !ok {
		return nil, nil
	}

	lines := docLines(text)
	line := int(params.Position.Line) + 1
	col := byteColumn(lineAt(lines, line), int(params.Position.Character))

	suggestions := s.completer.At(text, line, col)
	if len(suggestions) == 0 {
		return nil, nil
	}

	items := make([]protocol.CompletionItem, 0, len(suggestions))
	for _, sg := range suggestions {
		if sg.Placeholder {
			// Placeholders have nothing to insert; skip them over LSP.
			continue
		}
		kind := toProtocolKind(sg)
		insert := sg.Insert
		item := protocol.CompletionItem{
			Label:      sg.Label,
			Kind:       &kind,
			InsertText: &insert,
		}
		if sg.Hint != "" {
			hint := sg.Hint
			item.Detail = &hint
		}
		items = append(items, item)
	}
	return items, nil
}

// toProtocolDiagnostic converts spans (1-based byte columns, half-open)
// to LSP ranges (0-based UTF-16 offsets) and renders the message
// through the translator.
func (s *Server) toProtocolDiagnostic(d command.Diagnostic, lines []string) protocol.Diagnostic {
	severity := protocol.DiagnosticSeverityError
	source := lsName
	return protocol.Diagnostic{
		Range:    toProtocolRange(d.Span, lines),
		Severity: &severity,
		Source:   &source,
		Message:  command.Render(d, s.tr, s.locale),
	}
}

func toProtocolRange(span command.Span, lines []string) protocol.Range {
	return protocol.Range{
		Start: toProtocolPosition(span.Start, lines),
		End:   toProtocolPosition(span.End, lines),
	}
}

func toProtocolPosition(p command.Position, lines []string) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line - 1),
		Character: utf16Column(lineAt(lines, p.Line), p.Column),
	}
}

func docLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

func lineAt(lines []string, no int) string {
	if no < 1 || no > len(lines) {
		return ""
	}
	return lines[no-1]
}

// utf16Column converts a 1-based byte column into the UTF-16 code unit
// offset LSP positions use.
func utf16Column(line string, col int) protocol.UInteger {
	if col-1 > len(line) {
		col = len(line) + 1
	}
	n := 0
	for _, ch := range line[:col-1] {
		if len(utf16.AppendRune(nil, ch)) == 2 {
			n += 2
		} else {
			n++
		}
	}
	return protocol.UInteger(n)
}

// byteColumn converts an LSP UTF-16 character offset back into the
// 1-based byte column the engine uses.
func byteColumn(line string, character int) int {
	u := 0
	for i, ch := range line {
		if u >= character {
			return i + 1
		}
		if len(utf16.AppendRune(nil, ch)) == 2 {
			u += 2
		} else {
			u++
		}
	}
	return len(line) + 1
}

func toProtocolKind(item command.CompletionItem) protocol.CompletionItemKind {
	switch {
	case item.FromCatalog:
		return protocol.CompletionItemKindValue
	case item.Font == command.FontCommand:
		return protocol.CompletionItemKindFunction
	case item.Font == command.FontKeyword:
		return protocol.CompletionItemKindKeyword
	case item.Font == command.FontTarget:
		return protocol.CompletionItemKindVariable
	default:
		return protocol.CompletionItemKindText
	}
}

func boolPtr(b bool) *bool {
	return &b
}

func syncKindPtr(kind protocol.TextDocumentSyncKind) *protocol.TextDocumentSyncKind {
	return &kind
}
