package command

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// testGrammar builds a small frozen graph:
//
//	set <value 0..10>
//	set auto
//	wait <n>L
//	name <string>
//	box ]   (with an unterminated-selector override on "]")
func testGrammar() *Node {
	root := Empty()

	root.Branch(
		Keyword("set").
			Branch(Integer().Ranged(0, 10).Note("value").Finish()).
			Branch(Keyword("auto").Finish()),
	)

	duration := Integer().Loose().Note("n")
	duration.Branch(Char('L').Finish(), Close())
	root.Branch(Keyword("wait").Branch(duration))

	root.Branch(Keyword("name").Branch(String().Finish()))

	root.Branch(
		Keyword("box").
			Branch(Char(']').Unterminated(DiagUnterminatedSelector).Finish()),
	)

	return root.Freeze(V(1, 20, 0))
}

func TestParseLineDiagnostics(t *testing.T) {
	root := testGrammar()
	tests := []struct {
		name string
		line string
		want *Diagnostic
	}{
		{name: "valid integer", line: "set 5", want: nil},
		{name: "valid keyword alternative", line: "set auto", want: nil},
		{name: "blank line", line: "", want: nil},
		{name: "spaces only", line: "   ", want: nil},
		{name: "comment", line: "# anything at all", want: nil},
		{name: "adjacent unit", line: "wait 3L", want: nil},
		{name: "quoted name", line: `name "hello world"`, want: nil},
		{
			name: "out of range, tie broken by declaration order",
			line: "set 11",
			want: &Diagnostic{
				Kind: DiagNumberOutOfRange,
				Span: Span{Start: Position{1, 5}, End: Position{1, 7}},
				Min:  0,
				Max:  10,
			},
		},
		{
			name: "not a number",
			line: "set x",
			want: &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: Position{1, 5}, End: Position{1, 6}},
				Raw:  "x",
			},
		},
		{
			name: "line ends too early",
			line: "set",
			want: &Diagnostic{
				Kind:     DiagUnexpectedEndOfLine,
				Span:     Span{Start: Position{1, 4}, End: Position{1, 4}},
				Expected: "integer",
			},
		},
		{
			name: "trailing input after a complete command",
			line: "set 5 extra",
			want: &Diagnostic{
				Kind: DiagTrailingInput,
				Span: Span{Start: Position{1, 7}, End: Position{1, 12}},
			},
		},
		{
			name: "space before an adjacent token",
			line: "wait 3 L",
			want: &Diagnostic{
				Kind:     DiagMissingAdjacentToken,
				Span:     Span{Start: Position{1, 7}, End: Position{1, 7}},
				Expected: "L",
			},
		},
		{
			name: "number glued to a word",
			line: "set 5x",
			want: &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: Position{1, 5}, End: Position{1, 7}},
				Raw:  "5x",
			},
		},
		{
			name: "unterminated string",
			line: `name "oops`,
			want: &Diagnostic{
				Kind: DiagUnterminatedString,
				Span: Span{Start: Position{1, 6}, End: Position{1, 11}},
			},
		},
		{
			name: "unterminated override at end of line",
			line: "box",
			want: &Diagnostic{
				Kind:     DiagUnterminatedSelector,
				Span:     Span{Start: Position{1, 4}, End: Position{1, 4}},
				Expected: "]",
			},
		},
		{
			// "set" fails on the word "wait" without consuming it, so the
			// wait branch's deeper end-of-line failure wins the ranking.
			name: "deeper branch outranks a sibling keyword mismatch",
			line: "wait",
			want: &Diagnostic{
				Kind:     DiagUnexpectedEndOfLine,
				Span:     Span{Start: Position{1, 5}, End: Position{1, 5}},
				Expected: "integer",
			},
		},
		{
			name: "unknown command consumes the word",
			line: "frobnicate",
			want: &Diagnostic{
				Kind:     DiagUnexpectedToken,
				Span:     Span{Start: Position{1, 1}, End: Position{1, 11}},
				Expected: "set",
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWalker(tt.line, root)
			got := w.ParseLine()
			if tt.want == nil {
				if got != nil {
					t.Fatalf("ParseLine() = %+v, want no diagnostic", got)
				}
				return
			}
			if got == nil {
				t.Fatal("ParseLine() = nil, want a diagnostic")
			}
			if diff := cmp.Diff(*tt.want, *got); diff != "" {
				t.Errorf("diagnostic mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBestFailureConsumesMost(t *testing.T) {
	// "a b x": the a->b->c path consumes more than the a->bb path, so
	// its failure is the one reported.
	root := Empty()
	root.Branch(
		Keyword("a").
			Branch(Keyword("b").Branch(Keyword("c").Finish())).
			Branch(Keyword("bb").Finish()),
	)
	root.Freeze(V(1, 20, 0))

	w := NewWalker("a b x", root)
	got := w.ParseLine()
	if got == nil {
		t.Fatal("ParseLine() = nil, want a diagnostic")
	}
	if got.Kind != DiagUnexpectedToken || got.Expected != "c" {
		t.Errorf("got %+v, want unexpected_token expecting %q", got, "c")
	}
}

func TestOneDiagnosticPerLine(t *testing.T) {
	root := testGrammar()
	source := "set 5\n\nset 99\n# note\nset nonsense 11"
	w := NewWalker(source, root)
	diags := w.ParseAll()

	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(diags), diags)
	}
	if diags[0].Span.Start.Line != 3 || diags[1].Span.Start.Line != 5 {
		t.Errorf("diagnostic lines = %d, %d; want 3, 5",
			diags[0].Span.Start.Line, diags[1].Span.Start.Line)
	}
	// Bad lines never stop later lines from being checked.
	if !w.Done() {
		t.Error("walker did not process every line")
	}
}

func TestFontMarks(t *testing.T) {
	root := testGrammar()
	w := NewWalker("set 5\n# note", root)
	w.ParseAll()

	want := []FontMark{
		{Span: Span{Start: Position{1, 1}, End: Position{1, 4}}, Font: FontKeyword},
		{Span: Span{Start: Position{1, 5}, End: Position{1, 6}}, Font: FontNumber},
		{Span: Span{Start: Position{2, 1}, End: Position{2, 7}}, Font: FontComment},
	}
	if diff := cmp.Diff(want, w.FontMarks()); diff != "" {
		t.Errorf("marks mismatch (-want +got):\n%s", diff)
	}
}

func TestFailedLineKeepsPrefixMarks(t *testing.T) {
	root := testGrammar()
	w := NewWalker("set 99", root)
	if w.ParseLine() == nil {
		t.Fatal("expected a diagnostic")
	}
	marks := w.FontMarks()
	if len(marks) == 0 {
		t.Fatal("failed line lost its prefix highlighting")
	}
	if marks[0].Font != FontKeyword || marks[0].Span.End.Column != 4 {
		t.Errorf("first mark = %+v, want the keyword span", marks[0])
	}
}

func TestNonZero(t *testing.T) {
	root := Empty()
	root.Branch(Keyword("damage").Branch(Integer().NonZero().Finish()))
	root.Freeze(V(1, 20, 0))

	w := NewWalker("damage 0", root)
	got := w.ParseLine()
	if got == nil || got.Kind != DiagNumberIsZero {
		t.Errorf("ParseLine() = %+v, want number_is_zero", got)
	}
}

func TestDepthBound(t *testing.T) {
	// A cycle re-enters its nodes once per iteration and trips the
	// guard on a long enough line instead of recursing forever.
	loop := Empty()
	loop.Branch(Keyword("x").Branch(loop))
	root := Empty()
	root.Branch(Keyword("go").Branch(loop))
	root.Freeze(V(1, 20, 0))

	line := "go"
	for i := 0; i < maxWalkDepth+10; i++ {
		line += " x"
	}
	w := NewWalker(line, root)
	got := w.ParseLine()
	if got == nil || got.Kind != DiagNestingTooDeep {
		t.Errorf("ParseLine() = %+v, want nesting_too_deep", got)
	}
	if got != nil && got.Limit != maxWalkDepth {
		t.Errorf("Limit = %d, want %d", got.Limit, maxWalkDepth)
	}
}

func TestLongLineWithoutCycles(t *testing.T) {
	// The bound counts graph re-entry, not token count: a straight
	// keyword chain longer than the bound still parses.
	root := Empty()
	cur := Keyword("go")
	root.Branch(cur)
	for i := 0; i < maxWalkDepth+10; i++ {
		next := Keyword("x")
		cur.Branch(next)
		cur = next
	}
	cur.Finish()
	root.Freeze(V(1, 20, 0))

	line := "go" + strings.Repeat(" x", maxWalkDepth+10)
	w := NewWalker(line, root)
	if got := w.ParseLine(); got != nil {
		t.Errorf("ParseLine() = %+v, want no diagnostic", got)
	}
}

func TestCRLFSources(t *testing.T) {
	root := testGrammar()
	w := NewWalker("set 5\r\nset 99\r\n", root)
	diags := w.ParseAll()
	if len(diags) != 1 || diags[0].Span.Start.Line != 2 {
		t.Errorf("got %+v, want one diagnostic on line 2", diags)
	}
}
