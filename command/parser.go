package command

import "strings"

// maxWalkDepth bounds how many times the walk may re-enter any single
// node on one path. Only cyclic constructs (chained subcommands,
// repeated selector arguments) re-enter nodes, so a straight line of
// any length stays inside the bound; runaway cycles fail closed with a
// diagnostic instead of exhausting the stack.
const maxWalkDepth = 128

// Walker drives source text through a frozen grammar graph, one line
// at a time. Each walker owns its cursor, marks, and diagnostics;
// nothing is shared between walkers except the read-only graph.
type Walker struct {
	root  *Node
	lines []string
	next  int
	marks []FontMark
	diags []Diagnostic
}

// NewWalker prepares a walker over the full source text. Lines are
// processed one per ParseLine call, in order.
func NewWalker(source string, root *Node) *Walker {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	return &Walker{
		root:  root,
		lines: strings.Split(source, "\n"),
	}
}

// Done reports whether every line has been processed.
func (w *Walker) Done() bool {
	return w.next >= len(w.lines)
}

// ParseLine processes the next unprocessed line and returns its
// diagnostic, or nil when the line is valid. A diagnostic never stops
// later lines from being processed.
func (w *Walker) ParseLine() *Diagnostic {
	if w.Done() {
		return nil
	}
	lineNo := w.next + 1
	text := w.lines[w.next]
	w.next++

	marks, diag := parseLine(w.root, text, lineNo)
	w.marks = append(w.marks, marks...)
	if diag != nil {
		w.diags = append(w.diags, *diag)
		return diag
	}
	return nil
}

// ParseAll processes every remaining line and returns the diagnostics
// recorded so far, at most one per line.
func (w *Walker) ParseAll() []Diagnostic {
	for !w.Done() {
		w.ParseLine()
	}
	return w.diags
}

// Diagnostics returns the diagnostics recorded so far.
func (w *Walker) Diagnostics() []Diagnostic {
	return w.diags
}

// FontMarks returns the accumulated marks of all processed lines,
// ordered by position and non-overlapping.
func (w *Walker) FontMarks() []FontMark {
	return w.marks
}

// Render resolves a diagnostic into localized text.
func (w *Walker) Render(d Diagnostic, tr Translator, locale string) string {
	return Render(d, tr, locale)
}

// parseLine walks one line from the root. Blank lines and "#" comments
// are valid by definition; comments receive a single comment mark.
func parseLine(root *Node, text string, lineNo int) ([]FontMark, *Diagnostic) {
	r := newReader(text, lineNo)
	r.skipSpaces()
	if r.eol() {
		return nil, nil
	}
	if r.peek() == '#' {
		start := r.at()
		r.readRest()
		return []FontMark{{Span: Span{Start: start, End: r.at()}, Font: FontComment}}, nil
	}
	out := walk(root, r, make(map[*Node]int))
	if out.ok {
		return out.marks, nil
	}
	// Even on failure the valid prefix keeps its highlighting.
	diag := out.diag
	return out.marks, &diag
}

// outcome is the result of walking one node's continuations. A failed
// outcome carries the single best diagnostic: the one from the attempt
// that consumed the most input, ties broken by declaration order.
type outcome struct {
	ok      bool
	marks   []FontMark
	diag    Diagnostic
	failPos int
}

// walk explores the continuations of n, whose own token has already
// been consumed. The first branch whose subtree reaches a finish marker
// with the line exhausted commits immediately.
func walk(n *Node, r *reader, visits map[*Node]int) outcome {
	visits[n]++
	defer func() { visits[n]-- }()
	if visits[n] > maxWalkDepth {
		return outcome{
			diag: Diagnostic{
				Kind:  DiagNestingTooDeep,
				Span:  Span{Start: r.at(), End: r.at()},
				Limit: maxWalkDepth,
			},
			failPos: r.save(),
		}
	}

	if len(n.branches) == 0 {
		// Dead end: a non-finish node with no continuations.
		r.skipSpaces()
		if r.eol() {
			return outcome{
				diag: Diagnostic{
					Kind: DiagUnexpectedEndOfLine,
					Span: Span{Start: r.at(), End: r.at()},
				},
				failPos: r.save(),
			}
		}
		start := r.at()
		from := r.save()
		r.readRest()
		diag := Diagnostic{Kind: DiagTrailingInput, Span: Span{Start: start, End: r.at()}}
		r.restore(from)
		return outcome{diag: diag, failPos: from}
	}

	best := outcome{failPos: -1}
	home := r.save()
	for _, b := range n.branches {
		r.restore(home)

		// The boundary requirement applies where the previous token
		// ended, before any whitespace is skipped.
		if b.boundary && !r.atBoundary() {
			fail := Diagnostic{
				Kind:     DiagUnexpectedToken,
				Span:     Span{Start: r.at(), End: r.at()},
				Expected: "end of argument",
			}
			best = better(best, outcome{diag: fail, failPos: r.save()})
			continue
		}

		if b.close {
			if isSpace(r.peek()) {
				fail := Diagnostic{
					Kind:     DiagMissingAdjacentToken,
					Span:     Span{Start: r.at(), End: r.at()},
					Expected: describe(b.target),
				}
				best = better(best, outcome{diag: fail, failPos: r.save()})
				continue
			}
		} else {
			r.skipSpaces()
		}

		tok, diag := match(b.target, r)
		if diag != nil {
			best = better(best, outcome{diag: *diag, failPos: r.save()})
			continue
		}
		if b.target.kind == kindEOL {
			return outcome{ok: true}
		}

		sub := walk(b.target, r, visits)
		if b.target.font != FontNone && tok.Span.End != tok.Span.Start {
			mark := FontMark{Span: tok.Span, Font: b.target.font}
			sub.marks = append([]FontMark{mark}, sub.marks...)
		}
		if sub.ok {
			return outcome{ok: true, marks: sub.marks}
		}
		best = better(best, sub)
	}
	r.restore(home)
	return best
}

// better keeps the attempt that consumed more input. On a tie the
// earlier attempt wins, which is the earliest-declared branch.
func better(a, b outcome) outcome {
	if b.failPos > a.failPos {
		return b
	}
	return a
}
