package command

import (
	"sort"
	"strings"
)

// CatalogEntry is one identifier offered by the external ID catalog.
type CatalogEntry struct {
	ID   string
	Hint string
}

// Catalog enumerates valid identifiers for open-ended argument
// categories such as items, entities, and blocks.
type Catalog interface {
	List(category string) []CatalogEntry
}

// CompletionItem is one ranked suggestion at a cursor position. Either
// Insert holds literal text to type, or Placeholder is set and Label
// describes the argument instead.
type CompletionItem struct {
	Insert      string
	Label       string
	Hint        string
	Font        Font
	FromCatalog bool
	Placeholder bool
}

// Completer synthesizes suggestions by walking the same graph the
// parser uses, relaxed so malformed input before the cursor degrades to
// the last successfully matched prefix instead of failing.
type Completer struct {
	root    *Node
	catalog Catalog
}

func NewCompleter(root *Node, catalog Catalog) *Completer {
	return &Completer{root: root, catalog: catalog}
}

// At returns ordered suggestions for the cursor at the 1-based line and
// column. The column counts the cursor slot: column 1 is before the
// first character.
func (c *Completer) At(source string, line, col int) []CompletionItem {
	source = strings.ReplaceAll(source, "\r\n", "\n")
	lines := strings.Split(source, "\n")
	if line < 1 || line > len(lines) {
		return nil
	}
	text := lines[line-1]
	cut := col - 1
	if cut < 0 {
		cut = 0
	}
	if cut > len(text) {
		cut = len(text)
	}
	prefix := text[:cut]

	r := newReader(prefix, line)
	point := &suggestPoint{start: -1}
	suggestFrom(c.root, r, make(map[*Node]int), point)
	if point.start < 0 {
		return nil
	}
	partial := prefix[point.start:]
	return c.collect(point.nodes, partial)
}

// suggestPoint is the furthest offset the input matched, together with
// every node whose continuations are reachable there.
type suggestPoint struct {
	start int
	nodes []*Node
}

func (p *suggestPoint) add(n *Node, start int) {
	if start > p.start {
		p.start = start
		p.nodes = p.nodes[:0]
	}
	if start == p.start {
		p.nodes = append(p.nodes, n)
	}
}

// suggestFrom matches tokens against the text before the cursor. A
// token ending exactly at the cursor keeps the suggestion point at its
// own start, so a partially typed word completes in place.
func suggestFrom(n *Node, r *reader, visits map[*Node]int, point *suggestPoint) {
	visits[n]++
	defer func() { visits[n]-- }()
	if visits[n] > maxWalkDepth {
		return
	}
	home := r.save()
	r.skipSpaces()
	point.add(n, r.save())
	r.restore(home)

	for _, b := range n.branches {
		r.restore(home)
		if b.boundary && !r.atBoundary() {
			continue
		}
		if b.close {
			if isSpace(r.peek()) {
				continue
			}
		} else {
			r.skipSpaces()
		}
		tok, diag := match(b.target, r)
		if diag != nil {
			continue
		}
		if r.eol() && tok.Span.End != tok.Span.Start {
			// Token ends at the cursor: the user may still be typing it.
			continue
		}
		suggestFrom(b.target, r, visits, point)
	}
	r.restore(home)
}

// suggestion weights, in the manner of string-find match rules: a
// literal containing the typed partial ranks by where it contains it,
// anything else merely acceptable ranks below, failures rank last.
const (
	weightFailed = -1
	weightOther  = 1
	weightFind   = 500
)

func findWeight(literal, partial string) int {
	if partial == "" {
		return weightFind
	}
	idx := strings.Index(strings.ToLower(literal), strings.ToLower(partial))
	if idx < 0 {
		return weightFailed
	}
	return weightFind - idx
}

type rankedItem struct {
	item   CompletionItem
	weight int
}

// collect gathers the suggestions of every branch reachable from the
// point nodes, deduplicates them, and orders them by match weight,
// then declaration order, then catalog order.
func (c *Completer) collect(nodes []*Node, partial string) []CompletionItem {
	var ranked []rankedItem
	seen := make(map[string]bool)
	add := func(item CompletionItem, weight int) {
		key := item.Insert + "\x00" + item.Label
		if seen[key] {
			return
		}
		seen[key] = true
		ranked = append(ranked, rankedItem{item: item, weight: weight})
	}

	visited := make(map[*Node]bool)
	var fromNode func(n *Node, depth int)
	fromNode = func(n *Node, depth int) {
		if depth > maxWalkDepth || visited[n] {
			return
		}
		visited[n] = true
		for _, b := range n.branches {
			t := b.target
			switch t.kind {
			case kindEmpty:
				fromNode(t, depth+1)
			case kindEOL:
				// A line may simply end here; nothing to type.
			case kindKeyword, kindChar, kindChars:
				add(CompletionItem{Insert: t.text, Label: t.text, Hint: t.hint, Font: t.font},
					findWeight(t.text, partial))
			case kindEnum:
				for _, option := range t.options {
					hint := t.notes[option]
					if hint == "" {
						hint = t.hint
					}
					add(CompletionItem{Insert: option, Label: option, Hint: hint, Font: t.font},
						findWeight(option, partial))
				}
			case kindBoolean:
				add(CompletionItem{Insert: "true", Label: "true", Hint: t.hint, Font: t.font},
					findWeight("true", partial))
				add(CompletionItem{Insert: "false", Label: "false", Hint: t.hint, Font: t.font},
					findWeight("false", partial))
			case kindIdent:
				c.collectCatalog(t, partial, add)
			default:
				add(CompletionItem{
					Label:       placeholderLabel(t),
					Hint:        t.hint,
					Font:        t.font,
					Placeholder: true,
				}, placeholderWeight(t, partial))
			}
		}
	}
	for _, n := range nodes {
		fromNode(n, 0)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].weight > ranked[j].weight
	})
	items := make([]CompletionItem, len(ranked))
	for i, r := range ranked {
		items[i] = r.item
	}
	return items
}

func (c *Completer) collectCatalog(t *Node, partial string, add func(CompletionItem, int)) {
	var entries []CatalogEntry
	if c.catalog != nil {
		entries = c.catalog.List(t.category)
	}
	if len(entries) == 0 {
		add(CompletionItem{
			Label:       "<" + t.category + " id>",
			Hint:        t.hint,
			Font:        t.font,
			Placeholder: true,
		}, placeholderWeight(t, partial))
		return
	}
	for _, e := range entries {
		hint := e.Hint
		if hint == "" {
			hint = t.hint
		}
		add(CompletionItem{Insert: e.ID, Label: e.ID, Hint: hint, Font: t.font, FromCatalog: true},
			findWeight(e.ID, partial))
	}
}

func placeholderLabel(t *Node) string {
	return "<" + describe(t) + ">"
}

// placeholderWeight reports whether the typed partial could still grow
// into a token of this kind.
func placeholderWeight(t *Node, partial string) int {
	if partial == "" {
		return weightOther
	}
	ok := true
	switch t.kind {
	case kindInteger:
		for i := 0; i < len(partial); i++ {
			if !isDigit(partial[i]) && !isSign(partial[i]) {
				ok = false
			}
		}
	case kindFloat:
		for i := 0; i < len(partial); i++ {
			if !isDigit(partial[i]) && !isSign(partial[i]) && partial[i] != '.' {
				ok = false
			}
		}
	case kindQuoted:
		ok = partial[0] == '"'
	case kindIdent:
		for i := 0; i < len(partial); i++ {
			if !strings.ContainsRune(identChars, rune(partial[i])) {
				ok = false
			}
		}
	case kindBareText:
		ok = true
	default:
		for i := 0; i < len(partial); i++ {
			if isTerminator(partial[i]) {
				ok = false
			}
		}
	}
	if !ok {
		return weightFailed
	}
	return weightOther
}
