package command

import "strings"

type nodeKind int

const (
	kindEmpty nodeKind = iota
	kindEOL
	kindKeyword
	kindChar
	kindChars
	kindInteger
	kindFloat
	kindBoolean
	kindWord
	kindQuoted
	kindString
	kindEnum
	kindIdent
	kindBareText
)

// Node is one matcher in the grammar graph. Nodes carry only
// declarative configuration, never per-parse state, so a frozen graph
// is safe to share between any number of concurrent walkers.
type Node struct {
	kind     nodeKind
	branches []*Branch

	text     string            // keyword / char / chars literal
	ci       bool              // case-insensitive keyword
	options  []string          // enumerate members, in declaration order
	notes    map[string]string // per-member hints for enumerate
	category string            // catalog category for identifier nodes

	min, max    float64
	ranged      bool
	nonZero     bool
	loose       bool // numeric token need not stop at an argument boundary
	intOptional bool // float may omit its integer part, as in ".5"
	emptyOK     bool // bare text may be empty

	font    Font
	hint    string
	eolKind DiagnosticKind // diagnostic to raise when the line ends where this literal is required

	exit   *Node // continuation point for composite nodes built via Wrap
	frozen bool
}

// Branch is a directed, ordered alternative continuation. Declaration
// order governs both matching priority and completion ranking.
type Branch struct {
	target *Node
	// close forbids whitespace between the predecessor's token and the
	// target's token; any whitespace fails the branch outright.
	close bool
	// boundary requires the cursor to sit at an argument boundary
	// before the target is attempted. Used to restore the terminator
	// check after a loose numeric token.
	boundary bool
	when     VersionPredicate
}

// BranchOption configures a single branch.
type BranchOption func(*Branch)

// Close marks the branch as adjacent: no whitespace is permitted
// before the target's token.
func Close() BranchOption {
	return func(b *Branch) { b.close = true }
}

// AtBoundary requires an argument boundary before the target.
func AtBoundary() BranchOption {
	return func(b *Branch) { b.boundary = true }
}

// When gates the branch on a game version. The predicate is evaluated
// once when the graph is frozen; filtered branches are removed.
func When(pred VersionPredicate) BranchOption {
	return func(b *Branch) { b.when = pred }
}

// Empty returns a node that matches nothing and only dispatches to its
// branches. Graph roots and shared join points are empty nodes.
func Empty() *Node {
	return &Node{kind: kindEmpty}
}

// Wrap turns an (entry, exit) pair into a composite node: alternatives
// were attached to entry during construction, and any Branch or Finish
// added afterwards continues from exit.
func Wrap(entry, exit *Node) *Node {
	entry.exit = exit
	return entry
}

// Keyword matches the exact literal word.
func Keyword(word string) *Node {
	return &Node{kind: kindKeyword, text: word, font: FontKeyword}
}

// KeywordCI matches the literal word ignoring case. The declared word
// must be lower case.
func KeywordCI(word string) *Node {
	return &Node{kind: kindKeyword, text: word, ci: true, font: FontKeyword}
}

// Char matches a single literal character.
func Char(ch byte) *Node {
	return &Node{kind: kindChar, text: string(ch), font: FontMeta}
}

// Chars matches a multi-character literal such as "..": the characters
// must appear adjacently, and completion offers them as one suggestion.
func Chars(text string) *Node {
	return &Node{kind: kindChars, text: text, font: FontMeta}
}

// Integer matches an optionally signed whole number. By default the
// token must end at an argument boundary; see Loose.
func Integer() *Node {
	return &Node{kind: kindInteger, font: FontNumber}
}

// Float matches an optionally signed decimal number.
func Float() *Node {
	return &Node{kind: kindFloat, font: FontNumber}
}

// Boolean matches exactly "true" or "false".
func Boolean() *Node {
	return &Node{kind: kindBoolean, font: FontBoolean}
}

// Word matches a run of characters up to the next argument terminator.
func Word() *Node {
	return &Node{kind: kindWord, font: FontString}
}

// QuotedString matches a double-quoted string with backslash escapes.
func QuotedString() *Node {
	return &Node{kind: kindQuoted, font: FontString}
}

// String matches either a bare word or a quoted string.
func String() *Node {
	return &Node{kind: kindString, font: FontString}
}

// Enumerate matches one member of a fixed literal set.
func Enumerate(options ...string) *Node {
	return &Node{kind: kindEnum, options: options, font: FontKeyword}
}

// EnumerateNoted is Enumerate with a per-member completion hint table.
func EnumerateNoted(options []string, notes map[string]string) *Node {
	return &Node{kind: kindEnum, options: options, notes: notes, font: FontKeyword}
}

// Identifier matches a namespaced id (lower-case letters, digits,
// ":._-"). Completion for it is delegated to the ID catalog under the
// given category.
func Identifier(category string) *Node {
	return &Node{kind: kindIdent, category: category, font: FontString}
}

// BareText matches the remainder of the line.
func BareText(emptyOK bool) *Node {
	return &Node{kind: kindBareText, emptyOK: emptyOK, font: FontString}
}

func eolNode() *Node {
	return &Node{kind: kindEOL}
}

// Branch appends an ordered alternative continuation and returns the
// receiver, so sibling branches chain naturally. On a composite node
// the continuation is attached to its exit.
func (n *Node) Branch(target *Node, opts ...BranchOption) *Node {
	at := n
	if n.exit != nil {
		at = n.exit
	}
	if at.frozen {
		panic("command: branch added to frozen grammar graph")
	}
	b := &Branch{target: target}
	for _, opt := range opts {
		opt(b)
	}
	at.branches = append(at.branches, b)
	return n
}

// Finish marks the node as accepting: the command is complete here if
// the rest of the line is blank. Declaration order relative to other
// branches is preserved.
func (n *Node) Finish(opts ...BranchOption) *Node {
	return n.Branch(eolNode(), opts...)
}

// Note attaches the usage hint shown for this node in completion.
func (n *Node) Note(hint string) *Node {
	n.hint = hint
	return n
}

// Styled overrides the node's default highlighting category.
func (n *Node) Styled(font Font) *Node {
	n.font = font
	return n
}

// Loose drops the argument-boundary requirement after a numeric token,
// letting an adjacent (Close) branch follow it directly, e.g. "3L" or
// "5..".
func (n *Node) Loose() *Node {
	n.loose = true
	return n
}

// Ranged constrains a numeric node to [min, max].
func (n *Node) Ranged(min, max float64) *Node {
	n.min, n.max = min, max
	n.ranged = true
	return n
}

// Offset marks a float as a coordinate offset: the integer part may be
// omitted, as in "~.5".
func (n *Node) Offset() *Node {
	n.intOptional = true
	return n
}

// NonZero forbids the literal zero, reported as a distinct diagnostic.
func (n *Node) NonZero() *Node {
	n.nonZero = true
	return n
}

// Unterminated selects the diagnostic raised when the line ends where
// this literal is required, e.g. a missing "]" in selector arguments.
func (n *Node) Unterminated(kind DiagnosticKind) *Node {
	n.eolKind = kind
	return n
}

// Freeze prunes version-gated branches for the given version and makes
// the graph immutable. It must be called exactly once per built graph,
// before the graph is shared.
func (n *Node) Freeze(v GameVersion) *Node {
	seen := make(map[*Node]bool)
	freeze(n, v, seen)
	return n
}

func freeze(n *Node, v GameVersion, seen map[*Node]bool) {
	if n == nil || seen[n] {
		return
	}
	seen[n] = true
	n.frozen = true
	kept := n.branches[:0]
	for _, b := range n.branches {
		if b.when != nil && !b.when(v) {
			continue
		}
		b.when = nil
		kept = append(kept, b)
	}
	n.branches = kept
	for _, b := range n.branches {
		freeze(b.target, v, seen)
	}
	if n.exit != nil {
		freeze(n.exit, v, seen)
	}
}

// describe names what a node expects, used as the structured
// "expected" parameter of diagnostics.
func describe(n *Node) string {
	switch n.kind {
	case kindKeyword, kindChar, kindChars:
		return n.text
	case kindInteger:
		return "integer"
	case kindFloat:
		return "number"
	case kindBoolean:
		return "true or false"
	case kindWord:
		return "word"
	case kindQuoted:
		return "quoted string"
	case kindString:
		return "string"
	case kindEnum:
		return strings.Join(n.options, "|")
	case kindIdent:
		return n.category + " id"
	case kindBareText:
		return "text"
	case kindEOL:
		return "end of line"
	}
	return "argument"
}
