package command

import "fmt"

// Position is a 1-based line/column location in the source text.
type Position struct {
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Span is a half-open range of positions: [Start, End).
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string {
	return fmt.Sprintf("%s-%s", s.Start, s.End)
}

// Token is a recognized piece of text together with its span.
type Token struct {
	Text string
	Span Span
}

// Font is the semantic highlighting category of a token.
type Font int

const (
	FontNone Font = iota
	FontCommand
	FontKeyword
	FontNumber
	FontBoolean
	FontString
	FontPosition
	FontTarget
	FontScoreboard
	FontTag
	FontMeta
	FontComment
)

var fontNames = map[Font]string{
	FontNone:       "none",
	FontCommand:    "command",
	FontKeyword:    "keyword",
	FontNumber:     "number",
	FontBoolean:    "boolean",
	FontString:     "string",
	FontPosition:   "position",
	FontTarget:     "target",
	FontScoreboard: "scoreboard",
	FontTag:        "tag",
	FontMeta:       "meta",
	FontComment:    "comment",
}

func (f Font) String() string {
	if name, ok := fontNames[f]; ok {
		return name
	}
	return "unknown"
}

// FontMark is a highlighting annotation: a span plus its category.
type FontMark struct {
	Span Span
	Font Font
}
