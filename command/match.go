package command

import (
	"strconv"
	"strings"
)

const identChars = "0123456789:._-abcdefghijklmnopqrstuvwxyz"

// match attempts to recognize n's token at the reader. Failure spans
// may cover the offending text, but the reader is restored to the
// token's start whenever it did not lexically match, so the walker
// ranks attempts by successfully consumed input only. Failures after a
// clean read (range checks, unterminated strings) keep the reader where
// it stopped.
func match(n *Node, r *reader) (Token, *Diagnostic) {
	start := r.at()
	from := r.save()
	switch n.kind {
	case kindEmpty:
		return Token{Span: Span{Start: start, End: start}}, nil

	case kindEOL:
		if r.eol() {
			return Token{Span: Span{Start: start, End: start}}, nil
		}
		r.readRest()
		return failAt(r, from, &Diagnostic{
			Kind: DiagTrailingInput,
			Span: Span{Start: start, End: r.at()},
		})

	case kindKeyword:
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		got := word
		if n.ci {
			got = strings.ToLower(word)
		}
		if got != n.text {
			return failAt(r, from, &Diagnostic{
				Kind:     DiagUnexpectedToken,
				Span:     Span{Start: start, End: r.at()},
				Expected: n.text,
			})
		}
		return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil

	case kindChar, kindChars:
		for i := 0; i < len(n.text); i++ {
			if r.eol() {
				return failAt(r, from, expectedHere(n, r, start))
			}
			if r.next() != n.text[i] {
				return failAt(r, from, &Diagnostic{
					Kind:     DiagUnexpectedToken,
					Span:     Span{Start: start, End: r.at()},
					Expected: n.text,
				})
			}
		}
		return Token{Text: n.text, Span: Span{Start: start, End: r.at()}}, nil

	case kindInteger:
		raw, ok := r.readInt()
		if !ok {
			return failAt(r, from, badNumber(n, r, start))
		}
		if !n.loose && !r.atBoundary() {
			rest := r.readWord()
			return failAt(r, from, &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: start, End: r.at()},
				Raw:  raw + rest,
			})
		}
		value, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return failAt(r, from, &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: start, End: r.at()},
				Raw:  raw,
			})
		}
		if d := checkBounds(n, float64(value), start, r.at()); d != nil {
			return Token{}, d
		}
		return Token{Text: raw, Span: Span{Start: start, End: r.at()}}, nil

	case kindFloat:
		raw, ok := r.readFloat(n.intOptional)
		if !ok {
			return failAt(r, from, badNumber(n, r, start))
		}
		if !n.loose && !r.atBoundary() {
			rest := r.readWord()
			return failAt(r, from, &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: start, End: r.at()},
				Raw:  raw + rest,
			})
		}
		value, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return failAt(r, from, &Diagnostic{
				Kind: DiagInvalidNumber,
				Span: Span{Start: start, End: r.at()},
				Raw:  raw,
			})
		}
		if d := checkBounds(n, value, start, r.at()); d != nil {
			return Token{}, d
		}
		return Token{Text: raw, Span: Span{Start: start, End: r.at()}}, nil

	case kindBoolean:
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		if word != "true" && word != "false" {
			return failAt(r, from, &Diagnostic{
				Kind:     DiagUnexpectedToken,
				Span:     Span{Start: start, End: r.at()},
				Expected: "true or false",
			})
		}
		return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil

	case kindWord:
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil

	case kindEnum:
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		for _, option := range n.options {
			if word == option {
				return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil
			}
		}
		return failAt(r, from, &Diagnostic{
			Kind:         DiagUnknownEnumerateValue,
			Span:         Span{Start: start, End: r.at()},
			Alternatives: n.options,
		})

	case kindIdent:
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		for i := 0; i < len(word); i++ {
			if !strings.ContainsRune(identChars, rune(word[i])) {
				return failAt(r, from, &Diagnostic{
					Kind:     DiagUnexpectedToken,
					Span:     Span{Start: start, End: r.at()},
					Expected: describe(n),
				})
			}
		}
		return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil

	case kindQuoted:
		return matchQuoted(r, start)

	case kindString:
		if r.peek() == '"' {
			return matchQuoted(r, start)
		}
		word := r.readWord()
		if word == "" {
			return failAt(r, from, expectedHere(n, r, start))
		}
		return Token{Text: word, Span: Span{Start: start, End: r.at()}}, nil

	case kindBareText:
		text := r.readRest()
		if text == "" && !n.emptyOK {
			return failAt(r, from, expectedHere(n, r, start))
		}
		return Token{Text: text, Span: Span{Start: start, End: r.at()}}, nil
	}
	panic("command: unknown node kind")
}

// failAt restores the reader before reporting a lexical mismatch, so
// the failed attempt counts as having consumed nothing past from.
func failAt(r *reader, from int, d *Diagnostic) (Token, *Diagnostic) {
	r.restore(from)
	return Token{}, d
}

func matchQuoted(r *reader, start Position) (Token, *Diagnostic) {
	from := r.save()
	if r.peek() != '"' {
		if r.eol() {
			return Token{}, &Diagnostic{
				Kind:     DiagUnexpectedEndOfLine,
				Span:     Span{Start: start, End: start},
				Expected: "quoted string",
			}
		}
		r.next()
		return failAt(r, from, &Diagnostic{
			Kind:     DiagUnexpectedToken,
			Span:     Span{Start: start, End: r.at()},
			Expected: "quoted string",
		})
	}
	r.next()
	for {
		if r.eol() {
			return Token{}, &Diagnostic{
				Kind: DiagUnterminatedString,
				Span: Span{Start: start, End: r.at()},
			}
		}
		ch := r.next()
		if ch == '"' {
			break
		}
		if ch == '\\' && !r.eol() {
			r.next()
		}
	}
	return Token{Text: r.line[from:r.pos], Span: Span{Start: start, End: r.at()}}, nil
}

// expectedHere builds the failure for a token that is absent: at end of
// line this is the node's end-of-line diagnostic (by default
// unexpected_end_of_line), otherwise the next character simply does not
// start a token of this kind.
func expectedHere(n *Node, r *reader, start Position) *Diagnostic {
	if r.eol() {
		kind := n.eolKind
		if kind == "" {
			kind = DiagUnexpectedEndOfLine
		}
		return &Diagnostic{Kind: kind, Span: Span{Start: start, End: start}, Expected: describe(n)}
	}
	r.next()
	return &Diagnostic{
		Kind:     DiagUnexpectedToken,
		Span:     Span{Start: start, End: r.at()},
		Expected: describe(n),
	}
}

func badNumber(n *Node, r *reader, start Position) *Diagnostic {
	if r.eol() {
		return expectedHere(n, r, start)
	}
	raw := r.readWord()
	if raw == "" {
		return expectedHere(n, r, start)
	}
	return &Diagnostic{
		Kind: DiagInvalidNumber,
		Span: Span{Start: start, End: r.at()},
		Raw:  raw,
	}
}

func checkBounds(n *Node, value float64, start, end Position) *Diagnostic {
	if n.nonZero && value == 0 {
		return &Diagnostic{Kind: DiagNumberIsZero, Span: Span{Start: start, End: end}}
	}
	if n.ranged && (value < n.min || value > n.max) {
		return &Diagnostic{
			Kind: DiagNumberOutOfRange,
			Span: Span{Start: start, End: end},
			Min:  n.min,
			Max:  n.max,
		}
	}
	return nil
}
