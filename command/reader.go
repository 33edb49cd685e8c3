package command

// reader is a cursor over a single source line. Matchers consume bytes
// through it; the walker snapshots and restores the offset to keep
// failed branch attempts atomic.
type reader struct {
	line string
	no   int
	pos  int
}

func newReader(line string, no int) *reader {
	return &reader{line: line, no: no}
}

func (r *reader) at() Position {
	return Position{Line: r.no, Column: r.pos + 1}
}

func (r *reader) eol() bool {
	return r.pos >= len(r.line)
}

func (r *reader) peek() byte {
	if r.eol() {
		return 0
	}
	return r.line[r.pos]
}

func (r *reader) next() byte {
	if r.eol() {
		return 0
	}
	ch := r.line[r.pos]
	r.pos++
	return ch
}

func (r *reader) save() int {
	return r.pos
}

func (r *reader) restore(pos int) {
	r.pos = pos
}

func isSpace(ch byte) bool {
	return ch == ' ' || ch == '\t'
}

// Argument terminators. A strict numeric token must end at one of
// these (or at end of line); words never extend past them.
func isTerminator(ch byte) bool {
	switch ch {
	case ' ', '\t', ',', '=', '[', ']', '{', '}', '"':
		return true
	}
	return false
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isSign(ch byte) bool {
	return ch == '+' || ch == '-'
}

func (r *reader) skipSpaces() bool {
	start := r.pos
	for !r.eol() && isSpace(r.peek()) {
		r.pos++
	}
	return r.pos > start
}

// atBoundary reports whether the cursor sits at a spot where an
// argument may end: end of line or a terminator byte.
func (r *reader) atBoundary() bool {
	return r.eol() || isTerminator(r.peek())
}

// readWord consumes bytes up to the next terminator. The result may be
// empty when the cursor already sits at a boundary.
func (r *reader) readWord() string {
	start := r.pos
	for !r.eol() && !isTerminator(r.peek()) {
		r.pos++
	}
	return r.line[start:r.pos]
}

// readInt consumes an optional sign followed by digits. It reports
// failure without consuming anything when no digits follow.
func (r *reader) readInt() (string, bool) {
	start := r.pos
	if !r.eol() && isSign(r.peek()) {
		r.pos++
	}
	digits := 0
	for !r.eol() && isDigit(r.peek()) {
		r.pos++
		digits++
	}
	if digits == 0 {
		r.pos = start
		return "", false
	}
	return r.line[start:r.pos], true
}

// readFloat consumes an optional sign, an integer part, and an optional
// fraction. With intPartOptional the integer part may be missing as
// long as a fraction is present (used by ~.5 style offsets).
func (r *reader) readFloat(intPartOptional bool) (string, bool) {
	start := r.pos
	if !r.eol() && isSign(r.peek()) {
		r.pos++
	}
	intDigits := 0
	for !r.eol() && isDigit(r.peek()) {
		r.pos++
		intDigits++
	}
	fracDigits := 0
	if !r.eol() && r.peek() == '.' {
		mark := r.pos
		r.pos++
		for !r.eol() && isDigit(r.peek()) {
			r.pos++
			fracDigits++
		}
		if fracDigits == 0 {
			r.pos = mark
		}
	}
	if intDigits == 0 && !(intPartOptional && fracDigits > 0) {
		r.pos = start
		return "", false
	}
	return r.line[start:r.pos], true
}

// readRest consumes everything up to the end of the line.
func (r *reader) readRest() string {
	start := r.pos
	r.pos = len(r.line)
	return r.line[start:]
}
