package command

import (
	"fmt"
	"strings"
)

// DiagnosticKind tags a parse problem. Kinds double as lookup keys for
// the Translator, so they are stable strings rather than iota values.
type DiagnosticKind string

const (
	DiagUnexpectedToken       DiagnosticKind = "unexpected_token"
	DiagInvalidNumber         DiagnosticKind = "invalid_number"
	DiagNumberOutOfRange      DiagnosticKind = "number_out_of_range"
	DiagNumberIsZero          DiagnosticKind = "number_is_zero"
	DiagUnknownEnumerateValue DiagnosticKind = "unknown_enumerate_value"
	DiagMissingAdjacentToken  DiagnosticKind = "missing_adjacent_token"
	DiagTrailingInput         DiagnosticKind = "trailing_input"
	DiagUnterminatedSelector  DiagnosticKind = "unterminated_selector_arguments"
	DiagUnterminatedString    DiagnosticKind = "unterminated_string"
	DiagUnexpectedEndOfLine   DiagnosticKind = "unexpected_end_of_line"
	DiagNestingTooDeep        DiagnosticKind = "nesting_too_deep"
)

// Diagnostic is a structured, localizable parse problem. It carries no
// rendered text; the Translator resolves it at the boundary.
type Diagnostic struct {
	Kind DiagnosticKind
	Span Span

	// Kind-specific parameters. Only the fields relevant to Kind are
	// populated.
	Expected     string   // unexpected_token, missing_adjacent_token, unexpected_end_of_line
	Raw          string   // invalid_number
	Min, Max     float64  // number_out_of_range
	Alternatives []string // unknown_enumerate_value
	Limit        int      // nesting_too_deep
}

// Params flattens the kind-specific fields into the substitution map
// consumed by a Translator.
func (d Diagnostic) Params() map[string]string {
	params := make(map[string]string)
	switch d.Kind {
	case DiagUnexpectedToken, DiagMissingAdjacentToken, DiagUnexpectedEndOfLine:
		params["expected"] = d.Expected
	case DiagInvalidNumber:
		params["raw"] = d.Raw
	case DiagNumberOutOfRange:
		params["min"] = fmt.Sprintf("%g", d.Min)
		params["max"] = fmt.Sprintf("%g", d.Max)
	case DiagUnknownEnumerateValue:
		params["alternatives"] = strings.Join(d.Alternatives, ", ")
	case DiagNestingTooDeep:
		params["limit"] = fmt.Sprintf("%d", d.Limit)
	}
	return params
}

// Translator resolves a diagnostic kind plus its parameters into
// localized text. Implementations must cover every DiagnosticKind.
type Translator interface {
	Resolve(kind DiagnosticKind, params map[string]string, locale string) string
}

// Render resolves d through tr for the given locale.
func Render(d Diagnostic, tr Translator, locale string) string {
	return tr.Resolve(d.Kind, d.Params(), locale)
}
