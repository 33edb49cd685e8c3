package translate

import (
	"strings"
	"testing"

	"github.com/bedrock-tools/mccmd/command"
)

var allKinds = []command.DiagnosticKind{
	command.DiagUnexpectedToken,
	command.DiagInvalidNumber,
	command.DiagNumberOutOfRange,
	command.DiagNumberIsZero,
	command.DiagUnknownEnumerateValue,
	command.DiagMissingAdjacentToken,
	command.DiagTrailingInput,
	command.DiagUnterminatedSelector,
	command.DiagUnterminatedString,
	command.DiagUnexpectedEndOfLine,
	command.DiagNestingTooDeep,
}

func TestBuiltinTableCoversEveryKind(t *testing.T) {
	tbl := New()
	params := map[string]string{
		"expected":     "x",
		"raw":          "x",
		"min":          "0",
		"max":          "1",
		"alternatives": "a, b",
		"limit":        "128",
	}
	for _, kind := range allKinds {
		got := tbl.Resolve(kind, params, "en_US")
		if got == string(kind) {
			t.Errorf("%s: no template in the built-in table", kind)
		}
		if strings.Contains(got, "${") {
			t.Errorf("%s: unsubstituted placeholder in %q", kind, got)
		}
	}
}

func TestResolveSubstitutesParams(t *testing.T) {
	tbl := New()
	d := command.Diagnostic{Kind: command.DiagNumberOutOfRange, Min: 1, Max: 32767}
	got := command.Render(d, tbl, "en_US")
	want := "number must be between 1 and 32767"
	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestUnknownLocaleFallsBack(t *testing.T) {
	tbl := New()
	want := tbl.Resolve(command.DiagNumberIsZero, nil, "en_US")
	if got := tbl.Resolve(command.DiagNumberIsZero, nil, "de_DE"); got != want {
		t.Errorf("fallback mismatch: %q vs %q", got, want)
	}
}

func TestUnknownKindRendersAsKind(t *testing.T) {
	tbl := New()
	if got := tbl.Resolve("made_up_kind", nil, "en_US"); got != "made_up_kind" {
		t.Errorf("Resolve() = %q, want the kind itself", got)
	}
}

func TestLoadLocaleOverrides(t *testing.T) {
	tbl := New()
	err := tbl.LoadLocale("de_DE", strings.NewReader(`{"number_is_zero": "Zahl darf nicht null sein"}`))
	if err != nil {
		t.Fatal(err)
	}

	if got := tbl.Resolve(command.DiagNumberIsZero, nil, "de_DE"); got != "Zahl darf nicht null sein" {
		t.Errorf("Resolve() = %q", got)
	}
	// Kinds the locale does not override still fall back.
	want := tbl.Resolve(command.DiagTrailingInput, nil, "en_US")
	if got := tbl.Resolve(command.DiagTrailingInput, nil, "de_DE"); got != want {
		t.Errorf("partial locale did not fall back: %q vs %q", got, want)
	}
}

func TestLoadLocaleRejectsBadJSON(t *testing.T) {
	tbl := New()
	if err := tbl.LoadLocale("xx", strings.NewReader("not json")); err == nil {
		t.Error("LoadLocale accepted invalid JSON")
	}
}

func TestExpandLeavesUnknownPlaceholders(t *testing.T) {
	got := expand("a ${known} b ${unknown}", map[string]string{"known": "K"})
	if got != "a K b ${unknown}" {
		t.Errorf("expand() = %q", got)
	}
}
