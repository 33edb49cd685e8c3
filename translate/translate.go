// Package translate renders structured diagnostics as human-readable
// text. Message templates are plain JSON keyed by diagnostic kind, with
// ${name} placeholders filled from the diagnostic's parameters; the
// en_US table ships embedded and acts as the fallback for every other
// locale.
package translate

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bedrock-tools/mccmd/command"
)

//go:embed data/en_US.json
var enUSData []byte

const fallbackLocale = "en_US"

// Table is a locale-aware diagnostic translator.
type Table struct {
	locales map[string]map[string]string
}

var _ command.Translator = (*Table)(nil)

// New returns a table holding only the embedded en_US messages.
func New() *Table {
	t := &Table{locales: make(map[string]map[string]string)}
	if err := t.LoadLocale(fallbackLocale, bytes.NewReader(enUSData)); err != nil {
		panic(fmt.Sprintf("translate: embedded en_US table is invalid: %v", err))
	}
	return t
}

// LoadLocale reads a template table for one locale from JSON: an object
// mapping diagnostic kind to template string. Loading a locale twice
// replaces it.
func (t *Table) LoadLocale(locale string, r io.Reader) error {
	var templates map[string]string
	if err := json.NewDecoder(r).Decode(&templates); err != nil {
		return fmt.Errorf("decode %s templates: %w", locale, err)
	}
	t.locales[locale] = templates
	return nil
}

// LoadLocaleFile is LoadLocale reading from a file path.
func (t *Table) LoadLocaleFile(locale, path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open %s templates: %w", locale, err)
	}
	defer f.Close()
	return t.LoadLocale(locale, f)
}

// Resolve renders one diagnostic. Missing locales and missing templates
// fall back to en_US; a kind unknown even there renders as the kind
// itself so new diagnostics degrade visibly instead of silently.
func (t *Table) Resolve(kind command.DiagnosticKind, params map[string]string, locale string) string {
	tpl, ok := t.lookup(locale, string(kind))
	if !ok {
		return string(kind)
	}
	return expand(tpl, params)
}

func (t *Table) lookup(locale, key string) (string, bool) {
	if templates, ok := t.locales[locale]; ok {
		if tpl, ok := templates[key]; ok {
			return tpl, true
		}
	}
	if locale == fallbackLocale {
		return "", false
	}
	tpl, ok := t.locales[fallbackLocale][key]
	return tpl, ok
}

// expand substitutes ${name} placeholders. Unknown placeholders are
// left in place so broken templates are easy to spot.
func expand(tpl string, params map[string]string) string {
	var out strings.Builder
	for {
		i := strings.Index(tpl, "${")
		if i < 0 {
			out.WriteString(tpl)
			return out.String()
		}
		j := strings.Index(tpl[i:], "}")
		if j < 0 {
			out.WriteString(tpl)
			return out.String()
		}
		out.WriteString(tpl[:i])
		name := tpl[i+2 : i+j]
		if val, ok := params[name]; ok {
			out.WriteString(val)
		} else {
			out.WriteString(tpl[i : i+j+1])
		}
		tpl = tpl[i+j+1:]
	}
}
