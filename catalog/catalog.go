// Package catalog provides the identifier tables backing completion
// for open-ended arguments: items, blocks, entities and the like. The
// built-in tables ship embedded; callers can load their own to track a
// newer game release or an addon pack.
package catalog

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"

	"github.com/bedrock-tools/mccmd/command"
)

//go:embed data/catalog.json
var builtinData []byte

// entry mirrors command.CatalogEntry for decoding.
type entry struct {
	ID   string `json:"id"`
	Hint string `json:"hint,omitempty"`
}

// Catalog maps identifier categories to ordered entry lists. The order
// in the source data is the order completion presents them in.
type Catalog struct {
	categories map[string][]command.CatalogEntry
}

var _ command.Catalog = (*Catalog)(nil)

// Load reads a catalog from JSON: an object keyed by category, each
// value an array of {"id": ..., "hint": ...} objects.
func Load(r io.Reader) (*Catalog, error) {
	var raw map[string][]entry
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	c := &Catalog{categories: make(map[string][]command.CatalogEntry, len(raw))}
	for category, entries := range raw {
		list := make([]command.CatalogEntry, len(entries))
		for i, e := range entries {
			if e.ID == "" {
				return nil, fmt.Errorf("catalog category %q: entry %d has no id", category, i)
			}
			list[i] = command.CatalogEntry{ID: e.ID, Hint: e.Hint}
		}
		c.categories[category] = list
	}
	return c, nil
}

// Builtin returns the embedded default catalog.
func Builtin() *Catalog {
	c, err := Load(bytes.NewReader(builtinData))
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded data is invalid: %v", err))
	}
	return c
}

// List returns the entries of a category in declaration order. Unknown
// categories yield nil, which completion renders as a placeholder.
func (c *Catalog) List(category string) []command.CatalogEntry {
	return c.categories[category]
}

// Categories returns the known category names.
func (c *Catalog) Categories() []string {
	out := make([]string, 0, len(c.categories))
	for name := range c.categories {
		out = append(out, name)
	}
	return out
}
