// Package catalog holds the plugin catalog: an ordered mapping from plugin
// display name to plugin identifier, built once from the discovery tool.
package catalog

import (
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Entry is one plugin: its display name and canonical identifier (a URI).
type Entry struct {
	Name       string
	Identifier string
}

// Mismatch records discovery outputs whose line counts disagreed.
type Mismatch struct {
	Names       int
	Identifiers int
}

// Catalog is an ordered name to identifier mapping. It is never mutated
// after construction.
type Catalog struct {
	entries  []Entry
	index    map[string]int
	mismatch *Mismatch
}

// New zips names and identifiers positionally. When the lists differ in
// length the extra lines are dropped and the catalog records the mismatch.
// A repeated name keeps its first position and takes the later identifier.
// Blank lines are paired like any other, so N names and N identifiers
// always give N entries unless names repeat.
func New(names, identifiers []string) *Catalog {
	n := min(len(names), len(identifiers))
	c := &Catalog{
		entries: make([]Entry, 0, n),
		index:   make(map[string]int, n),
	}
	if len(names) != len(identifiers) {
		c.mismatch = &Mismatch{Names: len(names), Identifiers: len(identifiers)}
	}
	for i := 0; i < n; i++ {
		c.put(Entry{Name: names[i], Identifier: identifiers[i]})
	}
	return c
}

// FromEntries builds a catalog from explicit entries, in order.
func FromEntries(entries ...Entry) *Catalog {
	c := &Catalog{
		entries: make([]Entry, 0, len(entries)),
		index:   make(map[string]int, len(entries)),
	}
	for _, e := range entries {
		c.put(e)
	}
	return c
}

func (c *Catalog) put(e Entry) {
	if i, ok := c.index[e.Name]; ok {
		c.entries[i].Identifier = e.Identifier
		return
	}
	c.index[e.Name] = len(c.entries)
	c.entries = append(c.entries, e)
}

// Len returns the number of entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.entries)
}

// Entries returns a copy of the entries in catalog order.
func (c *Catalog) Entries() []Entry {
	if c == nil {
		return nil
	}
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Lookup returns the identifier registered for name.
func (c *Catalog) Lookup(name string) (string, bool) {
	if c == nil {
		return "", false
	}
	i, ok := c.index[name]
	if !ok {
		return "", false
	}
	return c.entries[i].Identifier, true
}

// Mismatch reports whether the discovery outputs had different line counts.
func (c *Catalog) Mismatch() (Mismatch, bool) {
	if c == nil || c.mismatch == nil {
		return Mismatch{}, false
	}
	return *c.mismatch, true
}

// Sorted returns a copy of the catalog ordered by name using the collation
// rules of tag. Ties keep discovery order.
func (c *Catalog) Sorted(tag language.Tag) *Catalog {
	entries := c.Entries()
	col := collate.New(tag, collate.IgnoreCase, collate.Loose)
	sort.SliceStable(entries, func(i, j int) bool {
		return col.CompareString(entries[i].Name, entries[j].Name) < 0
	})

	sorted := FromEntries(entries...)
	if c != nil {
		sorted.mismatch = c.mismatch
	}
	return sorted
}
