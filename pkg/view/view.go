// Package view derives the filtered, ordered list of catalog entries shown
// to the user. The catalog itself is never modified.
package view

import (
	"strings"

	"github.com/lvim-tech/lv2launch/pkg/catalog"
)

// View holds the current query and the entries that match it.
type View struct {
	catalog *catalog.Catalog
	query   string
	visible []catalog.Entry
}

// New returns a view over c showing every entry.
func New(c *catalog.Catalog) *View {
	v := &View{catalog: c}
	v.Rebuild()
	return v
}

// SetQuery updates the filter and recomputes the visible entries.
func (v *View) SetQuery(q string) {
	v.query = q
	v.Rebuild()
}

// Query returns the current filter.
func (v *View) Query() string {
	return v.query
}

// Rebuild re-derives the visible entries from the catalog using the current
// query.
func (v *View) Rebuild() {
	v.visible = Filter(v.catalog.Entries(), v.query)
}

// Reload swaps in a new catalog and rebuilds, keeping the query.
func (v *View) Reload(c *catalog.Catalog) {
	v.catalog = c
	v.Rebuild()
}

// Visible returns the matching entries in catalog order.
func (v *View) Visible() []catalog.Entry {
	out := make([]catalog.Entry, len(v.visible))
	copy(out, v.visible)
	return out
}

// At returns the i-th visible entry.
func (v *View) At(i int) (catalog.Entry, bool) {
	if i < 0 || i >= len(v.visible) {
		return catalog.Entry{}, false
	}
	return v.visible[i], true
}

// Len returns the number of visible entries.
func (v *View) Len() int {
	return len(v.visible)
}

// Total returns the number of entries in the catalog.
func (v *View) Total() int {
	return v.catalog.Len()
}

// Filter keeps the entries whose lowercased name contains the lowercased
// query, preserving order. An empty query keeps everything.
func Filter(entries []catalog.Entry, query string) []catalog.Entry {
	if query == "" {
		return entries
	}
	q := strings.ToLower(query)
	filtered := make([]catalog.Entry, 0, len(entries))
	for _, e := range entries {
		if strings.Contains(strings.ToLower(e.Name), q) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
