package catalog

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
	"pgregory.net/rapid"
)

func TestNew_ZipsPositionally(t *testing.T) {
	c := New(
		[]string{"Synth A", "Synth B", "Delay"},
		[]string{"urn:a", "urn:b", "urn:d"},
	)

	assert.Equal(t, []Entry{
		{Name: "Synth A", Identifier: "urn:a"},
		{Name: "Synth B", Identifier: "urn:b"},
		{Name: "Delay", Identifier: "urn:d"},
	}, c.Entries())
	assert.Equal(t, 3, c.Len())

	id, ok := c.Lookup("Delay")
	assert.True(t, ok)
	assert.Equal(t, "urn:d", id)

	_, ok = c.Lookup("Reverb")
	assert.False(t, ok)

	_, mismatched := c.Mismatch()
	assert.False(t, mismatched)
}

func TestNew_LineCountMismatchTruncates(t *testing.T) {
	tests := []struct {
		name        string
		names       []string
		identifiers []string
		want        int
	}{
		{name: "more names", names: []string{"A", "B", "C"}, identifiers: []string{"urn:a", "urn:b"}, want: 2},
		{name: "more identifiers", names: []string{"A"}, identifiers: []string{"urn:a", "urn:b", "urn:c"}, want: 1},
		{name: "no identifiers", names: []string{"A", "B"}, identifiers: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.names, tt.identifiers)
			assert.Equal(t, tt.want, c.Len())

			m, ok := c.Mismatch()
			require.True(t, ok)
			assert.Equal(t, Mismatch{Names: len(tt.names), Identifiers: len(tt.identifiers)}, m)
		})
	}
}

func TestNew_DuplicateNameLastWriteWins(t *testing.T) {
	c := New(
		[]string{"Amp", "Delay", "Amp"},
		[]string{"urn:amp1", "urn:delay", "urn:amp2"},
	)

	assert.Equal(t, []Entry{
		{Name: "Amp", Identifier: "urn:amp2"},
		{Name: "Delay", Identifier: "urn:delay"},
	}, c.Entries())
}

func TestNew_KeepsBlankLines(t *testing.T) {
	c := New([]string{"A", "", "C"}, []string{"a", "b", "c"})

	assert.Equal(t, []Entry{
		{Name: "A", Identifier: "a"},
		{Name: "", Identifier: "b"},
		{Name: "C", Identifier: "c"},
	}, c.Entries())
	id, ok := c.Lookup("")
	assert.True(t, ok)
	assert.Equal(t, "b", id)
}

func TestNew_BlankIdentifierKeepsPosition(t *testing.T) {
	c := New([]string{"A", "B"}, []string{"urn:a", ""})

	require.Equal(t, 2, c.Len())
	assert.Equal(t, Entry{Name: "B", Identifier: ""}, c.Entries()[1])
}

func TestEntries_ReturnsCopy(t *testing.T) {
	c := FromEntries(Entry{Name: "A", Identifier: "urn:a"})
	entries := c.Entries()
	entries[0].Name = "changed"

	assert.Equal(t, "A", c.Entries()[0].Name)
}

func TestNilCatalog(t *testing.T) {
	var c *Catalog
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Entries())
	_, ok := c.Lookup("A")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Sorted(language.English).Len())
}

func TestSorted(t *testing.T) {
	c := FromEntries(
		Entry{Name: "delay", Identifier: "urn:d"},
		Entry{Name: "Amp", Identifier: "urn:a"},
		Entry{Name: "Échos", Identifier: "urn:e"},
		Entry{Name: "bass", Identifier: "urn:b"},
	)

	sorted := c.Sorted(language.English)

	var names []string
	for _, e := range sorted.Entries() {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"Amp", "bass", "delay", "Échos"}, names)
	assert.Equal(t, []string{"delay", "Amp", "Échos", "bass"}, namesOf(c), "original order is untouched")
}

func namesOf(c *Catalog) []string {
	var names []string
	for _, e := range c.Entries() {
		names = append(names, e.Name)
	}
	return names
}

// For N distinct names and N identifiers, the catalog has exactly N entries
// and entry i is (names[i], identifiers[i]).
func TestNew_PropertyBased_PositionalZip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 50).Draw(t, "n")
		names := make([]string, n)
		identifiers := make([]string, n)
		for i := 0; i < n; i++ {
			names[i] = fmt.Sprintf("%s-%d", rapid.StringMatching(`[A-Za-z ]{1,12}`).Draw(t, "name"), i)
			identifiers[i] = fmt.Sprintf("urn:%d:%s", i, rapid.StringMatching(`[a-z0-9]{1,8}`).Draw(t, "id"))
		}

		c := New(names, identifiers)

		assert.Equal(t, n, c.Len())
		for i, e := range c.Entries() {
			assert.Equal(t, names[i], e.Name)
			assert.Equal(t, identifiers[i], e.Identifier)
		}
	})
}

// Mismatched line counts always yield min(len(names), len(identifiers)) entries.
func TestNew_PropertyBased_Truncation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		nNames := rapid.IntRange(0, 30).Draw(t, "names")
		nIDs := rapid.IntRange(0, 30).Draw(t, "identifiers")
		names := make([]string, nNames)
		for i := range names {
			names[i] = fmt.Sprintf("plugin %d", i)
		}
		identifiers := make([]string, nIDs)
		for i := range identifiers {
			identifiers[i] = fmt.Sprintf("urn:%d", i)
		}

		c := New(names, identifiers)

		assert.Equal(t, min(nNames, nIDs), c.Len())
		_, mismatched := c.Mismatch()
		assert.Equal(t, nNames != nIDs, mismatched)
	})
}
