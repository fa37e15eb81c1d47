// Package host maps the two interchangeable plugin host builds onto a
// two-state toggle.
package host

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Variant selects one of the two host executables.
type Variant int

const (
	// VariantA is the primary host and the initial state.
	VariantA Variant = iota
	// VariantB is the secondary host.
	VariantB
)

// ParseVariant parses "a" or "b" (case-insensitive).
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "a":
		return VariantA, nil
	case "b":
		return VariantB, nil
	default:
		return VariantA, fmt.Errorf("unknown host variant %q (want a or b)", s)
	}
}

// Toggle returns the other variant.
func (v Variant) Toggle() Variant {
	if v == VariantA {
		return VariantB
	}
	return VariantA
}

// String returns "a" or "b".
func (v Variant) String() string {
	if v == VariantB {
		return "b"
	}
	return "a"
}

// Hosts names the executables behind each variant.
type Hosts struct {
	Primary   string
	Secondary string
}

// ExecutableFor returns the executable for v.
func (h Hosts) ExecutableFor(v Variant) string {
	if v == VariantB {
		return h.Secondary
	}
	return h.Primary
}

// Label is the short toggle label for v: the part of the executable name
// after the last dot ("jalv.gtk3" gives "gtk3"), or the base name.
func (h Hosts) Label(v Variant) string {
	base := filepath.Base(h.ExecutableFor(v))
	if i := strings.LastIndex(base, "."); i >= 0 && i < len(base)-1 {
		return base[i+1:]
	}
	return base
}
