package launch

import "github.com/lvim-tech/lv2launch/pkg/catalog"

// Event is a user action reported by a frontend.
type Event interface {
	isEvent()
}

// QueryChanged carries the new filter text.
type QueryChanged struct {
	Query string
}

// EntryActivated is sent when the user activates (double-clicks, presses
// enter on) an entry.
type EntryActivated struct {
	Entry catalog.Entry
}

// VariantToggled flips the host variant.
type VariantToggled struct{}

// LaunchRequested asks for the current selection to be launched.
type LaunchRequested struct{}

func (QueryChanged) isEvent()    {}
func (EntryActivated) isEvent()  {}
func (VariantToggled) isEvent()  {}
func (LaunchRequested) isEvent() {}
