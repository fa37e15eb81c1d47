package launch

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNoSelection is returned by Launch before any entry was activated.
var ErrNoSelection = errors.New("no plugin selected")

// NoSelectionError is the typed form of ErrNoSelection.
type NoSelectionError struct{}

func (NoSelectionError) Error() string {
	return ErrNoSelection.Error()
}

// Is makes errors.Is(err, ErrNoSelection) hold.
func (NoSelectionError) Is(target error) bool {
	return target == ErrNoSelection
}

// LaunchError is returned when the host process could not be started.
type LaunchError struct {
	Command []string
	Err     error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to launch %s: %v", strings.Join(e.Command, " "), e.Err)
}

// Unwrap implements errors.Unwrap
func (e *LaunchError) Unwrap() error {
	return e.Err
}
