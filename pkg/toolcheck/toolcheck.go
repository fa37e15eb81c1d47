// Package toolcheck verifies that the external executables lv2launch drives
// are resolvable on PATH before any catalog or window is built.
package toolcheck

import (
	"fmt"
	"os/exec"
	"strings"

	"github.com/lvim-tech/lv2launch/pkg/utils"
)

// Notification shown when a required tool is missing.
const (
	NotificationTitle = "Plugin Loader"
	NotificationBody  = "jalv or/and lv2ls not installed\nPlease install jalv and lv2ls"
)

// Requirement defines an external executable lv2launch relies on.
type Requirement struct {
	Name     string
	Command  string
	Optional bool
}

// Status reports the availability of a requirement.
type Status struct {
	Requirement
	Available bool
	Path      string
	Detail    string
}

// ToolsMissingError lists the required tools that could not be resolved.
type ToolsMissingError struct {
	Missing []Status
}

func (e *ToolsMissingError) Error() string {
	names := make([]string, 0, len(e.Missing))
	for _, s := range e.Missing {
		names = append(names, s.Command)
	}
	return fmt.Sprintf("required tools not found in PATH: %s", strings.Join(names, ", "))
}

// Check resolves every requirement against PATH.
func Check(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		req.Command = strings.TrimSpace(req.Command)
		status := Status{Requirement: req}
		if req.Command == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		path, err := exec.LookPath(req.Command)
		if err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", req.Command)
			results = append(results, status)
			continue
		}
		status.Available = true
		status.Path = path
		results = append(results, status)
	}
	return results
}

// Available reports whether every named executable resolves on PATH.
func Available(names ...string) bool {
	for _, name := range names {
		if strings.TrimSpace(name) == "" || !utils.CommandExists(name) {
			return false
		}
	}
	return true
}

// Missing returns the unavailable statuses; optional ones only when
// includeOptional is set.
func Missing(statuses []Status, includeOptional bool) []Status {
	var missing []Status
	for _, s := range statuses {
		if s.Available {
			continue
		}
		if s.Optional && !includeOptional {
			continue
		}
		missing = append(missing, s)
	}
	return missing
}

// Gate checks the requirements and, when a required tool is missing, sends
// an error notification and returns a *ToolsMissingError. The caller must
// stop before building any UI. The statuses are returned in both cases.
func Gate(requirements []Requirement, notifier utils.Notifier) ([]Status, error) {
	statuses := Check(requirements)
	missing := Missing(statuses, false)
	if len(missing) == 0 {
		return statuses, nil
	}
	if notifier != nil {
		notifier.Error(NotificationTitle, NotificationBody)
	}
	return statuses, &ToolsMissingError{Missing: missing}
}
