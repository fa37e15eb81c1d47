// Package instance keeps a second interactive browser from starting while
// one is already open.
package instance

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/gofrs/flock"

	"github.com/lvim-tech/lv2launch/pkg/utils"
)

// ErrAlreadyRunning is returned by Acquire when another process holds the lock.
var ErrAlreadyRunning = errors.New("another lv2launch instance is already running")

// Lock is a held single-instance lock.
type Lock struct {
	path string
	lock *flock.Flock
}

// DefaultPath returns the lock file location in the runtime dir.
func DefaultPath() string {
	return filepath.Join(utils.GetRuntimeDir(), "lv2launch.lock")
}

// Acquire takes the lock at path without blocking.
func Acquire(path string) (*Lock, error) {
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, fmt.Errorf("create lock dir: %w", err)
	}
	fl := flock.New(path)
	ok, err := fl.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return nil, ErrAlreadyRunning
	}
	return &Lock{path: path, lock: fl}, nil
}

// Path returns the lock file path.
func (l *Lock) Path() string {
	return l.path
}

// Release drops the lock. It is safe to call on a nil Lock.
func (l *Lock) Release() error {
	if l == nil {
		return nil
	}
	return l.lock.Unlock()
}
