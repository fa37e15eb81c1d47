package launcher

import "errors"

var (
	// ErrCancelled is returned when the user dismisses the menu.
	ErrCancelled = errors.New("cancelled by user")

	// ErrNoLauncher is returned when no known picker is installed.
	ErrNoLauncher = errors.New("no launcher available - please install rofi, dmenu, fzf, bemenu, or fuzzel")
)

// IsCancelled reports whether err means the user backed out.
func IsCancelled(err error) bool {
	return errors.Is(err, ErrCancelled)
}
