// Package launcher drives external menu programs (rofi, dmenu, fzf, bemenu,
// fuzzel) behind one interface: options go in on stdin, the chosen line
// comes back on stdout.
package launcher

// Launcher shows a list of options and returns the one the user picked.
type Launcher interface {
	// Name is the picker name as used in config ("rofi", "fzf", ...).
	Name() string
	// Show blocks until the user picks an option or cancels.
	Show(options []string, prompt string) (string, error)
}
