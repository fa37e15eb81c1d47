package launcher

import "os"

// NewFzf runs fzf. Its interface is drawn on stderr, which is passed
// through to the terminal. The query is printed too, so text that matches
// no option still comes back as the choice.
func NewFzf(opts Options) Launcher {
	m := newMenu("fzf", opts, func(prompt string) []string {
		return []string{"--prompt", prompt + "> "}
	})
	m.stderr = os.Stderr
	m.printQuery = true
	return m
}
