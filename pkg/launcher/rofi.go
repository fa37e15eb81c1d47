package launcher

// NewRofi runs rofi in dmenu mode.
func NewRofi(opts Options) Launcher {
	return newMenu("rofi", opts, func(prompt string) []string {
		return []string{"-dmenu", "-p", prompt}
	})
}
