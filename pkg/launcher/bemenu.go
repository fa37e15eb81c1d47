package launcher

func NewBemenu(opts Options) Launcher {
	return newMenu("bemenu", opts, func(prompt string) []string {
		return []string{"-p", prompt}
	})
}
