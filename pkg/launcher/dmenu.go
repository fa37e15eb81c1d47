package launcher

func NewDmenu(opts Options) Launcher {
	return newMenu("dmenu", opts, func(prompt string) []string {
		return []string{"-p", prompt}
	})
}
