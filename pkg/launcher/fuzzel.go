package launcher

// NewFuzzel runs fuzzel. The --dmenu flag comes from the configured args.
func NewFuzzel(opts Options) Launcher {
	return newMenu("fuzzel", opts, func(prompt string) []string {
		return []string{"--prompt", prompt + ": "}
	})
}
