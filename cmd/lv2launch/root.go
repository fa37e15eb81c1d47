package main

import (
	"github.com/spf13/cobra"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// newRootCommand builds the CLI. The returned context owns the log file;
// run the command through execute so it is closed on every path.
func newRootCommand() (*cobra.Command, *commandContext) {
	ctx := &commandContext{}

	rootCmd := &cobra.Command{
		Use:   "lv2launch",
		Short: "Browse installed LV2 plugins and open them in jalv",
		Long: `lv2launch lists the LV2 plugins reported by lv2ls and starts the
selected one in a plugin host (jalv.gtk3 or jalv.qt5 by default).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			return ctx.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, ctx)
		},
		Annotations: map[string]string{annotationInteractive: "true"},
	}

	rootCmd.PersistentFlags().StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path")
	rootCmd.PersistentFlags().StringVar(&ctx.logLevelFlag, "log-level", "", "Log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&ctx.hostFlag, "host", "", "Initial host variant (a or b)")

	rootCmd.AddCommand(newRunCommand(ctx))
	rootCmd.AddCommand(newPickCommand(ctx))
	rootCmd.AddCommand(newListCommand(ctx))
	rootCmd.AddCommand(newCheckCommand(ctx))
	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd, ctx
}

// execute runs cmd and releases what setup opened, whether or not the
// command failed. Cobra skips post-run hooks after an error.
func execute(cmd *cobra.Command, ctx *commandContext) error {
	defer ctx.close()
	return cmd.Execute()
}
