package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lvim-tech/lv2launch/pkg/config"
)

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "init",
		Short:       "Write the default config to ~/.config/lv2launch/config.toml",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := config.InitUserConfig()
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config initialized at: %s\n", path)
			fmt.Fprintln(out, "\nYou can now edit the config file to customize lv2launch.")
			return nil
		},
	}
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:         "version",
		Short:       "Show version information",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationSkipConfig: "true"},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "lv2launch version %s\n", version)
		},
	}
}
