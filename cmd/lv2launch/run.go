package main

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/lv2launch/internal/instance"
	"github.com/lvim-tech/lv2launch/internal/tui"
	"github.com/lvim-tech/lv2launch/pkg/launch"
	"github.com/lvim-tech/lv2launch/pkg/logging"
	"github.com/lvim-tech/lv2launch/pkg/view"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:         "run",
		Short:       "Open the interactive plugin browser (default)",
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowser(cmd, ctx)
		},
	}
}

func runBrowser(cmd *cobra.Command, ctx *commandContext) error {
	logger := *logging.FromContext(cmd.Context())

	if err := ctx.gate(); err != nil {
		return err
	}

	variant, err := ctx.initialVariant()
	if err != nil {
		return err
	}

	if ctx.config.SingleInstance {
		lock, err := instance.Acquire(instance.DefaultPath())
		if err != nil {
			if errors.Is(err, instance.ErrAlreadyRunning) {
				ctx.notifier.Notify("Plugin Loader", "lv2launch is already running")
			}
			return err
		}
		defer func() {
			if err := lock.Release(); err != nil {
				logger.Warn().Err(err).Msg("failed to release instance lock")
			}
		}()
	}

	cat, err := ctx.loadCatalog(cmd.Context())
	if err != nil {
		logger.Warn().Err(err).Int("plugins", cat.Len()).Msg("continuing with partial catalog")
	}

	ctrl := launch.NewController(view.New(cat), ctx.hosts(),
		launch.WithVariant(variant),
		launch.WithLogger(logger),
	)

	p := tea.NewProgram(tui.New(cmd.Context(), ctrl, logger),
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("plugin browser: %w", err)
	}
	return nil
}
