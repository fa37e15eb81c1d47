package main

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/lvim-tech/lv2launch/pkg/catalog"
	"github.com/lvim-tech/lv2launch/pkg/launch"
	"github.com/lvim-tech/lv2launch/pkg/launcher"
	"github.com/lvim-tech/lv2launch/pkg/logging"
	"github.com/lvim-tech/lv2launch/pkg/utils"
	"github.com/lvim-tech/lv2launch/pkg/view"
)

const pickPrompt = "Plugins"

func newPickCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "pick [launcher]",
		Short: "Choose a plugin with rofi, dmenu, fzf, bemenu or fuzzel",
		Long: `Shows the plugin list in an external menu. The first entry toggles the
host; any other entry is launched. Text that matches no plugin name is used
as a filter and the menu is shown again.`,
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: launcher.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := *logging.FromContext(cmd.Context())

			if err := ctx.gate(); err != nil {
				return err
			}

			var l launcher.Launcher
			var err error
			if len(args) == 1 {
				l, err = launcher.New(args[0], ctx.config)
			} else {
				l, err = launcher.Detect(ctx.config.DefaultPicker, ctx.config)
			}
			if err != nil {
				return err
			}

			variant, err := ctx.initialVariant()
			if err != nil {
				return err
			}

			cat, err := ctx.loadCatalog(cmd.Context())
			if err != nil {
				logger.Warn().Err(err).Int("plugins", cat.Len()).Msg("continuing with partial catalog")
			}

			ctrl := launch.NewController(view.New(cat), ctx.hosts(),
				launch.WithVariant(variant),
				launch.WithLogger(logger),
			)
			logger.Debug().Str("launcher", l.Name()).Msg("starting picker")
			return runPicker(cmd.Context(), ctrl, cat, l, ctx.notifier, logger)
		},
	}
}

func toggleOption(ctrl *launch.Controller) string {
	return fmt.Sprintf("⇄ host: %s", ctrl.Status().HostLabel)
}

// runPicker shows the menu until a plugin is launched or the user cancels.
func runPicker(ctx context.Context, ctrl *launch.Controller, cat *catalog.Catalog, l launcher.Launcher, notifier utils.Notifier, logger zerolog.Logger) error {
	for {
		toggle := toggleOption(ctrl)
		options := []string{toggle}
		for _, e := range ctrl.View().Visible() {
			options = append(options, e.Name)
		}

		choice, err := l.Show(options, pickPrompt)
		if err != nil {
			if launcher.IsCancelled(err) {
				return nil
			}
			return err
		}

		if choice == toggle {
			if err := ctrl.Handle(ctx, launch.VariantToggled{}); err != nil {
				return err
			}
			continue
		}

		id, ok := cat.Lookup(choice)
		if !ok {
			if err := ctrl.Handle(ctx, launch.QueryChanged{Query: choice}); err != nil {
				return err
			}
			if ctrl.View().Len() == 0 {
				notifier.Notify("Plugin Loader", fmt.Sprintf("No plugin matches %q", choice))
				_ = ctrl.Handle(ctx, launch.QueryChanged{Query: ""})
			}
			continue
		}

		if err := ctrl.Handle(ctx, launch.EntryActivated{Entry: catalog.Entry{Name: choice, Identifier: id}}); err != nil {
			return err
		}
		if err := ctrl.Handle(ctx, launch.LaunchRequested{}); err != nil {
			logger.Error().Err(err).Str("plugin", choice).Msg("launch failed")
			notifier.Error("Plugin Loader Error", err.Error())
			continue
		}
		return nil
	}
}
