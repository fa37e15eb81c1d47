package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/text/language"

	"github.com/lvim-tech/lv2launch/pkg/catalog"
	"github.com/lvim-tech/lv2launch/pkg/config"
	"github.com/lvim-tech/lv2launch/pkg/host"
	"github.com/lvim-tech/lv2launch/pkg/logging"
	"github.com/lvim-tech/lv2launch/pkg/toolcheck"
	"github.com/lvim-tech/lv2launch/pkg/utils"
)

const (
	annotationSkipConfig  = "skipConfigLoad"
	annotationInteractive = "interactive"
)

type commandContext struct {
	configFlag   string
	logLevelFlag string
	hostFlag     string

	config   *config.Config
	logger   zerolog.Logger
	closer   io.Closer
	notifier utils.Notifier
}

// setup loads the config and builds the logger and notifier for cmd.
func (c *commandContext) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(strings.TrimSpace(c.configFlag))
	if err != nil {
		return err
	}
	c.config = cfg

	logCfg := logging.FromAppConfig(cfg.Log)
	if c.logLevelFlag != "" {
		logCfg.Level = c.logLevelFlag
	}
	// The browser owns the terminal, so its logs always go to a file.
	if isInteractive(cmd) {
		switch strings.ToLower(logCfg.Output) {
		case "stdout", "stderr":
			logCfg.Output = ""
		}
	}
	logger, closer, err := logging.New(logCfg)
	if err != nil {
		return err
	}
	c.logger = logger.With().Str("command", cmd.Name()).Logger()
	c.closer = closer
	c.notifier = utils.NewDesktopNotifier(cfg.Notification)

	cmd.SetContext(logging.WithLogger(cmd.Context(), &c.logger))
	return nil
}

func (c *commandContext) close() {
	if c.closer != nil {
		_ = c.closer.Close()
		c.closer = nil
	}
}

func (c *commandContext) hosts() host.Hosts {
	return host.Hosts{Primary: c.config.Hosts.Primary, Secondary: c.config.Hosts.Secondary}
}

// initialVariant resolves --host, falling back to default_variant.
func (c *commandContext) initialVariant() (host.Variant, error) {
	if c.hostFlag != "" {
		return host.ParseVariant(c.hostFlag)
	}
	return host.ParseVariant(c.config.DefaultVariant)
}

func (c *commandContext) requirements() []toolcheck.Requirement {
	return []toolcheck.Requirement{
		{Name: "discovery", Command: c.config.DiscoveryTool},
		{Name: "host a", Command: c.config.Hosts.Primary},
		{Name: "host b", Command: c.config.Hosts.Secondary, Optional: true},
	}
}

// gate stops startup with a notification when a required tool is missing.
func (c *commandContext) gate() error {
	return c.gateOn(c.requirements())
}

// gateDiscovery checks only the discovery tool, for commands that read the
// catalog but never launch a host.
func (c *commandContext) gateDiscovery() error {
	return c.gateOn(c.requirements()[:1])
}

func (c *commandContext) gateOn(requirements []toolcheck.Requirement) error {
	statuses, err := toolcheck.Gate(requirements, c.notifier)
	for _, s := range toolcheck.Missing(statuses, true) {
		event := c.logger.Warn()
		if !s.Optional {
			event = c.logger.Error()
		}
		event.Str("tool", s.Name).
			Str("command", s.Command).
			Bool("optional", s.Optional).
			Msg(s.Detail)
	}
	return err
}

// loadCatalog runs the discovery tool under the configured timeout. A
// discovery failure is not fatal: whatever could be read is returned.
func (c *commandContext) loadCatalog(ctx context.Context) (*catalog.Catalog, error) {
	timeout := c.config.DiscoveryTimeout.Duration
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cat, err := catalog.NewBuilder(c.config.DiscoveryTool, c.logger).Build(ctx)
	if c.config.Sort == config.SortName {
		cat = cat.Sorted(language.English)
	}
	if err != nil {
		return cat, fmt.Errorf("plugin discovery: %w", err)
	}
	return cat, nil
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations[annotationSkipConfig] == "true" {
			return true
		}
	}
	return false
}

func isInteractive(cmd *cobra.Command) bool {
	return cmd.Annotations != nil && cmd.Annotations[annotationInteractive] == "true"
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
