// Package config provides configuration management for lv2launch.
// It handles loading, merging, and accessing configuration from the embedded
// defaults and the user or system config file.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

//go:embed default.toml
var defaultConfigData string

// Sort orders accepted by the "sort" key.
const (
	SortDiscovery = "discovery"
	SortName      = "name"
)

// Config is the resolved configuration
type Config struct {
	DiscoveryTool    string             `toml:"discovery_tool"`
	DiscoveryTimeout Duration           `toml:"discovery_timeout"`
	Sort             string             `toml:"sort"`
	DefaultVariant   string             `toml:"default_variant"`
	SingleInstance   bool               `toml:"single_instance"`
	DefaultPicker    string             `toml:"default_picker"`
	Hosts            HostsConfig        `toml:"hosts"`
	Notification     NotificationConfig `toml:"notification"`
	Log              LogConfig          `toml:"log"`
	Pickers          PickersConfig      `toml:"pickers"`
}

// HostsConfig names the two interchangeable plugin host executables
type HostsConfig struct {
	Primary   string `toml:"primary"`
	Secondary string `toml:"secondary"`
}

// NotificationConfig controls desktop notifications
type NotificationConfig struct {
	Enabled        bool   `toml:"enabled"`
	Tool           string `toml:"tool"`
	Timeout        int    `toml:"timeout"`
	Urgency        string `toml:"urgency"`
	ShowInTerminal bool   `toml:"show_in_terminal"`
}

// LogConfig controls the zerolog logger
type LogConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
	Output string `toml:"output"`
}

// Duration is a time.Duration read from a TOML string such as "30s"
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler
func (d *Duration) UnmarshalText(text []byte) error {
	parsed, err := time.ParseDuration(strings.TrimSpace(string(text)))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", string(text), err)
	}
	d.Duration = parsed
	return nil
}

// MarshalText implements encoding.TextMarshaler
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// ConfigFile mirrors Config with pointers so that unset keys can be told apart
// from zero values when merging a user file over the defaults.
type ConfigFile struct {
	DiscoveryTool    *string                `toml:"discovery_tool"`
	DiscoveryTimeout *Duration              `toml:"discovery_timeout"`
	Sort             *string                `toml:"sort"`
	DefaultVariant   *string                `toml:"default_variant"`
	SingleInstance   *bool                  `toml:"single_instance"`
	DefaultPicker    *string                `toml:"default_picker"`
	Hosts            HostsConfigFile        `toml:"hosts"`
	Notification     NotificationConfigFile `toml:"notification"`
	Log              LogConfigFile          `toml:"log"`
	Pickers          PickersConfig          `toml:"pickers"`
}

// HostsConfigFile is HostsConfig as read from a file
type HostsConfigFile struct {
	Primary   *string `toml:"primary"`
	Secondary *string `toml:"secondary"`
}

// NotificationConfigFile is NotificationConfig as read from a file
type NotificationConfigFile struct {
	Enabled        *bool   `toml:"enabled"`
	Tool           *string `toml:"tool"`
	Timeout        *int    `toml:"timeout"`
	Urgency        *string `toml:"urgency"`
	ShowInTerminal *bool   `toml:"show_in_terminal"`
}

// LogConfigFile is LogConfig as read from a file
type LogConfigFile struct {
	Level  *string `toml:"level"`
	Format *string `toml:"format"`
	Output *string `toml:"output"`
}

// GetUserConfigPath returns the per-user config path
func GetUserConfigPath() string {
	return filepath.Join(configHome(), "lv2launch", "config.toml")
}

// GetSystemConfigPath returns the system-wide config path
func GetSystemConfigPath() string {
	return "/etc/lv2launch/config.toml"
}

func configHome() string {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return dir
	}
	return filepath.Join(os.Getenv("HOME"), ".config")
}

// Load merges the defaults with the first config file found.
// An explicit path must exist and parse; the implicit user and system files
// fall back to the defaults with a warning when they are broken.
func Load(path string) (*Config, error) {
	defaultCfg, err := LoadDefault()
	if err != nil {
		return nil, fmt.Errorf("failed to load default config: %w", err)
	}

	if path != "" {
		fileCfg, err := loadConfigFromFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to load config %s: %w", path, err)
		}
		merged := mergeConfigs(defaultCfg, fileCfg)
		return merged, merged.Validate()
	}

	for _, candidate := range []string{GetUserConfigPath(), GetSystemConfigPath()} {
		if _, err := os.Stat(candidate); err != nil {
			continue
		}
		fileCfg, err := loadConfigFromFile(candidate)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to load config %s: %v\n", candidate, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			return defaultCfg, nil
		}
		merged := mergeConfigs(defaultCfg, fileCfg)
		if err := merged.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %s: %v\n", candidate, err)
			fmt.Fprintf(os.Stderr, "Using default configuration\n")
			return defaultCfg, nil
		}
		return merged, nil
	}

	return defaultCfg, nil
}

// LoadDefault decodes the embedded default config
func LoadDefault() (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(defaultConfigData, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func loadConfigFromFile(path string) (*ConfigFile, error) {
	var cfg ConfigFile
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// mergeConfigs overlays the values set in user on top of defaultCfg
func mergeConfigs(defaultCfg *Config, user *ConfigFile) *Config {
	merged := *defaultCfg
	merged.Pickers = make(PickersConfig, len(defaultCfg.Pickers))
	for name, table := range defaultCfg.Pickers {
		merged.Pickers[name] = table
	}

	setString(&merged.DiscoveryTool, user.DiscoveryTool)
	if user.DiscoveryTimeout != nil && user.DiscoveryTimeout.Duration > 0 {
		merged.DiscoveryTimeout = *user.DiscoveryTimeout
	}
	setString(&merged.Sort, user.Sort)
	setString(&merged.DefaultVariant, user.DefaultVariant)
	if user.SingleInstance != nil {
		merged.SingleInstance = *user.SingleInstance
	}
	setString(&merged.DefaultPicker, user.DefaultPicker)

	setString(&merged.Hosts.Primary, user.Hosts.Primary)
	setString(&merged.Hosts.Secondary, user.Hosts.Secondary)

	if user.Notification.Enabled != nil {
		merged.Notification.Enabled = *user.Notification.Enabled
	}
	setString(&merged.Notification.Tool, user.Notification.Tool)
	if user.Notification.Timeout != nil && *user.Notification.Timeout > 0 {
		merged.Notification.Timeout = *user.Notification.Timeout
	}
	setString(&merged.Notification.Urgency, user.Notification.Urgency)
	if user.Notification.ShowInTerminal != nil {
		merged.Notification.ShowInTerminal = *user.Notification.ShowInTerminal
	}

	setString(&merged.Log.Level, user.Log.Level)
	setString(&merged.Log.Format, user.Log.Format)
	if user.Log.Output != nil {
		merged.Log.Output = *user.Log.Output
	}

	mergePickers(merged.Pickers, user.Pickers)

	return &merged
}

func setString(dst *string, src *string) {
	if src != nil && strings.TrimSpace(*src) != "" {
		*dst = strings.TrimSpace(*src)
	}
}

// Validate reports the first invalid setting
func (c *Config) Validate() error {
	if strings.TrimSpace(c.DiscoveryTool) == "" {
		return fmt.Errorf("discovery_tool must not be empty")
	}
	if strings.TrimSpace(c.Hosts.Primary) == "" || strings.TrimSpace(c.Hosts.Secondary) == "" {
		return fmt.Errorf("hosts.primary and hosts.secondary must not be empty")
	}
	switch strings.ToLower(c.DefaultVariant) {
	case "a", "b":
	default:
		return fmt.Errorf("default_variant must be \"a\" or \"b\", got %q", c.DefaultVariant)
	}
	switch c.Sort {
	case SortDiscovery, SortName:
	default:
		return fmt.Errorf("sort must be %q or %q, got %q", SortDiscovery, SortName, c.Sort)
	}
	if c.DiscoveryTimeout.Duration <= 0 {
		return fmt.Errorf("discovery_timeout must be positive")
	}
	return nil
}

// InitUserConfig writes the default config into the user config directory
func InitUserConfig() (string, error) {
	userConfigPath := GetUserConfigPath()

	if _, err := os.Stat(userConfigPath); err == nil {
		return "", fmt.Errorf("config already exists: %s", userConfigPath)
	}

	if err := os.MkdirAll(filepath.Dir(userConfigPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := os.WriteFile(userConfigPath, []byte(defaultConfigData), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return userConfigPath, nil
}

// GetDefaultConfigContent returns the embedded default config
func GetDefaultConfigContent() string {
	return defaultConfigData
}
