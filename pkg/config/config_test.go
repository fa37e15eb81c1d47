package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefault(t *testing.T) {
	cfg, err := LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, "lv2ls", cfg.DiscoveryTool)
	assert.Equal(t, 30*time.Second, cfg.DiscoveryTimeout.Duration)
	assert.Equal(t, SortDiscovery, cfg.Sort)
	assert.Equal(t, "a", cfg.DefaultVariant)
	assert.True(t, cfg.SingleInstance)
	assert.Equal(t, "jalv.gtk3", cfg.Hosts.Primary)
	assert.Equal(t, "jalv.qt5", cfg.Hosts.Secondary)
	assert.True(t, cfg.Notification.Enabled)
	assert.Equal(t, 10000, cfg.Notification.Timeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.NotNil(t, cfg.GetPickerConfig("rofi"))
	assert.NoError(t, cfg.Validate())
}

func TestLoad_ExplicitFileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
discovery_tool = "/opt/lv2/bin/lv2ls"
discovery_timeout = "5s"
sort = "name"
default_variant = "b"
single_instance = false

[hosts]
secondary = "jalv.gtk"

[notification]
enabled = false

[log]
level = "debug"

[pickers.rofi]
args = ["-i", "-theme", "plugins"]
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/lv2/bin/lv2ls", cfg.DiscoveryTool)
	assert.Equal(t, 5*time.Second, cfg.DiscoveryTimeout.Duration)
	assert.Equal(t, SortName, cfg.Sort)
	assert.Equal(t, "b", cfg.DefaultVariant)
	assert.False(t, cfg.SingleInstance)
	assert.Equal(t, "jalv.gtk3", cfg.Hosts.Primary, "unset keys keep the default")
	assert.Equal(t, "jalv.gtk", cfg.Hosts.Secondary)
	assert.False(t, cfg.Notification.Enabled)
	assert.Equal(t, 10000, cfg.Notification.Timeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, []any{"-i", "-theme", "plugins"}, cfg.GetPickerConfig("rofi")["args"])
	assert.NotNil(t, cfg.GetPickerConfig("fzf"), "other pickers keep their defaults")
}

func TestLoad_DoesNotMutateDefaults(t *testing.T) {
	path := writeConfig(t, `
[pickers.rofi]
args = ["-x"]
`)
	_, err := Load(path)
	require.NoError(t, err)

	fresh, err := LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, []any{"-i"}, fresh.GetPickerConfig("rofi")["args"])
}

func TestLoad_ExplicitFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "invalid toml", content: "discovery_tool = "},
		{name: "bad variant", content: `default_variant = "c"`},
		{name: "bad sort", content: `sort = "random"`},
		{name: "bad duration", content: `discovery_timeout = "soon"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_BrokenUserConfigFallsBack(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)
	dir := filepath.Join(home, "lv2launch")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("sort = \"random\""), 0644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, SortDiscovery, cfg.Sort)
}

func TestGetUserConfigPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/xdg")
	assert.Equal(t, "/tmp/xdg/lv2launch/config.toml", GetUserConfigPath())

	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("HOME", "/home/user")
	assert.Equal(t, "/home/user/.config/lv2launch/config.toml", GetUserConfigPath())
}

func TestInitUserConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	path, err := InitUserConfig()
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, GetDefaultConfigContent(), string(data))

	_, err = InitUserConfig()
	assert.Error(t, err, "second init must not overwrite")
}
