package launcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/lv2launch/pkg/config"
)

func writeStub(t *testing.T, dir, name, script string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0o755))
	return path
}

func TestDecodeOptions(t *testing.T) {
	tests := []struct {
		name string
		raw  map[string]any
		want Options
	}{
		{name: "nil table", raw: nil, want: Options{}},
		{
			name: "list args",
			raw:  map[string]any{"args": []any{"-i", "-l", "20"}},
			want: Options{Args: []string{"-i", "-l", "20"}},
		},
		{
			name: "scalar arg is weakly typed",
			raw:  map[string]any{"args": "-i"},
			want: Options{Args: []string{"-i"}},
		},
		{
			name: "command override",
			raw:  map[string]any{"command": "/usr/local/bin/rofi-wrapper"},
			want: Options{Command: "/usr/local/bin/rofi-wrapper"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeOptions(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecodeOptions_Invalid(t *testing.T) {
	_, err := DecodeOptions(map[string]any{"args": map[string]any{"a": 1}})
	assert.Error(t, err)
}

func TestPickerArgs(t *testing.T) {
	opts := Options{Args: []string{"-i"}}
	tests := []struct {
		launcher Launcher
		want     []string
		bare     []string
	}{
		{NewRofi(opts), []string{"-i", "-dmenu", "-p", "Plugins"}, []string{"-i"}},
		{NewDmenu(opts), []string{"-i", "-p", "Plugins"}, []string{"-i"}},
		{NewFzf(opts), []string{"-i", "--print-query", "--prompt", "Plugins> "}, []string{"-i", "--print-query"}},
		{NewBemenu(opts), []string{"-i", "-p", "Plugins"}, []string{"-i"}},
		{NewFuzzel(opts), []string{"-i", "--prompt", "Plugins: "}, []string{"-i"}},
	}

	for _, tt := range tests {
		t.Run(tt.launcher.Name(), func(t *testing.T) {
			m := tt.launcher.(*menu)
			assert.Equal(t, tt.want, m.argv("Plugins"))
			assert.Equal(t, tt.bare, m.argv(""), "no prompt, no prompt flags")
		})
	}
}

func fzfStub(t *testing.T, script string) Launcher {
	t.Helper()
	l := NewFzf(Options{Command: writeStub(t, t.TempDir(), "fzf", script)})
	l.(*menu).stderr = nil
	return l
}

func TestFzf_QueryWithoutMatchIsReturned(t *testing.T) {
	// fzf --print-query: the query line, no selection, exit status 1.
	l := fzfStub(t, "cat > /dev/null\nprintf 'reverb\\n'\nexit 1\n")

	choice, err := l.Show([]string{"Synth A", "Delay"}, "Plugins")

	require.NoError(t, err)
	assert.Equal(t, "reverb", choice)
}

func TestFzf_SelectionFollowsQuery(t *testing.T) {
	l := fzfStub(t, "cat > /dev/null\nprintf 'del\\nDelay\\n'\n")

	choice, err := l.Show([]string{"Synth A", "Delay"}, "Plugins")

	require.NoError(t, err)
	assert.Equal(t, "Delay", choice)
}

func TestFzf_Cancelled(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "interrupt", script: "cat > /dev/null\nprintf 'del\\n'\nexit 130\n"},
		{name: "no match with empty query", script: "cat > /dev/null\nprintf '\\n'\nexit 1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fzfStub(t, tt.script).Show([]string{"a"}, "P")
			assert.ErrorIs(t, err, ErrCancelled)
		})
	}
}

func TestShow_ReturnsChoice(t *testing.T) {
	dir := t.TempDir()
	// Echo the second option back, like a user moving down once.
	stub := writeStub(t, dir, "picker", "sed -n 2p\n")

	l := NewDmenu(Options{Command: stub})
	choice, err := l.Show([]string{"[gtk3]", "Delay", "Synth A"}, "Plugins")

	require.NoError(t, err)
	assert.Equal(t, "Delay", choice)
}

func TestShow_ReceivesArgs(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "args")
	stub := writeStub(t, dir, "picker", "echo \"$@\" > "+out+"\nhead -n 1\n")

	_, err := NewRofi(Options{Command: stub, Args: []string{"-i"}}).Show([]string{"a"}, "P")
	require.NoError(t, err)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "-i -dmenu -p P\n", string(data))
}

func TestShow_Cancelled(t *testing.T) {
	tests := []struct {
		name   string
		script string
	}{
		{name: "escape exit code", script: "exit 1\n"},
		{name: "fzf interrupt", script: "exit 130\n"},
		{name: "empty output", script: "cat > /dev/null\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := writeStub(t, t.TempDir(), "picker", tt.script)
			_, err := NewBemenu(Options{Command: stub}).Show([]string{"a", "b"}, "P")
			assert.ErrorIs(t, err, ErrCancelled)
			assert.True(t, IsCancelled(err))
		})
	}
}

func TestShow_Failure(t *testing.T) {
	stub := writeStub(t, t.TempDir(), "picker", "echo 'cannot open display' >&2\nexit 2\n")

	_, err := NewRofi(Options{Command: stub}).Show([]string{"a"}, "P")

	require.Error(t, err)
	assert.False(t, IsCancelled(err))
	assert.Contains(t, err.Error(), "cannot open display")
}

func TestNew(t *testing.T) {
	cfg, err := config.LoadDefault()
	require.NoError(t, err)

	for _, name := range Names() {
		l, err := New(name, cfg)
		require.NoError(t, err, name)
		assert.Equal(t, name, l.Name())
	}

	rofi, err := New("rofi", cfg)
	require.NoError(t, err)
	assert.Equal(t, []string{"-i"}, rofi.(*menu).args)

	_, err = New("wofi", cfg)
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	dir := t.TempDir()
	writeStub(t, dir, "fzf", "head -n 1\n")
	writeStub(t, dir, "bemenu", "head -n 1\n")
	t.Setenv("PATH", dir)

	l, err := Detect("", nil)
	require.NoError(t, err)
	assert.Equal(t, "fzf", l.Name())

	l, err = Detect("bemenu", nil)
	require.NoError(t, err)
	assert.Equal(t, "bemenu", l.Name())

	l, err = Detect("rofi", nil)
	require.NoError(t, err)
	assert.Equal(t, "fzf", l.Name(), "an uninstalled preference falls back")
}

func TestDetect_NothingInstalled(t *testing.T) {
	t.Setenv("PATH", t.TempDir())

	_, err := Detect("rofi", nil)
	assert.ErrorIs(t, err, ErrNoLauncher)
}
