package logging

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvim-tech/lv2launch/pkg/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"trace", zerolog.TraceLevel},
		{"debug", zerolog.DebugLevel},
		{"", zerolog.InfoLevel},
		{"INFO", zerolog.InfoLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"off", zerolog.Disabled},
		{"nonsense", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FileOutput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "lv2launch.log")

	logger, closer, err := New(&Config{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)

	logger.Info().Str("tool", "lv2ls").Msg("catalog built")
	logger.Debug().Msg("hidden")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"tool":"lv2ls"`)
	assert.Contains(t, string(data), "catalog built")
	assert.NotContains(t, string(data), "hidden")
}

func TestNew_DefaultFileUnderCacheDir(t *testing.T) {
	t.Setenv("XDG_CACHE_HOME", t.TempDir())

	logger, closer, err := New(FromAppConfig(config.LogConfig{Level: "info", Format: "json"}))
	require.NoError(t, err)
	logger.Info().Msg("hello")
	require.NoError(t, closer.Close())

	data, err := os.ReadFile(DefaultLogFile())
	require.NoError(t, err)
	assert.Contains(t, string(data), "hello")
}

func TestNew_Discard(t *testing.T) {
	_, closer, err := New(&Config{Output: "discard"})
	require.NoError(t, err)
	assert.NoError(t, closer.Close())
}

func TestContext(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := zerolog.New(buf)

	ctx := WithLogger(context.Background(), &logger)
	FromContext(ctx).Info().Msg("from context")
	assert.Contains(t, buf.String(), "from context")
	assert.Same(t, &logger, FromContext(ctx))

	// No logger attached: a disabled logger, never a panic.
	FromContext(context.Background()).Info().Msg("dropped")
	assert.NotContains(t, buf.String(), "dropped")
}

func TestContext_NilLogger(t *testing.T) {
	ctx := WithLogger(context.Background(), nil)

	l := FromContext(ctx)
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
	l.Info().Msg("dropped")
}
