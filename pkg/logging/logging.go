// Package logging builds the zerolog logger used across lv2launch.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/lvim-tech/lv2launch/pkg/config"
	"github.com/lvim-tech/lv2launch/pkg/utils"
)

// Config holds logger configuration options
type Config struct {
	// Level is the minimum log level to output
	Level string

	// Format is the output format (auto, console, json)
	Format string

	// Output is stderr, stdout, discard, or a file path.
	// Empty selects the default log file under the XDG cache dir.
	Output string

	// NoColor disables color output in console mode
	NoColor bool
}

// FromAppConfig converts the [log] table into a logging Config
func FromAppConfig(cfg config.LogConfig) *Config {
	return &Config{
		Level:   cfg.Level,
		Format:  cfg.Format,
		Output:  cfg.Output,
		NoColor: os.Getenv("NO_COLOR") != "",
	}
}

// DefaultLogFile returns the log file used when no output is configured
func DefaultLogFile() string {
	return filepath.Join(utils.GetCacheDir(), "lv2launch", "lv2launch.log")
}

// New creates a logger from cfg. The returned closer releases the log file,
// if one was opened; it is never nil.
func New(cfg *Config) (zerolog.Logger, io.Closer, error) {
	if cfg == nil {
		cfg = &Config{Level: "info", Format: "auto", Output: "stderr"}
	}

	output, closer, err := openOutput(cfg.Output)
	if err != nil {
		return zerolog.Nop(), nopCloser{}, err
	}

	level := ParseLevel(cfg.Level)
	logger := zerolog.New(formatWriter(output, cfg)).
		Level(level).
		With().
		Timestamp().
		Logger()

	if level <= zerolog.DebugLevel {
		logger = logger.With().Caller().Logger()
	}

	return logger, closer, nil
}

func openOutput(output string) (io.Writer, io.Closer, error) {
	switch strings.ToLower(output) {
	case "stdout":
		return os.Stdout, nopCloser{}, nil
	case "stderr":
		return os.Stderr, nopCloser{}, nil
	case "discard", "none":
		return io.Discard, nopCloser{}, nil
	}

	path := output
	if path == "" {
		path = DefaultLogFile()
	}
	if err := utils.EnsureDir(filepath.Dir(path)); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, file, nil
}

func formatWriter(output io.Writer, cfg *Config) io.Writer {
	format := strings.ToLower(cfg.Format)
	if format == "" || format == "auto" {
		format = "json"
		if f, ok := output.(*os.File); ok && utils.IsTerminalFile(f) {
			format = "console"
		}
	}

	if format == "console" || format == "pretty" {
		return zerolog.ConsoleWriter{
			Out:        output,
			TimeFormat: time.Kitchen,
			NoColor:    cfg.NoColor,
		}
	}
	return output
}

// ParseLevel parses a log level string, defaulting to info
func ParseLevel(level string) zerolog.Level {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace":
		return zerolog.TraceLevel
	case "debug":
		return zerolog.DebugLevel
	case "", "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	case "disabled", "none", "off":
		return zerolog.Disabled
	default:
		if l, err := zerolog.ParseLevel(level); err == nil {
			return l
		}
		return zerolog.InfoLevel
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
