package catalog

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/rs/zerolog"
)

// NamesFlag makes the discovery tool print display names instead of URIs.
const NamesFlag = "-n"

// Runner runs a command and returns its standard output.
type Runner interface {
	Output(ctx context.Context, name string, args ...string) ([]byte, error)
}

// ExecRunner runs commands with os/exec.
type ExecRunner struct{}

// Output implements Runner
func (ExecRunner) Output(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// DiscoveryError is returned when an invocation of the discovery tool fails.
type DiscoveryError struct {
	Tool     string
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *DiscoveryError) Error() string {
	cmd := strings.TrimSpace(e.Tool + " " + strings.Join(e.Args, " "))
	if e.ExitCode > 0 {
		return fmt.Sprintf("%s failed with return code %d", cmd, e.ExitCode)
	}
	return fmt.Sprintf("%s failed: %v", cmd, e.Err)
}

// Unwrap implements errors.Unwrap
func (e *DiscoveryError) Unwrap() error {
	return e.Err
}

// Builder builds a Catalog by running the discovery tool twice.
type Builder struct {
	Runner Runner
	Tool   string
	Logger zerolog.Logger
}

// NewBuilder returns a Builder that runs tool through os/exec.
func NewBuilder(tool string, logger zerolog.Logger) *Builder {
	return &Builder{Runner: ExecRunner{}, Tool: tool, Logger: logger}
}

// Build runs `<tool> -n` for names and `<tool>` for identifiers and zips the
// two outputs. A failing invocation is logged and contributes no lines, so
// the returned catalog is never nil; the error is returned alongside it for
// callers that want to report it.
func (b *Builder) Build(ctx context.Context) (*Catalog, error) {
	names, namesErr := b.lines(ctx, NamesFlag)
	identifiers, idsErr := b.lines(ctx)

	c := New(names, identifiers)
	if m, ok := c.Mismatch(); ok && namesErr == nil && idsErr == nil {
		b.Logger.Warn().
			Int("names", m.Names).
			Int("identifiers", m.Identifiers).
			Msg("discovery outputs differ in length, extra lines dropped")
	}

	b.Logger.Info().
		Str("tool", b.Tool).
		Int("plugins", c.Len()).
		Msg("plugin catalog built")

	return c, errors.Join(namesErr, idsErr)
}

func (b *Builder) lines(ctx context.Context, args ...string) ([]string, error) {
	out, err := b.Runner.Output(ctx, b.Tool, args...)
	if err != nil {
		derr := &DiscoveryError{Tool: b.Tool, Args: args, ExitCode: -1, Err: err}
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			derr.ExitCode = exitErr.ExitCode()
			derr.Stderr = strings.TrimSpace(string(exitErr.Stderr))
		}
		b.Logger.Error().
			Err(err).
			Str("tool", b.Tool).
			Strs("args", args).
			Int("exit_code", derr.ExitCode).
			Str("stderr", derr.Stderr).
			Msg("discovery command failed")
		return nil, derr
	}
	return SplitLines(string(out)), nil
}

// SplitLines splits tool output into lines, dropping carriage returns and the
// trailing newline. Interior empty lines are kept so that the two outputs
// stay aligned.
func SplitLines(out string) []string {
	out = strings.ReplaceAll(out, "\r\n", "\n")
	out = strings.TrimRight(out, "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}
