package launcher

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// Options is the decoded [pickers.<name>] table.
type Options struct {
	// Command overrides the executable, e.g. a wrapper script.
	Command string   `mapstructure:"command"`
	Args    []string `mapstructure:"args"`
}

// DecodeOptions decodes a raw picker table. Scalars are accepted where lists
// are expected ("args = '-i'").
func DecodeOptions(raw map[string]any) (Options, error) {
	var opts Options
	if raw == nil {
		return opts, nil
	}
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &opts,
	})
	if err != nil {
		return opts, err
	}
	if err := decoder.Decode(raw); err != nil {
		return opts, fmt.Errorf("invalid picker options: %w", err)
	}
	return opts, nil
}

// menu runs a dmenu-style program. Each picker only differs in its name,
// default executable and how the prompt is passed.
type menu struct {
	name    string
	command string
	args    []string
	prompt  func(prompt string) []string
	stderr  io.Writer
	// printQuery makes the menu print the typed query on its first output
	// line, ahead of the selection (fzf --print-query).
	printQuery bool
}

func newMenu(name string, opts Options, prompt func(string) []string) *menu {
	command := opts.Command
	if command == "" {
		command = name
	}
	return &menu{
		name:    name,
		command: command,
		args:    append([]string(nil), opts.Args...),
		prompt:  prompt,
	}
}

func (m *menu) Name() string {
	return m.name
}

// argv returns the full argument list for prompt.
func (m *menu) argv(prompt string) []string {
	args := append([]string(nil), m.args...)
	if m.printQuery {
		args = append(args, "--print-query")
	}
	if prompt != "" && m.prompt != nil {
		args = append(args, m.prompt(prompt)...)
	}
	return args
}

func (m *menu) Show(options []string, prompt string) (string, error) {
	cmd := exec.Command(m.command, m.argv(prompt)...)
	cmd.Stdin = strings.NewReader(strings.Join(options, "\n"))
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if m.stderr != nil {
		cmd.Stderr = io.MultiWriter(m.stderr, &stderr)
	}

	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code := exitErr.ExitCode()
			// fzf exits 1 when the query matches nothing; the query itself
			// is still the answer.
			if code == 1 && m.printQuery {
				if query := strings.TrimSpace(firstLine(string(output))); query != "" {
					return query, nil
				}
				return "", ErrCancelled
			}
			// 1: escape in dmenu/rofi/bemenu/fuzzel.
			// 130: fzf interrupted with esc or ctrl-c.
			if code == 1 || code == 130 {
				return "", ErrCancelled
			}
			if msg := strings.TrimSpace(stderr.String()); msg != "" {
				return "", fmt.Errorf("%s exited with error: %w: %s", m.name, err, msg)
			}
		}
		return "", fmt.Errorf("%s exited with error: %w", m.name, err)
	}

	var choice string
	if m.printQuery {
		choice = strings.TrimSpace(lastLine(string(output)))
	} else {
		choice = strings.TrimSpace(firstLine(string(output)))
	}
	if choice == "" {
		return "", ErrCancelled
	}
	return choice, nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func lastLine(s string) string {
	s = strings.TrimRight(s, "\r\n")
	if i := strings.LastIndexByte(s, '\n'); i >= 0 {
		return s[i+1:]
	}
	return s
}
