// Package utils provides notification utilities for lv2launch.
// Supports configurable notification behavior via NotificationConfig.
package utils

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strconv"

	"github.com/lvim-tech/lv2launch/pkg/config"
)

// Notifier is a fire-and-forget message sink
type Notifier interface {
	Notify(title, message string)
	Error(title, message string)
}

// DesktopNotifier sends notifications through dunstify or notify-send
type DesktopNotifier struct {
	cfg config.NotificationConfig

	// start launches the notification command; tests replace it.
	start func(cmd *exec.Cmd) error
	// terminal reports whether messages should go to the terminal instead.
	terminal func() bool
	stdout   io.Writer
	stderr   io.Writer
}

// NewDesktopNotifier builds a notifier from config
func NewDesktopNotifier(cfg config.NotificationConfig) *DesktopNotifier {
	return &DesktopNotifier{
		cfg:      cfg,
		start:    func(cmd *exec.Cmd) error { return cmd.Start() },
		terminal: IsTerminal,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// Notify sends a normal notification
func (n *DesktopNotifier) Notify(title, message string) {
	if !n.cfg.Enabled {
		return
	}

	if n.cfg.ShowInTerminal && n.terminal() {
		fmt.Fprintf(n.stdout, "[%s] %s\n", title, message)
		return
	}

	n.send(title, message, n.cfg.Urgency, "normal", "audio-card")
}

// Error sends an error notification with critical urgency
func (n *DesktopNotifier) Error(title, message string) {
	if !n.cfg.Enabled {
		return
	}

	if n.cfg.ShowInTerminal && n.terminal() {
		fmt.Fprintf(n.stderr, "[ERROR] [%s] %s\n", title, message)
		return
	}

	n.send(title, message, "critical", "critical", "dialog-error")
}

func (n *DesktopNotifier) send(title, message, urgency, fallbackUrgency, icon string) {
	tool := n.cfg.Tool
	if tool == "" || tool == "auto" {
		tool = detectNotificationTool()
	}

	cmd := notificationCommand(tool, title, message, n.cfg.Timeout, urgency, fallbackUrgency, icon)
	if cmd == nil {
		return
	}
	cmd.Env = os.Environ()
	_ = n.start(cmd)
}

// ============================================================================
// Internal Helper Functions
// ============================================================================

// detectNotificationTool detects which notification tool is available
func detectNotificationTool() string {
	if CommandExists("dunstify") {
		return "dunstify"
	}
	if CommandExists("notify-send") {
		return "notify-send"
	}
	return ""
}

// notificationCommand builds the command for the specified tool
func notificationCommand(tool, title, message string, timeout int, urgency, fallbackUrgency, icon string) *exec.Cmd {
	if urgency == "" {
		urgency = fallbackUrgency
	}

	if timeout <= 0 {
		timeout = 5000
	}

	switch tool {
	case "dunstify", "notify-send":
		return exec.Command(tool,
			"-u", urgency,
			"-t", strconv.Itoa(timeout),
			"-i", icon,
			title,
			message)
	default:
		return nil
	}
}
