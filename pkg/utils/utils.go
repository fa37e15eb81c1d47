// Package utils provides common utility functions for lv2launch.
// It includes helpers for PATH lookup, detached process start,
// terminal detection, and XDG directories.
package utils

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"syscall"

	"github.com/mattn/go-isatty"
)

// ============================================================================
// Command Utilities
// ============================================================================

// CommandExists checks if a command exists in PATH
func CommandExists(cmd string) bool {
	_, err := exec.LookPath(cmd)
	return err == nil
}

// StartDetachedProcess starts a process in its own session with stdio on
// /dev/null and returns once it is running. The caller decides whether to wait.
func StartDetachedProcess(name string, args ...string) (*exec.Cmd, error) {
	devNull, err := os.OpenFile(os.DevNull, os.O_RDWR, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	cmd := exec.Command(name, args...)
	cmd.Env = os.Environ()
	cmd.Stdin = devNull
	cmd.Stdout = devNull
	cmd.Stderr = devNull
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setsid: true,
	}
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// ============================================================================
// Terminal Detection
// ============================================================================

// IsTerminal checks if program is running in a terminal
func IsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// IsTerminalFile reports whether f is attached to a terminal
func IsTerminalFile(f *os.File) bool {
	if f == nil {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// ============================================================================
// Environment Utilities
// ============================================================================

// GetHomeDir returns home directory
func GetHomeDir() string {
	return os.Getenv("HOME")
}

// GetCacheDir returns XDG cache directory
func GetCacheDir() string {
	if cacheDir := os.Getenv("XDG_CACHE_HOME"); cacheDir != "" {
		return cacheDir
	}
	return filepath.Join(GetHomeDir(), ".cache")
}

// GetRuntimeDir returns XDG runtime directory, falling back to the temp dir
func GetRuntimeDir() string {
	if runtimeDir := os.Getenv("XDG_RUNTIME_DIR"); runtimeDir != "" {
		return runtimeDir
	}
	return os.TempDir()
}

// EnsureDir creates directory if it doesn't exist
func EnsureDir(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return os.MkdirAll(path, 0755)
	}
	return nil
}
