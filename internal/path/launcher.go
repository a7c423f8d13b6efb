package path

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/atotto/clipboard"
)

// ProcessLauncher starts an external program without waiting for it
type ProcessLauncher interface {
	Start(name string, args ...string) error
}

// ExecLauncher starts processes with os/exec
type ExecLauncher struct {
	// Dir is the working directory of started processes
	Dir string
}

// Start launches name and releases it
func (l ExecLauncher) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	cmd.Dir = l.Dir
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", name, err)
	}
	return cmd.Process.Release()
}

// Shell integration for a selected PATH directory
type Shell struct {
	Launcher ProcessLauncher
	Lookup   EnvLookup
	Logger   Logger
}

func (s Shell) logger() Logger {
	if s.Logger == nil {
		return nopLogger{}
	}
	return s.Logger
}

// OpenExplorer opens dir in Windows Explorer
func (s Shell) OpenExplorer(dir string) error {
	if dir == "" {
		return fmt.Errorf("open explorer: empty directory: %w", ErrInvalidArgument)
	}
	return s.Launcher.Start("explorer.exe", ExpandEnvVars(dir, s.Lookup))
}

// OpenTerminal opens Windows Terminal in dir, falling back to cmd.exe
func (s Shell) OpenTerminal(dir string) error {
	if dir == "" {
		return fmt.Errorf("open terminal: empty directory: %w", ErrInvalidArgument)
	}
	target := strings.TrimRight(ExpandEnvVars(dir, s.Lookup), `\`)

	err := s.Launcher.Start("wt.exe", "-d", target)
	if err == nil {
		return nil
	}
	s.logger().Warn("Unable to launch Windows Terminal. Falling back to CMD.exe", "error", err)

	fallback := s.Launcher
	if el, ok := fallback.(ExecLauncher); ok {
		el.Dir = target
		fallback = el
	}
	if err2 := fallback.Start("cmd.exe", "/c", "start", "cmd.exe", "/k", "Title PathTools"); err2 != nil {
		s.logger().Warn("Unable to launch CMD.exe", "error", err2)
		return errors.Join(err, err2)
	}
	return nil
}

// OpenEnvironmentEditor opens the system environment variables dialog
func (s Shell) OpenEnvironmentEditor() error {
	return s.Launcher.Start(`C:\Windows\System32\rundll32.exe`, "sysdm.cpl,EditEnvironmentVariables")
}

// ShowAlert runs command with the summary's alert message as its only argument.
// With no command configured the message is returned for the caller to print.
func (s Shell) ShowAlert(command string, sum Summary) (string, error) {
	msg := sum.AlertMessage()
	if command == "" {
		return msg, nil
	}
	s.logger().Info("Changes found, showing alert")
	if err := s.Launcher.Start(command, msg); err != nil {
		s.logger().Error("Unable to start alert command", "command", command, "error", err)
		return msg, err
	}
	return msg, nil
}

// CopyToClipboard copies text to the system clipboard
func CopyToClipboard(text string) error {
	return clipboard.WriteAll(text)
}

// CopyReport renders rows as text and copies it to the clipboard
func CopyReport(rows []Row, sum Summary) error {
	var b strings.Builder
	RenderTable(&b, rows, sum)
	return CopyToClipboard(b.String())
}
