package path

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"sort"
	"strings"
	"time"
)

// ShellRunner runs one PowerShell command and returns its output
type ShellRunner interface {
	Run(command string) (string, error)
}

// PowerShell runs commands through powershell.exe
type PowerShell struct {
	// Executable defaults to powershell.exe
	Executable string
	// Timeout bounds one command; zero means 30 seconds
	Timeout time.Duration
}

// Run executes command without a profile and returns its stdout
func (p *PowerShell) Run(command string) (string, error) {
	exe := p.Executable
	if exe == "" {
		exe = "powershell.exe"
	}
	timeout := p.Timeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, exe, "-NoProfile", "-NonInteractive", "-ExecutionPolicy", "Bypass", "-Command", command)
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return "", fmt.Errorf("%s: %w: %s", exe, err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return "", fmt.Errorf("%s: %w", exe, err)
	}
	// only the line break PowerShell appends; a trailing ';' in PATH is data
	return strings.TrimRight(string(output), "\r\n"), nil
}

// DefaultRunner is used by sources created without a runner.
// Tests replace it with a MockShellRunner.
var DefaultRunner ShellRunner = &PowerShell{}

// MockShellRunner answers commands from canned responses
type MockShellRunner struct {
	// Responses and Errors are keyed by the exact command or by a
	// substring of it; exact keys win, then the longest substring
	Responses       map[string]string
	Errors          map[string]error
	Calls           []string
	DefaultResponse string
}

func NewMockShellRunner() *MockShellRunner {
	return &MockShellRunner{
		Responses: make(map[string]string),
		Errors:    make(map[string]error),
		Calls:     []string{},
	}
}

// Run records command and returns the matching error or response
func (m *MockShellRunner) Run(command string) (string, error) {
	m.Calls = append(m.Calls, command)

	if err, ok := m.Errors[command]; ok {
		return "", err
	}
	if resp, ok := m.Responses[command]; ok {
		return resp, nil
	}
	if key, ok := longestMatch(command, m.Errors); ok {
		return "", m.Errors[key]
	}
	if key, ok := longestMatch(command, m.Responses); ok {
		return m.Responses[key], nil
	}
	return m.DefaultResponse, nil
}

func longestMatch[V any](command string, patterns map[string]V) (string, bool) {
	keys := make([]string, 0, len(patterns))
	for k := range patterns {
		if strings.Contains(command, k) {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return "", false
	}
	sort.Slice(keys, func(i, j int) bool {
		if len(keys[i]) != len(keys[j]) {
			return len(keys[i]) > len(keys[j])
		}
		return keys[i] < keys[j]
	})
	return keys[0], true
}

func (m *MockShellRunner) SetResponse(pattern, response string) {
	m.Responses[pattern] = response
}

func (m *MockShellRunner) SetError(pattern string, err error) {
	m.Errors[pattern] = err
}

// Reset clears responses, errors and recorded calls
func (m *MockShellRunner) Reset() {
	m.Responses = make(map[string]string)
	m.Errors = make(map[string]error)
	m.Calls = []string{}
	m.DefaultResponse = ""
}
