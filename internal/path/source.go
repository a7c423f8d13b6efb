package path

import (
	"fmt"
	"os"
	"runtime"
)

// Source kinds accepted by NewSource
const (
	SourceAuto       = "auto"
	SourcePowerShell = "powershell"
	SourceEnv        = "env"
)

// PowerShellSource reads PATH through the .NET environment API,
// which returns the stored Machine and User values separately
type PowerShellSource struct {
	Runner ShellRunner
}

// PathValue runs GetEnvironmentVariable for the scope
func (s *PowerShellSource) PathValue(scope Scope) (string, error) {
	if !scope.Valid() {
		return "", fmt.Errorf("unknown scope %q", scope)
	}
	runner := s.Runner
	if runner == nil {
		runner = DefaultRunner
	}
	return runner.Run(pathCommand(scope))
}

func pathCommand(scope Scope) string {
	return fmt.Sprintf(`[Environment]::GetEnvironmentVariable('Path', '%s')`, scope)
}

// EnvVarSource reads scopes from process environment variables.
// An empty variable name means the scope is absent.
type EnvVarSource struct {
	MachineVar string
	UserVar    string
	Lookup     func(string) (string, bool)
}

// NewEnvVarSource maps the machine scope to PATH and leaves the user scope empty
func NewEnvVarSource() *EnvVarSource {
	return &EnvVarSource{MachineVar: "PATH", Lookup: os.LookupEnv}
}

// PathValue returns the variable mapped to scope
func (s *EnvVarSource) PathValue(scope Scope) (string, error) {
	var name string
	switch scope {
	case ScopeMachine:
		name = s.MachineVar
	case ScopeUser:
		name = s.UserVar
	default:
		return "", fmt.Errorf("unknown scope %q", scope)
	}
	if name == "" {
		return "", nil
	}
	lookup := s.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}
	value, _ := lookup(name)
	return value, nil
}

// StaticSource returns fixed values, mainly for tests and replays
type StaticSource map[Scope]string

// PathValue returns the stored value for scope
func (s StaticSource) PathValue(scope Scope) (string, error) {
	return s[scope], nil
}

// NewSource builds the source named by kind
func NewSource(kind string, runner ShellRunner) (EnvSource, error) {
	switch kind {
	case SourcePowerShell:
		return &PowerShellSource{Runner: runner}, nil
	case SourceEnv:
		return NewEnvVarSource(), nil
	case SourceAuto, "":
		if runtime.GOOS == "windows" {
			return &PowerShellSource{Runner: runner}, nil
		}
		return NewEnvVarSource(), nil
	default:
		return nil, fmt.Errorf("unknown path source %q", kind)
	}
}

// ReaderFor returns a reader whose separator matches the source
func ReaderFor(src EnvSource) *Reader {
	r := NewReader(src)
	if _, ok := src.(*PowerShellSource); ok {
		r.Separator = ";"
	}
	return r
}
