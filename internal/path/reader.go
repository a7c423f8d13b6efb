package path

import (
	"fmt"
	"os"
	"strings"
)

// EnvSource reads the raw PATH value of one scope.
// An absent variable is reported as "" with a nil error.
type EnvSource interface {
	PathValue(scope Scope) (string, error)
}

// Capture is one reading of the live PATH
type Capture struct {
	Entries []Entry
	// RawLength is len(machine) + len(user) of the unsplit values
	RawLength int
}

// Reader turns the two PATH scopes into one ordered entry list
type Reader struct {
	Source    EnvSource
	Separator string
}

// NewReader creates a reader splitting on the platform list separator
func NewReader(src EnvSource) *Reader {
	return &Reader{Source: src, Separator: string(os.PathListSeparator)}
}

// Capture reads machine then user PATH and numbers entries across both
func (r *Reader) Capture() (Capture, error) {
	machine, err := r.Source.PathValue(ScopeMachine)
	if err != nil {
		return Capture{}, fmt.Errorf("reading machine PATH: %w", err)
	}
	user, err := r.Source.PathValue(ScopeUser)
	if err != nil {
		return Capture{}, fmt.Errorf("reading user PATH: %w", err)
	}

	entries := make([]Entry, 0)
	seq := 0
	for _, part := range SplitScope(machine, r.Separator) {
		seq++
		entries = append(entries, Entry{Sequence: seq, Scope: ScopeMachine, Directory: part})
	}
	for _, part := range SplitScope(user, r.Separator) {
		seq++
		entries = append(entries, Entry{Sequence: seq, Scope: ScopeUser, Directory: part})
	}

	return Capture{Entries: entries, RawLength: len(machine) + len(user)}, nil
}

// SplitScope splits one raw PATH value. A single trailing separator is
// dropped; empty segments inside the value are kept as "" directories.
func SplitScope(raw, sep string) []string {
	if raw == "" {
		return []string{}
	}
	raw = strings.TrimSuffix(raw, sep)
	return strings.Split(raw, sep)
}
