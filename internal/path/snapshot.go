package path

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
	"github.com/tailscale/hujson"
)

// SeedEntries is written when no snapshot exists yet
var SeedEntries = []Entry{
	{Sequence: 1, Scope: ScopeMachine, Directory: `C:\WINDOWS\system32`},
	{Sequence: 1, Scope: ScopeMachine, Directory: `C:\WINDOWS`},
}

// PersistenceError reports a snapshot file that could not be read or written
type PersistenceError struct {
	Op   string
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("snapshot %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

var errNullSnapshot = errors.New("snapshot is null")

// Store persists the saved PATH snapshot as a JSON list
type Store struct {
	file   string
	logger Logger
}

// NewStore creates a store for file. logger may be nil.
func NewStore(file string, logger Logger) *Store {
	if logger == nil {
		logger = nopLogger{}
	}
	return &Store{file: file, logger: logger}
}

// File returns the snapshot path
func (s *Store) File() string {
	return s.file
}

// EnsureExists writes the seed snapshot if the file is missing.
// It reports whether the file was created.
func (s *Store) EnsureExists() (bool, error) {
	_, err := os.Stat(s.file)
	if err == nil {
		s.logger.Info("Saved path file: " + s.file)
		return false, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return false, &PersistenceError{Op: "stat", Path: s.file, Err: err}
	}

	s.logger.Info("Creating saved path file: " + s.file)
	if err := s.Save(SeedEntries); err != nil {
		return false, err
	}
	return true, nil
}

// wireEntry accepts both the current field names and the
// SeqNumber/PathType/PathDirectory names of older snapshot files
type wireEntry struct {
	Sequence      *int    `json:"sequence"`
	Scope         string  `json:"scope"`
	Directory     *string `json:"directory"`
	SeqNumber     *int    `json:"SeqNumber"`
	PathType      string  `json:"PathType"`
	PathDirectory *string `json:"PathDirectory"`
}

func (w wireEntry) entry() (Entry, error) {
	var e Entry
	switch {
	case w.Sequence != nil:
		e.Sequence = *w.Sequence
	case w.SeqNumber != nil:
		e.Sequence = *w.SeqNumber
	default:
		return e, errors.New("entry has no sequence")
	}

	e.Scope = Scope(w.Scope)
	if w.Scope == "" {
		e.Scope = Scope(w.PathType)
	}
	if !e.Scope.Valid() {
		return e, fmt.Errorf("entry %d has unknown scope %q", e.Sequence, e.Scope)
	}

	switch {
	case w.Directory != nil:
		e.Directory = *w.Directory
	case w.PathDirectory != nil:
		e.Directory = *w.PathDirectory
	default:
		return e, fmt.Errorf("entry %d has no directory", e.Sequence)
	}
	return e, nil
}

// Load reads the snapshot. Comments and trailing commas are allowed.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.file)
	if err != nil {
		return nil, &PersistenceError{Op: "read", Path: s.file, Err: err}
	}

	std, err := hujson.Standardize(data)
	if err != nil {
		return nil, &PersistenceError{Op: "parse", Path: s.file, Err: err}
	}

	var wire []wireEntry
	if err := json.Unmarshal(std, &wire); err != nil {
		return nil, &PersistenceError{Op: "decode", Path: s.file, Err: err}
	}
	if wire == nil {
		return nil, &PersistenceError{Op: "decode", Path: s.file, Err: errNullSnapshot}
	}

	entries := make([]Entry, 0, len(wire))
	for _, w := range wire {
		e, err := w.entry()
		if err != nil {
			return nil, &PersistenceError{Op: "decode", Path: s.file, Err: err}
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// Save replaces the snapshot with entries. The write goes to a temporary
// file that is renamed over the old one, so a failed save keeps the old file.
func (s *Store) Save(entries []Entry) error {
	if entries == nil {
		return fmt.Errorf("save snapshot: entries are nil: %w", ErrInvalidArgument)
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "encode", Path: s.file, Err: err}
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(s.file), 0755); err != nil {
		return &PersistenceError{Op: "write", Path: s.file, Err: err}
	}
	if err := atomic.WriteFile(s.file, bytes.NewReader(data)); err != nil {
		return &PersistenceError{Op: "write", Path: s.file, Err: err}
	}
	return nil
}
