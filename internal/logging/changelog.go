package logging

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"pathsnap/internal/path"
)

// ChangeLog is the permanent record of PATH changes. It implements
// path.ChangeRecorder.
type ChangeLog struct {
	logger *slog.Logger
	closer io.Closer
}

// OpenChangeLog opens (or creates) the change log at file. A new file
// starts with a line naming the program that created it.
func OpenChangeLog(file, createdBy string) (*ChangeLog, error) {
	if err := os.MkdirAll(filepath.Dir(file), 0755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	_, statErr := os.Stat(file)
	isNew := errors.Is(statErr, os.ErrNotExist)

	lj := newRotator(file)
	cl := NewChangeLog(lj)
	cl.closer = lj
	if isNew {
		cl.logger.Info("This log file was created by " + createdBy)
	}
	return cl, nil
}

// NewChangeLog writes change lines to w
func NewChangeLog(w io.Writer) *ChangeLog {
	return &ChangeLog{logger: slog.New(slog.NewTextHandler(w, nil))}
}

// RecordChange writes one change line
func (c *ChangeLog) RecordChange(status path.Status, scope path.Scope, directory string) {
	if status == path.StatusDuplicate {
		c.logger.Warn(fmt.Sprintf("Duplicate found: %s %s", scope, directory),
			"status", string(status), "scope", string(scope), "directory", directory)
		return
	}
	c.logger.Info(fmt.Sprintf("PATH change detected: %s %s %s", status, scope, directory),
		"status", string(status), "scope", string(scope), "directory", directory)
}

// Close releases the log file
func (c *ChangeLog) Close() error {
	if c.closer == nil {
		return nil
	}
	err := c.closer.Close()
	c.closer = nil
	return err
}
