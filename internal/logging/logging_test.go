package logging

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pathsnap/internal/path"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, parseLevel("warn"))
	assert.Equal(t, slog.LevelError, parseLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLevel(""))
	assert.Equal(t, slog.LevelInfo, parseLevel("verbose"))
}

func TestNewManager_FileOutput(t *testing.T) {
	file := filepath.Join(t.TempDir(), "app.log")
	mgr, logger := NewManager(Config{Level: "warn", Format: "json", FilePath: file, Quiet: true})

	logger.Info("hidden")
	logger.Warn("shown", "scope", "User")
	require.NoError(t, mgr.Close())
	require.NoError(t, mgr.Close(), "second close is a no-op")

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"shown"`)
	assert.Contains(t, out, `"scope":"User"`)
}

func TestNewManager_QuietWithoutFile(t *testing.T) {
	mgr, logger := NewManager(Config{Quiet: true})
	logger.Info("discarded")
	assert.NoError(t, mgr.Close())
}

func TestChangeLog_RecordChange(t *testing.T) {
	var b strings.Builder
	cl := NewChangeLog(&b)

	cl.RecordChange(path.StatusAdded, path.ScopeUser, `C:\Tools`)
	cl.RecordChange(path.StatusDuplicate, path.ScopeMachine, `C:\WINDOWS`)
	require.NoError(t, cl.Close())

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "level=INFO")
	assert.Contains(t, lines[0], "PATH change detected: Added User")
	assert.Contains(t, lines[0], "status=Added")
	assert.Contains(t, lines[1], "level=WARN")
	assert.Contains(t, lines[1], "Duplicate found: Machine")
}

func TestOpenChangeLog_HeaderOnlyOnCreate(t *testing.T) {
	file := filepath.Join(t.TempDir(), "logs", "PathTools.log")

	cl, err := OpenChangeLog(file, "pathsnap 1.0")
	require.NoError(t, err)
	cl.RecordChange(path.StatusRemoved, path.ScopeMachine, `C:\Old`)
	require.NoError(t, cl.Close())

	cl, err = OpenChangeLog(file, "pathsnap 1.0")
	require.NoError(t, err)
	cl.RecordChange(path.StatusAdded, path.ScopeMachine, `C:\New`)
	require.NoError(t, cl.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	out := string(data)
	assert.Equal(t, 1, strings.Count(out, "This log file was created by pathsnap 1.0"))
	assert.Contains(t, out, "PATH change detected: Removed Machine")
	assert.Contains(t, out, "PATH change detected: Added Machine")
}

func TestChangeLog_ImplementsRecorder(t *testing.T) {
	var _ path.ChangeRecorder = NewChangeLog(&strings.Builder{})
}
