package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"pathsnap/internal/config"
	"pathsnap/internal/logging"
	"pathsnap/internal/path"
)

// Overridden in tests
var (
	newSource                     = path.NewSource
	launcher path.ProcessLauncher = path.ExecLauncher{}
)

// app wires settings, logs, store, reader and engine for one command run.
// The grid calls it from command goroutines while key presses reconfigure
// it, so every method holds mu.
type app struct {
	mu sync.Mutex

	settingsFile string
	settings     *config.Settings
	logs         *logging.Manager
	logger       *slog.Logger
	changes      *logging.ChangeLog
	store        *path.Store
	reader       *path.Reader
	engine       *path.Engine
	shell        path.Shell

	// last live capture, written back by SaveLive
	live *path.Capture
}

func newApp(cmd *cobra.Command) (*app, error) {
	settingsFile := configFlag
	if settingsFile == "" {
		settingsFile = config.DefaultPath()
	}
	settings, err := config.Load(settingsFile)
	if err != nil {
		return nil, err
	}
	if snapshotFlag != "" {
		settings.SnapshotFile = snapshotFlag
	}
	if cmd.Flags().Changed("case-sensitive") {
		settings.CaseSensitiveCompare = caseSensitiveFlag
	}

	a := &app{settingsFile: settingsFile}
	if err := a.configure(settings, !verboseFlag); err != nil {
		a.Close()
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("%s %s is starting up", AppName, Version))
	return a, nil
}

func (a *app) configure(settings *config.Settings, quietLog bool) error {
	if a.logs == nil {
		a.logs, a.logger = logging.NewManager(logging.Config{
			Level:    settings.Logging.Level,
			Format:   settings.Logging.Format,
			FilePath: settings.Logging.File,
			Quiet:    quietLog,
		})
	}

	if a.changes != nil {
		a.changes.Close() //nolint:errcheck
		a.changes = nil
	}
	var recorder path.ChangeRecorder
	if settings.KeepLogFile {
		cl, err := logging.OpenChangeLog(settings.LogFile, AppName+" "+Version)
		if err != nil {
			return fmt.Errorf("opening change log: %w", err)
		}
		a.changes = cl
		recorder = cl
	}

	src, err := newSource(settings.PathSource, path.DefaultRunner)
	if err != nil {
		return err
	}

	a.settings = settings
	a.store = path.NewStore(settings.SnapshotFile, a.logger)
	a.reader = path.ReaderFor(src)
	a.engine = path.NewEngine(settings, a.logger, recorder)
	a.shell = path.Shell{Launcher: launcher, Lookup: path.ProcessEnv, Logger: a.logger}
	return nil
}

// Close flushes and closes log files
func (a *app) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.changes != nil {
		a.changes.Close() //nolint:errcheck
	}
	if a.logs != nil {
		a.logs.Close() //nolint:errcheck
	}
}

// Compare captures the live PATH and diffs it against the saved snapshot,
// seeding the snapshot on a first run
func (a *app) Compare() (path.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.compare(true)
}

// CompareOnly diffs like Compare but never writes the snapshot; a missing
// snapshot file compares as an empty list
func (a *app) CompareOnly() (path.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.compare(false)
}

func (a *app) compare(seed bool) (path.Result, error) {
	saved, err := a.loadSaved(seed)
	if err != nil {
		return path.Result{}, err
	}
	live, err := a.capture()
	if err != nil {
		return path.Result{}, err
	}
	return a.engine.Compare(saved, live)
}

func (a *app) loadSaved(seed bool) ([]path.Entry, error) {
	if seed {
		if _, err := a.store.EnsureExists(); err != nil {
			return nil, err
		}
	}
	saved, err := a.store.Load()
	if err != nil && !seed && errors.Is(err, fs.ErrNotExist) {
		return []path.Entry{}, nil
	}
	return saved, err
}

// Capture reads the live PATH without comparing
func (a *app) Capture() (path.Capture, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.capture()
}

func (a *app) capture() (path.Capture, error) {
	live, err := a.reader.Capture()
	if err != nil {
		return path.Capture{}, err
	}
	a.live = &live
	return live, nil
}

// SaveLive writes the most recent capture as the new snapshot,
// capturing first if nothing was read yet
func (a *app) SaveLive() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.saveLive()
}

func (a *app) saveLive() error {
	if a.live == nil {
		if _, err := a.capture(); err != nil {
			return err
		}
	}
	if err := a.store.Save(a.live.Entries); err != nil {
		a.logger.Error("Error saving file", "error", err)
		return err
	}
	return nil
}

// Refresh compares and then saves the capture it compared
func (a *app) Refresh() (path.Result, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	res, err := a.compare(true)
	if err != nil {
		return path.Result{}, err
	}
	return res, a.saveLive()
}

// Live returns the entries of the last capture
func (a *app) Live() []path.Entry {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.live == nil {
		return []path.Entry{}
	}
	return a.live.Entries
}

// Settings returns the active settings
func (a *app) Settings() *config.Settings {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.settings
}

// Shell returns the process launcher helpers
func (a *app) Shell() path.Shell {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.shell
}

// SettingsFile is the YAML file the settings came from
func (a *app) SettingsFile() string {
	return a.settingsFile
}

// SetCaseSensitive changes and persists the comparison mode
func (a *app) SetCaseSensitive(on bool) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.settings.CaseSensitiveCompare = on
	return config.Save(a.settingsFile, a.settings)
}

// ReloadSettings re-reads the settings file, keeping command line overrides
func (a *app) ReloadSettings() error {
	settings, err := config.Load(a.settingsFile)
	if err != nil {
		return err
	}
	if snapshotFlag != "" {
		settings.SnapshotFile = snapshotFlag
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	a.logger.Info("Settings reloaded from " + a.settingsFile)
	return a.configure(settings, true)
}

func fileExists(name string) bool {
	_, err := os.Stat(name)
	return err == nil
}

func absPath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}
