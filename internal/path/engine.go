package path

import "fmt"

// SettingsProvider supplies the options the engine reads on every comparison
type SettingsProvider interface {
	CaseSensitive() bool
	KeepLog() bool
	LogFilePath() string
}

// Logger is the application log sink. *slog.Logger satisfies it.
type Logger interface {
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// ChangeRecorder receives one call per detected PATH change
type ChangeRecorder interface {
	RecordChange(status Status, scope Scope, directory string)
}

// StaticSettings is a fixed SettingsProvider
type StaticSettings struct {
	Sensitive bool
	Keep      bool
	LogFile   string
}

func (s StaticSettings) CaseSensitive() bool { return s.Sensitive }
func (s StaticSettings) KeepLog() bool       { return s.Keep }
func (s StaticSettings) LogFilePath() string { return s.LogFile }

type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}

// Engine runs comparisons and reports them to the injected sinks
type Engine struct {
	settings SettingsProvider
	logger   Logger
	changes  ChangeRecorder
}

// NewEngine creates an engine. logger and changes may be nil.
func NewEngine(settings SettingsProvider, logger Logger, changes ChangeRecorder) *Engine {
	if settings == nil {
		settings = StaticSettings{}
	}
	if logger == nil {
		logger = nopLogger{}
	}
	return &Engine{settings: settings, logger: logger, changes: changes}
}

// Compare diffs the live capture against the saved snapshot
func (e *Engine) Compare(saved []Entry, live Capture) (Result, error) {
	caseSensitive := e.settings.CaseSensitive()
	if caseSensitive {
		e.logger.Info("Comparisons are case sensitive")
	} else {
		e.logger.Info("Comparisons are not case sensitive")
	}

	result, err := Compare(saved, live.Entries, caseSensitive)
	if err != nil {
		return Result{}, err
	}
	result.Summary.TotalPathLength = live.RawLength

	keepLog := e.settings.KeepLog() && e.changes != nil
	for _, r := range result.Rows {
		switch r.Status {
		case StatusDuplicate:
			e.logger.Warn(fmt.Sprintf("Duplicate found: %d %s %s", r.Sequence, r.Scope, r.Directory))
			if keepLog {
				e.changes.RecordChange(r.Status, r.Scope, r.Directory)
			}
		case StatusAdded, StatusRemoved:
			if keepLog {
				e.changes.RecordChange(r.Status, r.Scope, r.Directory)
			}
		}
	}
	for _, c := range result.Collapsed {
		e.logger.Warn(fmt.Sprintf("Repeated directory not listed separately: %d %s %s", c.Sequence, c.Scope, c.Directory))
	}

	e.logger.Info(result.Summary.TotalsLine())
	if msg := result.Summary.ChangesLine(); msg != "" {
		e.logger.Info(msg)
	}
	return result, nil
}
