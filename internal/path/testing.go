package path

// Mock PATH values served by SetupTestMocks
const (
	MockMachinePath = `C:\WINDOWS\system32;C:\WINDOWS;C:\Program Files\Git\cmd;`
	MockUserPath    = `C:\Users\Test\bin;C:\Users\Test\AppData\Local\Programs\Test`
)

// SetupTestMocks makes mock answer both PATH reads with the Mock values.
// cli tests use it too, so it lives outside the _test files.
func SetupTestMocks(mock *MockShellRunner) {
	mock.DefaultResponse = ""
	mock.SetResponse("'Path', 'Machine'", MockMachinePath)
	mock.SetResponse("'Path', 'User'", MockUserPath)
}

// SetDefaultTestRunner installs a prepared mock as DefaultRunner.
// Call the returned func to put the previous runner back.
func SetDefaultTestRunner() (*MockShellRunner, func()) {
	prev := DefaultRunner
	mock := NewMockShellRunner()
	SetupTestMocks(mock)
	DefaultRunner = mock
	return mock, func() { DefaultRunner = prev }
}

func IsTestMockActive() bool {
	_, ok := DefaultRunner.(*MockShellRunner)
	return ok
}

// RecordingLauncher captures Start calls instead of spawning processes
type RecordingLauncher struct {
	Calls [][]string
	Err   error
	// FailFirst makes only the first call return Err
	FailFirst bool
}

// Start records the command line
func (l *RecordingLauncher) Start(name string, args ...string) error {
	l.Calls = append(l.Calls, append([]string{name}, args...))
	if l.Err != nil && (!l.FailFirst || len(l.Calls) == 1) {
		return l.Err
	}
	return nil
}
