package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"pathsnap/internal/config"
	"pathsnap/internal/path"
)

// Session is what the grid needs from the application
type Session interface {
	Compare() (path.Result, error)
	Refresh() (path.Result, error)
	SaveLive() error
	Live() []path.Entry
	Shell() path.Shell
	Settings() *config.Settings
	SetCaseSensitive(on bool) error
	ReloadSettings() error
	SettingsFile() string
}

// Messages for async operations
type compareDoneMsg struct {
	result path.Result
	err    error
}
type settingsChangedMsg struct{}

const (
	seqWidth    = 5
	statusWidth = 10
	scopeWidth  = 8
	minDirWidth = 20
	chromeRows  = 8
)

// Model is the PATH diff grid
type Model struct {
	session Session
	width   int
	height  int

	table     table.Model
	result    path.Result
	rows      []path.Row
	dupesOnly bool
	loaded    bool

	finding   bool
	findInput textinput.Model
	found     []string

	message     string
	err         error
	clipboardOK bool

	settingsCh chan struct{}
}

// New creates the grid model for session
func New(session Session) Model {
	ti := textinput.New()
	ti.Placeholder = "file name, e.g. git.exe"
	ti.Prompt = "Find on PATH: "
	ti.CharLimit = 260

	t := table.New(
		table.WithColumns(columns(80)),
		table.WithFocused(true),
		table.WithHeight(15),
		table.WithWidth(80),
	)
	t.SetStyles(tableStyles())

	return Model{
		session:    session,
		table:      t,
		findInput:  ti,
		settingsCh: make(chan struct{}, 1),
	}
}

func columns(width int) []table.Column {
	dir := width - seqWidth - statusWidth - scopeWidth - 8
	if dir < minDirWidth {
		dir = minDirWidth
	}
	return []table.Column{
		{Title: "Seq", Width: seqWidth},
		{Title: "Status", Width: statusWidth},
		{Title: "Scope", Width: scopeWidth},
		{Title: "Directory", Width: dir},
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(compareCmd(m.session), m.listenForSettings())
}

func compareCmd(s Session) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Compare()
		return compareDoneMsg{result: res, err: err}
	}
}

func refreshCmd(s Session) tea.Cmd {
	return func() tea.Msg {
		res, err := s.Refresh()
		return compareDoneMsg{result: res, err: err}
	}
}

// watchSettings forwards settings file changes to the program until ctx ends
func (m Model) watchSettings(ctx context.Context) {
	_ = config.Watch(ctx, m.session.SettingsFile(), func() {
		select {
		case m.settingsCh <- struct{}{}:
		default:
		}
	})
}

func (m Model) listenForSettings() tea.Cmd {
	return func() tea.Msg {
		<-m.settingsCh
		return settingsChangedMsg{}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetColumns(columns(msg.Width))
		m.table.SetWidth(msg.Width)
		if h := msg.Height - chromeRows; h > 3 {
			m.table.SetHeight(h)
		}
		return m, nil

	case compareDoneMsg:
		m.loaded = true
		if msg.err != nil {
			m.err = msg.err
			m.message = "Compare failed: " + msg.err.Error()
			return m, nil
		}
		m.err = nil
		m.result = msg.result
		m.applyRows()
		return m, nil

	case settingsChangedMsg:
		if err := m.session.ReloadSettings(); err != nil {
			m.message = "Settings not reloaded: " + err.Error()
			return m, m.listenForSettings()
		}
		m.message = "Settings changed, comparing again"
		return m, tea.Batch(compareCmd(m.session), m.listenForSettings())

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.finding {
			return m.handleFindKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// applyRows fills the grid from the last result
func (m *Model) applyRows() {
	m.rows = m.result.Rows
	if m.dupesOnly {
		m.rows = make([]path.Row, 0)
		for _, r := range m.result.Rows {
			if r.Status == path.StatusDuplicate {
				m.rows = append(m.rows, r)
			}
		}
	}

	rows := make([]table.Row, 0, len(m.rows))
	for _, r := range m.rows {
		rows = append(rows, table.Row{fmt.Sprintf("%d", r.Sequence), string(r.Status), string(r.Scope), r.Directory})
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(0)
	}
}

func (m Model) selected() (path.Row, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.rows) {
		return path.Row{}, false
	}
	return m.rows[i], true
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	m.clipboardOK = false
	switch msg.String() {
	case "q", "esc":
		return m, tea.Quit

	case "r", "f5":
		m.message = "Refreshing"
		return m, refreshCmd(m.session)

	case "c":
		if err := path.CopyReport(m.rows, m.result.Summary); err != nil {
			m.message = "Copy failed: " + err.Error()
		} else {
			m.clipboardOK = true
			m.message = "Grid copied to clipboard"
		}
		return m, nil

	case "y":
		if row, ok := m.selected(); ok {
			if err := path.CopyToClipboard(path.ExpandEnvVars(row.Directory, path.ProcessEnv)); err != nil {
				m.message = "Copy failed: " + err.Error()
			} else {
				m.clipboardOK = true
				m.message = "Copied " + row.Directory
			}
		}
		return m, nil

	case "e":
		if row, ok := m.selected(); ok {
			m.report(m.session.Shell().OpenExplorer(row.Directory), "Opened Explorer")
		}
		return m, nil

	case "t":
		if row, ok := m.selected(); ok {
			m.report(m.session.Shell().OpenTerminal(row.Directory), "Opened terminal")
		}
		return m, nil

	case "v":
		m.report(m.session.Shell().OpenEnvironmentEditor(), "Opened environment variables")
		return m, nil

	case "s":
		on := !m.session.Settings().CaseSensitive()
		if err := m.session.SetCaseSensitive(on); err != nil {
			m.message = "Settings not saved: " + err.Error()
			return m, nil
		}
		m.message = "Case sensitive: " + onOff(on)
		return m, compareCmd(m.session)

	case "d":
		m.dupesOnly = !m.dupesOnly
		m.applyRows()
		return m, nil

	case "l":
		m.message = m.result.Summary.LengthLine()
		return m, nil

	case "/":
		m.finding = true
		m.found = nil
		m.findInput.SetValue("")
		return m, m.findInput.Focus()
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m Model) handleFindKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.finding = false
		m.findInput.Blur()
		return m, nil
	case tea.KeyEnter, tea.KeyTab:
		name := strings.TrimSpace(m.findInput.Value())
		if name == "" {
			m.message = "Enter a file name"
			return m, nil
		}
		m.found = path.FindOnPath(m.session.Live(), name, path.ProcessEnv, path.FileExists)
		m.message = findMessage(name, m.found)
		return m, nil
	}

	var cmd tea.Cmd
	m.findInput, cmd = m.findInput.Update(msg)
	return m, cmd
}

func findMessage(name string, found []string) string {
	switch len(found) {
	case 0:
		return name + " was not found in the PATH"
	case 1:
		return name + " was found in " + found[0]
	default:
		return fmt.Sprintf("%s was found in %d directories in the PATH", name, len(found))
	}
}

func (m *Model) report(err error, ok string) {
	if err != nil {
		m.err = err
		m.message = "Failed: " + err.Error()
		return
	}
	m.message = ok
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func (m Model) View() string {
	var b strings.Builder

	mode := "case insensitive"
	if m.session.Settings().CaseSensitive() {
		mode = "case sensitive"
	}
	title := "PATH Tools"
	if m.dupesOnly {
		title += " (duplicates)"
	}
	b.WriteString(TitleStyle.Render(title) + " " + DimStyle.Render("["+mode+"]") + "\n\n")

	if !m.loaded {
		b.WriteString(DimStyle.Render("Comparing PATH with the saved snapshot...") + "\n")
		return b.String()
	}

	b.WriteString(m.table.View() + "\n")
	b.WriteString(m.renderSelected())
	b.WriteString(m.renderStatus())

	if m.finding {
		b.WriteString("\n" + BoxStyle.Render(m.findInput.View()) + "\n")
		for _, dir := range m.found {
			b.WriteString("  " + NormalStyle.Render(dir) + "\n")
		}
	}

	if m.message != "" {
		style := DimStyle
		switch {
		case m.err != nil:
			style = ErrorStyle
		case m.clipboardOK:
			style = SuccessStyle
		}
		b.WriteString("\n" + style.Render(m.message) + "\n")
	}

	if m.finding {
		b.WriteString("\n" + RenderKey("Enter", "Find") + "  " + RenderKey("Esc", "Back"))
		return b.String()
	}
	b.WriteString("\n" + RenderKey("R", "Refresh") + "  " + RenderKey("C", "Copy") + "  " +
		RenderKey("Y", "Copy dir") + "  " + RenderKey("E", "Explorer") + "  " +
		RenderKey("T", "Terminal") + "  " + RenderKey("V", "Env vars") + "\n" +
		RenderKey("S", "Case") + "  " + RenderKey("D", "Duplicates") + "  " +
		RenderKey("L", "Length") + "  " + RenderKey("/", "Find") + "  " + RenderKey("Q", "Quit"))
	return b.String()
}

// renderSelected shows the cursor row with its status colored
func (m Model) renderSelected() string {
	row, ok := m.selected()
	if !ok {
		return ""
	}
	return StatusStyle(row.Status).Render(string(row.Status)) + "  " +
		DimStyle.Render(string(row.Scope)) + "  " + NormalStyle.Render(row.Directory) + "\n"
}

func (m Model) renderStatus() string {
	s := m.result.Summary
	parts := []string{
		NormalStyle.Render(fmt.Sprintf("%d Total.", s.TotalInPath)),
		StatusStyle(path.StatusAdded).Render(fmt.Sprintf("%d Added.", s.TotalAdded)),
		StatusStyle(path.StatusRemoved).Render(fmt.Sprintf("%d Removed.", s.TotalRemoved)),
	}
	dupes := 0
	for _, r := range m.result.Rows {
		if r.Status == path.StatusDuplicate {
			dupes++
		}
	}
	if dupes > 0 {
		parts = append(parts, StatusStyle(path.StatusDuplicate).Render(fmt.Sprintf("%d Duplicate.", dupes)))
	}
	line := strings.Join(parts, "   ")
	if msg := s.ChangesLine(); msg != "" {
		line += "   " + WarningStyle.Render(msg)
	}
	return StatusBarStyle.Render(line) + "\n"
}

// Run shows the grid until the user quits, then saves the live PATH as
// the new snapshot
func Run(session Session) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := New(session)
	go m.watchSettings(ctx)

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return session.SaveLive()
}
