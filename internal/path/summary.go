package path

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"
)

// Summary holds the counters of one comparison
type Summary struct {
	TotalInPath     int `json:"totalInPath"`
	TotalAdded      int `json:"totalAdded"`
	TotalRemoved    int `json:"totalRemoved"`
	TotalUnchanged  int `json:"totalUnchanged"`
	DifferenceCount int `json:"differenceCount"`
	TotalPathLength int `json:"totalPathByteLength"`
}

// ShouldAlert reports whether any difference was found
func (s Summary) ShouldAlert() bool {
	return s.DifferenceCount > 0
}

// StatusLine is the one-line status bar text
func (s Summary) StatusLine() string {
	return fmt.Sprintf("%d Total.   %d Added.   %d Removed.", s.TotalInPath, s.TotalAdded, s.TotalRemoved)
}

// TotalsLine is the log line written after every comparison
func (s Summary) TotalsLine() string {
	return fmt.Sprintf("Added: %d  Removed: %d  Unchanged: %d  Total: %d",
		s.TotalAdded, s.TotalRemoved, s.TotalUnchanged, s.TotalInPath)
}

// ChangesLine describes the difference count, or "" when there is none
func (s Summary) ChangesLine() string {
	switch s.DifferenceCount {
	case 0:
		return ""
	case 1:
		return "Found 1 change"
	default:
		return fmt.Sprintf("Found %d changes", s.DifferenceCount)
	}
}

// AlertMessage is the text handed to the alert process
func (s Summary) AlertMessage() string {
	return fmt.Sprintf("%d changes were found in the PATH", s.DifferenceCount)
}

// LengthLine describes the combined PATH length
func (s Summary) LengthLine() string {
	return fmt.Sprintf("The PATH variable is %d bytes", s.TotalPathLength)
}

// RenderTable writes rows as a plain text grid followed by the summary
func RenderTable(w io.Writer, rows []Row, s Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Seq", "Status", "Scope", "Directory"})
	table.SetAutoFormatHeaders(false)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, r := range rows {
		table.Append([]string{fmt.Sprintf("%d", r.Sequence), string(r.Status), string(r.Scope), r.Directory})
	}
	table.Render()

	fmt.Fprintln(w)
	fmt.Fprintln(w, s.StatusLine())
	if msg := s.ChangesLine(); msg != "" {
		fmt.Fprintln(w, msg)
	}
}
