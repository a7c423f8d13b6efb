package path

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummaryLines(t *testing.T) {
	s := Summary{TotalInPath: 12, TotalAdded: 2, TotalRemoved: 1, TotalUnchanged: 9, DifferenceCount: 3, TotalPathLength: 512}

	assert.Equal(t, "12 Total.   2 Added.   1 Removed.", s.StatusLine())
	assert.Equal(t, "Added: 2  Removed: 1  Unchanged: 9  Total: 12", s.TotalsLine())
	assert.Equal(t, "Found 3 changes", s.ChangesLine())
	assert.Equal(t, "3 changes were found in the PATH", s.AlertMessage())
	assert.Equal(t, "The PATH variable is 512 bytes", s.LengthLine())
	assert.True(t, s.ShouldAlert())
}

func TestSummaryChangesLine(t *testing.T) {
	assert.Equal(t, "", Summary{}.ChangesLine())
	assert.Equal(t, "Found 1 change", Summary{DifferenceCount: 1}.ChangesLine())
}

func TestRenderTable(t *testing.T) {
	rows := []Row{
		{Entry: m(1, `C:\WINDOWS`), Status: StatusUnchanged},
		{Entry: u(2, `C:\Tools`), Status: StatusAdded},
	}
	s := Summary{TotalInPath: 2, TotalAdded: 1, TotalUnchanged: 1, DifferenceCount: 1}

	var b strings.Builder
	RenderTable(&b, rows, s)
	out := b.String()

	assert.Contains(t, out, "Seq")
	assert.Contains(t, out, "Directory")
	assert.Contains(t, out, `C:\WINDOWS`)
	assert.Contains(t, out, "Added")
	assert.Contains(t, out, "User")
	assert.Contains(t, out, "2 Total.   1 Added.   0 Removed.")
	assert.True(t, strings.HasSuffix(out, "Found 1 change\n"))
	assert.Less(t, strings.Index(out, `C:\WINDOWS`), strings.Index(out, `C:\Tools`))
}

func TestRenderTable_NoChanges(t *testing.T) {
	var b strings.Builder
	RenderTable(&b, nil, Summary{})

	assert.True(t, strings.HasSuffix(b.String(), "0 Total.   0 Added.   0 Removed.\n"))
	assert.NotContains(t, b.String(), "Found")
}
