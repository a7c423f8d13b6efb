package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rowsOf(res Result) []string {
	out := make([]string, 0, len(res.Rows))
	for _, r := range res.Rows {
		out = append(out, string(r.Status)+" "+r.Directory)
	}
	return out
}

func TestCompare_AddedAndRemoved(t *testing.T) {
	saved := []Entry{m(1, `C:\A`), m(2, `C:\B`)}
	live := []Entry{m(1, `C:\A`), m(2, `C:\C`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unchanged C:\\A", "Added C:\\C", "Removed C:\\B"}, rowsOf(res))
	assert.Equal(t, Summary{TotalInPath: 2, TotalAdded: 1, TotalRemoved: 1, TotalUnchanged: 1, DifferenceCount: 2}, res.Summary)
	assert.Empty(t, res.Collapsed)
}

func TestCompare_NoChanges(t *testing.T) {
	saved := []Entry{m(1, `C:\A`), u(2, `C:\B`)}
	live := []Entry{m(1, `C:\A`), u(2, `C:\B`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Unchanged C:\\A", "Unchanged C:\\B"}, rowsOf(res))
	assert.Equal(t, 0, res.Summary.DifferenceCount)
	assert.False(t, res.Summary.ShouldAlert())
}

func TestCompare_DuplicatesAcrossScopes(t *testing.T) {
	saved := []Entry{m(1, `C:\A`)}
	live := []Entry{m(1, `C:\A`), u(2, `c:\a`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	require.Len(t, res.Rows, 2)
	assert.Equal(t, StatusDuplicate, res.Rows[0].Status)
	assert.Equal(t, ScopeMachine, res.Rows[0].Scope)
	assert.Equal(t, StatusDuplicate, res.Rows[1].Status)
	assert.Equal(t, ScopeUser, res.Rows[1].Scope)
	assert.Equal(t, `c:\a`, res.Rows[1].Directory, "live spelling is kept")
	assert.Equal(t, 1, res.Summary.TotalUnchanged)
	assert.Equal(t, 1, res.Summary.DifferenceCount)
}

func TestCompare_TripleDuplicateCountsTwo(t *testing.T) {
	saved := []Entry{m(1, `C:\A`)}
	live := []Entry{m(1, `C:\A`), m(2, `C:\A`), u(3, `C:\A`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	assert.Len(t, res.Rows, 3)
	assert.Equal(t, 2, res.Summary.DifferenceCount)
}

func TestCompare_RepeatedAddedDirectoryCollapses(t *testing.T) {
	live := []Entry{m(1, `C:\X`), u(2, `C:\X`)}

	res, err := Compare([]Entry{}, live, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Added C:\\X"}, rowsOf(res))
	assert.Equal(t, 1, res.Rows[0].Sequence)
	assert.Equal(t, []Entry{u(2, `C:\X`)}, res.Collapsed)
	assert.Equal(t, 1, res.Summary.TotalAdded)
	assert.Equal(t, 1, res.Summary.DifferenceCount)
}

func TestCompare_CaseSensitivity(t *testing.T) {
	saved := []Entry{m(1, `c:\windows`)}
	live := []Entry{m(1, `C:\WINDOWS`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)
	assert.Equal(t, []string{"Unchanged C:\\WINDOWS"}, rowsOf(res))

	res, err = Compare(saved, live, true)
	require.NoError(t, err)
	assert.Equal(t, []string{"Added C:\\WINDOWS", "Removed c:\\windows"}, rowsOf(res))
	assert.Equal(t, 2, res.Summary.DifferenceCount)
}

func TestCompare_SortedBySequence(t *testing.T) {
	saved := []Entry{m(1, `C:\Old`), m(2, `C:\Keep`)}
	live := []Entry{m(1, `C:\New`), m(2, `C:\Keep`)}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	// ties keep insertion order: unchanged, added, removed
	assert.Equal(t, []string{"Added C:\\New", "Removed C:\\Old", "Unchanged C:\\Keep"}, rowsOf(res))
}

func TestCompare_EmptyDirectoryIsAnEntry(t *testing.T) {
	res, err := Compare([]Entry{}, []Entry{m(1, "")}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Added "}, rowsOf(res))
	assert.Equal(t, 1, res.Summary.TotalInPath)
}

func TestCompare_EmptyLists(t *testing.T) {
	res, err := Compare([]Entry{}, []Entry{}, false)
	require.NoError(t, err)

	assert.NotNil(t, res.Rows)
	assert.Empty(t, res.Rows)
	assert.Equal(t, Summary{}, res.Summary)
}

func TestCompare_EverythingRemoved(t *testing.T) {
	saved := []Entry{m(1, `C:\A`), u(2, `C:\B`)}

	res, err := Compare(saved, []Entry{}, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Removed C:\\A", "Removed C:\\B"}, rowsOf(res))
	assert.Equal(t, 0, res.Summary.TotalInPath)
	assert.Equal(t, 2, res.Summary.TotalRemoved)
}

func TestCompare_NilLists(t *testing.T) {
	_, err := Compare(nil, []Entry{}, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = Compare([]Entry{}, nil, false)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestComparator(t *testing.T) {
	insensitive := Comparator{}
	assert.True(t, insensitive.Equal(`C:\Tools`, `c:\TOOLS`))
	assert.False(t, insensitive.Equal(`C:\Tools`, `C:\Tools\`))

	sensitive := Comparator{CaseSensitive: true}
	assert.False(t, sensitive.Equal(`C:\Tools`, `c:\tools`))
	assert.True(t, sensitive.Equal(`C:\Tools`, `C:\Tools`))
}

func TestComparator_InvalidUTF8(t *testing.T) {
	insensitive := Comparator{}
	assert.Equal(t, "/OPT/\xffÉ", insensitive.Key("/opt/\xffé"))
	assert.False(t, insensitive.Equal("/opt/\xff", "/opt/\xfe"))
	assert.True(t, insensitive.Equal("/opt/\xffbin", "/OPT/\xffBIN"))
}

func TestCompare_InvalidUTF8DirectoriesStayDistinct(t *testing.T) {
	saved := []Entry{m(1, "/opt/\xff")}
	live := []Entry{m(1, "/opt/\xfe")}

	res, err := Compare(saved, live, false)
	require.NoError(t, err)

	assert.Equal(t, []string{"Added /opt/\xfe", "Removed /opt/\xff"}, rowsOf(res))
	assert.Equal(t, 1, res.Summary.TotalAdded)
	assert.Equal(t, 1, res.Summary.TotalRemoved)
	assert.Equal(t, 2, res.Summary.DifferenceCount)

	assert.Empty(t, FindDuplicates([]Entry{m(1, "/opt/\xff"), u(2, "/opt/\xfe")}, false))
}

func TestScopeValid(t *testing.T) {
	assert.True(t, ScopeMachine.Valid())
	assert.True(t, ScopeUser.Valid())
	assert.False(t, Scope("Process").Valid())
}
