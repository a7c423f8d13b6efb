package path

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Scope is the environment tier a PATH entry came from
type Scope string

const (
	ScopeMachine Scope = "Machine"
	ScopeUser    Scope = "User"
)

// Valid reports whether s is a known scope
func (s Scope) Valid() bool {
	return s == ScopeMachine || s == ScopeUser
}

// Status classifies a row relative to the saved snapshot
type Status string

const (
	StatusUnchanged Status = "Unchanged"
	StatusDuplicate Status = "Duplicate"
	StatusAdded     Status = "Added"
	StatusRemoved   Status = "Removed"
)

// Entry is one PATH segment as captured or saved.
// Directory is kept exactly as captured: no cleaning, no case folding.
type Entry struct {
	Sequence  int    `json:"sequence"`
	Scope     Scope  `json:"scope"`
	Directory string `json:"directory"`
}

// Row is an entry annotated with its diff status
type Row struct {
	Entry
	Status Status `json:"status"`
}

// Comparator decides directory equality for diffing
type Comparator struct {
	CaseSensitive bool
}

// Key returns the set key for dir under this comparator
func (c Comparator) Key(dir string) string {
	if c.CaseSensitive {
		return dir
	}
	return upperBytes(dir)
}

// upperBytes upper-cases each rune of s and copies bytes that are not
// valid UTF-8 through unchanged, so distinct raw directories keep
// distinct keys
func upperBytes(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if r == utf8.RuneError && size == 1 {
			b.WriteByte(s[i])
		} else {
			b.WriteRune(unicode.ToUpper(r))
		}
		i += size
	}
	return b.String()
}

// Equal reports whether two directories match
func (c Comparator) Equal(a, b string) bool {
	return c.Key(a) == c.Key(b)
}
