package path

import (
	"os"
	"path/filepath"
)

// EntryCheck is the validity of one PATH directory
type EntryCheck struct {
	Entry
	Expanded string
	Exists   bool
}

// DirExists reports whether dir is an existing directory
func DirExists(dir string) bool {
	info, err := os.Stat(dir)
	return err == nil && info.IsDir()
}

// FileExists reports whether name is an existing regular file
func FileExists(name string) bool {
	info, err := os.Stat(name)
	return err == nil && info.Mode().IsRegular()
}

// CheckEntries expands each non-empty directory and tests it with exists
func CheckEntries(entries []Entry, lookup EnvLookup, exists func(string) bool) []EntryCheck {
	if exists == nil {
		exists = DirExists
	}
	checks := make([]EntryCheck, 0, len(entries))
	for _, e := range entries {
		if e.Directory == "" {
			continue
		}
		expanded := ExpandEnvVars(e.Directory, lookup)
		checks = append(checks, EntryCheck{Entry: e, Expanded: expanded, Exists: exists(expanded)})
	}
	return checks
}

// FindOnPath returns every directory, in order, that contains name.
// A name without an extension also matches name plus any PATHEXT extension.
func FindOnPath(entries []Entry, name string, lookup EnvLookup, exists func(string) bool) []string {
	if name == "" {
		return []string{}
	}
	if exists == nil {
		exists = FileExists
	}
	names := Candidates(name, PathExtensions(lookup))
	found := make([]string, 0)
	for _, e := range entries {
		if e.Directory == "" {
			continue
		}
		dir := ExpandEnvVars(e.Directory, lookup)
		for _, n := range names {
			if exists(filepath.Join(dir, n)) {
				found = append(found, dir)
				break
			}
		}
	}
	return found
}

// FindDuplicates lists every entry whose directory appears more than once,
// grouped by directory in order of first appearance
func FindDuplicates(entries []Entry, caseSensitive bool) []Entry {
	cmp := Comparator{CaseSensitive: caseSensitive}
	groups := make(map[string][]Entry)
	order := make([]string, 0)
	for _, e := range entries {
		k := cmp.Key(e.Directory)
		if _, ok := groups[k]; !ok {
			order = append(order, k)
		}
		groups[k] = append(groups[k], e)
	}

	dupes := make([]Entry, 0)
	for _, k := range order {
		if len(groups[k]) > 1 {
			dupes = append(dupes, groups[k]...)
		}
	}
	return dupes
}
