package path

import (
	"path/filepath"
	"strings"
)

// DefaultPathExt is the default Windows PATHEXT
const DefaultPathExt = ".COM;.EXE;.BAT;.CMD;.VBS;.VBE;.JS;.JSE;.WSF;.WSH;.MSC"

// PathExtensions returns the executable extensions from PATHEXT, in order.
// Empty items are skipped and a missing variable gives DefaultPathExt.
func PathExtensions(lookup EnvLookup) []string {
	if lookup == nil {
		lookup = ProcessEnv
	}
	raw, ok := lookup("PATHEXT")
	if !ok || strings.TrimSpace(raw) == "" {
		raw = DefaultPathExt
	}

	exts := make([]string, 0)
	for _, ext := range strings.Split(raw, ";") {
		ext = strings.TrimSpace(ext)
		if ext == "" {
			continue
		}
		if !strings.HasPrefix(ext, ".") {
			ext = "." + ext
		}
		exts = append(exts, ext)
	}
	return exts
}

// Candidates lists the file names a command lookup tries: name itself,
// then name with each extension when name has none of its own
func Candidates(name string, exts []string) []string {
	names := []string{name}
	if filepath.Ext(name) != "" {
		return names
	}
	for _, ext := range exts {
		names = append(names, name+strings.ToLower(ext))
	}
	return names
}
