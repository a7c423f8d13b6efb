package path

import (
	"os"
	"strings"
)

// EnvLookup resolves a variable name
type EnvLookup func(name string) (string, bool)

// ProcessEnv looks a name up in the process environment, ignoring case
// the way Windows does
func ProcessEnv(name string) (string, bool) {
	if v, ok := os.LookupEnv(name); ok {
		return v, true
	}
	for _, kv := range os.Environ() {
		parts := strings.SplitN(kv, "=", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], name) {
			return parts[1], true
		}
	}
	return "", false
}

// ExpandEnvVars expands %VAR% references. Unknown variables are left as written.
func ExpandEnvVars(p string, lookup EnvLookup) string {
	if p == "" || !strings.Contains(p, "%") {
		return p
	}
	if lookup == nil {
		lookup = ProcessEnv
	}

	var b strings.Builder
	rest := p
	for {
		start := strings.Index(rest, "%")
		if start == -1 {
			break
		}
		end := strings.Index(rest[start+1:], "%")
		if end == -1 {
			break
		}
		end += start + 1

		name := rest[start+1 : end]
		b.WriteString(rest[:start])
		if value, ok := lookup(name); ok && name != "" {
			b.WriteString(value)
			rest = rest[end+1:]
			continue
		}
		// keep the opening '%' and retry from the closing one
		b.WriteString(rest[start:end])
		rest = rest[end:]
	}
	b.WriteString(rest)
	return b.String()
}
