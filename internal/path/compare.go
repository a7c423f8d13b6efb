package path

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidArgument is returned when the engine is handed a nil list
var ErrInvalidArgument = errors.New("invalid argument")

// Result is the merged, annotated output of a comparison
type Result struct {
	Rows []Row `json:"rows"`
	// Collapsed holds Added/Removed entries whose directory already
	// produced a row; only the first match of such a directory is emitted.
	Collapsed []Entry `json:"collapsed,omitempty"`
	Summary   Summary `json:"summary"`
}

// Compare classifies every live and saved entry.
// TotalPathLength is left at zero; Engine.Compare fills it from the capture.
func Compare(saved, live []Entry, caseSensitive bool) (Result, error) {
	if saved == nil {
		return Result{}, fmt.Errorf("compare: saved list is nil: %w", ErrInvalidArgument)
	}
	if live == nil {
		return Result{}, fmt.Errorf("compare: live list is nil: %w", ErrInvalidArgument)
	}

	cmp := Comparator{CaseSensitive: caseSensitive}
	savedKeys := keySet(saved, cmp)
	liveKeys := keySet(live, cmp)

	unchanged := distinctIn(saved, cmp, func(k string) bool { return liveKeys[k] })
	added := distinctIn(live, cmp, func(k string) bool { return !savedKeys[k] })
	removed := distinctIn(saved, cmp, func(k string) bool { return !liveKeys[k] })

	result := Result{Rows: make([]Row, 0, len(live)+len(removed))}
	diffs := 0

	// live rows per unchanged directory, for duplicate detection
	liveCount := make(map[string]int)
	for _, e := range live {
		liveCount[cmp.Key(e.Directory)]++
	}

	unchangedSet := make(map[string]bool, len(unchanged))
	for _, k := range unchanged {
		unchangedSet[k] = true
	}
	for _, e := range live {
		k := cmp.Key(e.Directory)
		if !unchangedSet[k] {
			continue
		}
		status := StatusUnchanged
		if liveCount[k] > 1 {
			status = StatusDuplicate
		}
		result.Rows = append(result.Rows, Row{Entry: e, Status: status})
	}
	for _, k := range unchanged {
		if n := liveCount[k]; n > 1 {
			diffs += n - 1
		}
	}

	emitFirst := func(source []Entry, keys []string, status Status) {
		want := make(map[string]bool, len(keys))
		for _, k := range keys {
			want[k] = true
		}
		emitted := make(map[string]bool, len(keys))
		for _, e := range source {
			k := cmp.Key(e.Directory)
			if !want[k] {
				continue
			}
			if emitted[k] {
				result.Collapsed = append(result.Collapsed, e)
				continue
			}
			emitted[k] = true
			result.Rows = append(result.Rows, Row{Entry: e, Status: status})
			diffs++
		}
	}
	emitFirst(live, added, StatusAdded)
	emitFirst(saved, removed, StatusRemoved)

	sort.SliceStable(result.Rows, func(i, j int) bool {
		return result.Rows[i].Sequence < result.Rows[j].Sequence
	})

	result.Summary = Summary{
		TotalInPath:     len(live),
		TotalAdded:      len(added),
		TotalRemoved:    len(removed),
		TotalUnchanged:  len(unchanged),
		DifferenceCount: diffs,
	}
	return result, nil
}

func keySet(entries []Entry, cmp Comparator) map[string]bool {
	set := make(map[string]bool, len(entries))
	for _, e := range entries {
		set[cmp.Key(e.Directory)] = true
	}
	return set
}

// distinctIn returns the distinct keys of entries accepted by keep,
// in first-occurrence order
func distinctIn(entries []Entry, cmp Comparator, keep func(string) bool) []string {
	seen := make(map[string]bool)
	keys := make([]string, 0)
	for _, e := range entries {
		k := cmp.Key(e.Directory)
		if seen[k] || !keep(k) {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
	}
	return keys
}
