package translations

import "sort"

// DiffResult represents the difference between two dictionary versions.
type DiffResult struct {
	// Added contains keys present only in the new dictionary.
	Added []string

	// Removed contains keys present only in the old dictionary.
	Removed []string

	// Changed contains keys present in both with differing values.
	Changed []string

	// Unchanged contains keys present in both with equal values.
	Unchanged []string
}

// DiffStats contains summary counts for a diff.
type DiffStats struct {
	Added     int
	Removed   int
	Changed   int
	Unchanged int
}

// Stats returns summary statistics for the diff.
func (d *DiffResult) Stats() DiffStats {
	return DiffStats{
		Added:     len(d.Added),
		Removed:   len(d.Removed),
		Changed:   len(d.Changed),
		Unchanged: len(d.Unchanged),
	}
}

// HasChanges returns true if there are any differences.
func (d *DiffResult) HasChanges() bool {
	return len(d.Added) > 0 || len(d.Removed) > 0 || len(d.Changed) > 0
}

// Diff compares two dictionaries and returns the differences with each key
// list sorted. Useful for logging what a refresh actually changed and for
// reviewing backend content updates before forcing them.
func Diff(old, fresh Dictionary) *DiffResult {
	result := &DiffResult{}

	for key, oldVal := range old {
		newVal, ok := fresh[key]
		switch {
		case !ok:
			result.Removed = append(result.Removed, key)
		case newVal != oldVal:
			result.Changed = append(result.Changed, key)
		default:
			result.Unchanged = append(result.Unchanged, key)
		}
	}

	for key := range fresh {
		if _, ok := old[key]; !ok {
			result.Added = append(result.Added, key)
		}
	}

	sort.Strings(result.Added)
	sort.Strings(result.Removed)
	sort.Strings(result.Changed)
	sort.Strings(result.Unchanged)

	return result
}
