package translations

import (
	"reflect"
	"testing"
)

func TestDiff(t *testing.T) {
	old := Dictionary{
		"keep":    "same",
		"change":  "before",
		"removed": "gone",
	}
	fresh := Dictionary{
		"keep":   "same",
		"change": "after",
		"added":  "new",
	}

	result := Diff(old, fresh)

	if !reflect.DeepEqual(result.Added, []string{"added"}) {
		t.Errorf("Added = %v", result.Added)
	}
	if !reflect.DeepEqual(result.Removed, []string{"removed"}) {
		t.Errorf("Removed = %v", result.Removed)
	}
	if !reflect.DeepEqual(result.Changed, []string{"change"}) {
		t.Errorf("Changed = %v", result.Changed)
	}
	if !reflect.DeepEqual(result.Unchanged, []string{"keep"}) {
		t.Errorf("Unchanged = %v", result.Unchanged)
	}

	stats := result.Stats()
	if stats.Added != 1 || stats.Removed != 1 || stats.Changed != 1 || stats.Unchanged != 1 {
		t.Errorf("Stats = %+v", stats)
	}
	if !result.HasChanges() {
		t.Error("Expected HasChanges")
	}
}

func TestDiff_Identical(t *testing.T) {
	d := Dictionary{"a": "1", "b": "2"}
	result := Diff(d, d)

	if result.HasChanges() {
		t.Error("Expected no changes")
	}
	if len(result.Unchanged) != 2 {
		t.Errorf("Unchanged = %v", result.Unchanged)
	}
}

func TestDiff_Empty(t *testing.T) {
	result := Diff(Dictionary{}, Dictionary{})
	if result.HasChanges() {
		t.Error("Expected no changes for empty dictionaries")
	}

	result = Diff(nil, Dictionary{"a": "1"})
	if !reflect.DeepEqual(result.Added, []string{"a"}) {
		t.Errorf("Added = %v", result.Added)
	}
}

func TestDiff_SortedOutput(t *testing.T) {
	fresh := Dictionary{"z": "1", "a": "1", "m": "1"}
	result := Diff(Dictionary{}, fresh)

	want := []string{"a", "m", "z"}
	if !reflect.DeepEqual(result.Added, want) {
		t.Errorf("Added = %v, want %v", result.Added, want)
	}
}
