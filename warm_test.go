package translations

import (
	"context"
	"errors"
	"testing"
)

func TestWarmUp_AllSupportedLanguages(t *testing.T) {
	src := newFakeSource()
	store := newFakeStore()
	m := New(src, WithStore(store))

	results := m.WarmUp(context.Background())

	if len(results) != len(SupportedLanguages) {
		t.Fatalf("Expected %d results, got %d", len(SupportedLanguages), len(results))
	}
	for _, lang := range SupportedLanguages {
		dict, ok := results[lang]
		if !ok {
			t.Errorf("Missing result for %q", lang)
			continue
		}
		if dict["welcome"] == "" {
			t.Errorf("Empty dictionary for %q", lang)
		}
	}

	if src.callCount() != len(SupportedLanguages) {
		t.Errorf("Expected %d fetches, got %d", len(SupportedLanguages), src.callCount())
	}
	if store.len() != len(SupportedLanguages) {
		t.Errorf("Expected %d persisted entries, got %d", len(SupportedLanguages), store.len())
	}

	// Warming again is served from memory
	m.WarmUp(context.Background())
	if src.callCount() != len(SupportedLanguages) {
		t.Errorf("Expected no refetch on second warm, got %d calls", src.callCount())
	}
}

func TestWarmUp_ExplicitLanguages(t *testing.T) {
	src := newFakeSource()
	m := New(src)

	results := m.WarmUp(context.Background(), "en", "HY-am")

	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if _, ok := results["hy"]; !ok {
		t.Errorf("Expected normalized key 'hy', got %v", results)
	}
}

func TestWarmUp_FailSoft(t *testing.T) {
	src := newFakeSource()
	src.err = errors.New("backend down")
	m := New(src)

	results := m.WarmUp(context.Background())

	// Every language still gets a (possibly empty) dictionary
	for _, lang := range SupportedLanguages {
		dict, ok := results[lang]
		if !ok {
			t.Errorf("Missing result for %q", lang)
		}
		if len(dict) != 0 {
			t.Errorf("Expected empty dictionary for %q, got %d entries", lang, len(dict))
		}
	}
}
