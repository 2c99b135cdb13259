package cache

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"time"
)

// ExportFormat represents the JSON structure for store export/import.
type ExportFormat struct {
	Version    string            `json:"version"`
	ExportedAt string            `json:"exported_at"`
	Entries    []ExportEntry     `json:"entries"`
	Metadata   map[string]string `json:"metadata,omitempty"`
}

// ExportEntry represents a single stored entry.
type ExportEntry struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Exporter writes a snapshot of a store, e.g. to seed another device or to
// inspect what the app has cached.
type Exporter struct {
	store KeyedStore
}

// NewExporter creates a new store exporter.
func NewExporter(store KeyedStore) *Exporter {
	return &Exporter{store: store}
}

// Export writes the store contents to a writer in JSON format, entries
// sorted by key for stable output.
func (e *Exporter) Export(w io.Writer, metadata map[string]string) error {
	keys, err := e.store.Keys()
	if err != nil {
		return fmt.Errorf("listing store keys: %w", err)
	}
	sort.Strings(keys)

	entries := make([]ExportEntry, 0, len(keys))
	for _, key := range keys {
		value, ok := e.store.Get(key)
		if !ok {
			// Deleted between Keys and Get; skip.
			continue
		}
		entries = append(entries, ExportEntry{Key: key, Value: value})
	}

	export := ExportFormat{
		Version:    "1.0",
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Entries:    entries,
		Metadata:   metadata,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(export); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}

	return nil
}

// ExportToFile exports the store to a file.
// The path is provided by the caller and is intentionally user-controlled.
func (e *Exporter) ExportToFile(path string, metadata map[string]string) error {
	f, err := os.Create(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer f.Close()

	return e.Export(f, metadata)
}

// Importer loads exported entries into a store.
type Importer struct {
	store Store
}

// NewImporter creates a new store importer.
func NewImporter(store Store) *Importer {
	return &Importer{store: store}
}

// Import reads entries from a reader and loads them into the store.
func (i *Importer) Import(r io.Reader) (*ImportResult, error) {
	var export ExportFormat
	if err := json.NewDecoder(r).Decode(&export); err != nil {
		return nil, fmt.Errorf("decoding JSON: %w", err)
	}

	result := &ImportResult{
		Version:  export.Version,
		Metadata: export.Metadata,
	}

	for _, entry := range export.Entries {
		if err := i.store.Set(entry.Key, entry.Value); err != nil {
			result.Failed++
			continue
		}
		result.Imported++
	}

	return result, nil
}

// ImportFromFile imports entries from a file.
// The path is provided by the caller and is intentionally user-controlled.
func (i *Importer) ImportFromFile(path string) (*ImportResult, error) {
	f, err := os.Open(path) // #nosec G304 - path is intentionally user-provided
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	return i.Import(f)
}

// ImportResult contains statistics about the import operation.
type ImportResult struct {
	Version  string
	Metadata map[string]string
	Imported int
	Failed   int
}
