// Command translations inspects and manages the app's translation cache:
// fetch dictionaries, warm or clear the cache, and export/import snapshots.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/rs/zerolog"

	translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
	"github.com/armenasatryan9603/job-portal-mobile-sub002/cache"
	"github.com/armenasatryan9603/job-portal-mobile-sub002/provider"
)

// Build-time variables (can be overridden with ldflags)
var (
	version   = translations.Version
	commit    = translations.GitCommit
	buildDate = translations.BuildDate
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("translations", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", translations.DefaultLanguage, "Language code (en, ru, hy)")
	baseURL := fs.String("base-url", os.Getenv("TRANSLATIONS_BASE_URL"), "Backend base URL (default: TRANSLATIONS_BASE_URL env)")
	sheetURL := fs.String("sheet-url", "", "Published spreadsheet URL (used instead of the backend)")
	cacheDir := fs.String("cache-dir", "", "Cache directory (default: user cache dir)")
	redisURL := fs.String("redis", "", "Redis URL (used instead of the file cache)")
	key := fs.String("key", "", "Look up a single translation key")
	ttl := fs.Duration("ttl", translations.DefaultTTL, "Cache entry TTL (0 to disable expiry)")
	timeout := fs.Duration("timeout", translations.DefaultFetchTimeout, "Backend fetch timeout")
	sampleKey := fs.String("sample-key", translations.DefaultSampleKey, "Integrity-check key (empty to disable)")
	refresh := fs.Bool("refresh", false, "Force a re-fetch, discarding cached entries")
	warm := fs.Bool("warm", false, "Prefetch every supported language")
	clear := fs.Bool("clear", false, "Clear both cache tiers and exit")
	check := fs.Bool("check", false, "Report cache state for the language and exit")
	diff := fs.Bool("diff", false, "Show what a refresh would change")
	exportPath := fs.String("export", "", "Export the cache snapshot to a file")
	importPath := fs.String("import", "", "Import a cache snapshot from a file")
	jsonOutput := fs.Bool("json", false, "Output result as JSON")
	quiet := fs.Bool("quiet", false, "Suppress log output")
	verbose := fs.Bool("verbose", false, "Enable debug logging")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", translations.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit:  %s\n", commit)
		}
		if buildDate != "unknown" && buildDate != "" {
			fmt.Fprintf(stdout, "  built:   %s\n", buildDate)
		}
		return nil
	}

	logger := newLogger(stderr, *quiet, *verbose)

	store, err := newStore(*redisURL, *cacheDir)
	if err != nil {
		return err
	}

	source, err := newSource(*baseURL, *sheetURL, *timeout)
	if err != nil && !*clear && !*check && *exportPath == "" && *importPath == "" {
		// Cache-only operations work without a backend.
		return err
	}

	manager := translations.New(source,
		translations.WithStore(store),
		translations.WithTTL(*ttl),
		translations.WithFetchTimeout(*timeout),
		translations.WithSampleKey(*sampleKey),
		translations.WithLogger(logger),
	)

	ctx := context.Background()

	switch {
	case *clear:
		manager.ClearCache()
		fmt.Fprintln(stdout, "cache cleared")
		return nil

	case *check:
		return runCheck(manager, *lang, stdout, *jsonOutput)

	case *exportPath != "":
		return runExport(store, *exportPath, stdout)

	case *importPath != "":
		return runImport(store, *importPath, stdout)

	case *warm:
		return runWarm(ctx, manager, stdout, *jsonOutput)

	case *diff:
		return runDiff(ctx, manager, source, *lang, stdout, *jsonOutput)
	}

	var dict translations.Dictionary
	if *refresh {
		dict = manager.Refresh(ctx, *lang)
	} else {
		dict = manager.Translations(ctx, *lang)
	}

	if *key != "" {
		fmt.Fprintln(stdout, manager.Translation(ctx, *lang, *key))
		return nil
	}

	return printDictionary(stdout, *lang, dict, *jsonOutput)
}

func newLogger(stderr io.Writer, quiet, verbose bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	if quiet {
		level = zerolog.Disabled
	}

	return zerolog.New(zerolog.ConsoleWriter{
		Out:        stderr,
		TimeFormat: time.RFC3339,
	}).Level(level).With().Timestamp().Logger()
}

// newStore picks the persistent tier: Redis when a URL is given, a file
// store otherwise.
func newStore(redisURL, cacheDir string) (cache.KeyedStore, error) {
	if redisURL != "" {
		store, err := cache.NewRedisStore(cache.RedisConfig{URL: redisURL})
		if err != nil {
			return nil, fmt.Errorf("connecting to redis: %w", err)
		}
		return store, nil
	}

	if cacheDir == "" {
		base, err := os.UserCacheDir()
		if err != nil {
			return nil, fmt.Errorf("resolving cache directory: %w", err)
		}
		cacheDir = filepath.Join(base, "jobportal-translations")
	}
	return cache.NewFileStore(cacheDir)
}

func newSource(baseURL, sheetURL string, timeout time.Duration) (translations.Source, error) {
	if sheetURL != "" {
		return provider.NewSheetSource(provider.SheetConfig{URL: sheetURL, Timeout: timeout}), nil
	}
	if baseURL != "" {
		return provider.NewRESTSource(provider.RESTConfig{BaseURL: baseURL, Timeout: timeout}), nil
	}
	return nil, fmt.Errorf("--base-url or --sheet-url is required")
}

func runCheck(m *translations.Manager, lang string, stdout io.Writer, jsonOut bool) error {
	cached := m.IsCached(lang)
	status := m.Status(lang)

	if jsonOut {
		out := struct {
			Language string `json:"language"`
			Cached   bool   `json:"cached"`
			State    string `json:"state"`
		}{lang, cached, status.State.String()}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Fprintf(stdout, "language: %s\n", lang)
	fmt.Fprintf(stdout, "cached:   %v\n", cached)
	fmt.Fprintf(stdout, "state:    %s\n", status.State)
	return nil
}

func runExport(store cache.KeyedStore, path string, stdout io.Writer) error {
	exporter := cache.NewExporter(store)
	meta := map[string]string{"tool": translations.Name + "/" + version}
	if err := exporter.ExportToFile(path, meta); err != nil {
		return fmt.Errorf("exporting cache: %w", err)
	}
	fmt.Fprintf(stdout, "exported cache to %s\n", path)
	return nil
}

func runImport(store cache.Store, path string, stdout io.Writer) error {
	importer := cache.NewImporter(store)
	result, err := importer.ImportFromFile(path)
	if err != nil {
		return fmt.Errorf("importing cache: %w", err)
	}
	fmt.Fprintf(stdout, "imported %d entries (%d failed)\n", result.Imported, result.Failed)
	return nil
}

func runWarm(ctx context.Context, m *translations.Manager, stdout io.Writer, jsonOut bool) error {
	start := time.Now()
	results := m.WarmUp(ctx)
	elapsed := time.Since(start)

	if jsonOut {
		out := make(map[string]int, len(results))
		for lang, dict := range results {
			out[lang] = len(dict)
		}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	langs := make([]string, 0, len(results))
	for lang := range results {
		langs = append(langs, lang)
	}
	sort.Strings(langs)

	for _, lang := range langs {
		fmt.Fprintf(stdout, "%s: %d entries\n", lang, len(results[lang]))
	}
	fmt.Fprintf(stdout, "warmed %d languages in %v\n", len(langs), elapsed.Round(time.Millisecond))
	return nil
}

// runDiff compares the cached dictionary with a direct backend fetch,
// without touching either cache tier.
func runDiff(ctx context.Context, m *translations.Manager, source translations.Source, lang string, stdout io.Writer, jsonOut bool) error {
	cached := m.Translations(ctx, lang)

	fresh, err := source.FetchTranslations(ctx, lang)
	if err != nil {
		return fmt.Errorf("fetching fresh dictionary: %w", err)
	}

	result := translations.Diff(cached, fresh)

	if jsonOut {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	stats := result.Stats()
	fmt.Fprintf(stdout, "%s: +%d -%d ~%d (=%d)\n", lang, stats.Added, stats.Removed, stats.Changed, stats.Unchanged)
	for _, k := range result.Added {
		fmt.Fprintf(stdout, "  + %s\n", k)
	}
	for _, k := range result.Removed {
		fmt.Fprintf(stdout, "  - %s\n", k)
	}
	for _, k := range result.Changed {
		fmt.Fprintf(stdout, "  ~ %s\n", k)
	}
	return nil
}

func printDictionary(stdout io.Writer, lang string, dict translations.Dictionary, jsonOut bool) error {
	if jsonOut {
		out := struct {
			Language     string                  `json:"language"`
			Count        int                     `json:"count"`
			Translations translations.Dictionary `json:"translations"`
		}{lang, len(dict), dict}
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	keys := make([]string, 0, len(dict))
	for k := range dict {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		fmt.Fprintf(stdout, "%s = %s\n", k, dict[k])
	}
	return nil
}
