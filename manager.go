package translations

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/singleflight"
)

// Source fetches a full dictionary for one language from the backend.
type Source interface {
	FetchTranslations(ctx context.Context, lang string) (Dictionary, error)
}

// Store is the persistent key-value collaborator (device-local storage).
// Values are whole-entry replacements; there are no partial updates.
// The cache package provides implementations.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string) error
	Delete(key string) error
	DeleteAll(keys []string) error
}

// Manager resolves per-language dictionaries through three tiers:
// an in-memory map trusted for the process lifetime, a persistent store
// checked for expiry and integrity, and the backend source.
//
// All lookup methods are fail-soft: they never return an error. Failures
// are logged, absorbed into an empty dictionary, and observable through
// Status.
type Manager struct {
	source Source
	store  Store

	ttl          time.Duration
	fetchTimeout time.Duration
	sampleKey    string
	keyPrefix    string
	logger       zerolog.Logger

	mu     sync.RWMutex
	memory map[string]Dictionary
	status map[string]Status

	group singleflight.Group
}

// Option is a functional option for configuring the Manager.
type Option func(*Manager)

// WithStore sets the persistent store tier. Without one the manager runs
// memory-and-network only.
func WithStore(s Store) Option {
	return func(m *Manager) {
		m.store = s
	}
}

// WithTTL sets the persistent entry validity window.
// A non-positive value disables expiry.
func WithTTL(ttl time.Duration) Option {
	return func(m *Manager) {
		m.ttl = ttl
	}
}

// WithFetchTimeout bounds each backend fetch. Zero disables the bound.
func WithFetchTimeout(d time.Duration) Option {
	return func(m *Manager) {
		m.fetchTimeout = d
	}
}

// WithSampleKey sets the well-known key used for the integrity check.
// An empty key disables the check.
func WithSampleKey(key string) Option {
	return func(m *Manager) {
		m.sampleKey = key
	}
}

// WithKeyPrefix sets the storage key namespace.
func WithKeyPrefix(prefix string) Option {
	return func(m *Manager) {
		m.keyPrefix = prefix
	}
}

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(m *Manager) {
		m.logger = logger
	}
}

// New creates a Manager backed by the given source.
func New(source Source, opts ...Option) *Manager {
	m := &Manager{
		source:       source,
		ttl:          DefaultTTL,
		fetchTimeout: DefaultFetchTimeout,
		sampleKey:    DefaultSampleKey,
		keyPrefix:    DefaultKeyPrefix,
		logger:       zerolog.Nop(),
		memory:       make(map[string]Dictionary),
		status:       make(map[string]Status),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// StorageKey returns the persistent-store key for a language.
func (m *Manager) StorageKey(lang string) string {
	return m.keyPrefix + lang
}

// TTL returns the configured entry validity window.
func (m *Manager) TTL() time.Duration {
	return m.ttl
}

// Translations returns the dictionary for lang.
//
// Read path, first hit wins: the in-memory entry (no freshness check),
// then a non-expired persistent entry passing the integrity check
// (promoted into memory), then a backend fetch (persisted and memoized).
// Unsupported languages and any failure resolve to an empty dictionary.
// Concurrent calls for the same language share one resolution.
func (m *Manager) Translations(ctx context.Context, lang string) Dictionary {
	lang = NormalizeLanguage(lang)
	if !IsSupported(lang) {
		m.logger.Debug().Str("language", lang).Msg("unsupported language requested")
		return Dictionary{}
	}

	if dict, ok := m.fromMemory(lang); ok {
		return dict
	}

	v, _, _ := m.group.Do(lang, func() (interface{}, error) {
		return m.load(ctx, lang), nil
	})
	return v.(Dictionary)
}

// Translation looks up key in the dictionary for lang, triggering the full
// resolution path if needed. Missing or empty values resolve to the key
// itself so broken translations stay visible in the UI.
func (m *Manager) Translation(ctx context.Context, lang, key string) string {
	return m.TranslationOr(ctx, lang, key, key)
}

// TranslationOr is Translation with an explicit fallback for missing keys.
func (m *Manager) TranslationOr(ctx context.Context, lang, key, fallback string) string {
	if v, ok := m.Lookup(ctx, lang, key); ok {
		return v
	}
	return fallback
}

// Lookup reports whether key resolves to a non-empty translation, for
// callers that need a distinguishable miss.
func (m *Manager) Lookup(ctx context.Context, lang, key string) (string, bool) {
	v, ok := m.Translations(ctx, lang)[key]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// Refresh discards both cache tiers for lang and re-fetches from the
// backend. On failure it caches and returns an empty dictionary, same as
// Translations.
func (m *Manager) Refresh(ctx context.Context, lang string) Dictionary {
	lang = NormalizeLanguage(lang)
	if !IsSupported(lang) {
		m.logger.Debug().Str("language", lang).Msg("unsupported language requested")
		return Dictionary{}
	}

	v, _, _ := m.group.Do("refresh:"+lang, func() (interface{}, error) {
		m.mu.Lock()
		old := m.memory[lang]
		delete(m.memory, lang)
		m.mu.Unlock()

		m.removeEntry(lang)
		m.setStatus(lang, StateLoading, nil)

		dict := m.fetchAndCache(ctx, lang)
		m.logRefresh(lang, old, dict)
		return dict, nil
	})
	return v.(Dictionary)
}

// ClearCache empties the in-memory map and removes the persistent entries
// for every supported language. Idempotent; store errors are logged and
// swallowed.
func (m *Manager) ClearCache() {
	m.mu.Lock()
	m.memory = make(map[string]Dictionary)
	m.status = make(map[string]Status)
	m.mu.Unlock()

	if m.store == nil {
		return
	}

	keys := make([]string, 0, len(SupportedLanguages))
	for _, lang := range SupportedLanguages {
		keys = append(keys, m.StorageKey(lang))
	}
	if err := m.store.DeleteAll(keys); err != nil {
		m.logger.Error().Err(err).Msg("clearing translation cache failed")
	}
}

// IsCached reports whether a non-expired persistent entry exists for lang.
// Diagnostics only: no promotion into memory and no integrity validation.
func (m *Manager) IsCached(lang string) bool {
	lang = NormalizeLanguage(lang)
	if !IsSupported(lang) || m.store == nil {
		return false
	}

	raw, ok := m.store.Get(m.StorageKey(lang))
	if !ok {
		return false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		return false
	}
	return !entry.Expired(time.Now(), m.ttl)
}

// Status returns the lifecycle state and last absorbed error for lang.
func (m *Manager) Status(lang string) Status {
	lang = NormalizeLanguage(lang)
	m.mu.RLock()
	defer m.mu.RUnlock()

	if s, ok := m.status[lang]; ok {
		return s
	}
	return Status{State: StateUnloaded}
}

func (m *Manager) fromMemory(lang string) (Dictionary, bool) {
	m.mu.RLock()
	dict, ok := m.memory[lang]
	m.mu.RUnlock()
	return dict, ok
}

func (m *Manager) setMemory(lang string, dict Dictionary) {
	m.mu.Lock()
	m.memory[lang] = dict
	m.mu.Unlock()
}

func (m *Manager) setStatus(lang string, state State, err error) {
	m.mu.Lock()
	m.status[lang] = Status{State: state, Err: err, UpdatedAt: time.Now()}
	m.mu.Unlock()
}

// load resolves lang through the store and network tiers. Runs inside the
// single-flight group, so at most one resolution per language is active.
func (m *Manager) load(ctx context.Context, lang string) Dictionary {
	// A concurrent flight may have filled memory while we waited.
	if dict, ok := m.fromMemory(lang); ok {
		return dict
	}

	m.setStatus(lang, StateLoading, nil)

	if dict, ok := m.fromStore(lang); ok {
		m.setMemory(lang, dict)
		m.setStatus(lang, StateLoaded, nil)
		return dict
	}

	return m.fetchAndCache(ctx, lang)
}

// fromStore reads and validates the persistent entry for lang. Expired,
// undecodable, and corrupt entries are deleted and reported as misses.
func (m *Manager) fromStore(lang string) (Dictionary, bool) {
	if m.store == nil {
		return nil, false
	}

	raw, ok := m.store.Get(m.StorageKey(lang))
	if !ok {
		return nil, false
	}

	var entry Entry
	if err := json.Unmarshal([]byte(raw), &entry); err != nil {
		cerr := &CorruptEntryError{Language: lang, Reason: "undecodable entry", Cause: err}
		m.logger.Warn().Str("language", lang).Err(cerr).Msg("discarding cache entry")
		m.removeEntry(lang)
		return nil, false
	}

	if entry.Expired(time.Now(), m.ttl) {
		m.logger.Debug().
			Str("language", lang).
			Dur("age", entry.Age(time.Now())).
			Msg("cache entry expired")
		m.removeEntry(lang)
		return nil, false
	}

	// Integrity check: a partial or interrupted write can leave a decodable
	// entry with missing values. The sample key must resolve non-empty.
	if m.sampleKey != "" && entry.Translations[m.sampleKey] == "" {
		cerr := &CorruptEntryError{Language: lang, Reason: "sample key missing or empty"}
		m.logger.Warn().Str("language", lang).Err(cerr).Msg("discarding cache entry")
		m.removeEntry(lang)
		return nil, false
	}

	return entry.Translations, true
}

// fetchAndCache fetches lang from the backend, persisting and memoizing the
// result. Every failure degrades to a memoized empty dictionary.
func (m *Manager) fetchAndCache(ctx context.Context, lang string) Dictionary {
	dict, err := m.fetch(ctx, lang)
	if err != nil {
		m.logger.Warn().Str("language", lang).Err(err).Msg("translation fetch failed")
		// Memoize the empty result so the UI does not re-fetch on every
		// lookup; the persistent tier is left untouched so a later call or
		// process restart can retry.
		empty := Dictionary{}
		m.setMemory(lang, empty)
		m.setStatus(lang, StateEmpty, err)
		return empty
	}

	m.persist(lang, dict)
	m.setMemory(lang, dict)
	m.setStatus(lang, StateLoaded, nil)
	return dict
}

func (m *Manager) fetch(ctx context.Context, lang string) (Dictionary, error) {
	if m.source == nil {
		return nil, &FetchError{Language: lang, Message: "no source configured"}
	}

	if m.fetchTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, m.fetchTimeout)
		defer cancel()
	}

	dict, err := m.source.FetchTranslations(ctx, lang)
	if err != nil {
		return nil, err
	}
	if len(dict) == 0 {
		return nil, &FetchError{Language: lang, Message: "backend returned an empty dictionary"}
	}
	return dict, nil
}

func (m *Manager) persist(lang string, dict Dictionary) {
	if m.store == nil {
		return
	}

	raw, err := json.Marshal(Entry{Translations: dict, Timestamp: time.Now()})
	if err == nil {
		err = m.store.Set(m.StorageKey(lang), string(raw))
	}
	if err != nil {
		m.logger.Error().Str("language", lang).Err(err).Msg("persisting translations failed")
	}
}

func (m *Manager) removeEntry(lang string) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(m.StorageKey(lang)); err != nil {
		m.logger.Error().Str("language", lang).Err(err).Msg("deleting cache entry failed")
	}
}

func (m *Manager) logRefresh(lang string, old, fresh Dictionary) {
	d := Diff(old, fresh)
	if !d.HasChanges() {
		m.logger.Debug().
			Str("language", lang).
			Str("fingerprint", ShortFingerprint(fresh)).
			Msg("refresh produced no changes")
		return
	}

	stats := d.Stats()
	m.logger.Info().
		Str("language", lang).
		Int("added", stats.Added).
		Int("removed", stats.Removed).
		Int("changed", stats.Changed).
		Str("fingerprint", ShortFingerprint(fresh)).
		Msg("translations refreshed")
}
