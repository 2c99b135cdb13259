package translations

import "time"

// Default configuration values. TTL, the supported language set, and the
// storage key scheme are static configuration, not runtime-mutable.
const (
	// DefaultTTL is the validity window for a persisted cache entry.
	DefaultTTL = 24 * time.Hour

	// DefaultFetchTimeout bounds a single backend fetch. A timeout is
	// treated as an ordinary fetch failure.
	DefaultFetchTimeout = 10 * time.Second

	// DefaultSampleKey is the well-known key used to detect corrupted
	// persistent entries: it must resolve to a non-empty string.
	DefaultSampleKey = "welcome"

	// DefaultKeyPrefix namespaces per-language entries in the persistent
	// store (prefix + language code).
	DefaultKeyPrefix = "translations:"

	// DefaultLanguage is used when no valid language selection exists.
	DefaultLanguage = "en"
)

// Dictionary maps translation keys to localized strings for one language.
// It is produced whole by a Source; individual entries are never mutated,
// only the full dictionary replaced.
type Dictionary map[string]string

// Clone returns a shallow copy of the dictionary.
func (d Dictionary) Clone() Dictionary {
	out := make(Dictionary, len(d))
	for k, v := range d {
		out[k] = v
	}
	return out
}

// Entry is the envelope persisted to the key-value store, one per language.
type Entry struct {
	Translations Dictionary `json:"translations"`
	Timestamp    time.Time  `json:"timestamp"`
}

// Age returns how long ago the entry was created.
func (e Entry) Age(now time.Time) time.Duration {
	return now.Sub(e.Timestamp)
}

// Expired reports whether the entry is older than ttl.
// A non-positive ttl means entries never expire.
func (e Entry) Expired(now time.Time, ttl time.Duration) bool {
	return ttl > 0 && e.Age(now) > ttl
}

// State describes the per-language lifecycle of the cache.
type State int

const (
	// StateUnloaded means no resolution has been attempted yet.
	StateUnloaded State = iota
	// StateLoading means a store read or backend fetch is in progress.
	StateLoading
	// StateLoaded means a dictionary was resolved successfully.
	StateLoaded
	// StateEmpty means resolution finished without data. Errors are
	// absorbed into this state rather than surfaced separately.
	StateEmpty
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateUnloaded:
		return "unloaded"
	case StateLoading:
		return "loading"
	case StateLoaded:
		return "loaded"
	case StateEmpty:
		return "empty"
	default:
		return "unknown"
	}
}

// Status is the side channel through which callers can observe failures
// that the lookup methods absorb.
type Status struct {
	State     State
	Err       error // last absorbed error, nil after a successful load
	UpdatedAt time.Time
}
