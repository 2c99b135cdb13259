// Package cache provides persistent key-value stores for translation
// entries: in-process, file-backed, and Redis-backed.
package cache

// Store is the persistent key-value contract the translation manager
// writes its entries through. Values are opaque strings (JSON envelopes);
// every write is a whole-value replacement.
type Store interface {
	// Get retrieves a value. Returns empty string and false if not found.
	Get(key string) (string, bool)

	// Set stores a value, replacing any previous one.
	Set(key, value string) error

	// Delete removes a key. Removing a missing key is not an error.
	Delete(key string) error

	// DeleteAll removes several keys, attempting every key even when some
	// fail, and returns the first error encountered.
	DeleteAll(keys []string) error
}

// KeyedStore is a Store that can enumerate its keys, enabling export.
type KeyedStore interface {
	Store

	// Keys returns all keys currently in the store.
	Keys() ([]string, error)
}
