package translations

import "fmt"

// UnsupportedLanguageError indicates a language code outside the supported set.
type UnsupportedLanguageError struct {
	Language string
}

func (e *UnsupportedLanguageError) Error() string {
	return fmt.Sprintf("unsupported language: %q", e.Language)
}

// FetchError indicates a backend fetch failure (network error, non-2xx
// status, malformed or empty response).
type FetchError struct {
	Language  string
	Message   string
	Cause     error
	Retryable bool // Whether the operation can be retried
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error (%s): %s: %v", e.Language, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error (%s): %s", e.Language, e.Message)
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// StoreError indicates a persistent store operation failure.
type StoreError struct {
	Message string
	Cause   error
}

func (e *StoreError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("store error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("store error: %s", e.Message)
}

func (e *StoreError) Unwrap() error {
	return e.Cause
}

// CorruptEntryError indicates a persistent entry that failed decoding or the
// sample-key integrity check. The entry is deleted and treated as a miss.
type CorruptEntryError struct {
	Language string
	Reason   string
	Cause    error
}

func (e *CorruptEntryError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("corrupt cache entry (%s): %s: %v", e.Language, e.Reason, e.Cause)
	}
	return fmt.Sprintf("corrupt cache entry (%s): %s", e.Language, e.Reason)
}

func (e *CorruptEntryError) Unwrap() error {
	return e.Cause
}
