package provider

import (
	"context"
	"sync"

	translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
)

// MockSource is a mock translation source for testing.
type MockSource struct {
	mu           sync.Mutex
	Dictionaries map[string]Dictionary // Per-language dictionaries to serve
	Err          error                 // If set, every fetch fails with it
	CallCount    int                   // Number of times FetchTranslations was called
	LastLanguage string                // Language of the last fetch
}

// NewMockSource creates a mock source with small default dictionaries for
// every supported language.
func NewMockSource() *MockSource {
	return &MockSource{
		Dictionaries: map[string]Dictionary{
			"en": {
				"welcome":       "Welcome",
				"profile.title": "My profile",
			},
			"ru": {
				"welcome":       "Добро пожаловать",
				"profile.title": "Мой профиль",
			},
			"hy": {
				"welcome":       "Բարի գալուստ",
				"profile.title": "Իմ պրոֆիլը",
			},
		},
	}
}

// FetchTranslations returns the configured dictionary for lang.
func (m *MockSource) FetchTranslations(ctx context.Context, lang string) (Dictionary, error) {
	m.mu.Lock()
	m.CallCount++
	m.LastLanguage = lang
	err := m.Err
	dict, ok := m.Dictionaries[lang]
	m.mu.Unlock()

	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "no dictionary for language",
		}
	}
	return dict.Clone(), nil
}

// Calls returns the number of fetches performed.
func (m *MockSource) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CallCount
}

// Reset resets the call count and last language.
func (m *MockSource) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CallCount = 0
	m.LastLanguage = ""
}

// Verify MockSource implements Source
var _ Source = (*MockSource)(nil)
