package translations

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// warmConcurrency caps the number of languages resolved at once.
const warmConcurrency = 4

// WarmUp resolves the given languages concurrently, populating both cache
// tiers ahead of first use. With no arguments it warms every supported
// language. Individual loads are fail-soft, so the returned map always has
// one (possibly empty) dictionary per requested language.
func (m *Manager) WarmUp(ctx context.Context, langs ...string) map[string]Dictionary {
	if len(langs) == 0 {
		langs = SupportedLanguages
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(warmConcurrency)

	var mu sync.Mutex
	results := make(map[string]Dictionary, len(langs))

	for _, lang := range langs {
		lang := lang
		g.Go(func() error {
			dict := m.Translations(ctx, lang)
			mu.Lock()
			results[NormalizeLanguage(lang)] = dict
			mu.Unlock()
			return nil
		})
	}

	// Loads never return errors; Wait only synchronizes completion.
	_ = g.Wait()
	return results
}
