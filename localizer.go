package translations

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
)

// Localizer is the consumer-facing view over a Manager, bound to one active
// language at a time. It mirrors what UI code needs: a T lookup with
// optional fallback, loading and error state, refresh, and notification
// when the active language changes.
//
// The selected language can be persisted through an optional Store, so a
// restarted process comes back in the user's last language.
type Localizer struct {
	manager   *Manager
	langStore Store
	langKey   string
	logger    zerolog.Logger

	mu      sync.RWMutex
	lang    string
	dict    Dictionary
	loading bool
	err     error

	subMu   sync.Mutex
	subs    map[int]func(lang string)
	nextSub int
}

// LocalizerOption is a functional option for configuring the Localizer.
type LocalizerOption func(*Localizer)

// WithLanguageStore persists the selected language under the configured
// key, and restores it at construction when a valid selection exists.
func WithLanguageStore(s Store) LocalizerOption {
	return func(l *Localizer) {
		l.langStore = s
	}
}

// WithLanguageKey sets the storage key for the persisted selection.
func WithLanguageKey(key string) LocalizerOption {
	return func(l *Localizer) {
		l.langKey = key
	}
}

// WithLocalizerLogger sets the logger. Defaults to a no-op logger.
func WithLocalizerLogger(logger zerolog.Logger) LocalizerOption {
	return func(l *Localizer) {
		l.logger = logger
	}
}

// NewLocalizer creates a Localizer starting in defaultLang (or the
// persisted selection when a language store holds a valid one). An
// unsupported defaultLang falls back to DefaultLanguage.
func NewLocalizer(m *Manager, defaultLang string, opts ...LocalizerOption) *Localizer {
	l := &Localizer{
		manager: m,
		langKey: "selected_language",
		logger:  zerolog.Nop(),
		subs:    make(map[int]func(string)),
	}

	for _, opt := range opts {
		opt(l)
	}

	lang := NormalizeLanguage(defaultLang)
	if !IsSupported(lang) {
		lang = DefaultLanguage
	}

	if l.langStore != nil {
		if saved, ok := l.langStore.Get(l.langKey); ok {
			saved = NormalizeLanguage(saved)
			if IsSupported(saved) {
				lang = saved
			}
		}
	}

	l.lang = lang
	return l
}

// Language returns the active language code.
func (l *Localizer) Language() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.lang
}

// Loading reports whether a resolution for the active language is running.
func (l *Localizer) Loading() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.loading
}

// Err returns the error absorbed by the last resolution, nil on success.
func (l *Localizer) Err() error {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.err
}

// Load resolves the dictionary for the active language through the manager
// and caches it on the Localizer. Safe to call repeatedly.
func (l *Localizer) Load(ctx context.Context) {
	l.mu.Lock()
	lang := l.lang
	l.loading = true
	l.mu.Unlock()

	dict := l.manager.Translations(ctx, lang)
	st := l.manager.Status(lang)

	l.mu.Lock()
	// A concurrent SetLanguage wins; don't clobber its state.
	if l.lang == lang {
		l.dict = dict
		l.loading = false
		l.err = st.Err
	}
	l.mu.Unlock()
}

// Refresh forces a re-fetch of the active language.
func (l *Localizer) Refresh(ctx context.Context) {
	l.mu.Lock()
	lang := l.lang
	l.loading = true
	l.mu.Unlock()

	dict := l.manager.Refresh(ctx, lang)
	st := l.manager.Status(lang)

	l.mu.Lock()
	if l.lang == lang {
		l.dict = dict
		l.loading = false
		l.err = st.Err
	}
	l.mu.Unlock()
}

// SetLanguage switches the active language, persists the selection, loads
// the new dictionary, and notifies subscribers. Returns an error only for
// unsupported codes; load failures follow the usual fail-soft policy.
func (l *Localizer) SetLanguage(ctx context.Context, lang string) error {
	lang = NormalizeLanguage(lang)
	if !IsSupported(lang) {
		return &UnsupportedLanguageError{Language: lang}
	}

	l.mu.Lock()
	if l.lang == lang {
		l.mu.Unlock()
		return nil
	}
	l.lang = lang
	l.dict = nil
	l.mu.Unlock()

	if l.langStore != nil {
		if err := l.langStore.Set(l.langKey, lang); err != nil {
			l.logger.Error().Str("language", lang).Err(err).Msg("persisting language selection failed")
		}
	}

	l.Load(ctx)
	l.notify(lang)
	return nil
}

// T looks up key in the active language's dictionary, resolving it first
// if necessary. Missing keys resolve to the explicit fallback when given,
// otherwise to the key itself.
func (l *Localizer) T(key string, fallback ...string) string {
	l.mu.RLock()
	dict := l.dict
	lang := l.lang
	l.mu.RUnlock()

	if dict == nil {
		dict = l.manager.Translations(context.Background(), lang)
		l.mu.Lock()
		if l.lang == lang && l.dict == nil {
			l.dict = dict
		}
		l.mu.Unlock()
	}

	if v := dict[key]; v != "" {
		return v
	}
	if len(fallback) > 0 && fallback[0] != "" {
		return fallback[0]
	}
	return key
}

// Subscribe registers fn to be called (synchronously) with the new language
// code after every successful SetLanguage. The returned function cancels
// the subscription.
func (l *Localizer) Subscribe(fn func(lang string)) func() {
	l.subMu.Lock()
	id := l.nextSub
	l.nextSub++
	l.subs[id] = fn
	l.subMu.Unlock()

	return func() {
		l.subMu.Lock()
		delete(l.subs, id)
		l.subMu.Unlock()
	}
}

func (l *Localizer) notify(lang string) {
	l.subMu.Lock()
	fns := make([]func(string), 0, len(l.subs))
	for _, fn := range l.subs {
		fns = append(fns, fn)
	}
	l.subMu.Unlock()

	for _, fn := range fns {
		fn(lang)
	}
}
