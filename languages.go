package translations

import "strings"

// SupportedLanguages is the closed set of language codes the app ships with.
// Every cache and network operation validates against this list first.
var SupportedLanguages = []string{"en", "ru", "hy"}

// LanguageNames maps supported codes to human-readable names.
var LanguageNames = map[string]string{
	"en": "English",
	"ru": "Russian",
	"hy": "Armenian",
}

// NativeLanguageNames maps supported codes to their endonyms, used by
// language pickers.
var NativeLanguageNames = map[string]string{
	"en": "English",
	"ru": "Русский",
	"hy": "Հայերեն",
}

// rtlLanguages contains base codes that use right-to-left text direction.
// None of the supported set is RTL today; the helper exists so adding one
// is a data change.
var rtlLanguages = map[string]bool{
	"ar": true,
	"he": true,
	"fa": true,
	"ur": true,
}

// NormalizeLanguage converts a locale code to the bare lowercase base code
// used throughout the cache (e.g. "hy-AM" or "ru_RU" -> "hy", "ru").
func NormalizeLanguage(lang string) string {
	lang = strings.TrimSpace(strings.ToLower(lang))
	lang = strings.ReplaceAll(lang, "-", "_")
	if idx := strings.Index(lang, "_"); idx > 0 {
		lang = lang[:idx]
	}
	return lang
}

// IsSupported reports whether the (normalized) code is in the supported set.
func IsSupported(lang string) bool {
	for _, l := range SupportedLanguages {
		if l == lang {
			return true
		}
	}
	return false
}

// GetLanguageName returns the human-readable name for a language code.
// Falls back to the code itself if not found.
func GetLanguageName(lang string) string {
	if name, ok := LanguageNames[NormalizeLanguage(lang)]; ok {
		return name
	}
	return lang
}

// GetDirection returns "rtl" for right-to-left languages, "ltr" otherwise.
func GetDirection(lang string) string {
	if rtlLanguages[NormalizeLanguage(lang)] {
		return "rtl"
	}
	return "ltr"
}

// IsRTL returns true if the language uses right-to-left text direction.
func IsRTL(lang string) bool {
	return GetDirection(lang) == "rtl"
}
