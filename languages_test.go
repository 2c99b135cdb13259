package translations

import "testing"

func TestNormalizeLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"en", "en"},
		{"EN", "en"},
		{"hy-AM", "hy"},
		{"hy_AM", "hy"},
		{"ru_RU", "ru"},
		{"  en  ", "en"},
		{"en-US-posix", "en"},
		{"", ""},
		{"_en", "_en"}, // leading separator: no base code to strip to
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizeLanguage(tt.input); got != tt.want {
				t.Errorf("NormalizeLanguage(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestIsSupported(t *testing.T) {
	for _, lang := range SupportedLanguages {
		if !IsSupported(lang) {
			t.Errorf("Expected %q to be supported", lang)
		}
	}
	for _, lang := range []string{"fr", "de", "", "english"} {
		if IsSupported(lang) {
			t.Errorf("Expected %q to be unsupported", lang)
		}
	}
}

func TestGetLanguageName(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"en", "English"},
		{"hy", "Armenian"},
		{"hy-AM", "Armenian"},
		{"xx", "xx"},
	}

	for _, tt := range tests {
		if got := GetLanguageName(tt.lang); got != tt.want {
			t.Errorf("GetLanguageName(%q) = %q, want %q", tt.lang, got, tt.want)
		}
	}
}

func TestGetDirection(t *testing.T) {
	if got := GetDirection("hy"); got != "ltr" {
		t.Errorf("Expected ltr for hy, got %q", got)
	}
	if got := GetDirection("ar-SA"); got != "rtl" {
		t.Errorf("Expected rtl for ar-SA, got %q", got)
	}
	if IsRTL("en") {
		t.Error("Expected en to be LTR")
	}
	if !IsRTL("he") {
		t.Error("Expected he to be RTL")
	}
}

func TestNativeLanguageNames_CoverSupportedSet(t *testing.T) {
	for _, lang := range SupportedLanguages {
		if NativeLanguageNames[lang] == "" {
			t.Errorf("Missing native name for %q", lang)
		}
		if LanguageNames[lang] == "" {
			t.Errorf("Missing display name for %q", lang)
		}
	}
}
