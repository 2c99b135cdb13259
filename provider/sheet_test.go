package provider

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

const sheetHTML = `<html><body>
<table>
  <tr><th>Key</th><th>en</th><th>ru</th><th>hy</th></tr>
  <tr><td>welcome</td><td>Welcome</td><td>Добро пожаловать</td><td>Բարի գալուստ</td></tr>
  <tr><td>profile.title</td><td>My profile</td><td>Мой профиль</td><td></td></tr>
  <tr><td></td><td>orphan value</td><td></td><td></td></tr>
</table>
</body></html>`

func sheetServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, body)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSheetSource_Fetch(t *testing.T) {
	server := sheetServer(t, sheetHTML)
	source := NewSheetSource(SheetConfig{URL: server.URL})

	dict, err := source.FetchTranslations(context.Background(), "ru")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dict["welcome"] != "Добро пожаловать" {
		t.Errorf("dict[welcome] = %q", dict["welcome"])
	}
	if dict["profile.title"] != "Мой профиль" {
		t.Errorf("dict[profile.title] = %q", dict["profile.title"])
	}
	if len(dict) != 2 {
		t.Errorf("Expected 2 entries, got %d: %v", len(dict), dict)
	}
}

func TestSheetSource_SkipsEmptyCells(t *testing.T) {
	server := sheetServer(t, sheetHTML)
	source := NewSheetSource(SheetConfig{URL: server.URL})

	// hy has no value for profile.title and the orphan row has no key
	dict, err := source.FetchTranslations(context.Background(), "hy")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if len(dict) != 1 {
		t.Errorf("Expected 1 entry, got %d: %v", len(dict), dict)
	}
	if dict["welcome"] != "Բարի գալուստ" {
		t.Errorf("dict[welcome] = %q", dict["welcome"])
	}
}

func TestSheetSource_MissingLanguageColumn(t *testing.T) {
	server := sheetServer(t, sheetHTML)
	source := NewSheetSource(SheetConfig{URL: server.URL})

	if _, err := source.FetchTranslations(context.Background(), "de"); err == nil {
		t.Error("Expected error for missing language column")
	}
}

func TestSheetSource_MissingKeyColumn(t *testing.T) {
	body := `<table><tr><th>id</th><th>en</th></tr><tr><td>a</td><td>b</td></tr></table>`
	server := sheetServer(t, body)
	source := NewSheetSource(SheetConfig{URL: server.URL})

	if _, err := source.FetchTranslations(context.Background(), "en"); err == nil {
		t.Error("Expected error for missing key column")
	}
}

func TestSheetSource_CustomKeyColumn(t *testing.T) {
	body := `<table><tr><th>id</th><th>en</th></tr><tr><td>welcome</td><td>Welcome</td></tr></table>`
	server := sheetServer(t, body)
	source := NewSheetSource(SheetConfig{URL: server.URL, KeyColumn: "id"})

	dict, err := source.FetchTranslations(context.Background(), "en")
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dict["welcome"] != "Welcome" {
		t.Errorf("dict[welcome] = %q", dict["welcome"])
	}
}

func TestSheetSource_NoDataRows(t *testing.T) {
	server := sheetServer(t, `<table><tr><th>key</th><th>en</th></tr></table>`)
	source := NewSheetSource(SheetConfig{URL: server.URL})

	if _, err := source.FetchTranslations(context.Background(), "en"); err == nil {
		t.Error("Expected error for a header-only sheet")
	}
}

func TestSheetSource_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	source := NewSheetSource(SheetConfig{URL: server.URL})
	if _, err := source.FetchTranslations(context.Background(), "en"); err == nil {
		t.Error("Expected error for server failure")
	}
}
