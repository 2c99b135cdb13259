package provider

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
)

// SheetSource reads dictionaries from a spreadsheet published as an HTML
// table (the content team maintains translations in a shared sheet). The
// first row is the header: a key column plus one column per language code.
// Every other row contributes one dictionary entry.
type SheetSource struct {
	url       string
	keyColumn string
	client    *http.Client
}

// SheetConfig holds configuration for the sheet source.
type SheetConfig struct {
	URL       string        // Published sheet URL (required)
	KeyColumn string        // Header of the key column (default: "key")
	Timeout   time.Duration // Request timeout (default: 10s)
	Client    *http.Client  // Custom HTTP client (optional)
}

// NewSheetSource creates a new sheet source.
func NewSheetSource(cfg SheetConfig) *SheetSource {
	keyColumn := cfg.KeyColumn
	if keyColumn == "" {
		keyColumn = "key"
	}

	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = translations.DefaultFetchTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &SheetSource{
		url:       cfg.URL,
		keyColumn: keyColumn,
		client:    client,
	}
}

// FetchTranslations fetches the sheet and extracts the column for lang.
func (s *SheetSource) FetchTranslations(ctx context.Context, lang string) (Dictionary, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "building request",
			Cause:    err,
		}
	}
	req.Header.Set("User-Agent", translations.UserAgent())

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, &translations.FetchError{
			Language:  lang,
			Message:   "request failed",
			Cause:     err,
			Retryable: true,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &translations.FetchError{
			Language:  lang,
			Message:   "unexpected status " + resp.Status,
			Retryable: resp.StatusCode >= 500,
		}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "parsing sheet HTML",
			Cause:    err,
		}
	}

	return s.extract(doc, lang)
}

// extract walks the first table in the document and builds the dictionary
// for lang from its column.
func (s *SheetSource) extract(doc *goquery.Document, lang string) (Dictionary, error) {
	rows := doc.Find("table").First().Find("tr")
	if rows.Length() < 2 {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "sheet has no data rows",
		}
	}

	keyCol, langCol := -1, -1
	rows.First().Find("th, td").Each(func(i int, cell *goquery.Selection) {
		header := strings.ToLower(strings.TrimSpace(cell.Text()))
		switch header {
		case s.keyColumn:
			keyCol = i
		case lang:
			langCol = i
		}
	})

	if keyCol < 0 {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "sheet has no " + s.keyColumn + " column",
		}
	}
	if langCol < 0 {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "sheet has no column for language",
		}
	}

	dict := Dictionary{}
	rows.Slice(1, rows.Length()).Each(func(_ int, row *goquery.Selection) {
		cells := row.Find("td")
		if cells.Length() <= keyCol || cells.Length() <= langCol {
			return
		}
		key := strings.TrimSpace(cells.Eq(keyCol).Text())
		value := strings.TrimSpace(cells.Eq(langCol).Text())
		if key == "" || value == "" {
			return
		}
		dict[key] = value
	})

	return dict, nil
}

// Verify SheetSource implements Source
var _ Source = (*SheetSource)(nil)
