package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
)

// RESTSource fetches dictionaries from the backend translation endpoint:
//
//	GET {base_url}/translations/{language}
//	-> { "success": true, "translations": { "key": "value", ... } }
//
// Non-2xx statuses, success:false, and malformed bodies are all fetch
// failures.
type RESTSource struct {
	baseURL string
	client  *http.Client
}

// RESTConfig holds configuration for the REST source.
type RESTConfig struct {
	BaseURL string        // Backend base URL (required)
	Timeout time.Duration // Request timeout (default: 10s)
	Client  *http.Client  // Custom HTTP client (optional)
}

// NewRESTSource creates a new REST source.
func NewRESTSource(cfg RESTConfig) *RESTSource {
	client := cfg.Client
	if client == nil {
		timeout := cfg.Timeout
		if timeout <= 0 {
			timeout = translations.DefaultFetchTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &RESTSource{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		client:  client,
	}
}

// restResponse is the backend's wire format.
type restResponse struct {
	Success      bool              `json:"success"`
	Translations map[string]string `json:"translations"`
}

// FetchTranslations fetches the dictionary for lang.
func (s *RESTSource) FetchTranslations(ctx context.Context, lang string) (Dictionary, error) {
	endpoint := s.baseURL + "/translations/" + url.PathEscape(lang)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "building request",
			Cause:    err,
		}
	}
	req.Header.Set("Accept", "application/json")
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
			Message:   fmt.Sprintf("unexpected status %d", resp.StatusCode),
			Retryable: resp.StatusCode >= 500 || resp.StatusCode == http.StatusTooManyRequests,
		}
	}

	var payload restResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "malformed response body",
			Cause:    err,
		}
	}

	if !payload.Success {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "backend reported failure",
		}
	}

	dict := Dictionary(payload.Translations)
	if dict == nil {
		dict = Dictionary{}
	}
	return dict, nil
}

// Verify RESTSource implements Source
var _ Source = (*RESTSource)(nil)
