package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sashabaranov/go-openai"

	translations "github.com/armenasatryan9603/job-portal-mobile-sub002"
)

// AIFillSource machine-translates the base-language dictionary for
// languages the backend does not serve yet. It wraps another Source: the
// base dictionary is fetched from it, sent to OpenAI as one JSON object,
// and the translated object is returned as the dictionary for lang.
type AIFillSource struct {
	base        Source
	baseLang    string
	client      *openai.Client
	model       string
	temperature float32
}

// AIFillConfig holds configuration for the AI fill source.
type AIFillConfig struct {
	APIKey       string  // OpenAI API key
	Model        string  // Model to use (default: "gpt-4o-mini")
	Temperature  float32 // Temperature for generation (default: 0.3)
	BaseURL      string  // Custom base URL (optional)
	BaseLanguage string  // Language the base dictionary is in (default: "en")
}

// NewAIFillSource creates a new AI fill source over base.
func NewAIFillSource(base Source, cfg AIFillConfig) *AIFillSource {
	config := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		config.BaseURL = cfg.BaseURL
	}

	model := cfg.Model
	if model == "" {
		model = "gpt-4o-mini"
	}

	temperature := cfg.Temperature
	if temperature == 0 {
		temperature = 0.3
	}

	baseLang := cfg.BaseLanguage
	if baseLang == "" {
		baseLang = translations.DefaultLanguage
	}

	return &AIFillSource{
		base:        base,
		baseLang:    baseLang,
		client:      openai.NewClientWithConfig(config),
		model:       model,
		temperature: temperature,
	}
}

// FetchTranslations returns the base dictionary for the base language and
// a machine translation of it for any other language.
func (s *AIFillSource) FetchTranslations(ctx context.Context, lang string) (Dictionary, error) {
	baseDict, err := s.base.FetchTranslations(ctx, s.baseLang)
	if err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "fetching base dictionary",
			Cause:    err,
		}
	}

	if lang == s.baseLang || len(baseDict) == 0 {
		return baseDict, nil
	}

	userMessage, _ := json.Marshal(baseDict)

	resp, err := s.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: s.model,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: s.buildSystemPrompt(lang)},
			{Role: openai.ChatMessageRoleUser, Content: string(userMessage)},
		},
		Temperature: s.temperature,
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	})
	if err != nil {
		return nil, &translations.FetchError{
			Language:  lang,
			Message:   "OpenAI API call failed",
			Cause:     err,
			Retryable: isRetryableError(err),
		}
	}

	if len(resp.Choices) == 0 {
		return nil, &translations.FetchError{
			Language:  lang,
			Message:   "no response from OpenAI",
			Retryable: true,
		}
	}

	return s.parseResponse(resp.Choices[0].Message.Content, baseDict, lang)
}

func (s *AIFillSource) buildSystemPrompt(lang string) string {
	targetName := translations.GetLanguageName(lang)

	return fmt.Sprintf(`# Role
You are an expert native translator for a job-marketplace mobile app. You translate UI strings to %s with the fluency of a highly educated native speaker.

# Task
The user message is a JSON object mapping translation keys to %s UI strings. Translate every value into idiomatic %s.

# Rules
- Keep every key exactly as it appears in the input; translate only the values.
- Do NOT translate variables or placeholders (e.g. {{name}}, {count}, %%s).
- Keep product names, brand names, and technical identifiers untranslated.
- Use concise wording appropriate for mobile UI labels and messages.

# Format
Return a valid JSON object with the same keys and translated string values.
Do NOT wrap the output in Markdown code blocks.`,
		targetName, translations.GetLanguageName(s.baseLang), targetName)
}

// parseResponse decodes the model output and checks it covers the base
// dictionary. Extra keys are dropped; missing keys fail the fetch.
func (s *AIFillSource) parseResponse(content string, baseDict Dictionary, lang string) (Dictionary, error) {
	var raw map[string]string
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  "invalid response format from OpenAI",
			Cause:    err,
		}
	}

	dict := make(Dictionary, len(baseDict))
	missing := 0
	for key := range baseDict {
		value := strings.TrimSpace(raw[key])
		if value == "" {
			missing++
			continue
		}
		dict[key] = value
	}

	if missing > 0 {
		return nil, &translations.FetchError{
			Language: lang,
			Message:  fmt.Sprintf("response missing %d of %d keys", missing, len(baseDict)),
		}
	}

	return dict, nil
}

func isRetryableError(err error) bool {
	errStr := strings.ToLower(err.Error())
	retryablePatterns := []string{
		"rate limit",
		"timeout",
		"connection refused",
		"temporary",
		"503",
		"502",
		"429",
	}

	for _, pattern := range retryablePatterns {
		if strings.Contains(errStr, pattern) {
			return true
		}
	}
	return false
}

// Verify AIFillSource implements Source
var _ Source = (*AIFillSource)(nil)
