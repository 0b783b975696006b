// Package translate resolves text into a target language via the
// public translate endpoint, always auto-detecting the source.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

const defaultBaseURL = "https://translate.googleapis.com"

// languageCodes maps the language names offered by the assistant to
// their translate codes. Unknown names are passed through untouched so
// raw codes keep working.
var languageCodes = map[string]string{
	"english":    "en",
	"hindi":      "hi",
	"spanish":    "es",
	"french":     "fr",
	"german":     "de",
	"chinese":    "zh-CN",
	"arabic":     "ar",
	"japanese":   "ja",
	"russian":    "ru",
	"portuguese": "pt",
	"italian":    "it",
	"korean":     "ko",
	"turkish":    "tr",
	"dutch":      "nl",
	"polish":     "pl",
}

// Code resolves a language name to its translate code.
func Code(language string) string {
	if code, ok := languageCodes[strings.ToLower(strings.TrimSpace(language))]; ok {
		return code
	}
	return language
}

// Translator is a client for the translate endpoint.
type Translator struct {
	baseURL string
	httpc   *http.Client
}

// New creates a Translator against the public endpoint.
func New() *Translator {
	return &Translator{baseURL: defaultBaseURL, httpc: &http.Client{}}
}

// NewWithBaseURL creates a Translator against a specific endpoint.
func NewWithBaseURL(baseURL string) *Translator {
	return &Translator{baseURL: baseURL, httpc: &http.Client{}}
}

// Translate renders text into the target language (name or code),
// auto-detecting the source.
func (t *Translator) Translate(ctx context.Context, text, target string) (string, error) {
	q := url.Values{}
	q.Set("client", "gtx")
	q.Set("sl", "auto")
	q.Set("tl", Code(target))
	q.Set("dt", "t")
	q.Set("q", text)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		t.baseURL+"/translate_a/single?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to build translate request: %w", err)
	}

	resp, err := t.httpc.Do(req)
	if err != nil {
		return "", fmt.Errorf("translate request failed: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read translate response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("translate endpoint returned %s", resp.Status)
	}

	return decodeSegments(raw)
}

// decodeSegments unpacks the endpoint's nested-array payload: the
// first element is a list of [translated, original, ...] segments.
func decodeSegments(raw []byte) (string, error) {
	var payload []json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil || len(payload) == 0 {
		return "", fmt.Errorf("unexpected translate payload: %s", raw)
	}

	var segments [][]any
	if err := json.Unmarshal(payload[0], &segments); err != nil {
		return "", fmt.Errorf("unexpected translate segment list: %w", err)
	}

	var sb strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		if s, ok := seg[0].(string); ok {
			sb.WriteString(s)
		}
	}
	return sb.String(), nil
}
