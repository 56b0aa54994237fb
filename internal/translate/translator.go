// Package translate adapts the rendered response to the caller's language
// via the LibreTranslate API. Best-effort: on any failure the English text
// is returned unchanged.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// API Docs: https://libretranslate.com/docs/
const (
	baseURL = "https://libretranslate.de/translate"
)

type Translator struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func NewTranslator(logger *slog.Logger) *Translator {
	return &Translator{
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		baseURL: baseURL,
		logger:  logger.With("component", "translator"),
	}
}

type translateAPIResponse struct {
	TranslatedText string `json:"translatedText"`
}

// Translate converts text into the target language. English targets and
// empty input are no-ops; failures fall back to the original text.
func (t *Translator) Translate(ctx context.Context, text, targetLang string) string {
	targetLang = Resolve(targetLang)
	if targetLang == "en" || text == "" {
		return text
	}

	form := url.Values{}
	form.Set("q", text)
	form.Set("source", "auto")
	form.Set("target", targetLang)
	form.Set("format", "text")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		t.logger.Error("failed to build translate request", "error", err)
		return text
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		t.logger.Warn("translation failed, returning original text",
			"target", targetLang,
			"error", err,
		)
		return text
	}
	defer func(body io.ReadCloser) {
		_ = body.Close()
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		t.logger.Warn("translation failed, returning original text",
			"target", targetLang,
			"error", fmt.Sprintf("status %d: %s", resp.StatusCode, string(body)),
		)
		return text
	}

	var apiResp translateAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		t.logger.Warn("failed to decode translation response", "error", err)
		return text
	}

	if apiResp.TranslatedText == "" {
		return text
	}
	return apiResp.TranslatedText
}
