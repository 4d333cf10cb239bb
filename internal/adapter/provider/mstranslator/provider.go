// Package mstranslator is a client for the Microsoft Translator v3 REST API.
// Transport failures, authorization failures and server errors are reported
// as domain.ErrProviderUnavailable so callers can degrade to manual input.
package mstranslator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocab-builder/internal/config"
	"github.com/heartmarshall/vocab-builder/internal/domain"
)

const (
	defaultEndpoint = "https://api.cognitive.microsofttranslator.com"
	defaultRegion   = "eastus"
	defaultTimeout  = 5 * time.Second
	apiVersion      = "3.0"
)

// Provider talks to the Translator API.
type Provider struct {
	endpoint   string
	apiKey     string
	region     string
	httpClient *http.Client
	retryDelay time.Duration
	log        *slog.Logger
}

// NewProvider creates a Provider from translator settings.
func NewProvider(cfg config.TranslatorConfig, logger *slog.Logger) *Provider {
	endpoint := cfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	region := cfg.Region
	if region == "" {
		region = defaultRegion
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Provider{
		endpoint:   strings.TrimRight(endpoint, "/"),
		apiKey:     cfg.APIKey,
		region:     region,
		httpClient: &http.Client{Timeout: timeout},
		retryDelay: 500 * time.Millisecond,
		log:        logger.With("adapter", "mstranslator"),
	}
}

// NewProviderWithURL creates a Provider with a custom base URL (for testing).
func NewProviderWithURL(baseURL, apiKey string, logger *slog.Logger) *Provider {
	return NewProvider(config.TranslatorConfig{
		Endpoint: baseURL,
		APIKey:   apiKey,
		Timeout:  defaultTimeout,
	}, logger)
}

// GetLanguages returns the languages supported for translation keyed by code.
func (p *Provider) GetLanguages(ctx context.Context) (map[string]domain.Language, error) {
	var resp apiLanguages
	if err := p.call(ctx, http.MethodGet, "/languages", url.Values{"scope": {"translation"}}, nil, &resp); err != nil {
		return nil, err
	}

	langs := make(map[string]domain.Language, len(resp.Translation))
	for code, l := range resp.Translation {
		langs[code] = domain.Language{Code: code, Name: l.Name, NativeName: l.NativeName}
	}

	p.log.DebugContext(ctx, "languages fetched", slog.Int("count", len(langs)))
	return langs, nil
}

// Translate translates text from one language code to another.
// An empty translation is reported as domain.ErrNotFound.
func (p *Provider) Translate(ctx context.Context, from, to, text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.NewValidationError("text", "required")
	}

	q := url.Values{"to": {to}}
	if from != "" {
		q.Set("from", from)
	}

	var resp []apiTranslateResult
	if err := p.call(ctx, http.MethodPost, "/translate", q, []textItem{{Text: text}}, &resp); err != nil {
		return "", err
	}

	if len(resp) == 0 || len(resp[0].Translations) == 0 {
		return "", fmt.Errorf("mstranslator: translate %q: %w", text, domain.ErrNotFound)
	}
	out := strings.TrimSpace(resp[0].Translations[0].Text)
	if out == "" {
		return "", fmt.Errorf("mstranslator: translate %q: %w", text, domain.ErrNotFound)
	}

	p.log.DebugContext(ctx, "translated",
		slog.String("from", from),
		slog.String("to", to),
		slog.String("text", text),
		slog.String("result", out),
	)
	return out, nil
}

// DetectLanguage detects the language of text.
func (p *Provider) DetectLanguage(ctx context.Context, text string) (domain.Detection, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return domain.Detection{}, domain.NewValidationError("text", "required")
	}

	var resp []apiDetectResult
	if err := p.call(ctx, http.MethodPost, "/detect", nil, []textItem{{Text: text}}, &resp); err != nil {
		return domain.Detection{}, err
	}
	if len(resp) == 0 {
		return domain.Detection{}, fmt.Errorf("mstranslator: detect %q: %w", text, domain.ErrNotFound)
	}

	return domain.Detection{
		Language:               resp[0].Language,
		Score:                  resp[0].Score,
		IsTranslationSupported: resp[0].IsTranslationSupported,
	}, nil
}

// call performs one API request and decodes a 200 response into out.
func (p *Provider) call(ctx context.Context, method, path string, query url.Values, body, out any) error {
	if p.apiKey == "" {
		return fmt.Errorf("mstranslator: no api key: %w", domain.ErrProviderUnavailable)
	}

	if query == nil {
		query = url.Values{}
	}
	query.Set("api-version", apiVersion)
	reqURL := p.endpoint + path + "?" + query.Encode()

	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return fmt.Errorf("mstranslator: encode body: %w", err)
		}
	}

	newReq := func() (*http.Request, error) {
		req, err := http.NewRequestWithContext(ctx, method, reqURL, bytes.NewReader(payload))
		if err != nil {
			return nil, err
		}
		req.Header.Set("Ocp-Apim-Subscription-Key", p.apiKey)
		req.Header.Set("Ocp-Apim-Subscription-Region", p.region)
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set("X-ClientTraceId", uuid.NewString())
		return req, nil
	}

	p.log.DebugContext(ctx, "mstranslator request", slog.String("method", method), slog.String("path", path))

	resp, err := p.doWithRetry(ctx, newReq, path)
	if err != nil {
		p.log.WarnContext(ctx, "mstranslator request failed", slog.String("path", path), slog.String("error", err.Error()))
		if ctx.Err() != nil {
			return fmt.Errorf("mstranslator %s: %w", path, ctx.Err())
		}
		return fmt.Errorf("mstranslator %s: %w: %w", path, domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("mstranslator %s: read body: %w", path, err)
	}

	if resp.StatusCode != http.StatusOK {
		return statusError(path, resp.StatusCode, data)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("mstranslator %s: decode json: %w", path, err)
	}
	return nil
}

// doWithRetry executes the request with a single retry on 5xx or network errors.
func (p *Provider) doWithRetry(ctx context.Context, newReq func() (*http.Request, error), path string) (*http.Response, error) {
	req, err := newReq()
	if err != nil {
		return nil, err
	}
	resp, err := p.httpClient.Do(req)

	shouldRetry := err != nil || (resp != nil && resp.StatusCode >= 500)
	if !shouldRetry {
		return resp, err
	}

	// Don't retry if context is already cancelled.
	if ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil && resp != nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
	}
	p.log.WarnContext(ctx, "mstranslator retry", slog.String("path", path), slog.String("reason", reason))

	if resp != nil && resp.Body != nil {
		resp.Body.Close()
	}

	time.Sleep(p.retryDelay)

	if req, err = newReq(); err != nil {
		return nil, err
	}
	return p.httpClient.Do(req)
}

func statusError(path string, status int, body []byte) error {
	msg := http.StatusText(status)
	var apiErr apiError
	if json.Unmarshal(body, &apiErr) == nil && apiErr.Error.Message != "" {
		msg = apiErr.Error.Message
	}

	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden,
		status == http.StatusTooManyRequests, status >= 500:
		return fmt.Errorf("mstranslator %s: status %d: %s: %w", path, status, msg, domain.ErrProviderUnavailable)
	case status == http.StatusBadRequest:
		return fmt.Errorf("mstranslator %s: %s: %w", path, msg, domain.ErrValidation)
	default:
		return fmt.Errorf("mstranslator %s: unexpected status %d: %s", path, status, msg)
	}
}
