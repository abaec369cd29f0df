// Package chat wraps the hosted generative model behind a single Ask
// operation. Faults never escape: an unconfigured or failing backend is
// reported to the caller as fixed fallback text.
package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	defaultTimeout = 30 * time.Second

	// NotConfiguredMessage is returned when no credential was supplied.
	NotConfiguredMessage = "The assistant is not configured. Please set GEMINI_API_KEY."
	// UnavailableMessage is returned when the backend call fails.
	UnavailableMessage = "I'm having trouble connecting right now. Please try again in a moment."
)

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

type Assistant struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.SugaredLogger
	configured bool
}

// New builds the assistant. Whether the adapter is configured is decided
// once here, from the presence of the API key.
func New(cfg Config, logger *zap.SugaredLogger) *Assistant {
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-1.5-flash"
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}

	return &Assistant{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
		configured: cfg.APIKey != "",
	}
}

func (a *Assistant) Configured() bool {
	return a.configured
}

// generateRequest is the minimal generateContent request shape.
type generateRequest struct {
	Contents []content `json:"contents"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

// generateResponse is the minimal generateContent response shape.
type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Ask sends a prompt to the hosted model and returns the reply text. It
// never returns an error: failures degrade to fixed messages.
func (a *Assistant) Ask(ctx context.Context, prompt string) string {
	if !a.configured {
		return NotConfiguredMessage
	}

	reply, err := a.generate(ctx, prompt)
	if err != nil {
		a.logger.Warnw("assistant call failed", "error", err)
		return UnavailableMessage
	}
	if reply == "" {
		return UnavailableMessage
	}

	return reply
}

func (a *Assistant) generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	})
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	endpoint := fmt.Sprintf(
		"%s/v1beta/models/%s:generateContent?key=%s",
		strings.TrimRight(a.cfg.BaseURL, "/"),
		a.cfg.Model,
		url.QueryEscape(a.cfg.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := a.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("unexpected status %d: %s", res.StatusCode, string(buf))
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("read response body: %w", err)
	}

	var payload generateResponse
	if err := json.Unmarshal(raw, &payload); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(payload.Candidates) == 0 {
		return "", nil
	}

	// Join the first candidate's text parts.
	parts := make([]string, 0, len(payload.Candidates[0].Content.Parts))
	for _, p := range payload.Candidates[0].Content.Parts {
		if p.Text != "" {
			parts = append(parts, p.Text)
		}
	}

	return strings.TrimSpace(strings.Join(parts, "\n")), nil
}
