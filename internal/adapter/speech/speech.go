// Package speech wraps hosted speech-to-text and text-to-speech engines.
// Unlike the chat and translation adapters it reports failures as errors,
// because the handlers map its taxonomy onto distinct status codes.
package speech

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"
)

var (
	// ErrNotConfigured means the engine credential or endpoint is absent.
	ErrNotConfigured = errors.New("speech engine is not configured")
	// ErrUnrecognizedAudio means the engine could not extract speech.
	ErrUnrecognizedAudio = errors.New("could not understand audio")
	// ErrEngineUnavailable means the recognition backend itself failed.
	ErrEngineUnavailable = errors.New("speech engine unavailable")
	// ErrSynthesisFailed means the synthesis backend failed.
	ErrSynthesisFailed = errors.New("speech synthesis failed")
)

// recognizeLocales maps two-letter application codes to recognition engine
// locales. Codes outside the table fall back to en-IN.
var recognizeLocales = map[string]string{
	"en": "en-IN",
	"hi": "hi-IN",
	"ta": "ta-IN",
	"te": "te-IN",
	"kn": "kn-IN",
	"bn": "bn-IN",
	"mr": "mr-IN",
	"gu": "gu-IN",
	"ml": "ml-IN",
	"pa": "pa-IN",
}

// synthesisLangs lists the two-letter codes the synthesis engine accepts.
// Codes outside the table fall back to en.
var synthesisLangs = map[string]string{
	"en": "en",
	"hi": "hi",
	"ta": "ta",
	"te": "te",
	"kn": "kn",
	"bn": "bn",
	"mr": "mr",
	"gu": "gu",
	"ml": "ml",
	"pa": "pa",
}

const defaultTimeout = 30 * time.Second

type Config struct {
	APIKey        string
	RecognizeURL  string
	SynthesizeURL string
	Timeout       time.Duration
}

type Engine struct {
	cfg        Config
	httpClient *http.Client
	logger     *zap.SugaredLogger
}

func New(cfg Config, logger *zap.SugaredLogger) *Engine {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	return &Engine{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		logger:     logger,
	}
}

// RecognizeLocale resolves a two-letter code to the recognition locale.
func RecognizeLocale(lang string) string {
	if locale, ok := recognizeLocales[lang]; ok {
		return locale
	}
	return "en-IN"
}

// SynthesisLang resolves a two-letter code to the synthesis language.
func SynthesisLang(lang string) string {
	if code, ok := synthesisLangs[lang]; ok {
		return code
	}
	return "en"
}

// Transcribe sends raw audio to the recognition engine and returns the
// extracted text.
func (e *Engine) Transcribe(ctx context.Context, audio []byte, lang string) (string, error) {
	if e.cfg.RecognizeURL == "" || e.cfg.APIKey == "" {
		return "", ErrNotConfigured
	}

	endpoint := fmt.Sprintf(
		"%s?client=chromium&lang=%s&key=%s",
		e.cfg.RecognizeURL,
		url.QueryEscape(RecognizeLocale(lang)),
		url.QueryEscape(e.cfg.APIKey),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(audio))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	req.Header.Set("Content-Type", "audio/l16; rate=16000")

	res, err := e.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		buf, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return "", fmt.Errorf("%w: status %d: %s", ErrEngineUnavailable, res.StatusCode, string(buf))
	}

	raw, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrEngineUnavailable, err)
	}

	text := parseTranscript(raw)
	if text == "" {
		return "", ErrUnrecognizedAudio
	}

	return text, nil
}

// Synthesize converts text into a single-shot audio clip.
func (e *Engine) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	if e.cfg.SynthesizeURL == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("ie", "UTF-8")
	q.Set("client", "tw-ob")
	q.Set("q", text)
	q.Set("tl", SynthesisLang(lang))

	endpoint := e.cfg.SynthesizeURL + "?" + q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}

	res, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	defer func() { _ = res.Body.Close() }()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d", ErrSynthesisFailed, res.StatusCode)
	}

	audio, err := io.ReadAll(io.LimitReader(res.Body, 16<<20))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSynthesisFailed, err)
	}
	if len(audio) == 0 {
		return nil, fmt.Errorf("%w: empty audio response", ErrSynthesisFailed)
	}

	return audio, nil
}
