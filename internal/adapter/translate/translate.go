// Package translate wraps a hosted text-generation model behind translate
// and detect-language operations. Remote faults never escape this package:
// every failure degrades to a deterministic local fallback.
package translate

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"
)

const (
	systemTranslate = "You are a helpful translation assistant."
	systemDetect    = "You are a language detection assistant."

	// Low temperature for more literal translations.
	temperature = 0.3
)

// mockTags are the fixed per-language prefixes used when the hosted model
// is unconfigured or unreachable. Any other target code passes the text
// through unchanged.
var mockTags = map[string]string{
	"hi": "[हिंदी अनुवाद]",
	"ta": "[தமிழ் மொழிபெயர்ப்பு]",
	"te": "[తెలుగు అనువాదం]",
	"bn": "[বাংলা অনুবাদ]",
	"mr": "[मराठी अनुवाद]",
	"gu": "[ગુજરાતી અનુવાદ]",
	"kn": "[ಕನ್ನಡ ಅನುವಾದ]",
	"ml": "[മലയാളം വിവർത്തനം]",
	"pa": "[ਪੰਜਾਬੀ ਅਨੁਵਾਦ]",
}

// Completer is the slice of the llm client the translator needs.
type Completer interface {
	Complete(ctx context.Context, system, user string, temperature float64) (string, error)
}

type Translator struct {
	llm    Completer
	logger *zap.SugaredLogger
}

// New builds a Translator. A nil client yields an unconfigured adapter that
// always answers from the local fallback; the decision is made once here,
// not re-checked per call.
func New(llm Completer, logger *zap.SugaredLogger) *Translator {
	return &Translator{
		llm:    llm,
		logger: logger,
	}
}

func (t *Translator) Configured() bool {
	return t.llm != nil
}

// Translate converts text between languages. When target is empty or equal
// to source (case-insensitive) the text is returned unchanged.
func (t *Translator) Translate(ctx context.Context, text, source, target string) string {
	if target == "" || strings.EqualFold(source, target) {
		return text
	}

	if t.llm == nil {
		return t.mockTranslate(text, target)
	}

	prompt := fmt.Sprintf(
		"Translate the following text from %s to %s. Only return the translated text, nothing else:\n\n%s",
		source, target, text,
	)

	translated, err := t.llm.Complete(ctx, systemTranslate, prompt, temperature)
	if err != nil {
		t.logger.Warnw("translation failed, using fallback", "target", target, "error", err)
		return t.mockTranslate(text, target)
	}

	return translated
}

// DetectLanguage returns the ISO 639-1 code of text. It always returns a
// 2-character code, defaulting to "en".
func (t *Translator) DetectLanguage(ctx context.Context, text string) string {
	if t.llm == nil {
		return "en"
	}

	prompt := fmt.Sprintf(
		"Detect the language of the following text and respond with only the ISO 639-1 language code (e.g., 'en', 'hi', 'ta'):\n\n%s",
		text,
	)

	detected, err := t.llm.Complete(ctx, systemDetect, prompt, temperature)
	if err != nil {
		t.logger.Warnw("language detection failed, defaulting to en", "error", err)
		return "en"
	}

	return normalizeDetected(detected)
}

// normalizeDetected trims a model reply down to a 2-character code. Longer
// replies are scanned for the first exactly-2-character token.
func normalizeDetected(raw string) string {
	code := strings.ToLower(strings.TrimSpace(raw))
	if len(code) == 2 {
		return code
	}
	if len(code) < 2 {
		return "en"
	}

	for _, word := range strings.Fields(code) {
		if len(word) == 2 {
			return word
		}
	}
	return "en"
}

func (t *Translator) mockTranslate(text, target string) string {
	tag, ok := mockTags[strings.ToLower(target)]
	if !ok {
		return text
	}
	return tag + " " + text
}
