package translation

import (
	"context"
	"net/http"
	"strings"

	"github.com/govseva/govseva/internal/infrastructure/json"
)

// Translator converts text between languages, falling back internally when
// the hosted model is unavailable.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) string
}

type Handler struct {
	translator Translator
}

func NewHandler(translator Translator) *Handler {
	return &Handler{translator: translator}
}

// TranslateHandler translates a piece of text between two languages.
func (h *Handler) TranslateHandler(w http.ResponseWriter, r *http.Request) {
	var req translateRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		json.WriteValidationError(w, "text is required")
		return
	}

	sourceLanguage := strings.ToLower(strings.TrimSpace(req.SourceLanguage))
	if sourceLanguage == "" {
		sourceLanguage = "en"
	}
	targetLanguage := strings.ToLower(strings.TrimSpace(req.TargetLanguage))
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	translated := h.translator.Translate(r.Context(), text, sourceLanguage, targetLanguage)

	json.Write(w, http.StatusOK, translateResponse{
		OK:             true,
		TranslatedText: translated,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
	})
}
