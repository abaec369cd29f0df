package chat

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/govseva/govseva/internal/domain"
	"github.com/govseva/govseva/internal/infrastructure/json"
	"go.uber.org/zap"
)

// Translator is the slice of the translation adapter the chat flow needs.
type Translator interface {
	Translate(ctx context.Context, text, source, target string) string
	DetectLanguage(ctx context.Context, text string) string
}

// Assistant answers a prompt with reply text. It never fails: an
// unavailable backend is reported as fallback text.
type Assistant interface {
	Ask(ctx context.Context, prompt string) string
}

type Handler struct {
	assistant      Assistant
	translator     Translator
	chatRepository domain.ChatRepository
	logger         *zap.SugaredLogger
}

func NewHandler(
	assistant Assistant,
	translator Translator,
	chatRepository domain.ChatRepository,
	logger *zap.SugaredLogger,
) *Handler {
	return &Handler{
		assistant:      assistant,
		translator:     translator,
		chatRepository: chatRepository,
		logger:         logger,
	}
}

// ChatHandler runs the chat flow: resolve languages, translate the message
// to English if needed, ask the assistant, translate the reply to the
// target language, and append the turn to history.
func (h *Handler) ChatHandler(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		json.WriteValidationError(w, "message is required")
		return
	}

	ctx := r.Context()

	// Session identity is opaque: a caller-supplied id is used as-is.
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = newSessionID()
	}

	sourceLanguage := strings.ToLower(strings.TrimSpace(req.SourceLanguage))
	if sourceLanguage == "" {
		sourceLanguage = h.translator.DetectLanguage(ctx, message)
	}

	targetLanguage := strings.ToLower(strings.TrimSpace(req.TargetLanguage))
	if targetLanguage == "" {
		targetLanguage = sourceLanguage
	}
	if targetLanguage == "" {
		targetLanguage = "en"
	}

	// The assistant works in English.
	textForModel := message
	if sourceLanguage != "en" {
		textForModel = h.translator.Translate(ctx, message, sourceLanguage, "en")
	}

	reply := h.assistant.Ask(ctx, textForModel)

	finalReply := reply
	if targetLanguage != "en" {
		finalReply = h.translator.Translate(ctx, reply, "en", targetLanguage)
	}

	// History is best-effort: the reply is already computed, so a failed
	// write must not fail the request.
	turn := &domain.ChatTurn{
		SessionID:   sessionID,
		UserMessage: message,
		BotMessage:  finalReply,
		SourceLang:  sourceLanguage,
		TargetLang:  targetLanguage,
	}
	if err := h.chatRepository.Append(ctx, turn); err != nil {
		h.logger.Warnw("failed to save chat history", "session_id", sessionID, "error", err)
	}

	json.Write(w, http.StatusOK, chatResponse{
		OK:             true,
		SessionID:      sessionID,
		SourceLanguage: sourceLanguage,
		TargetLanguage: targetLanguage,
		BotReply:       finalReply,
	})
}

// HistoryHandler returns all turns of a session in insertion order.
func (h *Handler) HistoryHandler(w http.ResponseWriter, r *http.Request) {
	sessionID := strings.TrimSpace(r.URL.Query().Get("session_id"))
	if sessionID == "" {
		json.WriteValidationError(w, "session_id is required")
		return
	}

	turns, err := h.chatRepository.History(r.Context(), sessionID)
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, historyResponse{
		OK:        true,
		SessionID: sessionID,
		History:   turns,
	})
}

// newSessionID returns a fresh random 128-bit hex identifier.
func newSessionID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}
