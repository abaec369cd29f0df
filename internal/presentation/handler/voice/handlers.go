package voice

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/govseva/govseva/internal/adapter/speech"
	"github.com/govseva/govseva/internal/infrastructure/json"
	"go.uber.org/zap"
)

const maxAudioBytes = 16 << 20 // 16MB

// Engine is the slice of the speech adapter the voice endpoints need.
type Engine interface {
	Transcribe(ctx context.Context, audio []byte, lang string) (string, error)
	Synthesize(ctx context.Context, text, lang string) ([]byte, error)
}

type Handler struct {
	engine    Engine
	uploadDir string
	ttsDir    string
	logger    *zap.SugaredLogger
}

func NewHandler(engine Engine, uploadDir, ttsDir string, logger *zap.SugaredLogger) *Handler {
	return &Handler{
		engine:    engine,
		uploadDir: uploadDir,
		ttsDir:    ttsDir,
		logger:    logger,
	}
}

// VoiceToTextHandler transcribes an uploaded audio file. The upload is
// kept on disk for record-keeping; transcription works from the bytes.
func (h *Handler) VoiceToTextHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAudioBytes); err != nil {
		json.WriteValidationError(w, "invalid multipart form")
		return
	}

	file, header, err := r.FormFile("audio")
	if err != nil {
		json.WriteValidationError(w, "no audio file uploaded with key 'audio'")
		return
	}
	defer file.Close()

	audio, err := io.ReadAll(io.LimitReader(file, maxAudioBytes))
	if err != nil {
		json.WriteInternalError(w, err)
		return
	}

	lang := strings.ToLower(strings.TrimSpace(r.FormValue("language")))
	if lang == "" {
		lang = "en"
	}

	h.saveUpload(header.Filename, audio)

	text, err := h.engine.Transcribe(r.Context(), audio, lang)
	if err != nil {
		switch {
		case errors.Is(err, speech.ErrUnrecognizedAudio):
			json.WriteValidationError(w, "could not understand audio")
		case errors.Is(err, speech.ErrNotConfigured):
			json.WriteError(w, http.StatusInternalServerError, "speech recognition is not configured")
		default:
			h.logger.Warnw("speech recognition failed", "error", err)
			json.WriteError(w, http.StatusInternalServerError, "speech recognition error")
		}
		return
	}

	json.Write(w, http.StatusOK, voiceToTextResponse{
		OK:       true,
		Text:     text,
		Language: lang,
	})
}

// TextToSpeechHandler synthesizes speech for a piece of text and returns
// a URL where the generated clip can be fetched.
func (h *Handler) TextToSpeechHandler(w http.ResponseWriter, r *http.Request) {
	var req textToSpeechRequest
	if err := json.Read(r, &req); err != nil {
		json.WriteValidationError(w, err.Error())
		return
	}

	text := strings.TrimSpace(req.Text)
	if text == "" {
		json.WriteValidationError(w, "text is required")
		return
	}

	lang := strings.ToLower(strings.TrimSpace(req.Language))
	if lang == "" {
		lang = "en"
	}

	audio, err := h.engine.Synthesize(r.Context(), text, lang)
	if err != nil {
		if errors.Is(err, speech.ErrNotConfigured) {
			json.WriteError(w, http.StatusInternalServerError, "text-to-speech is not configured")
			return
		}
		h.logger.Warnw("speech synthesis failed", "error", err)
		json.WriteError(w, http.StatusInternalServerError, "text-to-speech error")
		return
	}

	filename := "tts_" + strings.ReplaceAll(uuid.NewString(), "-", "") + ".mp3"
	path := filepath.Join(h.ttsDir, filename)

	if err := os.WriteFile(path, audio, 0o644); err != nil {
		json.WriteInternalError(w, err)
		return
	}

	json.Write(w, http.StatusOK, textToSpeechResponse{
		OK:       true,
		AudioURL: "/tts/" + filename,
		Filename: filename,
	})
}

// ServeAudioHandler serves a previously generated clip from the TTS
// directory. The filename is flattened to its base to keep lookups inside
// the directory.
func (h *Handler) ServeAudioHandler(w http.ResponseWriter, r *http.Request) {
	filename := filepath.Base(chi.URLParam(r, "filename"))
	if filename == "." || filename == "/" {
		json.WriteNotFound(w)
		return
	}

	path := filepath.Join(h.ttsDir, filename)
	if _, err := os.Stat(path); err != nil {
		json.WriteNotFound(w)
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	http.ServeFile(w, r, path)
}

// saveUpload keeps the raw upload on disk. Failures are logged, never
// surfaced: the transcript is computed from memory.
func (h *Handler) saveUpload(filename string, audio []byte) {
	if filename == "" {
		filename = "audio_" + strings.ReplaceAll(uuid.NewString(), "-", "") + ".wav"
	}
	if !strings.Contains(filename, ".") {
		filename += ".wav"
	}

	path := filepath.Join(h.uploadDir, filepath.Base(filename))
	if err := os.WriteFile(path, audio, 0o644); err != nil {
		h.logger.Warnw("failed to save audio upload", "path", path, "error", err)
	}
}
