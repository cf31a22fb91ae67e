package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// SpeechRequest is the body of POST /api/tts.
type SpeechRequest struct {
	Text  string `json:"text"`
	Voice string `json:"voice,omitempty"`
}

// SpeechHandler proxies text to the speech-synthesis collaborator.
type SpeechHandler struct {
	speechService services.SpeechService
	logger        *zap.Logger
}

// NewSpeechHandler creates a new speech handler.
func NewSpeechHandler(speechService services.SpeechService, logger *zap.Logger) *SpeechHandler {
	return &SpeechHandler{
		speechService: speechService,
		logger:        logger,
	}
}

// RegisterRoutes registers the speech handler's routes on the given mux.
func (h *SpeechHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/tts", h.Synthesize)
}

// Synthesize handles POST /api/tts. Replies with raw mp3 audio.
func (h *SpeechHandler) Synthesize(w http.ResponseWriter, r *http.Request) {
	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be JSON")
		return
	}
	if req.Text == "" {
		h.writeError(w, http.StatusBadRequest, "no_text", "Text is required")
		return
	}

	audio, err := h.speechService.Synthesize(r.Context(), req.Text, req.Voice)
	if err != nil {
		h.logger.Error("Speech synthesis failed", zap.Error(err))
		if llm.IsRetryable(err) {
			h.writeError(w, http.StatusBadGateway, "speech_unavailable", "Speech model is unavailable; please retry")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Speech synthesis failed")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	if _, err := w.Write(audio); err != nil {
		h.logger.Error("Failed to write audio response", zap.Error(err))
	}
}

func (h *SpeechHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
