package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// ChatRequest is the body of POST /api/chat.
type ChatRequest struct {
	Message string `json:"message"`
	UserID  string `json:"user_id,omitempty"`
}

// ChatResponse is the tutor's reply.
type ChatResponse struct {
	Reply string `json:"reply"`
}

// ChatHandler proxies learner messages to the chat collaborator.
type ChatHandler struct {
	chatService services.ChatService
	logger      *zap.Logger
}

// NewChatHandler creates a new chat handler.
func NewChatHandler(chatService services.ChatService, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		logger:      logger,
	}
}

// RegisterRoutes registers the chat handler's routes on the given mux.
func (h *ChatHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/chat", h.Chat)
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(w http.ResponseWriter, r *http.Request) {
	var req ChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be JSON")
		return
	}
	if req.Message == "" {
		h.writeError(w, http.StatusBadRequest, "no_message", "Message is required")
		return
	}

	reply, err := h.chatService.Chat(r.Context(), req.Message, req.UserID)
	if err != nil {
		h.logger.Error("Chat failed", zap.Error(err))
		if llm.IsRetryable(err) {
			h.writeError(w, http.StatusBadGateway, "chat_unavailable", "Chat model is unavailable; please retry")
			return
		}
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Chat failed")
		return
	}

	if err := WriteJSON(w, http.StatusOK, ChatResponse{Reply: reply}); err != nil {
		h.logger.Error("Failed to write chat response", zap.Error(err))
	}
}

func (h *ChatHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
