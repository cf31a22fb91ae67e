package handlers

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// VocabularyHandler serves the read-only vocabulary and review queues.
type VocabularyHandler struct {
	vocabService services.VocabularyService
	logger       *zap.Logger
}

// NewVocabularyHandler creates a new vocabulary handler.
func NewVocabularyHandler(vocabService services.VocabularyService, logger *zap.Logger) *VocabularyHandler {
	return &VocabularyHandler{
		vocabService: vocabService,
		logger:       logger,
	}
}

// RegisterRoutes registers the vocabulary handler's routes on the given mux.
func (h *VocabularyHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /api/vocabulary/{userID}", h.ListVocabulary)
	mux.HandleFunc("GET /api/review/{userID}", h.ListDue)
}

// ListVocabulary handles GET /api/vocabulary/{userID}.
// Returns the user's full vocabulary, most recently seen first.
func (h *VocabularyHandler) ListVocabulary(w http.ResponseWriter, r *http.Request) {
	records, err := h.vocabService.ListByUser(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.logger.Error("Failed to list vocabulary", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "storage_unavailable", "Could not load vocabulary"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if records == nil {
		records = []*models.WordRecord{}
	}
	if err := WriteJSON(w, http.StatusOK, records); err != nil {
		h.logger.Error("Failed to write vocabulary response", zap.Error(err))
	}
}

// ListDue handles GET /api/review/{userID}.
// Returns the words currently due for review, most overdue first.
func (h *VocabularyHandler) ListDue(w http.ResponseWriter, r *http.Request) {
	records, err := h.vocabService.ListDue(r.Context(), r.PathValue("userID"))
	if err != nil {
		h.logger.Error("Failed to list due words", zap.Error(err))
		if err := ErrorResponse(w, http.StatusInternalServerError, "storage_unavailable", "Could not load review queue"); err != nil {
			h.logger.Error("Failed to write error response", zap.Error(err))
		}
		return
	}

	if records == nil {
		records = []*models.WordRecord{}
	}
	if err := WriteJSON(w, http.StatusOK, records); err != nil {
		h.logger.Error("Failed to write review response", zap.Error(err))
	}
}
