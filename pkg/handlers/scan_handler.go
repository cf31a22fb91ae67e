package handlers

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/apperrors"
	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// ScanRequest is the body of POST /api/scan.
type ScanRequest struct {
	Image  string `json:"image"` // base64-encoded photo
	UserID string `json:"user_id,omitempty"`
}

// ScanHandler handles photo identification requests.
type ScanHandler struct {
	scanService services.ScanService
	logger      *zap.Logger
}

// NewScanHandler creates a new scan handler.
func NewScanHandler(scanService services.ScanService, logger *zap.Logger) *ScanHandler {
	return &ScanHandler{
		scanService: scanService,
		logger:      logger,
	}
}

// RegisterRoutes registers the scan handler's routes on the given mux.
func (h *ScanHandler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/scan", h.Scan)
}

// Scan handles POST /api/scan.
// Identifies a culturally significant object in the photo and records the
// observation in the caller's vocabulary.
func (h *ScanHandler) Scan(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, http.StatusBadRequest, "invalid_request", "Request body must be JSON")
		return
	}

	var imageData []byte
	if req.Image != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.Image)
		if err != nil {
			h.writeError(w, http.StatusBadRequest, "invalid_image", "Image must be base64 encoded")
			return
		}
		imageData = decoded
	}

	result, err := h.scanService.Scan(r.Context(), imageData, req.UserID)
	if err != nil {
		h.handleScanError(w, err)
		return
	}

	if err := WriteJSON(w, http.StatusOK, result); err != nil {
		h.logger.Error("Failed to write scan response", zap.Error(err))
	}
}

// handleScanError maps orchestrator failures onto the HTTP surface.
func (h *ScanHandler) handleScanError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperrors.ErrNoImage):
		h.writeError(w, http.StatusBadRequest, "no_image", "No image provided")
	case errors.Is(err, apperrors.ErrNotRecognized):
		h.writeError(w, http.StatusNotFound, "not_recognized", "No culturally significant item recognized")
	case errors.Is(err, apperrors.ErrRecognizerResponse):
		h.logger.Error("Recognizer contract violation", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "recognizer_response_invalid", "Recognizer returned an unusable response")
	case errors.Is(err, apperrors.ErrStorage):
		h.logger.Error("Vocabulary store unavailable", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "storage_unavailable", "Could not record the observation; please retry")
	case llm.IsRetryable(err):
		h.logger.Error("Recognizer unavailable", zap.Error(err))
		h.writeError(w, http.StatusBadGateway, "recognizer_unavailable", "Recognizer is unavailable; please retry")
	default:
		h.logger.Error("Scan failed", zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "internal_error", "Scan failed")
	}
}

func (h *ScanHandler) writeError(w http.ResponseWriter, status int, code, message string) {
	if err := ErrorResponse(w, status, code, message); err != nil {
		h.logger.Error("Failed to write error response", zap.Error(err))
	}
}
