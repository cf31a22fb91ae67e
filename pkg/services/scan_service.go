package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/apperrors"
	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/logging"
	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/prompts"
	"github.com/lexilens-ai/lexilens-engine/pkg/repositories"
)

// ScanService orchestrates one identification: ask the vision model what is
// in the photo, record the observation, return the enriched result.
type ScanService interface {
	// Scan identifies a culturally significant object in the image and
	// records the observation for the user. Returns apperrors.ErrNoImage for
	// empty input, apperrors.ErrNotRecognized when the model reports no
	// match, and apperrors.ErrRecognizerResponse when the model's reply
	// cannot be parsed.
	Scan(ctx context.Context, imageData []byte, userID string) (*models.ScanResult, error)
}

type scanService struct {
	vision   llm.VisionClient
	words    repositories.WordRepository
	language string
	logger   *zap.Logger
}

// NewScanService creates a new ScanService. language is the translation
// target requested from the recognizer.
func NewScanService(vision llm.VisionClient, words repositories.WordRepository, language string, logger *zap.Logger) ScanService {
	return &scanService{
		vision:   vision,
		words:    words,
		language: language,
		logger:   logger.Named("scan-service"),
	}
}

var _ ScanService = (*scanService)(nil)

func (s *scanService) Scan(ctx context.Context, imageData []byte, userID string) (*models.ScanResult, error) {
	if len(imageData) == 0 {
		return nil, apperrors.ErrNoImage
	}
	if userID == "" {
		userID = models.DefaultUserID
	}

	response, err := s.vision.GenerateVisionResponse(ctx,
		prompts.BuildRecognitionPrompt(s.language),
		prompts.RecognitionSystemMessage,
		imageData)
	if err != nil {
		return nil, fmt.Errorf("recognizer call: %w", err)
	}

	recognition, err := llm.ParseJSONResponse[models.Recognition](response)
	if err != nil {
		// Keep the raw payload (sanitized) for diagnosing contract drift.
		s.logger.Error("unparseable recognizer response",
			zap.String("payload", logging.SanitizePayload(response)),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %v", apperrors.ErrRecognizerResponse, err)
	}

	if !recognition.Matched {
		return nil, apperrors.ErrNotRecognized
	}
	if recognition.English == "" {
		s.logger.Error("recognizer matched without a name",
			zap.String("payload", logging.SanitizePayload(response)))
		return nil, fmt.Errorf("%w: matched without english name", apperrors.ErrRecognizerResponse)
	}

	lexicalKey := strings.ToLower(recognition.English)
	attrs := models.WordAttributes{
		Translation:   recognition.Translation,
		Pronunciation: recognition.Pronunciation,
		CulturalNote:  recognition.CulturalContext,
	}

	record, isReview, err := s.words.UpsertObservation(ctx, userID, lexicalKey, attrs, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrStorage, err)
	}

	s.logger.Info("observation recorded",
		zap.String("user_id", userID),
		zap.String("lexical_key", lexicalKey),
		zap.Int("times_seen", record.TimesSeen),
		zap.Bool("is_review", isReview))

	return &models.ScanResult{
		English:         recognition.English,
		Translation:     recognition.Translation,
		Pronunciation:   recognition.Pronunciation,
		CulturalContext: recognition.CulturalContext,
		TimesSeen:       record.TimesSeen,
		IsReview:        isReview,
	}, nil
}
