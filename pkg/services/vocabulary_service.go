package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/repositories"
)

// VocabularyService exposes the read paths over a user's word records.
type VocabularyService interface {
	// ListByUser returns the user's full vocabulary, most recently seen first.
	ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error)

	// ListDue returns the words due for review, most overdue first.
	ListDue(ctx context.Context, userID string) ([]*models.WordRecord, error)
}

type vocabularyService struct {
	words  repositories.WordRepository
	logger *zap.Logger
}

// NewVocabularyService creates a new VocabularyService.
func NewVocabularyService(words repositories.WordRepository, logger *zap.Logger) VocabularyService {
	return &vocabularyService{
		words:  words,
		logger: logger.Named("vocabulary-service"),
	}
}

var _ VocabularyService = (*vocabularyService)(nil)

func (s *vocabularyService) ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	if userID == "" {
		userID = models.DefaultUserID
	}
	return s.words.ListByUser(ctx, userID)
}

func (s *vocabularyService) ListDue(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	if userID == "" {
		userID = models.DefaultUserID
	}
	return s.words.ListDue(ctx, userID, time.Now().UTC())
}
