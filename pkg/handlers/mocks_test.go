package handlers

import (
	"context"

	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/services"
)

// mockScanService is a configurable ScanService for handler tests.
type mockScanService struct {
	ScanFunc func(ctx context.Context, imageData []byte, userID string) (*models.ScanResult, error)
	Calls    int
}

func (m *mockScanService) Scan(ctx context.Context, imageData []byte, userID string) (*models.ScanResult, error) {
	m.Calls++
	if m.ScanFunc != nil {
		return m.ScanFunc(ctx, imageData, userID)
	}
	return &models.ScanResult{}, nil
}

var _ services.ScanService = (*mockScanService)(nil)

// mockVocabularyService is a configurable VocabularyService for handler tests.
type mockVocabularyService struct {
	ListByUserFunc func(ctx context.Context, userID string) ([]*models.WordRecord, error)
	ListDueFunc    func(ctx context.Context, userID string) ([]*models.WordRecord, error)
}

func (m *mockVocabularyService) ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockVocabularyService) ListDue(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, userID)
	}
	return nil, nil
}

var _ services.VocabularyService = (*mockVocabularyService)(nil)

// mockChatService is a configurable ChatService for handler tests.
type mockChatService struct {
	ChatFunc func(ctx context.Context, message, userID string) (string, error)
}

func (m *mockChatService) Chat(ctx context.Context, message, userID string) (string, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, message, userID)
	}
	return "", nil
}

var _ services.ChatService = (*mockChatService)(nil)

// mockSpeechService is a configurable SpeechService for handler tests.
type mockSpeechService struct {
	SynthesizeFunc func(ctx context.Context, text, voice string) ([]byte, error)
}

func (m *mockSpeechService) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if m.SynthesizeFunc != nil {
		return m.SynthesizeFunc(ctx, text, voice)
	}
	return nil, nil
}

var _ services.SpeechService = (*mockSpeechService)(nil)
