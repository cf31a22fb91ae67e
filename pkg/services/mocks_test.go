package services

import (
	"context"
	"time"

	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/repositories"
)

// mockWordRepository is a configurable WordRepository for service tests.
type mockWordRepository struct {
	FindByKeyFunc         func(ctx context.Context, userID, lexicalKey string) (*models.WordRecord, error)
	UpsertObservationFunc func(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error)
	ListByUserFunc        func(ctx context.Context, userID string) ([]*models.WordRecord, error)
	ListDueFunc           func(ctx context.Context, userID string, now time.Time) ([]*models.WordRecord, error)

	UpsertCalls int
}

func (m *mockWordRepository) FindByKey(ctx context.Context, userID, lexicalKey string) (*models.WordRecord, error) {
	if m.FindByKeyFunc != nil {
		return m.FindByKeyFunc(ctx, userID, lexicalKey)
	}
	return nil, nil
}

func (m *mockWordRepository) UpsertObservation(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error) {
	m.UpsertCalls++
	if m.UpsertObservationFunc != nil {
		return m.UpsertObservationFunc(ctx, userID, lexicalKey, attrs, now)
	}
	return &models.WordRecord{}, false, nil
}

func (m *mockWordRepository) ListByUser(ctx context.Context, userID string) ([]*models.WordRecord, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockWordRepository) ListDue(ctx context.Context, userID string, now time.Time) ([]*models.WordRecord, error) {
	if m.ListDueFunc != nil {
		return m.ListDueFunc(ctx, userID, now)
	}
	return nil, nil
}

var _ repositories.WordRepository = (*mockWordRepository)(nil)
