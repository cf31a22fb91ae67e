package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/apperrors"
	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/models"
)

const lanternReply = "```json\n" + `{
  "matched": true,
  "english": "Paper Lantern",
  "translation": "灯笼",
  "pronunciation": "dēng lóng",
  "cultural_context": "Red lanterns are hung during Lunar New Year."
}` + "\n```"

func newScanService(vision *llm.MockClient, repo *mockWordRepository) ScanService {
	return NewScanService(vision, repo, "Mandarin Chinese", zap.NewNop())
}

func TestScan_NoImage(t *testing.T) {
	vision := &llm.MockClient{}
	repo := &mockWordRepository{}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), nil, "user-1")

	require.ErrorIs(t, err, apperrors.ErrNoImage)
	assert.Zero(t, vision.GenerateVisionResponseCalls, "recognizer must not be called")
	assert.Zero(t, repo.UpsertCalls, "store must not be touched")
}

func TestScan_NotRecognized(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return `{"matched": false}`, nil
		},
	}
	repo := &mockWordRepository{}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")

	require.ErrorIs(t, err, apperrors.ErrNotRecognized)
	assert.Zero(t, repo.UpsertCalls, "no record may be created for an unrecognized item")
}

func TestScan_UnparseableResponse(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return "I think that might be some kind of lamp?", nil
		},
	}
	repo := &mockWordRepository{}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")

	require.ErrorIs(t, err, apperrors.ErrRecognizerResponse)
	assert.Zero(t, repo.UpsertCalls)
}

func TestScan_MatchedWithoutName(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return `{"matched": true, "translation": "灯笼"}`, nil
		},
	}
	svc := newScanService(vision, &mockWordRepository{})

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")

	require.ErrorIs(t, err, apperrors.ErrRecognizerResponse)
}

func TestScan_Success(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return lanternReply, nil
		},
	}

	var gotUserID, gotKey string
	var gotAttrs models.WordAttributes
	repo := &mockWordRepository{
		UpsertObservationFunc: func(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error) {
			gotUserID, gotKey, gotAttrs = userID, lexicalKey, attrs
			return &models.WordRecord{TimesSeen: 3}, true, nil
		},
	}
	svc := newScanService(vision, repo)

	result, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")
	require.NoError(t, err)

	assert.Equal(t, "user-1", gotUserID)
	assert.Equal(t, "paper lantern", gotKey, "lexical key must be case-folded")
	assert.Equal(t, "灯笼", gotAttrs.Translation)
	assert.Equal(t, "dēng lóng", gotAttrs.Pronunciation)

	assert.Equal(t, "Paper Lantern", result.English, "display name keeps the recognizer's casing")
	assert.Equal(t, 3, result.TimesSeen)
	assert.True(t, result.IsReview)
}

func TestScan_DefaultUser(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return lanternReply, nil
		},
	}

	var gotUserID string
	repo := &mockWordRepository{
		UpsertObservationFunc: func(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error) {
			gotUserID = userID
			return &models.WordRecord{TimesSeen: 1}, false, nil
		},
	}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUserID, gotUserID)
}

func TestScan_RecognizerUnavailable(t *testing.T) {
	upstreamErr := llm.NewError(llm.ErrorTypeEndpoint, "endpoint unavailable", true, errors.New("connection refused"))
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return "", upstreamErr
		},
	}
	repo := &mockWordRepository{}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")

	require.Error(t, err)
	assert.True(t, llm.IsRetryable(err), "upstream outage must stay classified as retryable")
	assert.Zero(t, repo.UpsertCalls)
}

func TestScan_StorageFailure(t *testing.T) {
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			return lanternReply, nil
		},
	}
	repo := &mockWordRepository{
		UpsertObservationFunc: func(ctx context.Context, userID, lexicalKey string, attrs models.WordAttributes, now time.Time) (*models.WordRecord, bool, error) {
			return nil, false, errors.New("connection reset")
		},
	}
	svc := newScanService(vision, repo)

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")

	require.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestScan_PromptCarriesLanguage(t *testing.T) {
	var gotPrompt string
	vision := &llm.MockClient{
		GenerateVisionResponseFunc: func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
			gotPrompt = prompt
			return lanternReply, nil
		},
	}
	svc := newScanService(vision, &mockWordRepository{})

	_, err := svc.Scan(context.Background(), []byte("jpeg-bytes"), "user-1")
	require.NoError(t, err)
	assert.True(t, strings.Contains(gotPrompt, "Mandarin Chinese"))
}
