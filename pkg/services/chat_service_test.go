package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/models"
)

func TestChat_IncludesRecentVocabulary(t *testing.T) {
	repo := &mockWordRepository{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.WordRecord, error) {
			return []*models.WordRecord{
				{LexicalKey: "lantern", Translation: "灯笼"},
				{LexicalKey: "fan", Translation: "扇子"},
			}, nil
		},
	}

	var gotPrompt string
	chat := &llm.MockClient{
		GenerateResponseFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			gotPrompt = prompt
			return "Great words!", nil
		},
	}
	svc := NewChatService(chat, repo, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "What did I learn?", "user-1")
	require.NoError(t, err)

	assert.Equal(t, "Great words!", reply)
	assert.Contains(t, gotPrompt, "lantern (灯笼)")
	assert.Contains(t, gotPrompt, "fan (扇子)")
	assert.Contains(t, gotPrompt, "What did I learn?")
}

func TestChat_CapsContextAtTwentyWords(t *testing.T) {
	var records []*models.WordRecord
	for i := 0; i < 30; i++ {
		records = append(records, &models.WordRecord{
			LexicalKey:  fmt.Sprintf("word-%02d", i),
			Translation: "译",
		})
	}
	repo := &mockWordRepository{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.WordRecord, error) {
			return records, nil
		},
	}

	var gotPrompt string
	chat := &llm.MockClient{
		GenerateResponseFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			gotPrompt = prompt
			return "ok", nil
		},
	}
	svc := NewChatService(chat, repo, zap.NewNop())

	_, err := svc.Chat(context.Background(), "hi", "user-1")
	require.NoError(t, err)

	// The repository returns most-recent-first, so the cap keeps the 20
	// newest entries and drops the tail.
	assert.Contains(t, gotPrompt, "word-19")
	assert.NotContains(t, gotPrompt, "word-20")
	assert.Equal(t, 20, strings.Count(gotPrompt, "word-"))
}

func TestChat_StoreFailureIsNotFatal(t *testing.T) {
	repo := &mockWordRepository{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.WordRecord, error) {
			return nil, errors.New("connection reset")
		},
	}
	chat := &llm.MockClient{
		GenerateResponseFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			return "Hello!", nil
		},
	}
	svc := NewChatService(chat, repo, zap.NewNop())

	reply, err := svc.Chat(context.Background(), "hi", "user-1")
	require.NoError(t, err)
	assert.Equal(t, "Hello!", reply)
}

func TestChat_DefaultUser(t *testing.T) {
	var gotUserID string
	repo := &mockWordRepository{
		ListByUserFunc: func(ctx context.Context, userID string) ([]*models.WordRecord, error) {
			gotUserID = userID
			return nil, nil
		},
	}
	chat := &llm.MockClient{
		GenerateResponseFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			return "ok", nil
		},
	}
	svc := NewChatService(chat, repo, zap.NewNop())

	_, err := svc.Chat(context.Background(), "hi", "")
	require.NoError(t, err)
	assert.Equal(t, models.DefaultUserID, gotUserID)
}

func TestChat_ModelFailure(t *testing.T) {
	chat := &llm.MockClient{
		GenerateResponseFunc: func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
			return "", llm.NewError(llm.ErrorTypeRateLimit, "rate limited", true, nil)
		},
	}
	svc := NewChatService(chat, &mockWordRepository{}, zap.NewNop())

	_, err := svc.Chat(context.Background(), "hi", "user-1")
	require.Error(t, err)
}
