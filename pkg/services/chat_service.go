package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
	"github.com/lexilens-ai/lexilens-engine/pkg/models"
	"github.com/lexilens-ai/lexilens-engine/pkg/prompts"
	"github.com/lexilens-ai/lexilens-engine/pkg/repositories"
)

// chatContextWords caps how many recent vocabulary words are passed to the
// chat model as context.
const chatContextWords = 20

// chatTemperature keeps tutor replies varied but on-topic.
const chatTemperature = 0.7

// ChatService proxies learner messages to the chat model, primed with the
// learner's recent vocabulary.
type ChatService interface {
	// Chat returns the tutor's reply to the learner's message.
	Chat(ctx context.Context, message, userID string) (string, error)
}

type chatService struct {
	chat   llm.ChatClient
	words  repositories.WordRepository
	logger *zap.Logger
}

// NewChatService creates a new ChatService.
func NewChatService(chat llm.ChatClient, words repositories.WordRepository, logger *zap.Logger) ChatService {
	return &chatService{
		chat:   chat,
		words:  words,
		logger: logger.Named("chat-service"),
	}
}

var _ ChatService = (*chatService)(nil)

func (s *chatService) Chat(ctx context.Context, message, userID string) (string, error) {
	if userID == "" {
		userID = models.DefaultUserID
	}

	records, err := s.words.ListByUser(ctx, userID)
	if err != nil {
		// Vocabulary context is best-effort: the tutor can still answer
		// without it, so a store hiccup does not fail the chat.
		s.logger.Warn("failed to load vocabulary context", zap.Error(err))
		records = nil
	}
	if len(records) > chatContextWords {
		records = records[:chatContextWords]
	}

	recentWords := make([]string, 0, len(records))
	for _, record := range records {
		recentWords = append(recentWords, fmt.Sprintf("%s (%s)", record.LexicalKey, record.Translation))
	}

	reply, err := s.chat.GenerateResponse(ctx,
		prompts.BuildChatPrompt(message, recentWords),
		prompts.ChatSystemMessage,
		chatTemperature)
	if err != nil {
		return "", fmt.Errorf("chat call: %w", err)
	}

	return reply, nil
}
