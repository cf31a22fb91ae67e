package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
)

// SpeechService proxies text to the hosted speech-synthesis collaborator.
type SpeechService interface {
	// Synthesize renders text as mp3 audio. voice may be empty to use the
	// configured default.
	Synthesize(ctx context.Context, text, voice string) ([]byte, error)
}

type speechService struct {
	speech       llm.SpeechClient
	defaultVoice string
	logger       *zap.Logger
}

// NewSpeechService creates a new SpeechService.
func NewSpeechService(speech llm.SpeechClient, defaultVoice string, logger *zap.Logger) SpeechService {
	return &speechService{
		speech:       speech,
		defaultVoice: defaultVoice,
		logger:       logger.Named("speech-service"),
	}
}

var _ SpeechService = (*speechService)(nil)

func (s *speechService) Synthesize(ctx context.Context, text, voice string) ([]byte, error) {
	if text == "" {
		return nil, fmt.Errorf("text is required")
	}
	if voice == "" {
		voice = s.defaultVoice
	}
	return s.speech.CreateSpeech(ctx, text, voice)
}
