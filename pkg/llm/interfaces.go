// Package llm provides clients for the hosted AI collaborators: an
// OpenAI-compatible vision/chat/speech client and an Anthropic chat client.
package llm

import "context"

// VisionClient identifies objects in images via a vision-language model.
// Use this interface for dependency injection to enable mocking in tests.
type VisionClient interface {
	// GenerateVisionResponse sends a prompt plus one image and returns the
	// model's raw text reply.
	GenerateVisionResponse(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error)
}

// ChatClient generates conversational replies.
type ChatClient interface {
	// GenerateResponse generates a chat completion response.
	GenerateResponse(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error)
}

// SpeechClient synthesizes audio from text.
type SpeechClient interface {
	// CreateSpeech renders text as mp3 audio bytes.
	CreateSpeech(ctx context.Context, text, voice string) ([]byte, error)
}

// Ensure concrete clients satisfy the interfaces at compile time.
var (
	_ VisionClient = (*Client)(nil)
	_ ChatClient   = (*Client)(nil)
	_ SpeechClient = (*Client)(nil)
	_ ChatClient   = (*AnthropicClient)(nil)
)
