package llm

import "context"

// MockClient is a configurable mock satisfying VisionClient, ChatClient and
// SpeechClient. Set the function fields to control behavior in tests.
type MockClient struct {
	// GenerateVisionResponseFunc is called by GenerateVisionResponse.
	// If nil, returns empty string and nil error.
	GenerateVisionResponseFunc func(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error)

	// GenerateResponseFunc is called by GenerateResponse.
	// If nil, returns empty string and nil error.
	GenerateResponseFunc func(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error)

	// CreateSpeechFunc is called by CreateSpeech.
	// If nil, returns nil and nil error.
	CreateSpeechFunc func(ctx context.Context, text, voice string) ([]byte, error)

	// Call tracking for verification
	GenerateVisionResponseCalls int
	GenerateResponseCalls       int
	CreateSpeechCalls           int
}

// GenerateVisionResponse implements VisionClient.
func (m *MockClient) GenerateVisionResponse(ctx context.Context, prompt, systemMessage string, imageData []byte) (string, error) {
	m.GenerateVisionResponseCalls++
	if m.GenerateVisionResponseFunc != nil {
		return m.GenerateVisionResponseFunc(ctx, prompt, systemMessage, imageData)
	}
	return "", nil
}

// GenerateResponse implements ChatClient.
func (m *MockClient) GenerateResponse(ctx context.Context, prompt, systemMessage string, temperature float64) (string, error) {
	m.GenerateResponseCalls++
	if m.GenerateResponseFunc != nil {
		return m.GenerateResponseFunc(ctx, prompt, systemMessage, temperature)
	}
	return "", nil
}

// CreateSpeech implements SpeechClient.
func (m *MockClient) CreateSpeech(ctx context.Context, text, voice string) ([]byte, error) {
	m.CreateSpeechCalls++
	if m.CreateSpeechFunc != nil {
		return m.CreateSpeechFunc(ctx, text, voice)
	}
	return nil, nil
}

// Ensure MockClient satisfies the client interfaces at compile time.
var (
	_ VisionClient = (*MockClient)(nil)
	_ ChatClient   = (*MockClient)(nil)
	_ SpeechClient = (*MockClient)(nil)
)
