package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/lexilens-ai/lexilens-engine/pkg/llm"
)

func postSpeech(t *testing.T, handler *SpeechHandler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/tts", strings.NewReader(body))
	rec := httptest.NewRecorder()
	handler.Synthesize(rec, req)
	return rec
}

func TestSpeechHandler_Success(t *testing.T) {
	svc := &mockSpeechService{
		SynthesizeFunc: func(ctx context.Context, text, voice string) ([]byte, error) {
			if text != "灯笼" {
				t.Errorf("unexpected text: %q", text)
			}
			if voice != "nova" {
				t.Errorf("unexpected voice: %q", voice)
			}
			return []byte("mp3-bytes"), nil
		},
	}
	handler := NewSpeechHandler(svc, zap.NewNop())

	rec := postSpeech(t, handler, `{"text": "灯笼", "voice": "nova"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get("Content-Type"); got != "audio/mpeg" {
		t.Errorf("expected audio/mpeg, got %q", got)
	}
	if rec.Body.String() != "mp3-bytes" {
		t.Errorf("unexpected body: %q", rec.Body.String())
	}
}

func TestSpeechHandler_MissingText(t *testing.T) {
	handler := NewSpeechHandler(&mockSpeechService{}, zap.NewNop())

	rec := postSpeech(t, handler, `{}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, rec.Code)
	}
	if body := decodeError(t, rec); body["error"] != "no_text" {
		t.Errorf("expected error code no_text, got %q", body["error"])
	}
}

func TestSpeechHandler_ModelUnavailable(t *testing.T) {
	svc := &mockSpeechService{
		SynthesizeFunc: func(ctx context.Context, text, voice string) ([]byte, error) {
			return nil, llm.NewError(llm.ErrorTypeEndpoint, "endpoint unavailable", true, nil)
		},
	}
	handler := NewSpeechHandler(svc, zap.NewNop())

	rec := postSpeech(t, handler, `{"text": "hello"}`)

	if rec.Code != http.StatusBadGateway {
		t.Fatalf("expected status %d, got %d", http.StatusBadGateway, rec.Code)
	}
	if body := decodeError(t, rec); body["error"] != "speech_unavailable" {
		t.Errorf("expected error code speech_unavailable, got %q", body["error"])
	}
}
