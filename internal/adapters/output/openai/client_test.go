package openai

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"testing"

	"vr-training-backend/configs"
	"vr-training-backend/internal/domain"
)

func TestClassifyError(t *testing.T) {
	tests := []struct {
		name       string
		statusCode int
		body       string
		want       error
	}{
		{
			name:       "quota status",
			statusCode: http.StatusTooManyRequests,
			body:       "rate limited",
			want:       domain.ErrQuotaExceeded,
		},
		{
			name:       "quota message",
			statusCode: http.StatusForbidden,
			body:       `{"error":{"code":"insufficient_quota"}}`,
			want:       domain.ErrQuotaExceeded,
		},
		{
			name:       "payload status",
			statusCode: http.StatusRequestEntityTooLarge,
			body:       "",
			want:       domain.ErrPayloadTooLarge,
		},
		{
			name:       "payload message",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"code":"file_size_exceeded"}}`,
			want:       domain.ErrPayloadTooLarge,
		},
		{
			name:       "unsupported format",
			statusCode: http.StatusBadRequest,
			body:       `{"error":{"message":"Invalid file format"}}`,
			want:       domain.ErrUnsupportedFormat,
		},
		{
			name:       "generic upstream failure",
			statusCode: http.StatusInternalServerError,
			body:       "upstream exploded",
			want:       domain.ErrUpstreamFailure,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyError(tt.statusCode, tt.body)
			if !errors.Is(err, tt.want) {
				t.Errorf("classifyError(%d, %q) = %v, want %v", tt.statusCode, tt.body, err, tt.want)
			}
		})
	}
}

func TestNotConfiguredClient(t *testing.T) {
	adapter := NewClientAdapter(configs.OpenAI{})

	if adapter.Configured() {
		t.Fatal("Adapter without API key must not report configured")
	}

	_, err := adapter.Transcribe(context.Background(), domain.TranscriptionRequest{Audio: []byte("a")})
	if !errors.Is(err, domain.ErrUpstreamNotConfigured) {
		t.Errorf("Transcribe: expected ErrUpstreamNotConfigured, got %v", err)
	}

	_, err = adapter.ChatCompletion(context.Background(), domain.ChatCompletionRequest{})
	if !errors.Is(err, domain.ErrUpstreamNotConfigured) {
		t.Errorf("ChatCompletion: expected ErrUpstreamNotConfigured, got %v", err)
	}

	_, err = adapter.Synthesize(context.Background(), domain.SpeechRequest{Text: "hi"})
	if !errors.Is(err, domain.ErrUpstreamNotConfigured) {
		t.Errorf("Synthesize: expected ErrUpstreamNotConfigured, got %v", err)
	}
}

func TestPlaceholderKeyCountsAsAbsent(t *testing.T) {
	adapter := NewClientAdapter(configs.OpenAI{APIKey: "sk-placeholder-key"})
	if adapter.Configured() {
		t.Error("Placeholder API key must not count as configured")
	}
}

func TestSynthesizeRejectsOversizedText(t *testing.T) {
	// The base URL points nowhere reachable; the length check must fire
	// before any network call.
	adapter := NewClientAdapter(configs.OpenAI{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1",
	})

	_, err := adapter.Synthesize(context.Background(), domain.SpeechRequest{
		Text: strings.Repeat("a", MaxSpeechInputChars+1),
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for oversized text, got %v", err)
	}
}

func TestSynthesizeRejectsEmptyText(t *testing.T) {
	adapter := NewClientAdapter(configs.OpenAI{
		APIKey:  "test-key",
		BaseURL: "http://127.0.0.1:1",
	})

	_, err := adapter.Synthesize(context.Background(), domain.SpeechRequest{})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Expected ErrInvalidInput for empty text, got %v", err)
	}
}

func TestClientDefaults(t *testing.T) {
	adapter := NewClientAdapter(configs.OpenAI{APIKey: "test-key"})

	if adapter.baseURL != defaultBaseURL {
		t.Errorf("Expected default base URL, got %q", adapter.baseURL)
	}
	if adapter.chatModel != defaultChatModel {
		t.Errorf("Expected default chat model, got %q", adapter.chatModel)
	}
	if adapter.Voice() != defaultVoice {
		t.Errorf("Expected default voice, got %q", adapter.Voice())
	}
}
