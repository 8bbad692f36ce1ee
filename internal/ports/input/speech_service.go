package input

import (
	"context"

	"vr-training-backend/internal/domain"
)

// SpeechService interface - Input port (use case)
// Standalone speech utilities outside the turn pipeline.
type SpeechService interface {
	Transcribe(ctx context.Context, request domain.TranscriptionRequest) (string, error)
	Synthesize(ctx context.Context, request domain.SpeechRequest) ([]byte, error)
	CreateRealtimeToken(ctx context.Context, request domain.RealtimeTokenRequest) (*domain.RealtimeTokenResult, error)
}
