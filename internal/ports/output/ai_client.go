package output

import (
	"context"

	"vr-training-backend/internal/domain"
)

// SpeechTranscriber interface - Output port
// Converts an audio byte stream to text. Failures are classified into the
// domain error taxonomy (quota, payload size, format, upstream).
type SpeechTranscriber interface {
	Transcribe(ctx context.Context, request domain.TranscriptionRequest) (string, error)
}

// ReplyGenerator interface - Output port
// Invokes the language-generation capability with a built instruction
// sequence. The caller supplies the length cap and randomness parameter.
type ReplyGenerator interface {
	ChatCompletion(ctx context.Context, request domain.ChatCompletionRequest) (*domain.ChatCompletionResponse, error)
}

// SpeechSynthesizer interface - Output port
// Converts a reply string to an audio byte stream. Implementations reject
// text longer than the provider limit before any network call.
type SpeechSynthesizer interface {
	Synthesize(ctx context.Context, request domain.SpeechRequest) ([]byte, error)
}

// RealtimeTokenIssuer interface - Output port
// Issues ephemeral realtime-session credentials for in-headset speech.
type RealtimeTokenIssuer interface {
	CreateRealtimeSession(ctx context.Context, request domain.RealtimeTokenRequest) (*domain.RealtimeTokenResult, error)
}
