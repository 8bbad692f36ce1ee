package application

import (
	"context"
	"fmt"
	"strings"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// SpeechService struct - Application service for the standalone speech
// utilities that live outside the turn pipeline.
type SpeechService struct {
	transcriber output.SpeechTranscriber
	synthesizer output.SpeechSynthesizer
	realtime    output.RealtimeTokenIssuer
}

// NewSpeechService func - Creates new speech service
func NewSpeechService(
	transcriber output.SpeechTranscriber,
	synthesizer output.SpeechSynthesizer,
	realtime output.RealtimeTokenIssuer,
) *SpeechService {
	return &SpeechService{
		transcriber: transcriber,
		synthesizer: synthesizer,
		realtime:    realtime,
	}
}

// Transcribe func - Use case: Convert uploaded audio to text
func (s *SpeechService) Transcribe(ctx context.Context, request domain.TranscriptionRequest) (string, error) {
	if len(request.Audio) == 0 {
		return "", fmt.Errorf("%w: audio payload is empty", domain.ErrInvalidInput)
	}
	transcript, err := s.transcriber.Transcribe(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return "", err
	}
	return transcript, nil
}

// Synthesize func - Use case: Convert text to reply audio
func (s *SpeechService) Synthesize(ctx context.Context, request domain.SpeechRequest) ([]byte, error) {
	if strings.TrimSpace(request.Text) == "" {
		return nil, fmt.Errorf("%w: text is empty", domain.ErrInvalidInput)
	}
	audio, err := s.synthesizer.Synthesize(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return audio, nil
}

// CreateRealtimeToken func - Use case: Issue an ephemeral realtime token
func (s *SpeechService) CreateRealtimeToken(ctx context.Context, request domain.RealtimeTokenRequest) (*domain.RealtimeTokenResult, error) {
	result, err := s.realtime.CreateRealtimeSession(ctx, request)
	if err != nil {
		logrus.Errorln(err)
		return nil, err
	}
	return result, nil
}
