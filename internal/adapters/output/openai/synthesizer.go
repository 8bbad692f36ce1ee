package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check
var _ output.SpeechSynthesizer = (*ClientAdapter)(nil)

// MaxSpeechInputChars is the provider's input limit for speech synthesis.
// Longer text is rejected locally before any network call.
const MaxSpeechInputChars = 4096

type speechAPIRequest struct {
	Model          string `json:"model"`
	Voice          string `json:"voice"`
	Input          string `json:"input"`
	ResponseFormat string `json:"response_format,omitempty"`
}

// Synthesize converts text to MP3 audio via the provider's speech endpoint.
func (a *ClientAdapter) Synthesize(ctx context.Context, request domain.SpeechRequest) ([]byte, error) {
	if !a.Configured() {
		return nil, domain.ErrUpstreamNotConfigured
	}
	if request.Text == "" {
		return nil, fmt.Errorf("%w: empty text", domain.ErrInvalidInput)
	}
	if len(request.Text) > MaxSpeechInputChars {
		return nil, fmt.Errorf("%w: text too long, maximum %d characters", domain.ErrInvalidInput, MaxSpeechInputChars)
	}

	voice := request.Voice
	if voice == "" {
		voice = a.voice
	}

	reqBody := speechAPIRequest{
		Model:          a.speechModel,
		Voice:          voice,
		Input:          request.Text,
		ResponseFormat: "mp3",
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal speech request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/audio/speech", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create speech request: %w", err)
	}
	a.authorize(req)
	req.Header.Set("Content-Type", "application/json")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, classifyError(resp.StatusCode, string(respBody))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read speech response: %v", domain.ErrUpstreamFailure, err)
	}

	logrus.Infof("TTS generation successful, voice: %s, MP3 size: %d bytes", voice, len(audio))

	return audio, nil
}
