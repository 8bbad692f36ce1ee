package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check
var _ output.RealtimeTokenIssuer = (*ClientAdapter)(nil)

const realtimeModel = "gpt-4o-realtime-preview"

// RealtimeModel returns the model ephemeral realtime sessions are issued for.
func (a *ClientAdapter) RealtimeModel() string {
	return realtimeModel
}

type realtimeSessionAPIRequest struct {
	Model             string `json:"model"`
	Voice             string `json:"voice"`
	Instructions      string `json:"instructions"`
	InputAudioFormat  string `json:"input_audio_format"`
	OutputAudioFormat string `json:"output_audio_format"`
	Temperature       float64 `json:"temperature"`
	MaxOutputTokens   int     `json:"max_response_output_tokens"`
	TurnDetection     struct {
		Type              string  `json:"type"`
		Threshold         float64 `json:"threshold"`
		PrefixPaddingMs   int     `json:"prefix_padding_ms"`
		SilenceDurationMs int     `json:"silence_duration_ms"`
	} `json:"turn_detection"`
}

type realtimeSessionAPIResponse struct {
	ClientSecret struct {
		Value     string `json:"value"`
		ExpiresAt int64  `json:"expires_at"`
	} `json:"client_secret"`
}

// CreateRealtimeSession issues an ephemeral credential for a direct
// speech-to-speech connection from the headset. The persona instructions
// are fixed server side so the client cannot alter the simulated customer.
func (a *ClientAdapter) CreateRealtimeSession(ctx context.Context, request domain.RealtimeTokenRequest) (*domain.RealtimeTokenResult, error) {
	if !a.Configured() {
		return nil, domain.ErrUpstreamNotConfigured
	}

	voice := request.Voice
	if voice == "" {
		voice = "alloy"
	}

	reqBody := realtimeSessionAPIRequest{
		Model:             realtimeModel,
		Voice:             voice,
		Instructions:      domain.RealtimePersonaInstructions(),
		InputAudioFormat:  "pcm16",
		OutputAudioFormat: "pcm16",
		Temperature:       0.8,
		MaxOutputTokens:   4096,
	}
	reqBody.TurnDetection.Type = "server_vad"
	reqBody.TurnDetection.Threshold = 0.5
	reqBody.TurnDetection.PrefixPaddingMs = 300
	reqBody.TurnDetection.SilenceDurationMs = 200

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal realtime session request: %w", err)
	}

	url := fmt.Sprintf("%s/v1/realtime/sessions", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to create realtime session request: %w", err)
	}
	a.authorize(req)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("OpenAI-Beta", "realtime=v1")

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, classifyError(resp.StatusCode, string(respBody))
	}

	var apiResp realtimeSessionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse realtime session response: %v", domain.ErrUpstreamFailure, err)
	}
	if apiResp.ClientSecret.Value == "" {
		return nil, fmt.Errorf("%w: no client secret in realtime session response", domain.ErrUpstreamFailure)
	}

	expiresAt := time.Unix(apiResp.ClientSecret.ExpiresAt, 0).UTC().Format(time.RFC3339)
	if apiResp.ClientSecret.ExpiresAt == 0 {
		expiresAt = time.Now().Add(time.Minute).UTC().Format(time.RFC3339)
	}

	logrus.Infof("Generated ephemeral realtime token for session: %s", request.SessionID)

	return &domain.RealtimeTokenResult{
		Token:     apiResp.ClientSecret.Value,
		Model:     realtimeModel,
		Voice:     voice,
		ExpiresAt: expiresAt,
	}, nil
}
