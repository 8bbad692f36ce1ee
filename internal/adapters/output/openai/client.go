package openai

import (
	"fmt"
	"net"
	"net/http"
	"strings"
	"time"

	"vr-training-backend/configs"
	"vr-training-backend/internal/domain"

	"github.com/sirupsen/logrus"
)

// Default models, matching the hosted provider's speech/chat lineup
const (
	defaultBaseURL         = "https://api.openai.com"
	defaultChatModel       = "gpt-3.5-turbo"
	defaultTranscribeModel = "gpt-4o-mini-transcribe"
	defaultSpeechModel     = "gpt-4o-mini-tts"
	defaultVoice           = "verse"
)

// ClientAdapter struct - Output adapter for the hosted AI provider's REST API.
// One adapter instance is constructed at startup and shared by the
// transcriber, generator, synthesizer and realtime-token ports. A missing
// API key produces a not-configured adapter whose calls fail with
// domain.ErrUpstreamNotConfigured instead of reaching the network.
type ClientAdapter struct {
	httpClient      *http.Client
	apiKey          string
	baseURL         string
	chatModel       string
	transcribeModel string
	speechModel     string
	voice           string
}

// NewClientAdapter func - Creates new AI provider client adapter
func NewClientAdapter(config configs.OpenAI) *ClientAdapter {
	baseURL := strings.TrimSuffix(config.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := time.Duration(config.Timeout) * time.Second
	if config.Timeout <= 0 {
		timeout = 60 * time.Second
	}

	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient:      httpClient,
		apiKey:          config.APIKey,
		baseURL:         baseURL,
		chatModel:       valueOrDefault(config.ChatModel, defaultChatModel),
		transcribeModel: valueOrDefault(config.TranscribeModel, defaultTranscribeModel),
		speechModel:     valueOrDefault(config.SpeechModel, defaultSpeechModel),
		voice:           valueOrDefault(config.Voice, defaultVoice),
	}

	if adapter.Configured() {
		logrus.Infof("AI provider client initialized with base URL: %s, timeout: %v", baseURL, timeout)
	} else {
		logrus.Warn("AI provider API key missing, speech and chat routes will report service unavailable")
	}

	return adapter
}

// Configured reports whether provider credentials are present.
// Placeholder keys count as absent, matching deployment templates that ship
// with dummy values.
func (a *ClientAdapter) Configured() bool {
	return a.apiKey != "" && !strings.Contains(a.apiKey, "placeholder")
}

// Voice returns the configured synthesis voice.
func (a *ClientAdapter) Voice() string {
	return a.voice
}

func (a *ClientAdapter) authorize(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.apiKey)
}

// classifyError maps an upstream error response to the domain taxonomy.
// The response body is included for operators but never the credentials.
func classifyError(statusCode int, body string) error {
	lower := strings.ToLower(body)

	switch {
	case statusCode == http.StatusTooManyRequests,
		strings.Contains(lower, "quota"),
		strings.Contains(lower, "insufficient_quota"):
		return fmt.Errorf("%w: status %d", domain.ErrQuotaExceeded, statusCode)
	case statusCode == http.StatusRequestEntityTooLarge,
		strings.Contains(lower, "file_size_exceeded"),
		strings.Contains(lower, "maximum content size"):
		return fmt.Errorf("%w: status %d", domain.ErrPayloadTooLarge, statusCode)
	case statusCode == http.StatusBadRequest &&
		(strings.Contains(lower, "file format") || strings.Contains(lower, "unsupported") || strings.Contains(lower, "decode audio")):
		return fmt.Errorf("%w: status %d - %s", domain.ErrUnsupportedFormat, statusCode, body)
	default:
		return fmt.Errorf("%w: status %d - %s", domain.ErrUpstreamFailure, statusCode, body)
	}
}

func valueOrDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
