package openai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"

	"github.com/sirupsen/logrus"
)

// Compile-time check
var _ output.SpeechTranscriber = (*ClientAdapter)(nil)

type transcriptionAPIResponse struct {
	Text string `json:"text"`
}

// Transcribe converts an audio byte stream to text via the provider's
// transcription endpoint. Failures are classified as quota, payload size,
// unsupported format or upstream failure.
func (a *ClientAdapter) Transcribe(ctx context.Context, request domain.TranscriptionRequest) (string, error) {
	if !a.Configured() {
		return "", domain.ErrUpstreamNotConfigured
	}
	if len(request.Audio) == 0 {
		return "", fmt.Errorf("%w: empty audio", domain.ErrInvalidInput)
	}

	filename := request.Filename
	if filename == "" {
		filename = "audio.wav"
	}

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)

	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename=%q`, filename))
	if request.MimeType != "" {
		header.Set("Content-Type", request.MimeType)
	}
	part, err := writer.CreatePart(header)
	if err != nil {
		return "", fmt.Errorf("failed to create audio form part: %w", err)
	}
	if _, err = part.Write(request.Audio); err != nil {
		return "", fmt.Errorf("failed to write audio form part: %w", err)
	}
	if err = writer.WriteField("model", a.transcribeModel); err != nil {
		return "", fmt.Errorf("failed to write model field: %w", err)
	}
	if err = writer.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	url := fmt.Sprintf("%s/v1/audio/transcriptions", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, &body)
	if err != nil {
		return "", fmt.Errorf("failed to create transcription request: %w", err)
	}
	a.authorize(req)
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", classifyError(resp.StatusCode, string(respBody))
	}

	var apiResp transcriptionAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("%w: failed to parse transcription response: %v", domain.ErrUpstreamFailure, err)
	}

	text := strings.TrimSpace(apiResp.Text)
	logrus.Infof("Transcription successful, %d bytes in, %d chars out", len(request.Audio), len(text))

	return text, nil
}
