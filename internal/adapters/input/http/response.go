package http

import (
	"errors"
	"net/http"

	"vr-training-backend/internal/domain"
)

var (
	// Success response
	Success = Status{Code: http.StatusOK, Message: []string{"Success"}}
	// BadRequest response
	BadRequest = Status{Code: http.StatusBadRequest, Message: []string{"Sorry, Not responding because of incorrect syntax"}}
	// Unauthorized response
	Unauthorized = Status{Code: http.StatusUnauthorized, Message: []string{"Sorry, We are not able to process your request. Please try again"}}
	// Forbidden response
	Forbidden = Status{Code: http.StatusForbidden, Message: []string{"Sorry, Permission denied"}}
	// NotFound response
	NotFound = Status{Code: http.StatusNotFound, Message: []string{"Sorry, Resource not found"}}
	// PayloadTooLarge response
	PayloadTooLarge = Status{Code: http.StatusRequestEntityTooLarge, Message: []string{"Sorry, Uploaded audio exceeds the size limit"}}
	// TooManyRequests response
	TooManyRequests = Status{Code: http.StatusTooManyRequests, Message: []string{"Sorry, The AI provider quota is exhausted"}}
	// InternalServerError response
	InternalServerError = Status{Code: http.StatusInternalServerError, Message: []string{"Internal Server Error"}}
	// ServiceUnavailable response
	ServiceUnavailable = Status{Code: http.StatusServiceUnavailable, Message: []string{"Sorry, The AI provider is not configured"}}
)

// ResponseBody struct - Generic HTTP response wrapper
type ResponseBody struct {
	Status Status      `json:"status,omitempty"`
	Data   interface{} `json:"data,omitempty"`
}

// Status struct
type Status struct {
	Code    int      `json:"code,omitempty"`
	Message []string `json:"message,omitempty"`
}

// statusFromError maps the domain error taxonomy onto HTTP statuses.
// Unknown errors stay a plain 500 with no detail leaked to the client.
func statusFromError(err error) Status {
	switch {
	case errors.Is(err, domain.ErrUnsupportedFormat):
		status := BadRequest
		status.Message = []string{
			err.Error(),
			"Supported formats: flac, m4a, mp3, mp4, ogg, wav, webm",
		}
		return status
	case errors.Is(err, domain.ErrInvalidInput):
		status := BadRequest
		status.Message = []string{err.Error()}
		return status
	case errors.Is(err, domain.ErrUnauthorized):
		return Unauthorized
	case errors.Is(err, domain.ErrNotFound):
		return NotFound
	case errors.Is(err, domain.ErrPayloadTooLarge):
		return PayloadTooLarge
	case errors.Is(err, domain.ErrQuotaExceeded):
		return TooManyRequests
	case errors.Is(err, domain.ErrUpstreamNotConfigured):
		return ServiceUnavailable
	default:
		return InternalServerError
	}
}

type (
	// ChatbotResponse struct - HTTP response DTO for a text turn
	ChatbotResponse struct {
		ID         string `json:"id"`
		Message    string `json:"message"`
		SessionID  string `json:"session_id"`
		UserID     string `json:"user_id"`
		Timestamp  string `json:"timestamp"`
		TokensUsed int    `json:"tokens_used,omitempty"`
	}

	// HistoryTurnResponse struct - One turn of conversation history
	HistoryTurnResponse struct {
		Message   string `json:"message"`
		Response  string `json:"response"`
		Timestamp string `json:"timestamp"`
	}

	// TranscriptionResponse struct
	TranscriptionResponse struct {
		Transcript string `json:"transcript"`
	}

	// RealtimeTokenResponse struct
	RealtimeTokenResponse struct {
		Token     string `json:"token"`
		Model     string `json:"model"`
		Voice     string `json:"voice"`
		ExpiresAt string `json:"expires_at,omitempty"`
	}

	// RealtimeStatusResponse struct
	RealtimeStatusResponse struct {
		Available bool   `json:"available"`
		Model     string `json:"model,omitempty"`
	}

	// SignedUploadResponse struct
	SignedUploadResponse struct {
		Path      string `json:"path"`
		Token     string `json:"token"`
		SignedURL string `json:"signed_url"`
	}

	// SignedDownloadResponse struct
	SignedDownloadResponse struct {
		SignedURL string `json:"signed_url"`
	}

	// IdentityResponse struct
	IdentityResponse struct {
		ID    string `json:"id"`
		Email string `json:"email,omitempty"`
	}
)
