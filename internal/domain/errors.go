package domain

import "errors"

// AI capability and request error types

var (
	// ErrUpstreamNotConfigured indicates the AI provider credentials are missing
	ErrUpstreamNotConfigured = errors.New("ai provider not configured")

	// ErrInvalidInput indicates a request with missing or oversized fields
	ErrInvalidInput = errors.New("invalid input")

	// ErrQuotaExceeded indicates the AI provider reported a rate or quota limit
	ErrQuotaExceeded = errors.New("ai provider quota exceeded")

	// ErrPayloadTooLarge indicates the audio exceeds the provider's size limit
	ErrPayloadTooLarge = errors.New("audio payload too large")

	// ErrUnsupportedFormat indicates the audio codec or container was rejected upstream
	ErrUnsupportedFormat = errors.New("unsupported audio format")

	// ErrUpstreamFailure indicates any other failure from the AI provider
	ErrUpstreamFailure = errors.New("ai provider request failed")

	// ErrUnauthorized indicates a missing or invalid bearer credential
	ErrUnauthorized = errors.New("unauthorized")

	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("not found")
)
