package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"vr-training-backend/internal/domain"

	"github.com/gofiber/fiber/v2"
)

// MockStorageSigner implements output.StorageSigner for testing
type MockStorageSigner struct {
	SignedUploadURLFunc func(ctx context.Context, request domain.SignedURLRequest) (*domain.SignedUploadResult, error)

	// Captured values for assertions
	CallCount   int
	LastRequest *domain.SignedURLRequest
}

func (m *MockStorageSigner) SignedUploadURL(ctx context.Context, request domain.SignedURLRequest) (*domain.SignedUploadResult, error) {
	m.CallCount++
	m.LastRequest = &request
	if m.SignedUploadURLFunc != nil {
		return m.SignedUploadURLFunc(ctx, request)
	}
	return &domain.SignedUploadResult{Path: request.Path, Token: "token", SignedURL: "https://example.test/signed"}, nil
}

func (m *MockStorageSigner) SignedDownloadURL(ctx context.Context, request domain.SignedURLRequest) (string, error) {
	m.CallCount++
	m.LastRequest = &request
	return "https://example.test/signed", nil
}

func newStorageTestApp(signer *MockStorageSigner) *fiber.App {
	hdl := New(nil, nil, nil, nil, nil, nil, nil, nil, nil, signer, RealtimeStatus{}, nil)
	app := fiber.New()
	app.Post("/storage/signed-upload", hdl.SignedUpload)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path, body string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodPost, path, strings.NewReader(body))
	if err != nil {
		t.Fatalf("Failed to build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	return resp
}

func TestSignedUploadDefaultsExpiry(t *testing.T) {
	signer := &MockStorageSigner{}
	app := newStorageTestApp(signer)

	resp := postJSON(t, app, "/storage/signed-upload", `{"bucket":"session-audio","path":"s1/turn-1.mp3"}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if signer.LastRequest == nil {
		t.Fatal("Signer was not called")
	}
	if signer.LastRequest.ExpiresIn != 600 {
		t.Errorf("Expected default expiry of 600 seconds, got %d", signer.LastRequest.ExpiresIn)
	}
}

func TestSignedUploadRejectsExpiryAboveOneHour(t *testing.T) {
	signer := &MockStorageSigner{}
	app := newStorageTestApp(signer)

	resp := postJSON(t, app, "/storage/signed-upload", `{"bucket":"session-audio","path":"s1/turn-1.mp3","expires_in":86400}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected status 400 for oversized expiry, got %d", resp.StatusCode)
	}
	if signer.CallCount != 0 {
		t.Error("Signer must not be called for an invalid expiry")
	}
}

func TestSignedUploadAcceptsExplicitExpiry(t *testing.T) {
	signer := &MockStorageSigner{}
	app := newStorageTestApp(signer)

	resp := postJSON(t, app, "/storage/signed-upload", `{"bucket":"reports","path":"s1/report.json","expires_in":1800}`)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("Expected status 200, got %d", resp.StatusCode)
	}
	if signer.LastRequest == nil || signer.LastRequest.ExpiresIn != 1800 {
		t.Errorf("Expected requested expiry to pass through, got %+v", signer.LastRequest)
	}
}

func TestSignedUploadRejectsUnknownBucket(t *testing.T) {
	signer := &MockStorageSigner{}
	app := newStorageTestApp(signer)

	resp := postJSON(t, app, "/storage/signed-upload", `{"bucket":"private","path":"s1/turn-1.mp3"}`)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("Expected status 400 for unknown bucket, got %d", resp.StatusCode)
	}
	if signer.CallCount != 0 {
		t.Error("Signer must not be called for an unknown bucket")
	}
}
