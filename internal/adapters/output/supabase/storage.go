package supabase

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
var _ output.StorageSigner = (*ClientAdapter)(nil)

type signedUploadAPIResponse struct {
	URL   string `json:"url"`
	Token string `json:"token"`
}

type signedDownloadAPIResponse struct {
	SignedURL string `json:"signedURL"`
}

// SignedUploadURL issues a time-limited upload URL for a storage object.
// Signing uses the service key and therefore bypasses row-level policies;
// the handler layer restricts buckets before calling here.
func (a *ClientAdapter) SignedUploadURL(ctx context.Context, request domain.SignedURLRequest) (*domain.SignedUploadResult, error) {
	if a.serviceKey == "" {
		return nil, domain.ErrUpstreamNotConfigured
	}

	url := fmt.Sprintf("%s/storage/v1/object/upload/sign/%s/%s", a.baseURL, request.Bucket, request.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte("{}")))
	if err != nil {
		return nil, fmt.Errorf("failed to create signed upload request: %w", err)
	}
	a.authorizeService(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: status %d - %s", domain.ErrUpstreamFailure, resp.StatusCode, string(respBody))
	}

	var apiResp signedUploadAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, fmt.Errorf("%w: failed to parse signed upload response: %v", domain.ErrUpstreamFailure, err)
	}

	logrus.Infof("Issued signed upload URL for %s/%s", request.Bucket, request.Path)

	return &domain.SignedUploadResult{
		Path:      request.Path,
		Token:     apiResp.Token,
		SignedURL: a.baseURL + "/storage/v1" + apiResp.URL,
	}, nil
}

// SignedDownloadURL issues a time-limited download URL for a storage object.
func (a *ClientAdapter) SignedDownloadURL(ctx context.Context, request domain.SignedURLRequest) (string, error) {
	if a.serviceKey == "" {
		return "", domain.ErrUpstreamNotConfigured
	}

	body, err := json.Marshal(map[string]int{"expiresIn": request.ExpiresIn})
	if err != nil {
		return "", fmt.Errorf("failed to marshal signed download request: %w", err)
	}

	url := fmt.Sprintf("%s/storage/v1/object/sign/%s/%s", a.baseURL, request.Bucket, request.Path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create signed download request: %w", err)
	}
	a.authorizeService(req)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("%w: status %d - %s", domain.ErrUpstreamFailure, resp.StatusCode, string(respBody))
	}

	var apiResp signedDownloadAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("%w: failed to parse signed download response: %v", domain.ErrUpstreamFailure, err)
	}

	return a.baseURL + "/storage/v1" + apiResp.SignedURL, nil
}

func (a *ClientAdapter) authorizeService(req *http.Request) {
	req.Header.Set("apikey", a.serviceKey)
	req.Header.Set("Authorization", "Bearer "+a.serviceKey)
	req.Header.Set("Content-Type", "application/json")
}
