package supabase

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"vr-training-backend/internal/domain"
	"vr-training-backend/internal/ports/output"
)

// Compile-time check
var _ output.IdentityResolver = (*ClientAdapter)(nil)

type userAPIResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// ResolveUser validates the bearer token against the auth backend and
// returns the caller's identity. Any rejection maps to ErrUnauthorized;
// the handler layer never distinguishes why a token failed.
func (a *ClientAdapter) ResolveUser(ctx context.Context, token string) (*domain.Identity, error) {
	if !a.Configured() {
		return nil, domain.ErrUpstreamNotConfigured
	}
	if token == "" {
		return nil, domain.ErrUnauthorized
	}

	url := fmt.Sprintf("%s/auth/v1/user", a.baseURL)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create user lookup request: %w", err)
	}
	req.Header.Set("apikey", a.anonKey)
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamFailure, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, domain.ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: status %d from auth backend", domain.ErrUpstreamFailure, resp.StatusCode)
	}

	var user userAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to parse user response: %v", domain.ErrUpstreamFailure, err)
	}
	if user.ID == "" {
		return nil, domain.ErrUnauthorized
	}

	return &domain.Identity{ID: user.ID, Email: user.Email}, nil
}
