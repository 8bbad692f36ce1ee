package supabase

import (
	"net"
	"net/http"
	"strings"
	"time"

	"vr-training-backend/configs"

	"github.com/sirupsen/logrus"
)

// ClientAdapter struct - Output adapter for the hosted auth/storage
// backend's REST API. Identity resolution uses the anon key plus the
// caller's bearer token; storage URL signing uses the service key.
type ClientAdapter struct {
	httpClient *http.Client
	baseURL    string
	anonKey    string
	serviceKey string
}

// NewClientAdapter func - Creates new auth/storage client adapter
func NewClientAdapter(config configs.Supabase) *ClientAdapter {
	httpClient := &http.Client{
		Timeout: 15 * time.Second,
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   10 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 100,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	adapter := &ClientAdapter{
		httpClient: httpClient,
		baseURL:    strings.TrimSuffix(config.URL, "/"),
		anonKey:    config.AnonKey,
		serviceKey: config.ServiceKey,
	}

	if adapter.Configured() {
		logrus.Infof("Auth/storage client initialized with base URL: %s", adapter.baseURL)
	} else {
		logrus.Warn("Auth/storage backend not configured, authenticated routes will be rejected")
	}

	return adapter
}

// Configured reports whether the backend URL and anon key are present.
// Placeholder values from deployment templates count as absent.
func (a *ClientAdapter) Configured() bool {
	return a.baseURL != "" && !strings.Contains(a.baseURL, "placeholder") && a.anonKey != ""
}
