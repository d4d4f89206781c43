package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-travel-journal/internal/config"
	"github.com/MKhiriev/go-travel-journal/internal/logger"
	"github.com/MKhiriev/go-travel-journal/internal/utils"
	"github.com/go-resty/resty/v2"
)

// API roots below the project URL.
const (
	authPath    = "/auth/v1"
	restPath    = "/rest/v1"
	storagePath = "/storage/v1"
)

type baasAdapter struct {
	client *utils.HTTPClient

	baseURL string
	anonKey string

	logger *logger.Logger
}

// NewBaaSAdapter constructs the HTTP implementation of [BaaS].
// It normalises and validates cfg.URL, configures the underlying HTTP client
// with the resolved base URL and request timeout, and sends cfg.AnonKey as
// the apikey header on every request.
//
// Returns an error if cfg.URL is empty or cannot be parsed as a valid URL,
// or if cfg.AnonKey is empty.
func NewBaaSAdapter(cfg config.BaaS, logger *logger.Logger) (BaaS, error) {
	baseURL, err := normalizeBaseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("invalid backend url: %w", err)
	}
	if strings.TrimSpace(cfg.AnonKey) == "" {
		return nil, fmt.Errorf("empty backend anon key")
	}

	client := utils.NewHTTPClient(baseURL, cfg.RequestTimeout)
	client.SetHeader("apikey", cfg.AnonKey)

	return &baasAdapter{
		client:  client,
		baseURL: baseURL,
		anonKey: cfg.AnonKey,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "https://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// authedRequest returns a request running as the user whose token is in ctx,
// falling back to the anon key.
func (h *baasAdapter) authedRequest(ctx context.Context) *resty.Request {
	token, ok := utils.GetAccessTokenFromContext(ctx)
	if !ok {
		token = h.anonKey
	}
	return h.tokenRequest(ctx, token)
}

func (h *baasAdapter) tokenRequest(ctx context.Context, token string) *resty.Request {
	return h.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+strings.TrimSpace(token))
}

// escapePath escapes every segment of an object path, keeping the slashes.
func escapePath(p string) string {
	segments := strings.Split(strings.Trim(p, "/"), "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return strings.Join(segments, "/")
}
