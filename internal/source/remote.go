package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/PetaKedai/PK-Backend/internal/boundary"
	"github.com/PetaKedai/PK-Backend/internal/geojson"
)

func init() {
	Register(KindRemote, func(cfg Config) (Provider, error) {
		return NewRemoteSource(cfg.APIURL, cfg.APIKey), nil
	})
}

// remoteRPS caps requests against the upstream boundary API. The public
// DOSM mirror throttles aggressively, so stay well under its ceiling.
const remoteRPS = 4

// RemoteSource fetches boundary documents from an HTTP API.
type RemoteSource struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// NewRemoteSource creates a remote boundary source client.
func NewRemoteSource(baseURL, apiKey string) *RemoteSource {
	return &RemoteSource{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(remoteRPS), remoteRPS),
	}
}

func (s *RemoteSource) Name() string { return "remote" }

// FetchBoundaries GETs <base>/<type>.geojson. Any non-200 response or
// undecodable payload fails the whole load.
func (s *RemoteSource) FetchBoundaries(ctx context.Context, t boundary.Type) (*geojson.FeatureCollection, error) {
	if err := s.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}

	url := fmt.Sprintf("%s/%s.geojson", s.baseURL, t)
	start := time.Now()
	LogRequest(s.Name(), "GET", url)

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		LogError(s.Name(), "fetch", err)
		return nil, fmt.Errorf("boundary request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("boundary api status %d", resp.StatusCode)
		LogError(s.Name(), "fetch", err)
		return nil, err
	}

	var fc geojson.FeatureCollection
	if err := json.NewDecoder(resp.Body).Decode(&fc); err != nil {
		LogError(s.Name(), "decode", err)
		return nil, fmt.Errorf("decode boundaries: %w", err)
	}

	LogResponse(s.Name(), resp.StatusCode, time.Since(start), len(fc.Features))
	return &fc, nil
}

// HealthCheck issues a minimal HEAD request against the district document.
func (s *RemoteSource) HealthCheck(ctx context.Context) error {
	if err := s.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit: %w", err)
	}

	url := fmt.Sprintf("%s/%s.geojson", s.baseURL, boundary.District)
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if s.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.apiKey)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("health check request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check failed: status %d", resp.StatusCode)
	}

	return nil
}
