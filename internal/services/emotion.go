package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/desertthunder/pulse/internal/models"
	"github.com/desertthunder/pulse/internal/shared"
)

const (
	defaultMLURL     = "http://localhost:8000"
	defaultMLTimeout = 30 * time.Second
)

// EmotionService implements [Analyzer] against the ML service.
type EmotionService struct {
	baseURL    string
	timeout    time.Duration
	httpClient *http.Client
}

// NewEmotionService creates an analysis client. Zero values use http://localhost:8000, a 30s timeout
// and [http.DefaultClient].
func NewEmotionService(baseURL string, timeout time.Duration, client *http.Client) *EmotionService {
	if baseURL == "" {
		baseURL = defaultMLURL
	}
	if timeout <= 0 {
		timeout = defaultMLTimeout
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &EmotionService{
		baseURL:    strings.TrimRight(baseURL, "/"),
		timeout:    timeout,
		httpClient: client,
	}
}

// Analyze posts the request to /analyze and decodes the emotion scores.
func (e *EmotionService) Analyze(ctx context.Context, req models.AnalysisRequest) (*models.Analysis, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	data, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request: %w", err)
	}

	body, err := e.do(ctx, http.MethodPost, "/analyze", data)
	if err != nil {
		return nil, err
	}

	var analysis models.Analysis
	if err := json.Unmarshal(body, &analysis); err != nil {
		return nil, fmt.Errorf("%w: invalid analysis response: %v", shared.ErrServiceUnavailable, err)
	}
	return &analysis, nil
}

// Health performs GET /health.
func (e *EmotionService) Health(ctx context.Context) error {
	_, err := e.do(ctx, http.MethodGet, "/health", nil)
	return err
}

func (e *EmotionService) do(ctx context.Context, method, path string, data []byte) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	var reader io.Reader
	if data != nil {
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, e.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if data != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", shared.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", shared.ErrServiceUnavailable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: ml service error (%d): %s", shared.ErrServiceUnavailable, resp.StatusCode, body)
	}
	return body, nil
}
