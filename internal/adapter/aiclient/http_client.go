package aiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"quizcraft/internal/domain"

	"go.uber.org/zap"
)

// generateRequest is the wire shape of one generation dispatch.
type generateRequest struct {
	MaterialID   string `json:"material_id"`
	QuestionType string `json:"questionType"`
	Count        int    `json:"count"`
	Difficulty   int    `json:"difficulty"`
	FastMode     bool   `json:"fastMode"`
	UseCache     bool   `json:"useCache"`
}

// serviceResponse is the envelope every generator endpoint returns.
type serviceResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
	Data    *struct {
		Questions []domain.Question `json:"questions"`
		Summary   map[string]any    `json:"summary,omitempty"`
	} `json:"data,omitempty"`
}

// HTTPGenerationClient implements domain.GenerationClient against the
// remote AI generation service.
type HTTPGenerationClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

// NewHTTPGenerationClient creates a client for the given base URL.
// The http.Client carries no timeout of its own: each call is bounded
// by the caller's context so the executor controls the deadline.
func NewHTTPGenerationClient(baseURL string, logger *zap.Logger) (*HTTPGenerationClient, error) {
	if baseURL == "" {
		return nil, fmt.Errorf("generation service base URL cannot be empty")
	}
	return &HTTPGenerationClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{},
		logger:     logger,
	}, nil
}

// Generate implements domain.GenerationClient.
func (c *HTTPGenerationClient) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.Question, error) {
	payload := generateRequest{
		MaterialID:   req.MaterialID,
		QuestionType: string(req.QuestionType),
		Count:        req.Count,
		Difficulty:   req.Difficulty,
		FastMode:     req.FastMode,
		UseCache:     req.UseCache,
	}

	var resp serviceResponse
	if err := c.postJSON(ctx, "/generate", payload, &resp); err != nil {
		return nil, err
	}

	if !resp.Success {
		msg := resp.Message
		if msg == "" {
			msg = "generation service reported failure"
		}
		return nil, domain.NewServiceError(msg, nil)
	}
	if resp.Data == nil || len(resp.Data.Questions) == 0 {
		return nil, domain.NewServiceError("generation service returned no questions", nil)
	}

	// Provenance is stamped by the executor, which knows which
	// strategy issued the dispatch.
	return resp.Data.Questions, nil
}

// CheckHealth implements domain.GenerationClient.
func (c *HTTPGenerationClient) CheckHealth(ctx context.Context) error {
	var resp serviceResponse
	if err := c.getJSON(ctx, "/health", &resp); err != nil {
		return err
	}
	if !resp.Success {
		return domain.NewServiceError("generation service reported unavailable", nil)
	}
	return nil
}

// ClearCache implements domain.GenerationClient.
func (c *HTTPGenerationClient) ClearCache(ctx context.Context) error {
	var resp serviceResponse
	if err := c.postJSON(ctx, "/cache/clear", struct{}{}, &resp); err != nil {
		return err
	}
	if !resp.Success {
		return domain.NewServiceError("cache clear rejected by generation service", nil)
	}
	return nil
}

// GetCacheStats implements domain.GenerationClient.
func (c *HTTPGenerationClient) GetCacheStats(ctx context.Context) (*domain.CacheStats, error) {
	var resp struct {
		Success bool           `json:"success"`
		Message string         `json:"message,omitempty"`
		Data    map[string]any `json:"data,omitempty"`
	}
	if err := c.getJSON(ctx, "/cache/stats", &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, domain.NewServiceError("cache stats rejected by generation service", nil)
	}

	stats := &domain.CacheStats{Extra: resp.Data}
	if entries, ok := resp.Data["entries"].(float64); ok {
		stats.Entries = int(entries)
	}
	return stats, nil
}

func (c *HTTPGenerationClient) postJSON(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return domain.NewInternalError("failed to encode request payload", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return domain.NewInternalError("failed to build request", err)
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *HTTPGenerationClient) getJSON(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return domain.NewInternalError("failed to build request", err)
	}
	return c.do(req, out)
}

func (c *HTTPGenerationClient) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Context expiry surfaces here; let the executor classify it.
		if ctxErr := req.Context().Err(); ctxErr != nil {
			return ctxErr
		}
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	if resp.StatusCode >= http.StatusInternalServerError {
		return domain.NewServiceError(fmt.Sprintf("generation service returned status %d", resp.StatusCode), nil)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		c.logger.Warn("Malformed response from generation service",
			zap.String("path", req.URL.Path),
			zap.Int("status", resp.StatusCode),
			zap.Error(err),
		)
		return domain.NewServiceError("malformed response from generation service", err)
	}
	return nil
}

var _ domain.GenerationClient = (*HTTPGenerationClient)(nil)
