package dto

import "quizcraft/internal/domain"

// GenerateRequest is the request body for POST /api/generate
// @Description Parameters for one quiz generation run
type GenerateRequest struct {
	MaterialID   string `json:"material_id"`
	QuestionType string `json:"question_type"`
	Count        int    `json:"count"`
	Difficulty   int    `json:"difficulty"`
	FastMode     bool   `json:"fast_mode"`
	UseCache     bool   `json:"use_cache"`
	Strategy     string `json:"strategy,omitempty"` // optional: forces a strategy instead of size-based selection
}

// ToDomain maps the request body onto the domain request.
func (r *GenerateRequest) ToDomain() domain.GenerationRequest {
	return domain.GenerationRequest{
		MaterialID:   r.MaterialID,
		QuestionType: domain.QuestionType(r.QuestionType),
		Count:        r.Count,
		Difficulty:   r.Difficulty,
		FastMode:     r.FastMode,
		UseCache:     r.UseCache,
		Strategy:     domain.Strategy(r.Strategy),
	}
}

// GenerateResponse is the response body for POST /api/generate
type GenerateResponse struct {
	Success   bool              `json:"success"`
	Questions []domain.Question `json:"questions"`
	Metadata  MetadataResponse  `json:"metadata"`
}

// MetadataResponse describes how the result was produced
type MetadataResponse struct {
	Mode          string                `json:"mode"`
	DurationMs    int64                 `json:"duration_ms"`
	FromCache     bool                  `json:"from_cache,omitempty"`
	FailedBatches []domain.BatchFailure `json:"failed_batches,omitempty"`
}

// HealthResponse is the response body for GET /api/health
type HealthResponse struct {
	Available     bool   `json:"available"`
	LastCheckedAt string `json:"last_checked_at,omitempty"`
	Message       string `json:"message,omitempty"`
}

// CacheClearResponse is the response body for POST /api/cache/clear
type CacheClearResponse struct {
	ClearedLocal  int  `json:"cleared_local"`
	RemoteCleared bool `json:"remote_cleared"`
}

// CacheStatsResponse is the response body for GET /api/cache/stats
type CacheStatsResponse struct {
	LocalEntries  int            `json:"local_entries"`
	RemoteEntries int            `json:"remote_entries"`
	RemoteExtra   map[string]any `json:"remote_extra,omitempty"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error string `json:"error"`
}
