package domain

import "context"

// CacheStats is the shape returned by the generator's cache-admin
// endpoint, merged with local result-cache counters.
type CacheStats struct {
	Entries int            `json:"entries"`
	Extra   map[string]any `json:"extra,omitempty"`
}

// GenerationClient is the port to the downstream AI generation service.
// Implementations normalize transport and payload failures into errors;
// deadline enforcement is the executor's job via ctx.
type GenerationClient interface {
	// Generate dispatches a single-type generation request and returns
	// the questions the service produced. The batch strategy issues one
	// Generate call per BatchSpec; decomposition lives in the executor.
	Generate(ctx context.Context, req GenerationRequest) ([]Question, error)

	// CheckHealth performs one availability probe.
	CheckHealth(ctx context.Context) error

	// ClearCache asks the service to drop its content-fingerprint cache.
	ClearCache(ctx context.Context) error

	// GetCacheStats returns the service-side cache statistics.
	GetCacheStats(ctx context.Context) (*CacheStats, error)
}
