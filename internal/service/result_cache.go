package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"quizcraft/internal/cache"
	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
)

const DefaultResultCacheTTL = time.Hour

// ResultCacheService stores finished generation results keyed by the
// request fingerprint. It sits on the client side of the remote
// service's own cache: the orchestrator only consults it when the
// request opts in via useCache, and fallback results are never stored.
type ResultCacheService interface {
	GetResult(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
	PutResult(ctx context.Context, req domain.GenerationRequest, result *domain.GenerationResult) error
	Clear(ctx context.Context) (int, error)
	Stats(ctx context.Context) (int, error)
}

// resultCacheServiceImpl implements ResultCacheService
type resultCacheServiceImpl struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewResultCacheService creates a new instance of resultCacheServiceImpl.
// A zero ttl falls back to DefaultResultCacheTTL.
func NewResultCacheService(cacheAdapter domain.Cache, ttl time.Duration) ResultCacheService {
	if ttl <= 0 {
		ttl = DefaultResultCacheTTL
	}
	return &resultCacheServiceImpl{
		cache: cacheAdapter,
		ttl:   ttl,
	}
}

// resultKey fingerprints the request parameters that determine the output.
func resultKey(req domain.GenerationRequest) string {
	return cache.GenerateCacheKey("generation", "result", req.MaterialID,
		string(req.QuestionType),
		strconv.Itoa(req.Count),
		strconv.Itoa(req.Difficulty),
	)
}

// resultKeyPattern matches every cached generation result.
func resultKeyPattern() string {
	return cache.GenerateCacheKey("generation", "result", "*")
}

// GetResult returns a previously cached result, or nil on a miss.
func (s *resultCacheServiceImpl) GetResult(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if s.cache == nil {
		return nil, nil
	}

	key := resultKey(req)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if err == domain.ErrCacheMiss {
			logger.Get().Debug("ResultCacheService: cache miss", zap.String("key", key))
			return nil, nil
		}
		logger.Get().Error("ResultCacheService: cache get failed", zap.Error(err), zap.String("key", key))
		return nil, err
	}

	var result domain.GenerationResult
	if err := json.Unmarshal([]byte(raw), &result); err != nil {
		logger.Get().Warn("ResultCacheService: failed to unmarshal cached result, dropping entry",
			zap.Error(err), zap.String("key", key))
		_ = s.cache.Delete(ctx, key)
		return nil, nil
	}

	result.Metadata.FromCache = true
	return &result, nil
}

// PutResult stores a successful, non-degraded result.
func (s *resultCacheServiceImpl) PutResult(ctx context.Context, req domain.GenerationRequest, result *domain.GenerationResult) error {
	if s.cache == nil || result == nil {
		return nil
	}
	// Placeholder questions are worthless tomorrow.
	if result.Metadata.Mode == domain.StrategyFallback {
		return nil
	}

	raw, err := json.Marshal(result)
	if err != nil {
		return domain.NewInternalError("failed to marshal generation result for cache", err)
	}

	key := resultKey(req)
	if err := s.cache.Set(ctx, key, string(raw), s.ttl); err != nil {
		logger.Get().Error("ResultCacheService: cache set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

// Clear removes every cached generation result and returns the number
// of entries removed.
func (s *resultCacheServiceImpl) Clear(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.DeleteByPattern(ctx, resultKeyPattern())
}

// Stats returns the number of cached generation results.
func (s *resultCacheServiceImpl) Stats(ctx context.Context) (int, error) {
	if s.cache == nil {
		return 0, nil
	}
	return s.cache.CountByPattern(ctx, resultKeyPattern())
}
