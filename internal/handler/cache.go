package handler

import (
	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/logger"
	"quizcraft/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// CacheHandler handles cache administration requests. These are
// pass-through operations outside the generation critical path.
type CacheHandler struct {
	client      domain.GenerationClient
	resultCache service.ResultCacheService
}

// NewCacheHandler creates a new CacheHandler instance
func NewCacheHandler(client domain.GenerationClient, resultCache service.ResultCacheService) *CacheHandler {
	return &CacheHandler{
		client:      client,
		resultCache: resultCache,
	}
}

// ClearCache godoc
// @Summary Clear generation caches
// @Description Clears the local result cache and asks the generation service to drop its own cache
// @Tags cache
// @Produce json
// @Success 200 {object} dto.CacheClearResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /cache/clear [post]
func (h *CacheHandler) ClearCache(c *fiber.Ctx) error {
	ctx := c.UserContext()

	cleared := 0
	if h.resultCache != nil {
		var err error
		cleared, err = h.resultCache.Clear(ctx)
		if err != nil {
			logger.Get().Error("Failed to clear local result cache", zap.Error(err))
			return domain.NewError(domain.CodeCacheError, "failed to clear local result cache", err)
		}
	}

	remoteCleared := true
	if err := h.client.ClearCache(ctx); err != nil {
		// The remote side being down should not hide that the local
		// cache was cleared.
		logger.Get().Warn("Failed to clear remote generation cache", zap.Error(err))
		remoteCleared = false
	}

	return c.JSON(dto.CacheClearResponse{
		ClearedLocal:  cleared,
		RemoteCleared: remoteCleared,
	})
}

// GetCacheStats godoc
// @Summary Generation cache statistics
// @Description Returns local result-cache counters merged with the generation service's own stats
// @Tags cache
// @Produce json
// @Success 200 {object} dto.CacheStatsResponse
// @Router /cache/stats [get]
func (h *CacheHandler) GetCacheStats(c *fiber.Ctx) error {
	ctx := c.UserContext()

	local := 0
	if h.resultCache != nil {
		var err error
		local, err = h.resultCache.Stats(ctx)
		if err != nil {
			logger.Get().Error("Failed to read local result cache stats", zap.Error(err))
			return domain.NewError(domain.CodeCacheError, "failed to read local result cache stats", err)
		}
	}

	resp := dto.CacheStatsResponse{LocalEntries: local}
	if stats, err := h.client.GetCacheStats(ctx); err != nil {
		logger.Get().Warn("Failed to read remote cache stats", zap.Error(err))
	} else {
		resp.RemoteEntries = stats.Entries
		resp.RemoteExtra = stats.Extra
	}

	return c.JSON(resp)
}
