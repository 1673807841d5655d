package service

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"quizcraft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testCacheRequest() domain.GenerationRequest {
	return domain.GenerationRequest{
		MaterialID:   "mat-1",
		QuestionType: domain.QuestionTypeMixed,
		Count:        10,
		Difficulty:   3,
	}
}

func TestResultCache_GetResult_Miss(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, time.Hour)

	mockCache.On("Get", mock.Anything, "quizcraft:generation:result:mat-1:mixed_10_3").
		Return("", domain.ErrCacheMiss).Once()

	result, err := svc.GetResult(context.Background(), testCacheRequest())
	assert.NoError(t, err)
	assert.Nil(t, result)
	mockCache.AssertExpectations(t)
}

func TestResultCache_GetResult_HitMarksFromCache(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, time.Hour)

	stored := domain.GenerationResult{
		Success:   true,
		Questions: sampleQuestions(10, domain.QuestionTypeMultipleChoice),
		Metadata:  domain.GenerationMetadata{Mode: domain.StrategyQuick},
	}
	raw, err := json.Marshal(stored)
	require.NoError(t, err)

	mockCache.On("Get", mock.Anything, mock.Anything).Return(string(raw), nil).Once()

	result, err := svc.GetResult(context.Background(), testCacheRequest())
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.Metadata.FromCache)
	assert.Equal(t, domain.StrategyQuick, result.Metadata.Mode)
	assert.Len(t, result.Questions, 10)
	mockCache.AssertExpectations(t)
}

// A corrupt entry is treated as a miss and evicted, never surfaced.
func TestResultCache_GetResult_CorruptEntryDropped(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, time.Hour)

	mockCache.On("Get", mock.Anything, mock.Anything).Return("not-json{", nil).Once()
	mockCache.On("Delete", mock.Anything, mock.Anything).Return(nil).Once()

	result, err := svc.GetResult(context.Background(), testCacheRequest())
	assert.NoError(t, err)
	assert.Nil(t, result)
	mockCache.AssertExpectations(t)
}

func TestResultCache_PutResult_StoresWithTTL(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, 30*time.Minute)

	result := &domain.GenerationResult{
		Success:   true,
		Questions: sampleQuestions(10, domain.QuestionTypeMultipleChoice),
		Metadata:  domain.GenerationMetadata{Mode: domain.StrategyQuick},
	}
	mockCache.On("Set", mock.Anything, "quizcraft:generation:result:mat-1:mixed_10_3", mock.Anything, 30*time.Minute).
		Return(nil).Once()

	err := svc.PutResult(context.Background(), testCacheRequest(), result)
	assert.NoError(t, err)
	mockCache.AssertExpectations(t)
}

func TestResultCache_PutResult_SkipsFallbackResults(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, time.Hour)

	result := &domain.GenerationResult{
		Success:   true,
		Questions: sampleQuestions(5, domain.QuestionTypeMultipleChoice),
		Metadata:  domain.GenerationMetadata{Mode: domain.StrategyFallback},
	}

	err := svc.PutResult(context.Background(), testCacheRequest(), result)
	assert.NoError(t, err)
	mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestResultCache_ClearAndStats(t *testing.T) {
	mockCache := new(MockCache)
	svc := NewResultCacheService(mockCache, time.Hour)

	mockCache.On("DeleteByPattern", mock.Anything, "quizcraft:generation:result:*").Return(7, nil).Once()
	mockCache.On("CountByPattern", mock.Anything, "quizcraft:generation:result:*").Return(4, nil).Once()

	deleted, err := svc.Clear(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 7, deleted)

	count, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
	mockCache.AssertExpectations(t)
}

func TestResultCache_NilCacheIsInert(t *testing.T) {
	svc := NewResultCacheService(nil, time.Hour)

	result, err := svc.GetResult(context.Background(), testCacheRequest())
	assert.NoError(t, err)
	assert.Nil(t, result)

	assert.NoError(t, svc.PutResult(context.Background(), testCacheRequest(), &domain.GenerationResult{}))

	deleted, err := svc.Clear(context.Background())
	assert.NoError(t, err)
	assert.Zero(t, deleted)
}
