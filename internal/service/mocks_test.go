package service

import (
	"context"
	"time"

	"quizcraft/internal/domain"

	"github.com/stretchr/testify/mock"
)

// --- MockGenerationClient ---
type MockGenerationClient struct {
	mock.Mock
}

func (m *MockGenerationClient) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.Question, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Question), args.Error(1)
}

func (m *MockGenerationClient) CheckHealth(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGenerationClient) ClearCache(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockGenerationClient) GetCacheStats(ctx context.Context) (*domain.CacheStats, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CacheStats), args.Error(1)
}

// --- MockCache ---
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) DeleteByPattern(ctx context.Context, pattern string) (int, error) {
	args := m.Called(ctx, pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockCache) CountByPattern(ctx context.Context, pattern string) (int, error) {
	args := m.Called(ctx, pattern)
	return args.Int(0), args.Error(1)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// --- MockResultCacheService ---
type MockResultCacheService struct {
	mock.Mock
}

func (m *MockResultCacheService) GetResult(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

func (m *MockResultCacheService) PutResult(ctx context.Context, req domain.GenerationRequest, result *domain.GenerationResult) error {
	args := m.Called(ctx, req, result)
	return args.Error(0)
}

func (m *MockResultCacheService) Clear(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockResultCacheService) Stats(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- recordingProgressReporter ---
// Collects phases synchronously; the ladder is sequential so no lock is
// needed in tests.
type recordingProgressReporter struct {
	phases []string
}

func (r *recordingProgressReporter) Report(phase string) {
	r.phases = append(r.phases, phase)
}

// --- MockStatusListener ---
type MockStatusListener struct {
	mock.Mock
}

func (m *MockStatusListener) ServiceOffline(status domain.HealthStatus) {
	m.Called(status)
}

func (m *MockStatusListener) ServiceOnline(status domain.HealthStatus) {
	m.Called(status)
}
