package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
	"quizcraft/internal/middleware"
	"quizcraft/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockGenerationService is a mock implementation of service.GenerationService
type MockGenerationService struct {
	mock.Mock
}

func (m *MockGenerationService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GenerationResult), args.Error(1)
}

// MockGenerationClient is a mock implementation of domain.GenerationClient
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

// MockResultCacheService is a mock implementation of service.ResultCacheService
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

func newGenerationTestApp(svc *MockGenerationService) *fiber.App {
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	handler := NewGenerationHandler(svc, validation.NewValidator())
	app.Post("/api/generate", handler.Generate)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, payload any) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestGenerate_Handler_Success(t *testing.T) {
	mockService := new(MockGenerationService)
	app := newGenerationTestApp(mockService)

	mockService.On("Generate", mock.Anything, mock.MatchedBy(func(req domain.GenerationRequest) bool {
		return req.MaterialID == "mat-1" && req.Count == 10
	})).Return(&domain.GenerationResult{
		Success: true,
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionTypeMultipleChoice, Prompt: "1+1=?", Provenance: domain.StrategyQuick},
		},
		Metadata: domain.GenerationMetadata{Mode: domain.StrategyQuick, DurationMs: 42},
	}, nil).Once()

	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{
		MaterialID:   "mat-1",
		QuestionType: "mixed",
		Count:        10,
		Difficulty:   3,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "quick", body.Metadata.Mode)
	assert.Len(t, body.Questions, 1)
	mockService.AssertExpectations(t)
}

// A degraded run is still HTTP 200; the mode field carries the story.
func TestGenerate_Handler_DegradedIsStillOK(t *testing.T) {
	mockService := new(MockGenerationService)
	app := newGenerationTestApp(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).Return(&domain.GenerationResult{
		Success: true,
		Questions: []domain.Question{
			{ID: "q1", Type: domain.QuestionTypeEssay, Prompt: "试题", Provenance: domain.StrategyFallback},
		},
		Metadata: domain.GenerationMetadata{Mode: domain.StrategyFallback},
	}, nil).Once()

	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{
		MaterialID:   "mat-1",
		QuestionType: "essay",
		Count:        1,
	})
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body dto.GenerateResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, "fallback", body.Metadata.Mode)
}

func TestGenerate_Handler_ValidationFailure(t *testing.T) {
	mockService := new(MockGenerationService)
	app := newGenerationTestApp(mockService)

	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{
		MaterialID:   "",
		QuestionType: "mixed",
		Count:        0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, string(domain.CodeValidation), body["code"])
	assert.Len(t, body["errors"], 2)
	mockService.AssertNotCalled(t, "Generate", mock.Anything, mock.Anything)
}

func TestGenerate_Handler_MalformedBody(t *testing.T) {
	mockService := new(MockGenerationService)
	app := newGenerationTestApp(mockService)

	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGenerate_Handler_ServiceError(t *testing.T) {
	mockService := new(MockGenerationService)
	app := newGenerationTestApp(mockService)

	mockService.On("Generate", mock.Anything, mock.Anything).
		Return(nil, errors.New("unexpected")).Once()

	resp := postJSON(t, app, "/api/generate", dto.GenerateRequest{
		MaterialID:   "mat-1",
		QuestionType: "mixed",
		Count:        5,
	})
	assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
