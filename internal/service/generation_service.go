package service

import (
	"context"
	"fmt"
	"time"

	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
)

// GenerationService is the sole public entry point for quiz generation.
// It always returns a usable result: every downstream failure is
// absorbed by the degradation ladder, and only an invalid request is
// surfaced as an error.
type GenerationService interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error)
}

// ladderRung is one attempt in the degradation sequence: a strategy
// plus the request adjustment that rung requires.
type ladderRung struct {
	strategy domain.Strategy
	adjust   func(domain.GenerationRequest) domain.GenerationRequest
}

// generationService implements GenerationService
type generationService struct {
	executor    *StrategyExecutor
	fallback    *FallbackTemplateGenerator
	resultCache ResultCacheService
	progress    domain.ProgressReporter
}

// NewGenerationService creates a new instance of generationService.
// resultCache and progress may be nil; both are optional collaborators.
func NewGenerationService(
	executor *StrategyExecutor,
	fallback *FallbackTemplateGenerator,
	resultCache ResultCacheService,
	progress domain.ProgressReporter,
) GenerationService {
	return &generationService{
		executor:    executor,
		fallback:    fallback,
		resultCache: resultCache,
		progress:    progress,
	}
}

// Generate runs the degradation ladder for one request.
//
// The ladder order is fixed. quick degrades straight to the template
// generator; optimized retries as a capped quick ask first; batch
// retries as a full-count fast-mode optimized ask, then capped quick.
// Each failure triggers exactly one downgrade, never a same-rung retry,
// and the terminal template rung cannot fail.
func (s *generationService) Generate(ctx context.Context, req domain.GenerationRequest) (*domain.GenerationResult, error) {
	if errs := validateRequest(req); len(errs) > 0 {
		return nil, errs
	}
	req = clampRequest(req)

	started := time.Now()

	if req.UseCache && s.resultCache != nil {
		cached, err := s.resultCache.GetResult(ctx, req)
		if err != nil {
			// Cache trouble never blocks generation.
			logger.Get().Warn("Result cache lookup failed, generating fresh", zap.Error(err))
		} else if cached != nil {
			logger.Get().Info("Serving generation result from cache",
				zap.String("material_id", req.MaterialID),
				zap.Int("count", req.Count),
			)
			return cached, nil
		}
	}

	initial := req.Strategy
	if !initial.IsValid() {
		initial = SelectStrategy(req.Count)
	} else {
		logger.Get().Debug("Caller forced strategy", zap.String("strategy", string(initial)))
	}

	lastReq := req
	for _, rung := range ladderFor(initial) {
		rungReq := rung.adjust(req)
		lastReq = rungReq

		s.report(fmt.Sprintf("正在使用%s模式生成 %d 道题目…", phaseLabel(rung.strategy), rungReq.Count))

		attempt := s.executor.Execute(ctx, rung.strategy, rungReq)
		if attempt.Succeeded() {
			result := &domain.GenerationResult{
				Success:   true,
				Questions: attempt.Questions,
				Metadata: domain.GenerationMetadata{
					Mode:          rung.strategy,
					DurationMs:    time.Since(started).Milliseconds(),
					FailedBatches: attempt.FailedBatches,
				},
			}
			s.storeResult(ctx, req, result)
			return result, nil
		}

		s.report(fmt.Sprintf("%s模式未成功,正在降级…", phaseLabel(rung.strategy)))
	}

	// Terminal rung: local templates, guaranteed to succeed. The count
	// is whatever the last attempted rung asked for (a capped quick
	// rung caps the fallback too).
	s.report("生成服务暂不可用,已切换为本地模板题目")
	questions := s.fallback.Generate(lastReq)
	logger.Get().Warn("Generation degraded to local templates",
		zap.String("material_id", req.MaterialID),
		zap.Int("count", len(questions)),
	)
	return &domain.GenerationResult{
		Success:   true,
		Questions: questions,
		Metadata: domain.GenerationMetadata{
			Mode:       domain.StrategyFallback,
			DurationMs: time.Since(started).Milliseconds(),
		},
	}, nil
}

// ladderFor returns the remote rungs for an initial strategy. The
// template generator is the implicit terminal rung after the slice is
// exhausted.
func ladderFor(initial domain.Strategy) []ladderRung {
	keep := func(r domain.GenerationRequest) domain.GenerationRequest { return r }
	capQuick := func(r domain.GenerationRequest) domain.GenerationRequest {
		if r.Count > quickMaxCount {
			return r.WithCount(quickMaxCount)
		}
		return r
	}
	fastOptimized := func(r domain.GenerationRequest) domain.GenerationRequest {
		return r.WithFastMode()
	}

	switch initial {
	case domain.StrategyBatch:
		return []ladderRung{
			{strategy: domain.StrategyBatch, adjust: keep},
			{strategy: domain.StrategyOptimized, adjust: fastOptimized},
			{strategy: domain.StrategyQuick, adjust: capQuick},
		}
	case domain.StrategyOptimized:
		return []ladderRung{
			{strategy: domain.StrategyOptimized, adjust: keep},
			{strategy: domain.StrategyQuick, adjust: capQuick},
		}
	default:
		return []ladderRung{
			{strategy: domain.StrategyQuick, adjust: keep},
		}
	}
}

func (s *generationService) storeResult(ctx context.Context, req domain.GenerationRequest, result *domain.GenerationResult) {
	if !req.UseCache || s.resultCache == nil {
		return
	}
	if err := s.resultCache.PutResult(ctx, req, result); err != nil {
		logger.Get().Warn("Failed to store generation result in cache", zap.Error(err))
	}
}

// report delivers a progress notification. Its absence or failure must
// never block the ladder.
func (s *generationService) report(phase string) {
	if s.progress == nil {
		return
	}
	s.progress.Report(phase)
}

func phaseLabel(strategy domain.Strategy) string {
	switch strategy {
	case domain.StrategyQuick:
		return "快速"
	case domain.StrategyOptimized:
		return "优化"
	case domain.StrategyBatch:
		return "分批"
	default:
		return "降级"
	}
}

// validateRequest enforces the InvalidRequest taxonomy: non-positive
// counts and unknown enums are rejected before any dispatch. Counts
// above the cap are clamped later, not rejected.
func validateRequest(req domain.GenerationRequest) domain.ValidationErrors {
	var errs domain.ValidationErrors
	if req.MaterialID == "" {
		errs = append(errs, domain.NewMissingFieldError("material_id"))
	}
	if req.Count <= 0 {
		errs = append(errs, domain.NewInvalidFieldError("count", "must be a positive integer"))
	}
	if !req.QuestionType.IsValid() {
		errs = append(errs, domain.NewInvalidFieldError("question_type", fmt.Sprintf("unknown question type %q", req.QuestionType)))
	}
	if req.Strategy != "" && !req.Strategy.IsValid() {
		errs = append(errs, domain.NewInvalidFieldError("strategy", fmt.Sprintf("unknown strategy %q", req.Strategy)))
	}
	return errs
}

func clampRequest(req domain.GenerationRequest) domain.GenerationRequest {
	if req.Count > domain.MaxQuestionCount {
		req.Count = domain.MaxQuestionCount
	}
	if req.Difficulty < 1 {
		req.Difficulty = 1
	}
	if req.Difficulty > 5 {
		req.Difficulty = 5
	}
	return req
}
