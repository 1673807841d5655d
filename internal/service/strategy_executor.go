package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"quizcraft/internal/domain"
	"quizcraft/internal/logger"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Per-strategy deadlines. Batch does the most total work and gets
// proportionally more time; quick fails fast to keep the degradation
// ladder responsive.
const (
	quickTimeout     = 15 * time.Second
	optimizedTimeout = 60 * time.Second
	batchTimeout     = 90 * time.Second
)

// StrategyExecutor performs one bounded generation attempt per strategy.
// All failures are folded into the attempt's Outcome; Execute never
// returns an error.
type StrategyExecutor struct {
	client domain.GenerationClient

	// timeouts is populated with the strategy deadlines above; tests
	// shrink them to avoid waiting out real deadlines.
	timeouts map[domain.Strategy]time.Duration
}

// NewStrategyExecutor creates an executor bound to the given client.
func NewStrategyExecutor(client domain.GenerationClient) *StrategyExecutor {
	return &StrategyExecutor{
		client: client,
		timeouts: map[domain.Strategy]time.Duration{
			domain.StrategyQuick:     quickTimeout,
			domain.StrategyOptimized: optimizedTimeout,
			domain.StrategyBatch:     batchTimeout,
		},
	}
}

// Execute runs one attempt of the given strategy. The attempt resolves
// within the strategy's deadline: a dispatch still in flight when the
// deadline elapses is recorded as a timeout and its eventual response
// is discarded.
func (e *StrategyExecutor) Execute(ctx context.Context, strategy domain.Strategy, req domain.GenerationRequest) *domain.StrategyAttempt {
	attempt := &domain.StrategyAttempt{
		Strategy:  strategy,
		StartedAt: time.Now(),
	}

	deadline := e.timeouts[strategy]
	if deadline <= 0 {
		deadline = quickTimeout
	}
	attemptCtx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	type dispatchResult struct {
		questions []domain.Question
		failed    []domain.BatchFailure
		err       error
	}
	// Buffered so a late dispatch can complete and be garbage collected
	// after the attempt has already resolved as a timeout.
	done := make(chan dispatchResult, 1)

	go func() {
		var res dispatchResult
		if strategy == domain.StrategyBatch {
			res.questions, res.failed, res.err = e.dispatchBatch(attemptCtx, req)
		} else {
			res.questions, res.err = e.client.Generate(attemptCtx, req)
		}
		done <- res
	}()

	select {
	case <-attemptCtx.Done():
		attempt.EndedAt = time.Now()
		attempt.Outcome = domain.OutcomeTimeout
		attempt.ErrMessage = domain.NewTimeoutError(strategy).Error()
		logger.Get().Warn("Generation attempt timed out",
			zap.String("strategy", string(strategy)),
			zap.Duration("deadline", deadline),
		)
		return attempt
	case res := <-done:
		attempt.EndedAt = time.Now()
		attempt.FailedBatches = res.failed
		if res.err != nil {
			if errors.Is(res.err, context.DeadlineExceeded) {
				attempt.Outcome = domain.OutcomeTimeout
				attempt.ErrMessage = domain.NewTimeoutError(strategy).Error()
			} else {
				attempt.Outcome = domain.OutcomeError
				attempt.ErrMessage = res.err.Error()
			}
			logger.Get().Warn("Generation attempt failed",
				zap.String("strategy", string(strategy)),
				zap.String("outcome", string(attempt.Outcome)),
				zap.String("error", attempt.ErrMessage),
			)
			return attempt
		}

		attempt.Outcome = domain.OutcomeSuccess
		attempt.Questions = stampProvenance(res.questions, strategy)
		logger.Get().Info("Generation attempt succeeded",
			zap.String("strategy", string(strategy)),
			zap.Int("questions", len(attempt.Questions)),
			zap.Int("failed_batches", len(attempt.FailedBatches)),
			zap.Duration("duration", attempt.Duration()),
		)
		return attempt
	}
}

// dispatchBatch plans typed sub-batches and dispatches them
// concurrently under the shared batch deadline. Partial success is
// success: an error is returned only when every sub-batch failed.
func (e *StrategyExecutor) dispatchBatch(ctx context.Context, req domain.GenerationRequest) ([]domain.Question, []domain.BatchFailure, error) {
	plan := PlanBatches(req.Count, req.Difficulty)
	if len(plan) == 0 {
		return nil, nil, fmt.Errorf("empty batch plan for count %d", req.Count)
	}

	perBatch := make([][]domain.Question, len(plan))
	var mu sync.Mutex
	var failures []domain.BatchFailure

	g, gctx := errgroup.WithContext(ctx)
	for i, spec := range plan {
		g.Go(func() error {
			subReq := req
			subReq.QuestionType = spec.Type
			subReq.Count = spec.Count
			subReq.Difficulty = spec.Difficulty

			questions, err := e.client.Generate(gctx, subReq)
			if err != nil {
				mu.Lock()
				failures = append(failures, domain.BatchFailure{Spec: spec, Message: err.Error()})
				mu.Unlock()
				// Swallow the error so sibling sub-batches keep running.
				return nil
			}
			perBatch[i] = questions
			return nil
		})
	}
	// Sub-batch errors are collected, not returned, so this only
	// surfaces context cancellation.
	if err := g.Wait(); err != nil {
		return nil, failures, err
	}

	var questions []domain.Question
	for _, qs := range perBatch {
		questions = append(questions, qs...)
	}
	if len(questions) == 0 {
		return nil, failures, fmt.Errorf("all %d sub-batches failed", len(plan))
	}
	return questions, failures, nil
}

func stampProvenance(questions []domain.Question, strategy domain.Strategy) []domain.Question {
	for i := range questions {
		questions[i].Provenance = strategy
	}
	return questions
}
