package domain

import (
	"time"
)

// Strategy names one of the generation approaches. Each strategy binds
// its own deadline and payload shape.
type Strategy string

const (
	StrategyQuick     Strategy = "quick"
	StrategyOptimized Strategy = "optimized"
	StrategyBatch     Strategy = "batch"
	StrategyFallback  Strategy = "fallback"
)

// IsValid reports whether s is a strategy a caller may force.
// StrategyFallback is reachable only through degradation, never by request.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyQuick, StrategyOptimized, StrategyBatch:
		return true
	}
	return false
}

// QuestionType enumerates the kinds of questions the generator produces.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "multiple-choice"
	QuestionTypeFillBlank      QuestionType = "fill-blank"
	QuestionTypeEssay          QuestionType = "essay"
	QuestionTypeMixed          QuestionType = "mixed"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case QuestionTypeMultipleChoice, QuestionTypeFillBlank, QuestionTypeEssay, QuestionTypeMixed:
		return true
	}
	return false
}

// MaxQuestionCount caps a single generation request. Counts above the
// cap are clamped, not rejected.
const MaxQuestionCount = 50

// GenerationRequest describes one user-initiated generation. It is
// constructed once per request and not mutated afterwards; the ladder
// copies it when a rung needs different parameters.
type GenerationRequest struct {
	MaterialID   string
	QuestionType QuestionType
	Count        int
	Difficulty   int
	FastMode     bool
	UseCache     bool

	// Strategy, when set, overrides size-based selection.
	Strategy Strategy
}

// WithCount returns a copy of the request carrying a different count.
func (r GenerationRequest) WithCount(count int) GenerationRequest {
	r.Count = count
	return r
}

// WithFastMode returns a copy of the request with fast mode forced.
func (r GenerationRequest) WithFastMode() GenerationRequest {
	r.FastMode = true
	return r
}

// BatchSpec is one typed, sized slice of a larger batched request.
type BatchSpec struct {
	Type       QuestionType `json:"type"`
	Count      int          `json:"count"`
	Difficulty int          `json:"difficulty"`
}

// Question is a single generated question. Provenance records which
// strategy produced it, including "fallback".
type Question struct {
	ID            string       `json:"id"`
	Type          QuestionType `json:"type"`
	Prompt        string       `json:"prompt"`
	Options       []string     `json:"options,omitempty"`
	CorrectAnswer string       `json:"correct_answer"`
	Explanation   string       `json:"explanation,omitempty"`
	Provenance    Strategy     `json:"provenance"`
}

// AttemptOutcome tags how a single strategy attempt resolved.
type AttemptOutcome string

const (
	OutcomeSuccess AttemptOutcome = "success"
	OutcomeTimeout AttemptOutcome = "timeout"
	OutcomeError   AttemptOutcome = "error"
)

// BatchFailure records one sub-batch that did not return questions.
// A partially failed batch attempt still counts as success, but the
// failure summary is never silently dropped.
type BatchFailure struct {
	Spec    BatchSpec `json:"spec"`
	Message string    `json:"message"`
}

// StrategyAttempt is the uniform result of one bounded generation
// attempt. Failures are captured in Outcome, never raised past the
// executor boundary.
type StrategyAttempt struct {
	Strategy      Strategy
	StartedAt     time.Time
	EndedAt       time.Time
	Outcome       AttemptOutcome
	Questions     []Question
	ErrMessage    string
	FailedBatches []BatchFailure
}

// Duration is the wall-clock delta between start and resolution.
func (a *StrategyAttempt) Duration() time.Duration {
	return a.EndedAt.Sub(a.StartedAt)
}

// Succeeded reports whether the attempt may halt the degradation
// ladder: outcome success with at least one question.
func (a *StrategyAttempt) Succeeded() bool {
	return a.Outcome == OutcomeSuccess && len(a.Questions) > 0
}

// GenerationMetadata describes how a result was produced.
type GenerationMetadata struct {
	Mode          Strategy       `json:"mode"`
	DurationMs    int64          `json:"duration_ms"`
	FromCache     bool           `json:"from_cache,omitempty"`
	FailedBatches []BatchFailure `json:"failed_batches,omitempty"`
}

// GenerationResult is the terminal value returned to the caller.
// Success is always true: the ladder absorbs every failure and at worst
// degrades to template questions, surfacing the degradation through
// Metadata.Mode rather than an error.
type GenerationResult struct {
	Success   bool               `json:"success"`
	Questions []Question         `json:"questions"`
	Metadata  GenerationMetadata `json:"metadata"`
}

// ProgressReporter receives advisory phase notifications while the
// ladder runs. Implementations must not block; a nil reporter is valid.
type ProgressReporter interface {
	Report(phase string)
}
