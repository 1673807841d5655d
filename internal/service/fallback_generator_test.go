package service

import (
	"testing"

	"quizcraft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallbackTemplateGenerator_CountFidelity(t *testing.T) {
	gen := NewFallbackTemplateGenerator()

	questions := gen.Generate(domain.GenerationRequest{
		QuestionType: domain.QuestionTypeMixed,
		Count:        20,
	})
	require.Len(t, questions, 20)

	seen := make(map[string]bool)
	for _, q := range questions {
		assert.Equal(t, domain.StrategyFallback, q.Provenance)
		assert.NotEmpty(t, q.Prompt)
		assert.False(t, seen[q.ID], "duplicate question id %s", q.ID)
		seen[q.ID] = true
	}

	// The template set cycles: with 20 questions and 5 templates, the
	// first and sixth share a template but not a prompt prefix or id.
	assert.Equal(t, questions[0].Type, questions[5].Type)
	assert.NotEqual(t, questions[0].Prompt, questions[5].Prompt)
}

func TestFallbackTemplateGenerator_TypeFilter(t *testing.T) {
	gen := NewFallbackTemplateGenerator()

	questions := gen.Generate(domain.GenerationRequest{
		QuestionType: domain.QuestionTypeEssay,
		Count:        4,
	})
	require.Len(t, questions, 4)
	for _, q := range questions {
		assert.Equal(t, domain.QuestionTypeEssay, q.Type)
	}
}

func TestFallbackTemplateGenerator_MultipleChoiceHasOptions(t *testing.T) {
	gen := NewFallbackTemplateGenerator()

	questions := gen.Generate(domain.GenerationRequest{
		QuestionType: domain.QuestionTypeMultipleChoice,
		Count:        3,
	})
	require.Len(t, questions, 3)
	for _, q := range questions {
		assert.NotEmpty(t, q.Options)
		assert.NotEmpty(t, q.CorrectAnswer)
	}
}

func TestFallbackTemplateGenerator_NonPositiveCount(t *testing.T) {
	gen := NewFallbackTemplateGenerator()

	assert.Empty(t, gen.Generate(domain.GenerationRequest{QuestionType: domain.QuestionTypeMixed, Count: 0}))
	assert.Empty(t, gen.Generate(domain.GenerationRequest{QuestionType: domain.QuestionTypeMixed, Count: -1}))
}
