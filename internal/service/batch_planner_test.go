package service

import (
	"testing"

	"quizcraft/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlanBatches_SumInvariant(t *testing.T) {
	// Counts must sum to exactly the requested total for every size;
	// the essay remainder absorbs all rounding.
	for total := 1; total <= domain.MaxQuestionCount; total++ {
		plan := PlanBatches(total, 3)
		sum := 0
		for _, spec := range plan {
			assert.Positive(t, spec.Count, "total=%d emitted a non-positive batch", total)
			sum += spec.Count
		}
		assert.Equal(t, total, sum, "total=%d", total)
	}
}

func TestPlanBatches_FortyQuestions(t *testing.T) {
	plan := PlanBatches(40, 2)
	require.Len(t, plan, 3)

	assert.Equal(t, domain.QuestionTypeMultipleChoice, plan[0].Type)
	assert.Equal(t, 20, plan[0].Count)
	assert.Equal(t, domain.QuestionTypeFillBlank, plan[1].Type)
	assert.Equal(t, 12, plan[1].Count)
	assert.Equal(t, domain.QuestionTypeEssay, plan[2].Type)
	assert.Equal(t, 8, plan[2].Count)

	for _, spec := range plan {
		assert.Equal(t, 2, spec.Difficulty)
	}
}

func TestPlanBatches_SingleQuestion(t *testing.T) {
	plan := PlanBatches(1, 1)
	require.Len(t, plan, 1)
	assert.Equal(t, domain.QuestionTypeMultipleChoice, plan[0].Type)
	assert.Equal(t, 1, plan[0].Count)
}

func TestPlanBatches_SmallTotalsOmitEmptyBatches(t *testing.T) {
	// total=2: essay remainder is zero and must be omitted, not emitted
	// as a zero-count batch.
	plan := PlanBatches(2, 1)
	require.Len(t, plan, 2)
	assert.Equal(t, 1, plan[0].Count)
	assert.Equal(t, 1, plan[1].Count)
}

func TestPlanBatches_NonPositiveTotal(t *testing.T) {
	assert.Nil(t, PlanBatches(0, 1))
	assert.Nil(t, PlanBatches(-3, 1))
}
