package service

import (
	"math"

	"quizcraft/internal/domain"
)

// Batch allocation shares. Half the request goes to multiple-choice,
// roughly a third to fill-blank, and whatever remains to essay.
const (
	choiceShare    = 0.5
	fillBlankShare = 0.3
)

// PlanBatches decomposes totalCount into typed sub-batches whose counts
// sum to exactly totalCount. Choice and fill-blank shares round up and
// the essay batch absorbs the remainder, so rounding can never lose or
// duplicate questions. A non-positive remainder omits the essay batch
// instead of emitting a zero or negative count.
func PlanBatches(totalCount int, difficulty int) []domain.BatchSpec {
	if totalCount <= 0 {
		return nil
	}

	choiceCount := int(math.Ceil(float64(totalCount) * choiceShare))
	fillBlankCount := int(math.Ceil(float64(totalCount) * fillBlankShare))
	// The fill-blank share can overshoot what is left after choice on
	// tiny totals (totalCount=1 rounds both shares up to 1).
	if fillBlankCount > totalCount-choiceCount {
		fillBlankCount = totalCount - choiceCount
	}
	essayCount := totalCount - choiceCount - fillBlankCount

	plan := []domain.BatchSpec{
		{Type: domain.QuestionTypeMultipleChoice, Count: choiceCount, Difficulty: difficulty},
	}
	if fillBlankCount > 0 {
		plan = append(plan, domain.BatchSpec{Type: domain.QuestionTypeFillBlank, Count: fillBlankCount, Difficulty: difficulty})
	}
	if essayCount > 0 {
		plan = append(plan, domain.BatchSpec{Type: domain.QuestionTypeEssay, Count: essayCount, Difficulty: difficulty})
	}
	return plan
}
