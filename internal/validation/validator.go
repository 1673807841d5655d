package validation

import (
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/dto"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateGenerateRequest validates the generation request body.
// Counts above the cap are NOT rejected here; the orchestrator clamps
// them. Only values outside the allowed domain fail validation.
func (v *Validator) ValidateGenerateRequest(req *dto.GenerateRequest) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(req.MaterialID) == "" {
		errors = append(errors, domain.NewMissingFieldError("material_id"))
	}

	if req.Count <= 0 {
		errors = append(errors, domain.NewInvalidFieldError("count", "must be a positive integer"))
	}

	if strings.TrimSpace(req.QuestionType) == "" {
		errors = append(errors, domain.NewMissingFieldError("question_type"))
	} else if !domain.QuestionType(req.QuestionType).IsValid() {
		errors = append(errors, domain.NewInvalidFieldError("question_type", "must be one of multiple-choice, fill-blank, essay, mixed"))
	}

	if req.Strategy != "" && !domain.Strategy(req.Strategy).IsValid() {
		errors = append(errors, domain.NewInvalidFieldError("strategy", "must be one of quick, optimized, batch"))
	}

	if req.Difficulty < 0 || req.Difficulty > 5 {
		errors = append(errors, domain.NewOutOfRangeError("difficulty", req.Difficulty, 0, 5))
	}

	return errors
}
