package handler

import (
	"quizcraft/internal/dto"
	"quizcraft/internal/logger"
	"quizcraft/internal/service"
	"quizcraft/internal/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// GenerationHandler handles quiz generation HTTP requests
type GenerationHandler struct {
	service   service.GenerationService
	validator *validation.Validator
}

// NewGenerationHandler creates a new GenerationHandler instance
func NewGenerationHandler(svc service.GenerationService, validator *validation.Validator) *GenerationHandler {
	return &GenerationHandler{
		service:   svc,
		validator: validator,
	}
}

// Generate godoc
// @Summary Generate quiz questions for a material
// @Description Dispatches an adaptive generation run; degraded results are reported via metadata.mode, never as an error
// @Tags generation
// @Accept json
// @Produce json
// @Param request body dto.GenerateRequest true "Generation parameters"
// @Success 200 {object} dto.GenerateResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 500 {object} middleware.ErrorResponse
// @Router /generate [post]
func (h *GenerationHandler) Generate(c *fiber.Ctx) error {
	var req dto.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: "INVALID_REQUEST_BODY",
		})
	}

	if errs := h.validator.ValidateGenerateRequest(&req); len(errs) > 0 {
		return errs
	}

	result, err := h.service.Generate(c.UserContext(), req.ToDomain())
	if err != nil {
		logger.Get().Error("Generation failed before dispatch",
			zap.Error(err),
			zap.String("material_id", req.MaterialID),
		)
		return err
	}

	return c.JSON(dto.GenerateResponse{
		Success:   result.Success,
		Questions: result.Questions,
		Metadata: dto.MetadataResponse{
			Mode:          string(result.Metadata.Mode),
			DurationMs:    result.Metadata.DurationMs,
			FromCache:     result.Metadata.FromCache,
			FailedBatches: result.Metadata.FailedBatches,
		},
	})
}
