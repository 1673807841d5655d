package aiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"quizcraft/internal/domain"
	"quizcraft/internal/util"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"go.uber.org/zap"
)

// OllamaGenerationClient implements domain.GenerationClient against a
// locally hosted model via langchaingo. It is selected instead of the
// remote HTTP service when generator.source is "ollama".
type OllamaGenerationClient struct {
	llm       *ollama.LLM
	serverURL string
	logger    *zap.Logger
}

// NewOllamaGenerationClient creates a client for the given ollama server.
func NewOllamaGenerationClient(serverURL, model string, logger *zap.Logger) (*OllamaGenerationClient, error) {
	if serverURL == "" {
		return nil, fmt.Errorf("ollama server URL cannot be empty")
	}
	if model == "" {
		return nil, fmt.Errorf("ollama model name cannot be empty")
	}

	llm, err := ollama.New(ollama.WithServerURL(serverURL), ollama.WithModel(model))
	if err != nil {
		return nil, fmt.Errorf("failed to create ollama client: %w", err)
	}

	logger.Info("Initialized ollama generation client",
		zap.String("server_url", serverURL),
		zap.String("model", model),
	)
	return &OllamaGenerationClient{llm: llm, serverURL: strings.TrimRight(serverURL, "/"), logger: logger}, nil
}

// generatedQuestion is the JSON object the model is asked to emit.
type generatedQuestion struct {
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	CorrectAnswer string   `json:"correct_answer"`
	Explanation   string   `json:"explanation,omitempty"`
}

// Generate implements domain.GenerationClient.
func (c *OllamaGenerationClient) Generate(ctx context.Context, req domain.GenerationRequest) ([]domain.Question, error) {
	prompt := buildPrompt(req)

	response, err := c.llm.Call(ctx, prompt, llms.WithTemperature(0.4))
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, ctxErr
		}
		return nil, domain.NewServiceError("ollama call failed", err)
	}

	raw := extractJSONArray(response)
	var generated []generatedQuestion
	if err := json.Unmarshal([]byte(raw), &generated); err != nil {
		c.logger.Warn("Failed to parse model output as question array",
			zap.Error(err),
			zap.String("response", response),
		)
		return nil, domain.NewServiceError("malformed model output", err)
	}
	if len(generated) == 0 {
		return nil, domain.NewServiceError("model returned no questions", nil)
	}

	questions := make([]domain.Question, 0, len(generated))
	for _, g := range generated {
		if g.Prompt == "" || g.CorrectAnswer == "" {
			c.logger.Warn("Skipping incomplete generated question", zap.Any("question", g))
			continue
		}
		qType := domain.QuestionType(g.Type)
		if !qType.IsValid() || qType == domain.QuestionTypeMixed {
			qType = req.QuestionType
		}
		questions = append(questions, domain.Question{
			ID:            util.NewULID(),
			Type:          qType,
			Prompt:        g.Prompt,
			Options:       g.Options,
			CorrectAnswer: g.CorrectAnswer,
			Explanation:   g.Explanation,
		})
	}
	if len(questions) == 0 {
		return nil, domain.NewServiceError("model produced only incomplete questions", nil)
	}
	return questions, nil
}

// CheckHealth implements domain.GenerationClient. Ollama exposes a
// cheap version endpoint; a full model call would be too expensive for
// a periodic probe.
func (c *OllamaGenerationClient) CheckHealth(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.serverURL+"/api/version", nil)
	if err != nil {
		return domain.NewInternalError("failed to build health request", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return domain.NewNetworkError(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return domain.NewServiceError(fmt.Sprintf("ollama returned status %d", resp.StatusCode), nil)
	}
	return nil
}

// ClearCache implements domain.GenerationClient. The local backend
// keeps no content-fingerprint cache, so this is a no-op.
func (c *OllamaGenerationClient) ClearCache(ctx context.Context) error {
	return nil
}

// GetCacheStats implements domain.GenerationClient.
func (c *OllamaGenerationClient) GetCacheStats(ctx context.Context) (*domain.CacheStats, error) {
	return &domain.CacheStats{}, nil
}

func buildPrompt(req domain.GenerationRequest) string {
	typeInstruction := string(req.QuestionType)
	if req.QuestionType == domain.QuestionTypeMixed {
		typeInstruction = "a mix of multiple-choice, fill-blank and essay"
	}
	detail := "Include a short explanation for each answer."
	if req.FastMode {
		detail = "Keep answers terse; skip explanations."
	}

	return fmt.Sprintf(`You are an expert quiz generator. Create %d %s questions at difficulty level %d (1=easiest, 5=hardest) about the study material identified as "%s".

Respond with ONLY a JSON array. Each element must have this shape:
{
  "type": "multiple-choice" | "fill-blank" | "essay",
  "prompt": "the question text",
  "options": ["A", "B", "C", "D"],
  "correct_answer": "the answer",
  "explanation": "why the answer is correct"
}

Rules:
1. "options" is required for multiple-choice questions and must be omitted otherwise.
2. %s
3. The array must contain exactly %d elements.`,
		req.Count, typeInstruction, req.Difficulty, req.MaterialID, detail, req.Count)
}

// extractJSONArray trims any prose the model wraps around the array.
func extractJSONArray(response string) string {
	start := strings.Index(response, "[")
	end := strings.LastIndex(response, "]")
	if start >= 0 && end > start {
		return response[start : end+1]
	}
	return response
}

var _ domain.GenerationClient = (*OllamaGenerationClient)(nil)
