package service

import (
	"fmt"

	"quizcraft/internal/domain"
	"quizcraft/internal/util"
)

// fallbackTemplate is one placeholder question blueprint. The generator
// cycles through the set until the requested count is reached.
type fallbackTemplate struct {
	qType         domain.QuestionType
	prompt        string
	options       []string
	correctAnswer string
	explanation   string
}

var fallbackTemplates = []fallbackTemplate{
	{
		qType:         domain.QuestionTypeMultipleChoice,
		prompt:        "阅读材料后,下列关于本节内容的说法哪一项是正确的?",
		options:       []string{"A. 概念A与概念B等价", "B. 概念A是概念B的特例", "C. 概念A与概念B无关", "D. 以上说法都不对"},
		correctAnswer: "B",
		explanation:   "请结合教材原文核对各选项的表述。",
	},
	{
		qType:         domain.QuestionTypeFillBlank,
		prompt:        "本节材料的核心概念是____,它的主要作用是____。",
		correctAnswer: "(参考材料关键段落作答)",
		explanation:   "答案应覆盖材料中定义该概念的句子。",
	},
	{
		qType:         domain.QuestionTypeEssay,
		prompt:        "请简述本节材料的主要观点,并举例说明其应用场景。",
		correctAnswer: "(开放性问题,言之有理即可)",
		explanation:   "评分时关注要点覆盖程度与论证逻辑。",
	},
	{
		qType:         domain.QuestionTypeMultipleChoice,
		prompt:        "根据材料,下列哪个例子最能体现本节讨论的原理?",
		options:       []string{"A. 示例一", "B. 示例二", "C. 示例三", "D. 示例四"},
		correctAnswer: "A",
		explanation:   "对照材料中给出的典型示例进行判断。",
	},
	{
		qType:         domain.QuestionTypeFillBlank,
		prompt:        "材料中提到的关键步骤依次是:____、____、____。",
		correctAnswer: "(按材料顺序填写)",
		explanation:   "注意步骤的先后顺序不能颠倒。",
	},
}

// FallbackTemplateGenerator is the terminal rung of the degradation
// ladder: synchronous, local, and incapable of failing. Quality is
// degraded, availability is not.
type FallbackTemplateGenerator struct{}

// NewFallbackTemplateGenerator creates the generator.
func NewFallbackTemplateGenerator() *FallbackTemplateGenerator {
	return &FallbackTemplateGenerator{}
}

// Generate returns exactly count placeholder questions tagged with
// fallback provenance, cycling through the template set. A requested
// type other than mixed filters the cycle to matching templates.
// Non-positive counts yield an empty slice.
func (g *FallbackTemplateGenerator) Generate(req domain.GenerationRequest) []domain.Question {
	if req.Count <= 0 {
		return []domain.Question{}
	}

	templates := fallbackTemplates
	if req.QuestionType != domain.QuestionTypeMixed && req.QuestionType.IsValid() {
		var filtered []fallbackTemplate
		for _, tpl := range fallbackTemplates {
			if tpl.qType == req.QuestionType {
				filtered = append(filtered, tpl)
			}
		}
		if len(filtered) > 0 {
			templates = filtered
		}
	}

	questions := make([]domain.Question, 0, req.Count)
	for i := 0; i < req.Count; i++ {
		tpl := templates[i%len(templates)]
		questions = append(questions, domain.Question{
			ID:            util.NewULID(),
			Type:          tpl.qType,
			Prompt:        fmt.Sprintf("[练习 %d] %s", i+1, tpl.prompt),
			Options:       tpl.options,
			CorrectAnswer: tpl.correctAnswer,
			Explanation:   tpl.explanation,
			Provenance:    domain.StrategyFallback,
		})
	}
	return questions
}
