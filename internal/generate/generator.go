package generate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/kursovod/curator-bot/internal/llm"
)

// #region prompt

const systemPromptFmt = `Ты — AI-куратор курса %s. Отвечай на вопросы студентов ТОЛЬКО по приведённому контексту из материалов курса.

Правила:
- Используй только факты из контекста. Ничего не выдумывай.
- Если в контексте нет информации для ответа, прямо скажи: «В материалах курса я не нашёл информации по этому вопросу» и предложи переформулировать.
- Отвечай кратко и по делу, на русском языке, дружелюбным тоном.
- Где уместно, укажи, в каком фрагменте материалов это описано.`

// #endregion prompt

// #region generator

const (
	answerMaxTokens   = 700
	answerTemperature = 0.3
)

// Generator produces a grounded answer from a question and retrieved
// context via a single LLM call. No retries: a failure propagates to the
// orchestrator, which renders a fixed apology.
type Generator struct {
	llm    llm.Completer
	prompt string
}

// NewGenerator wires a generator for the given course.
func NewGenerator(client llm.Completer, courseName string) *Generator {
	return &Generator{
		llm:    client,
		prompt: fmt.Sprintf(systemPromptFmt, courseName),
	}
}

// Answer generates the reply text for a course question.
func (g *Generator) Answer(ctx context.Context, query, contextText string) (string, error) {
	user := fmt.Sprintf("Контекст из материалов курса:\n%s\n\nВопрос студента: %s", contextText, query)

	raw, err := g.llm.Complete(ctx, g.prompt, user, answerMaxTokens, answerTemperature, false)
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}
	answer := strings.TrimSpace(raw)
	if answer == "" {
		return "", errors.New("generate answer: empty completion")
	}
	return answer, nil
}

// #endregion generator
