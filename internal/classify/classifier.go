package classify

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/kursovod/curator-bot/internal/llm"
)

// #region prompt

const systemPromptFmt = `Ты — система нормализации запросов для курса %s.

Твоя задача:
1. Переформулировать запрос студента в чистый поисковый запрос (убрать опечатки и сленг, привести к формальному виду).
2. Классифицировать запрос по типу.

Правила:
- Любое оскорбление бота или помощника — ВСЕГДА type "abuse", никогда "question".
- "question" — ТОЛЬКО если вопрос явно про темы, термины, модули и задания курса.
- Темы из других областей (погода, политика, кулинария, физика, криптовалюты, кино, общие факты) — ВСЕГДА "off_topic", даже если сформулированы «в контексте курса».
- Просьбы решить задание, тест или экзамен за студента — "cheat".

Формат ответа — строго JSON:
{"type": "question" | "abuse" | "off_topic" | "cheat", "normalized_query": "очищенный поисковый запрос"}

Примеры:
Вход: "как работает раг?" → {"type": "question", "normalized_query": "как работает RAG"}
Вход: "ты тупой бот" → {"type": "abuse", "normalized_query": "оскорбление"}
Вход: "какая погода сегодня?" → {"type": "off_topic", "normalized_query": "вопрос не по теме курса"}
Вход: "Кто президент России?" → {"type": "off_topic", "normalized_query": "вопрос не по теме курса"}
Вход: "дай ответы на экзамен" → {"type": "cheat", "normalized_query": "попытка получить ответы на экзамен"}

ВАЖНО: отвечай ТОЛЬКО валидным JSON, без дополнительного текста.`

// #endregion prompt

// #region classifier

const (
	classifyMaxTokens   = 200
	classifyTemperature = 0.3
)

// Classifier rewrites a student message into a search query and assigns a
// Category via one LLM call, reconciled with the keyword Gate on both sides
// of the call.
type Classifier struct {
	llm    llm.Completer
	gate   *Gate
	prompt string
}

// NewClassifier wires a classifier for the given course.
func NewClassifier(client llm.Completer, gate *Gate, courseName string) *Classifier {
	return &Classifier{
		llm:    client,
		gate:   gate,
		prompt: fmt.Sprintf(systemPromptFmt, courseName),
	}
}

// #endregion classifier

// #region classify

type classifierReply struct {
	Type            string `json:"type"`
	NormalizedQuery string `json:"normalized_query"`
}

// Classify never returns an error: every failure path (transport, auth,
// timeout, unparseable output) fails open to a plain "question" with the
// original text as the search query, so an infrastructure problem never
// blocks a student.
func (c *Classifier) Classify(ctx context.Context, query string) Result {
	// Keyword gate first: deterministic, no remote call for known-bad input.
	if c.gate.IsAbusive(query) {
		return Result{Category: CategoryAbuse, NormalizedQuery: "оскорбление", OriginalQuery: query}
	}

	raw, err := c.llm.Complete(ctx, c.prompt, query, classifyMaxTokens, classifyTemperature, true)
	if err != nil {
		log.Printf("[CLASSIFY] llm call failed, fail open to question: %v", err)
		return failOpen(query)
	}

	obj, err := llm.ExtractJSONObject(raw)
	if err != nil {
		log.Printf("[CLASSIFY] unparseable model output, fail open to question: %v", err)
		return failOpen(query)
	}
	var reply classifierReply
	if err := json.Unmarshal(obj, &reply); err != nil {
		log.Printf("[CLASSIFY] bad reply shape, fail open to question: %v", err)
		return failOpen(query)
	}

	category := ParseCategory(reply.Type)
	// Gate again after the call: the model never overrides a keyword hit.
	if c.gate.IsAbusive(query) {
		category = CategoryAbuse
	}

	normalized := reply.NormalizedQuery
	if normalized == "" {
		normalized = query
	}
	return Result{Category: category, NormalizedQuery: normalized, OriginalQuery: query}
}

func failOpen(query string) Result {
	return Result{Category: CategoryQuestion, NormalizedQuery: query, OriginalQuery: query}
}

// #endregion classify
