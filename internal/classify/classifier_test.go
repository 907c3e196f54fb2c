package classify

import (
	"context"
	"errors"
	"testing"
)

type fakeCompleter struct {
	reply string
	err   error
	calls int
}

func (f *fakeCompleter) Complete(_ context.Context, _, _ string, _ int, _ float32, _ bool) (string, error) {
	f.calls++
	return f.reply, f.err
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		reply          string
		err            error
		wantCategory   Category
		wantNormalized string
	}{
		{
			"clean-question",
			"как рабтает раг?",
			`{"type": "question", "normalized_query": "как работает RAG"}`,
			nil,
			CategoryQuestion,
			"как работает RAG",
		},
		{
			"off-topic",
			"как приготовить борщ?",
			`{"type": "off_topic", "normalized_query": "вопрос не по теме курса"}`,
			nil,
			CategoryOffTopic,
			"вопрос не по теме курса",
		},
		{
			"cheat",
			"реши тест за меня",
			`{"type": "cheat", "normalized_query": "попытка получить ответы"}`,
			nil,
			CategoryCheat,
			"попытка получить ответы",
		},
		{
			"json-wrapped-in-prose",
			"что такое ESG",
			`Вот классификация: {"type": "question", "normalized_query": "что такое ESG"} — готово`,
			nil,
			CategoryQuestion,
			"что такое ESG",
		},
		{
			"unknown-category-normalized-to-question",
			"что изучается в первой теме",
			`{"type": "greeting", "normalized_query": "первая тема курса"}`,
			nil,
			CategoryQuestion,
			"первая тема курса",
		},
		{
			"llm-failure-fails-open",
			"опиши модуль про отчетность",
			"",
			errors.New("deadline exceeded"),
			CategoryQuestion,
			"опиши модуль про отчетность",
		},
		{
			"garbage-output-fails-open",
			"что такое устойчивое развитие",
			"не могу классифицировать",
			nil,
			CategoryQuestion,
			"что такое устойчивое развитие",
		},
		{
			"empty-normalized-falls-back-to-original",
			"что такое ESG",
			`{"type": "question", "normalized_query": ""}`,
			nil,
			CategoryQuestion,
			"что такое ESG",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeCompleter{reply: tt.reply, err: tt.err}
			c := NewClassifier(fake, NewGate(nil), "ОбучAI")
			got := c.Classify(context.Background(), tt.query)
			if got.Category != tt.wantCategory {
				t.Errorf("category: got %q, want %q", got.Category, tt.wantCategory)
			}
			if got.NormalizedQuery != tt.wantNormalized {
				t.Errorf("normalized: got %q, want %q", got.NormalizedQuery, tt.wantNormalized)
			}
			if got.OriginalQuery != tt.query {
				t.Errorf("original: got %q, want %q", got.OriginalQuery, tt.query)
			}
		})
	}
}

// Keyword hits decide abuse regardless of what the model would say, and the
// model is not even called.
func TestClassifyKeywordGateShortCircuit(t *testing.T) {
	fake := &fakeCompleter{reply: `{"type": "question", "normalized_query": "вопрос"}`}
	c := NewClassifier(fake, NewGate(nil), "ОбучAI")

	got := c.Classify(context.Background(), "ты тупой бот")
	if got.Category != CategoryAbuse {
		t.Fatalf("category: got %q, want %q", got.Category, CategoryAbuse)
	}
	if fake.calls != 0 {
		t.Errorf("llm called %d times for keyword-flagged input, want 0", fake.calls)
	}
}

func TestTemplatesFor(t *testing.T) {
	tpl := NewTemplates("ОбучAI", nil)

	if got := tpl.For(CategoryOffTopic); got == "" || got == fallbackTemplate {
		t.Errorf("off_topic template missing: %q", got)
	}
	if got := tpl.For(CategoryQuestion); got != fallbackTemplate {
		t.Errorf("unknown category should return fallback, got %q", got)
	}

	custom := NewTemplates("ОбучAI", map[string]string{"abuse": "повежливее"})
	if got := custom.For(CategoryAbuse); got != "повежливее" {
		t.Errorf("override ignored, got %q", got)
	}
}
