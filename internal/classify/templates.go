package classify

import "fmt"

// #region templates

const fallbackTemplate = "Извините, не могу обработать этот запрос."

// Templates maps non-question categories to fixed reply text.
type Templates struct {
	byCategory map[Category]string
}

// NewTemplates builds the reply table for a course. Overrides (keyed by raw
// category string) replace individual entries without rebuilding the binary.
func NewTemplates(courseName string, overrides map[string]string) *Templates {
	t := &Templates{byCategory: map[Category]string{
		CategoryAbuse:    "Пожалуйста, будьте вежливы. Я здесь, чтобы помочь вам с вопросами по курсу.",
		CategoryOffTopic: fmt.Sprintf("Этот вопрос не относится к курсу %s. Пожалуйста, задайте вопрос по материалам курса.", courseName),
		CategoryCheat:    "Я не могу помочь с получением ответов на экзамены или тесты. Если у вас есть вопросы по материалам курса, я буду рад помочь.",
	}}
	for k, v := range overrides {
		if v != "" {
			t.byCategory[Category(k)] = v
		}
	}
	return t
}

// For returns the fixed reply for a category, or a generic fallback for
// anything without a template. Pure lookup, no side effects.
func (t *Templates) For(category Category) string {
	if reply, ok := t.byCategory[category]; ok {
		return reply
	}
	return fallbackTemplate
}

// #endregion templates
