package llm

import (
	"encoding/json"
	"testing"
)

func TestExtractJSONObject(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    string
		wantErr bool
	}{
		{"strict", `{"type":"question"}`, `{"type":"question"}`, false},
		{"strict-whitespace", "  \n{\"a\": 1}\n", `{"a": 1}`, false},
		{"leading-prose", `Вот результат: {"type": "abuse", "normalized_query": "оскорбление"}`, `{"type": "abuse", "normalized_query": "оскорбление"}`, false},
		{"markdown-fence", "```json\n{\"verdict\": \"good\"}\n```", `{"verdict": "good"}`, false},
		{"trailing-prose", `{"ok": true} — надеюсь, это помогло!`, `{"ok": true}`, false},
		{"nested-object", `ответ {"a": {"b": 2}, "c": 3} конец`, `{"a": {"b": 2}, "c": 3}`, false},
		{"brace-inside-string", `{"text": "скобка } внутри", "n": 1}`, `{"text": "скобка } внутри", "n": 1}`, false},
		{"escaped-quote", `{"text": "он сказал \"нет\""}`, `{"text": "он сказал \"нет\""}`, false},
		{"no-object", "просто текст без JSON", "", true},
		{"unbalanced", `{"a": 1`, "", true},
		{"invalid-candidate", `{a: 1}`, "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractJSONObject(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if string(got) != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
			if !json.Valid(got) {
				t.Errorf("extracted object is not valid JSON: %q", got)
			}
		})
	}
}
