package llm

import (
	"encoding/json"
	"errors"
	"strings"
)

// ErrNoJSONObject is returned when neither the strict nor the recovery parse
// finds a JSON object in the model output.
var ErrNoJSONObject = errors.New("no JSON object in model output")

// #region extract
// ExtractJSONObject pulls a single JSON object out of raw model output.
// Two-stage contract: a strict parse of the trimmed text first, then a
// recovery scan for the first balanced top-level object (models sometimes
// wrap the JSON in prose or markdown fences).
func ExtractJSONObject(raw string) ([]byte, error) {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "{") && json.Valid([]byte(trimmed)) {
		return []byte(trimmed), nil
	}
	if obj, ok := scanBalancedObject(trimmed); ok {
		return obj, nil
	}
	return nil, ErrNoJSONObject
}

// #endregion extract

// #region scan
// scanBalancedObject finds the first '{' and walks to its matching '}',
// aware of strings and escapes, then validates the candidate.
func scanBalancedObject(s string) ([]byte, bool) {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return nil, false
	}
	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				candidate := []byte(s[start : i+1])
				if json.Valid(candidate) {
					return candidate, true
				}
				return nil, false
			}
		}
	}
	return nil, false
}

// #endregion scan
