package llm

import (
	"encoding/json"
	"fmt"
	"strings"
)

// DecodeJSONObject parses model output into a generic map. It first tries the
// whole response as JSON; if that fails it scans for the first balanced
// {...} span and parses that, which tolerates models that wrap JSON in prose
// or markdown fences.
func DecodeJSONObject(response string) (map[string]any, error) {
	trimmed := strings.TrimSpace(response)

	var m map[string]any
	if err := json.Unmarshal([]byte(trimmed), &m); err == nil {
		return m, nil
	}

	span, ok := firstBalancedObject(trimmed)
	if !ok {
		return nil, fmt.Errorf("no JSON object found in response (%d bytes)", len(response))
	}
	if err := json.Unmarshal([]byte(span), &m); err != nil {
		return nil, fmt.Errorf("parse extracted object: %w", err)
	}
	return m, nil
}

// firstBalancedObject returns the first balanced top-level {...} span in s.
// Braces inside JSON strings are ignored.
func firstBalancedObject(s string) (string, bool) {
	start := -1
	depth := 0
	inString := false
	escaped := false

	for i, r := range s {
		if inString {
			switch {
			case escaped:
				escaped = false
			case r == '\\':
				escaped = true
			case r == '"':
				inString = false
			}
			continue
		}
		switch r {
		case '"':
			inString = true
		case '{':
			if depth == 0 {
				start = i
			}
			depth++
		case '}':
			if depth > 0 {
				depth--
				if depth == 0 {
					return s[start : i+1], true
				}
			}
		}
	}
	return "", false
}
