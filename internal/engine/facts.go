package engine

import "strings"

// Facts is the engine's input: the structured field maps produced by the
// extraction stage for the applicant's two documents. The engine reads
// facts, it never reaches back into storage.
type Facts struct {
	ApplicationID string
	Bank          map[string]any
	Identity      map[string]any
}

// numberFact reads a numeric field, defaulting to 0 for anything absent or
// non-numeric. Extraction guarantees typed maps, but facts may also arrive
// from JSON round-trips where numbers decode as float64 only.
func numberFact(m map[string]any, key string) float64 {
	if m == nil {
		return 0
	}
	switch v := m[key].(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	default:
		return 0
	}
}

// textFact reads a text field, treating the extraction sentinel as absent.
func textFact(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	s, _ := m[key].(string)
	s = strings.TrimSpace(s)
	if strings.EqualFold(s, "unknown") {
		return ""
	}
	return s
}
