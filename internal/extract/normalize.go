package extract

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	numberSentinel = 0.0
	textSentinel   = "Unknown"
)

var reNumericToken = regexp.MustCompile(`[-+]?\d+(?:\.\d+)?`)

// coerceNumber turns arbitrary model/pattern output into a float64. Strings
// are stripped of currency symbols and thousands separators first. Anything
// unparseable becomes the numeric sentinel.
func coerceNumber(v any) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		for _, sym := range []string{"aed", "usd", "$", "€", "£", "د.إ"} {
			s = strings.ReplaceAll(s, sym, "")
		}
		s = strings.ReplaceAll(s, ",", "")
		s = strings.TrimSpace(s)
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
		if tok := reNumericToken.FindString(s); tok != "" {
			if f, err := strconv.ParseFloat(tok, 64); err == nil {
				return f
			}
		}
		return numberSentinel
	default:
		return numberSentinel
	}
}

// coerceText normalizes a string-typed field, mapping empty/null-ish values
// to the text sentinel.
func coerceText(v any) string {
	s, ok := v.(string)
	if !ok {
		return textSentinel
	}
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "null") || strings.EqualFold(s, "n/a") {
		return textSentinel
	}
	return s
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// normalizeFields validates and coerces raw output into a complete, typed
// field map: every schema field present, numbers coerced permissively,
// confidence clamped to [0,1].
func normalizeFields(specs []FieldSpec, raw map[string]any) map[string]any {
	out := make(map[string]any, len(specs))
	for _, s := range specs {
		v, ok := raw[s.Name]
		switch {
		case s.Name == "confidence":
			out[s.Name] = clamp01(coerceNumber(v))
		case s.Type == Number:
			if !ok {
				out[s.Name] = numberSentinel
				continue
			}
			out[s.Name] = coerceNumber(v)
		default:
			if !ok {
				out[s.Name] = textSentinel
				continue
			}
			out[s.Name] = coerceText(v)
		}
	}
	return out
}
