// Package quality gates recognition output before structured extraction.
package quality

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/ocr"
)

const (
	// MinConfidence is the aggregate recognition confidence floor.
	MinConfidence = 0.5
	// MinTextLength is the minimum recognized text length in characters.
	MinTextLength = 50
	// MinKeywordHits is how many of the kind's required keywords must appear.
	MinKeywordHits = 2
)

// Gate accepts or rejects recognition results per document kind.
type Gate struct {
	logger *slog.Logger
}

func NewGate(logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{logger: logger}
}

// Check returns (false, reason) when the recognition result is unusable for
// structured extraction. The reason is a specific, loggable string.
func (g *Gate) Check(res ocr.Result, kind constants.DocumentKind) (bool, string) {
	if res.Confidence < MinConfidence {
		reason := "OCR quality insufficient for processing"
		g.logger.Warn("quality.reject.low_confidence",
			"kind", kind, "confidence", res.Confidence, "floor", MinConfidence)
		return false, reason
	}
	if len(res.Text) < MinTextLength {
		reason := fmt.Sprintf("extracted text too short: %d chars (minimum %d)", len(res.Text), MinTextLength)
		g.logger.Warn("quality.reject.short_text", "kind", kind, "length", len(res.Text))
		return false, reason
	}

	keywords, ok := constants.RequiredKeywords[kind]
	if !ok {
		reason := fmt.Sprintf("unknown document kind: %s", kind)
		g.logger.Error("quality.reject.unknown_kind", "kind", kind)
		return false, reason
	}
	lower := strings.ToLower(res.Text)
	hits := 0
	var missing []string
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			hits++
		} else {
			missing = append(missing, kw)
		}
	}
	if hits < MinKeywordHits {
		reason := fmt.Sprintf("document does not look like a %s: found %d/%d expected keywords (missing: %s)",
			kind, hits, len(keywords), strings.Join(missing, ", "))
		g.logger.Warn("quality.reject.missing_keywords", "kind", kind, "hits", hits, "missing", missing)
		return false, reason
	}

	g.logger.Debug("quality.accept", "kind", kind, "confidence", res.Confidence, "keyword_hits", hits)
	return true, ""
}
