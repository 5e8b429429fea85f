package ocr

import (
	"strconv"
	"strings"
)

// parseTSV turns tesseract TSV output into reconstructed text plus accepted
// word spans. Word rows carry level 5; the conf column is 0..100 (-1 for
// non-word rows). Spans under SpanConfidenceFloor are dropped, both from the
// span list and from the reconstructed text.
func parseTSV(tsv string, page int) (string, []Span) {
	var spans []Span
	var b strings.Builder
	lastLineKey := ""

	for i, ln := range strings.Split(tsv, "\n") {
		if i == 0 || len(ln) == 0 {
			continue // skip header
		}
		cols := strings.Split(ln, "\t")
		if len(cols) < 12 {
			continue
		}
		if cols[0] != "5" { // only word-level rows carry text
			continue
		}
		word := strings.TrimSpace(cols[11])
		if word == "" {
			continue
		}
		conf, err := strconv.ParseFloat(cols[10], 64)
		if err != nil || conf < 0 {
			continue
		}
		conf = conf / 100.0
		if conf < SpanConfidenceFloor {
			continue
		}

		left, _ := strconv.Atoi(cols[6])
		top, _ := strconv.Atoi(cols[7])
		width, _ := strconv.Atoi(cols[8])
		height, _ := strconv.Atoi(cols[9])
		spans = append(spans, Span{
			Text:       word,
			Confidence: conf,
			Page:       page,
			Left:       left,
			Top:        top,
			Width:      width,
			Height:     height,
		})

		// block/par/line columns identify the output line
		lineKey := cols[2] + ":" + cols[3] + ":" + cols[4]
		if b.Len() > 0 {
			if lineKey != lastLineKey {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString(word)
		lastLineKey = lineKey
	}
	return b.String(), spans
}

// aggregateConfidence is the mean of accepted span confidences.
func aggregateConfidence(spans []Span) float64 {
	if len(spans) == 0 {
		return 0
	}
	var sum float64
	for _, s := range spans {
		sum += s.Confidence
	}
	return sum / float64(len(spans))
}
