package ocr

import (
	"fmt"
	"math"
	"strings"
	"testing"
)

// tsvRow builds one tesseract TSV word row (level 5).
func tsvRow(block, par, line int, conf float64, word string) string {
	return fmt.Sprintf("5\t1\t%d\t%d\t%d\t1\t10\t20\t30\t12\t%.0f\t%s", block, par, line, conf, word)
}

const tsvHeader = "level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext"

func TestParseTSV(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		"1\t1\t0\t0\t0\t0\t0\t0\t600\t800\t-1\t", // page row, no text
		tsvRow(1, 1, 1, 96, "ACCOUNT"),
		tsvRow(1, 1, 1, 91, "STATEMENT"),
		tsvRow(1, 1, 2, 88, "Balance:"),
		tsvRow(1, 1, 2, 85, "2,890.50"),
	}, "\n")

	text, spans := parseTSV(tsv, 1)

	wantText := "ACCOUNT STATEMENT\nBalance: 2,890.50"
	if text != wantText {
		t.Errorf("text = %q, want %q", text, wantText)
	}
	if len(spans) != 4 {
		t.Fatalf("spans = %d, want 4", len(spans))
	}
	if spans[0].Confidence != 0.96 {
		t.Errorf("span confidence = %v, want 0.96", spans[0].Confidence)
	}
	if spans[0].Page != 1 || spans[0].Left != 10 || spans[0].Top != 20 {
		t.Errorf("span geometry = %+v", spans[0])
	}
}

func TestParseTSVDropsLowConfidenceWords(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		tsvRow(1, 1, 1, 95, "keep"),
		tsvRow(1, 1, 1, 20, "drop"), // under the floor
		tsvRow(1, 1, 1, 80, "keep2"),
	}, "\n")

	text, spans := parseTSV(tsv, 1)

	if strings.Contains(text, "drop") {
		t.Errorf("text %q still contains a word under the confidence floor", text)
	}
	if len(spans) != 2 {
		t.Errorf("spans = %d, want low-confidence word dropped", len(spans))
	}
}

func TestParseTSVIgnoresNonWordRows(t *testing.T) {
	tsv := strings.Join([]string{
		tsvHeader,
		"2\t1\t1\t0\t0\t0\t0\t0\t600\t100\t-1\t",
		"4\t1\t1\t1\t1\t0\t0\t0\t600\t20\t-1\t",
		tsvRow(1, 1, 1, 90, "word"),
		"garbage line without tabs",
	}, "\n")

	text, spans := parseTSV(tsv, 2)
	if text != "word" || len(spans) != 1 {
		t.Errorf("text = %q, spans = %d; want only the level-5 row", text, len(spans))
	}
	if spans[0].Page != 2 {
		t.Errorf("span page = %d, want 2", spans[0].Page)
	}
}

func TestAggregateConfidence(t *testing.T) {
	spans := []Span{
		{Confidence: 0.9},
		{Confidence: 0.8},
		{Confidence: 0.7},
	}
	if got := aggregateConfidence(spans); math.Abs(got-0.8) > 1e-9 {
		t.Errorf("aggregateConfidence = %v, want mean 0.8", got)
	}
	if got := aggregateConfidence(nil); got != 0 {
		t.Errorf("aggregateConfidence(nil) = %v, want 0", got)
	}
}
