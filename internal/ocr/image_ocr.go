package ocr

import (
	"context"
	"fmt"
)

func (e *Extractor) extractImage(ctx context.Context, path string) (Result, error) {
	text, spans, err := e.recognizePage(ctx, path, 1)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Text:       text,
		Confidence: aggregateConfidence(spans),
		Spans:      spans,
		Pages:      1,
		Method:     "image-ocr",
	}, nil
}

// recognizePage runs tesseract in TSV mode over one raster image and returns
// the reconstructed text plus the accepted word spans.
func (e *Extractor) recognizePage(ctx context.Context, path string, page int) (string, []Span, error) {
	args := []string{path, "stdout", "-l", e.cfg.TesseractLang}
	if e.cfg.TessdataDir != "" {
		args = append(args, "--tessdata-dir", e.cfg.TessdataDir)
	}
	args = append(args, "tsv")

	out, errb, err := e.runner.Run(ctx, e.cfg.Tesseract, args...)
	if err != nil {
		return "", nil, fmt.Errorf("tesseract: %s: %w", truncate(string(errb), 512), err)
	}
	text, spans := parseTSV(string(out), page)
	return text, spans, nil
}
