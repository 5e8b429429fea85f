package ocr

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

// SpanConfidenceFloor is the per-span cutoff; spans below it are discarded
// before aggregation.
const SpanConfidenceFloor = 0.30

// Span is one accepted recognized word with its confidence and location.
type Span struct {
	Text       string
	Confidence float64 // 0..1
	Page       int
	Left       int
	Top        int
	Width      int
	Height     int
}

// Result is the output of one recognition run.
type Result struct {
	Text        string
	Confidence  float64 // mean of accepted span confidences
	Spans       []Span
	Pages       int
	Method      string // "pdf-ocr" | "image-ocr" | "placeholder"
	Duration    time.Duration
	Placeholder bool
	Warnings    []string
}

// Recognizer is the contract the pipeline depends on.
type Recognizer interface {
	Extract(ctx context.Context, path string, kind constants.DocumentKind) (Result, error)
}

// Extractor recognizes text from document files using tesseract, rasterizing
// PDFs page-by-page via pdftoppm first.
type Extractor struct {
	cfg    common.OCRConfig
	runner Runner
	logger *slog.Logger

	probeOnce sync.Once
	probeErr  error
}

func NewExtractor(cfg common.OCRConfig, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Tesseract == "" {
		cfg.Tesseract = "tesseract"
	}
	if cfg.Pdftoppm == "" {
		cfg.Pdftoppm = "pdftoppm"
	}
	if cfg.TesseractLang == "" {
		cfg.TesseractLang = "eng"
	}
	if cfg.DPI <= 0 {
		cfg.DPI = 144 // 2x zoom over the 72dpi base
	}
	return &Extractor{cfg: cfg, runner: execRunner{}, logger: logger}
}

// engineAvailable probes once for the recognition binary.
func (e *Extractor) engineAvailable() error {
	e.probeOnce.Do(func() {
		_, e.probeErr = e.runner.LookPath(e.cfg.Tesseract)
	})
	return e.probeErr
}

// Extract picks a strategy based on file extension. When the recognition
// engine cannot be initialized it returns the deterministic placeholder for
// the declared kind instead, flagged via Result.Placeholder.
func (e *Extractor) Extract(ctx context.Context, path string, kind constants.DocumentKind) (Result, error) {
	start := time.Now()
	ext := constants.NormalizeExt(filepath.Ext(path))
	e.logger.Debug("ocr.extract.start", "path", path, "kind", kind, "ext", ext)

	format := constants.MapExtToFormat(ext)
	if format == "" {
		e.logger.Error("ocr.extract.unsupported_ext", "extension", ext)
		return Result{}, fmt.Errorf("unsupported extension: %q", ext)
	}

	if err := e.engineAvailable(); err != nil {
		e.logger.Warn("ocr.engine_unavailable", "binary", e.cfg.Tesseract, "error", err)
		res := placeholderResult(kind)
		res.Duration = time.Since(start)
		return res, nil
	}

	var res Result
	var err error
	switch format {
	case constants.PDF:
		res, err = e.extractPDF(ctx, path)
	default:
		res, err = e.extractImage(ctx, path)
	}
	res.Duration = time.Since(start)
	return res, err
}
