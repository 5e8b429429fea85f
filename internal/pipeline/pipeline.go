// Package pipeline coordinates the per-document processing stages
// (recognition, quality gating, structured extraction) and the per-application
// decision run. Each public operation is an independent unit of work safe to
// dispatch to a worker pool.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/extract"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/ocr"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/quality"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// FieldExtractor is the structured-extraction contract the analysis stage
// depends on; *extract.Extractor is the production implementation.
type FieldExtractor interface {
	Extract(ctx context.Context, text string, kind constants.DocumentKind) (extract.Result, error)
}

// StageOutcome is the structured result payload returned by every pipeline
// call. Expected failure modes (gate rejection, recognition failure) come
// back as Success=false with the document already transitioned to failed;
// the error return is reserved for precondition and storage problems.
type StageOutcome struct {
	DocumentID uuid.UUID          `json:"document_id"`
	Stage      constants.StepName `json:"stage"`
	Success    bool               `json:"success"`
	Payload    map[string]any     `json:"payload,omitempty"`
	Error      string             `json:"error,omitempty"`
}

// Processor runs the two document stages in order.
type Processor struct {
	logger    *slog.Logger
	recognize ocr.Recognizer
	gate      *quality.Gate
	fields    FieldExtractor
	docs      repository.DocumentRepository
	logs      repository.ProcessingLogRepository
}

func NewProcessor(
	logger *slog.Logger,
	recognizer ocr.Recognizer,
	gate *quality.Gate,
	fields FieldExtractor,
	docs repository.DocumentRepository,
	logs repository.ProcessingLogRepository,
) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Processor{
		logger:    logger,
		recognize: recognizer,
		gate:      gate,
		fields:    fields,
		docs:      docs,
		logs:      logs,
	}
}

// ProcessDocument runs recognition then structured extraction for one
// document. Extraction only starts when recognition succeeded.
func (p *Processor) ProcessDocument(ctx context.Context, documentID uuid.UUID) (*StageOutcome, error) {
	out, err := p.RunOCR(ctx, documentID)
	if err != nil || !out.Success {
		return out, err
	}
	return p.RunAnalysis(ctx, documentID)
}

// Retry resumes a failed document from the first stage that still has work
// to do. A document with recognized text on record failed during extraction,
// so only extraction reruns against the stored text; a document without text
// failed during recognition and goes through the full pipeline again. Stored
// stage output is never discarded by a retry.
func (p *Processor) Retry(ctx context.Context, documentID uuid.UUID) (*StageOutcome, error) {
	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != constants.StatusFailed {
		return nil, fmt.Errorf("%w: document %s is %q, retry requires %q",
			common.ErrConflict, documentID, doc.Status, constants.StatusFailed)
	}

	if doc.ExtractedText != nil {
		if err := p.docs.ResetForAnalysis(ctx, documentID); err != nil {
			return nil, err
		}
		p.logger.Info("pipeline.retry.analysis", "document_id", documentID)
		return p.RunAnalysis(ctx, documentID)
	}

	if err := p.docs.ResetForRetry(ctx, documentID); err != nil {
		return nil, err
	}
	p.logger.Info("pipeline.retry.full", "document_id", documentID)
	return p.ProcessDocument(ctx, documentID)
}
