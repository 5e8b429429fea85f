package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/extract"
)

// RunAnalysis executes the structured-extraction stage: ocr_completed ->
// analyzed. Invoking it before recognition completed is an ordering error
// and fails clearly rather than silently no-oping.
func (p *Processor) RunAnalysis(ctx context.Context, documentID uuid.UUID) (*StageOutcome, error) {
	out := &StageOutcome{DocumentID: documentID, Stage: constants.StepAnalysis}

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if doc.Status != constants.StatusOCRCompleted || doc.ExtractedText == nil {
		return nil, fmt.Errorf("%w: document %s is %q, analysis requires %q",
			common.ErrConflict, documentID, doc.Status, constants.StatusOCRCompleted)
	}
	p.appendLog(ctx, documentID, constants.StepAnalysis, constants.StepStarted, nil, nil, nil, nil)

	start := time.Now()
	res, err := p.fields.Extract(ctx, *doc.ExtractedText, doc.Kind)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		// only an unsupported document kind reaches here; the extractor
		// falls back internally for every other failure
		return p.failStage(ctx, out, constants.StepAnalysis, "field extraction failed: "+err.Error(), elapsed)
	}

	if err := p.docs.FinishAnalysis(ctx, documentID, res.Fields); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"tier":       string(res.Tier),
		"model_name": res.ModelName,
	}
	if res.Tier == extract.TierPatterns {
		payload["fallback_reason"] = res.FallbackReason
	}
	p.appendLog(ctx, documentID, constants.StepAnalysis, constants.StepCompleted,
		payload, &res.Confidence, &elapsed, nil)

	p.logger.Info("pipeline.analysis.completed",
		"document_id", documentID,
		"tier", res.Tier,
		"confidence", res.Confidence,
		"elapsed_ms", elapsed)

	out.Success = true
	out.Payload = payload
	return out, nil
}
