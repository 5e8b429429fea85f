package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// RunOCR executes the recognition stage: uploaded|failed -> processing ->
// ocr_completed, with a quality gate between recognition and completion.
// A gate rejection or recognition error transitions the document to failed
// and reports Success=false; it is not an error to the caller.
func (p *Processor) RunOCR(ctx context.Context, documentID uuid.UUID) (*StageOutcome, error) {
	out := &StageOutcome{DocumentID: documentID, Stage: constants.StepOCR}

	doc, err := p.docs.GetByID(ctx, documentID)
	if err != nil {
		return nil, err
	}
	if err := p.docs.MarkProcessing(ctx, documentID); err != nil {
		return nil, err
	}
	p.appendLog(ctx, documentID, constants.StepOCR, constants.StepStarted, nil, nil, nil, nil)

	start := time.Now()
	res, err := p.recognize.Extract(ctx, doc.FilePath, doc.Kind)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return p.failStage(ctx, out, constants.StepOCR, "text recognition failed: "+err.Error(), elapsed)
	}

	if ok, reason := p.gate.Check(res, doc.Kind); !ok {
		return p.failStage(ctx, out, constants.StepOCR, reason, elapsed)
	}

	if err := p.docs.FinishOCR(ctx, documentID, res.Text, res.Confidence); err != nil {
		return nil, err
	}

	payload := map[string]any{
		"method":      res.Method,
		"pages":       res.Pages,
		"text_length": len(res.Text),
		"placeholder": res.Placeholder,
	}
	if len(res.Warnings) > 0 {
		payload["warnings"] = res.Warnings
	}
	p.appendLog(ctx, documentID, constants.StepOCR, constants.StepCompleted,
		payload, &res.Confidence, &elapsed, nil)

	p.logger.Info("pipeline.ocr.completed",
		"document_id", documentID,
		"method", res.Method,
		"pages", res.Pages,
		"confidence", res.Confidence,
		"elapsed_ms", elapsed)

	out.Success = true
	out.Payload = payload
	return out, nil
}

// failStage records the step failure, transitions the document to failed and
// returns a non-success outcome.
func (p *Processor) failStage(ctx context.Context, out *StageOutcome, step constants.StepName, reason string, elapsed int64) (*StageOutcome, error) {
	p.logger.Warn("pipeline.stage.failed",
		"document_id", out.DocumentID, "step", step, "reason", reason)
	p.appendLog(ctx, out.DocumentID, step, constants.StepFailed, nil, nil, &elapsed, &reason)
	if err := p.docs.MarkFailed(ctx, out.DocumentID, reason); err != nil {
		return nil, err
	}
	out.Success = false
	out.Error = reason
	return out, nil
}

func (p *Processor) appendLog(ctx context.Context, documentID uuid.UUID, step constants.StepName, status constants.StepStatus, payload map[string]any, confidence *float64, durationMS *int64, errText *string) {
	_, err := p.logs.Append(ctx, &repository.AppendLogRequest{
		DocumentID: documentID,
		Step:       step,
		Status:     status,
		Payload:    payload,
		Confidence: confidence,
		DurationMS: durationMS,
		Error:      errText,
	})
	if err != nil {
		// log-append failures must not fail the stage
		p.logger.Error("pipeline.log_append_failed",
			"document_id", documentID, "step", step, "error", err)
	}
}
