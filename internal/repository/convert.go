package repository

import (
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

func toDocument(d *ent.Document) *entity.Document {
	return &entity.Document{
		ID:             d.ID,
		ApplicationID:  d.ApplicationID,
		Kind:           constants.DocumentKind(d.Kind),
		FilePath:       d.FilePath,
		ExtractedText:  d.ExtractedText,
		OCRConfidence:  d.OcrConfidence,
		StructuredData: d.StructuredData,
		Status:         constants.DocumentStatus(d.Status),
		RetryCount:     d.RetryCount,
		ErrorMessage:   d.ErrorMessage,
		UploadedAt:     d.UploadedAt,
		ProcessedAt:    d.ProcessedAt,
	}
}

func toDecision(d *ent.Decision) *entity.Decision {
	return &entity.Decision{
		ID:                  d.ID,
		ApplicationID:       d.ApplicationID,
		Outcome:             constants.Outcome(d.Outcome),
		ConfidenceScore:     d.ConfidenceScore,
		BenefitAmount:       d.BenefitAmount,
		Currency:            d.Currency,
		Frequency:           d.Frequency,
		Reasoning:           d.Reasoning,
		EligibilityFactors:  d.EligibilityFactors,
		RiskAssessment:      d.RiskAssessment,
		ModelName:           d.ModelName,
		ModelVersion:        d.ModelVersion,
		ProcessingTimeMS:    d.ProcessingTimeMs,
		RequiresHumanReview: d.RequiresHumanReview,
		ReviewPriority:      d.ReviewPriority,
		EffectiveDate:       d.EffectiveDate,
		ReviewDate:          d.ReviewDate,
		ReviewedAt:          d.ReviewedAt,
		CreatedAt:           d.CreatedAt,
	}
}

func toProcessingLog(l *ent.ProcessingLog) *entity.ProcessingLog {
	return &entity.ProcessingLog{
		ID:         l.ID,
		DocumentID: l.DocumentID,
		Step:       constants.StepName(l.Step),
		Status:     constants.StepStatus(l.Status),
		Payload:    l.Payload,
		Confidence: l.Confidence,
		DurationMS: l.DurationMs,
		Error:      l.Error,
		CreatedAt:  l.CreatedAt,
	}
}

func toAuditEntry(a *ent.AuditEntry) *entity.AuditEntry {
	return &entity.AuditEntry{
		ID:            a.ID,
		DecisionID:    a.DecisionID,
		ApplicationID: a.ApplicationID,
		Action:        constants.AuditAction(a.Action),
		ActorType:     constants.ActorType(a.ActorType),
		ActorID:       a.ActorID,
		PreviousValue: a.PreviousValue,
		NewValue:      a.NewValue,
		ChangeReason:  a.ChangeReason,
		SystemContext: a.SystemContext,
		CreatedAt:     a.CreatedAt,
	}
}
