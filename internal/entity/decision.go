package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// Decision is the persisted eligibility outcome for one application.
// At most one Decision exists per application; the engine checks before
// creating and an explicit override is the only mutation path.
type Decision struct {
	ID                  uuid.UUID          `json:"id"`
	ApplicationID       uuid.UUID          `json:"application_id"`
	Outcome             constants.Outcome  `json:"outcome"`
	ConfidenceScore     float64            `json:"confidence_score"` // 0..1
	BenefitAmount       decimal.Decimal    `json:"benefit_amount"`
	Currency            string             `json:"currency"`
	Frequency           string             `json:"frequency"`
	Reasoning           map[string]any     `json:"reasoning"`
	EligibilityFactors  map[string]any     `json:"eligibility_factors"`
	RiskAssessment      map[string]any     `json:"risk_assessment"`
	ModelName           string             `json:"model_name"`
	ModelVersion        string             `json:"model_version"`
	ProcessingTimeMS    int64              `json:"processing_time_ms"`
	RequiresHumanReview bool               `json:"requires_human_review"`
	ReviewPriority      *string            `json:"review_priority,omitempty"`
	EffectiveDate       *time.Time         `json:"effective_date,omitempty"`
	ReviewDate          *time.Time         `json:"review_date,omitempty"`
	ReviewedAt          *time.Time         `json:"reviewed_at,omitempty"`
	CreatedAt           time.Time          `json:"created_at"`
}

// Snapshot returns the audit-relevant fields as a plain map, used as
// previous/new value payloads in audit entries.
func (d *Decision) Snapshot() map[string]any {
	return map[string]any{
		"outcome":               string(d.Outcome),
		"confidence_score":      d.ConfidenceScore,
		"benefit_amount":        d.BenefitAmount.String(),
		"currency":              d.Currency,
		"frequency":             d.Frequency,
		"requires_human_review": d.RequiresHumanReview,
		"model_name":            d.ModelName,
		"model_version":         d.ModelVersion,
	}
}
