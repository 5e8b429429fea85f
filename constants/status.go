package constants

// DocumentStatus is the canonical processing status for rows in documents.
type DocumentStatus string

// Stable values (store these exact strings in DB).
const (
	StatusUploaded     DocumentStatus = "uploaded"      // created, nothing ran yet
	StatusProcessing   DocumentStatus = "processing"    // recognition in progress
	StatusOCRCompleted DocumentStatus = "ocr_completed" // stage 1 completed (text recognized)
	StatusAnalyzed     DocumentStatus = "analyzed"      // stage 2 completed (fields extracted)
	StatusFailed       DocumentStatus = "failed"        // retryable failure
)

// Terminal reports whether no further automatic stage runs from s.
func (s DocumentStatus) Terminal() bool {
	return s == StatusAnalyzed || s == StatusFailed
}

// StepName identifies a pipeline stage in processing logs.
type StepName string

const (
	StepOCR      StepName = "ocr"
	StepAnalysis StepName = "multimodal_analysis"
)

// StepStatus is the per-log-entry status.
type StepStatus string

const (
	StepStarted   StepStatus = "started"
	StepCompleted StepStatus = "completed"
	StepFailed    StepStatus = "failed"
)

// Outcome is the final eligibility decision outcome.
type Outcome string

const (
	OutcomeApproved    Outcome = "approved"
	OutcomeRejected    Outcome = "rejected"
	OutcomeNeedsReview Outcome = "needs_review"
)

// RiskLevel buckets the additive risk score.
type RiskLevel string

const (
	RiskLow    RiskLevel = "low"
	RiskMedium RiskLevel = "medium"
	RiskHigh   RiskLevel = "high"
)

// AuditAction is the kind of decision mutation being recorded.
type AuditAction string

const (
	AuditDecisionMade       AuditAction = "decision_made"
	AuditDecisionOverridden AuditAction = "decision_overridden"
)

// ActorType identifies who performed an audited action.
type ActorType string

const (
	ActorAISystem      ActorType = "ai_system"
	ActorHumanReviewer ActorType = "human_reviewer"
)
