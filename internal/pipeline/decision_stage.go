package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/engine"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// DecisionRunner executes the per-application decision run: precondition
// checks, the engine call, persistence, and the audit entry.
type DecisionRunner struct {
	logger    *slog.Logger
	eng       *engine.Engine
	cfg       common.LLMConfig
	elig      common.EligibilityConfig
	docs      repository.DocumentRepository
	decisions repository.DecisionRepository
	audit     repository.AuditRepository
}

func NewDecisionRunner(
	logger *slog.Logger,
	eng *engine.Engine,
	cfg common.LLMConfig,
	elig common.EligibilityConfig,
	docs repository.DocumentRepository,
	decisions repository.DecisionRepository,
	audit repository.AuditRepository,
) *DecisionRunner {
	if logger == nil {
		logger = slog.Default()
	}
	return &DecisionRunner{
		logger:    logger,
		eng:       eng,
		cfg:       cfg,
		elig:      elig,
		docs:      docs,
		decisions: decisions,
		audit:     audit,
	}
}

// RunDecision computes and persists the eligibility decision for one
// application. Re-entry is idempotent: an existing decision is returned
// unchanged, never recomputed.
func (r *DecisionRunner) RunDecision(ctx context.Context, applicationID uuid.UUID) (*entity.Decision, *entity.ReasoningTrace, error) {
	if existing, err := r.decisions.GetByApplicationID(ctx, applicationID); err == nil {
		r.logger.Info("decision.run.short_circuit",
			"application_id", applicationID, "outcome", existing.Outcome)
		return existing, nil, nil
	}

	facts, err := r.buildFacts(ctx, applicationID)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, r.cfg.DecisionTimeout)
	defer cancel()

	start := time.Now()
	res, trace := r.eng.Decide(facts)
	processingMS := time.Since(start).Milliseconds()

	dec, err := r.decisions.Create(ctx, &repository.CreateDecisionRequest{
		ApplicationID:       applicationID,
		Outcome:             res.Outcome,
		ConfidenceScore:     res.ConfidenceScore,
		BenefitAmount:       res.BenefitAmount,
		Currency:            res.Currency,
		Frequency:           res.Frequency,
		Reasoning:           res.Reasoning,
		EligibilityFactors:  res.EligibilityFactors,
		RiskAssessment:      res.RiskAssessment,
		ModelName:           r.cfg.DecisionModel,
		ModelVersion:        r.elig.ModelVersion,
		ProcessingTimeMS:    processingMS,
		RequiresHumanReview: res.RequiresHumanReview,
		ReviewPriority:      res.ReviewPriority,
		EffectiveDate:       res.EffectiveDate,
		ReviewDate:          res.ReviewDate,
	})
	if err != nil {
		// a concurrent run won the race; return its decision
		if errors.Is(err, common.ErrConflict) {
			existing, getErr := r.decisions.GetByApplicationID(ctx, applicationID)
			if getErr == nil {
				return existing, nil, nil
			}
		}
		return nil, nil, err
	}

	systemContext := trace.Summary()
	if res.Fallback {
		systemContext["fallback_reason"] = res.FallbackReason
	}
	if _, err := r.audit.Append(ctx, &repository.AppendAuditRequest{
		DecisionID:    dec.ID,
		ApplicationID: applicationID,
		Action:        constants.AuditDecisionMade,
		ActorType:     constants.ActorAISystem,
		NewValue:      dec.Snapshot(),
		SystemContext: systemContext,
	}); err != nil {
		// the decision is already durable; audit failure is logged, not fatal
		r.logger.Error("decision.audit_append_failed",
			"application_id", applicationID, "error", err)
	}

	r.logger.Info("decision.run.completed",
		"application_id", applicationID,
		"outcome", dec.Outcome,
		"confidence", dec.ConfidenceScore,
		"fallback", res.Fallback,
		"elapsed_ms", processingMS)
	return dec, trace, nil
}

// buildFacts loads the application's documents and checks the ordering
// precondition: both document kinds present and analyzed.
func (r *DecisionRunner) buildFacts(ctx context.Context, applicationID uuid.UUID) (engine.Facts, error) {
	docs, err := r.docs.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return engine.Facts{}, err
	}

	facts := engine.Facts{ApplicationID: applicationID.String()}
	for _, d := range docs {
		if d.Status != constants.StatusAnalyzed {
			return engine.Facts{}, fmt.Errorf(
				"%w: document %s (%s) is %q, decision requires all documents analyzed",
				common.ErrConflict, d.ID, d.Kind, d.Status)
		}
		switch d.Kind {
		case constants.BankStatement:
			facts.Bank = d.StructuredData
		case constants.IdentityCard:
			facts.Identity = d.StructuredData
		}
	}
	if facts.Bank == nil || facts.Identity == nil {
		return engine.Facts{}, fmt.Errorf(
			"%w: application %s is missing an analyzed bank statement or identity card",
			common.ErrConflict, applicationID)
	}
	return facts, nil
}
