package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/decision"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// CreateDecisionRequest wraps parameters for persisting a computed decision.
type CreateDecisionRequest struct {
	ApplicationID       uuid.UUID
	Outcome             constants.Outcome
	ConfidenceScore     float64
	BenefitAmount       decimal.Decimal
	Currency            string
	Frequency           string
	Reasoning           map[string]any
	EligibilityFactors  map[string]any
	RiskAssessment      map[string]any
	ModelName           string
	ModelVersion        string
	ProcessingTimeMS    int64
	RequiresHumanReview bool
	ReviewPriority      *string
	EffectiveDate       *time.Time
	ReviewDate          *time.Time
}

// OverrideDecisionRequest carries a human reviewer's replacement values.
type OverrideDecisionRequest struct {
	ApplicationID   uuid.UUID
	Outcome         constants.Outcome
	BenefitAmount   decimal.Decimal
	ConfidenceScore float64
	ReviewedAt      time.Time
}

type DecisionRepository interface {
	// Create persists a decision, enforcing at-most-one per application.
	// A unique-constraint violation surfaces as common.ErrConflict.
	Create(ctx context.Context, req *CreateDecisionRequest) (*entity.Decision, error)
	GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*entity.Decision, error)
	Override(ctx context.Context, req *OverrideDecisionRequest) (*entity.Decision, error)
	List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Decision, error)
}

type decisionRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDecisionRepository(client *ent.Client, logger *slog.Logger) DecisionRepository {
	return &decisionRepository{client: client, logger: logger}
}

func (r *decisionRepository) Create(ctx context.Context, req *CreateDecisionRequest) (*entity.Decision, error) {
	builder := r.client.Decision.Create().
		SetApplicationID(req.ApplicationID).
		SetOutcome(string(req.Outcome)).
		SetConfidenceScore(req.ConfidenceScore).
		SetBenefitAmount(req.BenefitAmount).
		SetCurrency(req.Currency).
		SetFrequency(req.Frequency).
		SetReasoning(req.Reasoning).
		SetEligibilityFactors(req.EligibilityFactors).
		SetRiskAssessment(req.RiskAssessment).
		SetModelName(req.ModelName).
		SetModelVersion(req.ModelVersion).
		SetProcessingTimeMs(req.ProcessingTimeMS).
		SetRequiresHumanReview(req.RequiresHumanReview).
		SetNillableReviewPriority(req.ReviewPriority).
		SetNillableEffectiveDate(req.EffectiveDate).
		SetNillableReviewDate(req.ReviewDate)

	dec, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: decision already exists for application %s",
				common.ErrConflict, req.ApplicationID)
		}
		r.logger.Error("repository.decision.create_failed",
			"application_id", req.ApplicationID, "error", err)
		return nil, err
	}
	r.logger.Info("repository.decision.created",
		"application_id", req.ApplicationID, "outcome", req.Outcome)
	return toDecision(dec), nil
}

func (r *decisionRepository) GetByApplicationID(ctx context.Context, applicationID uuid.UUID) (*entity.Decision, error) {
	dec, err := r.client.Decision.Query().
		Where(decision.ApplicationID(applicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no decision for application %s",
				common.ErrNotFound, applicationID)
		}
		return nil, err
	}
	return toDecision(dec), nil
}

func (r *decisionRepository) Override(ctx context.Context, req *OverrideDecisionRequest) (*entity.Decision, error) {
	dec, err := r.client.Decision.Query().
		Where(decision.ApplicationID(req.ApplicationID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: no decision for application %s",
				common.ErrNotFound, req.ApplicationID)
		}
		return nil, err
	}

	updated, err := dec.Update().
		SetOutcome(string(req.Outcome)).
		SetBenefitAmount(req.BenefitAmount).
		SetConfidenceScore(req.ConfidenceScore).
		SetRequiresHumanReview(false).
		SetReviewedAt(req.ReviewedAt).
		Save(ctx)
	if err != nil {
		r.logger.Error("repository.decision.override_failed",
			"application_id", req.ApplicationID, "error", err)
		return nil, err
	}
	return toDecision(updated), nil
}

func (r *decisionRepository) List(ctx context.Context, fromDate, toDate *time.Time) ([]*entity.Decision, error) {
	q := r.client.Decision.Query()
	if fromDate != nil {
		q = q.Where(decision.CreatedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(decision.CreatedAtLTE(*toDate))
	}
	decs, err := q.Order(decision.ByCreatedAt()).All(ctx)
	if err != nil {
		r.logger.Error("repository.decision.list_failed", "error", err)
		return nil, err
	}
	result := make([]*entity.Decision, len(decs))
	for i, d := range decs {
		result[i] = toDecision(d)
	}
	return result, nil
}
