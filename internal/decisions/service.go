// Package decisions exposes the human-facing decision operations: lookup,
// explicit override, and the audit trail.
package decisions

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// OverrideRequest carries a reviewer's replacement decision. Overrides are
// always explicit; nothing in the system replaces a decision implicitly.
type OverrideRequest struct {
	ApplicationID uuid.UUID
	Outcome       constants.Outcome
	BenefitAmount decimal.Decimal
	Reason        string
	ReviewerID    string
}

type Service struct {
	logger    *slog.Logger
	decisions repository.DecisionRepository
	audit     repository.AuditRepository
}

func NewService(logger *slog.Logger, decisions repository.DecisionRepository, audit repository.AuditRepository) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger, decisions: decisions, audit: audit}
}

func (s *Service) Get(ctx context.Context, applicationID uuid.UUID) (*entity.Decision, error) {
	return s.decisions.GetByApplicationID(ctx, applicationID)
}

func (s *Service) AuditTrail(ctx context.Context, applicationID uuid.UUID) ([]*entity.AuditEntry, error) {
	return s.audit.ListByApplicationID(ctx, applicationID)
}

// Override replaces an existing decision with the reviewer's values and
// appends a decision_overridden audit entry holding both snapshots.
func (s *Service) Override(ctx context.Context, req *OverrideRequest) (*entity.Decision, error) {
	if err := validateOverride(req); err != nil {
		return nil, err
	}

	previous, err := s.decisions.GetByApplicationID(ctx, req.ApplicationID)
	if err != nil {
		return nil, err
	}
	prevSnapshot := previous.Snapshot()

	updated, err := s.decisions.Override(ctx, &repository.OverrideDecisionRequest{
		ApplicationID:   req.ApplicationID,
		Outcome:         req.Outcome,
		BenefitAmount:   req.BenefitAmount,
		ConfidenceScore: 1.0,
		ReviewedAt:      time.Now(),
	})
	if err != nil {
		return nil, err
	}

	reason := req.Reason
	reviewer := req.ReviewerID
	if _, err := s.audit.Append(ctx, &repository.AppendAuditRequest{
		DecisionID:    updated.ID,
		ApplicationID: req.ApplicationID,
		Action:        constants.AuditDecisionOverridden,
		ActorType:     constants.ActorHumanReviewer,
		ActorID:       &reviewer,
		PreviousValue: prevSnapshot,
		NewValue:      updated.Snapshot(),
		ChangeReason:  &reason,
	}); err != nil {
		s.logger.Error("decisions.override.audit_append_failed",
			"application_id", req.ApplicationID, "error", err)
	}

	s.logger.Info("decisions.override.applied",
		"application_id", req.ApplicationID,
		"outcome", updated.Outcome,
		"reviewer", req.ReviewerID)
	return updated, nil
}

func validateOverride(req *OverrideRequest) error {
	switch req.Outcome {
	case constants.OutcomeApproved, constants.OutcomeRejected, constants.OutcomeNeedsReview:
	default:
		return fmt.Errorf("%w: invalid outcome %q", common.ErrInvalidInput, req.Outcome)
	}
	if req.BenefitAmount.IsNegative() {
		return fmt.Errorf("%w: benefit amount must be non-negative", common.ErrInvalidInput)
	}
	if req.Outcome != constants.OutcomeApproved && req.BenefitAmount.IsPositive() {
		return fmt.Errorf("%w: benefit amount requires an approved outcome", common.ErrInvalidInput)
	}
	if req.Reason == "" {
		return fmt.Errorf("%w: override reason is required", common.ErrInvalidInput)
	}
	if req.ReviewerID == "" {
		return fmt.Errorf("%w: reviewer id is required", common.ErrInvalidInput)
	}
	return nil
}
