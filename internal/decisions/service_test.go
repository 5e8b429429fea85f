package decisions

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

type fakeDecisions struct {
	decisions map[uuid.UUID]*entity.Decision
}

func (f *fakeDecisions) Create(_ context.Context, _ *repository.CreateDecisionRequest) (*entity.Decision, error) {
	return nil, errors.New("unused")
}

func (f *fakeDecisions) GetByApplicationID(_ context.Context, appID uuid.UUID) (*entity.Decision, error) {
	d, ok := f.decisions[appID]
	if !ok {
		return nil, fmt.Errorf("%w: no decision", common.ErrNotFound)
	}
	cp := *d
	return &cp, nil
}

func (f *fakeDecisions) Override(_ context.Context, req *repository.OverrideDecisionRequest) (*entity.Decision, error) {
	d, ok := f.decisions[req.ApplicationID]
	if !ok {
		return nil, fmt.Errorf("%w: no decision", common.ErrNotFound)
	}
	d.Outcome = req.Outcome
	d.BenefitAmount = req.BenefitAmount
	d.ConfidenceScore = req.ConfidenceScore
	d.RequiresHumanReview = false
	d.ReviewedAt = &req.ReviewedAt
	cp := *d
	return &cp, nil
}

func (f *fakeDecisions) List(_ context.Context, _, _ *time.Time) ([]*entity.Decision, error) {
	return nil, nil
}

type fakeAudit struct {
	entries []*repository.AppendAuditRequest
}

func (f *fakeAudit) Append(_ context.Context, req *repository.AppendAuditRequest) (*entity.AuditEntry, error) {
	f.entries = append(f.entries, req)
	return &entity.AuditEntry{ID: uuid.New()}, nil
}

func (f *fakeAudit) ListByApplicationID(_ context.Context, _ uuid.UUID) ([]*entity.AuditEntry, error) {
	return nil, nil
}

func existingDecision(appID uuid.UUID) *entity.Decision {
	return &entity.Decision{
		ID:                  uuid.New(),
		ApplicationID:       appID,
		Outcome:             constants.OutcomeNeedsReview,
		ConfidenceScore:     0.55,
		BenefitAmount:       decimal.Zero,
		Currency:            "AED",
		Frequency:           "monthly",
		RequiresHumanReview: true,
		CreatedAt:           time.Now(),
	}
}

func TestOverrideApprovesWithAudit(t *testing.T) {
	appID := uuid.New()
	repo := &fakeDecisions{decisions: map[uuid.UUID]*entity.Decision{appID: existingDecision(appID)}}
	audit := &fakeAudit{}
	svc := NewService(nil, repo, audit)

	updated, err := svc.Override(context.Background(), &OverrideRequest{
		ApplicationID: appID,
		Outcome:       constants.OutcomeApproved,
		BenefitAmount: decimal.NewFromInt(2000),
		Reason:        "income document re-verified by phone",
		ReviewerID:    "reviewer-17",
	})
	if err != nil {
		t.Fatalf("Override: %v", err)
	}
	if updated.Outcome != constants.OutcomeApproved {
		t.Errorf("outcome = %q, want approved", updated.Outcome)
	}
	if updated.ConfidenceScore != 1.0 {
		t.Errorf("confidence = %v, want 1.0 for a human override", updated.ConfidenceScore)
	}
	if updated.RequiresHumanReview {
		t.Error("override must clear the review flag")
	}
	if updated.ReviewedAt == nil {
		t.Error("override must stamp ReviewedAt")
	}

	if len(audit.entries) != 1 {
		t.Fatalf("audit entries = %d, want 1", len(audit.entries))
	}
	e := audit.entries[0]
	if e.Action != constants.AuditDecisionOverridden || e.ActorType != constants.ActorHumanReviewer {
		t.Errorf("audit entry = action %q actor %q", e.Action, e.ActorType)
	}
	if e.ActorID == nil || *e.ActorID != "reviewer-17" {
		t.Error("audit entry must name the reviewer")
	}
	if e.PreviousValue == nil || e.PreviousValue["outcome"] != string(constants.OutcomeNeedsReview) {
		t.Errorf("previous snapshot = %v, want the pre-override outcome", e.PreviousValue)
	}
	if e.NewValue == nil || e.NewValue["outcome"] != string(constants.OutcomeApproved) {
		t.Errorf("new snapshot = %v, want the override outcome", e.NewValue)
	}
	if e.ChangeReason == nil || *e.ChangeReason == "" {
		t.Error("audit entry must carry the change reason")
	}
}

func TestOverrideMissingDecision(t *testing.T) {
	repo := &fakeDecisions{decisions: map[uuid.UUID]*entity.Decision{}}
	audit := &fakeAudit{}
	svc := NewService(nil, repo, audit)

	_, err := svc.Override(context.Background(), &OverrideRequest{
		ApplicationID: uuid.New(),
		Outcome:       constants.OutcomeRejected,
		Reason:        "duplicate application",
		ReviewerID:    "reviewer-17",
	})
	if !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
	if len(audit.entries) != 0 {
		t.Error("no audit entry may be written for a failed override")
	}
}

func TestValidateOverride(t *testing.T) {
	base := func() *OverrideRequest {
		return &OverrideRequest{
			ApplicationID: uuid.New(),
			Outcome:       constants.OutcomeApproved,
			BenefitAmount: decimal.NewFromInt(2500),
			Reason:        "manual verification passed",
			ReviewerID:    "reviewer-1",
		}
	}

	tests := []struct {
		name    string
		mutate  func(*OverrideRequest)
		wantErr bool
	}{
		{"valid approval", func(r *OverrideRequest) {}, false},
		{"valid rejection without benefit", func(r *OverrideRequest) {
			r.Outcome = constants.OutcomeRejected
			r.BenefitAmount = decimal.Zero
		}, false},
		{"unknown outcome", func(r *OverrideRequest) { r.Outcome = "escalated" }, true},
		{"negative benefit", func(r *OverrideRequest) { r.BenefitAmount = decimal.NewFromInt(-1) }, true},
		{"benefit on rejection", func(r *OverrideRequest) { r.Outcome = constants.OutcomeRejected }, true},
		{"missing reason", func(r *OverrideRequest) { r.Reason = "" }, true},
		{"missing reviewer", func(r *OverrideRequest) { r.ReviewerID = "" }, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := base()
			tt.mutate(req)
			err := validateOverride(req)
			if tt.wantErr && !errors.Is(err, common.ErrInvalidInput) {
				t.Fatalf("err = %v, want ErrInvalidInput", err)
			}
			if !tt.wantErr && err != nil {
				t.Fatalf("unexpected err: %v", err)
			}
		})
	}
}
