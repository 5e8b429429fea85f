package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

type fakeDecisions struct {
	decisions []*entity.Decision
	gotFrom   *time.Time
	gotTo     *time.Time
}

func (f *fakeDecisions) Create(_ context.Context, _ *repository.CreateDecisionRequest) (*entity.Decision, error) {
	panic("unused")
}

func (f *fakeDecisions) GetByApplicationID(_ context.Context, _ uuid.UUID) (*entity.Decision, error) {
	panic("unused")
}

func (f *fakeDecisions) Override(_ context.Context, _ *repository.OverrideDecisionRequest) (*entity.Decision, error) {
	panic("unused")
}

func (f *fakeDecisions) List(_ context.Context, from, to *time.Time) ([]*entity.Decision, error) {
	f.gotFrom, f.gotTo = from, to
	return f.decisions, nil
}

func sampleDecisions() []*entity.Decision {
	prio := "normal"
	eff := time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC)
	rd := time.Date(2026, 3, 12, 0, 0, 0, 0, time.UTC)
	return []*entity.Decision{
		{
			ID:              uuid.New(),
			ApplicationID:   uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Outcome:         constants.OutcomeApproved,
			ConfidenceScore: 0.93,
			BenefitAmount:   decimal.NewFromInt(2500),
			Currency:        "AED",
			Frequency:       "monthly",
			EffectiveDate:   &eff,
			CreatedAt:       time.Date(2026, 2, 10, 9, 30, 0, 0, time.UTC),
		},
		{
			ID:                  uuid.New(),
			ApplicationID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Outcome:             constants.OutcomeNeedsReview,
			ConfidenceScore:     0.52,
			BenefitAmount:       decimal.Zero,
			Currency:            "AED",
			Frequency:           "monthly",
			RequiresHumanReview: true,
			ReviewPriority:      &prio,
			ReviewDate:          &rd,
			CreatedAt:           time.Date(2026, 2, 11, 14, 0, 0, 0, time.UTC),
		},
	}
}

func TestExportDecisionsXLSX(t *testing.T) {
	repo := &fakeDecisions{decisions: sampleDecisions()}
	svc := NewService(repo, nil)

	data, err := svc.ExportDecisionsXLSX(context.Background(), nil, nil)
	if err != nil {
		t.Fatalf("ExportDecisionsXLSX: %v", err)
	}
	if repo.gotFrom != nil || repo.gotTo != nil {
		t.Error("no window given, repository must be queried unbounded")
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("reopen workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Decisions")
	if err != nil {
		t.Fatalf("GetRows: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header plus two decisions", len(rows))
	}
	if rows[0][0] != "Application ID" || rows[0][1] != "Outcome" {
		t.Errorf("header row = %v", rows[0])
	}

	approved := rows[1]
	if approved[0] != "11111111-1111-1111-1111-111111111111" {
		t.Errorf("application id cell = %q", approved[0])
	}
	if approved[1] != "approved" || approved[3] != "2500.00" {
		t.Errorf("approved row = %v", approved)
	}
	if approved[8] != "2026-02-10" {
		t.Errorf("effective date cell = %q", approved[8])
	}

	review := rows[2]
	if review[1] != "needs_review" || review[7] != "normal" {
		t.Errorf("review row = %v", review)
	}
	if review[9] != "2026-03-12" {
		t.Errorf("review date cell = %q", review[9])
	}
}

func TestExportDecisionsXLSXWindow(t *testing.T) {
	repo := &fakeDecisions{}
	svc := NewService(repo, nil)

	from := time.Date(2026, 2, 1, 13, 45, 0, 0, time.UTC)
	if _, err := svc.ExportDecisionsXLSX(context.Background(), &from, nil); err != nil {
		t.Fatalf("ExportDecisionsXLSX: %v", err)
	}
	if repo.gotFrom == nil || !repo.gotFrom.Equal(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("from = %v, want normalized to midnight", repo.gotFrom)
	}
	if repo.gotTo == nil {
		t.Fatal("open-ended from must default the window end to today")
	}
	if h, m, s := repo.gotTo.Clock(); h != 23 || m != 59 || s != 59 {
		t.Errorf("to = %v, want end of day", repo.gotTo)
	}
}
