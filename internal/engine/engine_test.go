package engine

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

func decimalFrom(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }

func testConfig() common.EligibilityConfig {
	return common.EligibilityConfig{
		IncomeThresholdAED:    4000,
		BalanceThresholdAED:   1500,
		ConfidenceThreshold:   0.7,
		AutoApprovalThreshold: 0.8,
		Currency:              "AED",
		Frequency:             "monthly",
		FullBenefitAED:        2500,
		ReducedBenefitAED:     2000,
		ModelVersion:          "1.0",
	}
}

func bankFacts(income, balance, confidence float64) map[string]any {
	return map[string]any{
		"account_holder_name": "Ahmed Al Mansouri",
		"bank_name":           "First Abu Dhabi Bank",
		"monthly_income":      income,
		"account_balance":     balance,
		"confidence":          confidence,
	}
}

func identityFacts() map[string]any {
	return map[string]any{
		"full_name":  "Ahmed Al Mansouri",
		"id_number":  "784-1990-1234567-1",
		"confidence": 0.9,
	}
}

func newTestEngine() *Engine {
	return New(testConfig(), "qwen2:1.5b", nil)
}

func TestDecideLowIncomeApproved(t *testing.T) {
	e := newTestEngine()
	res, trace := e.Decide(Facts{
		ApplicationID: "app-a",
		Bank:          bankFacts(3000, 1000, 0.9),
		Identity:      identityFacts(),
	})

	if res.Outcome != constants.OutcomeApproved {
		t.Fatalf("Outcome = %q, want approved (factors %v)", res.Outcome, res.EligibilityFactors)
	}
	if !res.BenefitAmount.Equal(decimalFrom(2500)) {
		t.Errorf("BenefitAmount = %s, want 2500 (full benefit)", res.BenefitAmount)
	}
	if res.ConfidenceScore > 0.95 {
		t.Errorf("ConfidenceScore = %v, must be capped at 0.95", res.ConfidenceScore)
	}
	if res.RequiresHumanReview {
		t.Error("auto-approved decision must not require human review")
	}
	if res.EffectiveDate == nil {
		t.Error("approved decision should carry an effective date")
	}
	if trace.StepCount != 7 {
		t.Errorf("StepCount = %d, want the full seven-step run", trace.StepCount)
	}
	if trace.FinalOutcome != string(constants.OutcomeApproved) {
		t.Errorf("trace.FinalOutcome = %q", trace.FinalOutcome)
	}
}

func TestDecideHighIncomeRejected(t *testing.T) {
	e := newTestEngine()
	res, _ := e.Decide(Facts{
		ApplicationID: "app-b",
		Bank:          bankFacts(12000, 5000, 0.9),
		Identity:      identityFacts(),
	})

	if res.Outcome != constants.OutcomeRejected {
		t.Fatalf("Outcome = %q, want rejected", res.Outcome)
	}
	if !res.BenefitAmount.IsZero() {
		t.Errorf("BenefitAmount = %s, want 0 for a rejection", res.BenefitAmount)
	}
	if got := res.EligibilityFactors["income_score"]; got != 0.0 {
		t.Errorf("income_score = %v, want 0 above the threshold", got)
	}
	if got := res.EligibilityFactors["meets_income_criteria"]; got != false {
		t.Errorf("meets_income_criteria = %v, want false", got)
	}
}

func TestDecideBorderlineNeedsReview(t *testing.T) {
	// income just under the threshold, high balance, shaky bank confidence:
	// the overall score lands between 0.4 and 0.7
	e := newTestEngine()
	res, _ := e.Decide(Facts{
		ApplicationID: "app-c",
		Bank:          bankFacts(3900, 8500, 0.5),
		Identity:      identityFacts(),
	})

	if res.Outcome != constants.OutcomeNeedsReview {
		t.Fatalf("Outcome = %q, want needs_review (factors %v, risk %v)",
			res.Outcome, res.EligibilityFactors, res.RiskAssessment)
	}
	if !res.RequiresHumanReview {
		t.Error("needs_review decision must require human review")
	}
	if res.ReviewDate == nil || res.ReviewPriority == nil {
		t.Error("needs_review decision should carry a review date and priority")
	}
	if !res.BenefitAmount.IsZero() {
		t.Errorf("BenefitAmount = %s, want 0 pending review", res.BenefitAmount)
	}
}

func TestDecideUnverifiedIdentityLowersDocumentScore(t *testing.T) {
	e := newTestEngine()

	verified, _ := e.Decide(Facts{
		Bank:     bankFacts(3000, 1000, 0.9),
		Identity: identityFacts(),
	})
	unverified, _ := e.Decide(Facts{
		Bank: bankFacts(3000, 1000, 0.9),
		Identity: map[string]any{
			"full_name":  "Unknown",
			"id_number":  "Unknown",
			"confidence": 0.9,
		},
	})

	dv := verified.EligibilityFactors["document_score"].(float64)
	du := unverified.EligibilityFactors["document_score"].(float64)
	if du >= dv {
		t.Errorf("document_score with unverified identity = %v, want below %v", du, dv)
	}
}

func TestDecideReducedBenefitUnderRisk(t *testing.T) {
	// strong eligibility but medium risk (missing balance + low confidence)
	// lands in the reduced-benefit tier
	e := newTestEngine()
	res, _ := e.Decide(Facts{
		Bank:     bankFacts(1500, 0, 0.5),
		Identity: identityFacts(),
	})

	if res.Outcome != constants.OutcomeApproved {
		t.Fatalf("Outcome = %q, want approved (risk %v)", res.Outcome, res.RiskAssessment)
	}
	if !res.BenefitAmount.Equal(decimalFrom(2000)) {
		t.Errorf("BenefitAmount = %s, want reduced 2000", res.BenefitAmount)
	}
}

func TestDecideRiskFlags(t *testing.T) {
	e := newTestEngine()
	ra := e.assessRisk(Facts{}, 0, 0)

	// both financial fields missing and no bank confidence
	found := map[string]bool{}
	for _, f := range ra.Flags {
		found[f] = true
	}
	if !found["low_document_confidence"] {
		t.Error("expected low_document_confidence flag")
	}
	if !found["missing_data_2_fields"] {
		t.Errorf("expected missing_data_2_fields flag, got %v", ra.Flags)
	}
	if ra.Score < 0.69 || ra.Score > 0.71 {
		t.Errorf("risk score = %v, want 0.3+0.4", ra.Score)
	}
	if ra.Level == constants.RiskLow {
		t.Errorf("risk level = %v, want elevated", ra.Level)
	}
	if !ra.RequiresReview {
		t.Error("two flags must require review")
	}
}

func TestDecideHighBalanceVsIncomeFlag(t *testing.T) {
	e := newTestEngine()
	ra := e.assessRisk(Facts{Bank: bankFacts(1000, 20000, 0.9)}, 1000, 20000)

	if len(ra.Flags) != 1 || ra.Flags[0] != "high_balance_vs_income" {
		t.Fatalf("Flags = %v, want only high_balance_vs_income", ra.Flags)
	}
	if ra.Level != constants.RiskLow {
		t.Errorf("risk level = %v, want low at 0.2", ra.Level)
	}
}

func TestDecideMonotonicIncomeScore(t *testing.T) {
	e := newTestEngine()
	incomes := []float64{1000, 2500, 3500, 4000, 8000}
	prev := 2.0
	for _, income := range incomes {
		ia := e.analyzeIncome(income)
		sc := e.score(ia, docVerification{OverallScore: 0.9}, 1000)
		if sc.IncomeScore > prev {
			t.Errorf("income_score rose from %v to %v as income grew to %v",
				prev, sc.IncomeScore, income)
		}
		prev = sc.IncomeScore
	}
	if e.analyzeIncome(4000).MeetsCriteria {
		t.Error("income exactly at the threshold must not meet the criteria")
	}
}

func TestDecideInvariants(t *testing.T) {
	e := newTestEngine()
	cases := []Facts{
		{Bank: bankFacts(3000, 1000, 0.9), Identity: identityFacts()},
		{Bank: bankFacts(12000, 5000, 0.9), Identity: identityFacts()},
		{Bank: bankFacts(3900, 8500, 0.5), Identity: identityFacts()},
		{Bank: map[string]any{}, Identity: map[string]any{}},
		{},
	}
	for i, facts := range cases {
		res, trace := e.Decide(facts)
		if res.ConfidenceScore < 0 || res.ConfidenceScore > 1 {
			t.Errorf("case %d: confidence %v out of [0,1]", i, res.ConfidenceScore)
		}
		if res.BenefitAmount.IsPositive() && res.Outcome != constants.OutcomeApproved {
			t.Errorf("case %d: benefit %s with outcome %q", i, res.BenefitAmount, res.Outcome)
		}
		if res.RequiresHumanReview != (res.Outcome == constants.OutcomeNeedsReview) {
			t.Errorf("case %d: requires_human_review %v with outcome %q",
				i, res.RequiresHumanReview, res.Outcome)
		}
		if trace == nil || trace.StepCount == 0 {
			t.Errorf("case %d: missing reasoning trace", i)
		}
	}
}

func TestDecideDeterministic(t *testing.T) {
	e := newTestEngine()
	facts := Facts{Bank: bankFacts(3200, 900, 0.85), Identity: identityFacts()}

	first, _ := e.Decide(facts)
	second, _ := e.Decide(facts)
	if first.Outcome != second.Outcome || first.ConfidenceScore != second.ConfidenceScore {
		t.Errorf("same facts produced different decisions: %v/%v vs %v/%v",
			first.Outcome, first.ConfidenceScore, second.Outcome, second.ConfidenceScore)
	}
}

func TestFallbackDecision(t *testing.T) {
	e := newTestEngine()
	tests := []struct {
		name    string
		income  float64
		outcome constants.Outcome
		conf    float64
		benefit float64
	}{
		{"income under threshold approves reduced", 2500, constants.OutcomeApproved, 0.6, 2000},
		{"zero income needs review", 0, constants.OutcomeNeedsReview, 0.5, 0},
		{"income over threshold rejects", 9000, constants.OutcomeRejected, 0.7, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, trace := e.fallbackDecision(Facts{
				Bank: map[string]any{"monthly_income": tt.income},
			}, "forced failure", time.Now())

			if res.Outcome != tt.outcome {
				t.Errorf("Outcome = %q, want %q", res.Outcome, tt.outcome)
			}
			if res.ConfidenceScore != tt.conf {
				t.Errorf("ConfidenceScore = %v, want %v", res.ConfidenceScore, tt.conf)
			}
			if !res.BenefitAmount.Equal(decimalFrom(tt.benefit)) {
				t.Errorf("BenefitAmount = %s, want %v", res.BenefitAmount, tt.benefit)
			}
			if !res.Fallback {
				t.Error("fallback decision must be flagged")
			}
			if trace.StepCount != 1 {
				t.Errorf("trace.StepCount = %d, want one synthetic step", trace.StepCount)
			}
		})
	}
}

func TestDecideUsesInjectedClock(t *testing.T) {
	e := New(testConfig(), "qwen2:1.5b", nil)
	fixed := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	res, trace := e.Decide(Facts{
		ApplicationID: "app-clock",
		Bank:          bankFacts(3000, 1000, 0.9),
		Identity:      identityFacts(),
	})

	for i, step := range trace.Steps {
		if !step.Timestamp.Equal(fixed) {
			t.Errorf("step %d timestamp = %v, want the injected clock value", i, step.Timestamp)
		}
	}
	if trace.TotalDuration != 0 {
		t.Errorf("TotalDuration = %v, want 0 under a frozen clock", trace.TotalDuration)
	}
	if res.EffectiveDate != nil && !res.EffectiveDate.Equal(fixed.Truncate(24*time.Hour)) {
		t.Errorf("EffectiveDate = %v, want derived from the injected clock", res.EffectiveDate)
	}
}
