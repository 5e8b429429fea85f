package engine

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// fallbackDecision derives an outcome from monthly income alone. It runs
// when the full reasoning run fails, so it must not itself depend on
// anything beyond the raw facts and the income threshold.
func (e *Engine) fallbackDecision(facts Facts, reason string, start time.Time) (Result, *entity.ReasoningTrace) {
	income := numberFact(facts.Bank, "monthly_income")

	res := Result{
		Currency:       e.cfg.Currency,
		Frequency:      e.cfg.Frequency,
		BenefitAmount:  decimal.Zero,
		Fallback:       true,
		FallbackReason: reason,
	}

	switch {
	case income > 0 && income < e.cfg.IncomeThresholdAED:
		res.Outcome = constants.OutcomeApproved
		res.BenefitAmount = decimal.NewFromFloat(e.cfg.ReducedBenefitAED)
		res.ConfidenceScore = 0.6
		eff := e.now().Truncate(24 * time.Hour)
		res.EffectiveDate = &eff
	case income == 0:
		res.Outcome = constants.OutcomeNeedsReview
		res.ConfidenceScore = 0.5
		rd := e.now().AddDate(0, 0, 30)
		res.ReviewDate = &rd
		prio := "high"
		res.ReviewPriority = &prio
	default:
		res.Outcome = constants.OutcomeRejected
		res.ConfidenceScore = 0.7
	}
	res.RequiresHumanReview = res.Outcome == constants.OutcomeNeedsReview

	res.EligibilityFactors = map[string]any{
		"monthly_income":        income,
		"meets_income_criteria": income > 0 && income < e.cfg.IncomeThresholdAED,
		"fallback":              true,
	}
	res.RiskAssessment = map[string]any{
		"risk_score": 1.0,
		"risk_flags": []string{"reasoning_run_failed"},
		"risk_level": string(constants.RiskHigh),
	}
	res.Reasoning = map[string]any{
		"summary": fmt.Sprintf(
			"Rule-based fallback decision (%s) applied after the reasoning run failed: %s.",
			res.Outcome, reason),
		"income_analysis": fmt.Sprintf("Monthly income %.2f compared against threshold %.2f.",
			income, e.cfg.IncomeThresholdAED),
	}

	conf := res.ConfidenceScore
	trace := &entity.ReasoningTrace{
		Steps: []entity.ReasoningStep{{
			Kind: entity.StepObservation,
			Content: fmt.Sprintf(
				"Reasoning run failed (%s); substituted rule-based fallback decision %s.",
				reason, res.Outcome),
			Confidence: &conf,
			Timestamp:  e.now(),
		}},
		FinalOutcome:  string(res.Outcome),
		Confidence:    res.ConfidenceScore,
		StepCount:     1,
		TotalDuration: e.now().Sub(start),
		ModelName:     e.modelName,
	}
	return res, trace
}
