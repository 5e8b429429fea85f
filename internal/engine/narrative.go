package engine

import (
	"fmt"
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// buildReasoning templates the human-readable reasoning bundle from the
// computed values. Nothing here is re-derived from free text.
func (e *Engine) buildReasoning(res Result, ia incomeAnalysis, dv docVerification, sc scores, ra riskAssessment, income, balance float64) map[string]any {
	var summary string
	switch res.Outcome {
	case constants.OutcomeApproved:
		summary = fmt.Sprintf(
			"Application approved with an overall eligibility score of %.2f. Monthly benefit of %s %s granted.",
			sc.OverallScore, res.BenefitAmount.StringFixed(2), res.Currency)
	case constants.OutcomeNeedsReview:
		summary = fmt.Sprintf(
			"Application flagged for human review: overall eligibility score %.2f with risk level %s.",
			sc.OverallScore, ra.Level)
	default:
		summary = fmt.Sprintf(
			"Application rejected: overall eligibility score %.2f does not meet the minimum review threshold.",
			sc.OverallScore)
	}

	incomeNarrative := ia.narrative(e.cfg)

	docNarrative := fmt.Sprintf(
		"Identity verification %s; financial document quality scored %.2f; holder names %s across documents.",
		passFail(dv.IdentityVerified), dv.FinancialDocsQuality, matchWord(dv.NameConsistency))

	riskNarrative := "No risk factors were identified."
	if len(ra.Flags) > 0 {
		riskNarrative = fmt.Sprintf("Risk factors identified: %s (risk level %s).",
			strings.Join(ra.Flags, ", "), ra.Level)
	}

	needNarrative := fmt.Sprintf(
		"Account balance of %.2f against a threshold of %.2f yields a financial need score of %.2f.",
		balance, e.cfg.BalanceThresholdAED, sc.NeedScore)

	return map[string]any{
		"summary":               summary,
		"income_analysis":       incomeNarrative,
		"document_verification": docNarrative,
		"risk_assessment":       riskNarrative,
		"financial_need":        needNarrative,
		"eligibility_factors": map[string]any{
			"income_score":   sc.IncomeScore,
			"document_score": sc.DocumentScore,
			"need_score":     sc.NeedScore,
			"overall_score":  sc.OverallScore,
		},
	}
}

func passFail(ok bool) string {
	if ok {
		return "passed"
	}
	return "failed"
}

func matchWord(ok bool) string {
	if ok {
		return "match"
	}
	return "do not match"
}
