package engine

import (
	"fmt"
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

type riskAssessment struct {
	Score          float64
	Flags          []string
	Level          constants.RiskLevel
	RequiresReview bool
}

// assessRisk accumulates additive risk flags over the extracted data.
func (e *Engine) assessRisk(facts Facts, income, balance float64) riskAssessment {
	var ra riskAssessment

	if numberFact(facts.Bank, "confidence") < 0.6 {
		ra.Flags = append(ra.Flags, "low_document_confidence")
		ra.Score += 0.3
	}

	missing := 0
	if income == 0 {
		missing++
	}
	if balance == 0 {
		missing++
	}
	if missing > 0 {
		ra.Flags = append(ra.Flags, fmt.Sprintf("missing_data_%d_fields", missing))
		ra.Score += 0.2 * float64(missing)
	}

	if income > 0 && balance > 10*income {
		ra.Flags = append(ra.Flags, "high_balance_vs_income")
		ra.Score += 0.2
	}

	if ra.Score > 1 {
		ra.Score = 1
	}

	switch {
	case ra.Score >= 0.7:
		ra.Level = constants.RiskHigh
	case ra.Score >= 0.4:
		ra.Level = constants.RiskMedium
	default:
		ra.Level = constants.RiskLow
	}
	ra.RequiresReview = ra.Level != constants.RiskLow || len(ra.Flags) >= 2
	return ra
}

func (ra riskAssessment) narrative() string {
	if len(ra.Flags) == 0 {
		return fmt.Sprintf("Risk assessment: no risk flags raised, risk level %s.", ra.Level)
	}
	return fmt.Sprintf("Risk assessment: flags [%s], risk score %.2f, risk level %s.",
		strings.Join(ra.Flags, ", "), ra.Score, ra.Level)
}

func (ra riskAssessment) data() map[string]any {
	flags := ra.Flags
	if flags == nil {
		flags = []string{}
	}
	return map[string]any{
		"risk_score":      ra.Score,
		"risk_flags":      flags,
		"risk_level":      string(ra.Level),
		"requires_review": ra.RequiresReview,
	}
}
