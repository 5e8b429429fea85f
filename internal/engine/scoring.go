package engine

import (
	"fmt"
	"strings"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
)

type incomeAnalysis struct {
	Income        float64
	MeetsCriteria bool
	Ratio         float64
	Gap           float64 // only set when criteria met
}

func (e *Engine) analyzeIncome(income float64) incomeAnalysis {
	ia := incomeAnalysis{Income: income}
	ia.MeetsCriteria = income < e.cfg.IncomeThresholdAED
	if e.cfg.IncomeThresholdAED == 0 {
		ia.Ratio = 1.0
	} else {
		ia.Ratio = income / e.cfg.IncomeThresholdAED
	}
	if ia.MeetsCriteria {
		ia.Gap = e.cfg.IncomeThresholdAED - income
	}
	return ia
}

func (ia incomeAnalysis) narrative(cfg common.EligibilityConfig) string {
	if ia.MeetsCriteria {
		return fmt.Sprintf("Monthly income %.2f is below the %.2f threshold (gap %.2f); income criteria met.",
			ia.Income, cfg.IncomeThresholdAED, ia.Gap)
	}
	return fmt.Sprintf("Monthly income %.2f meets or exceeds the %.2f threshold; income criteria not met.",
		ia.Income, cfg.IncomeThresholdAED)
}

func (ia incomeAnalysis) data() map[string]any {
	d := map[string]any{
		"monthly_income":        ia.Income,
		"meets_income_criteria": ia.MeetsCriteria,
		"income_ratio":          ia.Ratio,
	}
	if ia.MeetsCriteria {
		d["income_gap"] = ia.Gap
	}
	return d
}

type docVerification struct {
	IdentityVerified     bool
	FinancialDocsQuality float64
	NameConsistency      bool
	OverallScore         float64
}

// verifyDocuments combines identity verification, bank-statement quality and
// cross-document name consistency into a single weighted score.
func (e *Engine) verifyDocuments(facts Facts) docVerification {
	var dv docVerification

	idNumber := textFact(facts.Identity, "id_number")
	idName := textFact(facts.Identity, "full_name")
	idConfidence := numberFact(facts.Identity, "confidence")
	dv.IdentityVerified = idNumber != "" && idName != "" && idConfidence > 0.6

	dv.FinancialDocsQuality = numberFact(facts.Bank, "confidence")

	holder := textFact(facts.Bank, "account_holder_name")
	if holder != "" && idName != "" {
		a, b := strings.ToLower(holder), strings.ToLower(idName)
		dv.NameConsistency = strings.Contains(a, b) || strings.Contains(b, a)
	}

	dv.OverallScore = 0.4*boolScore(dv.IdentityVerified) +
		0.4*dv.FinancialDocsQuality +
		0.2*boolScore(dv.NameConsistency)
	return dv
}

func (dv docVerification) narrative() string {
	return fmt.Sprintf("Document verification: identity verified %t, financial docs quality %.2f, name consistency %t, overall %.2f.",
		dv.IdentityVerified, dv.FinancialDocsQuality, dv.NameConsistency, dv.OverallScore)
}

func (dv docVerification) data() map[string]any {
	return map[string]any{
		"identity_verified":          dv.IdentityVerified,
		"financial_docs_quality":     dv.FinancialDocsQuality,
		"name_consistency":           dv.NameConsistency,
		"overall_verification_score": dv.OverallScore,
	}
}

type scores struct {
	IncomeScore   float64
	DocumentScore float64
	NeedScore     float64
	OverallScore  float64
}

func (e *Engine) score(ia incomeAnalysis, dv docVerification, balance float64) scores {
	var sc scores

	if ia.MeetsCriteria {
		switch {
		case ia.Ratio < 0.5:
			sc.IncomeScore = 1.0
		case ia.Ratio < 0.8:
			sc.IncomeScore = 0.9
		default:
			sc.IncomeScore = 0.7
		}
	}

	sc.DocumentScore = dv.OverallScore

	switch {
	case balance < e.cfg.BalanceThresholdAED:
		sc.NeedScore = 1.0
	case balance < 2*e.cfg.BalanceThresholdAED:
		sc.NeedScore = 0.7
	default:
		sc.NeedScore = 0.3
	}

	sc.OverallScore = 0.5*sc.IncomeScore + 0.3*sc.DocumentScore + 0.2*sc.NeedScore
	return sc
}

func (sc scores) data() map[string]any {
	return map[string]any{
		"income_score":   sc.IncomeScore,
		"document_score": sc.DocumentScore,
		"need_score":     sc.NeedScore,
		"overall_score":  sc.OverallScore,
	}
}

func boolScore(b bool) float64 {
	if b {
		return 1.0
	}
	return 0.0
}
