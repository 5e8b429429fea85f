// Package engine implements the eligibility decision run: a fixed sequence
// of seven reasoning steps over extracted document facts, producing an
// outcome, a confidence score, a benefit amount, and an ordered trace.
package engine

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// Result is the computed decision. The decision stage persists it; the
// engine itself never touches storage.
type Result struct {
	Outcome             constants.Outcome
	ConfidenceScore     float64
	BenefitAmount       decimal.Decimal
	Currency            string
	Frequency           string
	Reasoning           map[string]any
	EligibilityFactors  map[string]any
	RiskAssessment      map[string]any
	RequiresHumanReview bool
	ReviewPriority      *string
	EffectiveDate       *time.Time
	ReviewDate          *time.Time
	Fallback            bool
	FallbackReason      string
}

// Engine runs eligibility decisions. Thresholds are read once at
// construction and never change mid-run.
type Engine struct {
	cfg       common.EligibilityConfig
	modelName string
	logger    *slog.Logger
	now       func() time.Time
}

func New(cfg common.EligibilityConfig, modelName string, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	return &Engine{cfg: cfg, modelName: modelName, logger: logger, now: time.Now}
}

// Decide executes the seven-step run. It always returns a usable result and
// trace: if the run itself fails, a rule-based fallback decision derived from
// monthly income alone is substituted, flagged as such.
func (e *Engine) Decide(facts Facts) (res Result, trace *entity.ReasoningTrace) {
	start := e.now()

	defer func() {
		if r := recover(); r != nil {
			e.logger.Error("engine.decide.recovered",
				"application_id", facts.ApplicationID, "panic", fmt.Sprint(r))
			res, trace = e.fallbackDecision(facts, fmt.Sprint(r), start)
		}
	}()

	trace = &entity.ReasoningTrace{ModelName: e.modelName}

	// step 1: framing
	e.recordStep(trace,entity.StepThought,
		"Beginning eligibility assessment for social support application.", nil, nil)

	// step 2: financial facts
	income := numberFact(facts.Bank, "monthly_income")
	balance := numberFact(facts.Bank, "account_balance")
	e.recordStep(trace,entity.StepAction,
		fmt.Sprintf("Extracted financial facts: monthly income %.2f, account balance %.2f.", income, balance),
		nil, map[string]any{"monthly_income": income, "account_balance": balance})

	// step 3: income analysis
	ia := e.analyzeIncome(income)
	e.recordStep(trace,entity.StepObservation, ia.narrative(e.cfg), nil, ia.data())

	// step 4: document verification
	dv := e.verifyDocuments(facts)
	e.recordStep(trace,entity.StepObservation, dv.narrative(), &dv.OverallScore, dv.data())

	// step 5: eligibility scoring
	sc := e.score(ia, dv, balance)
	e.recordStep(trace,entity.StepObservation,
		fmt.Sprintf("Computed eligibility scores: income %.2f, documents %.2f, need %.2f, overall %.2f.",
			sc.IncomeScore, sc.DocumentScore, sc.NeedScore, sc.OverallScore),
		&sc.OverallScore, sc.data())

	// step 6: risk assessment
	ra := e.assessRisk(facts, income, balance)
	e.recordStep(trace,entity.StepObservation, ra.narrative(), &ra.Score, ra.data())

	// step 7: final decision
	res = e.finalize(ia, dv, sc, ra, income, balance)
	e.recordStep(trace,entity.StepThought,
		fmt.Sprintf("Final decision: %s with confidence %.2f.", res.Outcome, res.ConfidenceScore),
		&res.ConfidenceScore, nil)

	trace.FinalOutcome = string(res.Outcome)
	trace.Confidence = res.ConfidenceScore
	trace.StepCount = len(trace.Steps)
	trace.TotalDuration = e.now().Sub(start)

	e.logger.Info("engine.decide.completed",
		"application_id", facts.ApplicationID,
		"outcome", res.Outcome,
		"confidence", res.ConfidenceScore,
		"risk_level", ra.Level,
		"elapsed_ms", trace.TotalDuration.Milliseconds())
	return res, trace
}

// finalize maps the computed scores onto an outcome per the decision tiers.
func (e *Engine) finalize(ia incomeAnalysis, dv docVerification, sc scores, ra riskAssessment, income, balance float64) Result {
	res := Result{
		Currency:  e.cfg.Currency,
		Frequency: e.cfg.Frequency,
	}

	switch {
	case sc.OverallScore >= e.cfg.AutoApprovalThreshold && ra.Level == constants.RiskLow:
		res.Outcome = constants.OutcomeApproved
		res.ConfidenceScore = min(sc.OverallScore, 0.95)
		res.BenefitAmount = decimal.NewFromFloat(e.cfg.FullBenefitAED)
	case sc.OverallScore >= e.cfg.ConfidenceThreshold && ra.Level != constants.RiskHigh:
		if ia.MeetsCriteria {
			res.Outcome = constants.OutcomeApproved
			res.ConfidenceScore = sc.OverallScore * 0.9
			res.BenefitAmount = decimal.NewFromFloat(e.cfg.ReducedBenefitAED)
		} else {
			res.Outcome = constants.OutcomeNeedsReview
			res.ConfidenceScore = sc.OverallScore * 0.8
			res.BenefitAmount = decimal.Zero
		}
	case sc.OverallScore >= 0.4:
		res.Outcome = constants.OutcomeNeedsReview
		res.ConfidenceScore = sc.OverallScore * 0.7
		res.BenefitAmount = decimal.Zero
	default:
		res.Outcome = constants.OutcomeRejected
		res.ConfidenceScore = 1 - sc.OverallScore
		res.BenefitAmount = decimal.Zero
	}

	res.RequiresHumanReview = res.Outcome == constants.OutcomeNeedsReview
	now := e.now()
	switch res.Outcome {
	case constants.OutcomeApproved:
		eff := now.Truncate(24 * time.Hour)
		res.EffectiveDate = &eff
	case constants.OutcomeNeedsReview:
		rd := now.AddDate(0, 0, 30)
		res.ReviewDate = &rd
		prio := "normal"
		if ra.Level == constants.RiskHigh {
			prio = "high"
		}
		res.ReviewPriority = &prio
	}

	res.EligibilityFactors = map[string]any{
		"income_score":          sc.IncomeScore,
		"document_score":        sc.DocumentScore,
		"need_score":            sc.NeedScore,
		"overall_score":         sc.OverallScore,
		"meets_income_criteria": ia.MeetsCriteria,
		"income_ratio":          ia.Ratio,
	}
	res.RiskAssessment = ra.data()
	res.Reasoning = e.buildReasoning(res, ia, dv, sc, ra, income, balance)
	return res
}

func (e *Engine) recordStep(t *entity.ReasoningTrace, kind entity.StepKind, content string, conf *float64, data map[string]any) {
	t.Steps = append(t.Steps, entity.ReasoningStep{
		Kind:       kind,
		Content:    content,
		Confidence: conf,
		Data:       data,
		Timestamp:  e.now(),
	})
}
