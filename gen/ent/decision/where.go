// Code generated by ent, DO NOT EDIT.

package decision

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldID, id))
}

// ApplicationID applies equality check predicate on the "application_id" field. It's identical to ApplicationIDEQ.
func ApplicationID(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApplicationID, v))
}

// Outcome applies equality check predicate on the "outcome" field. It's identical to OutcomeEQ.
func Outcome(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcome, v))
}

// ConfidenceScore applies equality check predicate on the "confidence_score" field. It's identical to ConfidenceScoreEQ.
func ConfidenceScore(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldConfidenceScore, v))
}

// BenefitAmount applies equality check predicate on the "benefit_amount" field. It's identical to BenefitAmountEQ.
func BenefitAmount(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldBenefitAmount, v))
}

// Currency applies equality check predicate on the "currency" field. It's identical to CurrencyEQ.
func Currency(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCurrency, v))
}

// Frequency applies equality check predicate on the "frequency" field. It's identical to FrequencyEQ.
func Frequency(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldFrequency, v))
}

// ModelName applies equality check predicate on the "model_name" field. It's identical to ModelNameEQ.
func ModelName(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldModelName, v))
}

// ModelVersion applies equality check predicate on the "model_version" field. It's identical to ModelVersionEQ.
func ModelVersion(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldModelVersion, v))
}

// ProcessingTimeMs applies equality check predicate on the "processing_time_ms" field. It's identical to ProcessingTimeMsEQ.
func ProcessingTimeMs(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// RequiresHumanReview applies equality check predicate on the "requires_human_review" field. It's identical to RequiresHumanReviewEQ.
func RequiresHumanReview(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// ReviewPriority applies equality check predicate on the "review_priority" field. It's identical to ReviewPriorityEQ.
func ReviewPriority(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewPriority, v))
}

// EffectiveDate applies equality check predicate on the "effective_date" field. It's identical to EffectiveDateEQ.
func EffectiveDate(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldEffectiveDate, v))
}

// ReviewDate applies equality check predicate on the "review_date" field. It's identical to ReviewDateEQ.
func ReviewDate(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewDate, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCreatedAt, v))
}

// ApplicationIDEQ applies the EQ predicate on the "application_id" field.
func ApplicationIDEQ(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldApplicationID, v))
}

// ApplicationIDNEQ applies the NEQ predicate on the "application_id" field.
func ApplicationIDNEQ(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldApplicationID, v))
}

// ApplicationIDIn applies the In predicate on the "application_id" field.
func ApplicationIDIn(vs ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldApplicationID, vs...))
}

// ApplicationIDNotIn applies the NotIn predicate on the "application_id" field.
func ApplicationIDNotIn(vs ...uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldApplicationID, vs...))
}

// ApplicationIDGT applies the GT predicate on the "application_id" field.
func ApplicationIDGT(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldApplicationID, v))
}

// ApplicationIDGTE applies the GTE predicate on the "application_id" field.
func ApplicationIDGTE(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldApplicationID, v))
}

// ApplicationIDLT applies the LT predicate on the "application_id" field.
func ApplicationIDLT(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldApplicationID, v))
}

// ApplicationIDLTE applies the LTE predicate on the "application_id" field.
func ApplicationIDLTE(v uuid.UUID) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldApplicationID, v))
}

// OutcomeEQ applies the EQ predicate on the "outcome" field.
func OutcomeEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldOutcome, v))
}

// OutcomeNEQ applies the NEQ predicate on the "outcome" field.
func OutcomeNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldOutcome, v))
}

// OutcomeIn applies the In predicate on the "outcome" field.
func OutcomeIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldOutcome, vs...))
}

// OutcomeNotIn applies the NotIn predicate on the "outcome" field.
func OutcomeNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldOutcome, vs...))
}

// OutcomeGT applies the GT predicate on the "outcome" field.
func OutcomeGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldOutcome, v))
}

// OutcomeGTE applies the GTE predicate on the "outcome" field.
func OutcomeGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldOutcome, v))
}

// OutcomeLT applies the LT predicate on the "outcome" field.
func OutcomeLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldOutcome, v))
}

// OutcomeLTE applies the LTE predicate on the "outcome" field.
func OutcomeLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldOutcome, v))
}

// OutcomeContains applies the Contains predicate on the "outcome" field.
func OutcomeContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldOutcome, v))
}

// OutcomeHasPrefix applies the HasPrefix predicate on the "outcome" field.
func OutcomeHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldOutcome, v))
}

// OutcomeHasSuffix applies the HasSuffix predicate on the "outcome" field.
func OutcomeHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldOutcome, v))
}

// OutcomeEqualFold applies the EqualFold predicate on the "outcome" field.
func OutcomeEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldOutcome, v))
}

// OutcomeContainsFold applies the ContainsFold predicate on the "outcome" field.
func OutcomeContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldOutcome, v))
}

// ConfidenceScoreEQ applies the EQ predicate on the "confidence_score" field.
func ConfidenceScoreEQ(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreNEQ applies the NEQ predicate on the "confidence_score" field.
func ConfidenceScoreNEQ(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldConfidenceScore, v))
}

// ConfidenceScoreIn applies the In predicate on the "confidence_score" field.
func ConfidenceScoreIn(vs ...float64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreNotIn applies the NotIn predicate on the "confidence_score" field.
func ConfidenceScoreNotIn(vs ...float64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldConfidenceScore, vs...))
}

// ConfidenceScoreGT applies the GT predicate on the "confidence_score" field.
func ConfidenceScoreGT(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldConfidenceScore, v))
}

// ConfidenceScoreGTE applies the GTE predicate on the "confidence_score" field.
func ConfidenceScoreGTE(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldConfidenceScore, v))
}

// ConfidenceScoreLT applies the LT predicate on the "confidence_score" field.
func ConfidenceScoreLT(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldConfidenceScore, v))
}

// ConfidenceScoreLTE applies the LTE predicate on the "confidence_score" field.
func ConfidenceScoreLTE(v float64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldConfidenceScore, v))
}

// BenefitAmountEQ applies the EQ predicate on the "benefit_amount" field.
func BenefitAmountEQ(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldBenefitAmount, v))
}

// BenefitAmountNEQ applies the NEQ predicate on the "benefit_amount" field.
func BenefitAmountNEQ(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldBenefitAmount, v))
}

// BenefitAmountIn applies the In predicate on the "benefit_amount" field.
func BenefitAmountIn(vs ...decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldBenefitAmount, vs...))
}

// BenefitAmountNotIn applies the NotIn predicate on the "benefit_amount" field.
func BenefitAmountNotIn(vs ...decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldBenefitAmount, vs...))
}

// BenefitAmountGT applies the GT predicate on the "benefit_amount" field.
func BenefitAmountGT(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldBenefitAmount, v))
}

// BenefitAmountGTE applies the GTE predicate on the "benefit_amount" field.
func BenefitAmountGTE(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldBenefitAmount, v))
}

// BenefitAmountLT applies the LT predicate on the "benefit_amount" field.
func BenefitAmountLT(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldBenefitAmount, v))
}

// BenefitAmountLTE applies the LTE predicate on the "benefit_amount" field.
func BenefitAmountLTE(v decimal.Decimal) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldBenefitAmount, v))
}

// CurrencyEQ applies the EQ predicate on the "currency" field.
func CurrencyEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCurrency, v))
}

// CurrencyNEQ applies the NEQ predicate on the "currency" field.
func CurrencyNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCurrency, v))
}

// CurrencyIn applies the In predicate on the "currency" field.
func CurrencyIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCurrency, vs...))
}

// CurrencyNotIn applies the NotIn predicate on the "currency" field.
func CurrencyNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCurrency, vs...))
}

// CurrencyGT applies the GT predicate on the "currency" field.
func CurrencyGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCurrency, v))
}

// CurrencyGTE applies the GTE predicate on the "currency" field.
func CurrencyGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCurrency, v))
}

// CurrencyLT applies the LT predicate on the "currency" field.
func CurrencyLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCurrency, v))
}

// CurrencyLTE applies the LTE predicate on the "currency" field.
func CurrencyLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCurrency, v))
}

// CurrencyContains applies the Contains predicate on the "currency" field.
func CurrencyContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldCurrency, v))
}

// CurrencyHasPrefix applies the HasPrefix predicate on the "currency" field.
func CurrencyHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldCurrency, v))
}

// CurrencyHasSuffix applies the HasSuffix predicate on the "currency" field.
func CurrencyHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldCurrency, v))
}

// CurrencyEqualFold applies the EqualFold predicate on the "currency" field.
func CurrencyEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldCurrency, v))
}

// CurrencyContainsFold applies the ContainsFold predicate on the "currency" field.
func CurrencyContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldCurrency, v))
}

// FrequencyEQ applies the EQ predicate on the "frequency" field.
func FrequencyEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldFrequency, v))
}

// FrequencyNEQ applies the NEQ predicate on the "frequency" field.
func FrequencyNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldFrequency, v))
}

// FrequencyIn applies the In predicate on the "frequency" field.
func FrequencyIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldFrequency, vs...))
}

// FrequencyNotIn applies the NotIn predicate on the "frequency" field.
func FrequencyNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldFrequency, vs...))
}

// FrequencyGT applies the GT predicate on the "frequency" field.
func FrequencyGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldFrequency, v))
}

// FrequencyGTE applies the GTE predicate on the "frequency" field.
func FrequencyGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldFrequency, v))
}

// FrequencyLT applies the LT predicate on the "frequency" field.
func FrequencyLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldFrequency, v))
}

// FrequencyLTE applies the LTE predicate on the "frequency" field.
func FrequencyLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldFrequency, v))
}

// FrequencyContains applies the Contains predicate on the "frequency" field.
func FrequencyContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldFrequency, v))
}

// FrequencyHasPrefix applies the HasPrefix predicate on the "frequency" field.
func FrequencyHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldFrequency, v))
}

// FrequencyHasSuffix applies the HasSuffix predicate on the "frequency" field.
func FrequencyHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldFrequency, v))
}

// FrequencyEqualFold applies the EqualFold predicate on the "frequency" field.
func FrequencyEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldFrequency, v))
}

// FrequencyContainsFold applies the ContainsFold predicate on the "frequency" field.
func FrequencyContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldFrequency, v))
}

// ReasoningIsNil applies the IsNil predicate on the "reasoning" field.
func ReasoningIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldReasoning))
}

// ReasoningNotNil applies the NotNil predicate on the "reasoning" field.
func ReasoningNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldReasoning))
}

// EligibilityFactorsIsNil applies the IsNil predicate on the "eligibility_factors" field.
func EligibilityFactorsIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldEligibilityFactors))
}

// EligibilityFactorsNotNil applies the NotNil predicate on the "eligibility_factors" field.
func EligibilityFactorsNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldEligibilityFactors))
}

// RiskAssessmentIsNil applies the IsNil predicate on the "risk_assessment" field.
func RiskAssessmentIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldRiskAssessment))
}

// RiskAssessmentNotNil applies the NotNil predicate on the "risk_assessment" field.
func RiskAssessmentNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldRiskAssessment))
}

// ModelNameEQ applies the EQ predicate on the "model_name" field.
func ModelNameEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldModelName, v))
}

// ModelNameNEQ applies the NEQ predicate on the "model_name" field.
func ModelNameNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldModelName, v))
}

// ModelNameIn applies the In predicate on the "model_name" field.
func ModelNameIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldModelName, vs...))
}

// ModelNameNotIn applies the NotIn predicate on the "model_name" field.
func ModelNameNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldModelName, vs...))
}

// ModelNameGT applies the GT predicate on the "model_name" field.
func ModelNameGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldModelName, v))
}

// ModelNameGTE applies the GTE predicate on the "model_name" field.
func ModelNameGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldModelName, v))
}

// ModelNameLT applies the LT predicate on the "model_name" field.
func ModelNameLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldModelName, v))
}

// ModelNameLTE applies the LTE predicate on the "model_name" field.
func ModelNameLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldModelName, v))
}

// ModelNameContains applies the Contains predicate on the "model_name" field.
func ModelNameContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldModelName, v))
}

// ModelNameHasPrefix applies the HasPrefix predicate on the "model_name" field.
func ModelNameHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldModelName, v))
}

// ModelNameHasSuffix applies the HasSuffix predicate on the "model_name" field.
func ModelNameHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldModelName, v))
}

// ModelNameEqualFold applies the EqualFold predicate on the "model_name" field.
func ModelNameEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldModelName, v))
}

// ModelNameContainsFold applies the ContainsFold predicate on the "model_name" field.
func ModelNameContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldModelName, v))
}

// ModelVersionEQ applies the EQ predicate on the "model_version" field.
func ModelVersionEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldModelVersion, v))
}

// ModelVersionNEQ applies the NEQ predicate on the "model_version" field.
func ModelVersionNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldModelVersion, v))
}

// ModelVersionIn applies the In predicate on the "model_version" field.
func ModelVersionIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldModelVersion, vs...))
}

// ModelVersionNotIn applies the NotIn predicate on the "model_version" field.
func ModelVersionNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldModelVersion, vs...))
}

// ModelVersionGT applies the GT predicate on the "model_version" field.
func ModelVersionGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldModelVersion, v))
}

// ModelVersionGTE applies the GTE predicate on the "model_version" field.
func ModelVersionGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldModelVersion, v))
}

// ModelVersionLT applies the LT predicate on the "model_version" field.
func ModelVersionLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldModelVersion, v))
}

// ModelVersionLTE applies the LTE predicate on the "model_version" field.
func ModelVersionLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldModelVersion, v))
}

// ModelVersionContains applies the Contains predicate on the "model_version" field.
func ModelVersionContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldModelVersion, v))
}

// ModelVersionHasPrefix applies the HasPrefix predicate on the "model_version" field.
func ModelVersionHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldModelVersion, v))
}

// ModelVersionHasSuffix applies the HasSuffix predicate on the "model_version" field.
func ModelVersionHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldModelVersion, v))
}

// ModelVersionEqualFold applies the EqualFold predicate on the "model_version" field.
func ModelVersionEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldModelVersion, v))
}

// ModelVersionContainsFold applies the ContainsFold predicate on the "model_version" field.
func ModelVersionContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldModelVersion, v))
}

// ProcessingTimeMsEQ applies the EQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsNEQ applies the NEQ predicate on the "processing_time_ms" field.
func ProcessingTimeMsNEQ(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsIn applies the In predicate on the "processing_time_ms" field.
func ProcessingTimeMsIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsNotIn applies the NotIn predicate on the "processing_time_ms" field.
func ProcessingTimeMsNotIn(vs ...int64) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldProcessingTimeMs, vs...))
}

// ProcessingTimeMsGT applies the GT predicate on the "processing_time_ms" field.
func ProcessingTimeMsGT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsGTE applies the GTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsGTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLT applies the LT predicate on the "processing_time_ms" field.
func ProcessingTimeMsLT(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldProcessingTimeMs, v))
}

// ProcessingTimeMsLTE applies the LTE predicate on the "processing_time_ms" field.
func ProcessingTimeMsLTE(v int64) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldProcessingTimeMs, v))
}

// RequiresHumanReviewEQ applies the EQ predicate on the "requires_human_review" field.
func RequiresHumanReviewEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldRequiresHumanReview, v))
}

// RequiresHumanReviewNEQ applies the NEQ predicate on the "requires_human_review" field.
func RequiresHumanReviewNEQ(v bool) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldRequiresHumanReview, v))
}

// ReviewPriorityEQ applies the EQ predicate on the "review_priority" field.
func ReviewPriorityEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewPriority, v))
}

// ReviewPriorityNEQ applies the NEQ predicate on the "review_priority" field.
func ReviewPriorityNEQ(v string) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldReviewPriority, v))
}

// ReviewPriorityIn applies the In predicate on the "review_priority" field.
func ReviewPriorityIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldReviewPriority, vs...))
}

// ReviewPriorityNotIn applies the NotIn predicate on the "review_priority" field.
func ReviewPriorityNotIn(vs ...string) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldReviewPriority, vs...))
}

// ReviewPriorityGT applies the GT predicate on the "review_priority" field.
func ReviewPriorityGT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldReviewPriority, v))
}

// ReviewPriorityGTE applies the GTE predicate on the "review_priority" field.
func ReviewPriorityGTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldReviewPriority, v))
}

// ReviewPriorityLT applies the LT predicate on the "review_priority" field.
func ReviewPriorityLT(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldReviewPriority, v))
}

// ReviewPriorityLTE applies the LTE predicate on the "review_priority" field.
func ReviewPriorityLTE(v string) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldReviewPriority, v))
}

// ReviewPriorityContains applies the Contains predicate on the "review_priority" field.
func ReviewPriorityContains(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContains(FieldReviewPriority, v))
}

// ReviewPriorityHasPrefix applies the HasPrefix predicate on the "review_priority" field.
func ReviewPriorityHasPrefix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasPrefix(FieldReviewPriority, v))
}

// ReviewPriorityHasSuffix applies the HasSuffix predicate on the "review_priority" field.
func ReviewPriorityHasSuffix(v string) predicate.Decision {
	return predicate.Decision(sql.FieldHasSuffix(FieldReviewPriority, v))
}

// ReviewPriorityIsNil applies the IsNil predicate on the "review_priority" field.
func ReviewPriorityIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldReviewPriority))
}

// ReviewPriorityNotNil applies the NotNil predicate on the "review_priority" field.
func ReviewPriorityNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldReviewPriority))
}

// ReviewPriorityEqualFold applies the EqualFold predicate on the "review_priority" field.
func ReviewPriorityEqualFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldEqualFold(FieldReviewPriority, v))
}

// ReviewPriorityContainsFold applies the ContainsFold predicate on the "review_priority" field.
func ReviewPriorityContainsFold(v string) predicate.Decision {
	return predicate.Decision(sql.FieldContainsFold(FieldReviewPriority, v))
}

// EffectiveDateEQ applies the EQ predicate on the "effective_date" field.
func EffectiveDateEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldEffectiveDate, v))
}

// EffectiveDateNEQ applies the NEQ predicate on the "effective_date" field.
func EffectiveDateNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldEffectiveDate, v))
}

// EffectiveDateIn applies the In predicate on the "effective_date" field.
func EffectiveDateIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldEffectiveDate, vs...))
}

// EffectiveDateNotIn applies the NotIn predicate on the "effective_date" field.
func EffectiveDateNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldEffectiveDate, vs...))
}

// EffectiveDateGT applies the GT predicate on the "effective_date" field.
func EffectiveDateGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldEffectiveDate, v))
}

// EffectiveDateGTE applies the GTE predicate on the "effective_date" field.
func EffectiveDateGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldEffectiveDate, v))
}

// EffectiveDateLT applies the LT predicate on the "effective_date" field.
func EffectiveDateLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldEffectiveDate, v))
}

// EffectiveDateLTE applies the LTE predicate on the "effective_date" field.
func EffectiveDateLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldEffectiveDate, v))
}

// EffectiveDateIsNil applies the IsNil predicate on the "effective_date" field.
func EffectiveDateIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldEffectiveDate))
}

// EffectiveDateNotNil applies the NotNil predicate on the "effective_date" field.
func EffectiveDateNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldEffectiveDate))
}

// ReviewDateEQ applies the EQ predicate on the "review_date" field.
func ReviewDateEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewDate, v))
}

// ReviewDateNEQ applies the NEQ predicate on the "review_date" field.
func ReviewDateNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldReviewDate, v))
}

// ReviewDateIn applies the In predicate on the "review_date" field.
func ReviewDateIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldReviewDate, vs...))
}

// ReviewDateNotIn applies the NotIn predicate on the "review_date" field.
func ReviewDateNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldReviewDate, vs...))
}

// ReviewDateGT applies the GT predicate on the "review_date" field.
func ReviewDateGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldReviewDate, v))
}

// ReviewDateGTE applies the GTE predicate on the "review_date" field.
func ReviewDateGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldReviewDate, v))
}

// ReviewDateLT applies the LT predicate on the "review_date" field.
func ReviewDateLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldReviewDate, v))
}

// ReviewDateLTE applies the LTE predicate on the "review_date" field.
func ReviewDateLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldReviewDate, v))
}

// ReviewDateIsNil applies the IsNil predicate on the "review_date" field.
func ReviewDateIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldReviewDate))
}

// ReviewDateNotNil applies the NotNil predicate on the "review_date" field.
func ReviewDateNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldReviewDate))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Decision {
	return predicate.Decision(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Decision {
	return predicate.Decision(sql.FieldNotNull(FieldReviewedAt))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Decision {
	return predicate.Decision(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Decision) predicate.Decision {
	return predicate.Decision(sql.NotPredicates(p))
}
