// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/decision"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/predicate"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DecisionUpdate is the builder for updating Decision entities.
type DecisionUpdate struct {
	config
	hooks    []Hook
	mutation *DecisionMutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdate) Where(ps ...predicate.Decision) *DecisionUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetApplicationID sets the "application_id" field.
func (_u *DecisionUpdate) SetApplicationID(v uuid.UUID) *DecisionUpdate {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableApplicationID(v *uuid.UUID) *DecisionUpdate {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DecisionUpdate) SetOutcome(v string) *DecisionUpdate {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableOutcome(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DecisionUpdate) SetConfidenceScore(v float64) *DecisionUpdate {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableConfidenceScore(v *float64) *DecisionUpdate {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DecisionUpdate) AddConfidenceScore(v float64) *DecisionUpdate {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_u *DecisionUpdate) SetBenefitAmount(v decimal.Decimal) *DecisionUpdate {
	_u.mutation.ResetBenefitAmount()
	_u.mutation.SetBenefitAmount(v)
	return _u
}

// SetNillableBenefitAmount sets the "benefit_amount" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableBenefitAmount(v *decimal.Decimal) *DecisionUpdate {
	if v != nil {
		_u.SetBenefitAmount(*v)
	}
	return _u
}

// AddBenefitAmount adds value to the "benefit_amount" field.
func (_u *DecisionUpdate) AddBenefitAmount(v decimal.Decimal) *DecisionUpdate {
	_u.mutation.AddBenefitAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DecisionUpdate) SetCurrency(v string) *DecisionUpdate {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableCurrency(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *DecisionUpdate) SetFrequency(v string) *DecisionUpdate {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableFrequency(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionUpdate) SetReasoning(v map[string]interface{}) *DecisionUpdate {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *DecisionUpdate) ClearReasoning() *DecisionUpdate {
	_u.mutation.ClearReasoning()
	return _u
}

// SetEligibilityFactors sets the "eligibility_factors" field.
func (_u *DecisionUpdate) SetEligibilityFactors(v map[string]interface{}) *DecisionUpdate {
	_u.mutation.SetEligibilityFactors(v)
	return _u
}

// ClearEligibilityFactors clears the value of the "eligibility_factors" field.
func (_u *DecisionUpdate) ClearEligibilityFactors() *DecisionUpdate {
	_u.mutation.ClearEligibilityFactors()
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *DecisionUpdate) SetRiskAssessment(v map[string]interface{}) *DecisionUpdate {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *DecisionUpdate) ClearRiskAssessment() *DecisionUpdate {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DecisionUpdate) SetModelName(v string) *DecisionUpdate {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableModelName(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *DecisionUpdate) SetModelVersion(v string) *DecisionUpdate {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableModelVersion(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *DecisionUpdate) SetProcessingTimeMs(v int64) *DecisionUpdate {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableProcessingTimeMs(v *int64) *DecisionUpdate {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *DecisionUpdate) AddProcessingTimeMs(v int64) *DecisionUpdate {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *DecisionUpdate) SetRequiresHumanReview(v bool) *DecisionUpdate {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableRequiresHumanReview(v *bool) *DecisionUpdate {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// SetReviewPriority sets the "review_priority" field.
func (_u *DecisionUpdate) SetReviewPriority(v string) *DecisionUpdate {
	_u.mutation.SetReviewPriority(v)
	return _u
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableReviewPriority(v *string) *DecisionUpdate {
	if v != nil {
		_u.SetReviewPriority(*v)
	}
	return _u
}

// ClearReviewPriority clears the value of the "review_priority" field.
func (_u *DecisionUpdate) ClearReviewPriority() *DecisionUpdate {
	_u.mutation.ClearReviewPriority()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *DecisionUpdate) SetEffectiveDate(v time.Time) *DecisionUpdate {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableEffectiveDate(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *DecisionUpdate) ClearEffectiveDate() *DecisionUpdate {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetReviewDate sets the "review_date" field.
func (_u *DecisionUpdate) SetReviewDate(v time.Time) *DecisionUpdate {
	_u.mutation.SetReviewDate(v)
	return _u
}

// SetNillableReviewDate sets the "review_date" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableReviewDate(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetReviewDate(*v)
	}
	return _u
}

// ClearReviewDate clears the value of the "review_date" field.
func (_u *DecisionUpdate) ClearReviewDate() *DecisionUpdate {
	_u.mutation.ClearReviewDate()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DecisionUpdate) SetReviewedAt(v time.Time) *DecisionUpdate {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DecisionUpdate) SetNillableReviewedAt(v *time.Time) *DecisionUpdate {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DecisionUpdate) ClearReviewedAt() *DecisionUpdate {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdate) Mutation() *DecisionMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DecisionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DecisionUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdate) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := decision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := decision.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Decision.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := decision.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Decision.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := decision.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Decision.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := decision.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "Decision.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ApplicationID(); ok {
		_spec.SetField(decision.FieldApplicationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(decision.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(decision.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(decision.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BenefitAmount(); ok {
		_spec.SetField(decision.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenefitAmount(); ok {
		_spec.AddField(decision.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(decision.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(decision.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decision.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(decision.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.EligibilityFactors(); ok {
		_spec.SetField(decision.FieldEligibilityFactors, field.TypeJSON, value)
	}
	if _u.mutation.EligibilityFactorsCleared() {
		_spec.ClearField(decision.FieldEligibilityFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(decision.FieldRiskAssessment, field.TypeJSON, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(decision.FieldRiskAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(decision.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(decision.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(decision.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(decision.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(decision.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewPriority(); ok {
		_spec.SetField(decision.FieldReviewPriority, field.TypeString, value)
	}
	if _u.mutation.ReviewPriorityCleared() {
		_spec.ClearField(decision.FieldReviewPriority, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(decision.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(decision.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewDate(); ok {
		_spec.SetField(decision.FieldReviewDate, field.TypeTime, value)
	}
	if _u.mutation.ReviewDateCleared() {
		_spec.ClearField(decision.FieldReviewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(decision.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(decision.FieldReviewedAt, field.TypeTime)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DecisionUpdateOne is the builder for updating a single Decision entity.
type DecisionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DecisionMutation
}

// SetApplicationID sets the "application_id" field.
func (_u *DecisionUpdateOne) SetApplicationID(v uuid.UUID) *DecisionUpdateOne {
	_u.mutation.SetApplicationID(v)
	return _u
}

// SetNillableApplicationID sets the "application_id" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableApplicationID(v *uuid.UUID) *DecisionUpdateOne {
	if v != nil {
		_u.SetApplicationID(*v)
	}
	return _u
}

// SetOutcome sets the "outcome" field.
func (_u *DecisionUpdateOne) SetOutcome(v string) *DecisionUpdateOne {
	_u.mutation.SetOutcome(v)
	return _u
}

// SetNillableOutcome sets the "outcome" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableOutcome(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetOutcome(*v)
	}
	return _u
}

// SetConfidenceScore sets the "confidence_score" field.
func (_u *DecisionUpdateOne) SetConfidenceScore(v float64) *DecisionUpdateOne {
	_u.mutation.ResetConfidenceScore()
	_u.mutation.SetConfidenceScore(v)
	return _u
}

// SetNillableConfidenceScore sets the "confidence_score" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableConfidenceScore(v *float64) *DecisionUpdateOne {
	if v != nil {
		_u.SetConfidenceScore(*v)
	}
	return _u
}

// AddConfidenceScore adds value to the "confidence_score" field.
func (_u *DecisionUpdateOne) AddConfidenceScore(v float64) *DecisionUpdateOne {
	_u.mutation.AddConfidenceScore(v)
	return _u
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_u *DecisionUpdateOne) SetBenefitAmount(v decimal.Decimal) *DecisionUpdateOne {
	_u.mutation.ResetBenefitAmount()
	_u.mutation.SetBenefitAmount(v)
	return _u
}

// SetNillableBenefitAmount sets the "benefit_amount" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableBenefitAmount(v *decimal.Decimal) *DecisionUpdateOne {
	if v != nil {
		_u.SetBenefitAmount(*v)
	}
	return _u
}

// AddBenefitAmount adds value to the "benefit_amount" field.
func (_u *DecisionUpdateOne) AddBenefitAmount(v decimal.Decimal) *DecisionUpdateOne {
	_u.mutation.AddBenefitAmount(v)
	return _u
}

// SetCurrency sets the "currency" field.
func (_u *DecisionUpdateOne) SetCurrency(v string) *DecisionUpdateOne {
	_u.mutation.SetCurrency(v)
	return _u
}

// SetNillableCurrency sets the "currency" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableCurrency(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetCurrency(*v)
	}
	return _u
}

// SetFrequency sets the "frequency" field.
func (_u *DecisionUpdateOne) SetFrequency(v string) *DecisionUpdateOne {
	_u.mutation.SetFrequency(v)
	return _u
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableFrequency(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetFrequency(*v)
	}
	return _u
}

// SetReasoning sets the "reasoning" field.
func (_u *DecisionUpdateOne) SetReasoning(v map[string]interface{}) *DecisionUpdateOne {
	_u.mutation.SetReasoning(v)
	return _u
}

// ClearReasoning clears the value of the "reasoning" field.
func (_u *DecisionUpdateOne) ClearReasoning() *DecisionUpdateOne {
	_u.mutation.ClearReasoning()
	return _u
}

// SetEligibilityFactors sets the "eligibility_factors" field.
func (_u *DecisionUpdateOne) SetEligibilityFactors(v map[string]interface{}) *DecisionUpdateOne {
	_u.mutation.SetEligibilityFactors(v)
	return _u
}

// ClearEligibilityFactors clears the value of the "eligibility_factors" field.
func (_u *DecisionUpdateOne) ClearEligibilityFactors() *DecisionUpdateOne {
	_u.mutation.ClearEligibilityFactors()
	return _u
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_u *DecisionUpdateOne) SetRiskAssessment(v map[string]interface{}) *DecisionUpdateOne {
	_u.mutation.SetRiskAssessment(v)
	return _u
}

// ClearRiskAssessment clears the value of the "risk_assessment" field.
func (_u *DecisionUpdateOne) ClearRiskAssessment() *DecisionUpdateOne {
	_u.mutation.ClearRiskAssessment()
	return _u
}

// SetModelName sets the "model_name" field.
func (_u *DecisionUpdateOne) SetModelName(v string) *DecisionUpdateOne {
	_u.mutation.SetModelName(v)
	return _u
}

// SetNillableModelName sets the "model_name" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableModelName(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetModelName(*v)
	}
	return _u
}

// SetModelVersion sets the "model_version" field.
func (_u *DecisionUpdateOne) SetModelVersion(v string) *DecisionUpdateOne {
	_u.mutation.SetModelVersion(v)
	return _u
}

// SetNillableModelVersion sets the "model_version" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableModelVersion(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetModelVersion(*v)
	}
	return _u
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_u *DecisionUpdateOne) SetProcessingTimeMs(v int64) *DecisionUpdateOne {
	_u.mutation.ResetProcessingTimeMs()
	_u.mutation.SetProcessingTimeMs(v)
	return _u
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableProcessingTimeMs(v *int64) *DecisionUpdateOne {
	if v != nil {
		_u.SetProcessingTimeMs(*v)
	}
	return _u
}

// AddProcessingTimeMs adds value to the "processing_time_ms" field.
func (_u *DecisionUpdateOne) AddProcessingTimeMs(v int64) *DecisionUpdateOne {
	_u.mutation.AddProcessingTimeMs(v)
	return _u
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_u *DecisionUpdateOne) SetRequiresHumanReview(v bool) *DecisionUpdateOne {
	_u.mutation.SetRequiresHumanReview(v)
	return _u
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableRequiresHumanReview(v *bool) *DecisionUpdateOne {
	if v != nil {
		_u.SetRequiresHumanReview(*v)
	}
	return _u
}

// SetReviewPriority sets the "review_priority" field.
func (_u *DecisionUpdateOne) SetReviewPriority(v string) *DecisionUpdateOne {
	_u.mutation.SetReviewPriority(v)
	return _u
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableReviewPriority(v *string) *DecisionUpdateOne {
	if v != nil {
		_u.SetReviewPriority(*v)
	}
	return _u
}

// ClearReviewPriority clears the value of the "review_priority" field.
func (_u *DecisionUpdateOne) ClearReviewPriority() *DecisionUpdateOne {
	_u.mutation.ClearReviewPriority()
	return _u
}

// SetEffectiveDate sets the "effective_date" field.
func (_u *DecisionUpdateOne) SetEffectiveDate(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetEffectiveDate(v)
	return _u
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableEffectiveDate(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetEffectiveDate(*v)
	}
	return _u
}

// ClearEffectiveDate clears the value of the "effective_date" field.
func (_u *DecisionUpdateOne) ClearEffectiveDate() *DecisionUpdateOne {
	_u.mutation.ClearEffectiveDate()
	return _u
}

// SetReviewDate sets the "review_date" field.
func (_u *DecisionUpdateOne) SetReviewDate(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetReviewDate(v)
	return _u
}

// SetNillableReviewDate sets the "review_date" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableReviewDate(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetReviewDate(*v)
	}
	return _u
}

// ClearReviewDate clears the value of the "review_date" field.
func (_u *DecisionUpdateOne) ClearReviewDate() *DecisionUpdateOne {
	_u.mutation.ClearReviewDate()
	return _u
}

// SetReviewedAt sets the "reviewed_at" field.
func (_u *DecisionUpdateOne) SetReviewedAt(v time.Time) *DecisionUpdateOne {
	_u.mutation.SetReviewedAt(v)
	return _u
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_u *DecisionUpdateOne) SetNillableReviewedAt(v *time.Time) *DecisionUpdateOne {
	if v != nil {
		_u.SetReviewedAt(*v)
	}
	return _u
}

// ClearReviewedAt clears the value of the "reviewed_at" field.
func (_u *DecisionUpdateOne) ClearReviewedAt() *DecisionUpdateOne {
	_u.mutation.ClearReviewedAt()
	return _u
}

// Mutation returns the DecisionMutation object of the builder.
func (_u *DecisionUpdateOne) Mutation() *DecisionMutation {
	return _u.mutation
}

// Where appends a list predicates to the DecisionUpdate builder.
func (_u *DecisionUpdateOne) Where(ps ...predicate.Decision) *DecisionUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DecisionUpdateOne) Select(field string, fields ...string) *DecisionUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Decision entity.
func (_u *DecisionUpdateOne) Save(ctx context.Context) (*Decision, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DecisionUpdateOne) SaveX(ctx context.Context) *Decision {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DecisionUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DecisionUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DecisionUpdateOne) check() error {
	if v, ok := _u.mutation.Outcome(); ok {
		if err := decision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ConfidenceScore(); ok {
		if err := decision.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Decision.confidence_score": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Currency(); ok {
		if err := decision.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Decision.currency": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelName(); ok {
		if err := decision.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Decision.model_name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ModelVersion(); ok {
		if err := decision.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "Decision.model_version": %w`, err)}
		}
	}
	return nil
}

func (_u *DecisionUpdateOne) sqlSave(ctx context.Context) (_node *Decision, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(decision.Table, decision.Columns, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Decision.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, decision.FieldID)
		for _, f := range fields {
			if !decision.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != decision.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ApplicationID(); ok {
		_spec.SetField(decision.FieldApplicationID, field.TypeUUID, value)
	}
	if value, ok := _u.mutation.Outcome(); ok {
		_spec.SetField(decision.FieldOutcome, field.TypeString, value)
	}
	if value, ok := _u.mutation.ConfidenceScore(); ok {
		_spec.SetField(decision.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedConfidenceScore(); ok {
		_spec.AddField(decision.FieldConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.BenefitAmount(); ok {
		_spec.SetField(decision.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedBenefitAmount(); ok {
		_spec.AddField(decision.FieldBenefitAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Currency(); ok {
		_spec.SetField(decision.FieldCurrency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Frequency(); ok {
		_spec.SetField(decision.FieldFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.Reasoning(); ok {
		_spec.SetField(decision.FieldReasoning, field.TypeJSON, value)
	}
	if _u.mutation.ReasoningCleared() {
		_spec.ClearField(decision.FieldReasoning, field.TypeJSON)
	}
	if value, ok := _u.mutation.EligibilityFactors(); ok {
		_spec.SetField(decision.FieldEligibilityFactors, field.TypeJSON, value)
	}
	if _u.mutation.EligibilityFactorsCleared() {
		_spec.ClearField(decision.FieldEligibilityFactors, field.TypeJSON)
	}
	if value, ok := _u.mutation.RiskAssessment(); ok {
		_spec.SetField(decision.FieldRiskAssessment, field.TypeJSON, value)
	}
	if _u.mutation.RiskAssessmentCleared() {
		_spec.ClearField(decision.FieldRiskAssessment, field.TypeJSON)
	}
	if value, ok := _u.mutation.ModelName(); ok {
		_spec.SetField(decision.FieldModelName, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelVersion(); ok {
		_spec.SetField(decision.FieldModelVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(decision.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedProcessingTimeMs(); ok {
		_spec.AddField(decision.FieldProcessingTimeMs, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.RequiresHumanReview(); ok {
		_spec.SetField(decision.FieldRequiresHumanReview, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ReviewPriority(); ok {
		_spec.SetField(decision.FieldReviewPriority, field.TypeString, value)
	}
	if _u.mutation.ReviewPriorityCleared() {
		_spec.ClearField(decision.FieldReviewPriority, field.TypeString)
	}
	if value, ok := _u.mutation.EffectiveDate(); ok {
		_spec.SetField(decision.FieldEffectiveDate, field.TypeTime, value)
	}
	if _u.mutation.EffectiveDateCleared() {
		_spec.ClearField(decision.FieldEffectiveDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewDate(); ok {
		_spec.SetField(decision.FieldReviewDate, field.TypeTime, value)
	}
	if _u.mutation.ReviewDateCleared() {
		_spec.ClearField(decision.FieldReviewDate, field.TypeTime)
	}
	if value, ok := _u.mutation.ReviewedAt(); ok {
		_spec.SetField(decision.FieldReviewedAt, field.TypeTime, value)
	}
	if _u.mutation.ReviewedAtCleared() {
		_spec.ClearField(decision.FieldReviewedAt, field.TypeTime)
	}
	_node = &Decision{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{decision.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
