// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/decision"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DecisionCreate is the builder for creating a Decision entity.
type DecisionCreate struct {
	config
	mutation *DecisionMutation
	hooks    []Hook
}

// SetApplicationID sets the "application_id" field.
func (_c *DecisionCreate) SetApplicationID(v uuid.UUID) *DecisionCreate {
	_c.mutation.SetApplicationID(v)
	return _c
}

// SetOutcome sets the "outcome" field.
func (_c *DecisionCreate) SetOutcome(v string) *DecisionCreate {
	_c.mutation.SetOutcome(v)
	return _c
}

// SetConfidenceScore sets the "confidence_score" field.
func (_c *DecisionCreate) SetConfidenceScore(v float64) *DecisionCreate {
	_c.mutation.SetConfidenceScore(v)
	return _c
}

// SetBenefitAmount sets the "benefit_amount" field.
func (_c *DecisionCreate) SetBenefitAmount(v decimal.Decimal) *DecisionCreate {
	_c.mutation.SetBenefitAmount(v)
	return _c
}

// SetCurrency sets the "currency" field.
func (_c *DecisionCreate) SetCurrency(v string) *DecisionCreate {
	_c.mutation.SetCurrency(v)
	return _c
}

// SetFrequency sets the "frequency" field.
func (_c *DecisionCreate) SetFrequency(v string) *DecisionCreate {
	_c.mutation.SetFrequency(v)
	return _c
}

// SetNillableFrequency sets the "frequency" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableFrequency(v *string) *DecisionCreate {
	if v != nil {
		_c.SetFrequency(*v)
	}
	return _c
}

// SetReasoning sets the "reasoning" field.
func (_c *DecisionCreate) SetReasoning(v map[string]interface{}) *DecisionCreate {
	_c.mutation.SetReasoning(v)
	return _c
}

// SetEligibilityFactors sets the "eligibility_factors" field.
func (_c *DecisionCreate) SetEligibilityFactors(v map[string]interface{}) *DecisionCreate {
	_c.mutation.SetEligibilityFactors(v)
	return _c
}

// SetRiskAssessment sets the "risk_assessment" field.
func (_c *DecisionCreate) SetRiskAssessment(v map[string]interface{}) *DecisionCreate {
	_c.mutation.SetRiskAssessment(v)
	return _c
}

// SetModelName sets the "model_name" field.
func (_c *DecisionCreate) SetModelName(v string) *DecisionCreate {
	_c.mutation.SetModelName(v)
	return _c
}

// SetModelVersion sets the "model_version" field.
func (_c *DecisionCreate) SetModelVersion(v string) *DecisionCreate {
	_c.mutation.SetModelVersion(v)
	return _c
}

// SetProcessingTimeMs sets the "processing_time_ms" field.
func (_c *DecisionCreate) SetProcessingTimeMs(v int64) *DecisionCreate {
	_c.mutation.SetProcessingTimeMs(v)
	return _c
}

// SetNillableProcessingTimeMs sets the "processing_time_ms" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableProcessingTimeMs(v *int64) *DecisionCreate {
	if v != nil {
		_c.SetProcessingTimeMs(*v)
	}
	return _c
}

// SetRequiresHumanReview sets the "requires_human_review" field.
func (_c *DecisionCreate) SetRequiresHumanReview(v bool) *DecisionCreate {
	_c.mutation.SetRequiresHumanReview(v)
	return _c
}

// SetNillableRequiresHumanReview sets the "requires_human_review" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableRequiresHumanReview(v *bool) *DecisionCreate {
	if v != nil {
		_c.SetRequiresHumanReview(*v)
	}
	return _c
}

// SetReviewPriority sets the "review_priority" field.
func (_c *DecisionCreate) SetReviewPriority(v string) *DecisionCreate {
	_c.mutation.SetReviewPriority(v)
	return _c
}

// SetNillableReviewPriority sets the "review_priority" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableReviewPriority(v *string) *DecisionCreate {
	if v != nil {
		_c.SetReviewPriority(*v)
	}
	return _c
}

// SetEffectiveDate sets the "effective_date" field.
func (_c *DecisionCreate) SetEffectiveDate(v time.Time) *DecisionCreate {
	_c.mutation.SetEffectiveDate(v)
	return _c
}

// SetNillableEffectiveDate sets the "effective_date" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableEffectiveDate(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetEffectiveDate(*v)
	}
	return _c
}

// SetReviewDate sets the "review_date" field.
func (_c *DecisionCreate) SetReviewDate(v time.Time) *DecisionCreate {
	_c.mutation.SetReviewDate(v)
	return _c
}

// SetNillableReviewDate sets the "review_date" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableReviewDate(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetReviewDate(*v)
	}
	return _c
}

// SetReviewedAt sets the "reviewed_at" field.
func (_c *DecisionCreate) SetReviewedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetReviewedAt(v)
	return _c
}

// SetNillableReviewedAt sets the "reviewed_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableReviewedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetReviewedAt(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DecisionCreate) SetCreatedAt(v time.Time) *DecisionCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableCreatedAt(v *time.Time) *DecisionCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DecisionCreate) SetID(v uuid.UUID) *DecisionCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *DecisionCreate) SetNillableID(v *uuid.UUID) *DecisionCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// Mutation returns the DecisionMutation object of the builder.
func (_c *DecisionCreate) Mutation() *DecisionMutation {
	return _c.mutation
}

// Save creates the Decision in the database.
func (_c *DecisionCreate) Save(ctx context.Context) (*Decision, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DecisionCreate) SaveX(ctx context.Context) *Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DecisionCreate) defaults() {
	if _, ok := _c.mutation.Frequency(); !ok {
		v := decision.DefaultFrequency
		_c.mutation.SetFrequency(v)
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		v := decision.DefaultProcessingTimeMs
		_c.mutation.SetProcessingTimeMs(v)
	}
	if _, ok := _c.mutation.RequiresHumanReview(); !ok {
		v := decision.DefaultRequiresHumanReview
		_c.mutation.SetRequiresHumanReview(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := decision.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := decision.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DecisionCreate) check() error {
	if _, ok := _c.mutation.ApplicationID(); !ok {
		return &ValidationError{Name: "application_id", err: errors.New(`ent: missing required field "Decision.application_id"`)}
	}
	if _, ok := _c.mutation.Outcome(); !ok {
		return &ValidationError{Name: "outcome", err: errors.New(`ent: missing required field "Decision.outcome"`)}
	}
	if v, ok := _c.mutation.Outcome(); ok {
		if err := decision.OutcomeValidator(v); err != nil {
			return &ValidationError{Name: "outcome", err: fmt.Errorf(`ent: validator failed for field "Decision.outcome": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ConfidenceScore(); !ok {
		return &ValidationError{Name: "confidence_score", err: errors.New(`ent: missing required field "Decision.confidence_score"`)}
	}
	if v, ok := _c.mutation.ConfidenceScore(); ok {
		if err := decision.ConfidenceScoreValidator(v); err != nil {
			return &ValidationError{Name: "confidence_score", err: fmt.Errorf(`ent: validator failed for field "Decision.confidence_score": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BenefitAmount(); !ok {
		return &ValidationError{Name: "benefit_amount", err: errors.New(`ent: missing required field "Decision.benefit_amount"`)}
	}
	if _, ok := _c.mutation.Currency(); !ok {
		return &ValidationError{Name: "currency", err: errors.New(`ent: missing required field "Decision.currency"`)}
	}
	if v, ok := _c.mutation.Currency(); ok {
		if err := decision.CurrencyValidator(v); err != nil {
			return &ValidationError{Name: "currency", err: fmt.Errorf(`ent: validator failed for field "Decision.currency": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Frequency(); !ok {
		return &ValidationError{Name: "frequency", err: errors.New(`ent: missing required field "Decision.frequency"`)}
	}
	if _, ok := _c.mutation.ModelName(); !ok {
		return &ValidationError{Name: "model_name", err: errors.New(`ent: missing required field "Decision.model_name"`)}
	}
	if v, ok := _c.mutation.ModelName(); ok {
		if err := decision.ModelNameValidator(v); err != nil {
			return &ValidationError{Name: "model_name", err: fmt.Errorf(`ent: validator failed for field "Decision.model_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ModelVersion(); !ok {
		return &ValidationError{Name: "model_version", err: errors.New(`ent: missing required field "Decision.model_version"`)}
	}
	if v, ok := _c.mutation.ModelVersion(); ok {
		if err := decision.ModelVersionValidator(v); err != nil {
			return &ValidationError{Name: "model_version", err: fmt.Errorf(`ent: validator failed for field "Decision.model_version": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessingTimeMs(); !ok {
		return &ValidationError{Name: "processing_time_ms", err: errors.New(`ent: missing required field "Decision.processing_time_ms"`)}
	}
	if _, ok := _c.mutation.RequiresHumanReview(); !ok {
		return &ValidationError{Name: "requires_human_review", err: errors.New(`ent: missing required field "Decision.requires_human_review"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Decision.created_at"`)}
	}
	return nil
}

func (_c *DecisionCreate) sqlSave(ctx context.Context) (*Decision, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DecisionCreate) createSpec() (*Decision, *sqlgraph.CreateSpec) {
	var (
		_node = &Decision{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(decision.Table, sqlgraph.NewFieldSpec(decision.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.ApplicationID(); ok {
		_spec.SetField(decision.FieldApplicationID, field.TypeUUID, value)
		_node.ApplicationID = value
	}
	if value, ok := _c.mutation.Outcome(); ok {
		_spec.SetField(decision.FieldOutcome, field.TypeString, value)
		_node.Outcome = value
	}
	if value, ok := _c.mutation.ConfidenceScore(); ok {
		_spec.SetField(decision.FieldConfidenceScore, field.TypeFloat64, value)
		_node.ConfidenceScore = value
	}
	if value, ok := _c.mutation.BenefitAmount(); ok {
		_spec.SetField(decision.FieldBenefitAmount, field.TypeFloat64, value)
		_node.BenefitAmount = value
	}
	if value, ok := _c.mutation.Currency(); ok {
		_spec.SetField(decision.FieldCurrency, field.TypeString, value)
		_node.Currency = value
	}
	if value, ok := _c.mutation.Frequency(); ok {
		_spec.SetField(decision.FieldFrequency, field.TypeString, value)
		_node.Frequency = value
	}
	if value, ok := _c.mutation.Reasoning(); ok {
		_spec.SetField(decision.FieldReasoning, field.TypeJSON, value)
		_node.Reasoning = value
	}
	if value, ok := _c.mutation.EligibilityFactors(); ok {
		_spec.SetField(decision.FieldEligibilityFactors, field.TypeJSON, value)
		_node.EligibilityFactors = value
	}
	if value, ok := _c.mutation.RiskAssessment(); ok {
		_spec.SetField(decision.FieldRiskAssessment, field.TypeJSON, value)
		_node.RiskAssessment = value
	}
	if value, ok := _c.mutation.ModelName(); ok {
		_spec.SetField(decision.FieldModelName, field.TypeString, value)
		_node.ModelName = value
	}
	if value, ok := _c.mutation.ModelVersion(); ok {
		_spec.SetField(decision.FieldModelVersion, field.TypeString, value)
		_node.ModelVersion = value
	}
	if value, ok := _c.mutation.ProcessingTimeMs(); ok {
		_spec.SetField(decision.FieldProcessingTimeMs, field.TypeInt64, value)
		_node.ProcessingTimeMs = value
	}
	if value, ok := _c.mutation.RequiresHumanReview(); ok {
		_spec.SetField(decision.FieldRequiresHumanReview, field.TypeBool, value)
		_node.RequiresHumanReview = value
	}
	if value, ok := _c.mutation.ReviewPriority(); ok {
		_spec.SetField(decision.FieldReviewPriority, field.TypeString, value)
		_node.ReviewPriority = &value
	}
	if value, ok := _c.mutation.EffectiveDate(); ok {
		_spec.SetField(decision.FieldEffectiveDate, field.TypeTime, value)
		_node.EffectiveDate = &value
	}
	if value, ok := _c.mutation.ReviewDate(); ok {
		_spec.SetField(decision.FieldReviewDate, field.TypeTime, value)
		_node.ReviewDate = &value
	}
	if value, ok := _c.mutation.ReviewedAt(); ok {
		_spec.SetField(decision.FieldReviewedAt, field.TypeTime, value)
		_node.ReviewedAt = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(decision.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DecisionCreateBulk is the builder for creating many Decision entities in bulk.
type DecisionCreateBulk struct {
	config
	err      error
	builders []*DecisionCreate
}

// Save creates the Decision entities in the database.
func (_c *DecisionCreateBulk) Save(ctx context.Context) ([]*Decision, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Decision, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DecisionMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *DecisionCreateBulk) SaveX(ctx context.Context) []*Decision {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DecisionCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DecisionCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
