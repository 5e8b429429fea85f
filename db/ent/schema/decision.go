package schema

import (
	"fmt"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

type Decision struct{ ent.Schema }

func (Decision) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "decisions"},
	}
}

func (Decision) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		// unique: at most one decision per application
		field.UUID("application_id", uuid.UUID{}).Unique(),
		field.String("outcome").NotEmpty().
			Validate(enumValidator(
				string(constants.OutcomeApproved),
				string(constants.OutcomeRejected),
				string(constants.OutcomeNeedsReview),
			)),
		field.Float("confidence_score").Min(0).Max(1).
			SchemaType(map[string]string{dialect.Postgres: "numeric(5,4)"}),
		field.Float("benefit_amount").
			GoType(decimal.Decimal{}).
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("currency").NotEmpty().MinLen(3).MaxLen(3).
			SchemaType(map[string]string{dialect.Postgres: "char(3)"}),
		field.String("frequency").Default("monthly"),
		field.JSON("reasoning", map[string]any{}).Optional(),
		field.JSON("eligibility_factors", map[string]any{}).Optional(),
		field.JSON("risk_assessment", map[string]any{}).Optional(),
		field.String("model_name").NotEmpty(),
		field.String("model_version").NotEmpty(),
		field.Int64("processing_time_ms").Default(0),
		field.Bool("requires_human_review").Default(false),
		field.String("review_priority").Optional().Nillable(),
		field.Time("effective_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("review_date").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "date"}),
		field.Time("reviewed_at").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Decision) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("outcome", "created_at"),
		index.Fields("requires_human_review"),
	}
}

// enumValidator restricts a string field to a fixed value set.
func enumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; !ok {
			return fmt.Errorf("value %q not in %v", s, allowed)
		}
		return nil
	}
}
