package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// AuditEntry rows are append-only: created once, never updated or deleted.
type AuditEntry struct{ ent.Schema }

func (AuditEntry) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "audit_entries"},
	}
}

func (AuditEntry) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("decision_id", uuid.UUID{}).Immutable(),
		field.UUID("application_id", uuid.UUID{}).Immutable(),
		field.String("action").NotEmpty().Immutable().
			Validate(enumValidator(
				string(constants.AuditDecisionMade),
				string(constants.AuditDecisionOverridden),
			)),
		field.String("actor_type").NotEmpty().Immutable().
			Validate(enumValidator(
				string(constants.ActorAISystem),
				string(constants.ActorHumanReviewer),
			)),
		field.String("actor_id").Optional().Nillable().Immutable(),
		field.JSON("previous_value", map[string]any{}).Optional().Immutable(),
		field.JSON("new_value", map[string]any{}).Immutable(),
		field.String("change_reason").Optional().Nillable().Immutable(),
		field.JSON("system_context", map[string]any{}).Optional().Immutable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (AuditEntry) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("decision_id", "created_at"),
		index.Fields("application_id"),
	}
}
