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

type ProcessingLog struct{ ent.Schema }

func (ProcessingLog) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "processing_logs"},
	}
}

func (ProcessingLog) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("document_id", uuid.UUID{}),
		field.String("step").NotEmpty().
			Validate(enumValidator(string(constants.StepOCR), string(constants.StepAnalysis))),
		field.String("status").NotEmpty().
			Validate(enumValidator(
				string(constants.StepStarted),
				string(constants.StepCompleted),
				string(constants.StepFailed),
			)),
		field.JSON("payload", map[string]any{}).Optional(),
		field.Float("confidence").Optional().Nillable(),
		field.Int64("duration_ms").Optional().Nillable(),
		field.String("error").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (ProcessingLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("document_id", "created_at"),
	}
}
