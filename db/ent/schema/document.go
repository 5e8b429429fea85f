package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

type Document struct{ ent.Schema }

func (Document) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "documents"},
	}
}

func (Document) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("application_id", uuid.UUID{}),
		field.String("kind").NotEmpty().
			Validate(enumValidator(constants.KindStrings()...)),
		field.String("file_path").NotEmpty(),
		field.String("extracted_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Float("ocr_confidence").Optional().Nillable().
			Min(0).Max(1),
		field.JSON("structured_data", map[string]any{}).Optional(),
		field.String("status").Default(string(constants.StatusUploaded)),
		field.Int("retry_count").Default(0).NonNegative(),
		field.String("error_message").Optional().Nillable(),
		field.Time("uploaded_at").Default(time.Now).Immutable(),
		field.Time("processed_at").Optional().Nillable(),
	}
}

func (Document) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("application_id", "kind"),
		index.Fields("application_id", "status"),
	}
}
