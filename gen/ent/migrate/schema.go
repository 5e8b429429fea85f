// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AuditEntriesColumns holds the columns for the "audit_entries" table.
	AuditEntriesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "decision_id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeUUID},
		{Name: "action", Type: field.TypeString},
		{Name: "actor_type", Type: field.TypeString},
		{Name: "actor_id", Type: field.TypeString, Nullable: true},
		{Name: "previous_value", Type: field.TypeJSON, Nullable: true},
		{Name: "new_value", Type: field.TypeJSON},
		{Name: "change_reason", Type: field.TypeString, Nullable: true},
		{Name: "system_context", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// AuditEntriesTable holds the schema information for the "audit_entries" table.
	AuditEntriesTable = &schema.Table{
		Name:       "audit_entries",
		Columns:    AuditEntriesColumns,
		PrimaryKey: []*schema.Column{AuditEntriesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "auditentry_decision_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[1], AuditEntriesColumns[10]},
			},
			{
				Name:    "auditentry_application_id",
				Unique:  false,
				Columns: []*schema.Column{AuditEntriesColumns[2]},
			},
		},
	}
	// DecisionsColumns holds the columns for the "decisions" table.
	DecisionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeUUID, Unique: true},
		{Name: "outcome", Type: field.TypeString},
		{Name: "confidence_score", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(5,4)"}},
		{Name: "benefit_amount", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "currency", Type: field.TypeString, Size: 3, SchemaType: map[string]string{"postgres": "char(3)"}},
		{Name: "frequency", Type: field.TypeString, Default: "monthly"},
		{Name: "reasoning", Type: field.TypeJSON, Nullable: true},
		{Name: "eligibility_factors", Type: field.TypeJSON, Nullable: true},
		{Name: "risk_assessment", Type: field.TypeJSON, Nullable: true},
		{Name: "model_name", Type: field.TypeString},
		{Name: "model_version", Type: field.TypeString},
		{Name: "processing_time_ms", Type: field.TypeInt64, Default: 0},
		{Name: "requires_human_review", Type: field.TypeBool, Default: false},
		{Name: "review_priority", Type: field.TypeString, Nullable: true},
		{Name: "effective_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "review_date", Type: field.TypeTime, Nullable: true, SchemaType: map[string]string{"postgres": "date"}},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DecisionsTable holds the schema information for the "decisions" table.
	DecisionsTable = &schema.Table{
		Name:       "decisions",
		Columns:    DecisionsColumns,
		PrimaryKey: []*schema.Column{DecisionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "decision_outcome_created_at",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[2], DecisionsColumns[18]},
			},
			{
				Name:    "decision_requires_human_review",
				Unique:  false,
				Columns: []*schema.Column{DecisionsColumns[13]},
			},
		},
	}
	// DocumentsColumns holds the columns for the "documents" table.
	DocumentsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "application_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeString},
		{Name: "file_path", Type: field.TypeString},
		{Name: "extracted_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "ocr_confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "structured_data", Type: field.TypeJSON, Nullable: true},
		{Name: "status", Type: field.TypeString, Default: "uploaded"},
		{Name: "retry_count", Type: field.TypeInt, Default: 0},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "uploaded_at", Type: field.TypeTime},
		{Name: "processed_at", Type: field.TypeTime, Nullable: true},
	}
	// DocumentsTable holds the schema information for the "documents" table.
	DocumentsTable = &schema.Table{
		Name:       "documents",
		Columns:    DocumentsColumns,
		PrimaryKey: []*schema.Column{DocumentsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "document_application_id_kind",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[2]},
			},
			{
				Name:    "document_application_id_status",
				Unique:  false,
				Columns: []*schema.Column{DocumentsColumns[1], DocumentsColumns[7]},
			},
		},
	}
	// ProcessingLogsColumns holds the columns for the "processing_logs" table.
	ProcessingLogsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "document_id", Type: field.TypeUUID},
		{Name: "step", Type: field.TypeString},
		{Name: "status", Type: field.TypeString},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "confidence", Type: field.TypeFloat64, Nullable: true},
		{Name: "duration_ms", Type: field.TypeInt64, Nullable: true},
		{Name: "error", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// ProcessingLogsTable holds the schema information for the "processing_logs" table.
	ProcessingLogsTable = &schema.Table{
		Name:       "processing_logs",
		Columns:    ProcessingLogsColumns,
		PrimaryKey: []*schema.Column{ProcessingLogsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "processinglog_document_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{ProcessingLogsColumns[1], ProcessingLogsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AuditEntriesTable,
		DecisionsTable,
		DocumentsTable,
		ProcessingLogsTable,
	}
)

func init() {
	AuditEntriesTable.Annotation = &entsql.Annotation{
		Table: "audit_entries",
	}
	DecisionsTable.Annotation = &entsql.Annotation{
		Table: "decisions",
	}
	DocumentsTable.Annotation = &entsql.Annotation{
		Table: "documents",
	}
	ProcessingLogsTable.Annotation = &entsql.Annotation{
		Table: "processing_logs",
	}
}
