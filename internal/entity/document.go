package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// Document represents an uploaded applicant document for data transfer
// between layers.
type Document struct {
	ID            uuid.UUID                `json:"id"`
	ApplicationID uuid.UUID                `json:"application_id"`
	Kind          constants.DocumentKind   `json:"kind"`
	FilePath      string                   `json:"file_path"`
	ExtractedText *string                  `json:"extracted_text,omitempty"`
	OCRConfidence *float64                 `json:"ocr_confidence,omitempty"` // 0..1
	StructuredData map[string]any          `json:"structured_data,omitempty"`
	Status        constants.DocumentStatus `json:"status"`
	RetryCount    int                      `json:"retry_count"`
	ErrorMessage  *string                  `json:"error_message,omitempty"`
	UploadedAt    time.Time                `json:"uploaded_at"`
	ProcessedAt   *time.Time               `json:"processed_at,omitempty"`
}

// ProcessingLog is one step-level log entry for a document pipeline run.
type ProcessingLog struct {
	ID         uuid.UUID            `json:"id"`
	DocumentID uuid.UUID            `json:"document_id"`
	Step       constants.StepName   `json:"step"`
	Status     constants.StepStatus `json:"status"`
	Payload    map[string]any       `json:"payload,omitempty"`
	Confidence *float64             `json:"confidence,omitempty"`
	DurationMS *int64               `json:"duration_ms,omitempty"`
	Error      *string              `json:"error,omitempty"`
	CreatedAt  time.Time            `json:"created_at"`
}
