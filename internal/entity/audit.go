package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
)

// AuditEntry records one decision mutation. Entries are append-only; nothing
// in the system updates or deletes them.
type AuditEntry struct {
	ID            uuid.UUID             `json:"id"`
	DecisionID    uuid.UUID             `json:"decision_id"`
	ApplicationID uuid.UUID             `json:"application_id"`
	Action        constants.AuditAction `json:"action"`
	ActorType     constants.ActorType   `json:"actor_type"`
	ActorID       *string               `json:"actor_id,omitempty"` // nil for the system
	PreviousValue map[string]any        `json:"previous_value,omitempty"`
	NewValue      map[string]any        `json:"new_value"`
	ChangeReason  *string               `json:"change_reason,omitempty"`
	SystemContext map[string]any        `json:"system_context,omitempty"`
	CreatedAt     time.Time             `json:"created_at"`
}
