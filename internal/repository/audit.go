package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/auditentry"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// AppendAuditRequest wraps parameters for one audit entry. The audit table
// is append-only; this repository deliberately exposes no update or delete.
type AppendAuditRequest struct {
	DecisionID    uuid.UUID
	ApplicationID uuid.UUID
	Action        constants.AuditAction
	ActorType     constants.ActorType
	ActorID       *string
	PreviousValue map[string]any
	NewValue      map[string]any
	ChangeReason  *string
	SystemContext map[string]any
}

type AuditRepository interface {
	Append(ctx context.Context, req *AppendAuditRequest) (*entity.AuditEntry, error)
	ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.AuditEntry, error)
}

type auditRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditRepository(client *ent.Client, logger *slog.Logger) AuditRepository {
	return &auditRepository{client: client, logger: logger}
}

func (r *auditRepository) Append(ctx context.Context, req *AppendAuditRequest) (*entity.AuditEntry, error) {
	builder := r.client.AuditEntry.Create().
		SetDecisionID(req.DecisionID).
		SetApplicationID(req.ApplicationID).
		SetAction(string(req.Action)).
		SetActorType(string(req.ActorType)).
		SetNillableActorID(req.ActorID).
		SetNillableChangeReason(req.ChangeReason).
		SetNewValue(req.NewValue)
	if req.PreviousValue != nil {
		builder = builder.SetPreviousValue(req.PreviousValue)
	}
	if req.SystemContext != nil {
		builder = builder.SetSystemContext(req.SystemContext)
	}

	entry, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("repository.audit.append_failed",
			"application_id", req.ApplicationID, "action", req.Action, "error", err)
		return nil, err
	}
	return toAuditEntry(entry), nil
}

func (r *auditRepository) ListByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.AuditEntry, error) {
	entries, err := r.client.AuditEntry.Query().
		Where(auditentry.ApplicationID(applicationID)).
		Order(auditentry.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("repository.audit.list_failed",
			"application_id", applicationID, "error", err)
		return nil, err
	}
	result := make([]*entity.AuditEntry, len(entries))
	for i, e := range entries {
		result[i] = toAuditEntry(e)
	}
	return result, nil
}
