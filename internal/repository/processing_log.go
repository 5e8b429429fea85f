package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/processinglog"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// AppendLogRequest wraps parameters for one step-level log entry.
type AppendLogRequest struct {
	DocumentID uuid.UUID
	Step       constants.StepName
	Status     constants.StepStatus
	Payload    map[string]any
	Confidence *float64
	DurationMS *int64
	Error      *string
}

type ProcessingLogRepository interface {
	Append(ctx context.Context, req *AppendLogRequest) (*entity.ProcessingLog, error)
	ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessingLog, error)
}

type processingLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewProcessingLogRepository(client *ent.Client, logger *slog.Logger) ProcessingLogRepository {
	return &processingLogRepository{client: client, logger: logger}
}

func (r *processingLogRepository) Append(ctx context.Context, req *AppendLogRequest) (*entity.ProcessingLog, error) {
	builder := r.client.ProcessingLog.Create().
		SetDocumentID(req.DocumentID).
		SetStep(string(req.Step)).
		SetStatus(string(req.Status)).
		SetNillableConfidence(req.Confidence).
		SetNillableDurationMs(req.DurationMS).
		SetNillableError(req.Error)
	if req.Payload != nil {
		builder = builder.SetPayload(req.Payload)
	}

	log, err := builder.Save(ctx)
	if err != nil {
		r.logger.Error("repository.processing_log.append_failed",
			"document_id", req.DocumentID, "step", req.Step, "error", err)
		return nil, err
	}
	return toProcessingLog(log), nil
}

func (r *processingLogRepository) ListByDocumentID(ctx context.Context, documentID uuid.UUID) ([]*entity.ProcessingLog, error) {
	logs, err := r.client.ProcessingLog.Query().
		Where(processinglog.DocumentID(documentID)).
		Order(processinglog.ByCreatedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("repository.processing_log.list_failed",
			"document_id", documentID, "error", err)
		return nil, err
	}
	result := make([]*entity.ProcessingLog, len(logs))
	for i, l := range logs {
		result[i] = toProcessingLog(l)
	}
	return result, nil
}
