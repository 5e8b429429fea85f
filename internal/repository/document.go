package repository

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/gen/ent/document"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
)

// CreateDocumentRequest wraps parameters for registering a document.
type CreateDocumentRequest struct {
	ApplicationID uuid.UUID
	Kind          constants.DocumentKind
	FilePath      string
}

// DocumentRepository persists documents and drives their status machine.
// Every transition method is conditional on the current status: the guarded
// update either moves exactly one row or reports common.ErrConflict, so two
// workers can never interleave the same transition.
type DocumentRepository interface {
	Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error)
	FindByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.Document, error)
	ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error)

	MarkProcessing(ctx context.Context, id uuid.UUID) error
	FinishOCR(ctx context.Context, id uuid.UUID, text string, confidence float64) error
	FinishAnalysis(ctx context.Context, id uuid.UUID, structured map[string]any) error
	MarkFailed(ctx context.Context, id uuid.UUID, reason string) error
	ResetForRetry(ctx context.Context, id uuid.UUID) error
	ResetForAnalysis(ctx context.Context, id uuid.UUID) error
}

type documentRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewDocumentRepository(client *ent.Client, logger *slog.Logger) DocumentRepository {
	return &documentRepository{client: client, logger: logger}
}

func (r *documentRepository) Create(ctx context.Context, req *CreateDocumentRequest) (*entity.Document, error) {
	if !constants.ValidKind(req.Kind) {
		return nil, fmt.Errorf("%w: unknown document kind %q", common.ErrInvalidInput, req.Kind)
	}
	doc, err := r.client.Document.Create().
		SetApplicationID(req.ApplicationID).
		SetKind(string(req.Kind)).
		SetFilePath(req.FilePath).
		SetStatus(string(constants.StatusUploaded)).
		Save(ctx)
	if err != nil {
		r.logger.Error("repository.document.create_failed",
			"application_id", req.ApplicationID, "error", err)
		return nil, err
	}
	return toDocument(doc), nil
}

func (r *documentRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Document, error) {
	doc, err := r.client.Document.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: document %s", common.ErrNotFound, id)
		}
		return nil, err
	}
	return toDocument(doc), nil
}

func (r *documentRepository) FindByApplicationID(ctx context.Context, applicationID uuid.UUID) ([]*entity.Document, error) {
	docs, err := r.client.Document.Query().
		Where(document.ApplicationID(applicationID)).
		Order(document.ByUploadedAt()).
		All(ctx)
	if err != nil {
		r.logger.Error("repository.document.list_failed",
			"application_id", applicationID, "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = toDocument(d)
	}
	return result, nil
}

// ListByStatus returns up to limit documents in the given status, oldest
// first. The daemon uses it to find work.
func (r *documentRepository) ListByStatus(ctx context.Context, status constants.DocumentStatus, limit int) ([]*entity.Document, error) {
	q := r.client.Document.Query().
		Where(document.Status(string(status))).
		Order(document.ByUploadedAt())
	if limit > 0 {
		q = q.Limit(limit)
	}
	docs, err := q.All(ctx)
	if err != nil {
		r.logger.Error("repository.document.list_by_status_failed",
			"status", status, "error", err)
		return nil, err
	}
	result := make([]*entity.Document, len(docs))
	for i, d := range docs {
		result[i] = toDocument(d)
	}
	return result, nil
}

// MarkProcessing moves uploaded|failed -> processing.
func (r *documentRepository) MarkProcessing(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.StatusIn(
				string(constants.StatusUploaded),
				string(constants.StatusFailed),
			),
		).
		SetStatus(string(constants.StatusProcessing)).
		ClearErrorMessage().
		Save(ctx)
	return r.checkTransition(id, constants.StatusProcessing, n, err)
}

// FinishOCR moves processing -> ocr_completed and records recognized text.
func (r *documentRepository) FinishOCR(ctx context.Context, id uuid.UUID, text string, confidence float64) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.Status(string(constants.StatusProcessing)),
		).
		SetStatus(string(constants.StatusOCRCompleted)).
		SetExtractedText(text).
		SetOcrConfidence(confidence).
		Save(ctx)
	return r.checkTransition(id, constants.StatusOCRCompleted, n, err)
}

// FinishAnalysis moves ocr_completed -> analyzed and records the structured
// field map. processed_at marks the document terminal.
func (r *documentRepository) FinishAnalysis(ctx context.Context, id uuid.UUID, structured map[string]any) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.Status(string(constants.StatusOCRCompleted)),
		).
		SetStatus(string(constants.StatusAnalyzed)).
		SetStructuredData(structured).
		SetProcessedAt(time.Now()).
		Save(ctx)
	return r.checkTransition(id, constants.StatusAnalyzed, n, err)
}

// MarkFailed moves any non-terminal status -> failed. retry_count is left
// alone; only an explicit retry bumps it.
func (r *documentRepository) MarkFailed(ctx context.Context, id uuid.UUID, reason string) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.StatusNotIn(
				string(constants.StatusAnalyzed),
				string(constants.StatusFailed),
			),
		).
		SetStatus(string(constants.StatusFailed)).
		SetErrorMessage(reason).
		Save(ctx)
	return r.checkTransition(id, constants.StatusFailed, n, err)
}

// ResetForRetry moves failed -> uploaded and bumps retry_count so the full
// pipeline can run again. Previously recognized text, confidence, and
// structured data are kept; the rerun overwrites them as stages complete.
func (r *documentRepository) ResetForRetry(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.Status(string(constants.StatusFailed)),
		).
		SetStatus(string(constants.StatusUploaded)).
		ClearErrorMessage().
		AddRetryCount(1).
		Save(ctx)
	return r.checkTransition(id, constants.StatusUploaded, n, err)
}

// ResetForAnalysis moves failed -> ocr_completed and bumps retry_count so
// extraction can rerun against the already recognized text. The guard also
// requires stored text, so a document that failed during recognition can
// never skip straight to analysis.
func (r *documentRepository) ResetForAnalysis(ctx context.Context, id uuid.UUID) error {
	n, err := r.client.Document.Update().
		Where(
			document.ID(id),
			document.Status(string(constants.StatusFailed)),
			document.ExtractedTextNotNil(),
		).
		SetStatus(string(constants.StatusOCRCompleted)).
		ClearErrorMessage().
		AddRetryCount(1).
		Save(ctx)
	return r.checkTransition(id, constants.StatusOCRCompleted, n, err)
}

func (r *documentRepository) checkTransition(id uuid.UUID, to constants.DocumentStatus, n int, err error) error {
	if err != nil {
		r.logger.Error("repository.document.transition_failed",
			"document_id", id, "to", to, "error", err)
		return err
	}
	if n == 0 {
		return fmt.Errorf("%w: document %s is not in a status that allows transition to %s",
			common.ErrConflict, id, to)
	}
	r.logger.Debug("repository.document.transitioned", "document_id", id, "to", to)
	return nil
}
