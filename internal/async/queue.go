// Package async dispatches pipeline and decision runs to a worker pool.
// Each job is an independent, stateless unit of work; the only cross-run
// coordination lives in the persisted document and decision state.
package async

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JobKind selects which operation a job runs.
type JobKind string

const (
	RunOCR      JobKind = "run_ocr"
	RunAnalysis JobKind = "run_analysis"
	RunDocument JobKind = "run_document" // recognition then extraction
	RunDecision JobKind = "run_decision"
)

// Job is the smallest useful unit. TargetID is a document id for document
// jobs and an application id for decision jobs.
type Job struct {
	Kind        JobKind
	TargetID    uuid.UUID
	Retry       bool // reset a failed document before running
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}
