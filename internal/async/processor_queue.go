package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/pipeline"
)

type ProcessorQueue struct {
	proc    *pipeline.Processor
	runner  *pipeline.DecisionRunner
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*ProcessorQueue)

func WithWorkers(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *ProcessorQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithJobTimeout(d time.Duration) Option {
	return func(q *ProcessorQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewProcessorQueue(proc *pipeline.Processor, runner *pipeline.DecisionRunner, logger *slog.Logger, opts ...Option) *ProcessorQueue {
	q := &ProcessorQueue{
		proc:    proc,
		runner:  runner,
		logger:  logger,
		workers: 4,
		timeout: 10 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *ProcessorQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					q.run(ctx, workerID, job)
					cancel()
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *ProcessorQueue) run(ctx context.Context, workerID int, job Job) {
	var err error
	switch job.Kind {
	case RunOCR:
		_, err = q.proc.RunOCR(ctx, job.TargetID)
	case RunAnalysis:
		_, err = q.proc.RunAnalysis(ctx, job.TargetID)
	case RunDocument:
		if job.Retry {
			_, err = q.proc.Retry(ctx, job.TargetID)
		} else {
			_, err = q.proc.ProcessDocument(ctx, job.TargetID)
		}
	case RunDecision:
		_, _, err = q.runner.RunDecision(ctx, job.TargetID)
	default:
		q.logger.Error("unknown job kind", "worker_id", workerID, "kind", job.Kind)
		return
	}

	if err != nil {
		q.logger.Error("job failed",
			"worker_id", workerID, "kind", job.Kind, "target_id", job.TargetID, "error", err)
	} else {
		q.logger.Info("job completed",
			"worker_id", workerID, "kind", job.Kind, "target_id", job.TargetID)
	}
}

func (q *ProcessorQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down",
			"kind", job.Kind, "target_id", job.TargetID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued job", "kind", job.Kind, "target_id", job.TargetID)
	default:
		q.logger.Warn("queue full, applying backpressure",
			"kind", job.Kind, "target_id", job.TargetID)
		q.ch <- job
	}
	return nil
}

func (q *ProcessorQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
