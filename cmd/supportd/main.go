// supportd is the long-running worker daemon. It polls the documents table
// for uploaded work, dispatches pipeline runs to the worker pool, and kicks
// off a decision run once both of an application's documents are analyzed.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/constants"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/async"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/engine"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/entity"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/extract"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/llm"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/ocr"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/pipeline"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/quality"
	repo "github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

const pollInterval = 5 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	docs := repo.NewDocumentRepository(entc, logger)
	logs := repo.NewProcessingLogRepository(entc, logger)
	decisions := repo.NewDecisionRepository(entc, logger)
	audit := repo.NewAuditRepository(entc, logger)

	client := llm.NewClient(cfg.LLM.BaseURL, logger, llm.WithMaxRetries(cfg.LLM.MaxRetries))
	if err := client.Available(ctx, cfg.LLM.ExtractModel); err != nil {
		logger.Warn("extraction model not reachable, pattern fallback will apply",
			"model", cfg.LLM.ExtractModel, "error", err)
	}

	proc := pipeline.NewProcessor(
		logger,
		ocr.NewExtractor(cfg.OCR, logger),
		quality.NewGate(logger),
		extract.NewExtractor(client, cfg.LLM, logger),
		docs,
		logs,
	)
	runner := pipeline.NewDecisionRunner(
		logger,
		engine.New(cfg.Eligibility, cfg.LLM.DecisionModel, logger),
		cfg.LLM,
		cfg.Eligibility,
		docs,
		decisions,
		audit,
	)

	queue := async.NewProcessorQueue(proc, runner, logger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Size),
		async.WithJobTimeout(cfg.Queue.JobTimeout),
	)

	logger.Info("supportd started", "workers", cfg.Queue.Workers)
	poll(ctx, logger, docs, decisions, queue)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	logger.Info("supportd stopped")
}

// poll scans for uploaded documents and for applications whose documents are
// all analyzed but have no decision yet. Pipeline and decision runs are
// idempotent re-entrant, so enqueueing the same target twice is harmless.
func poll(ctx context.Context, logger *slog.Logger, docs repo.DocumentRepository, decisions repo.DecisionRepository, queue async.Queue) {
	ticker := time.NewTicker(pollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}

		uploaded, err := docs.ListByStatus(ctx, constants.StatusUploaded, 64)
		if err != nil {
			logger.Error("poll uploaded documents", "error", err)
			continue
		}
		for _, d := range uploaded {
			_ = queue.Enqueue(ctx, async.Job{
				Kind:        async.RunDocument,
				TargetID:    d.ID,
				SubmittedAt: time.Now(),
			})
		}

		analyzed, err := docs.ListByStatus(ctx, constants.StatusAnalyzed, 128)
		if err != nil {
			logger.Error("poll analyzed documents", "error", err)
			continue
		}
		for _, appID := range readyApplications(ctx, docs, decisions, analyzed) {
			_ = queue.Enqueue(ctx, async.Job{
				Kind:        async.RunDecision,
				TargetID:    appID,
				SubmittedAt: time.Now(),
			})
		}
	}
}

// readyApplications returns application ids whose documents are all analyzed
// and which have no decision yet.
func readyApplications(ctx context.Context, docs repo.DocumentRepository, decisions repo.DecisionRepository, analyzed []*entity.Document) []uuid.UUID {
	seen := make(map[uuid.UUID]bool)
	var ready []uuid.UUID
	for _, d := range analyzed {
		if seen[d.ApplicationID] {
			continue
		}
		seen[d.ApplicationID] = true

		if _, err := decisions.GetByApplicationID(ctx, d.ApplicationID); err == nil {
			continue
		} else if !errors.Is(err, common.ErrNotFound) {
			continue
		}

		appDocs, err := docs.FindByApplicationID(ctx, d.ApplicationID)
		if err != nil || len(appDocs) < 2 {
			continue
		}
		allAnalyzed := true
		for _, ad := range appDocs {
			if ad.Status != constants.StatusAnalyzed {
				allAnalyzed = false
				break
			}
		}
		if allAnalyzed {
			ready = append(ready, d.ApplicationID)
		}
	}
	return ready
}
