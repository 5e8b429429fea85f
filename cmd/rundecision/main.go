// rundecision computes and persists the eligibility decision for one
// application. Re-running for an application that already has a decision
// prints the existing one and exits cleanly.
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/engine"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/pipeline"
	repo "github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "rundecision <application-id-uuid>")
		os.Exit(2)
	}
	applicationID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid application id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(2)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	runner := pipeline.NewDecisionRunner(
		logger,
		engine.New(cfg.Eligibility, cfg.LLM.DecisionModel, logger),
		cfg.LLM,
		cfg.Eligibility,
		repo.NewDocumentRepository(entc, logger),
		repo.NewDecisionRepository(entc, logger),
		repo.NewAuditRepository(entc, logger),
	)

	dec, _, err := runner.RunDecision(ctx, applicationID)
	if err != nil {
		logger.Error("decision run failed", "application_id", applicationID, "error", err)
		os.Exit(1)
	}
	logger.Info("decision",
		"application_id", applicationID,
		"outcome", dec.Outcome,
		"confidence", dec.ConfidenceScore,
		"benefit_amount", dec.BenefitAmount.StringFixed(2),
		"currency", dec.Currency,
		"requires_review", dec.RequiresHumanReview)
}
