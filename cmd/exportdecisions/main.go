// exportdecisions writes an XLSX workbook of decisions in a date window for
// human reviewers. Dates are inclusive, format 2006-01-02; with no window the
// export covers every decision.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/common"
	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/export"
	repo "github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	fromArg := flag.String("from", "", "window start date (2006-01-02)")
	toArg := flag.String("to", "", "window end date (2006-01-02)")
	out := flag.String("out", "decisions.xlsx", "output file path")
	flag.Parse()

	from, err := parseDate(*fromArg)
	if err != nil {
		logger.Error("invalid -from date", "arg", *fromArg, "error", err)
		os.Exit(2)
	}
	to, err := parseDate(*toArg)
	if err != nil {
		logger.Error("invalid -to date", "arg", *toArg, "error", err)
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

	svc := export.NewService(repo.NewDecisionRepository(entc, logger), logger)
	data, err := svc.ExportDecisionsXLSX(ctx, from, to)
	if err != nil {
		logger.Error("export failed", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, data, 0o644); err != nil {
		logger.Error("write output file", "path", *out, "error", err)
		os.Exit(1)
	}
	logger.Info("export written", "path", *out, "bytes", len(data))
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
