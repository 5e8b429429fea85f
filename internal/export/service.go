// Package export produces XLSX workbooks of decisions for reviewers.
package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/Muaazbinsaeed/ai-social-support-app-sub001/internal/repository"
)

// Service is a tiny façade over the decision repository that produces XLSX
// bytes for reviewer exports.
type Service struct {
	decisions repository.DecisionRepository
	logger    *slog.Logger
}

func NewService(decisions repository.DecisionRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{decisions: decisions, logger: logger}
}

// ExportDecisionsXLSX returns an XLSX workbook (as bytes) for the given date
// window. If only from is provided -> from..today (inclusive). If neither is
// provided -> all decisions.
func (s *Service) ExportDecisionsXLSX(ctx context.Context, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 23, 59, 59, 0, time.UTC)
		toDate = &t
	}

	decs, err := s.decisions.List(ctx, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query decisions: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Decisions"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Application ID",
		"Outcome",
		"Confidence",
		"Benefit Amount",
		"Currency",
		"Frequency",
		"Requires Review",
		"Review Priority",
		"Effective Date",
		"Review Date",
		"Decided At",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, d := range decs {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, d.ApplicationID.String())
		write(2, string(d.Outcome))
		write(3, d.ConfidenceScore)
		write(4, d.BenefitAmount.StringFixed(2))
		write(5, d.Currency)
		write(6, d.Frequency)
		write(7, d.RequiresHumanReview)
		if d.ReviewPriority != nil {
			write(8, *d.ReviewPriority)
		}
		if d.EffectiveDate != nil {
			write(9, d.EffectiveDate.Format("2006-01-02"))
		}
		if d.ReviewDate != nil {
			write(10, d.ReviewDate.Format("2006-01-02"))
		}
		write(11, d.CreatedAt.UTC().Format(time.RFC3339))
		row++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}

	s.logger.Info("export.decisions.completed",
		"rows", len(decs), "elapsed_ms", time.Since(start).Milliseconds())
	return buf.Bytes(), nil
}
