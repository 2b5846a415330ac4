package report

import (
	"context"
	"math"
	"time"

	"github.com/kaletesis/stoktakip-backend/internal/apperr"
)

// Service defines the report engine. Both reports are pure functions of the
// ledger state and the window: no side effects, idempotent under repeated
// calls.
type Service interface {
	DetailedReport(ctx context.Context, start, end time.Time) ([]*DetailedRow, error)
	SummaryReport(ctx context.Context, start, end time.Time) ([]*SummaryRow, error)
}

const localDateFormat = "02.01.2006 15:04"

type service struct {
	repo Repository
}

// NewService creates a new report service.
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) DetailedReport(ctx context.Context, start, end time.Time) ([]*DetailedRow, error) {
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}

	rows, err := s.repo.MovementsInWindow(ctx, start, end)
	if err != nil {
		return nil, err
	}
	for _, r := range rows {
		r.LocalDate = r.MovementDate.Local().Format(localDateFormat)
		// Zero-quantity movements leave the unit price undefined rather
		// than failing the report.
		if r.Quantity != 0 {
			price := round2(r.TotalPrice / r.Quantity)
			r.UnitPrice = &price
		}
	}
	return rows, nil
}

func (s *service) SummaryReport(ctx context.Context, start, end time.Time) ([]*SummaryRow, error) {
	if err := validateWindow(start, end); err != nil {
		return nil, err
	}
	return s.repo.SummaryInWindow(ctx, start, end)
}

func validateWindow(start, end time.Time) error {
	if start.IsZero() || end.IsZero() || end.Before(start) {
		return apperr.Validation("Geçersiz tarih aralığı")
	}
	return nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
