package service

import (
	"context"
	"fmt"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// Окна скользящих отчетов в днях
const (
	WeeklyReportDays  = 7
	MonthlyReportDays = 30
	YearlyReportDays  = 365
	maxReportDays     = 366 * 5
)

// ReportService реализует domain.ReportService
type ReportService struct {
	reports  domain.ReportRepository
	location *time.Location
	now      func() time.Time
}

// NewReportService создает новый ReportService
func NewReportService(reports domain.ReportRepository, location *time.Location) *ReportService {
	if location == nil {
		location = time.Local
	}
	return &ReportService{
		reports:  reports,
		location: location,
		now:      time.Now,
	}
}

// SessionReport строит отчет по завершенным сеансам за период дат включительно
func (s *ReportService) SessionReport(ctx context.Context, actor domain.Actor, from, to time.Time) (*domain.SessionReport, error) {
	if err := requireRole(actor, "view reports", adminRoles...); err != nil {
		return nil, err
	}

	from = startOfDay(from, s.location)
	to = startOfDay(to, s.location)
	if to.Before(from) {
		return nil, domain.NewValidationError("to", "must not be before from")
	}
	if to.Sub(from) > maxReportDays*24*time.Hour {
		return nil, domain.NewValidationError("to", fmt.Sprintf("period must not exceed %d days", maxReportDays))
	}

	summary, err := s.reports.Summary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report service: %w", err)
	}

	daily, err := s.reports.Daily(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report service: %w", err)
	}

	cashiers, err := s.reports.Cashiers(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("report service: %w", err)
	}

	return &domain.SessionReport{
		From:     from,
		To:       to,
		Summary:  *summary,
		Daily:    daily,
		Cashiers: cashiers,
	}, nil
}

// RollingReport строит отчет за последние days дней, включая сегодня
func (s *ReportService) RollingReport(ctx context.Context, actor domain.Actor, days int) (*domain.SessionReport, error) {
	if days < 1 {
		return nil, domain.NewValidationError("days", "must be positive")
	}

	to := startOfDay(s.now(), s.location)
	from := to.AddDate(0, 0, -(days - 1))

	return s.SessionReport(ctx, actor, from, to)
}
