package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	domainmocks "github.com/lokomotiv/rink-ticketing/internal/domain/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newReportService(t *testing.T) (*ReportService, *domainmocks.ReportRepositoryMock) {
	reports := domainmocks.NewReportRepositoryMock(t)
	svc := NewReportService(reports, bishkek)
	svc.now = func() time.Time { return fixedNow }
	return svc, reports
}

func day(d int) time.Time {
	return time.Date(2026, 1, d, 0, 0, 0, 0, bishkek)
}

func TestReportService_SessionReport(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, reports := newReportService(t)

		reports.EXPECT().Summary(mock.Anything, day(1), day(10)).Return(&domain.ReportSummary{
			TotalSessions: 2,
			TotalRevenue:  decimal.NewFromInt(1500),
		}, nil).Once()
		reports.EXPECT().Daily(mock.Anything, day(1), day(10)).Return([]domain.DailyReportRow{
			{Date: day(3), Sessions: 2, Revenue: decimal.NewFromInt(1500)},
		}, nil).Once()
		reports.EXPECT().Cashiers(mock.Anything, day(1), day(10)).Return([]domain.CashierReportRow{
			{UserID: 2, Username: "cashier", Sessions: 2, Revenue: decimal.NewFromInt(1500)},
		}, nil).Once()

		r, err := svc.SessionReport(ctx, adminActor, day(1).Add(15*time.Hour), day(10).Add(23*time.Hour))
		require.NoError(t, err)
		assert.Equal(t, day(1), r.From)
		assert.Equal(t, day(10), r.To)
		assert.Equal(t, int64(2), r.Summary.TotalSessions)
		assert.Len(t, r.Daily, 1)
		assert.Len(t, r.Cashiers, 1)
	})

	t.Run("Reversed period", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.SessionReport(ctx, adminActor, day(10), day(1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Period too long", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.SessionReport(ctx, adminActor, day(1).AddDate(-6, 0, 0), day(1))
		assert.ErrorIs(t, err, domain.ErrValidation)
	})

	t.Run("Cashier cannot view reports", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.SessionReport(ctx, cashierActor, day(1), day(2))
		assert.ErrorIs(t, err, domain.ErrPermission)
	})

	t.Run("Database error", func(t *testing.T) {
		svc, reports := newReportService(t)
		reports.EXPECT().Summary(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("database error")).Once()

		_, err := svc.SessionReport(ctx, adminActor, day(1), day(2))
		assert.Error(t, err)
	})
}

func TestReportService_RollingReport(t *testing.T) {
	tests := []struct {
		name     string
		days     int
		wantFrom time.Time
	}{
		{name: "Weekly", days: WeeklyReportDays, wantFrom: day(9)},
		{name: "Monthly", days: MonthlyReportDays, wantFrom: time.Date(2025, 12, 17, 0, 0, 0, 0, bishkek)},
		{name: "Single day", days: 1, wantFrom: day(15)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, reports := newReportService(t)

			reports.EXPECT().Summary(mock.Anything, tt.wantFrom, day(15)).Return(&domain.ReportSummary{}, nil).Once()
			reports.EXPECT().Daily(mock.Anything, tt.wantFrom, day(15)).Return([]domain.DailyReportRow{}, nil).Once()
			reports.EXPECT().Cashiers(mock.Anything, tt.wantFrom, day(15)).Return([]domain.CashierReportRow{}, nil).Once()

			r, err := svc.RollingReport(context.Background(), adminActor, tt.days)
			require.NoError(t, err)
			assert.Equal(t, tt.wantFrom, r.From)
			assert.Equal(t, day(15), r.To)
		})
	}

	t.Run("Zero days", func(t *testing.T) {
		svc, _ := newReportService(t)

		_, err := svc.RollingReport(context.Background(), adminActor, 0)
		assert.ErrorIs(t, err, domain.ErrValidation)
	})
}
