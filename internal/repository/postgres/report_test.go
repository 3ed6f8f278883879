package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReportRepository_Summary(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReportRepository(mock)
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)
	columns := []string{"count", "revenue", "average", "hours", "skaters", "rentals", "instructor"}

	t.Run("With sessions", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\).* FROM payments p JOIN skating_sessions s`).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(3), decimal.RequireFromString("3150.00"), decimal.RequireFromString("1050.00"),
					int64(5), int64(8), int64(2), int64(1)))

		s, err := repo.Summary(ctx, from, to)
		require.NoError(t, err)
		assert.Equal(t, int64(3), s.TotalSessions)
		assert.Equal(t, "3150.00", s.TotalRevenue.StringFixed(2))
		assert.Equal(t, "1050.00", s.AverageSessionPrice.StringFixed(2))
		assert.Equal(t, int64(8), s.TotalSkaters)
		assert.Equal(t, int64(1), s.InstructorSessions)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty period", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\)`).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows(columns).
				AddRow(int64(0), decimal.Zero, decimal.Zero, int64(0), int64(0), int64(0), int64(0)))

		s, err := repo.Summary(ctx, from, to)
		require.NoError(t, err)
		assert.Zero(t, s.TotalSessions)
		assert.True(t, s.TotalRevenue.IsZero())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`SELECT COUNT\(\*\)`).
			WithArgs(from, to).
			WillReturnError(errors.New("database error"))

		s, err := repo.Summary(ctx, from, to)
		assert.Error(t, err)
		assert.Nil(t, s)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestReportRepository_Daily(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReportRepository(mock)
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 6)

	mock.ExpectQuery(`SELECT s.date, COUNT\(\*\).* GROUP BY s.date ORDER BY s.date`).
		WithArgs(from, to).
		WillReturnRows(pgxmock.NewRows([]string{"date", "sessions", "revenue", "average"}).
			AddRow(from, int64(2), decimal.NewFromInt(1600), decimal.NewFromInt(800)).
			AddRow(from.AddDate(0, 0, 1), int64(1), decimal.NewFromInt(500), decimal.NewFromInt(500)))

	rows, err := repo.Daily(ctx, from, to)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, int64(2), rows[0].Sessions)
	assert.Equal(t, "800", rows[0].AveragePrice.String())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReportRepository_Cashiers(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewReportRepository(mock)
	ctx := context.Background()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 29)

	t.Run("Ordered by revenue", func(t *testing.T) {
		mock.ExpectQuery(`JOIN users u ON u.id = p.user_id .* ORDER BY revenue DESC`).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "full_name", "sessions", "revenue"}).
				AddRow(int64(2), "cashier2", "Касса 2", int64(4), decimal.NewFromInt(4000)).
				AddRow(int64(1), "cashier1", "Касса 1", int64(1), decimal.NewFromInt(500)))

		rows, err := repo.Cashiers(ctx, from, to)
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "cashier2", rows[0].Username)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Empty period", func(t *testing.T) {
		mock.ExpectQuery(`JOIN users u`).
			WithArgs(from, to).
			WillReturnRows(pgxmock.NewRows([]string{"id", "username", "full_name", "sessions", "revenue"}))

		rows, err := repo.Cashiers(ctx, from, to)
		require.NoError(t, err)
		assert.NotNil(t, rows)
		assert.Empty(t, rows)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
