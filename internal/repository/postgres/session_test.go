package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sessionColumnNames = []string{"id", "payment_id", "date", "hours", "start_time", "planned_end_time", "end_time", "status", "created_at"}

func TestSessionRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()

	start := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
	end := start.Add(2 * time.Hour)
	newSession := func() *domain.SkatingSession {
		return &domain.SkatingSession{
			PaymentID:      1,
			Date:           start,
			Hours:          2,
			StartTime:      &start,
			PlannedEndTime: &end,
			Status:         domain.SkatingStatusInProgress,
		}
	}

	t.Run("Success", func(t *testing.T) {
		s := newSession()

		mock.ExpectQuery(`INSERT INTO skating_sessions`).
			WithArgs(int64(1), start, 2, &start, &end, domain.SkatingStatusInProgress).
			WillReturnRows(pgxmock.NewRows([]string{"id", "created_at"}).AddRow(int64(5), start))

		err := repo.Create(ctx, s)
		require.NoError(t, err)
		assert.Equal(t, int64(5), s.ID)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Session already exists", func(t *testing.T) {
		s := newSession()

		mock.ExpectQuery(`INSERT INTO skating_sessions`).
			WillReturnError(pgx.ErrNoRows)

		err := repo.Create(ctx, s)
		assert.ErrorIs(t, err, domain.ErrSessionAlreadyExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		start := time.Now()
		end := start.Add(time.Hour)

		mock.ExpectQuery(`SELECT id, payment_id, date, hours, start_time, planned_end_time, end_time, status, created_at FROM skating_sessions WHERE id = \$1`).
			WithArgs(int64(5)).
			WillReturnRows(pgxmock.NewRows(sessionColumnNames).
				AddRow(int64(5), int64(1), start, 1, &start, &end, (*time.Time)(nil), domain.SkatingStatusInProgress, start))

		s, err := repo.GetByID(ctx, 5)
		require.NoError(t, err)
		assert.Equal(t, int64(1), s.PaymentID)
		assert.Nil(t, s.EndTime)
		assert.Equal(t, domain.SkatingStatusInProgress, s.Status)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM skating_sessions WHERE id = \$1`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrSessionNotFound)
		assert.Nil(t, s)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_CompareAndSetStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	now := time.Now()
	start := now.Add(-time.Hour)

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE skating_sessions SET status = \$3, end_time = \$4`).
			WithArgs(int64(5), domain.SkatingStatusInProgress, domain.SkatingStatusFinished, now).
			WillReturnRows(pgxmock.NewRows(sessionColumnNames).
				AddRow(int64(5), int64(1), start, 2, &start, &now, &now, domain.SkatingStatusFinished, start))

		s, err := repo.CompareAndSetStatus(ctx, 5, domain.SkatingStatusInProgress, domain.SkatingStatusFinished, now)
		require.NoError(t, err)
		assert.Equal(t, domain.SkatingStatusFinished, s.Status)
		require.NotNil(t, s.EndTime)
		assert.Equal(t, now, *s.EndTime)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Lost race", func(t *testing.T) {
		mock.ExpectQuery(`UPDATE skating_sessions SET status = \$3`).
			WithArgs(int64(5), domain.SkatingStatusInProgress, domain.SkatingStatusFinished, now).
			WillReturnError(pgx.ErrNoRows)

		s, err := repo.CompareAndSetStatus(ctx, 5, domain.SkatingStatusInProgress, domain.SkatingStatusFinished, now)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.Nil(t, s)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_SweepExpired(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Expires sessions", func(t *testing.T) {
		// Оплаты блокируются до обновления сеансов
		mock.ExpectExec(`(?s)WITH locked AS \(\s+SELECT p.id\s+FROM payments p.+FOR UPDATE OF p\s+\), expired AS \(\s+UPDATE skating_sessions s`).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 2))

		n, err := repo.SweepExpired(ctx, now)
		require.NoError(t, err)
		assert.Equal(t, int64(2), n)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Second run is a no-op", func(t *testing.T) {
		mock.ExpectExec(`WITH locked AS`).
			WithArgs(now).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		n, err := repo.SweepExpired(ctx, now)
		require.NoError(t, err)
		assert.Zero(t, n)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectExec(`WITH locked AS`).
			WithArgs(now).
			WillReturnError(errors.New("database error"))

		_, err := repo.SweepExpired(ctx, now)
		assert.Error(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestSessionRepository_ListActive(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSessionRepository(mock)
	ctx := context.Background()
	since := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	start := since.Add(10 * time.Hour)
	end := start.Add(time.Hour)
	sessionID := int64(3)

	columns := []string{"id", "cheque_code", "ticket_number", "amount_adult", "amount_child", "hours",
		"skate_rental", "instructor_service", "total_amount", "skating_status", "created_at",
		"session_id", "start_time", "planned_end_time", "end_time"}

	mock.ExpectQuery(`FROM payments p LEFT JOIN skating_sessions s ON s.payment_id = p.id`).
		WithArgs(since).
		WillReturnRows(pgxmock.NewRows(columns).
			AddRow(int64(1), "CH00000001", "Л1", 1, 0, 1, 0, false, decimal.NewFromInt(500), domain.SkatingStatusWaiting, start,
				(*int64)(nil), (*time.Time)(nil), (*time.Time)(nil), (*time.Time)(nil)).
			AddRow(int64(2), "CH00000002", "Л2", 2, 1, 1, 1, true, decimal.NewFromInt(1500), domain.SkatingStatusInProgress, start,
				&sessionID, &start, &end, (*time.Time)(nil)))

	entries, err := repo.ListActive(ctx, since)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Nil(t, entries[0].SessionID)
	assert.Equal(t, domain.SkatingStatusInProgress, entries[1].SkatingStatus)
	require.NotNil(t, entries[1].SessionID)
	assert.Equal(t, int64(3), *entries[1].SessionID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
