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

var paymentColumns = []string{
	"id", "cheque_code", "ticket_number", "user_id", "amount_adult", "amount_child",
	"hours", "skate_rental", "instructor_service", "is_employee", "employee_name",
	"department_id", "position_id", "department_name", "position_name",
	"percent", "total_amount", "breakdown", "status", "skating_status", "gateway_transaction_id",
	"fiscalized", "fiscal_uuid", "fiscal_link", "fiscal_error", "created_at", "updated_at",
}

func paymentRow(id int64, status domain.PaymentStatus, skating domain.SkatingStatus) []any {
	now := time.Now()
	txID := "MPCH0000AAAA"
	breakdown := []byte(`{"policy":"EMPLOYEE_GROUP","discount_percent":0,"total":"1000","lines":[{"kind":"adult","quantity":2,"hours":1,"unit_price":"500","discount_percent":0,"amount":"1000"}]}`)
	return []any{
		id, "CH0000AAAA", "Л" + "1", int64(7), 2, 0,
		1, 0, false, false, "",
		(*int64)(nil), (*int64)(nil), "", "",
		0, decimal.NewFromInt(1000), breakdown, status, skating, &txID,
		false, (*string)(nil), (*string)(nil), (*string)(nil), now, now,
	}
}

func TestPaymentRepository_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	newPayment := func() *domain.Payment {
		return &domain.Payment{
			ChequeCode:    "CH1A2B3C4D",
			UserID:        7,
			AmountAdult:   2,
			Hours:         1,
			TotalAmount:   decimal.NewFromInt(1000),
			Status:        domain.PaymentStatusPending,
			SkatingStatus: domain.SkatingStatusWaiting,
		}
	}

	t.Run("Success - generated ticket number", func(t *testing.T) {
		p := newPayment()
		now := time.Now()

		mock.ExpectQuery(`WITH next AS .* INSERT INTO payments`).
			WithArgs("CH1A2B3C4D", "", int64(7), 2, 0, 1,
				0, false, false, "", (*int64)(nil), (*int64)(nil),
				0, pgxmock.AnyArg(), pgxmock.AnyArg(), domain.PaymentStatusPending, domain.SkatingStatusWaiting).
			WillReturnRows(pgxmock.NewRows([]string{"id", "ticket_number", "created_at", "updated_at"}).
				AddRow(int64(42), "Л42", now, now))

		err := repo.Create(ctx, p)
		require.NoError(t, err)
		assert.Equal(t, int64(42), p.ID)
		assert.Equal(t, "Л42", p.TicketNumber)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Cheque code collision", func(t *testing.T) {
		p := newPayment()

		mock.ExpectQuery(`INSERT INTO payments`).
			WillReturnError(pgx.ErrNoRows)

		err := repo.Create(ctx, p)
		assert.ErrorIs(t, err, domain.ErrChequeCodeExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		p := newPayment()

		mock.ExpectQuery(`INSERT INTO payments`).
			WillReturnError(errors.New("database error"))

		err := repo.Create(ctx, p)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrChequeCodeExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNormalizeTicketNumber(t *testing.T) {
	assert.Equal(t, "", NormalizeTicketNumber("  "))
	assert.Equal(t, "Л123", NormalizeTicketNumber("123"))
	assert.Equal(t, "Л123", NormalizeTicketNumber("Л123"))
}

func TestPaymentRepository_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`SELECT p.id, p.cheque_code.* FROM payments p.* WHERE p.id = \$1`).
			WithArgs(int64(1)).
			WillReturnRows(pgxmock.NewRows(paymentColumns).
				AddRow(paymentRow(1, domain.PaymentStatusCompleted, domain.SkatingStatusWaiting)...))

		p, err := repo.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(1), p.ID)
		assert.Equal(t, domain.PaymentStatusCompleted, p.Status)
		assert.True(t, decimal.NewFromInt(1000).Equal(p.TotalAmount))
		require.Len(t, p.Breakdown.Lines, 1)
		assert.Equal(t, domain.LineAdult, p.Breakdown.Lines[0].Kind)
		assert.Equal(t, "500", p.Breakdown.Lines[0].UnitPrice.String())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`SELECT p.id`).
			WithArgs(int64(404)).
			WillReturnError(pgx.ErrNoRows)

		p, err := repo.GetByID(ctx, 404)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		assert.Nil(t, p)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_GetLastForUpdate(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	mock.ExpectQuery(`ORDER BY p.id DESC LIMIT 1 FOR UPDATE OF p`).
		WillReturnRows(pgxmock.NewRows(paymentColumns).
			AddRow(paymentRow(9, domain.PaymentStatusCompleted, domain.SkatingStatusWaiting)...))

	p, err := repo.GetLastForUpdate(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(9), p.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()
	txID := "MPCH1A2B3C4D"

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET status = \$2`).
			WithArgs(int64(1), domain.PaymentStatusCompleted, &txID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.UpdateStatus(ctx, 1, domain.PaymentStatusCompleted, &txID)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET status = \$2`).
			WithArgs(int64(2), domain.PaymentStatusFailed, (*string)(nil)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.UpdateStatus(ctx, 2, domain.PaymentStatusFailed, nil)
		assert.ErrorIs(t, err, domain.ErrPaymentNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_SetSkatingStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET skating_status = \$3.* WHERE id = \$1 AND skating_status = \$2`).
			WithArgs(int64(1), domain.SkatingStatusWaiting, domain.SkatingStatusInProgress).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SetSkatingStatus(ctx, 1, domain.SkatingStatusWaiting, domain.SkatingStatusInProgress)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Status changed concurrently", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET skating_status`).
			WithArgs(int64(1), domain.SkatingStatusWaiting, domain.SkatingStatusInProgress).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		err := repo.SetSkatingStatus(ctx, 1, domain.SkatingStatusWaiting, domain.SkatingStatusInProgress)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
		assert.ErrorIs(t, err, domain.ErrBusinessRule)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_EmployeeVisit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	day := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)
	next := day.AddDate(0, 0, 1)

	t.Run("Lock", func(t *testing.T) {
		mock.ExpectExec(`SELECT pg_advisory_xact_lock\(hashtext\(\$1\)\)`).
			WithArgs("иванов|2026-01-15").
			WillReturnResult(pgxmock.NewResult("SELECT", 1))

		err := repo.LockEmployeeDay(ctx, "Иванов", day)
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Visit found", func(t *testing.T) {
		visitedAt := day.Add(10 * time.Hour)

		mock.ExpectQuery(`SELECT created_at FROM payments WHERE is_employee AND employee_name = \$1`).
			WithArgs("Иванов", day, next, int64(0)).
			WillReturnRows(pgxmock.NewRows([]string{"created_at"}).AddRow(visitedAt))

		got, err := repo.FindEmployeeVisit(ctx, "Иванов", day, next, 0)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, visitedAt, *got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("No visit", func(t *testing.T) {
		mock.ExpectQuery(`SELECT created_at FROM payments`).
			WithArgs("Иванов", day, next, int64(5)).
			WillReturnError(pgx.ErrNoRows)

		got, err := repo.FindEmployeeVisit(ctx, "Иванов", day, next, 5)
		require.NoError(t, err)
		assert.Nil(t, got)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPaymentRepository_Fiscal(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPaymentRepository(mock)
	ctx := context.Background()

	t.Run("Claim acquired", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET fiscal_claimed_at = NOW\(\)`).
			WithArgs(int64(1), float64(120)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		ok, err := repo.ClaimFiscal(ctx, 1, 2*time.Minute)
		require.NoError(t, err)
		assert.True(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Claim held by another worker", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET fiscal_claimed_at = NOW\(\)`).
			WithArgs(int64(1), float64(120)).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))

		ok, err := repo.ClaimFiscal(ctx, 1, 2*time.Minute)
		require.NoError(t, err)
		assert.False(t, ok)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Save result", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET fiscalized = TRUE`).
			WithArgs(int64(1), "uuid-1", "https://ekassa/r/1").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveFiscalResult(ctx, 1, "uuid-1", "https://ekassa/r/1")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Save error", func(t *testing.T) {
		mock.ExpectExec(`UPDATE payments SET fiscal_error = \$2, fiscal_attempts = fiscal_attempts \+ 1`).
			WithArgs(int64(1), "eKassa: shift closed").
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))

		err := repo.SaveFiscalError(ctx, 1, "eKassa: shift closed")
		assert.NoError(t, err)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("List unfiscalized", func(t *testing.T) {
		mock.ExpectQuery(`SELECT id FROM payments WHERE status = 'COMPLETED' AND NOT fiscalized`).
			WithArgs(10, 50).
			WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(int64(3)).AddRow(int64(4)))

		ids, err := repo.ListUnfiscalized(ctx, 10, 50)
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 4}, ids)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}
