package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

const sessionColumns = `id, payment_id, date, hours, start_time, planned_end_time, end_time, status, created_at`

// SessionRepository реализует domain.SessionRepository
type SessionRepository struct {
	db DBTX
}

// NewSessionRepository создает новый SessionRepository
func NewSessionRepository(db DBTX) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create создает сеанс катания. Повторный сеанс для той же оплаты запрещен.
func (r *SessionRepository) Create(ctx context.Context, s *domain.SkatingSession) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`INSERT INTO skating_sessions (payment_id, date, hours, start_time, planned_end_time, status)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (payment_id) DO NOTHING
		 RETURNING id, created_at`,
		s.PaymentID, s.Date, s.Hours, s.StartTime, s.PlannedEndTime, s.Status,
	).Scan(&s.ID, &s.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrSessionAlreadyExists
		}
		return fmt.Errorf("repository: failed to create session for payment %d: %w", s.PaymentID, err)
	}

	return nil
}

// GetByID получает сеанс по ID
func (r *SessionRepository) GetByID(ctx context.Context, id int64) (*domain.SkatingSession, error) {
	s, err := scanSession(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM skating_sessions WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get session %d: %w", id, err)
	}
	return s, nil
}

// GetByPaymentIDForUpdate получает сеанс оплаты с блокировкой строки
func (r *SessionRepository) GetByPaymentIDForUpdate(ctx context.Context, paymentID int64) (*domain.SkatingSession, error) {
	s, err := scanSession(conn(ctx, r.db).QueryRow(ctx,
		`SELECT `+sessionColumns+` FROM skating_sessions WHERE payment_id = $1 FOR UPDATE`, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("repository: failed to get session of payment %d: %w", paymentID, err)
	}
	return s, nil
}

// CompareAndSetStatus переводит сеанс из from в to и фиксирует время окончания
func (r *SessionRepository) CompareAndSetStatus(ctx context.Context, id int64, from, to domain.SkatingStatus, endTime time.Time) (*domain.SkatingSession, error) {
	s, err := scanSession(conn(ctx, r.db).QueryRow(ctx,
		`UPDATE skating_sessions
		 SET status = $3, end_time = $4, updated_at = NOW()
		 WHERE id = $1 AND status = $2
		 RETURNING `+sessionColumns,
		id, from, to, endTime,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrInvalidTransition
		}
		return nil, fmt.Errorf("repository: failed to update session %d: %w", id, err)
	}
	return s, nil
}

// SweepExpired переводит истекшие сеансы в TIME_EXPIRED вместе с оплатами.
// end_time равен плановому окончанию, а не моменту проверки.
// Строки оплат блокируются раньше сеансов, как и при переходах оператора.
func (r *SessionRepository) SweepExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`WITH locked AS (
			SELECT p.id
			FROM payments p
			JOIN skating_sessions s ON s.payment_id = p.id
			WHERE s.status = 'IN_PROGRESS' AND s.planned_end_time <= $1
			ORDER BY p.id
			FOR UPDATE OF p
		 ), expired AS (
			UPDATE skating_sessions s
			SET status = 'TIME_EXPIRED', end_time = s.planned_end_time, updated_at = NOW()
			FROM locked l
			WHERE s.payment_id = l.id AND s.status = 'IN_PROGRESS'
			RETURNING s.payment_id
		 )
		 UPDATE payments p
		 SET skating_status = 'TIME_EXPIRED', updated_at = NOW()
		 FROM expired e
		 WHERE p.id = e.payment_id`,
		now,
	)
	if err != nil {
		return 0, fmt.Errorf("repository: failed to sweep expired sessions: %w", err)
	}

	return tag.RowsAffected(), nil
}

// ListActive возвращает оплаты для панели оператора: ожидающие с waitingSince, на льду и с истекшим временем
func (r *SessionRepository) ListActive(ctx context.Context, waitingSince time.Time) ([]*domain.DashboardEntry, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT p.id, p.cheque_code, p.ticket_number, p.amount_adult, p.amount_child, p.hours,
			p.skate_rental, p.instructor_service, p.total_amount, p.skating_status, p.created_at,
			s.id, s.start_time, s.planned_end_time, s.end_time
		 FROM payments p
		 LEFT JOIN skating_sessions s ON s.payment_id = p.id
		 WHERE p.status = 'COMPLETED'
			AND p.skating_status IN ('WAITING', 'IN_PROGRESS', 'TIME_EXPIRED')
			AND (p.skating_status <> 'WAITING' OR p.created_at >= $1)
		 ORDER BY p.created_at`,
		waitingSince,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list active sessions: %w", err)
	}
	defer rows.Close()

	var entries []*domain.DashboardEntry
	for rows.Next() {
		e := &domain.DashboardEntry{}
		err := rows.Scan(&e.PaymentID, &e.ChequeCode, &e.TicketNumber, &e.AmountAdult, &e.AmountChild, &e.Hours,
			&e.SkateRental, &e.InstructorService, &e.TotalAmount, &e.SkatingStatus, &e.CreatedAt,
			&e.SessionID, &e.StartTime, &e.PlannedEndTime, &e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan dashboard entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating dashboard entries: %w", err)
	}

	return entries, nil
}

func scanSession(row pgx.Row) (*domain.SkatingSession, error) {
	s := &domain.SkatingSession{}
	err := row.Scan(&s.ID, &s.PaymentID, &s.Date, &s.Hours, &s.StartTime, &s.PlannedEndTime, &s.EndTime, &s.Status, &s.CreatedAt)
	if err != nil {
		return nil, err
	}
	return s, nil
}
