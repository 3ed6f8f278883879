package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// Завершенные сеансы по оплаченным билетам за период дат включительно
const finishedSessionsFilter = `FROM payments p
	JOIN skating_sessions s ON s.payment_id = p.id
	WHERE p.status = 'COMPLETED' AND s.status = 'FINISHED'
		AND s.date >= $1 AND s.date <= $2`

// ReportRepository реализует domain.ReportRepository
type ReportRepository struct {
	db DBTX
}

// NewReportRepository создает новый ReportRepository
func NewReportRepository(db DBTX) *ReportRepository {
	return &ReportRepository{db: db}
}

// Summary считает общие показатели за период
func (r *ReportRepository) Summary(ctx context.Context, from, to time.Time) (*domain.ReportSummary, error) {
	s := &domain.ReportSummary{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT COUNT(*),
			COALESCE(SUM(p.total_amount), 0),
			COALESCE(ROUND(AVG(p.total_amount), 2), 0),
			COALESCE(SUM(p.hours), 0),
			COALESCE(SUM(p.amount_adult + p.amount_child), 0),
			COALESCE(SUM(p.skate_rental), 0),
			COUNT(*) FILTER (WHERE p.instructor_service)
		 `+finishedSessionsFilter,
		from, to,
	).Scan(&s.TotalSessions, &s.TotalRevenue, &s.AverageSessionPrice, &s.TotalHours,
		&s.TotalSkaters, &s.TotalSkateRentals, &s.InstructorSessions)

	if err != nil {
		return nil, fmt.Errorf("repository: failed to get report summary: %w", err)
	}

	return s, nil
}

// Daily считает показатели по дням
func (r *ReportRepository) Daily(ctx context.Context, from, to time.Time) ([]domain.DailyReportRow, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT s.date, COUNT(*), COALESCE(SUM(p.total_amount), 0), COALESCE(ROUND(AVG(p.total_amount), 2), 0)
		 `+finishedSessionsFilter+`
		 GROUP BY s.date
		 ORDER BY s.date`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get daily report: %w", err)
	}
	defer rows.Close()

	result := []domain.DailyReportRow{}
	for rows.Next() {
		var row domain.DailyReportRow
		if err := rows.Scan(&row.Date, &row.Sessions, &row.Revenue, &row.AveragePrice); err != nil {
			return nil, fmt.Errorf("repository: failed to scan daily report row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating daily report: %w", err)
	}

	return result, nil
}

// Cashiers считает выручку по кассирам, по убыванию выручки
func (r *ReportRepository) Cashiers(ctx context.Context, from, to time.Time) ([]domain.CashierReportRow, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT u.id, u.username, u.full_name, COUNT(*), COALESCE(SUM(p.total_amount), 0) AS revenue
		 FROM payments p
		 JOIN skating_sessions s ON s.payment_id = p.id
		 JOIN users u ON u.id = p.user_id
		 WHERE p.status = 'COMPLETED' AND s.status = 'FINISHED'
			AND s.date >= $1 AND s.date <= $2
		 GROUP BY u.id, u.username, u.full_name
		 ORDER BY revenue DESC, u.id`,
		from, to,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get cashier report: %w", err)
	}
	defer rows.Close()

	result := []domain.CashierReportRow{}
	for rows.Next() {
		var row domain.CashierReportRow
		if err := rows.Scan(&row.UserID, &row.Username, &row.FullName, &row.Sessions, &row.Revenue); err != nil {
			return nil, fmt.Errorf("repository: failed to scan cashier report row: %w", err)
		}
		result = append(result, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating cashier report: %w", err)
	}

	return result, nil
}
