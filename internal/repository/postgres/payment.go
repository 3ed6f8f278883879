package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// TicketPrefix префикс номера билета
const TicketPrefix = "Л"

const paymentSelect = `SELECT p.id, p.cheque_code, p.ticket_number, p.user_id, p.amount_adult, p.amount_child,
	p.hours, p.skate_rental, p.instructor_service, p.is_employee, p.employee_name,
	p.department_id, p.position_id, COALESCE(d.name, ''), COALESCE(ps.name, ''),
	p.percent, p.total_amount, p.breakdown, p.status, p.skating_status, p.gateway_transaction_id,
	p.fiscalized, p.fiscal_uuid, p.fiscal_link, p.fiscal_error, p.created_at, p.updated_at
	FROM payments p
	LEFT JOIN departments d ON d.id = p.department_id
	LEFT JOIN positions ps ON ps.id = p.position_id`

// PaymentRepository реализует domain.PaymentRepository
type PaymentRepository struct {
	db DBTX
}

// NewPaymentRepository создает новый PaymentRepository
func NewPaymentRepository(db DBTX) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create сохраняет новую оплату. Пустой номер билета заменяется на Л<id>.
func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	breakdown, err := json.Marshal(p.Breakdown)
	if err != nil {
		return fmt.Errorf("repository: failed to encode breakdown: %w", err)
	}

	err = conn(ctx, r.db).QueryRow(ctx,
		`WITH next AS (SELECT nextval(pg_get_serial_sequence('payments', 'id')) AS id)
		 INSERT INTO payments (id, cheque_code, ticket_number, user_id, amount_adult, amount_child, hours,
			skate_rental, instructor_service, is_employee, employee_name, department_id, position_id,
			percent, total_amount, breakdown, status, skating_status)
		 SELECT next.id, $1, COALESCE(NULLIF($2, ''), '`+TicketPrefix+`' || next.id), $3, $4, $5, $6,
			$7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		 FROM next
		 ON CONFLICT (cheque_code) DO NOTHING
		 RETURNING id, ticket_number, created_at, updated_at`,
		p.ChequeCode, NormalizeTicketNumber(p.TicketNumber), p.UserID, p.AmountAdult, p.AmountChild, p.Hours,
		p.SkateRental, p.InstructorService, p.IsEmployee, p.EmployeeName, p.DepartmentID, p.PositionID,
		p.Percent, p.TotalAmount, breakdown, p.Status, p.SkatingStatus,
	).Scan(&p.ID, &p.TicketNumber, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrChequeCodeExists
		}
		return fmt.Errorf("repository: failed to create payment %q: %w", p.ChequeCode, err)
	}

	return nil
}

// NormalizeTicketNumber добавляет префикс к номеру билета, если его нет
func NormalizeTicketNumber(number string) string {
	number = strings.TrimSpace(number)
	if number == "" || strings.HasPrefix(number, TicketPrefix) {
		return number
	}
	return TicketPrefix + number
}

// GetByID получает оплату по ID
func (r *PaymentRepository) GetByID(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.getOne(ctx, paymentSelect+` WHERE p.id = $1`, id)
}

// GetByIDForUpdate получает оплату по ID с блокировкой строки
func (r *PaymentRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.Payment, error) {
	return r.getOne(ctx, paymentSelect+` WHERE p.id = $1 FOR UPDATE OF p`, id)
}

// GetLast получает последнюю созданную оплату
func (r *PaymentRepository) GetLast(ctx context.Context) (*domain.Payment, error) {
	return r.getOne(ctx, paymentSelect+` ORDER BY p.id DESC LIMIT 1`)
}

// GetLastForUpdate получает последнюю оплату с блокировкой строки
func (r *PaymentRepository) GetLastForUpdate(ctx context.Context) (*domain.Payment, error) {
	return r.getOne(ctx, paymentSelect+` ORDER BY p.id DESC LIMIT 1 FOR UPDATE OF p`)
}

func (r *PaymentRepository) getOne(ctx context.Context, query string, args ...any) (*domain.Payment, error) {
	p, err := scanPayment(conn(ctx, r.db).QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("repository: failed to get payment: %w", err)
	}
	return p, nil
}

func scanPayment(row pgx.Row) (*domain.Payment, error) {
	p := &domain.Payment{}
	var breakdown []byte

	err := row.Scan(&p.ID, &p.ChequeCode, &p.TicketNumber, &p.UserID, &p.AmountAdult, &p.AmountChild,
		&p.Hours, &p.SkateRental, &p.InstructorService, &p.IsEmployee, &p.EmployeeName,
		&p.DepartmentID, &p.PositionID, &p.DepartmentName, &p.PositionName,
		&p.Percent, &p.TotalAmount, &breakdown, &p.Status, &p.SkatingStatus, &p.GatewayTransactionID,
		&p.Fiscalized, &p.FiscalUUID, &p.FiscalLink, &p.FiscalError, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, err
	}

	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &p.Breakdown); err != nil {
			return nil, fmt.Errorf("failed to decode breakdown of payment %d: %w", p.ID, err)
		}
	}

	return p, nil
}

// UpdateTicket перезаписывает состав билета и пересчитанную сумму
func (r *PaymentRepository) UpdateTicket(ctx context.Context, p *domain.Payment) error {
	breakdown, err := json.Marshal(p.Breakdown)
	if err != nil {
		return fmt.Errorf("repository: failed to encode breakdown: %w", err)
	}

	err = conn(ctx, r.db).QueryRow(ctx,
		`UPDATE payments
		 SET amount_adult = $2, amount_child = $3, hours = $4, skate_rental = $5, instructor_service = $6,
			is_employee = $7, employee_name = $8, department_id = $9, position_id = $10,
			percent = $11, total_amount = $12, breakdown = $13, updated_at = NOW()
		 WHERE id = $1
		 RETURNING updated_at`,
		p.ID, p.AmountAdult, p.AmountChild, p.Hours, p.SkateRental, p.InstructorService,
		p.IsEmployee, p.EmployeeName, p.DepartmentID, p.PositionID,
		p.Percent, p.TotalAmount, breakdown,
	).Scan(&p.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrPaymentNotFound
		}
		return fmt.Errorf("repository: failed to update payment %d: %w", p.ID, err)
	}

	return nil
}

// UpdateStatus меняет статус оплаты после ответа платежного шлюза
func (r *PaymentRepository) UpdateStatus(ctx context.Context, id int64, status domain.PaymentStatus, gatewayTxID *string) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET status = $2, gateway_transaction_id = COALESCE($3, gateway_transaction_id), updated_at = NOW()
		 WHERE id = $1`,
		id, status, gatewayTxID,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to update status of payment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrPaymentNotFound
	}

	return nil
}

// SetSkatingStatus меняет skating_status, только если текущее значение равно from
func (r *PaymentRepository) SetSkatingStatus(ctx context.Context, id int64, from, to domain.SkatingStatus) error {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET skating_status = $3, updated_at = NOW()
		 WHERE id = $1 AND skating_status = $2`,
		id, from, to,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to set skating status of payment %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidTransition
	}

	return nil
}

// LockEmployeeDay берет транзакционную блокировку на пару сотрудник+день
func (r *PaymentRepository) LockEmployeeDay(ctx context.Context, employeeName string, day time.Time) error {
	key := strings.ToLower(employeeName) + "|" + day.Format(time.DateOnly)

	_, err := conn(ctx, r.db).Exec(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, key)
	if err != nil {
		return fmt.Errorf("repository: failed to acquire lock for employee %q: %w", employeeName, err)
	}

	return nil
}

// FindEmployeeVisit возвращает время первой действующей оплаты сотрудника за период
func (r *PaymentRepository) FindEmployeeVisit(ctx context.Context, employeeName string, from, to time.Time, excludeID int64) (*time.Time, error) {
	var visitedAt time.Time

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT created_at
		 FROM payments
		 WHERE is_employee AND employee_name = $1
			AND created_at >= $2 AND created_at < $3
			AND status IN ('PENDING', 'COMPLETED')
			AND id <> $4
		 ORDER BY created_at
		 LIMIT 1`,
		employeeName, from, to, excludeID,
	).Scan(&visitedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("repository: failed to find visit of employee %q: %w", employeeName, err)
	}

	return &visitedAt, nil
}

// ClaimFiscal резервирует оплату за одним обработчиком фискализации на время lease
func (r *PaymentRepository) ClaimFiscal(ctx context.Context, id int64, lease time.Duration) (bool, error) {
	tag, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET fiscal_claimed_at = NOW()
		 WHERE id = $1 AND NOT fiscalized
			AND (fiscal_claimed_at IS NULL OR fiscal_claimed_at < NOW() - make_interval(secs => $2))`,
		id, lease.Seconds(),
	)
	if err != nil {
		return false, fmt.Errorf("repository: failed to claim payment %d for fiscalization: %w", id, err)
	}

	return tag.RowsAffected() == 1, nil
}

// SaveFiscalResult отмечает оплату фискализированной
func (r *PaymentRepository) SaveFiscalResult(ctx context.Context, id int64, fiscalUUID, fiscalLink string) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET fiscalized = TRUE, fiscal_uuid = $2, fiscal_link = $3, fiscal_error = NULL,
			fiscal_claimed_at = NULL, updated_at = NOW()
		 WHERE id = $1`,
		id, fiscalUUID, fiscalLink,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to save fiscal result of payment %d: %w", id, err)
	}

	return nil
}

// SaveFiscalError сохраняет ошибку фискализации и увеличивает счетчик попыток
func (r *PaymentRepository) SaveFiscalError(ctx context.Context, id int64, message string) error {
	_, err := conn(ctx, r.db).Exec(ctx,
		`UPDATE payments
		 SET fiscal_error = $2, fiscal_attempts = fiscal_attempts + 1,
			fiscal_claimed_at = NULL, updated_at = NOW()
		 WHERE id = $1`,
		id, message,
	)
	if err != nil {
		return fmt.Errorf("repository: failed to save fiscal error of payment %d: %w", id, err)
	}

	return nil
}

// ListUnfiscalized возвращает завершенные, но не фискализированные оплаты
func (r *PaymentRepository) ListUnfiscalized(ctx context.Context, maxAttempts, limit int) ([]int64, error) {
	rows, err := conn(ctx, r.db).Query(ctx,
		`SELECT id
		 FROM payments
		 WHERE status = 'COMPLETED' AND NOT fiscalized AND fiscal_attempts < $1
		 ORDER BY id
		 LIMIT $2`,
		maxAttempts, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list unfiscalized payments: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("repository: failed to scan payment id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating unfiscalized payments: %w", err)
	}

	return ids, nil
}
