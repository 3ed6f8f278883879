package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/fiscal"
	"github.com/lokomotiv/rink-ticketing/internal/pricing"
	"go.uber.org/zap"
)

const (
	chequeCodeAttempts = 5
	chequeCodePrefix   = "CH"
	// DefaultFiscalTimeout ограничение на синхронную фискализацию после оплаты
	DefaultFiscalTimeout = 30 * time.Second
)

// PaymentServiceConfig параметры PaymentService
type PaymentServiceConfig struct {
	Location      *time.Location
	FiscalTimeout time.Duration
}

// PaymentService реализует domain.PaymentService
type PaymentService struct {
	tx        domain.TxManager
	payments  domain.PaymentRepository
	prices    domain.PriceConfigRepository
	directory domain.DirectoryRepository
	gateway   domain.PaymentGateway
	fiscal    domain.FiscalSubmitter
	cfg       PaymentServiceConfig
	logger    *zap.Logger
	now       func() time.Time
}

// NewPaymentService создает новый PaymentService
func NewPaymentService(
	tx domain.TxManager,
	payments domain.PaymentRepository,
	prices domain.PriceConfigRepository,
	directory domain.DirectoryRepository,
	gateway domain.PaymentGateway,
	fiscalSubmitter domain.FiscalSubmitter,
	cfg PaymentServiceConfig,
	logger *zap.Logger,
) *PaymentService {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.FiscalTimeout <= 0 {
		cfg.FiscalTimeout = DefaultFiscalTimeout
	}
	return &PaymentService{
		tx:        tx,
		payments:  payments,
		prices:    prices,
		directory: directory,
		gateway:   gateway,
		fiscal:    fiscalSubmitter,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Quote рассчитывает стоимость без сохранения
func (s *PaymentService) Quote(ctx context.Context, actor domain.Actor, req domain.TicketRequest) (*domain.ChargeBreakdown, error) {
	if err := requireRole(actor, "quote tickets", salesRoles...); err != nil {
		return nil, err
	}

	cfg, err := s.prices.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("payment service: failed to get prices: %w", err)
	}

	return pricing.Compute(normalizeRequest(req), cfg)
}

// CreatePayment оформляет билет: расчет, проверка визита сотрудника, сохранение и оплата через шлюз.
// Отказ шлюза сохраняет оплату в статусе FAILED и возвращает GatewayError.
// Фискализация выполняется после фиксации транзакции, ее ошибки не влияют на результат.
func (s *PaymentService) CreatePayment(ctx context.Context, actor domain.Actor, req domain.TicketRequest) (*domain.Payment, error) {
	if err := requireRole(actor, "create payments", salesRoles...); err != nil {
		return nil, err
	}

	req = normalizeRequest(req)
	if err := pricing.Validate(req); err != nil {
		return nil, err
	}

	var (
		p          *domain.Payment
		gatewayErr *domain.GatewayError
	)

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		cfg, err := s.prices.Get(ctx)
		if err != nil {
			return fmt.Errorf("payment service: failed to get prices: %w", err)
		}

		breakdown, err := pricing.Compute(req, cfg)
		if err != nil {
			return err
		}

		if req.IsEmployee {
			if err := s.checkEmployeeVisit(ctx, req.EmployeeName, s.now(), 0); err != nil {
				return err
			}
		}

		p = &domain.Payment{
			TicketNumber:  req.TicketNumber,
			UserID:        actor.UserID,
			Status:        domain.PaymentStatusPending,
			SkatingStatus: domain.SkatingStatusWaiting,
		}
		applyTicket(p, req, breakdown)

		if err := s.resolveDirectory(ctx, p, req); err != nil {
			return err
		}

		if err := s.insert(ctx, p); err != nil {
			return err
		}

		gatewayErr, err = s.charge(ctx, p)
		return err
	})
	if err != nil {
		return nil, err
	}
	if gatewayErr != nil {
		return nil, gatewayErr
	}

	s.logger.Info("Payment completed",
		zap.Int64("payment_id", p.ID),
		zap.String("cheque_code", p.ChequeCode),
		zap.String("total", p.TotalAmount.StringFixed(2)),
	)

	s.fiscalizeAfterCommit(ctx, p)

	return p, nil
}

// insert сохраняет оплату с новым кодом чека, повторяя при совпадении кода
func (s *PaymentService) insert(ctx context.Context, p *domain.Payment) error {
	for attempt := 0; attempt < chequeCodeAttempts; attempt++ {
		p.ChequeCode = NewChequeCode()

		err := s.payments.Create(ctx, p)
		if err == nil {
			return nil
		}
		if !errors.Is(err, domain.ErrChequeCodeExists) {
			return fmt.Errorf("payment service: failed to create payment: %w", err)
		}
	}
	return fmt.Errorf("payment service: %w after %d attempts", domain.ErrChequeCodeExists, chequeCodeAttempts)
}

// charge проводит оплату через шлюз и сохраняет итоговый статус
func (s *PaymentService) charge(ctx context.Context, p *domain.Payment) (*domain.GatewayError, error) {
	res, err := s.gateway.Initiate(ctx, p.TotalAmount, p.ChequeCode, fiscal.DescriptionPrefix+p.TicketNumber)
	if err == nil && res.Success && res.Status == GatewayStatusPending {
		res, err = s.gateway.CheckStatus(ctx, res.TransactionID)
	}

	if err != nil || !res.Success || res.Status == GatewayStatusPending {
		msg := gatewayMessage(res, err)
		s.logger.Warn("Payment rejected by gateway",
			zap.Int64("payment_id", p.ID),
			zap.String("cheque_code", p.ChequeCode),
			zap.String("reason", msg),
		)

		if err := s.payments.UpdateStatus(ctx, p.ID, domain.PaymentStatusFailed, nil); err != nil {
			return nil, fmt.Errorf("payment service: failed to mark payment %d failed: %w", p.ID, err)
		}
		p.Status = domain.PaymentStatusFailed
		return &domain.GatewayError{Message: msg}, nil
	}

	txID := res.TransactionID
	if err := s.payments.UpdateStatus(ctx, p.ID, domain.PaymentStatusCompleted, &txID); err != nil {
		return nil, fmt.Errorf("payment service: failed to complete payment %d: %w", p.ID, err)
	}
	p.Status = domain.PaymentStatusCompleted
	p.GatewayTransactionID = &txID
	p.RedirectURL = res.RedirectURL

	return nil, nil
}

func gatewayMessage(res *domain.GatewayResult, err error) string {
	switch {
	case err != nil:
		return err.Error()
	case res.Error != "":
		return res.Error
	case res.Status == GatewayStatusPending:
		return "payment was not confirmed"
	}
	return "payment declined"
}

// fiscalizeAfterCommit пробивает чек с ограничением по времени. Ошибки только логируются,
// неудачные оплаты подберет фоновая повторная отправка.
func (s *PaymentService) fiscalizeAfterCommit(ctx context.Context, p *domain.Payment) {
	fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.cfg.FiscalTimeout)
	defer cancel()

	res, err := s.fiscal.Submit(fctx, p.ID)
	if err != nil {
		s.logger.Error("Fiscalization failed",
			zap.Int64("payment_id", p.ID),
			zap.String("cheque_code", p.ChequeCode),
			zap.Error(err),
		)
		return
	}

	p.Fiscalized = res.Fiscalized
	if res.UUID != "" {
		p.FiscalUUID = &res.UUID
	}
	if res.Link != "" {
		p.FiscalLink = &res.Link
	}
	if res.Error != "" {
		p.FiscalError = &res.Error
	}
}

// UpdatePayment изменяет состав последнего билета, пока посетители не вышли на лед
func (s *PaymentService) UpdatePayment(ctx context.Context, actor domain.Actor, id int64, req domain.TicketRequest) (*domain.Payment, error) {
	if err := requireRole(actor, "update payments", salesRoles...); err != nil {
		return nil, err
	}

	req = normalizeRequest(req)
	if err := pricing.Validate(req); err != nil {
		return nil, err
	}

	var p *domain.Payment
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		last, err := s.payments.GetLastForUpdate(ctx)
		if err != nil {
			return err
		}
		if last.ID != id {
			if _, err := s.payments.GetByID(ctx, id); err != nil {
				return err
			}
			return domain.ErrNotLastPayment
		}

		switch {
		case last.Status == domain.PaymentStatusFailed || last.Status == domain.PaymentStatusRefunded:
			return fmt.Errorf("%w: payment is %s", domain.ErrPaymentNotEditable, last.Status)
		case last.SkatingStatus != domain.SkatingStatusWaiting:
			return fmt.Errorf("%w: skating status is %s", domain.ErrPaymentNotEditable, last.SkatingStatus)
		}

		cfg, err := s.prices.Get(ctx)
		if err != nil {
			return fmt.Errorf("payment service: failed to get prices: %w", err)
		}

		breakdown, err := pricing.Compute(req, cfg)
		if err != nil {
			return err
		}

		if last.Fiscalized && !breakdown.Total.Equal(last.TotalAmount) {
			return fmt.Errorf("%w: receipt is already registered for %s", domain.ErrPaymentNotEditable, last.TotalAmount.StringFixed(2))
		}

		if req.IsEmployee {
			if err := s.checkEmployeeVisit(ctx, req.EmployeeName, last.CreatedAt, last.ID); err != nil {
				return err
			}
		}

		applyTicket(last, req, breakdown)
		if err := s.resolveDirectory(ctx, last, req); err != nil {
			return err
		}

		if err := s.payments.UpdateTicket(ctx, last); err != nil {
			return fmt.Errorf("payment service: failed to update payment %d: %w", last.ID, err)
		}

		p = last
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Payment updated",
		zap.Int64("payment_id", p.ID),
		zap.String("total", p.TotalAmount.StringFixed(2)),
	)

	return p, nil
}

// GetPayment получает оплату по ID
func (s *PaymentService) GetPayment(ctx context.Context, actor domain.Actor, id int64) (*domain.Payment, error) {
	if err := requireRole(actor, "view payments", domain.StaffRoles...); err != nil {
		return nil, err
	}
	return s.payments.GetByID(ctx, id)
}

// GetLastPayment получает последнюю оплату
func (s *PaymentService) GetLastPayment(ctx context.Context, actor domain.Actor) (*domain.Payment, error) {
	if err := requireRole(actor, "view payments", domain.StaffRoles...); err != nil {
		return nil, err
	}
	return s.payments.GetLast(ctx)
}

// Fiscalize повторно отправляет чек оплаты в eKassa
func (s *PaymentService) Fiscalize(ctx context.Context, actor domain.Actor, id int64) (*domain.FiscalResult, error) {
	if err := requireRole(actor, "fiscalize payments", adminRoles...); err != nil {
		return nil, err
	}
	return s.fiscal.Submit(ctx, id)
}

// checkEmployeeVisit отклоняет второй визит сотрудника за календарный день.
// Блокировка держится до конца транзакции.
func (s *PaymentService) checkEmployeeVisit(ctx context.Context, employeeName string, at time.Time, excludeID int64) error {
	dayStart := startOfDay(at, s.cfg.Location)

	if err := s.payments.LockEmployeeDay(ctx, employeeName, dayStart); err != nil {
		return err
	}

	visitedAt, err := s.payments.FindEmployeeVisit(ctx, employeeName, dayStart, dayStart.AddDate(0, 0, 1), excludeID)
	if err != nil {
		return err
	}
	if visitedAt != nil {
		return &domain.DuplicateVisitError{EmployeeName: employeeName, VisitedAt: *visitedAt}
	}

	return nil
}

// resolveDirectory находит или создает отдел и должность
func (s *PaymentService) resolveDirectory(ctx context.Context, p *domain.Payment, req domain.TicketRequest) error {
	p.DepartmentID, p.PositionID = nil, nil
	p.DepartmentName, p.PositionName = req.DepartmentName, req.PositionName

	if req.DepartmentName != "" {
		id, _, err := s.directory.GetOrCreate(ctx, domain.DirectoryDepartment, req.DepartmentName)
		if err != nil {
			return err
		}
		p.DepartmentID = &id
	}
	if req.PositionName != "" {
		id, _, err := s.directory.GetOrCreate(ctx, domain.DirectoryPosition, req.PositionName)
		if err != nil {
			return err
		}
		p.PositionID = &id
	}

	return nil
}

// applyTicket переносит состав билета и расчет в оплату
func applyTicket(p *domain.Payment, req domain.TicketRequest, b *domain.ChargeBreakdown) {
	p.AmountAdult = req.AmountAdult
	p.AmountChild = req.AmountChild
	p.Hours = req.Hours
	p.SkateRental = req.SkateRental
	p.InstructorService = req.InstructorService
	p.IsEmployee = req.IsEmployee
	p.EmployeeName = req.EmployeeName
	p.Percent = b.DiscountPercent
	p.TotalAmount = b.Total
	p.Breakdown = *b
}

func normalizeRequest(req domain.TicketRequest) domain.TicketRequest {
	req.EmployeeName = strings.Join(strings.Fields(req.EmployeeName), " ")
	req.DepartmentName = strings.TrimSpace(req.DepartmentName)
	req.PositionName = strings.TrimSpace(req.PositionName)
	req.TicketNumber = strings.TrimSpace(req.TicketNumber)
	if !req.IsEmployee {
		req.EmployeeName = ""
	}
	return req
}

// NewChequeCode генерирует код чека вида CH1A2B3C4D
func NewChequeCode() string {
	id := strings.ReplaceAll(uuid.NewString(), "-", "")
	return chequeCodePrefix + strings.ToUpper(id[:8])
}

func startOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
