package fiscal

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

const (
	// DefaultClaimLease время, на которое оплата закрепляется за одной отправкой
	DefaultClaimLease = 2 * time.Minute
	errorPrefix       = "eKassa: "
	persistTimeout    = 5 * time.Second
)

// SubmitterConfig параметры фискализации
type SubmitterConfig struct {
	Enabled      bool
	FiscalNumber string
	Company      domain.FiscalCompany
	ClaimLease   time.Duration
	MaxAttempts  int
}

// Submitter реализует domain.FiscalSubmitter
type Submitter struct {
	client   domain.FiscalClient
	payments domain.PaymentRepository
	tokens   *TokenCache
	cfg      SubmitterConfig
	logger   *zap.Logger
}

// NewSubmitter создает новый Submitter
func NewSubmitter(client domain.FiscalClient, payments domain.PaymentRepository, cfg SubmitterConfig, logger *zap.Logger) *Submitter {
	if cfg.ClaimLease <= 0 {
		cfg.ClaimLease = DefaultClaimLease
	}
	if cfg.MaxAttempts <= 0 || cfg.MaxAttempts > MaxReceiptAttempts {
		cfg.MaxAttempts = MaxReceiptAttempts
	}
	return &Submitter{
		client:   client,
		payments: payments,
		tokens:   NewTokenCache(client.Login, DefaultTokenTTL),
		cfg:      cfg,
		logger:   logger,
	}
}

// Submit фискализирует оплату. Повторный вызов для фискализированной оплаты
// не обращается к eKassa. Ошибки eKassa сохраняются в оплате и возвращаются в результате.
func (s *Submitter) Submit(ctx context.Context, paymentID int64) (*domain.FiscalResult, error) {
	p, err := s.payments.GetByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}

	if p.Fiscalized {
		return &domain.FiscalResult{
			PaymentID:         p.ID,
			Fiscalized:        true,
			AlreadyFiscalized: true,
			UUID:              deref(p.FiscalUUID),
			Link:              deref(p.FiscalLink),
		}, nil
	}

	if p.Status != domain.PaymentStatusCompleted {
		return nil, domain.ErrPaymentNotCompleted
	}

	if !s.cfg.Enabled {
		return &domain.FiscalResult{PaymentID: p.ID, Error: "fiscalization is disabled"}, nil
	}

	claimed, err := s.payments.ClaimFiscal(ctx, p.ID, s.cfg.ClaimLease)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return &domain.FiscalResult{PaymentID: p.ID, InProgress: true}, nil
	}

	receipt, err := BuildReceipt(p, s.cfg.FiscalNumber, s.cfg.Company)
	if err != nil {
		return s.fail(ctx, p, err)
	}

	s.logger.Info("Submitting receipt",
		zap.Int64("payment_id", p.ID),
		zap.String("cheque_code", p.ChequeCode),
		zap.Int64("received", receipt.Received),
	)

	res, err := s.send(ctx, receipt)
	if err != nil {
		return s.fail(ctx, p, err)
	}

	pctx, cancel := persistContext(ctx)
	defer cancel()
	if err := s.payments.SaveFiscalResult(pctx, p.ID, res.ID, res.Link); err != nil {
		return nil, err
	}

	s.logger.Info("Receipt registered",
		zap.Int64("payment_id", p.ID),
		zap.String("fiscal_uuid", res.ID),
	)

	return &domain.FiscalResult{
		PaymentID:  p.ID,
		Fiscalized: true,
		UUID:       res.ID,
		Link:       res.Link,
	}, nil
}

// send отправляет чек, повторяя один раз после переоткрытия смены или обновления токена
func (s *Submitter) send(ctx context.Context, receipt *domain.FiscalReceipt) (*domain.FiscalReceiptResult, error) {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.client.OpenShift(ctx, token); err != nil {
		s.logger.Warn("Failed to open shift, submitting anyway", zap.Error(err))
	}

	rctx, budget := withAttemptBudget(ctx, s.cfg.MaxAttempts)
	res, err := s.client.SubmitReceipt(rctx, token, receipt)
	if err == nil {
		return res, nil
	}

	var fErr *domain.FiscalError
	if !errors.As(err, &fErr) {
		return nil, err
	}
	if budget.remaining() <= 0 {
		s.logger.Warn("Receipt attempts exhausted", zap.Int("max_attempts", s.cfg.MaxAttempts))
		return nil, err
	}

	switch {
	case fErr.StatusCode == http.StatusUnauthorized:
		s.logger.Info("Token rejected, logging in again")
		s.tokens.Invalidate()
		token, err = s.tokens.Get(ctx)
		if err != nil {
			return nil, err
		}
		return s.client.SubmitReceipt(rctx, token, receipt)

	case isShiftError(fErr):
		s.logger.Warn("Shift is in wrong state, reopening", zap.String("message", fErr.Message))
		if err := s.client.CloseShift(ctx, token); err != nil {
			s.logger.Warn("Failed to close shift", zap.Error(err))
		}
		if err := s.client.OpenShift(ctx, token); err != nil {
			s.logger.Warn("Failed to reopen shift", zap.Error(err))
		}
		return s.client.SubmitReceipt(rctx, token, receipt)
	}

	return nil, err
}

// fail сохраняет ошибку фискализации в оплате
func (s *Submitter) fail(ctx context.Context, p *domain.Payment, cause error) (*domain.FiscalResult, error) {
	msg := errorPrefix + fiscalMessage(cause)

	s.logger.Error("Fiscalization failed",
		zap.Int64("payment_id", p.ID),
		zap.String("cheque_code", p.ChequeCode),
		zap.Error(cause),
	)

	pctx, cancel := persistContext(ctx)
	defer cancel()
	if err := s.payments.SaveFiscalError(pctx, p.ID, msg); err != nil {
		return nil, err
	}

	return &domain.FiscalResult{PaymentID: p.ID, Error: msg}, nil
}

// CloseShift закрывает смену кассы
func (s *Submitter) CloseShift(ctx context.Context) error {
	if !s.cfg.Enabled {
		return nil
	}

	token, err := s.tokens.Get(ctx)
	if err != nil {
		return err
	}

	return s.client.CloseShift(ctx, token)
}

// persistContext позволяет сохранить результат, даже если время запроса истекло
func persistContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
}

func isShiftError(err *domain.FiscalError) bool {
	msg := strings.ToLower(err.Message)
	return strings.Contains(msg, "shift") || strings.Contains(msg, "смен")
}

func fiscalMessage(err error) string {
	var fErr *domain.FiscalError
	if errors.As(err, &fErr) {
		return fErr.Message
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "request timed out"
	}
	return err.Error()
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
