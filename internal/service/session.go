package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// SessionService реализует domain.SessionService.
// Переходы выполняются через сравнение с ожидаемым статусом, поэтому
// действия оператора и фоновая проверка истечения не перетирают друг друга.
type SessionService struct {
	tx       domain.TxManager
	payments domain.PaymentRepository
	sessions domain.SessionRepository
	location *time.Location
	logger   *zap.Logger
	now      func() time.Time

	sweepMu sync.Mutex
}

// NewSessionService создает новый SessionService
func NewSessionService(
	tx domain.TxManager,
	payments domain.PaymentRepository,
	sessions domain.SessionRepository,
	location *time.Location,
	logger *zap.Logger,
) *SessionService {
	if location == nil {
		location = time.Local
	}
	return &SessionService{
		tx:       tx,
		payments: payments,
		sessions: sessions,
		location: location,
		logger:   logger,
		now:      time.Now,
	}
}

// Start выпускает посетителей на лед
func (s *SessionService) Start(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.TransitionResult, error) {
	if err := requireRole(actor, "start sessions", operatorRoles...); err != nil {
		return nil, err
	}

	var result *domain.TransitionResult
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}
		if p.Status != domain.PaymentStatusCompleted {
			return domain.ErrPaymentNotCompleted
		}
		if p.SkatingStatus != domain.SkatingStatusWaiting {
			return transitionError(p.SkatingStatus, domain.SkatingStatusInProgress)
		}

		now := s.now()
		end := now.Add(time.Duration(p.Hours) * time.Hour)
		session := &domain.SkatingSession{
			PaymentID:      p.ID,
			Date:           startOfDay(now, s.location),
			Hours:          p.Hours,
			StartTime:      &now,
			PlannedEndTime: &end,
			Status:         domain.SkatingStatusInProgress,
		}

		if err := s.sessions.Create(ctx, session); err != nil {
			return err
		}
		if err := s.payments.SetSkatingStatus(ctx, p.ID, domain.SkatingStatusWaiting, domain.SkatingStatusInProgress); err != nil {
			return err
		}

		result = &domain.TransitionResult{
			PaymentID:      p.ID,
			SessionID:      session.ID,
			PreviousStatus: domain.SkatingStatusWaiting,
			Status:         domain.SkatingStatusInProgress,
			StartTime:      &now,
			SessionEnd:     &end,
			DurationHours:  p.Hours,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session started",
		zap.Int64("payment_id", result.PaymentID),
		zap.Int64("session_id", result.SessionID),
		zap.Time("session_end", *result.SessionEnd),
	)

	return result, nil
}

// Finish закрывает сеанс с истекшим временем после того, как посетители ушли со льда
func (s *SessionService) Finish(ctx context.Context, actor domain.Actor, paymentID int64) (*domain.TransitionResult, error) {
	if err := requireRole(actor, "finish sessions", operatorRoles...); err != nil {
		return nil, err
	}

	if _, err := s.SweepExpirations(ctx); err != nil {
		return nil, err
	}

	result, err := s.finish(ctx, paymentID, domain.SkatingStatusTimeExpired)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Session finished",
		zap.Int64("payment_id", result.PaymentID),
		zap.Int64("session_id", result.SessionID),
	)

	return result, nil
}

// ForceFinish досрочно закрывает сеанс на льду или с истекшим временем
func (s *SessionService) ForceFinish(ctx context.Context, actor domain.Actor, paymentID int64, reason string) (*domain.TransitionResult, error) {
	if err := requireRole(actor, "force finish sessions", operatorRoles...); err != nil {
		return nil, err
	}

	result, err := s.finish(ctx, paymentID, domain.SkatingStatusInProgress, domain.SkatingStatusTimeExpired)
	if err != nil {
		return nil, err
	}
	result.Reason = reason

	s.logger.Warn("Session force finished",
		zap.Int64("payment_id", result.PaymentID),
		zap.Int64("session_id", result.SessionID),
		zap.String("previous_status", string(result.PreviousStatus)),
		zap.Int64("user_id", actor.UserID),
		zap.String("reason", reason),
	)

	return result, nil
}

// finish переводит сеанс в FINISHED из одного из допустимых статусов
func (s *SessionService) finish(ctx context.Context, paymentID int64, allowed ...domain.SkatingStatus) (*domain.TransitionResult, error) {
	var result *domain.TransitionResult

	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		p, err := s.payments.GetByIDForUpdate(ctx, paymentID)
		if err != nil {
			return err
		}

		from := p.SkatingStatus
		if !statusIn(from, allowed) {
			return transitionError(from, domain.SkatingStatusFinished)
		}

		session, err := s.sessions.GetByPaymentIDForUpdate(ctx, p.ID)
		if err != nil {
			return err
		}

		now := s.now()
		updated, err := s.sessions.CompareAndSetStatus(ctx, session.ID, from, domain.SkatingStatusFinished, now)
		if err != nil {
			return err
		}
		if err := s.payments.SetSkatingStatus(ctx, p.ID, from, domain.SkatingStatusFinished); err != nil {
			return err
		}

		result = &domain.TransitionResult{
			PaymentID:      p.ID,
			SessionID:      updated.ID,
			PreviousStatus: from,
			Status:         domain.SkatingStatusFinished,
			StartTime:      updated.StartTime,
			SessionEnd:     updated.PlannedEndTime,
			EndTime:        updated.EndTime,
			DurationHours:  updated.Hours,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// Get получает сеанс по ID
func (s *SessionService) Get(ctx context.Context, actor domain.Actor, sessionID int64) (*domain.SkatingSession, error) {
	if err := requireRole(actor, "view sessions", domain.StaffRoles...); err != nil {
		return nil, err
	}
	return s.sessions.GetByID(ctx, sessionID)
}

// Dashboard возвращает посетителей текущего дня по состояниям
func (s *SessionService) Dashboard(ctx context.Context, actor domain.Actor) (*domain.Dashboard, error) {
	if err := requireRole(actor, "view dashboard", domain.StaffRoles...); err != nil {
		return nil, err
	}

	if _, err := s.SweepExpirations(ctx); err != nil {
		return nil, err
	}

	entries, err := s.sessions.ListActive(ctx, startOfDay(s.now(), s.location))
	if err != nil {
		return nil, fmt.Errorf("session service: failed to load dashboard: %w", err)
	}

	d := &domain.Dashboard{
		Waiting:     []*domain.DashboardEntry{},
		InProgress:  []*domain.DashboardEntry{},
		TimeExpired: []*domain.DashboardEntry{},
	}
	for _, e := range entries {
		switch e.SkatingStatus {
		case domain.SkatingStatusWaiting:
			d.Waiting = append(d.Waiting, e)
		case domain.SkatingStatusInProgress:
			d.InProgress = append(d.InProgress, e)
		case domain.SkatingStatusTimeExpired:
			d.TimeExpired = append(d.TimeExpired, e)
		}
	}

	return d, nil
}

// SweepExpirations переводит сеансы с истекшим временем в TIME_EXPIRED.
// Одновременно выполняется только одна проверка, повторный запуск ничего не меняет.
func (s *SessionService) SweepExpirations(ctx context.Context) (int64, error) {
	s.sweepMu.Lock()
	defer s.sweepMu.Unlock()

	n, err := s.sessions.SweepExpired(ctx, s.now())
	if err != nil {
		return 0, fmt.Errorf("session service: %w", err)
	}

	if n > 0 {
		s.logger.Info("Sessions expired", zap.Int64("count", n))
	}

	return n, nil
}

func statusIn(status domain.SkatingStatus, allowed []domain.SkatingStatus) bool {
	for _, a := range allowed {
		if status == a {
			return true
		}
	}
	return false
}

func transitionError(from, to domain.SkatingStatus) error {
	return fmt.Errorf("%w: %s -> %s", domain.ErrInvalidTransition, from, to)
}
