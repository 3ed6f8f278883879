package service

import (
	"context"
	"fmt"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// ConfigService реализует domain.ConfigService
type ConfigService struct {
	tx     domain.TxManager
	prices domain.PriceConfigRepository
	logger *zap.Logger
}

// NewConfigService создает новый ConfigService
func NewConfigService(tx domain.TxManager, prices domain.PriceConfigRepository, logger *zap.Logger) *ConfigService {
	return &ConfigService{
		tx:     tx,
		prices: prices,
		logger: logger,
	}
}

// Get возвращает текущие тарифы
func (s *ConfigService) Get(ctx context.Context, actor domain.Actor) (*domain.PriceConfiguration, error) {
	if err := requireRole(actor, "view prices", domain.StaffRoles...); err != nil {
		return nil, err
	}

	cfg, err := s.prices.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("config service: %w", err)
	}
	return cfg, nil
}

// Update частично изменяет тарифы. Новые значения применяются только к следующим оплатам.
func (s *ConfigService) Update(ctx context.Context, actor domain.Actor, patch domain.PriceConfigurationPatch) (*domain.PriceConfiguration, error) {
	if err := requireRole(actor, "change prices", adminRoles...); err != nil {
		return nil, err
	}

	var cfg *domain.PriceConfiguration
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		current, err := s.prices.Get(ctx)
		if err != nil {
			return fmt.Errorf("config service: %w", err)
		}

		patch.Apply(current)
		if err := current.Validate(); err != nil {
			return err
		}

		if err := s.prices.Update(ctx, current); err != nil {
			return fmt.Errorf("config service: %w", err)
		}

		cfg = current
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("Prices updated",
		zap.Int64("user_id", actor.UserID),
		zap.String("adult_price_per_hour", cfg.AdultPricePerHour.String()),
		zap.String("child_price_per_hour", cfg.ChildPricePerHour.String()),
		zap.String("discount_policy", string(cfg.DiscountPolicy)),
	)

	return cfg, nil
}
