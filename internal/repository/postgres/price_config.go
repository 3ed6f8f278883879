package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// PriceConfigRepository реализует domain.PriceConfigRepository
type PriceConfigRepository struct {
	db DBTX
}

// NewPriceConfigRepository создает новый PriceConfigRepository
func NewPriceConfigRepository(db DBTX) *PriceConfigRepository {
	return &PriceConfigRepository{db: db}
}

// Get возвращает тарифы, создавая значения по умолчанию при первом обращении
func (r *PriceConfigRepository) Get(ctx context.Context) (*domain.PriceConfiguration, error) {
	cfg, err := r.load(ctx)
	if err == nil {
		return cfg, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("repository: failed to get price configuration: %w", err)
	}

	def := domain.DefaultPriceConfiguration()
	_, err = conn(ctx, r.db).Exec(ctx,
		`INSERT INTO price_configuration (id, adult_price_per_hour, child_price_per_hour, skate_rental_price,
			instructor_price, employee_discount_percent, regular_discount_percent, discount_policy)
		 VALUES (1, $1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (id) DO NOTHING`,
		def.AdultPricePerHour, def.ChildPricePerHour, def.SkateRentalPrice, def.InstructorPrice,
		def.EmployeeDiscountPercent, def.RegularDiscountPercent, def.DiscountPolicy,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to create default price configuration: %w", err)
	}

	cfg, err = r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get price configuration: %w", err)
	}

	return cfg, nil
}

func (r *PriceConfigRepository) load(ctx context.Context) (*domain.PriceConfiguration, error) {
	cfg := &domain.PriceConfiguration{}

	err := conn(ctx, r.db).QueryRow(ctx,
		`SELECT adult_price_per_hour, child_price_per_hour, skate_rental_price, instructor_price,
			employee_discount_percent, regular_discount_percent, discount_policy, updated_at
		 FROM price_configuration
		 WHERE id = 1`,
	).Scan(&cfg.AdultPricePerHour, &cfg.ChildPricePerHour, &cfg.SkateRentalPrice, &cfg.InstructorPrice,
		&cfg.EmployeeDiscountPercent, &cfg.RegularDiscountPercent, &cfg.DiscountPolicy, &cfg.UpdatedAt)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// Update сохраняет тарифы
func (r *PriceConfigRepository) Update(ctx context.Context, cfg *domain.PriceConfiguration) error {
	err := conn(ctx, r.db).QueryRow(ctx,
		`UPDATE price_configuration
		 SET adult_price_per_hour = $1, child_price_per_hour = $2, skate_rental_price = $3,
			instructor_price = $4, employee_discount_percent = $5, regular_discount_percent = $6,
			discount_policy = $7, updated_at = NOW()
		 WHERE id = 1
		 RETURNING updated_at`,
		cfg.AdultPricePerHour, cfg.ChildPricePerHour, cfg.SkateRentalPrice, cfg.InstructorPrice,
		cfg.EmployeeDiscountPercent, cfg.RegularDiscountPercent, cfg.DiscountPolicy,
	).Scan(&cfg.UpdatedAt)

	if err != nil {
		return fmt.Errorf("repository: failed to update price configuration: %w", err)
	}

	return nil
}
