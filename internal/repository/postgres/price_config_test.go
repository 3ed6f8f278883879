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

var priceConfigColumns = []string{"adult_price_per_hour", "child_price_per_hour", "skate_rental_price", "instructor_price",
	"employee_discount_percent", "regular_discount_percent", "discount_policy", "updated_at"}

func TestPriceConfigRepository_Get(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPriceConfigRepository(mock)
	ctx := context.Background()
	now := time.Now()

	t.Run("Existing configuration", func(t *testing.T) {
		mock.ExpectQuery(`SELECT adult_price_per_hour.* FROM price_configuration WHERE id = 1`).
			WillReturnRows(pgxmock.NewRows(priceConfigColumns).
				AddRow(decimal.NewFromInt(600), decimal.NewFromInt(350), decimal.NewFromInt(100), decimal.NewFromInt(200),
					40, 5, domain.DiscountPolicyFlat, now))

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "600", cfg.AdultPricePerHour.String())
		assert.Equal(t, 40, cfg.EmployeeDiscountPercent)
		assert.Equal(t, domain.DiscountPolicyFlat, cfg.DiscountPolicy)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Defaults created on first access", func(t *testing.T) {
		def := domain.DefaultPriceConfiguration()

		mock.ExpectQuery(`FROM price_configuration WHERE id = 1`).
			WillReturnError(pgx.ErrNoRows)
		mock.ExpectExec(`INSERT INTO price_configuration .* ON CONFLICT \(id\) DO NOTHING`).
			WithArgs(def.AdultPricePerHour, def.ChildPricePerHour, def.SkateRentalPrice, def.InstructorPrice,
				def.EmployeeDiscountPercent, def.RegularDiscountPercent, def.DiscountPolicy).
			WillReturnResult(pgxmock.NewResult("INSERT", 1))
		mock.ExpectQuery(`FROM price_configuration WHERE id = 1`).
			WillReturnRows(pgxmock.NewRows(priceConfigColumns).
				AddRow(def.AdultPricePerHour, def.ChildPricePerHour, def.SkateRentalPrice, def.InstructorPrice,
					def.EmployeeDiscountPercent, def.RegularDiscountPercent, def.DiscountPolicy, now))

		cfg, err := repo.Get(ctx)
		require.NoError(t, err)
		assert.Equal(t, "500", cfg.AdultPricePerHour.String())
		assert.Equal(t, domain.DiscountPolicyEmployeeGroup, cfg.DiscountPolicy)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`FROM price_configuration WHERE id = 1`).
			WillReturnError(errors.New("database error"))

		cfg, err := repo.Get(ctx)
		assert.Error(t, err)
		assert.Nil(t, cfg)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestPriceConfigRepository_Update(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPriceConfigRepository(mock)
	ctx := context.Background()
	now := time.Now()

	cfg := domain.DefaultPriceConfiguration()
	cfg.AdultPricePerHour = decimal.NewFromInt(700)

	mock.ExpectQuery(`UPDATE price_configuration SET adult_price_per_hour = \$1.* RETURNING updated_at`).
		WithArgs(cfg.AdultPricePerHour, cfg.ChildPricePerHour, cfg.SkateRentalPrice, cfg.InstructorPrice,
			cfg.EmployeeDiscountPercent, cfg.RegularDiscountPercent, cfg.DiscountPolicy).
		WillReturnRows(pgxmock.NewRows([]string{"updated_at"}).AddRow(now))

	err = repo.Update(ctx, cfg)
	require.NoError(t, err)
	assert.Equal(t, now, cfg.UpdatedAt)

	assert.NoError(t, mock.ExpectationsWereMet())
}
