package fiscal

import (
	"testing"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/pricing"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paymentFor(t *testing.T, req domain.TicketRequest, cfg *domain.PriceConfiguration) *domain.Payment {
	t.Helper()

	b, err := pricing.Compute(req, cfg)
	require.NoError(t, err)

	return &domain.Payment{
		ID:           1,
		ChequeCode:   "CH1A2B3C4D",
		TicketNumber: "Л1",
		TotalAmount:  b.Total,
		Breakdown:    *b,
		Status:       domain.PaymentStatusCompleted,
	}
}

func TestBuildReceipt(t *testing.T) {
	company := domain.FiscalCompany{INN: "01234567890123", SNO: 0}

	t.Run("Employee group with add-ons", func(t *testing.T) {
		p := paymentFor(t, domain.TicketRequest{
			AmountAdult:       4,
			AmountChild:       1,
			Hours:             2,
			SkateRental:       2,
			InstructorService: true,
			IsEmployee:        true,
			EmployeeName:      "Иванов",
		}, domain.DefaultPriceConfiguration())

		r, err := BuildReceipt(p, "0000003213047999", company)
		require.NoError(t, err)

		assert.Equal(t, "INCOME", r.Operation)
		assert.Equal(t, "Каток Локомотив - Л1", r.Description)
		assert.Equal(t, company, r.Company)
		require.Len(t, r.Goods, 5)

		assert.Equal(t, "Билет взрослый × 3 × 2ч (скидка 50%)", r.Goods[0].Name)
		assert.Equal(t, int64(50000), r.Goods[0].Price)
		assert.Equal(t, 3, r.Goods[0].Quantity)
		assert.Equal(t, "Билет взрослый × 1 × 2ч", r.Goods[1].Name)
		assert.Equal(t, int64(100000), r.Goods[1].Price)
		assert.Equal(t, "Билет детский × 1 × 2ч", r.Goods[2].Name)
		assert.Equal(t, "Прокат коньков × 2", r.Goods[3].Name)
		assert.Equal(t, "Услуга инструктора", r.Goods[4].Name)

		var sum int64
		for _, g := range r.Goods {
			assert.Equal(t, 1, g.CalcItemAttributeCode)
			assert.Equal(t, "шт.", g.Unit)
			sum += g.Price * int64(g.Quantity)
		}
		assert.Equal(t, r.Received, sum)
		assert.Equal(t, int64(350000), r.Received)
	})

	t.Run("Fractional line is passed as one position", func(t *testing.T) {
		cfg := domain.DefaultPriceConfiguration()
		cfg.AdultPricePerHour = decimal.RequireFromString("333.33")

		p := paymentFor(t, domain.TicketRequest{AmountAdult: 3, Hours: 1, IsEmployee: true, EmployeeName: "Иванов"}, cfg)
		assert.Equal(t, "500.00", p.TotalAmount.StringFixed(2))

		r, err := BuildReceipt(p, "0000003213047999", company)
		require.NoError(t, err)
		require.Len(t, r.Goods, 1)
		assert.Equal(t, "Билет взрослый × 3 × 1ч (скидка 50%)", r.Goods[0].Name)
		assert.Equal(t, int64(50000), r.Goods[0].Price)
		assert.Equal(t, 1, r.Goods[0].Quantity)
		assert.Equal(t, int64(50000), r.Received)
	})

	t.Run("Rounding remainder stays on fractional lines", func(t *testing.T) {
		cfg := domain.DefaultPriceConfiguration()
		cfg.AdultPricePerHour = decimal.RequireFromString("100.01")
		cfg.ChildPricePerHour = decimal.RequireFromString("100.03")

		// 2 * 50.005 = 100.01, 1 * 50.015 = 50.015, 1 * 100.03 = 100.03, итог 250.055
		p := paymentFor(t, domain.TicketRequest{AmountAdult: 2, AmountChild: 2, Hours: 1, IsEmployee: true, EmployeeName: "Иванов"}, cfg)
		assert.Equal(t, "250.06", p.TotalAmount.StringFixed(2))

		r, err := BuildReceipt(p, "0000003213047999", company)
		require.NoError(t, err)
		require.Len(t, r.Goods, 3)

		assert.Equal(t, int64(10001), r.Goods[0].Price)
		assert.Equal(t, 1, r.Goods[0].Quantity)
		assert.Equal(t, int64(5002), r.Goods[1].Price)
		assert.Equal(t, 1, r.Goods[1].Quantity)
		assert.Equal(t, int64(10003), r.Goods[2].Price)

		var sum int64
		for _, g := range r.Goods {
			sum += g.Price * int64(g.Quantity)
		}
		assert.Equal(t, r.Received, sum)
		assert.Equal(t, int64(25006), r.Received)
	})

	t.Run("Several fractional lines", func(t *testing.T) {
		cfg := domain.DefaultPriceConfiguration()
		cfg.AdultPricePerHour = decimal.RequireFromString("10.01")
		cfg.ChildPricePerHour = decimal.RequireFromString("10.01")
		cfg.EmployeeDiscountPercent = 33

		// 6.7067 + 2 * 6.7067 = 20.1201
		p := paymentFor(t, domain.TicketRequest{AmountAdult: 1, AmountChild: 2, Hours: 1, IsEmployee: true, EmployeeName: "Иванов"}, cfg)
		assert.Equal(t, "20.12", p.TotalAmount.StringFixed(2))

		r, err := BuildReceipt(p, "0000003213047999", company)
		require.NoError(t, err)
		require.Len(t, r.Goods, 2)
		assert.Equal(t, int64(671), r.Goods[0].Price)
		assert.Equal(t, int64(1341), r.Goods[1].Price)
		assert.Equal(t, int64(2012), r.Received)
	})

	t.Run("Mismatched total", func(t *testing.T) {
		p := paymentFor(t, domain.TicketRequest{AmountAdult: 1, Hours: 1}, domain.DefaultPriceConfiguration())
		p.TotalAmount = decimal.NewFromInt(499)

		_, err := BuildReceipt(p, "0000003213047999", company)
		assert.Error(t, err)
	})

	t.Run("No lines", func(t *testing.T) {
		_, err := BuildReceipt(&domain.Payment{ID: 2}, "0000003213047999", company)
		assert.Error(t, err)
	})
}

func TestToMinorUnits(t *testing.T) {
	assert.Equal(t, int64(50000), ToMinorUnits(decimal.NewFromInt(500)))
	assert.Equal(t, int64(16666), ToMinorUnits(decimal.RequireFromString("166.66")))
	assert.Equal(t, int64(1), ToMinorUnits(decimal.RequireFromString("0.01")))
}
