// Package pricing рассчитывает стоимость билетов на каток.
//
// Расчет чистый: на вход запрос и текущие тарифы, на выход детализация
// с позициями, из которых затем строится фискальный чек. Позиции считаются
// без округления, до копеек округляется только итог.
package pricing

import (
	"strings"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/shopspring/decimal"
)

// EmployeeGroupSize количество мест со скидкой сотрудника
const EmployeeGroupSize = 3

var hundred = decimal.NewFromInt(100)

// Compute рассчитывает стоимость билета по текущим тарифам
func Compute(req domain.TicketRequest, cfg *domain.PriceConfiguration) (*domain.ChargeBreakdown, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	policy := cfg.DiscountPolicy
	if policy == "" {
		policy = domain.DiscountPolicyEmployeeGroup
	}

	b := &domain.ChargeBreakdown{Policy: policy}

	var ticketPercent, addonPercent int
	discountedAdults, discountedChildren := 0, 0

	switch policy {
	case domain.DiscountPolicyFlat:
		ticketPercent = cfg.RegularDiscountPercent
		if req.IsEmployee {
			ticketPercent = cfg.EmployeeDiscountPercent
		}
		addonPercent = ticketPercent
		discountedAdults, discountedChildren = req.AmountAdult, req.AmountChild
	case domain.DiscountPolicyEmployeeGroup:
		if req.IsEmployee && req.People() >= EmployeeGroupSize {
			ticketPercent = cfg.EmployeeDiscountPercent
			discountedAdults, discountedChildren = splitDiscount(req.AmountAdult, req.AmountChild, EmployeeGroupSize)
		}
	default:
		return nil, domain.NewValidationError("discount_policy", "unknown policy")
	}

	if ticketPercent == 0 {
		discountedAdults, discountedChildren = 0, 0
	}

	hours := decimal.NewFromInt(int64(req.Hours))

	adultLines := ticketLines(domain.LineAdult, req.AmountAdult, discountedAdults, req.Hours, cfg.AdultPricePerHour.Mul(hours), ticketPercent)
	childLines := ticketLines(domain.LineChild, req.AmountChild, discountedChildren, req.Hours, cfg.ChildPricePerHour.Mul(hours), ticketPercent)
	b.Lines = append(b.Lines, adultLines...)
	b.Lines = append(b.Lines, childLines...)
	b.AdultTotal = sumLines(adultLines)
	b.ChildTotal = sumLines(childLines)

	if req.SkateRental > 0 {
		line := newLine(domain.LineSkateRental, req.SkateRental, 0, cfg.SkateRentalPrice, addonPercent)
		b.Lines = append(b.Lines, line)
		b.RentalTotal = line.Amount
	}
	if req.InstructorService {
		line := newLine(domain.LineInstructor, 1, 0, cfg.InstructorPrice, addonPercent)
		b.Lines = append(b.Lines, line)
		b.InstructorTotal = line.Amount
	}

	b.Subtotal = cfg.AdultPricePerHour.Mul(hours).Mul(decimal.NewFromInt(int64(req.AmountAdult))).
		Add(cfg.ChildPricePerHour.Mul(hours).Mul(decimal.NewFromInt(int64(req.AmountChild)))).
		Add(cfg.SkateRentalPrice.Mul(decimal.NewFromInt(int64(req.SkateRental))))
	if req.InstructorService {
		b.Subtotal = b.Subtotal.Add(cfg.InstructorPrice)
	}
	b.Subtotal = b.Subtotal.RoundBank(2)

	b.Total = sumLines(b.Lines).RoundBank(2)
	b.DiscountAmount = b.Subtotal.Sub(b.Total)
	b.DiscountPercent = ticketPercent
	b.DiscountedAdults = discountedAdults
	b.DiscountedChildren = discountedChildren

	return b, nil
}

// Validate проверяет состав билета
func Validate(req domain.TicketRequest) error {
	switch {
	case req.AmountAdult < 0:
		return domain.NewValidationError("amount_adult", "must not be negative")
	case req.AmountChild < 0:
		return domain.NewValidationError("amount_child", "must not be negative")
	case req.People() == 0:
		return domain.NewValidationError("amount", "at least one adult or child is required")
	case req.Hours < 1:
		return domain.NewValidationError("hours", "must be at least 1")
	case req.SkateRental < 0:
		return domain.NewValidationError("skate_rental", "must not be negative")
	case req.IsEmployee && strings.TrimSpace(req.EmployeeName) == "":
		return domain.NewValidationError("employee_name", "is required for employee visits")
	}
	return nil
}

// splitDiscount распределяет места со скидкой: сначала взрослые, остаток детям
func splitDiscount(adults, children, slots int) (int, int) {
	discountAdults := min(adults, slots)
	discountChildren := min(children, slots-discountAdults)
	return discountAdults, discountChildren
}

func ticketLines(kind domain.LineKind, count, discounted, hours int, unitPrice decimal.Decimal, percent int) []domain.ChargeLine {
	var lines []domain.ChargeLine
	if discounted > 0 {
		lines = append(lines, newLine(kind, discounted, hours, unitPrice, percent))
	}
	if full := count - discounted; full > 0 {
		lines = append(lines, newLine(kind, full, hours, unitPrice, 0))
	}
	return lines
}

func newLine(kind domain.LineKind, quantity, hours int, unitPrice decimal.Decimal, percent int) domain.ChargeLine {
	price := ApplyDiscount(unitPrice, percent)
	return domain.ChargeLine{
		Kind:            kind,
		Quantity:        quantity,
		Hours:           hours,
		UnitPrice:       price,
		DiscountPercent: percent,
		Amount:          price.Mul(decimal.NewFromInt(int64(quantity))),
	}
}

// ApplyDiscount уменьшает цену на процент без округления
func ApplyDiscount(price decimal.Decimal, percent int) decimal.Decimal {
	if percent == 0 {
		return price
	}
	return price.Mul(decimal.NewFromInt(int64(100 - percent))).Div(hundred)
}

func sumLines(lines []domain.ChargeLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.Amount)
	}
	return total
}
