package fiscal

import (
	"fmt"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	operationIncome = "INCOME"
	goodsUnit       = "шт."
	// DescriptionPrefix начало описания чека и платежа
	DescriptionPrefix = "Каток Локомотив - "
)

var minorUnits = decimal.NewFromInt(100)

// ToMinorUnits переводит сумму в тыйыны
func ToMinorUnits(amount decimal.Decimal) int64 {
	return amount.Mul(minorUnits).RoundBank(0).IntPart()
}

// BuildReceipt строит чек прихода из позиций расчета оплаты.
// Сумма позиций в тыйынах совпадает с итогом оплаты: позиции с целым числом
// тыйынов передаются как есть, остальные округляются нарастающим итогом.
func BuildReceipt(p *domain.Payment, fiscalNumber string, company domain.FiscalCompany) (*domain.FiscalReceipt, error) {
	lines := p.Breakdown.Lines
	if len(lines) == 0 {
		return nil, fmt.Errorf("fiscal: payment %d has no charge lines", p.ID)
	}

	received := ToMinorUnits(p.TotalAmount)
	amounts, err := lineAmounts(lines)
	if err != nil {
		return nil, fmt.Errorf("fiscal: payment %d: %w", p.ID, err)
	}

	goods := make([]domain.FiscalGood, 0, len(lines))
	var sum int64
	for i, line := range lines {
		price, quantity := amounts[i], 1
		// Позиция делится на штуки только без потери тыйынов
		if line.Quantity > 1 && amounts[i]%int64(line.Quantity) == 0 {
			price, quantity = amounts[i]/int64(line.Quantity), line.Quantity
		}
		goods = append(goods, domain.FiscalGood{
			CalcItemAttributeCode: 1,
			Name:                  lineName(line),
			Price:                 price,
			Quantity:              quantity,
			Unit:                  goodsUnit,
			ST:                    0,
			VAT:                   0,
		})
		sum += amounts[i]
	}

	if sum != received {
		return nil, fmt.Errorf("fiscal: payment %d goods sum %d does not match total %d", p.ID, sum, received)
	}

	return &domain.FiscalReceipt{
		FiscalNumber: fiscalNumber,
		Operation:    operationIncome,
		Received:     received,
		Goods:        goods,
		Company:      company,
		Description:  DescriptionPrefix + p.TicketNumber,
	}, nil
}

// lineAmounts переводит суммы позиций в тыйыны так, что их сумма равна
// округленному итогу расчета
func lineAmounts(lines []domain.ChargeLine) ([]int64, error) {
	amounts := make([]int64, len(lines))
	fractional := decimal.Zero
	var assigned int64

	for i, line := range lines {
		minor := line.Amount.Mul(minorUnits)
		if minor.IsInteger() {
			amounts[i] = minor.IntPart()
			continue
		}
		fractional = fractional.Add(minor)
		amounts[i] = fractional.RoundBank(0).IntPart() - assigned
		assigned += amounts[i]
	}

	for i, a := range amounts {
		if a < 0 {
			return nil, fmt.Errorf("negative amount %d on line %d", a, i)
		}
	}
	return amounts, nil
}

func lineName(line domain.ChargeLine) string {
	var name string
	switch line.Kind {
	case domain.LineAdult:
		name = fmt.Sprintf("Билет взрослый × %d × %dч", line.Quantity, line.Hours)
	case domain.LineChild:
		name = fmt.Sprintf("Билет детский × %d × %dч", line.Quantity, line.Hours)
	case domain.LineSkateRental:
		name = fmt.Sprintf("Прокат коньков × %d", line.Quantity)
	case domain.LineInstructor:
		name = "Услуга инструктора"
	default:
		name = string(line.Kind)
	}

	if line.DiscountPercent > 0 {
		name += fmt.Sprintf(" (скидка %d%%)", line.DiscountPercent)
	}
	return name
}
