package fiscal

import (
	"context"
	"sync/atomic"
)

// MaxReceiptAttempts предел отправок одного чека за вызов Submit, включая повторы
const MaxReceiptAttempts = 5

type budgetKey struct{}

// attemptBudget общий счетчик попыток отправки чека. Его расходуют и повторы
// HTTP клиента, и повторная отправка после обновления токена или смены.
type attemptBudget struct {
	left atomic.Int32
}

func withAttemptBudget(ctx context.Context, attempts int) (context.Context, *attemptBudget) {
	b := &attemptBudget{}
	b.left.Store(int32(attempts))
	return context.WithValue(ctx, budgetKey{}, b), b
}

func attemptBudgetFrom(ctx context.Context) *attemptBudget {
	b, _ := ctx.Value(budgetKey{}).(*attemptBudget)
	return b
}

// spend списывает сделанную попытку и сообщает, остались ли еще
func (b *attemptBudget) spend() bool {
	return b.left.Add(-1) > 0
}

func (b *attemptBudget) remaining() int {
	return int(b.left.Load())
}
