package service

import (
	"context"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
)

// fakeTx выполняет функцию без реальной транзакции
type fakeTx struct {
	calls int
}

func (f *fakeTx) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

var (
	adminActor    = domain.Actor{UserID: 1, Role: domain.RoleAdmin}
	cashierActor  = domain.Actor{UserID: 2, Role: domain.RoleCashier}
	operatorActor = domain.Actor{UserID: 3, Role: domain.RoleOperator}
	clientActor   = domain.Actor{UserID: 4, Role: domain.RoleClient}

	bishkek  = time.FixedZone("Asia/Bishkek", 6*60*60)
	fixedNow = time.Date(2026, 1, 15, 14, 30, 0, 0, bishkek)
)

func strPtr(s string) *string {
	return &s
}
