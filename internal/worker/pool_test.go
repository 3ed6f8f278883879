package worker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	domainmocks "github.com/lokomotiv/rink-ticketing/internal/domain/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestPool(t *testing.T, cfg PoolConfig) (*Pool, *domainmocks.PaymentRepositoryMock, *domainmocks.FiscalSubmitterMock) {
	payments := domainmocks.NewPaymentRepositoryMock(t)
	submitter := domainmocks.NewFiscalSubmitterMock(t)
	logger, _ := zap.NewDevelopment()
	return NewPool(cfg, payments, submitter, logger), payments, submitter
}

func TestPool_Process(t *testing.T) {
	ctx := context.Background()

	t.Run("Fiscalized", func(t *testing.T) {
		pool, _, submitter := newTestPool(t, PoolConfig{})
		submitter.EXPECT().Submit(mock.Anything, int64(1)).Return(&domain.FiscalResult{PaymentID: 1, Fiscalized: true, UUID: "f-1"}, nil).Once()

		require.True(t, pool.markPending(1))
		pool.process(ctx, 1)

		assert.True(t, pool.markPending(1), "payment should be released after processing")
	})

	t.Run("Rejected by eKassa", func(t *testing.T) {
		pool, _, submitter := newTestPool(t, PoolConfig{})
		submitter.EXPECT().Submit(mock.Anything, int64(2)).Return(&domain.FiscalResult{PaymentID: 2, Error: "eKassa: Shift is closed"}, nil).Once()

		pool.process(ctx, 2)
	})

	t.Run("Submit error", func(t *testing.T) {
		pool, _, submitter := newTestPool(t, PoolConfig{})
		submitter.EXPECT().Submit(mock.Anything, int64(3)).Return(nil, errors.New("database error")).Once()

		pool.markPending(3)
		pool.process(ctx, 3)

		assert.True(t, pool.markPending(3))
	})
}

func TestPool_Scan(t *testing.T) {
	ctx := context.Background()

	t.Run("Enqueues unfiscalized payments once", func(t *testing.T) {
		pool, payments, _ := newTestPool(t, PoolConfig{QueueSize: 10, MaxAttempts: 5})
		payments.EXPECT().ListUnfiscalized(mock.Anything, 5, 10).Return([]int64{1, 2}, nil).Twice()

		pool.scan(ctx)
		pool.scan(ctx)

		require.Len(t, pool.queue, 2)
		assert.Equal(t, int64(1), <-pool.queue)
		assert.Equal(t, int64(2), <-pool.queue)
	})

	t.Run("Full queue skips payments", func(t *testing.T) {
		pool, payments, _ := newTestPool(t, PoolConfig{QueueSize: 1})
		payments.EXPECT().ListUnfiscalized(mock.Anything, DefaultMaxAttempts, 1).Return([]int64{1, 2}, nil).Once()

		pool.scan(ctx)

		require.Len(t, pool.queue, 1)
		assert.True(t, pool.markPending(2), "skipped payment must not stay pending")
	})

	t.Run("Repository error", func(t *testing.T) {
		pool, payments, _ := newTestPool(t, PoolConfig{QueueSize: 10})
		payments.EXPECT().ListUnfiscalized(mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("database error")).Once()

		pool.scan(ctx)

		assert.Empty(t, pool.queue)
	})
}

func TestPool_StartStop(t *testing.T) {
	pool, payments, submitter := newTestPool(t, PoolConfig{Workers: 2, QueueSize: 10, ScanInterval: 10 * time.Millisecond})

	submitted := make(chan int64, 1)
	payments.EXPECT().ListUnfiscalized(mock.Anything, mock.Anything, mock.Anything).Return([]int64{7}, nil).Maybe()
	submitter.EXPECT().Submit(mock.Anything, int64(7)).RunAndReturn(func(context.Context, int64) (*domain.FiscalResult, error) {
		select {
		case submitted <- 7:
		default:
		}
		return &domain.FiscalResult{PaymentID: 7, Fiscalized: true}, nil
	}).Maybe()

	pool.Start(context.Background())

	select {
	case id := <-submitted:
		assert.Equal(t, int64(7), id)
	case <-time.After(time.Second):
		t.Error("expected payment to be submitted")
	}

	pool.Stop()
}

func TestPool_Disabled(t *testing.T) {
	// Моки без ожиданий: любой вызов репозитория или отправки провалит тест
	pool, _, _ := newTestPool(t, PoolConfig{Workers: 2, QueueSize: 10, ScanInterval: 5 * time.Millisecond, Disabled: true})

	pool.Start(context.Background())
	time.Sleep(30 * time.Millisecond)
	pool.Stop()
}
