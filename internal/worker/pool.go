package worker

import (
	"context"
	"sync"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"go.uber.org/zap"
)

// Значения по умолчанию для повторной фискализации
const (
	DefaultScanInterval = 30 * time.Second
	DefaultMaxAttempts  = 10
	defaultBatchSize    = 100
)

// PoolConfig параметры пула повторной фискализации
type PoolConfig struct {
	Workers      int
	QueueSize    int
	ScanInterval time.Duration
	MaxAttempts  int
	// Disabled выключает пул, когда фискализация отключена
	Disabled bool
}

// Pool повторно отправляет в eKassa оплаты, чеки которых не удалось пробить сразу
type Pool struct {
	cfg       PoolConfig
	queue     chan int64
	payments  domain.PaymentRepository
	submitter domain.FiscalSubmitter
	logger    *zap.Logger
	wg        sync.WaitGroup
	cancel    context.CancelFunc

	// оплаты в очереди или в обработке
	mu      sync.Mutex
	pending map[int64]struct{}
}

// NewPool создает новый worker pool
func NewPool(cfg PoolConfig, payments domain.PaymentRepository, submitter domain.FiscalSubmitter, logger *zap.Logger) *Pool {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = defaultBatchSize
	}
	if cfg.ScanInterval <= 0 {
		cfg.ScanInterval = DefaultScanInterval
	}
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	return &Pool{
		cfg:       cfg,
		queue:     make(chan int64, cfg.QueueSize),
		payments:  payments,
		submitter: submitter,
		logger:    logger,
		pending:   make(map[int64]struct{}),
	}
}

// Start запускает воркеры и сканер
func (p *Pool) Start(ctx context.Context) {
	if p.cfg.Disabled {
		p.logger.Info("Fiscalization is disabled, worker pool is not started")
		return
	}

	ctx, p.cancel = context.WithCancel(ctx)

	for i := 0; i < p.cfg.Workers; i++ {
		p.wg.Add(1)
		go p.worker(ctx, i)
	}

	p.wg.Add(1)
	go p.scanner(ctx)
}

// Stop останавливает пул и ждет завершения текущих отправок
func (p *Pool) Stop() {
	if p.cancel != nil {
		p.cancel()
	}
	p.wg.Wait()
}

func (p *Pool) worker(ctx context.Context, id int) {
	defer p.wg.Done()

	p.logger.Info("Fiscal worker started", zap.Int("worker_id", id))

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Fiscal worker stopping", zap.Int("worker_id", id))
			return
		case paymentID := <-p.queue:
			p.process(ctx, paymentID)
		}
	}
}

func (p *Pool) scanner(ctx context.Context) {
	defer p.wg.Done()

	ticker := time.NewTicker(p.cfg.ScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("Fiscal scanner stopping")
			return
		case <-ticker.C:
			p.scan(ctx)
		}
	}
}

// scan ставит в очередь неотправленные чеки
func (p *Pool) scan(ctx context.Context) {
	ids, err := p.payments.ListUnfiscalized(ctx, p.cfg.MaxAttempts, cap(p.queue))
	if err != nil {
		p.logger.Error("Failed to list unfiscalized payments", zap.Error(err))
		return
	}

	for _, id := range ids {
		if !p.markPending(id) {
			continue
		}

		select {
		case p.queue <- id:
		case <-ctx.Done():
			p.unmarkPending(id)
			return
		default:
			p.unmarkPending(id)
			p.logger.Warn("Fiscal queue is full, skipping payment", zap.Int64("payment_id", id))
		}
	}
}

// process отправляет один чек
func (p *Pool) process(ctx context.Context, paymentID int64) {
	defer p.unmarkPending(paymentID)

	p.logger.Debug("Retrying fiscalization", zap.Int64("payment_id", paymentID))

	res, err := p.submitter.Submit(ctx, paymentID)
	if err != nil {
		p.logger.Error("Fiscal retry failed",
			zap.Int64("payment_id", paymentID),
			zap.Error(err),
		)
		return
	}

	switch {
	case res.Fiscalized && !res.AlreadyFiscalized:
		p.logger.Info("Payment fiscalized on retry",
			zap.Int64("payment_id", paymentID),
			zap.String("fiscal_uuid", res.UUID),
		)
	case res.Error != "":
		p.logger.Warn("Fiscal retry rejected",
			zap.Int64("payment_id", paymentID),
			zap.String("fiscal_error", res.Error),
		)
	}
}

func (p *Pool) markPending(id int64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.pending[id]; ok {
		return false
	}
	p.pending[id] = struct{}{}
	return true
}

func (p *Pool) unmarkPending(id int64) {
	p.mu.Lock()
	delete(p.pending, id)
	p.mu.Unlock()
}
