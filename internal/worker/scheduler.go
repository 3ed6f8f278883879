package worker

import (
	"context"
	"fmt"
	"time"

	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Расписания по умолчанию
const (
	DefaultSweepSchedule      = "@every 1m"
	DefaultShiftCloseSchedule = "0 0 * * *"
	defaultJobTimeout         = time.Minute
)

// SchedulerConfig параметры периодических задач
type SchedulerConfig struct {
	SweepSchedule      string
	ShiftCloseSchedule string
	Location           *time.Location
	JobTimeout         time.Duration
}

// Scheduler запускает проверку истечения сеансов и ночное закрытие смены
type Scheduler struct {
	cron     *cron.Cron
	sessions domain.SessionService
	fiscal   domain.FiscalSubmitter
	timeout  time.Duration
	logger   *zap.Logger
}

// NewScheduler создает новый Scheduler. Пустое расписание отключает задачу.
func NewScheduler(sessions domain.SessionService, fiscal domain.FiscalSubmitter, cfg SchedulerConfig, logger *zap.Logger) (*Scheduler, error) {
	if cfg.Location == nil {
		cfg.Location = time.Local
	}
	if cfg.JobTimeout <= 0 {
		cfg.JobTimeout = defaultJobTimeout
	}

	cronLogger := newCronLogger(logger)
	s := &Scheduler{
		cron: cron.New(
			cron.WithLocation(cfg.Location),
			cron.WithLogger(cronLogger),
			cron.WithChain(cron.Recover(cronLogger), cron.SkipIfStillRunning(cronLogger)),
		),
		sessions: sessions,
		fiscal:   fiscal,
		timeout:  cfg.JobTimeout,
		logger:   logger,
	}

	if cfg.SweepSchedule != "" {
		if _, err := s.cron.AddFunc(cfg.SweepSchedule, s.sweep); err != nil {
			return nil, fmt.Errorf("scheduler: invalid sweep schedule %q: %w", cfg.SweepSchedule, err)
		}
	}
	if cfg.ShiftCloseSchedule != "" {
		if _, err := s.cron.AddFunc(cfg.ShiftCloseSchedule, s.closeShift); err != nil {
			return nil, fmt.Errorf("scheduler: invalid shift close schedule %q: %w", cfg.ShiftCloseSchedule, err)
		}
	}

	return s, nil
}

// Start запускает планировщик в фоне
func (s *Scheduler) Start() {
	s.cron.Start()
	s.logger.Info("Scheduler started", zap.Int("jobs", len(s.cron.Entries())))
}

// Stop останавливает планировщик и ждет завершения запущенных задач
func (s *Scheduler) Stop(ctx context.Context) error {
	done := s.cron.Stop()
	select {
	case <-done.Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *Scheduler) sweep() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if _, err := s.sessions.SweepExpirations(ctx); err != nil {
		s.logger.Error("Scheduled sweep failed", zap.Error(err))
	}
}

func (s *Scheduler) closeShift() {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	if err := s.fiscal.CloseShift(ctx); err != nil {
		s.logger.Error("Scheduled shift close failed", zap.Error(err))
		return
	}
	s.logger.Info("Fiscal shift closed")
}

// cronLogger пишет события cron в zap
type cronLogger struct {
	logger *zap.SugaredLogger
}

func newCronLogger(logger *zap.Logger) cron.Logger {
	return &cronLogger{logger: logger.Named("cron").Sugar()}
}

func (l *cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.Debugw(msg, keysAndValues...)
}

func (l *cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	l.logger.Errorw(msg, append(keysAndValues, "error", err)...)
}
