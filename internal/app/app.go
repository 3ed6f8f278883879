package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lokomotiv/rink-ticketing/internal/config"
	"github.com/lokomotiv/rink-ticketing/internal/worker"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	db         *pgxpool.Pool
	router     *chi.Mux
	workerPool *worker.Pool
	scheduler  *worker.Scheduler
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Инициализация базы данных
	dbPool, err := initDatabase(ctx, cfg.DatabaseURI)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	// Выполнение миграций
	if err := runMigrations(ctx, dbPool, logger); err != nil {
		dbPool.Close()
		return nil, err
	}

	// Инициализация зависимостей
	deps, err := initDependencies(cfg, dbPool, logger)
	if err != nil {
		dbPool.Close()
		return nil, err
	}

	// Настройка роутера
	router := setupRouter(deps.handlers, deps.jwtManager, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		db:         dbPool,
		router:     router,
		workerPool: deps.workerPool,
		scheduler:  deps.scheduler,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск фискальной очереди, при выключенной фискализации пул не стартует
	a.workerPool.Start(ctx)

	// Запуск планировщика
	a.scheduler.Start()
	a.logger.Info("scheduler started",
		zap.String("sweep", a.config.SweepSchedule),
		zap.String("shift_close", a.config.ShiftCloseSchedule),
	)

	// Запуск HTTP сервера и ожидание сигнала завершения
	if err := a.runServer(ctx); err != nil {
		return err
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return nil
}
