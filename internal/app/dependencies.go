package app

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lokomotiv/rink-ticketing/internal/config"
	"github.com/lokomotiv/rink-ticketing/internal/domain"
	"github.com/lokomotiv/rink-ticketing/internal/fiscal"
	"github.com/lokomotiv/rink-ticketing/internal/handlers"
	"github.com/lokomotiv/rink-ticketing/internal/repository/postgres"
	"github.com/lokomotiv/rink-ticketing/internal/service"
	"github.com/lokomotiv/rink-ticketing/internal/utils/jwt"
	"github.com/lokomotiv/rink-ticketing/internal/utils/password"
	"github.com/lokomotiv/rink-ticketing/internal/worker"
	"go.uber.org/zap"
)

// repositories содержит все репозитории приложения
type repositories struct {
	tx        domain.TxManager
	user      domain.UserRepository
	payment   domain.PaymentRepository
	session   domain.SessionRepository
	price     domain.PriceConfigRepository
	directory domain.DirectoryRepository
	report    domain.ReportRepository
}

// services содержит все сервисы приложения
type services struct {
	auth      domain.AuthService
	payment   domain.PaymentService
	session   domain.SessionService
	config    domain.ConfigService
	report    domain.ReportService
	directory domain.DirectoryService
	fiscal    domain.FiscalSubmitter
	gateway   domain.PaymentGateway
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth      *handlers.AuthHandler
	payments  *handlers.PaymentsHandler
	sessions  *handlers.SessionsHandler
	reports   *handlers.ReportsHandler
	config    *handlers.ConfigHandler
	directory *handlers.DirectoryHandler
	health    *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
	scheduler  *worker.Scheduler
}

// initDependencies создает все зависимости приложения
func initDependencies(cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		tx:        postgres.NewTxManager(dbPool),
		user:      postgres.NewUserRepository(dbPool),
		payment:   postgres.NewPaymentRepository(dbPool),
		session:   postgres.NewSessionRepository(dbPool),
		price:     postgres.NewPriceConfigRepository(dbPool),
		directory: postgres.NewDirectoryRepository(dbPool),
		report:    postgres.NewReportRepository(dbPool),
	}

	// Создание утилит
	passwordHasher := password.NewBCryptHasher(password.DefaultCost)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Внешние системы
	var gateway domain.PaymentGateway
	if cfg.GatewayURL != "" {
		gateway = service.NewMegaPayClient(cfg.GatewayURL, cfg.GatewayTimeout, logger)
	} else {
		logger.Warn("GATEWAY_URL is not set, using simulated MegaPay")
		gateway = service.NewSimulatedGateway()
	}

	fiscalClient := fiscal.NewClient(fiscal.ClientConfig{
		BaseURL:      cfg.EkassaBaseURL,
		Email:        cfg.EkassaEmail,
		Password:     cfg.EkassaPassword,
		FiscalNumber: cfg.EkassaFiscalNumber,
		Timeout:      cfg.FiscalTimeout,
		RetryMax:     cfg.FiscalRetryMax,
	}, logger)
	fiscalSubmitter := fiscal.NewSubmitter(fiscalClient, repos.payment, fiscal.SubmitterConfig{
		Enabled:      cfg.FiscalEnabled,
		FiscalNumber: cfg.EkassaFiscalNumber,
		Company:      domain.FiscalCompany{INN: cfg.EkassaINN, SNO: cfg.EkassaSNO},
		MaxAttempts:  cfg.FiscalRetryMax + 1,
	}, logger)

	// Создание сервисов
	sessionService := service.NewSessionService(repos.tx, repos.payment, repos.session, cfg.Location, logger)
	svcs := &services{
		auth: service.NewAuthService(repos.user, passwordHasher, jwtManager),
		payment: service.NewPaymentService(repos.tx, repos.payment, repos.price, repos.directory, gateway, fiscalSubmitter,
			service.PaymentServiceConfig{Location: cfg.Location, FiscalTimeout: cfg.FiscalSubmitTimeout}, logger),
		session:   sessionService,
		config:    service.NewConfigService(repos.tx, repos.price, logger),
		report:    service.NewReportService(repos.report, cfg.Location),
		directory: service.NewDirectoryService(repos.directory),
		fiscal:    fiscalSubmitter,
		gateway:   gateway,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:      handlers.NewAuthHandler(svcs.auth, logger),
		payments:  handlers.NewPaymentsHandler(svcs.payment, logger),
		sessions:  handlers.NewSessionsHandler(svcs.session, logger),
		reports:   handlers.NewReportsHandler(svcs.report, cfg.Location, logger),
		config:    handlers.NewConfigHandler(svcs.config, logger),
		directory: handlers.NewDirectoryHandler(svcs.directory, logger),
		health:    handlers.NewHealthHandler(dbPool, logger),
	}

	// Фоновые задачи
	workerPool := worker.NewPool(worker.PoolConfig{
		Workers:      cfg.WorkerPoolSize,
		QueueSize:    cfg.WorkerQueueSize,
		ScanInterval: cfg.WorkerScanInterval,
		MaxAttempts:  cfg.FiscalMaxAttempts,
		Disabled:     !cfg.FiscalEnabled,
	}, repos.payment, fiscalSubmitter, logger)

	scheduler, err := worker.NewScheduler(svcs.session, fiscalSubmitter, worker.SchedulerConfig{
		SweepSchedule:      cfg.SweepSchedule,
		ShiftCloseSchedule: cfg.ShiftCloseSchedule,
		Location:           cfg.Location,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to init scheduler: %w", err)
	}

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
		scheduler:  scheduler,
	}, nil
}
