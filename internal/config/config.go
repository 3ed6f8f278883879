package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"time"
	_ "time/tzdata"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config содержит конфигурацию приложения
type Config struct {
	RunAddress  string        `envconfig:"RUN_ADDRESS"`   // Адрес и порт запуска сервиса
	DatabaseURI string        `envconfig:"DATABASE_URI"`  // URI подключения к БД
	JWTSecret   string        `envconfig:"JWT_SECRET"`    // Секретный ключ для JWT
	JWTTokenTTL time.Duration `envconfig:"JWT_TOKEN_TTL"` // Время жизни JWT токена
	LogLevel    string        `envconfig:"LOG_LEVEL"`     // Уровень логирования

	// Часовой пояс катка для календарных дней и отчетов
	Timezone string         `envconfig:"TIMEZONE"`
	Location *time.Location `ignored:"true"`

	// Пул повторной фискализации
	WorkerPoolSize     int           `envconfig:"WORKER_POOL_SIZE"`
	WorkerQueueSize    int           `envconfig:"WORKER_QUEUE_SIZE"`
	WorkerScanInterval time.Duration `envconfig:"WORKER_SCAN_INTERVAL"`
	FiscalMaxAttempts  int           `envconfig:"FISCAL_MAX_ATTEMPTS"`

	// Расписания cron
	SweepSchedule      string `envconfig:"SWEEP_SCHEDULE"`
	ShiftCloseSchedule string `envconfig:"SHIFT_CLOSE_SCHEDULE"`

	// Платежный шлюз MegaPay, пустой адрес включает симулятор
	GatewayURL     string        `envconfig:"GATEWAY_URL"`
	GatewayTimeout time.Duration `envconfig:"GATEWAY_TIMEOUT"`

	// Фискализация eKassa
	FiscalEnabled       bool          `envconfig:"FISCAL_ENABLED"`
	EkassaBaseURL       string        `envconfig:"EKASSA_BASE_URL"`
	EkassaEmail         string        `envconfig:"EKASSA_EMAIL"`
	EkassaPassword      string        `envconfig:"EKASSA_PASSWORD"`
	EkassaFiscalNumber  string        `envconfig:"EKASSA_FISCAL_NUMBER"`
	EkassaINN           string        `envconfig:"EKASSA_INN"`
	EkassaSNO           int           `envconfig:"EKASSA_SNO"`
	FiscalTimeout       time.Duration `envconfig:"FISCAL_TIMEOUT"`
	FiscalSubmitTimeout time.Duration `envconfig:"FISCAL_SUBMIT_TIMEOUT"`
	FiscalRetryMax      int           `envconfig:"FISCAL_RETRY_MAX"`
}

// Default возвращает конфигурацию со значениями по умолчанию
func Default() *Config {
	return &Config{
		RunAddress:          ":8080",
		JWTSecret:           "default-secret-key-change-in-production",
		JWTTokenTTL:         12 * time.Hour,
		LogLevel:            "info",
		Timezone:            "Asia/Bishkek",
		WorkerPoolSize:      2,
		WorkerQueueSize:     100,
		WorkerScanInterval:  30 * time.Second,
		FiscalMaxAttempts:   10,
		SweepSchedule:       "@every 1m",
		ShiftCloseSchedule:  "0 0 * * *",
		GatewayTimeout:      10 * time.Second,
		EkassaBaseURL:       "https://ofddev.ekassa.kg/api",
		FiscalTimeout:       15 * time.Second,
		FiscalSubmitTimeout: 30 * time.Second,
		FiscalRetryMax:      4,
	}
}

// Load загружает конфигурацию из .env, флагов командной строки и переменных окружения
func Load() (*Config, error) {
	return LoadFrom(os.Args[1:])
}

// LoadFrom загружает конфигурацию с заданными аргументами командной строки.
// Приоритет: env переменные > флаги > дефолтные значения
func LoadFrom(args []string) (*Config, error) {
	// .env не переопределяет уже заданные переменные окружения
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: failed to load .env: %w", err)
	}

	cfg := Default()

	fset := flag.NewFlagSet("rink", flag.ContinueOnError)
	fset.StringVar(&cfg.RunAddress, "a", cfg.RunAddress, "address and port to run server")
	fset.StringVar(&cfg.DatabaseURI, "d", cfg.DatabaseURI, "database URI")
	fset.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	if err := fset.Parse(args); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Не больше 5 отправок чека вместе с первой
const maxFiscalRetry = 4

// Validate проверяет обязательные параметры и загружает часовой пояс
func (c *Config) Validate() error {
	if c.DatabaseURI == "" {
		return errors.New("config: database URI is required (use -d flag or DATABASE_URI env)")
	}
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET must not be empty")
	}
	if c.WorkerPoolSize <= 0 || c.WorkerQueueSize <= 0 {
		return errors.New("config: WORKER_POOL_SIZE and WORKER_QUEUE_SIZE must be positive")
	}
	if c.FiscalRetryMax < 0 || c.FiscalRetryMax > maxFiscalRetry {
		return fmt.Errorf("config: FISCAL_RETRY_MAX must be between 0 and %d", maxFiscalRetry)
	}
	if c.FiscalEnabled && (c.EkassaEmail == "" || c.EkassaPassword == "" || c.EkassaFiscalNumber == "") {
		return errors.New("config: EKASSA_EMAIL, EKASSA_PASSWORD and EKASSA_FISCAL_NUMBER are required when FISCAL_ENABLED")
	}

	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return fmt.Errorf("config: invalid TIMEZONE %q: %w", c.Timezone, err)
	}
	c.Location = loc

	return nil
}
