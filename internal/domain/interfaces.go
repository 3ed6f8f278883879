package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// TxManager выполняет функцию в рамках одной транзакции БД
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserRepository определяет методы для работы с сотрудниками
type UserRepository interface {
	CreateUser(ctx context.Context, username string, passwordHash string, fullName string, role Role) (*User, error)
	GetUserByUsername(ctx context.Context, username string) (*User, error)
	GetUserByID(ctx context.Context, id int64) (*User, error)
}

// PriceConfigRepository хранит единственную запись тарифов
type PriceConfigRepository interface {
	Get(ctx context.Context) (*PriceConfiguration, error)
	Update(ctx context.Context, cfg *PriceConfiguration) error
}

// DirectoryRepository справочник отделов и должностей
type DirectoryRepository interface {
	GetOrCreate(ctx context.Context, kind DirectoryKind, name string) (int64, bool, error)
	Search(ctx context.Context, kind DirectoryKind, query string, limit int) ([]DirectoryEntry, error)
}

// PaymentRepository определяет методы для работы с оплатами
type PaymentRepository interface {
	Create(ctx context.Context, p *Payment) error
	GetByID(ctx context.Context, id int64) (*Payment, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*Payment, error)
	GetLastForUpdate(ctx context.Context) (*Payment, error)
	GetLast(ctx context.Context) (*Payment, error)
	UpdateTicket(ctx context.Context, p *Payment) error
	UpdateStatus(ctx context.Context, id int64, status PaymentStatus, gatewayTxID *string) error
	SetSkatingStatus(ctx context.Context, id int64, from SkatingStatus, to SkatingStatus) error
	LockEmployeeDay(ctx context.Context, employeeName string, day time.Time) error
	FindEmployeeVisit(ctx context.Context, employeeName string, from time.Time, to time.Time, excludeID int64) (*time.Time, error)
	ClaimFiscal(ctx context.Context, id int64, lease time.Duration) (bool, error)
	SaveFiscalResult(ctx context.Context, id int64, fiscalUUID string, fiscalLink string) error
	SaveFiscalError(ctx context.Context, id int64, message string) error
	ListUnfiscalized(ctx context.Context, maxAttempts int, limit int) ([]int64, error)
}

// SessionRepository определяет методы для работы с сеансами катания
type SessionRepository interface {
	Create(ctx context.Context, s *SkatingSession) error
	GetByID(ctx context.Context, id int64) (*SkatingSession, error)
	GetByPaymentIDForUpdate(ctx context.Context, paymentID int64) (*SkatingSession, error)
	CompareAndSetStatus(ctx context.Context, id int64, from SkatingStatus, to SkatingStatus, endTime time.Time) (*SkatingSession, error)
	SweepExpired(ctx context.Context, now time.Time) (int64, error)
	ListActive(ctx context.Context, waitingSince time.Time) ([]*DashboardEntry, error)
}

// ReportRepository агрегирует завершенные сеансы
type ReportRepository interface {
	Summary(ctx context.Context, from time.Time, to time.Time) (*ReportSummary, error)
	Daily(ctx context.Context, from time.Time, to time.Time) ([]DailyReportRow, error)
	Cashiers(ctx context.Context, from time.Time, to time.Time) ([]CashierReportRow, error)
}

// PaymentGateway внешний платежный шлюз MegaPay
type PaymentGateway interface {
	Initiate(ctx context.Context, amount decimal.Decimal, orderID string, description string) (*GatewayResult, error)
	CheckStatus(ctx context.Context, transactionID string) (*GatewayResult, error)
}

// FiscalClient клиент фискального сервиса eKassa
type FiscalClient interface {
	Login(ctx context.Context) (string, error)
	OpenShift(ctx context.Context, token string) error
	CloseShift(ctx context.Context, token string) error
	SubmitReceipt(ctx context.Context, token string, receipt *FiscalReceipt) (*FiscalReceiptResult, error)
}

// FiscalSubmitter фискализирует завершенные оплаты
type FiscalSubmitter interface {
	Submit(ctx context.Context, paymentID int64) (*FiscalResult, error)
	CloseShift(ctx context.Context) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Login(ctx context.Context, username string, password string) (string, *User, error)
	Me(ctx context.Context, actor Actor) (*User, error)
}

// PaymentService определяет операции с оплатами
type PaymentService interface {
	Quote(ctx context.Context, actor Actor, req TicketRequest) (*ChargeBreakdown, error)
	CreatePayment(ctx context.Context, actor Actor, req TicketRequest) (*Payment, error)
	UpdatePayment(ctx context.Context, actor Actor, id int64, req TicketRequest) (*Payment, error)
	GetPayment(ctx context.Context, actor Actor, id int64) (*Payment, error)
	GetLastPayment(ctx context.Context, actor Actor) (*Payment, error)
	Fiscalize(ctx context.Context, actor Actor, id int64) (*FiscalResult, error)
}

// SessionService определяет переходы сеансов катания
type SessionService interface {
	Start(ctx context.Context, actor Actor, paymentID int64) (*TransitionResult, error)
	Finish(ctx context.Context, actor Actor, paymentID int64) (*TransitionResult, error)
	ForceFinish(ctx context.Context, actor Actor, paymentID int64, reason string) (*TransitionResult, error)
	Get(ctx context.Context, actor Actor, sessionID int64) (*SkatingSession, error)
	Dashboard(ctx context.Context, actor Actor) (*Dashboard, error)
	SweepExpirations(ctx context.Context) (int64, error)
}

// ConfigService определяет чтение и изменение тарифов
type ConfigService interface {
	Get(ctx context.Context, actor Actor) (*PriceConfiguration, error)
	Update(ctx context.Context, actor Actor, patch PriceConfigurationPatch) (*PriceConfiguration, error)
}

// ReportService определяет отчеты по сеансам
type ReportService interface {
	SessionReport(ctx context.Context, actor Actor, from time.Time, to time.Time) (*SessionReport, error)
	RollingReport(ctx context.Context, actor Actor, days int) (*SessionReport, error)
}

// DirectoryService определяет поиск по справочникам
type DirectoryService interface {
	Search(ctx context.Context, actor Actor, kind DirectoryKind, query string) ([]DirectoryEntry, error)
}
