package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Role представляет роль сотрудника
type Role string

const (
	RoleAdmin    Role = "ADMIN"
	RoleCashier  Role = "CASHIER"
	RoleOperator Role = "OPERATOR"
	RoleClient   Role = "CLIENT"
	RoleEmployee Role = "EMPLOYEE"
)

// StaffRoles роли персонала катка
var StaffRoles = []Role{RoleAdmin, RoleCashier, RoleOperator}

// Valid проверяет, что роль известна системе
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleCashier, RoleOperator, RoleClient, RoleEmployee:
		return true
	}
	return false
}

// PaymentStatus представляет статус оплаты
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
	PaymentStatusFailed    PaymentStatus = "FAILED"
	PaymentStatusRefunded  PaymentStatus = "REFUNDED"
)

// SkatingStatus представляет состояние сеанса катания
type SkatingStatus string

const (
	SkatingStatusWaiting     SkatingStatus = "WAITING"
	SkatingStatusInProgress  SkatingStatus = "IN_PROGRESS"
	SkatingStatusTimeExpired SkatingStatus = "TIME_EXPIRED"
	SkatingStatusFinished    SkatingStatus = "FINISHED"
)

// DiscountPolicy определяет алгоритм расчета скидки
type DiscountPolicy string

const (
	// DiscountPolicyEmployeeGroup скидка сотрудника на первых трех человек при группе от трех
	DiscountPolicyEmployeeGroup DiscountPolicy = "EMPLOYEE_GROUP"
	// DiscountPolicyFlat скидка сотрудника или обычная скидка на весь чек
	DiscountPolicyFlat DiscountPolicy = "FLAT"
)

// Valid проверяет, что политика известна
func (p DiscountPolicy) Valid() bool {
	return p == DiscountPolicyEmployeeGroup || p == DiscountPolicyFlat
}

// DirectoryKind тип справочника
type DirectoryKind string

const (
	DirectoryDepartment DirectoryKind = "department"
	DirectoryPosition   DirectoryKind = "position"
)

// User представляет сотрудника системы
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"` // Не отправляем хеш в JSON
	FullName     string    `json:"full_name"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}

// Actor аутентифицированный пользователь, выполняющий операцию
type Actor struct {
	UserID int64
	Role   Role
}

// HasRole проверяет, что роль актора входит в список
func (a Actor) HasRole(roles ...Role) bool {
	for _, r := range roles {
		if a.Role == r {
			return true
		}
	}
	return false
}

// PriceConfiguration текущие тарифы катка (единственная запись)
type PriceConfiguration struct {
	AdultPricePerHour       decimal.Decimal `json:"adult_price_per_hour"`
	ChildPricePerHour       decimal.Decimal `json:"child_price_per_hour"`
	SkateRentalPrice        decimal.Decimal `json:"skate_rental_price"`
	InstructorPrice         decimal.Decimal `json:"instructor_price"`
	EmployeeDiscountPercent int             `json:"employee_discount_percent"`
	RegularDiscountPercent  int             `json:"regular_discount_percent"`
	DiscountPolicy          DiscountPolicy  `json:"discount_policy"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// DefaultPriceConfiguration возвращает тарифы по умолчанию
func DefaultPriceConfiguration() *PriceConfiguration {
	return &PriceConfiguration{
		AdultPricePerHour:       decimal.NewFromInt(500),
		ChildPricePerHour:       decimal.NewFromInt(300),
		SkateRentalPrice:        decimal.NewFromInt(100),
		InstructorPrice:         decimal.NewFromInt(200),
		EmployeeDiscountPercent: 50,
		RegularDiscountPercent:  10,
		DiscountPolicy:          DiscountPolicyEmployeeGroup,
	}
}

// Validate проверяет диапазоны тарифов
func (c *PriceConfiguration) Validate() error {
	prices := map[string]decimal.Decimal{
		"adult_price_per_hour": c.AdultPricePerHour,
		"child_price_per_hour": c.ChildPricePerHour,
		"skate_rental_price":   c.SkateRentalPrice,
		"instructor_price":     c.InstructorPrice,
	}
	for field, price := range prices {
		if price.IsNegative() {
			return NewValidationError(field, "must not be negative")
		}
	}
	if c.EmployeeDiscountPercent < 0 || c.EmployeeDiscountPercent > 100 {
		return NewValidationError("employee_discount_percent", "must be between 0 and 100")
	}
	if c.RegularDiscountPercent < 0 || c.RegularDiscountPercent > 100 {
		return NewValidationError("regular_discount_percent", "must be between 0 and 100")
	}
	if !c.DiscountPolicy.Valid() {
		return NewValidationError("discount_policy", "unknown policy")
	}
	return nil
}

// PriceConfigurationPatch частичное обновление тарифов
type PriceConfigurationPatch struct {
	AdultPricePerHour       *decimal.Decimal `json:"adult_price_per_hour,omitempty"`
	ChildPricePerHour       *decimal.Decimal `json:"child_price_per_hour,omitempty"`
	SkateRentalPrice        *decimal.Decimal `json:"skate_rental_price,omitempty"`
	InstructorPrice         *decimal.Decimal `json:"instructor_price,omitempty"`
	EmployeeDiscountPercent *int             `json:"employee_discount_percent,omitempty"`
	RegularDiscountPercent  *int             `json:"regular_discount_percent,omitempty"`
	DiscountPolicy          *DiscountPolicy  `json:"discount_policy,omitempty"`
}

// Apply применяет заданные поля к конфигурации
func (p PriceConfigurationPatch) Apply(c *PriceConfiguration) {
	if p.AdultPricePerHour != nil {
		c.AdultPricePerHour = *p.AdultPricePerHour
	}
	if p.ChildPricePerHour != nil {
		c.ChildPricePerHour = *p.ChildPricePerHour
	}
	if p.SkateRentalPrice != nil {
		c.SkateRentalPrice = *p.SkateRentalPrice
	}
	if p.InstructorPrice != nil {
		c.InstructorPrice = *p.InstructorPrice
	}
	if p.EmployeeDiscountPercent != nil {
		c.EmployeeDiscountPercent = *p.EmployeeDiscountPercent
	}
	if p.RegularDiscountPercent != nil {
		c.RegularDiscountPercent = *p.RegularDiscountPercent
	}
	if p.DiscountPolicy != nil {
		c.DiscountPolicy = *p.DiscountPolicy
	}
}

// TicketRequest запрос на покупку билета
type TicketRequest struct {
	AmountAdult       int    `json:"amount_adult"`
	AmountChild       int    `json:"amount_child"`
	Hours             int    `json:"hours"`
	SkateRental       int    `json:"skate_rental"`
	InstructorService bool   `json:"instructor_service"`
	IsEmployee        bool   `json:"is_employee"`
	EmployeeName      string `json:"employee_name,omitempty"`
	DepartmentName    string `json:"department_name,omitempty"`
	PositionName      string `json:"position_name,omitempty"`
	TicketNumber      string `json:"ticket_number,omitempty"`
}

// People возвращает общее количество посетителей
func (r TicketRequest) People() int {
	return r.AmountAdult + r.AmountChild
}

// LineKind тип позиции расчета
type LineKind string

const (
	LineAdult       LineKind = "adult"
	LineChild       LineKind = "child"
	LineSkateRental LineKind = "skate_rental"
	LineInstructor  LineKind = "instructor"
)

// ChargeLine одна позиция расчета
type ChargeLine struct {
	Kind            LineKind        `json:"kind"`
	Quantity        int             `json:"quantity"`
	Hours           int             `json:"hours,omitempty"`
	UnitPrice       decimal.Decimal `json:"unit_price"`
	DiscountPercent int             `json:"discount_percent"`
	Amount          decimal.Decimal `json:"amount"`
}

// ChargeBreakdown детализация стоимости билета
type ChargeBreakdown struct {
	Policy             DiscountPolicy  `json:"policy"`
	DiscountPercent    int             `json:"discount_percent"`
	DiscountedAdults   int             `json:"discounted_adults"`
	DiscountedChildren int             `json:"discounted_children"`
	AdultTotal         decimal.Decimal `json:"adult_total"`
	ChildTotal         decimal.Decimal `json:"child_total"`
	RentalTotal        decimal.Decimal `json:"rental_total"`
	InstructorTotal    decimal.Decimal `json:"instructor_total"`
	Subtotal           decimal.Decimal `json:"subtotal"`
	DiscountAmount     decimal.Decimal `json:"discount_amount"`
	Total              decimal.Decimal `json:"total"`
	Lines              []ChargeLine    `json:"lines"`
}

// Payment оплата билета на каток
type Payment struct {
	ID                   int64           `json:"id"`
	ChequeCode           string          `json:"cheque_code"`
	TicketNumber         string          `json:"ticket_number"`
	UserID               int64           `json:"user_id"`
	AmountAdult          int             `json:"amount_adult"`
	AmountChild          int             `json:"amount_child"`
	Hours                int             `json:"hours"`
	SkateRental          int             `json:"skate_rental"`
	InstructorService    bool            `json:"instructor_service"`
	IsEmployee           bool            `json:"is_employee"`
	EmployeeName         string          `json:"employee_name,omitempty"`
	DepartmentID         *int64          `json:"department_id,omitempty"`
	PositionID           *int64          `json:"position_id,omitempty"`
	DepartmentName       string          `json:"department_name,omitempty"`
	PositionName         string          `json:"position_name,omitempty"`
	Percent              int             `json:"percent"`
	TotalAmount          decimal.Decimal `json:"total_amount"`
	Breakdown            ChargeBreakdown `json:"breakdown"`
	Status               PaymentStatus   `json:"status"`
	SkatingStatus        SkatingStatus   `json:"skating_status"`
	GatewayTransactionID *string         `json:"gateway_transaction_id,omitempty"`
	RedirectURL          string          `json:"redirect_url,omitempty"`
	Fiscalized           bool            `json:"fiscalized"`
	FiscalUUID           *string         `json:"fiscal_uuid,omitempty"`
	FiscalLink           *string         `json:"fiscal_link,omitempty"`
	FiscalError          *string         `json:"fiscal_error,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// SkatingSession фактическое время на льду по оплате
type SkatingSession struct {
	ID             int64         `json:"id"`
	PaymentID      int64         `json:"payment_id"`
	Date           time.Time     `json:"date"`
	Hours          int           `json:"hours"`
	StartTime      *time.Time    `json:"start_time,omitempty"`
	PlannedEndTime *time.Time    `json:"planned_end_time,omitempty"`
	EndTime        *time.Time    `json:"end_time,omitempty"`
	Status         SkatingStatus `json:"status"`
	CreatedAt      time.Time     `json:"created_at"`
}

// TransitionResult результат перехода сеанса
type TransitionResult struct {
	PaymentID      int64         `json:"payment_id"`
	SessionID      int64         `json:"session_id"`
	PreviousStatus SkatingStatus `json:"previous_status"`
	Status         SkatingStatus `json:"status"`
	StartTime      *time.Time    `json:"start_time,omitempty"`
	SessionEnd     *time.Time    `json:"session_end,omitempty"`
	EndTime        *time.Time    `json:"end_time,omitempty"`
	DurationHours  int           `json:"duration_hours"`
	Reason         string        `json:"reason,omitempty"`
}

// DashboardEntry строка панели оператора
type DashboardEntry struct {
	PaymentID         int64           `json:"payment_id"`
	ChequeCode        string          `json:"cheque_code"`
	TicketNumber      string          `json:"ticket_number"`
	AmountAdult       int             `json:"amount_adult"`
	AmountChild       int             `json:"amount_child"`
	Hours             int             `json:"hours"`
	SkateRental       int             `json:"skate_rental"`
	InstructorService bool            `json:"instructor_service"`
	TotalAmount       decimal.Decimal `json:"total_amount"`
	SkatingStatus     SkatingStatus   `json:"skating_status"`
	SessionID         *int64          `json:"session_id,omitempty"`
	StartTime         *time.Time      `json:"start_time,omitempty"`
	PlannedEndTime    *time.Time      `json:"planned_end_time,omitempty"`
	EndTime           *time.Time      `json:"end_time,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
}

// Dashboard текущие посетители по состояниям
type Dashboard struct {
	Waiting     []*DashboardEntry `json:"waiting"`
	InProgress  []*DashboardEntry `json:"in_progress"`
	TimeExpired []*DashboardEntry `json:"time_expired"`
}

// ReportSummary агрегаты по завершенным сеансам
type ReportSummary struct {
	TotalSessions       int64           `json:"total_sessions"`
	TotalRevenue        decimal.Decimal `json:"total_revenue"`
	AverageSessionPrice decimal.Decimal `json:"average_session_price"`
	TotalHours          int64           `json:"total_hours"`
	TotalSkaters        int64           `json:"total_skaters"`
	TotalSkateRentals   int64           `json:"total_skate_rentals"`
	InstructorSessions  int64           `json:"instructor_sessions"`
}

// DailyReportRow агрегаты за один день
type DailyReportRow struct {
	Date         time.Time       `json:"date"`
	Sessions     int64           `json:"sessions"`
	Revenue      decimal.Decimal `json:"revenue"`
	AveragePrice decimal.Decimal `json:"average_price"`
}

// CashierReportRow выручка кассира
type CashierReportRow struct {
	UserID   int64           `json:"user_id"`
	Username string          `json:"username"`
	FullName string          `json:"full_name"`
	Sessions int64           `json:"sessions"`
	Revenue  decimal.Decimal `json:"revenue"`
}

// SessionReport отчет по сеансам за период
type SessionReport struct {
	From     time.Time          `json:"from"`
	To       time.Time          `json:"to"`
	Summary  ReportSummary      `json:"summary"`
	Daily    []DailyReportRow   `json:"daily"`
	Cashiers []CashierReportRow `json:"cashiers"`
}

// DirectoryEntry запись справочника отделов или должностей
type DirectoryEntry struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// GatewayResult ответ платежного шлюза
type GatewayResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transaction_id,omitempty"`
	RedirectURL   string `json:"redirect_url,omitempty"`
	Status        string `json:"status,omitempty"`
	Error         string `json:"error,omitempty"`
}

// FiscalGood позиция фискального чека
type FiscalGood struct {
	CalcItemAttributeCode int    `json:"calcItemAttributeCode"`
	Name                  string `json:"name"`
	Price                 int64  `json:"price"`
	Quantity              int    `json:"quantity"`
	Unit                  string `json:"unit"`
	ST                    int    `json:"st"`
	VAT                   int    `json:"vat"`
}

// FiscalCompany реквизиты налогоплательщика
type FiscalCompany struct {
	INN string `json:"inn"`
	SNO int    `json:"sno"`
}

// FiscalReceipt фискальный чек прихода, суммы в тыйынах
type FiscalReceipt struct {
	FiscalNumber string        `json:"fiscal_number"`
	Operation    string        `json:"operation"`
	Received     int64         `json:"received"`
	Goods        []FiscalGood  `json:"goods"`
	Company      FiscalCompany `json:"company"`
	Description  string        `json:"description"`
}

// FiscalReceiptResult идентификатор зарегистрированного чека
type FiscalReceiptResult struct {
	ID   string `json:"id"`
	Link string `json:"link"`
}

// FiscalResult итог фискализации оплаты
type FiscalResult struct {
	PaymentID         int64  `json:"payment_id"`
	Fiscalized        bool   `json:"fiscalized"`
	AlreadyFiscalized bool   `json:"already_fiscalized,omitempty"`
	InProgress        bool   `json:"in_progress,omitempty"`
	UUID              string `json:"fiscal_uuid,omitempty"`
	Link              string `json:"fiscal_link,omitempty"`
	Error             string `json:"fiscal_error,omitempty"`
}
