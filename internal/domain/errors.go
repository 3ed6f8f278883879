package domain

import (
	"errors"
	"fmt"
	"time"
)

// Категории ошибок
var (
	ErrValidation   = errors.New("validation error")
	ErrBusinessRule = errors.New("business rule violation")
	ErrPermission   = errors.New("permission denied")
	ErrNotFound     = errors.New("not found")
	ErrGateway      = errors.New("payment gateway error")
	ErrFiscal       = errors.New("fiscal service error")
)

// Ошибки пользователей
var (
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = fmt.Errorf("user %w", ErrNotFound)
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// Ошибки оплат
var (
	ErrPaymentNotFound      = fmt.Errorf("payment %w", ErrNotFound)
	ErrChequeCodeExists     = errors.New("cheque code already exists")
	ErrNotLastPayment       = fmt.Errorf("%w: only the latest payment can be updated", ErrBusinessRule)
	ErrPaymentNotEditable   = fmt.Errorf("%w: payment can no longer be updated", ErrBusinessRule)
	ErrPaymentNotCompleted  = fmt.Errorf("%w: payment is not completed", ErrBusinessRule)
	ErrFiscalAuthentication = fmt.Errorf("%w: authentication failed", ErrFiscal)
)

// Ошибки сеансов
var (
	ErrSessionNotFound      = fmt.Errorf("skating session %w", ErrNotFound)
	ErrInvalidTransition    = fmt.Errorf("%w: invalid skating status transition", ErrBusinessRule)
	ErrSessionAlreadyExists = fmt.Errorf("%w: skating session already started", ErrBusinessRule)
)

// ValidationError ошибка входных данных
type ValidationError struct {
	Field  string
	Reason string
}

// NewValidationError создает новую ошибку валидации
func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// DuplicateVisitError сотрудник уже оформлял билет в этот день
type DuplicateVisitError struct {
	EmployeeName string
	VisitedAt    time.Time
}

func (e *DuplicateVisitError) Error() string {
	return fmt.Sprintf("employee %q already visited today at %s", e.EmployeeName, e.VisitedAt.Format(time.RFC3339))
}

func (e *DuplicateVisitError) Unwrap() error {
	return ErrBusinessRule
}

// PermissionError у роли нет прав на действие
type PermissionError struct {
	Action string
	Role   Role
}

func (e *PermissionError) Error() string {
	return fmt.Sprintf("role %q is not allowed to %s", e.Role, e.Action)
}

func (e *PermissionError) Unwrap() error {
	return ErrPermission
}

// GatewayError платежный шлюз отклонил оплату
type GatewayError struct {
	Message string
}

func (e *GatewayError) Error() string {
	return "payment gateway: " + e.Message
}

func (e *GatewayError) Unwrap() error {
	return ErrGateway
}

// FiscalError ошибка фискального сервиса
type FiscalError struct {
	Op         string
	StatusCode int
	Message    string
}

func (e *FiscalError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("fiscal %s: status %d: %s", e.Op, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("fiscal %s: %s", e.Op, e.Message)
}

func (e *FiscalError) Unwrap() error {
	return ErrFiscal
}
