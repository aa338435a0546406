package internal

import (
	"encoding/json"
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ErrorTypeValidation   ErrorType = "VALIDATION_ERROR"
	ErrorTypeNotFound     ErrorType = "NOT_FOUND"
	ErrorTypeUnauthorized ErrorType = "UNAUTHORIZED"
	ErrorTypeForbidden    ErrorType = "FORBIDDEN"
	ErrorTypeConflict     ErrorType = "CONFLICT"
	ErrorTypeInternal     ErrorType = "INTERNAL_ERROR"
)

type ErrorCode string

const (
	ErrCodeValidationFailed ErrorCode = "VALIDATION_FAILED"
	ErrCodeMissingFields    ErrorCode = "MISSING_REQUIRED_FIELDS"

	ErrCodeDuplicateEmail     ErrorCode = "DUPLICATE_EMAIL"
	ErrCodeInvalidCredentials ErrorCode = "INVALID_CREDENTIALS"
	ErrCodeAccountInactive    ErrorCode = "ACCOUNT_INACTIVE"
	ErrCodeAccountNotFound    ErrorCode = "ACCOUNT_NOT_FOUND"
	ErrCodeCredentialMissing  ErrorCode = "CREDENTIAL_NOT_CONFIGURED"
	ErrCodeMissingToken       ErrorCode = "MISSING_TOKEN"
	ErrCodeInvalidToken       ErrorCode = "INVALID_TOKEN"
	ErrCodeTokenExpired       ErrorCode = "TOKEN_EXPIRED"
	ErrCodeInsufficientRole   ErrorCode = "INSUFFICIENT_ROLE"
	ErrCodeUnknownRole        ErrorCode = "UNKNOWN_ROLE"

	ErrCodeCustomerNotFound ErrorCode = "CUSTOMER_NOT_FOUND"
	ErrCodeEmployeeNotFound ErrorCode = "EMPLOYEE_NOT_FOUND"
	ErrCodeVehicleNotFound  ErrorCode = "VEHICLE_NOT_FOUND"
	ErrCodeServiceNotFound  ErrorCode = "SERVICE_NOT_FOUND"
	ErrCodeOrderNotFound    ErrorCode = "ORDER_NOT_FOUND"

	ErrCodeOrderAlreadyCompleted ErrorCode = "ORDER_ALREADY_COMPLETED"
	ErrCodeTransactionFailed     ErrorCode = "TRANSACTION_FAILED"
)

// AppError is the single error shape that crosses service boundaries.
// StatusCode and Cause never serialize; the HTTP envelope only carries
// type, code and message.
type AppError struct {
	Type       ErrorType `json:"type"`
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	StatusCode int       `json:"-"`
	Cause      error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func (e *AppError) WithCause(cause error) *AppError {
	clone := *e
	clone.Cause = cause
	return &clone
}

func NewValidationError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeValidation,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusBadRequest,
	}
}

func NewNotFoundError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeNotFound,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusNotFound,
	}
}

func NewUnauthorizedError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeUnauthorized,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusUnauthorized,
	}
}

func NewForbiddenError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeForbidden,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusForbidden,
	}
}

func NewConflictError(message string, code ErrorCode) *AppError {
	return &AppError{
		Type:       ErrorTypeConflict,
		Code:       code,
		Message:    message,
		StatusCode: http.StatusConflict,
	}
}

func NewInternalError(message string, cause error) *AppError {
	return &AppError{
		Type:       ErrorTypeInternal,
		Code:       ErrCodeTransactionFailed,
		Message:    message,
		StatusCode: http.StatusInternalServerError,
		Cause:      cause,
	}
}

var (
	ErrDuplicateEmail     = NewConflictError("an account with this email already exists", ErrCodeDuplicateEmail)
	ErrInvalidCredentials = NewUnauthorizedError("invalid email or password", ErrCodeInvalidCredentials)
	ErrAccountInactive    = NewUnauthorizedError("account is deactivated", ErrCodeAccountInactive)
	ErrAccountNotFound    = NewUnauthorizedError("invalid email or password", ErrCodeAccountNotFound)
	ErrCredentialMissing  = NewUnauthorizedError("account not properly configured, contact an administrator", ErrCodeCredentialMissing)

	ErrMissingToken = NewUnauthorizedError("access token required", ErrCodeMissingToken)
	ErrInvalidToken = NewUnauthorizedError("invalid token", ErrCodeInvalidToken)
	ErrTokenExpired = NewUnauthorizedError("token has expired", ErrCodeTokenExpired)
	ErrForbidden    = NewForbiddenError("insufficient role for this operation", ErrCodeInsufficientRole)
	ErrUnknownRole  = NewValidationError("unknown role", ErrCodeUnknownRole)

	ErrCustomerNotFound = NewNotFoundError("customer not found", ErrCodeCustomerNotFound)
	ErrEmployeeNotFound = NewNotFoundError("employee not found", ErrCodeEmployeeNotFound)
	ErrVehicleNotFound  = NewNotFoundError("vehicle not found", ErrCodeVehicleNotFound)
	ErrServiceNotFound  = NewNotFoundError("service not found", ErrCodeServiceNotFound)
	ErrOrderNotFound    = NewNotFoundError("order not found", ErrCodeOrderNotFound)

	ErrOrderAlreadyCompleted = NewConflictError("order is already completed", ErrCodeOrderAlreadyCompleted)
)

func IsAppError(err error) (*AppError, bool) {
	if appErr, ok := err.(*AppError); ok {
		return appErr, true
	}
	return nil, false
}

func (e *AppError) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type    ErrorType `json:"type"`
		Code    ErrorCode `json:"code"`
		Message string    `json:"message"`
	}{
		Type:    e.Type,
		Code:    e.Code,
		Message: e.Message,
	})
}
