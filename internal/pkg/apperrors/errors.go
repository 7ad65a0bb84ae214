package apperrors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidPersonalCode = errors.New("invalid personal ID code")

	ErrInvalidLoanAmount = errors.New("invalid loan amount")

	ErrInvalidLoanPeriod = errors.New("invalid loan period")

	ErrNoValidLoan = errors.New("no valid loan found")

	ErrInvalidArgument = errors.New("invalid argument")

	ErrCache = errors.New("cache error")

	ErrPublish = errors.New("event publish error")

	ErrInternalServer = errors.New("internal server error")
)

// IsClientError reports whether err is one of the user-correctable input kinds.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPersonalCode) ||
		errors.Is(err, ErrInvalidLoanAmount) ||
		errors.Is(err, ErrInvalidLoanPeriod) ||
		errors.Is(err, ErrInvalidArgument)
}

// Reason returns a stable label for the error kind, used for metrics and events.
func Reason(err error) string {
	switch {
	case err == nil:
		return "none"
	case errors.Is(err, ErrInvalidPersonalCode):
		return "invalid_personal_code"
	case errors.Is(err, ErrInvalidLoanAmount):
		return "invalid_loan_amount"
	case errors.Is(err, ErrInvalidLoanPeriod):
		return "invalid_loan_period"
	case errors.Is(err, ErrNoValidLoan):
		return "no_valid_loan"
	default:
		return "internal"
	}
}

type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("[%s] %s", e.Code, e.Message)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

func WrapCacheError(cause error, message string) error {
	return &AppError{
		Code:    "CACHE_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrCache, cause),
	}
}

func WrapPublishError(cause error, message string) error {
	return &AppError{
		Code:    "PUBLISH_ERROR",
		Message: message,
		Cause:   fmt.Errorf("%w: %w", ErrPublish, cause),
	}
}
