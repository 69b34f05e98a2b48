package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidInput  = errors.New("invalid input")
	ErrQuotaExceeded = errors.New("quota exceeded")
	ErrUpstream      = errors.New("upstream failure")
	ErrEmptyProfile  = errors.New("profile empty or private")
	ErrSynthesis     = errors.New("synthesis failure")
	ErrInternal      = errors.New("internal server error")
)

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(resource, identifier string) *AppError {
	msg := fmt.Sprintf("%s not found", resource)
	details := fmt.Sprintf("%s with identifier '%s' was not found", resource, identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewQuotaExceeded is raised when a provider reports credit or rate exhaustion.
// The message asks the operator to replenish credits instead of inviting retries.
func NewQuotaExceeded(provider string) *AppError {
	msg := fmt.Sprintf("Credit limit crossed for %s. Please inform the admin to add more credits.", provider)
	return NewAppError(ErrQuotaExceeded, msg, fmt.Sprintf("%s quota exhausted", provider), nil)
}

func NewUpstream(details string, err error) *AppError {
	return NewAppError(ErrUpstream, "External service request failed. Please try again.", details, err)
}

func NewEmptyProfile(identifier string) *AppError {
	msg := "LinkedIn profile appears to be empty or inaccessible. The profile might be private, deleted, or the URL is incorrect."
	return NewAppError(ErrEmptyProfile, msg, fmt.Sprintf("no usable fields for '%s'", identifier), nil)
}

func NewSynthesis(details string, err error) *AppError {
	return NewAppError(ErrSynthesis, "Audio generation failed. Please try again.", details, err)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "An internal server error occurred", details, err)
}

func ToHTTPStatus(err error) int {
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrEmptyProfile) {
		return http.StatusNotFound
	}
	if errors.Is(err, ErrInvalidInput) {
		return http.StatusBadRequest
	}
	if errors.Is(err, ErrQuotaExceeded) {
		return http.StatusTooManyRequests
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	return gin.H{
		"error":   e.BaseError.Error(),
		"message": e.Message,
	}
}
