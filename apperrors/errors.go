package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind classifies an application error for callers that need to branch on it.
type Kind string

const (
	KindValidation        Kind = "validation"
	KindNotFound          Kind = "not_found"
	KindInsufficientStock Kind = "insufficient_stock"
	KindConflict          Kind = "conflict"
	KindExternal          Kind = "external"
	KindInternal          Kind = "internal"
)

// Error is an application error carrying an HTTP status code and a kind.
type Error struct {
	Code    int    `json:"code"`
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error.
func (e *Error) Unwrap() error {
	return e.Err
}

// New creates a new Error.
func New(code int, kind Kind, message string, err error) *Error {
	return &Error{Code: code, Kind: kind, Message: message, Err: err}
}

// Validation reports missing or malformed input. Never retried.
func Validation(message string) *Error {
	return New(http.StatusBadRequest, KindValidation, message, nil)
}

// NotFound reports an absent entity.
func NotFound(message string) *Error {
	return New(http.StatusNotFound, KindNotFound, message, nil)
}

// InsufficientStock reports a stock removal exceeding the current quantity.
func InsufficientStock(message string) *Error {
	return New(http.StatusConflict, KindInsufficientStock, message, nil)
}

// Conflict reports a duplicate unique key.
func Conflict(message string) *Error {
	return New(http.StatusConflict, KindConflict, message, nil)
}

// External reports a failure in a downstream collaborator (mail, blob store,
// PDF rendering). Non-fatal to the mutation that triggered it.
func External(message string, err error) *Error {
	return New(http.StatusBadGateway, KindExternal, message, err)
}

// Internal wraps an unexpected failure.
func Internal(message string, err error) *Error {
	return New(http.StatusInternalServerError, KindInternal, message, err)
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

func IsValidation(err error) bool        { return KindOf(err) == KindValidation }
func IsNotFound(err error) bool          { return KindOf(err) == KindNotFound }
func IsInsufficientStock(err error) bool { return KindOf(err) == KindInsufficientStock }
func IsConflict(err error) bool          { return KindOf(err) == KindConflict }
func IsExternal(err error) bool          { return KindOf(err) == KindExternal }

// Respond writes err as a JSON response with the matching status code.
func Respond(c *gin.Context, err error) {
	var appErr *Error
	if !errors.As(err, &appErr) {
		appErr = Internal("Internal server error", err)
	}
	c.JSON(appErr.Code, gin.H{"error": appErr.Message, "kind": appErr.Kind})
}
