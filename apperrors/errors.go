package apperrors

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// Kind is the stable, machine-readable error category surfaced to clients.
type Kind string

const (
	KindValidation        Kind = "validation_error"
	KindNotFound          Kind = "not_found"
	KindForbidden         Kind = "forbidden"
	KindInsufficientStock Kind = "insufficient_stock"
	KindConflict          Kind = "conflict"
	KindPersistence       Kind = "persistence_error"
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// Wrap keeps the cause for logging while the client only ever sees message.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// InsufficientStock names the product that could not be reserved.
func InsufficientStock(productName string) *Error {
	return Newf(KindInsufficientStock, "insufficient stock for product: %s", productName)
}

// KindOf extracts the Kind from err, defaulting to persistence_error for
// anything outside the taxonomy.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindPersistence
}

var statusByKind = map[Kind]int{
	KindValidation:        http.StatusBadRequest,
	KindNotFound:          http.StatusNotFound,
	KindForbidden:         http.StatusForbidden,
	KindInsufficientStock: http.StatusConflict,
	KindConflict:          http.StatusConflict,
	KindPersistence:       http.StatusInternalServerError,
}

func Status(err error) int {
	if s, ok := statusByKind[KindOf(err)]; ok {
		return s
	}
	return http.StatusInternalServerError
}

// Respond writes the structured error payload. Wrapped causes stay server
// side; only the kind and message go out.
func Respond(c *gin.Context, err error) {
	kind := KindOf(err)
	message := err.Error()
	if kind == KindPersistence {
		message = "internal server error"
	}
	c.JSON(Status(err), gin.H{"error": message, "kind": string(kind)})
}
