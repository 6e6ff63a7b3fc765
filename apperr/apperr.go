// Package apperr carries the domain error taxonomy. Services return these
// errors; the controller layer is the single place that translates them to
// HTTP status codes.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind int

const (
	KindUnknown Kind = iota
	// KindValidation covers malformed or missing request fields and bad
	// line-item quantities.
	KindValidation
	// KindDuplicate is a uniqueness conflict, e.g. an already-taken username.
	KindDuplicate
	// KindAuthentication is a credential failure.
	KindAuthentication
	// KindAuthorization means the session does not own the resource.
	KindAuthorization
	// KindNotFound covers absent accounts, orders, products and records.
	KindNotFound
	// KindTransaction is an infrastructure fault inside an atomic unit of
	// work; the unit has been rolled back.
	KindTransaction
	// KindInternal is any other infrastructure fault.
	KindInternal
)

type Error struct {
	Kind    Kind
	Message string
	// Fields holds field-level validation messages, when there are any.
	Fields []string
	Err    error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string, fields ...string) *Error {
	return &Error{Kind: KindValidation, Message: message, Fields: fields}
}

func Duplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

func Authentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

func Authorization(message string) *Error {
	return &Error{Kind: KindAuthorization, Message: message}
}

func NotFound(message string) *Error {
	return &Error{Kind: KindNotFound, Message: message}
}

func Transaction(err error) *Error {
	return &Error{Kind: KindTransaction, Message: "transaction failed", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "internal error", Err: err}
}

// KindOf extracts the taxonomy kind from an error chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// HTTPStatus maps an error to its response status. Unknown errors are
// treated as internal.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindDuplicate:
		return http.StatusBadRequest
	case KindAuthentication:
		return http.StatusUnauthorized
	case KindAuthorization:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
