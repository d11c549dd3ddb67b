// Package apperr defines the closed set of application error kinds raised by
// the booking and hotel services.  Each kind maps to exactly one HTTP status
// at the handler boundary; any error that is not an *Error is treated as an
// internal failure.
package apperr

import (
	"errors"
	"net/http"
)

// Kind classifies an application error.
type Kind int

const (
	// KindNotFound means a referenced entity does not exist.
	KindNotFound Kind = iota + 1
	// KindUnauthorized means the session user has no enrollment.
	KindUnauthorized
	// KindBadRequest means a ticket exists but does not allow hotel access.
	KindBadRequest
	// KindForbidden covers capacity, reservation and ownership violations.
	KindForbidden
	// KindUnauthorizedBooking means the user may not make a booking at all.
	KindUnauthorizedBooking
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindUnauthorized:
		return "unauthorized"
	case KindBadRequest:
		return "bad_request"
	case KindForbidden:
		return "forbidden"
	case KindUnauthorizedBooking:
		return "unauthorized_booking"
	}
	return "unknown"
}

// Error carries a Kind and a client-safe message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(msg string) *Error     { return &Error{Kind: KindNotFound, Message: msg} }
func Unauthorized(msg string) *Error { return &Error{Kind: KindUnauthorized, Message: msg} }
func BadRequest(msg string) *Error   { return &Error{Kind: KindBadRequest, Message: msg} }
func Forbidden(msg string) *Error    { return &Error{Kind: KindForbidden, Message: msg} }

// UnauthorizedBooking is returned for every eligibility failure on the booking path.
func UnauthorizedBooking() *Error {
	return &Error{Kind: KindUnauthorizedBooking, Message: "can not make a reservation"}
}

// KindOf reports the kind of err, or ok=false when err is not an application error.
func KindOf(err error) (Kind, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Kind, true
	}
	return 0, false
}

// Is reports whether err is an application error of kind k.
func Is(err error, k Kind) bool {
	got, ok := KindOf(err)
	return ok && got == k
}

// HTTPStatus maps err to the response status code.
func HTTPStatus(err error) int {
	k, ok := KindOf(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch k {
	case KindNotFound:
		return http.StatusNotFound
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindBadRequest:
		return http.StatusBadRequest
	case KindForbidden, KindUnauthorizedBooking:
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}
