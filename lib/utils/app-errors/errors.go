// Package apperrors holds the caller-facing error kinds of the workflow layer.
// Controllers map a kind to an HTTP status; anything without a kind is a store fault.
package apperrors

import (
	"fmt"

	"github.com/pkg/errors"
)

type Kind string

const (
	KindNotFound           Kind = "NOT_FOUND"
	KindPermissionDenied   Kind = "PERMISSION_DENIED"
	KindValidation         Kind = "VALIDATION_ERROR"
	KindPreconditionFailed Kind = "PRECONDITION_FAILED"
)

type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

func NotFound(entity string) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s not found", entity)}
}

func PermissionDenied(message string) error {
	return &Error{Kind: KindPermissionDenied, Message: message}
}

func PermissionDeniedf(format string, args ...interface{}) error {
	return PermissionDenied(fmt.Sprintf(format, args...))
}

func Validation(message string) error {
	return &Error{Kind: KindValidation, Message: message}
}

func Validationf(format string, args ...interface{}) error {
	return Validation(fmt.Sprintf(format, args...))
}

func PreconditionFailed(message string) error {
	return &Error{Kind: KindPreconditionFailed, Message: message}
}

func PreconditionFailedf(format string, args ...interface{}) error {
	return PreconditionFailed(fmt.Sprintf(format, args...))
}

// KindOf returns "" for errors that carry no kind (store and transport faults)
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return ""
}

func Is(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
