package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies an operational failure so handlers can map it to a
// response without inspecting message text.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindDuplicate
	KindConflict
	KindNotFound
	KindReference
)

// Error carries a kind and a user-facing message. The message is shown to
// the end user verbatim, so it must not leak driver internals.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates an error of the given kind with a user-facing message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap attaches a kind and message to an underlying cause.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

func Validation(message string) *Error { return New(KindValidation, message) }
func Duplicate(message string) *Error  { return New(KindDuplicate, message) }
func Conflict(message string) *Error   { return New(KindConflict, message) }
func NotFound(message string) *Error   { return New(KindNotFound, message) }
func Reference(message string) *Error  { return New(KindReference, message) }

// Internal wraps an unexpected storage or runtime fault.
func Internal(err error) *Error {
	return &Error{Kind: KindInternal, Message: "Beklenmeyen bir hata oluştu", Err: err}
}

// KindOf extracts the kind from an error chain; unclassified errors are
// treated as internal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// MessageOf returns the user-facing message for an error chain.
func MessageOf(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Beklenmeyen bir hata oluştu"
}

// IsKind reports whether the error chain carries the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
