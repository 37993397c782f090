package keywords

import (
	"fmt"

	errors "github.com/Laisky/errors/v2"
)

// ErrorKind identifies a stable extraction error category.
type ErrorKind string

const (
	// KindValidation means the request carried no usable question.
	KindValidation ErrorKind = "VALIDATION"
	// KindMethodNotAllowed means the request used an unsupported HTTP method.
	KindMethodNotAllowed ErrorKind = "METHOD_NOT_ALLOWED"
	// KindInitialization means the tokenizer or its dictionary could not be built.
	KindInitialization ErrorKind = "INITIALIZATION"
	// KindTokenization means the analyzer failed while tokenizing a question.
	KindTokenization ErrorKind = "TOKENIZATION"
	// KindInternal is reported for errors that carry no kind.
	KindInternal ErrorKind = "INTERNAL"
)

// Error is the discriminated error returned by this package.
type Error struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error renders the error text, including the cause when present.
func (e *Error) Error() string {
	if e == nil {
		return "keywords error: <nil>"
	}

	msg := e.Message
	if msg == "" {
		msg = fmt.Sprintf("keywords error: %s", e.Kind)
	}
	if e.Cause != nil {
		return msg + ": " + e.Cause.Error()
	}

	return msg
}

// Unwrap exposes the underlying cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

// NewError constructs a typed error without a cause.
func NewError(kind ErrorKind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError constructs a typed error around cause.
func WrapError(kind ErrorKind, cause error, message string) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// AsError extracts a typed error from the error chain.
func AsError(err error) (*Error, bool) {
	if err == nil {
		return nil, false
	}
	var typed *Error
	if errors.As(err, &typed) {
		return typed, true
	}
	return nil, false
}

// KindOf returns the kind carried by err, or KindInternal for untyped errors.
func KindOf(err error) ErrorKind {
	if typed, ok := AsError(err); ok {
		return typed.Kind
	}
	return KindInternal
}

// IsKind reports whether the error chain contains the given kind.
func IsKind(err error, kind ErrorKind) bool {
	if err == nil {
		return false
	}
	return KindOf(err) == kind
}
