package task

import (
	"errors"
	"fmt"
)

// Kind classifies task and store errors.
type Kind string

const (
	KindParse   Kind = "PARSE"
	KindSchema  Kind = "SCHEMA"
	KindStorage Kind = "STORAGE"
	KindIndex   Kind = "INDEX"
	KindInvalid Kind = "INVALID"
)

// Error is the error type returned by the task and store packages.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Is reports whether target is the sentinel for the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil {
		return false
	}
	return t.Message == "" && t.Err == nil && t.Kind == e.Kind
}

// Sentinels for errors.Is checks, one per kind.
var (
	ErrParse   = &Error{Kind: KindParse}
	ErrSchema  = &Error{Kind: KindSchema}
	ErrStorage = &Error{Kind: KindStorage}
	ErrIndex   = &Error{Kind: KindIndex}
	ErrInvalid = &Error{Kind: KindInvalid}
)

// NewError builds an error of the given kind.
func NewError(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WrapError wraps err with a kind and message.
func WrapError(kind Kind, message string, err error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// IsKind reports whether err, or anything it wraps, is an *Error of kind.
func IsKind(err error, kind Kind) bool {
	var tErr *Error
	if errors.As(err, &tErr) {
		return tErr.Kind == kind
	}
	return false
}
