// Package apperrors defines the error taxonomy shared by the services:
// NotFound, Validation, Duplicate and BusinessRule. Controllers translate
// these into HTTP status codes; anything else is a storage failure and
// propagates unmodified.
package apperrors

import (
	"errors"
	"fmt"
)

type Kind int

const (
	KindNotFound Kind = iota + 1
	KindValidation
	KindDuplicate
	KindBusinessRule
)

// Error carries a kind and a human-readable message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string { return e.Message }

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Duplicate(format string, args ...any) *Error {
	return &Error{Kind: KindDuplicate, Message: fmt.Sprintf(format, args...)}
}

func BusinessRule(format string, args ...any) *Error {
	return &Error{Kind: KindBusinessRule, Message: fmt.Sprintf(format, args...)}
}

func is(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

func IsNotFound(err error) bool     { return is(err, KindNotFound) }
func IsValidation(err error) bool   { return is(err, KindValidation) }
func IsDuplicate(err error) bool    { return is(err, KindDuplicate) }
func IsBusinessRule(err error) bool { return is(err, KindBusinessRule) }
