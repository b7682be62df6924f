package lisp

import (
	"errors"
	"fmt"
)

// Error conditions.  The condition of an LError is stored in its Str field.
const (
	CondError         = "error"
	CondSyntax        = "syntax-error"
	CondUnboundSymbol = "unbound-symbol"
	CondType          = "type-error"
	CondArity         = "arity-error"
	CondArithmetic    = "arithmetic-error"
)

// ErrorVal implements the error interface so that errors can be first class
// lisp objects.  The condition is stored in the Str field and the underlying
// go error in the Err field.
type ErrorVal LVal

// Error implements the error interface.
func (e *ErrorVal) Error() string {
	if e.Err == nil {
		return e.Str
	}
	return fmt.Sprintf("%s: %v", e.Str, e.Err)
}

// Unwrap returns the go error underlying e.
func (e *ErrorVal) Unwrap() error {
	return e.Err
}

// Condition returns the condition of e.
func (e *ErrorVal) Condition() string {
	return e.Str
}

// Error returns an LVal representing the error corresponding to err.  If err
// is an *ErrorVal its condition is preserved.  Otherwise the returned value
// has the generic condition "error".
func Error(err error) *LVal {
	var lerr *ErrorVal
	if errors.As(err, &lerr) {
		return (*LVal)(lerr)
	}
	return ErrorCondition(CondError, err)
}

// ErrorCondition returns an LError with the given condition wrapping err.
func ErrorCondition(condition string, err error) *LVal {
	return &LVal{
		Type: LError,
		Str:  condition,
		Err:  err,
	}
}

// Errorf returns an LError with the given condition and a formatted error
// message.
func Errorf(condition string, format string, v ...interface{}) *LVal {
	return ErrorCondition(condition, fmt.Errorf(format, v...))
}

// GoError returns an error that represents the lisp error v.  GoError returns
// nil if v is not an LError.
func GoError(v *LVal) error {
	if v == nil || v.Type != LError {
		return nil
	}
	return (*ErrorVal)(v)
}

// NewError returns a go error with the given condition.  The returned error is
// always an *ErrorVal.
func NewError(condition string, format string, v ...interface{}) error {
	return GoError(Errorf(condition, format, v...))
}

// WrapError returns an *ErrorVal with the given condition that wraps err.
func WrapError(condition string, err error, format string, v ...interface{}) error {
	msg := fmt.Sprintf(format, v...)
	return GoError(ErrorCondition(condition, fmt.Errorf("%s: %w", msg, err)))
}

// IsCondition returns true if err is an *ErrorVal with the given condition.
func IsCondition(err error, condition string) bool {
	var lerr *ErrorVal
	if !errors.As(err, &lerr) {
		return false
	}
	return lerr.Str == condition
}
