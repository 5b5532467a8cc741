package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrDivisionByZero is reported by "/" and "%" when the divisor is zero.
	ErrDivisionByZero = errors.New("cannot divide by zero")
	// ErrNegativeSqrt is reported by "sqrt" for a negative operand.
	ErrNegativeSqrt = errors.New("argument cannot be < 0")
	// ErrNonPositiveLog is reported by "log" and "ln" for an operand <= 0.
	ErrNonPositiveLog = errors.New("argument cannot be <= 0")
)

// ErrorKind classifies evaluation failures.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindInsufficientOperands means the stack held fewer operands than the operator needs.
	KindInsufficientOperands
	// KindDivisionByZero means a zero divisor was popped.
	KindDivisionByZero
	// KindNegativeSqrt means sqrt popped a negative operand.
	KindNegativeSqrt
	// KindNonPositiveLog means log or ln popped an operand <= 0.
	KindNonPositiveLog
	// KindInvalidInput means the token is neither an operator nor a number.
	KindInvalidInput
	// KindUnknown is any other error.
	KindUnknown
)

func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindInsufficientOperands:
		return "insufficient-operands"
	case KindDivisionByZero:
		return "division-by-zero"
	case KindNegativeSqrt:
		return "negative-sqrt"
	case KindNonPositiveLog:
		return "non-positive-log"
	case KindInvalidInput:
		return "invalid-input"
	default:
		return "unknown"
	}
}

// InsufficientOperandsError is reported when an operator is applied to a stack
// holding fewer than Needed operands. The stack is left untouched.
type InsufficientOperandsError struct {
	// Op is the operator token.
	Op string
	// Needed is the operator arity.
	Needed int
	// Have is the stack depth at the time of the call.
	Have int
}

func (e *InsufficientOperandsError) Error() string {
	if e == nil {
		return "not enough numbers in the stack"
	}
	return fmt.Sprintf("not enough numbers in the stack: %q needs %d, have %d", e.Op, e.Needed, e.Have)
}

// InvalidInputError is reported for a token that is neither an operator nor a number.
type InvalidInputError struct {
	// Token is the rejected input.
	Token string
}

func (e *InvalidInputError) Error() string {
	if e == nil {
		return "invalid input"
	}
	return fmt.Sprintf("invalid input %q", e.Token)
}

// OperatorError wraps a domain failure detected after operands were popped.
type OperatorError struct {
	// Op is the operator token.
	Op string
	// Err is one of the domain sentinel errors.
	Err error
}

func (e *OperatorError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *OperatorError) Unwrap() error {
	return e.Err
}

// KindOf classifies err.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	var insufficient *InsufficientOperandsError
	if errors.As(err, &insufficient) {
		return KindInsufficientOperands
	}
	var invalid *InvalidInputError
	if errors.As(err, &invalid) {
		return KindInvalidInput
	}
	switch {
	case errors.Is(err, ErrDivisionByZero):
		return KindDivisionByZero
	case errors.Is(err, ErrNegativeSqrt):
		return KindNegativeSqrt
	case errors.Is(err, ErrNonPositiveLog):
		return KindNonPositiveLog
	}
	return KindUnknown
}

// IsInsufficientOperands reports whether err is an InsufficientOperandsError and
// returns the number of operands that were needed.
func IsInsufficientOperands(err error) (int, bool) {
	var target *InsufficientOperandsError
	if errors.As(err, &target) {
		return target.Needed, true
	}
	return 0, false
}
