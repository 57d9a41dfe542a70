package calc

import (
	"errors"
	"strconv"
)

// DivideByZeroError is an error from dividing by an exact zero.
type DivideByZeroError struct{}

func (*DivideByZeroError) Error() string {
	return "division by zero"
}

// UnderflowError is an error from subtracting a larger unsigned integer from
// a smaller one.
type UnderflowError struct{}

func (*UnderflowError) Error() string {
	return "subtraction underflow"
}

// ValueTooLargeError is an error from narrowing a number into a bounded
// range.
type ValueTooLargeError struct {
	// Max is the largest allowed value.
	Max uint64
}

func (err *ValueTooLargeError) Error() string {
	return "value must be less than or equal to " + strconv.FormatUint(err.Max, 10)
}

var (
	// ErrExponentTooLarge is returned from exponentiations whose exponent is
	// too large to compute exactly.
	ErrExponentTooLarge = errors.New("exponent too large")
	// ErrZeroToThePowerOfZero is returned when computing 0^0.
	ErrZeroToThePowerOfZero = errors.New("zero to the power of zero is undefined")
	// ErrRecursionDepth is returned when evaluation nests too deeply, usually
	// because a function calls itself without end.
	ErrRecursionDepth = errors.New("maximum recursion depth exceeded")
)

// DimensionError is an error from combining or converting quantities whose
// dimensions differ.
type DimensionError struct {
	// From and To are the display units of the two operands.
	From, To string
}

func (err *DimensionError) Error() string {
	return "cannot convert from " + unitName(err.From) + " to " + unitName(err.To)
}

func unitName(s string) string {
	if s == "" {
		return "unitless"
	}
	return s
}

// BaseOutOfRangeError is an error from requesting a numeral base outside
// 2 to 36.
type BaseOutOfRangeError struct {
	Base uint64
}

func (err *BaseOutOfRangeError) Error() string {
	return "base " + strconv.FormatUint(err.Base, 10) + " is out of range (must be between 2 and 36 inclusive)"
}

// FormatError is an error from rendering a value in a style that cannot
// represent it.
type FormatError struct {
	Msg string
}

func (err *FormatError) Error() string {
	return err.Msg
}

// NotFunctionError is an error from applying a value that cannot be applied.
type NotFunctionError struct {
	// Value is the formatted receiver.
	Value string
	// Number is true when the receiver is a number used where only function
	// application is allowed.
	Number bool
}

func (err *NotFunctionError) Error() string {
	if err.Number {
		return err.Value + " is not a function"
	}
	return strconv.Quote(err.Value) + " is not a function or a number"
}

// TypeError is an error from an operand of the wrong kind.
type TypeError struct {
	// Want describes the expected kind.
	Want string
	// Got is the formatted operand.
	Got string
}

func (err *TypeError) Error() string {
	if err.Got == "" {
		return "expected " + err.Want
	}
	return "expected " + err.Want + ", got " + strconv.Quote(err.Got)
}

// InvertError is an error from inverting a function with no defined inverse.
type InvertError struct {
	Func string
}

func (err *InvertError) Error() string {
	return "unable to invert function " + err.Func
}

// DomainError is an error returned when a function is called on an argument
// outside its domain.
type DomainError struct {
	// X is the out-of-domain argument.
	X string
	// Func is a name identifying the function.
	Func string
}

func (err *DomainError) Error() string {
	r := err.X + " outside domain"
	if err.Func != "" {
		r += " of " + err.Func
	}
	return r
}

// NameError is an error from a lookup for a name that is neither bound in
// the evaluation scope nor a built-in, constant, or unit.
type NameError struct {
	// Name is the name that was missing.
	Name string
}

func (err *NameError) Error() string {
	return "undefined variable: " + strconv.Quote(err.Name)
}
