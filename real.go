package calc

import (
	"math/big"
)

// symbol identifies a named constant that a Real is a rational multiple of.
type symbol uint8

const (
	symNone symbol = iota
	symPi
	symE
)

func (s symbol) String() string {
	switch s {
	case symNone:
		return ""
	case symPi:
		return "π"
	case symE:
		return "e"
	default:
		panic("calc: invalid symbol")
	}
}

// value returns the constant at guard precision.
func (s symbol) value() *big.Float {
	switch s {
	case symPi:
		return floatPi()
	case symE:
		return floatE()
	default:
		return guardFloat().SetInt64(1)
	}
}

// Real is a real number represented as a rational coefficient, optionally
// multiplied by a symbolic constant. Approximate values are stored as
// untagged rationals converted from finite-precision floats.
type Real struct {
	coef Rational
	sym  symbol
}

func realRat(r Rational) Real {
	return Real{coef: r}
}

func realInt(x int64) Real {
	return Real{coef: ratInt(x)}
}

// realFloat converts a finite float to an untagged real.
func realFloat(x *big.Float) Real {
	return Real{coef: ratFromFloat(x)}
}

// piTimes returns r·π.
func piTimes(r Rational) Real {
	if r.isZero() {
		return Real{coef: r}
	}
	return Real{coef: r, sym: symPi}
}

func (x Real) isZero() bool {
	return x.coef.isZero()
}

// isRational reports whether x is a plain rational number.
func (x Real) isRational() bool {
	return x.sym == symNone || x.coef.isZero()
}

func (x Real) sign() int {
	return x.coef.sign()
}

// float approximates x at guard precision.
func (x Real) float() *big.Float {
	f := x.coef.float(guardPrec)
	if x.sym != symNone {
		f.Mul(f, x.sym.value())
	}
	return f
}

// approximate converts x into an untagged approximation.
func (x Real) approximate() Real {
	if x.isRational() {
		return Real{coef: x.coef}
	}
	return realFloat(x.float())
}

func (x Real) negate() Real {
	x.coef = x.coef.negate()
	return x
}

func (x Real) abs() Real {
	x.coef = x.coef.abs()
	return x
}

// cmp compares x and y, exactly when possible.
func (x Real) cmp(y Real) int {
	switch {
	case x.sym == y.sym:
		return x.coef.cmp(y.coef)
	case x.isZero() || y.isZero():
		// Symbols are positive, so signs decide.
		return cmpInt(x.sign(), y.sign())
	}
	return x.float().Cmp(y.float())
}

func (x Real) add(y Real, intr Interrupt) (Exact[Real], error) {
	switch {
	case y.isZero():
		return exactly(x), nil
	case x.isZero():
		return exactly(y), nil
	case x.sym == y.sym:
		c, err := x.coef.add(y.coef, intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		if c.isZero() {
			return exactly(realRat(c)), nil
		}
		return exactly(Real{coef: c, sym: x.sym}), nil
	}
	if err := check(intr); err != nil {
		return Exact[Real]{}, err
	}
	f := x.float()
	return approx(realFloat(f.Add(f, y.float()))), nil
}

func (x Real) sub(y Real, intr Interrupt) (Exact[Real], error) {
	return x.add(y.negate(), intr)
}

func (x Real) mul(y Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() || y.isZero() {
		return exactly(realInt(0)), nil
	}
	if x.sym == symNone || y.sym == symNone {
		c, err := x.coef.mul(y.coef, intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		s := x.sym
		if s == symNone {
			s = y.sym
		}
		return exactly(Real{coef: c, sym: s}), nil
	}
	if err := check(intr); err != nil {
		return Exact[Real]{}, err
	}
	f := x.float()
	return approx(realFloat(f.Mul(f, y.float()))), nil
}

func (x Real) div(y Real, intr Interrupt) (Exact[Real], error) {
	if y.isZero() {
		return Exact[Real]{}, &DivideByZeroError{}
	}
	if x.isZero() {
		return exactly(realInt(0)), nil
	}
	switch {
	case y.sym == symNone, x.sym == y.sym:
		c, err := x.coef.div(y.coef, intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		s := x.sym
		if x.sym == y.sym {
			s = symNone
		}
		return exactly(Real{coef: c, sym: s}), nil
	}
	if err := check(intr); err != nil {
		return Exact[Real]{}, err
	}
	f := x.float()
	return approx(realFloat(f.Quo(f, y.float()))), nil
}

// powInt raises x to an integer power. Symbolic bases are approximated unless
// the exponent is 0 or 1.
func (x Real) powInt(n Rational, intr Interrupt) (Exact[Real], error) {
	if x.sym != symNone && !x.isZero() {
		switch {
		case n.isZero():
			return exactly(realInt(1)), nil
		case n.isOne():
			return exactly(x), nil
		}
		r, err := floatPow(guardFloat().Abs(x.float()), n.float(guardPrec), intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		if x.sign() < 0 && n.num.big().Bit(0) == 1 {
			r.Neg(r)
		}
		return approx(realFloat(r)), nil
	}
	c, err := x.coef.pow(n, intr)
	if err != nil {
		return Exact[Real]{}, err
	}
	return exactly(realRat(c)), nil
}

// String renders x exactly as a fraction, e.g. "3π/4".
func (x Real) String() string {
	s, _ := x.fraction(Base{}, nil)
	return s
}

// fraction renders x exactly as an integer or fraction, with any symbol
// following the numerator.
func (x Real) fraction(base Base, intr Interrupt) (string, error) {
	if x.sym == symNone || x.isZero() {
		return x.coef.fraction(base, intr)
	}
	var s string
	if !x.coef.num.isOne() {
		n, err := x.coef.num.format(base.Radix(), intr)
		if err != nil {
			return "", err
		}
		s = base.Prefix() + n
	}
	s += x.sym.String()
	if !x.coef.isInt() {
		d, err := x.coef.denom().format(base.Radix(), intr)
		if err != nil {
			return "", err
		}
		s += "/" + base.Prefix() + d
	}
	if x.coef.neg {
		s = "-" + s
	}
	return s, nil
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
