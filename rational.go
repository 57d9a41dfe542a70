package calc

import (
	"math/big"
	"strconv"
	"strings"
)

// Rational is an exact signed fraction. Every constructor normalizes it: the
// numerator and denominator are coprime, the denominator is positive, and
// zero is never negative, so equal values have equal representations.
type Rational struct {
	neg bool
	num bigUint
	den bigUint
}

// maxPowBits bounds the size of results of exact exponentiation.
const maxPowBits = 1 << 20

func ratInt(x int64) Rational {
	if x < 0 {
		return Rational{neg: true, num: uintOf(uint64(-x)), den: uintOf(1)}
	}
	return Rational{num: uintOf(uint64(x)), den: uintOf(1)}
}

// newRational creates a normalized rational from its parts.
func newRational(neg bool, num, den bigUint, intr Interrupt) (Rational, error) {
	if den.isZero() {
		return Rational{}, &DivideByZeroError{}
	}
	if num.isZero() {
		return Rational{den: uintOf(1)}, nil
	}
	g, err := num.gcd(den, intr)
	if err != nil {
		return Rational{}, err
	}
	if !g.isOne() {
		num, _, _ = num.divRem(g)
		den, _, _ = den.divRem(g)
	}
	return Rational{neg: neg, num: num, den: den}, nil
}

// ratFromBig converts a *big.Rat, which is already normalized.
func ratFromBig(x *big.Rat) Rational {
	return Rational{neg: x.Sign() < 0, num: uintFrom(x.Num()), den: uintFrom(x.Denom())}
}

// ratFromFloat converts a finite *big.Float exactly.
func ratFromFloat(x *big.Float) Rational {
	r, _ := x.Rat(nil)
	return ratFromBig(r)
}

func (r Rational) denom() bigUint {
	if r.den.isZero() {
		return uintOf(1)
	}
	return r.den
}

// rat returns the value as a new *big.Rat.
func (r Rational) rat() *big.Rat {
	n := new(big.Int).Set(r.num.big())
	if r.neg {
		n.Neg(n)
	}
	return new(big.Rat).SetFrac(n, r.denom().big())
}

// float returns the value rounded to prec bits.
func (r Rational) float(prec uint) *big.Float {
	return new(big.Float).SetPrec(prec).SetRat(r.rat())
}

func (r Rational) isZero() bool {
	return r.num.isZero()
}

func (r Rational) isInt() bool {
	return r.denom().isOne()
}

func (r Rational) isOne() bool {
	return !r.neg && r.num.isOne() && r.isInt()
}

func (r Rational) sign() int {
	switch {
	case r.isZero():
		return 0
	case r.neg:
		return -1
	default:
		return 1
	}
}

func (r Rational) negate() Rational {
	if r.isZero() {
		return r
	}
	r.neg = !r.neg
	return r
}

func (r Rational) abs() Rational {
	r.neg = false
	return r
}

// cmp compares the mathematical values of r and s.
func (r Rational) cmp(s Rational) int {
	if r.sign() != s.sign() {
		if r.sign() < s.sign() {
			return -1
		}
		return 1
	}
	c := r.num.mul(s.denom()).cmp(s.num.mul(r.denom()))
	if r.neg {
		c = -c
	}
	return c
}

// addSigned adds two signed magnitudes.
func addSigned(an bool, a bigUint, bn bool, b bigUint) (bool, bigUint) {
	if an == bn {
		return an, a.add(b)
	}
	if a.cmp(b) >= 0 {
		d, _ := a.sub(b)
		return an, d
	}
	d, _ := b.sub(a)
	return bn, d
}

func (r Rational) add(s Rational, intr Interrupt) (Rational, error) {
	if err := check(intr); err != nil {
		return Rational{}, err
	}
	neg, num := addSigned(r.neg, r.num.mul(s.denom()), s.neg, s.num.mul(r.denom()))
	return newRational(neg, num, r.denom().mul(s.denom()), intr)
}

func (r Rational) sub(s Rational, intr Interrupt) (Rational, error) {
	return r.add(s.negate(), intr)
}

func (r Rational) mul(s Rational, intr Interrupt) (Rational, error) {
	if err := check(intr); err != nil {
		return Rational{}, err
	}
	return newRational(r.neg != s.neg, r.num.mul(s.num), r.denom().mul(s.denom()), intr)
}

func (r Rational) div(s Rational, intr Interrupt) (Rational, error) {
	if s.isZero() {
		return Rational{}, &DivideByZeroError{}
	}
	if err := check(intr); err != nil {
		return Rational{}, err
	}
	return newRational(r.neg != s.neg, r.num.mul(s.denom()), r.denom().mul(s.num), intr)
}

// pow raises r to the integer power e. The caller ensures e is an integer.
func (r Rational) pow(e Rational, intr Interrupt) (Rational, error) {
	if r.isZero() && e.isZero() {
		return Rational{}, ErrZeroToThePowerOfZero
	}
	n, err := e.num.toUint64()
	if err != nil {
		return Rational{}, ErrExponentTooLarge
	}
	if r.isZero() {
		if e.neg {
			return Rational{}, &DivideByZeroError{}
		}
		return r, nil
	}
	bits := r.num.bitLen()
	if d := r.denom().bitLen(); d > bits {
		bits = d
	}
	// Bases of magnitude 1 have bit length 1 in both parts.
	if !(r.num.isOne() && r.isInt()) && n > maxPowBits/uint64(bits) {
		return Rational{}, ErrExponentTooLarge
	}
	num, err := r.num.pow(n, intr)
	if err != nil {
		return Rational{}, err
	}
	den, err := r.denom().pow(n, intr)
	if err != nil {
		return Rational{}, err
	}
	neg := r.neg && n&1 != 0
	if e.neg {
		num, den = den, num
	}
	return newRational(neg, num, den, intr)
}

// root computes the exact n-th root of r, if there is one. The result for
// negative r is the negative root when n is odd; even roots of negative
// numbers are never exact.
func (r Rational) root(n uint64, intr Interrupt) (Rational, bool, error) {
	if r.neg && n&1 == 0 {
		return Rational{}, false, nil
	}
	num, ok, err := r.num.root(n, intr)
	if err != nil || !ok {
		return Rational{}, false, err
	}
	den, ok, err := r.denom().root(n, intr)
	if err != nil || !ok {
		return Rational{}, false, err
	}
	return Rational{neg: r.neg, num: num, den: den}, true, nil
}

// toUint64 converts r to a uint64 if it is a non-negative integer in range.
func (r Rational) toUint64() (uint64, error) {
	if !r.isInt() || r.neg {
		return 0, &TypeError{Want: "a non-negative integer", Got: r.String()}
	}
	return r.num.toUint64()
}

// maxLiteralExp bounds exponents in number literals.
const maxLiteralExp = 100000

// parseNumber parses a number literal exactly. Decimal literals may have a
// fractional part and an exponent; 0x, 0o, and 0b prefixes select a base for
// integer literals.
func parseNumber(s string) (Rational, error) {
	if len(s) > 2 && s[0] == '0' {
		base := 0
		switch s[1] {
		case 'x', 'X':
			base = 16
		case 'o', 'O':
			base = 8
		case 'b', 'B':
			base = 2
		}
		if base != 0 {
			n, ok := parseUint(s[2:], base)
			if !ok {
				return Rational{}, &LexError{Text: s, Kind: "number"}
			}
			return Rational{num: n, den: uintOf(1)}, nil
		}
	}
	if k := strings.IndexAny(s, "eE"); k >= 0 {
		e, err := strconv.ParseInt(s[k+1:], 10, 64)
		if err != nil || e > maxLiteralExp || e < -maxLiteralExp {
			return Rational{}, ErrExponentTooLarge
		}
	}
	if strings.HasPrefix(s, ".") {
		s = "0" + s
	}
	x, ok := new(big.Rat).SetString(s)
	if !ok {
		return Rational{}, &LexError{Text: s, Kind: "number"}
	}
	return ratFromBig(x), nil
}

// String renders r as an integer or an improper fraction.
func (r Rational) String() string {
	s := r.num.big().String()
	if !r.isInt() {
		s += "/" + r.denom().big().String()
	}
	if r.neg {
		s = "-" + s
	}
	return s
}

// fraction renders r as an integer or fraction in the given base.
func (r Rational) fraction(base Base, intr Interrupt) (string, error) {
	n, err := r.num.format(base.Radix(), intr)
	if err != nil {
		return "", err
	}
	s := base.Prefix() + n
	if !r.isInt() {
		d, err := r.denom().format(base.Radix(), intr)
		if err != nil {
			return "", err
		}
		s += "/" + base.Prefix() + d
	}
	if r.neg {
		s = "-" + s
	}
	return s, nil
}

// decimal renders r rounded half to even at places fractional digits
// in the given base. The second result reports whether the rendering is
// exact.
func (r Rational) decimal(places int, base Base, intr Interrupt) (string, bool, error) {
	radix := big.NewInt(int64(base.Radix()))
	scale := new(big.Int).Exp(radix, big.NewInt(int64(places)), nil)
	n := new(big.Int).Mul(r.num.big(), scale)
	d := r.denom().big()
	var q, m big.Int
	q.QuoRem(n, d, &m)
	exact := m.Sign() == 0
	// Round half to even.
	if c := m.Lsh(&m, 1).Cmp(d); c > 0 || c == 0 && q.Bit(0) == 1 {
		q.Add(&q, bigOne)
	}
	ds, err := uintFrom(&q).format(base.Radix(), intr)
	if err != nil {
		return "", false, err
	}
	if len(ds) <= places {
		ds = strings.Repeat("0", places-len(ds)+1) + ds
	}
	s := ds[:len(ds)-places]
	if places > 0 {
		s += "." + ds[len(ds)-places:]
	}
	s = base.Prefix() + s
	if r.neg && q.Sign() != 0 {
		s = "-" + s
	}
	return s, exact, nil
}
