package calc

import (
	"math"
	"math/big"
)

var (
	ratHalf  = Rational{num: uintOf(1), den: uintOf(2)}
	ratThird = Rational{num: uintOf(1), den: uintOf(3)}
	ratSixth = Rational{num: uintOf(1), den: uintOf(6)}
)

func ratFrac(n, d int64) Rational {
	r, _ := newRational(n < 0, uintOf(uint64(abs64(n))), uintOf(uint64(d)), nil)
	return r
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// ratMod computes r mod m in [0, m) for m > 0.
func ratMod(r, m Rational, intr Interrupt) (Rational, error) {
	q := new(big.Rat).Quo(r.rat(), m.rat())
	// Euclidean division by a positive denominator is floor division.
	f := new(big.Int).Div(q.Num(), q.Denom())
	p, err := ratFromBig(new(big.Rat).SetInt(f)).mul(m, intr)
	if err != nil {
		return Rational{}, err
	}
	return r.sub(p, intr)
}

// Closed forms, keyed by the coefficient of π reduced by the period.
var (
	sinPiTable = map[string]Rational{
		"0":    ratInt(0),
		"1/6":  ratHalf,
		"1/2":  ratInt(1),
		"5/6":  ratHalf,
		"1":    ratInt(0),
		"7/6":  ratHalf.negate(),
		"3/2":  ratInt(-1),
		"11/6": ratHalf.negate(),
	}
	tanPiTable = map[string]Rational{
		"0":   ratInt(0),
		"1/4": ratInt(1),
		"3/4": ratInt(-1),
	}
	asinTable = map[string]Rational{
		"0":    ratInt(0),
		"1/2":  ratSixth,
		"-1/2": ratSixth.negate(),
		"1":    ratHalf,
		"-1":   ratHalf.negate(),
	}
	acosTable = map[string]Rational{
		"1":    ratInt(0),
		"1/2":  ratThird,
		"0":    ratHalf,
		"-1/2": ratFrac(2, 3),
		"-1":   ratInt(1),
	}
	atanTable = map[string]Rational{
		"0":  ratInt(0),
		"1":  ratFrac(1, 4),
		"-1": ratFrac(-1, 4),
	}
)

// floatFunc lifts a float function to an approximate real function.
func floatFunc(x Real, f func(*big.Float, Interrupt) (*big.Float, error), intr Interrupt) (Exact[Real], error) {
	r, err := f(x.float(), intr)
	if err != nil {
		return Exact[Real]{}, err
	}
	return approx(realFloat(r)), nil
}

func realSin(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	if x.sym == symPi {
		m, err := ratMod(x.coef, ratInt(2), intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		if v, ok := sinPiTable[m.String()]; ok {
			return exactly(realRat(v)), nil
		}
	}
	return floatFunc(x, floatSin, intr)
}

func realCos(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(realInt(1)), nil
	}
	if x.sym == symPi {
		c, err := x.coef.add(ratHalf, intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		return realSin(piTimes(c), intr)
	}
	return floatFunc(x, floatCos, intr)
}

func realTan(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	if x.sym == symPi {
		m, err := ratMod(x.coef, ratInt(1), intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		if m.cmp(ratHalf) == 0 {
			return Exact[Real]{}, &DomainError{X: x.String(), Func: "tan"}
		}
		if v, ok := tanPiTable[m.String()]; ok {
			return exactly(realRat(v)), nil
		}
	}
	f := x.float()
	s, err := floatSin(f, intr)
	if err != nil {
		return Exact[Real]{}, err
	}
	c, err := floatCos(f, intr)
	if err != nil {
		return Exact[Real]{}, err
	}
	if c.Sign() == 0 {
		return Exact[Real]{}, &DomainError{X: x.String(), Func: "tan"}
	}
	return approx(realFloat(s.Quo(s, c))), nil
}

// inverseTrig evaluates an inverse trigonometric function, using its table of
// exact results where possible.
func inverseTrig(x Real, table map[string]Rational, f func(*big.Float, Interrupt) (*big.Float, error), intr Interrupt) (Exact[Real], error) {
	if x.isRational() {
		if v, ok := table[x.coef.String()]; ok {
			return exactly(piTimes(v)), nil
		}
	}
	return floatFunc(x, f, intr)
}

func realAsin(x Real, intr Interrupt) (Exact[Real], error) {
	return inverseTrig(x, asinTable, floatAsin, intr)
}

func realAcos(x Real, intr Interrupt) (Exact[Real], error) {
	return inverseTrig(x, acosTable, floatAcos, intr)
}

func realAtan(x Real, intr Interrupt) (Exact[Real], error) {
	return inverseTrig(x, atanTable, floatAtan, intr)
}

func realSinh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	return floatFunc(x, floatSinh, intr)
}

func realCosh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(realInt(1)), nil
	}
	return floatFunc(x, floatCosh, intr)
}

func realTanh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	return floatFunc(x, floatTanh, intr)
}

func realAsinh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	return floatFunc(x, floatAsinh, intr)
}

func realAcosh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isRational() && x.coef.isOne() {
		return exactly(realInt(0)), nil
	}
	return floatFunc(x, floatAcosh, intr)
}

func realAtanh(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isZero() {
		return exactly(x), nil
	}
	return floatFunc(x, floatAtanh, intr)
}

func realExp(x Real, intr Interrupt) (Exact[Real], error) {
	switch {
	case x.isZero():
		return exactly(realInt(1)), nil
	case x.isRational() && x.coef.isOne():
		return exactly(Real{coef: ratInt(1), sym: symE}), nil
	}
	return floatFunc(x, floatExp, intr)
}

// realLn computes the natural logarithm of x > 0.
func realLn(x Real, intr Interrupt) (Exact[Real], error) {
	switch {
	case x.isRational() && x.coef.isOne():
		return exactly(realInt(0)), nil
	case x.sym == symE && x.coef.isOne():
		return exactly(realInt(1)), nil
	}
	return floatFunc(x, floatLog, intr)
}

// exactLog returns k if x = b^k for an integer k.
func exactLog(x Rational, b int64, intr Interrupt) (int64, bool, error) {
	if x.sign() <= 0 {
		return 0, false, nil
	}
	n, neg := x.num, false
	switch {
	case x.isInt():
	case n.isOne():
		n, neg = x.denom(), true
	default:
		return 0, false, nil
	}
	if n.isOne() {
		return 0, true, nil
	}
	// If n = b^k, then k log2 b lies in [bitLen-1, bitLen). Start just below
	// the estimate and step up.
	k := int64(float64(n.bitLen()-1)/math.Log2(float64(b))) - 1
	if k < 0 {
		k = 0
	}
	base := uintOf(uint64(b))
	p, err := base.pow(uint64(k), intr)
	if err != nil {
		return 0, false, err
	}
	for p.cmp(n) < 0 {
		if err := check(intr); err != nil {
			return 0, false, err
		}
		p = p.mul(base)
		k++
	}
	if p.cmp(n) != 0 {
		return 0, false, nil
	}
	if neg {
		k = -k
	}
	return k, true, nil
}

// logBase computes the logarithm of z in an integer base.
func (z Complex) logBase(b int64, intr Interrupt) (Exact[Complex], error) {
	if x, ok := z.realRational(); ok {
		k, ok, err := exactLog(x, b, intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		if ok {
			return exactly(complexReal(realInt(k))), nil
		}
	}
	l, err := z.ln(intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	lb, err := realLn(realInt(b), intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	r, err := mapExact2(l, fromReal(lb), func(l, lb Complex) (Exact[Complex], error) { return l.div(lb, intr) })
	return r.makeApprox(), err
}

func (z Complex) sin(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realSin(z.re, intr)
		return fromReal(r), err
	}
	// sin(a+bi) = sin a cosh b + i cos a sinh b
	return z.trigParts(realSin, realCosh, realCos, realSinh, false, intr)
}

func (z Complex) cos(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realCos(z.re, intr)
		return fromReal(r), err
	}
	// cos(a+bi) = cos a cosh b - i sin a sinh b
	return z.trigParts(realCos, realCosh, realSin, realSinh, true, intr)
}

func (z Complex) tan(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realTan(z.re, intr)
		return fromReal(r), err
	}
	return z.ratio(Complex.sin, Complex.cos, intr)
}

func (z Complex) sinh(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realSinh(z.re, intr)
		return fromReal(r), err
	}
	// sinh(a+bi) = sinh a cos b + i cosh a sin b
	return z.trigParts(realSinh, realCos, realCosh, realSin, false, intr)
}

func (z Complex) cosh(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realCosh(z.re, intr)
		return fromReal(r), err
	}
	// cosh(a+bi) = cosh a cos b + i sinh a sin b
	return z.trigParts(realCosh, realCos, realSinh, realSin, false, intr)
}

func (z Complex) tanh(intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := realTanh(z.re, intr)
		return fromReal(r), err
	}
	return z.ratio(Complex.sinh, Complex.cosh, intr)
}

type realFunc func(Real, Interrupt) (Exact[Real], error)

// trigParts computes f(a)g(b) ± i h(a)k(b) for z = a+bi.
func (z Complex) trigParts(f, g, h, k realFunc, negIm bool, intr Interrupt) (Exact[Complex], error) {
	var v [4]Exact[Real]
	for i, c := range []struct {
		fn realFunc
		x  Real
	}{{f, z.re}, {g, z.im}, {h, z.re}, {k, z.im}} {
		r, err := c.fn(c.x, intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		v[i] = r
	}
	re, err := eMul(v[0], v[1], intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	im, err := eMul(v[2], v[3], intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	if negIm {
		im.Value = im.Value.negate()
	}
	return pair(re, im), nil
}

func (z Complex) ratio(f, g func(Complex, Interrupt) (Exact[Complex], error), intr Interrupt) (Exact[Complex], error) {
	n, err := f(z, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	d, err := g(z, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return mapExact2(n, d, func(n, d Complex) (Exact[Complex], error) { return n.div(d, intr) })
}

// realOnly applies a function that is only defined for real arguments.
func (z Complex) realOnly(name string, f realFunc, intr Interrupt) (Exact[Complex], error) {
	if !z.isReal() {
		return Exact[Complex]{}, &DomainError{X: z.String(), Func: name}
	}
	r, err := f(z.re, intr)
	return fromReal(r), err
}

// String renders z exactly, e.g. "1/2 + 3i".
func (z Complex) String() string {
	if z.isReal() {
		return z.re.String()
	}
	im := z.im.abs().String() + "i"
	if z.im.abs().isRational() && z.im.coef.isOne() {
		im = "i"
	}
	if z.re.isZero() {
		if z.im.sign() < 0 {
			return "-" + im
		}
		return im
	}
	if z.im.sign() < 0 {
		return z.re.String() + " - " + im
	}
	return z.re.String() + " + " + im
}
