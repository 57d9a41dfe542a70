package calc

// Complex is a complex number with real and imaginary parts. Purely real
// values have an exact zero imaginary part.
type Complex struct {
	re, im Real
}

func complexReal(x Real) Complex {
	return Complex{re: x}
}

// imagUnit is i.
var imagUnit = Complex{im: realInt(1)}

func (z Complex) isReal() bool {
	return z.im.isZero()
}

func (z Complex) isZero() bool {
	return z.re.isZero() && z.im.isZero()
}

// realRational returns the value of z if it is a plain rational number.
func (z Complex) realRational() (Rational, bool) {
	if !z.isReal() || !z.re.isRational() {
		return Rational{}, false
	}
	return z.re.coef, true
}

// pair combines exact-tracked parts into an exact-tracked complex number.
func pair(re, im Exact[Real]) Exact[Complex] {
	return Exact[Complex]{Value: Complex{re: re.Value, im: im.Value}, Exact: re.Exact && im.Exact}
}

func fromReal(x Exact[Real]) Exact[Complex] {
	return Exact[Complex]{Value: complexReal(x.Value), Exact: x.Exact}
}

func eAdd(a, b Exact[Real], intr Interrupt) (Exact[Real], error) {
	return mapExact2(a, b, func(x, y Real) (Exact[Real], error) { return x.add(y, intr) })
}

func eSub(a, b Exact[Real], intr Interrupt) (Exact[Real], error) {
	return mapExact2(a, b, func(x, y Real) (Exact[Real], error) { return x.sub(y, intr) })
}

func eMul(a, b Exact[Real], intr Interrupt) (Exact[Real], error) {
	return mapExact2(a, b, func(x, y Real) (Exact[Real], error) { return x.mul(y, intr) })
}

func (z Complex) negate() Complex {
	return Complex{re: z.re.negate(), im: z.im.negate()}
}

func (z Complex) add(w Complex, intr Interrupt) (Exact[Complex], error) {
	re, err := z.re.add(w.re, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	im, err := z.im.add(w.im, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return pair(re, im), nil
}

func (z Complex) sub(w Complex, intr Interrupt) (Exact[Complex], error) {
	return z.add(w.negate(), intr)
}

func (z Complex) mul(w Complex, intr Interrupt) (Exact[Complex], error) {
	if z.isReal() && w.isReal() {
		re, err := z.re.mul(w.re, intr)
		return fromReal(re), err
	}
	a, b := exactly(z.re), exactly(z.im)
	c, d := exactly(w.re), exactly(w.im)
	ac, err := eMul(a, c, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	bd, err := eMul(b, d, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	ad, err := eMul(a, d, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	bc, err := eMul(b, c, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	re, err := eSub(ac, bd, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	im, err := eAdd(ad, bc, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return pair(re, im), nil
}

func (z Complex) div(w Complex, intr Interrupt) (Exact[Complex], error) {
	if w.isZero() {
		return Exact[Complex]{}, &DivideByZeroError{}
	}
	if w.isReal() {
		re, err := z.re.div(w.re, intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		im, err := z.im.div(w.re, intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		return pair(re, im), nil
	}
	// (a+bi)/(c+di) = ((ac+bd) + (bc-ad)i) / (c²+d²)
	conj := Complex{re: w.re, im: w.im.negate()}
	n, err := z.mul(conj, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	d, err := w.mul(conj, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return mapExact2(n, d, func(n, d Complex) (Exact[Complex], error) {
		return n.div(complexReal(d.re), intr)
	})
}

// abs computes the modulus of z. It is exact for real values and for complex
// values whose squared modulus is a perfect square.
func (z Complex) abs(intr Interrupt) (Exact[Complex], error) {
	switch {
	case z.isReal():
		return exactly(complexReal(z.re.abs())), nil
	case z.re.isZero():
		return exactly(complexReal(z.im.abs())), nil
	}
	a, b := exactly(z.re), exactly(z.im)
	a2, err := eMul(a, a, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	b2, err := eMul(b, b, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	s, err := eAdd(a2, b2, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	r, err := mapExact(s, func(x Real) (Exact[Real], error) { return realSqrt(x, intr) })
	return fromReal(r), err
}

// realSqrt computes the square root of x >= 0.
func realSqrt(x Real, intr Interrupt) (Exact[Real], error) {
	if x.isRational() {
		r, ok, err := x.coef.root(2, intr)
		if err != nil {
			return Exact[Real]{}, err
		}
		if ok {
			return exactly(realRat(r)), nil
		}
	}
	f, err := floatSqrt(x.float())
	if err != nil {
		return Exact[Real]{}, err
	}
	return approx(realFloat(f)), nil
}

// maxComplexPow bounds integer exponents of non-real bases.
const maxComplexPow = 1 << 16

// pow computes z^w.
func (z Complex) pow(w Complex, intr Interrupt) (Exact[Complex], error) {
	if e, ok := w.realRational(); ok {
		if e.isInt() {
			return z.powInt(e, intr)
		}
		if x, ok := z.realRational(); ok {
			return ratPow(x, e, intr)
		}
	}
	if z.isZero() {
		if w.isReal() && w.re.sign() > 0 {
			return exactly(z), nil
		}
		return Exact[Complex]{}, &DomainError{X: "0", Func: "^"}
	}
	if z.isReal() && z.re.sign() > 0 && w.isReal() {
		r, err := floatPow(z.re.float(), w.re.float(), intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		return approx(complexReal(realFloat(r))), nil
	}
	// z^w = exp(w ln z)
	l, err := z.ln(intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	p, err := mapExact(l, func(l Complex) (Exact[Complex], error) { return w.mul(l, intr) })
	if err != nil {
		return Exact[Complex]{}, err
	}
	return mapExact(p, func(p Complex) (Exact[Complex], error) { return p.exp(intr) })
}

// powInt raises z to an integer power.
func (z Complex) powInt(e Rational, intr Interrupt) (Exact[Complex], error) {
	if z.isReal() {
		r, err := z.re.powInt(e, intr)
		return fromReal(r), err
	}
	n, err := e.num.toUint64()
	if err != nil || n > maxComplexPow {
		return Exact[Complex]{}, ErrExponentTooLarge
	}
	r := exactly(complexReal(realInt(1)))
	b := exactly(z)
	for n > 0 {
		if err := check(intr); err != nil {
			return Exact[Complex]{}, err
		}
		if n&1 != 0 {
			r, err = mapExact2(r, b, func(x, y Complex) (Exact[Complex], error) { return x.mul(y, intr) })
			if err != nil {
				return Exact[Complex]{}, err
			}
		}
		n >>= 1
		if n > 0 {
			b, err = mapExact(b, func(x Complex) (Exact[Complex], error) { return x.mul(x, intr) })
			if err != nil {
				return Exact[Complex]{}, err
			}
		}
	}
	if e.neg {
		return mapExact(r, func(x Complex) (Exact[Complex], error) {
			return complexReal(realInt(1)).div(x, intr)
		})
	}
	return r, nil
}

// ratPow computes x^e for rational x and non-integer rational e = p/q. Roots
// are exact when x is a perfect q-th power; even roots of negative numbers
// produce complex results through the polar form.
func ratPow(x, e Rational, intr Interrupt) (Exact[Complex], error) {
	if x.isZero() {
		if e.neg {
			return Exact[Complex]{}, &DivideByZeroError{}
		}
		return exactly(complexReal(realRat(x))), nil
	}
	p := Rational{neg: e.neg, num: e.num, den: uintOf(1)}
	q, err := e.denom().toUint64()
	if err != nil {
		return Exact[Complex]{}, ErrExponentTooLarge
	}
	if !x.neg || q&1 != 0 {
		r, ok, err := x.root(q, intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		if ok {
			v, err := realRat(r).powInt(p, intr)
			return fromReal(v), err
		}
		m, err := floatPow(x.abs().float(guardPrec), e.float(guardPrec), intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		if x.neg && p.num.big().Bit(0) == 1 {
			m.Neg(m)
		}
		return approx(complexReal(realFloat(m))), nil
	}
	// x < 0 and q even: |x|^e · (cos eπ + i sin eπ)
	m, err := ratPow(x.abs(), e, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	theta := piTimes(e)
	c, err := realCos(theta, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	s, err := realSin(theta, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return mapExact2(m, pair(c, s), func(m, u Complex) (Exact[Complex], error) { return m.mul(u, intr) })
}

// exp computes e^z.
func (z Complex) exp(intr Interrupt) (Exact[Complex], error) {
	ea, err := realExp(z.re, intr)
	if err != nil || z.isReal() {
		return fromReal(ea), err
	}
	c, err := realCos(z.im, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	s, err := realSin(z.im, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	re, err := eMul(ea, c, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	im, err := eMul(ea, s, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return pair(re, im), nil
}

// ln computes the principal natural logarithm of z.
func (z Complex) ln(intr Interrupt) (Exact[Complex], error) {
	if z.isZero() {
		return Exact[Complex]{}, &DomainError{X: "0", Func: "ln"}
	}
	if z.isReal() && z.re.sign() > 0 {
		r, err := realLn(z.re, intr)
		return fromReal(r), err
	}
	m, err := z.abs(intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	re, err := mapExact(m, func(m Complex) (Exact[Real], error) { return realLn(m.re, intr) })
	if err != nil {
		return Exact[Complex]{}, err
	}
	im, err := atan2(z.im, z.re, intr)
	if err != nil {
		return Exact[Complex]{}, err
	}
	return pair(re, im), nil
}

// atan2 computes the angle of the point (x, y) in (-π, π].
func atan2(y, x Real, intr Interrupt) (Exact[Real], error) {
	switch {
	case y.isZero() && x.sign() > 0:
		return exactly(realInt(0)), nil
	case y.isZero() && x.sign() < 0:
		return exactly(piTimes(ratInt(1))), nil
	case x.isZero() && y.sign() > 0:
		return exactly(piTimes(ratHalf)), nil
	case x.isZero() && y.sign() < 0:
		return exactly(piTimes(ratHalf.negate())), nil
	}
	q := y.float()
	a, err := floatAtan(q.Quo(q, x.float()), intr)
	if err != nil {
		return Exact[Real]{}, err
	}
	if x.sign() < 0 {
		if y.sign() >= 0 {
			a.Add(a, floatPi())
		} else {
			a.Sub(a, floatPi())
		}
	}
	return approx(realFloat(a)), nil
}
