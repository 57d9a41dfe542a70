package calc

import (
	"math/big"
	"sync"

	"github.com/zephyrtronium/bigfloat"
)

// workingPrec is the precision in bits of approximate calculations.
const workingPrec = 128

// guardPrec is the extra precision used inside iterations.
const guardPrec = workingPrec + 32

func newFloat() *big.Float {
	return new(big.Float).SetPrec(workingPrec)
}

func guardFloat() *big.Float {
	return new(big.Float).SetPrec(guardPrec)
}

var consts struct {
	once sync.Once
	pi   *big.Float
	e    *big.Float
}

func loadConsts() {
	consts.once.Do(func() {
		consts.pi = bigfloat.Pi(guardFloat())
		consts.e = bigfloat.Exp(guardFloat(), guardFloat().SetInt64(1))
	})
}

// floatPi returns π at guard precision.
func floatPi() *big.Float {
	loadConsts()
	return guardFloat().Set(consts.pi)
}

// floatE returns e at guard precision.
func floatE() *big.Float {
	loadConsts()
	return guardFloat().Set(consts.e)
}

func piPrec(prec uint) *big.Float {
	if prec <= guardPrec {
		return floatPi()
	}
	return bigfloat.Pi(new(big.Float).SetPrec(prec))
}

func floatText(x *big.Float) string {
	return x.Text('g', 10)
}

// maxExpArg bounds arguments to exp so that results stay in big.Float's
// exponent range.
const maxExpArg = 1 << 29

func floatExp(x *big.Float, intr Interrupt) (*big.Float, error) {
	if err := check(intr); err != nil {
		return nil, err
	}
	if x.MantExp(nil) > 29 {
		return nil, &DomainError{X: floatText(x), Func: "exp"}
	}
	x = guardFloat().Set(x)
	z := bigfloat.Exp(guardFloat(), x)
	return z, check(intr)
}

// floatLog computes the natural logarithm of x > 0.
func floatLog(x *big.Float, intr Interrupt) (*big.Float, error) {
	if err := check(intr); err != nil {
		return nil, err
	}
	if x.Sign() <= 0 {
		return nil, &DomainError{X: floatText(x), Func: "ln"}
	}
	x = guardFloat().Set(x)
	z := bigfloat.Log(guardFloat(), x)
	return z, check(intr)
}

// floatPow computes x^y for x > 0.
func floatPow(x, y *big.Float, intr Interrupt) (*big.Float, error) {
	if err := check(intr); err != nil {
		return nil, err
	}
	if x.Sign() <= 0 {
		return nil, &DomainError{X: floatText(x), Func: "^"}
	}
	// Estimate the binary exponent of the result to avoid overflow.
	yf, _ := y.Float64()
	if e := float64(x.MantExp(nil)) * yf; e > maxExpArg || e < -maxExpArg {
		return nil, ErrExponentTooLarge
	}
	x = guardFloat().Set(x)
	y = guardFloat().Set(y)
	z := bigfloat.Pow(guardFloat(), x, y)
	return z, check(intr)
}

func floatSqrt(x *big.Float) (*big.Float, error) {
	if x.Sign() < 0 {
		return nil, &DomainError{X: floatText(x), Func: "sqrt"}
	}
	if x.Sign() == 0 {
		return guardFloat(), nil
	}
	return guardFloat().Sqrt(x), nil
}

// converged reports whether adding term to sum no longer changes it at guard
// precision.
func converged(term, sum *big.Float) bool {
	if term.Sign() == 0 {
		return true
	}
	if sum.Sign() == 0 {
		return false
	}
	return term.MantExp(nil) < sum.MantExp(nil)-int(guardPrec)-2
}

// reduceAngle reduces x into [-π/2, π/2] such that sin is unchanged.
func reduceAngle(x *big.Float, fn string) (*big.Float, error) {
	e := x.MantExp(nil)
	if e > 1<<14 {
		return nil, &DomainError{X: floatText(x), Func: fn}
	}
	prec := uint(guardPrec + 32)
	if e > 0 {
		prec += uint(e)
	}
	pi := piPrec(prec)
	twoPi := new(big.Float).SetPrec(prec).SetMantExp(pi, 1)
	q := new(big.Float).SetPrec(prec).Quo(x, twoPi)
	k, _ := q.Int(nil)
	r := new(big.Float).SetPrec(prec).SetInt(k)
	r.Mul(r, twoPi)
	r.Sub(new(big.Float).SetPrec(prec).Set(x), r)
	// r is now in (-2π, 2π).
	if r.Cmp(pi) > 0 {
		r.Sub(r, twoPi)
	}
	if r.Cmp(new(big.Float).Neg(pi)) < 0 {
		r.Add(r, twoPi)
	}
	halfPi := new(big.Float).SetPrec(prec).SetMantExp(pi, -1)
	switch {
	case r.Cmp(halfPi) > 0:
		r.Sub(pi, r)
	case r.Cmp(new(big.Float).Neg(halfPi)) < 0:
		r.Neg(r.Add(pi, r))
	}
	return guardFloat().Set(r), nil
}

// floatSin computes sin x by its Taylor series after range reduction.
func floatSin(x *big.Float, intr Interrupt) (*big.Float, error) {
	if x.Sign() == 0 {
		return guardFloat(), nil
	}
	x, err := reduceAngle(x, "sin")
	if err != nil {
		return nil, err
	}
	x2 := guardFloat().Mul(x, x)
	term := guardFloat().Set(x)
	sum := guardFloat().Set(x)
	var d big.Float
	for k := int64(1); ; k++ {
		if err := check(intr); err != nil {
			return nil, err
		}
		term.Mul(term, x2)
		term.Quo(term, d.SetInt64((2*k)*(2*k+1)))
		term.Neg(term)
		if converged(term, sum) {
			break
		}
		sum.Add(sum, term)
	}
	return sum, nil
}

// floatCos computes cos x as sin(x + π/2).
func floatCos(x *big.Float, intr Interrupt) (*big.Float, error) {
	y := guardFloat().SetMantExp(floatPi(), -1)
	return floatSin(y.Add(y, x), intr)
}

// floatAtan computes atan x by argument halving and its Taylor series.
func floatAtan(x *big.Float, intr Interrupt) (*big.Float, error) {
	if x.Sign() == 0 {
		return guardFloat(), nil
	}
	neg := x.Sign() < 0
	ax := guardFloat().Abs(x)
	one := guardFloat().SetInt64(1)
	inv := ax.Cmp(one) > 0
	if inv {
		ax.Quo(one, ax)
	}
	// atan(x) = 2 atan(x / (1 + sqrt(1 + x²)))
	const halvings = 3
	for i := 0; i < halvings; i++ {
		t := guardFloat().Mul(ax, ax)
		t.Add(t, one)
		t.Sqrt(t)
		t.Add(t, one)
		ax.Quo(ax, t)
	}
	x2 := guardFloat().Mul(ax, ax)
	pow := guardFloat().Set(ax)
	sum := guardFloat().Set(ax)
	var term, d big.Float
	term.SetPrec(guardPrec)
	for k := int64(1); ; k++ {
		if err := check(intr); err != nil {
			return nil, err
		}
		pow.Mul(pow, x2)
		pow.Neg(pow)
		term.Quo(pow, d.SetInt64(2*k+1))
		if converged(&term, sum) {
			break
		}
		sum.Add(sum, &term)
	}
	sum.SetMantExp(sum, halvings)
	if inv {
		sum.Sub(guardFloat().SetMantExp(floatPi(), -1), sum)
	}
	if neg {
		sum.Neg(sum)
	}
	return sum, nil
}

// floatAsin computes asin x for |x| <= 1.
func floatAsin(x *big.Float, intr Interrupt) (*big.Float, error) {
	one := guardFloat().SetInt64(1)
	ax := guardFloat().Abs(x)
	switch ax.Cmp(one) {
	case 1:
		return nil, &DomainError{X: floatText(x), Func: "asin"}
	case 0:
		r := guardFloat().SetMantExp(floatPi(), -1)
		if x.Sign() < 0 {
			r.Neg(r)
		}
		return r, nil
	}
	// asin x = atan(x / sqrt(1 - x²))
	t := guardFloat().Mul(x, x)
	t.Sub(one, t)
	t.Sqrt(t)
	return floatAtan(t.Quo(x, t), intr)
}

// floatAcos computes acos x = π/2 - asin x for |x| <= 1.
func floatAcos(x *big.Float, intr Interrupt) (*big.Float, error) {
	if guardFloat().Abs(x).Cmp(big.NewFloat(1)) > 0 {
		return nil, &DomainError{X: floatText(x), Func: "acos"}
	}
	s, err := floatAsin(x, intr)
	if err != nil {
		return nil, err
	}
	r := guardFloat().SetMantExp(floatPi(), -1)
	return r.Sub(r, s), nil
}

// expPair computes e^x and e^-x.
func expPair(x *big.Float, intr Interrupt) (*big.Float, *big.Float, error) {
	p, err := floatExp(x, intr)
	if err != nil {
		return nil, nil, err
	}
	m := guardFloat().Quo(guardFloat().SetInt64(1), p)
	return p, m, nil
}

func floatSinh(x *big.Float, intr Interrupt) (*big.Float, error) {
	p, m, err := expPair(x, intr)
	if err != nil {
		return nil, err
	}
	r := guardFloat().Sub(p, m)
	return r.SetMantExp(r, -1), nil
}

func floatCosh(x *big.Float, intr Interrupt) (*big.Float, error) {
	p, m, err := expPair(x, intr)
	if err != nil {
		return nil, err
	}
	r := guardFloat().Add(p, m)
	return r.SetMantExp(r, -1), nil
}

func floatTanh(x *big.Float, intr Interrupt) (*big.Float, error) {
	p, m, err := expPair(x, intr)
	if err != nil {
		return nil, err
	}
	n := guardFloat().Sub(p, m)
	return n.Quo(n, guardFloat().Add(p, m)), nil
}

// floatAsinh computes asinh x = ln(x + sqrt(x² + 1)).
func floatAsinh(x *big.Float, intr Interrupt) (*big.Float, error) {
	ax := guardFloat().Abs(x)
	t := guardFloat().Mul(ax, ax)
	t.Add(t, big.NewFloat(1))
	t.Sqrt(t)
	r, err := floatLog(t.Add(t, ax), intr)
	if err != nil {
		return nil, err
	}
	if x.Sign() < 0 {
		r.Neg(r)
	}
	return r, nil
}

// floatAcosh computes acosh x = ln(x + sqrt(x² - 1)) for x >= 1.
func floatAcosh(x *big.Float, intr Interrupt) (*big.Float, error) {
	if x.Cmp(big.NewFloat(1)) < 0 {
		return nil, &DomainError{X: floatText(x), Func: "acosh"}
	}
	t := guardFloat().Mul(x, x)
	t.Sub(t, big.NewFloat(1))
	t.Sqrt(t)
	return floatLog(t.Add(t, x), intr)
}

// floatAtanh computes atanh x = ln((1 + x) / (1 - x)) / 2 for |x| < 1.
func floatAtanh(x *big.Float, intr Interrupt) (*big.Float, error) {
	one := guardFloat().SetInt64(1)
	if guardFloat().Abs(x).Cmp(one) >= 0 {
		return nil, &DomainError{X: floatText(x), Func: "atanh"}
	}
	n := guardFloat().Add(one, x)
	d := guardFloat().Sub(one, x)
	r, err := floatLog(n.Quo(n, d), intr)
	if err != nil {
		return nil, err
	}
	return r.SetMantExp(r, -1), nil
}
