package calc

import (
	"math"
	"math/big"
	"strings"
)

// bigUint is an immutable arbitrary-precision non-negative integer. The zero
// value is 0. Operations always allocate their results, so values may be
// shared freely.
type bigUint struct {
	v *big.Int
}

var bigOne = big.NewInt(1)

func uintOf(x uint64) bigUint {
	if x == 0 {
		return bigUint{}
	}
	return bigUint{new(big.Int).SetUint64(x)}
}

// uintFrom wraps the absolute value of x. x is not retained.
func uintFrom(x *big.Int) bigUint {
	if x.Sign() == 0 {
		return bigUint{}
	}
	return bigUint{new(big.Int).Abs(x)}
}

// parseUint parses a string of digits in the given base. It does not accept
// signs, prefixes, or underscores.
func parseUint(s string, base int) (bigUint, bool) {
	if s == "" || strings.ContainsAny(s, "+-_") {
		return bigUint{}, false
	}
	v, ok := new(big.Int).SetString(s, base)
	if !ok {
		return bigUint{}, false
	}
	return uintFrom(v), true
}

// big returns the value as a *big.Int which must not be modified.
func (a bigUint) big() *big.Int {
	if a.v == nil {
		return new(big.Int)
	}
	return a.v
}

func (a bigUint) isZero() bool {
	return a.v == nil || a.v.Sign() == 0
}

func (a bigUint) isOne() bool {
	return a.v != nil && a.v.Cmp(bigOne) == 0
}

func (a bigUint) cmp(b bigUint) int {
	return a.big().Cmp(b.big())
}

func (a bigUint) bitLen() int {
	return a.big().BitLen()
}

func (a bigUint) add(b bigUint) bigUint {
	return uintFrom(new(big.Int).Add(a.big(), b.big()))
}

// sub returns a-b. There is no negative representation, so it fails with
// UnderflowError if b > a.
func (a bigUint) sub(b bigUint) (bigUint, error) {
	if a.cmp(b) < 0 {
		return bigUint{}, &UnderflowError{}
	}
	return uintFrom(new(big.Int).Sub(a.big(), b.big())), nil
}

func (a bigUint) mul(b bigUint) bigUint {
	if a.isZero() || b.isZero() {
		return bigUint{}
	}
	return uintFrom(new(big.Int).Mul(a.big(), b.big()))
}

// divRem returns the quotient and remainder of a/b.
func (a bigUint) divRem(b bigUint) (q, r bigUint, err error) {
	if b.isZero() {
		return bigUint{}, bigUint{}, &DivideByZeroError{}
	}
	var qq, rr big.Int
	qq.QuoRem(a.big(), b.big(), &rr)
	return uintFrom(&qq), uintFrom(&rr), nil
}

// pow computes a^n by repeated squaring, polling intr at each step.
func (a bigUint) pow(n uint64, intr Interrupt) (bigUint, error) {
	r := big.NewInt(1)
	b := new(big.Int).Set(a.big())
	for n > 0 {
		if err := check(intr); err != nil {
			return bigUint{}, err
		}
		if n&1 != 0 {
			r.Mul(r, b)
		}
		n >>= 1
		if n > 0 {
			b.Mul(b, b)
		}
	}
	return uintFrom(r), nil
}

// gcd computes the greatest common divisor of a and b by Euclid's algorithm.
// gcd(0, 0) is 0.
func (a bigUint) gcd(b bigUint, intr Interrupt) (bigUint, error) {
	x := new(big.Int).Set(a.big())
	y := new(big.Int).Set(b.big())
	for y.Sign() != 0 {
		if err := check(intr); err != nil {
			return bigUint{}, err
		}
		x.Rem(x, y)
		x, y = y, x
	}
	return uintFrom(x), nil
}

// root computes the integer n-th root of a, rounded down, and reports
// whether it is exact.
func (a bigUint) root(n uint64, intr Interrupt) (bigUint, bool, error) {
	if n == 0 {
		return bigUint{}, false, ErrZeroToThePowerOfZero
	}
	if n == 1 || a.isZero() || a.isOne() {
		return a, true, nil
	}
	if n >= uint64(a.bitLen()) {
		// 2^n > a, so the root is 1 and a is not 1.
		return uintOf(1), false, nil
	}
	k := new(big.Int).SetUint64(n)
	k1 := new(big.Int).SetUint64(n - 1)
	// Start above the root so that Newton's iteration decreases monotonically.
	x := new(big.Int).Lsh(bigOne, uint(a.bitLen())/uint(n)+1)
	var y, t big.Int
	for {
		if err := check(intr); err != nil {
			return bigUint{}, false, err
		}
		t.Exp(x, k1, nil)
		y.Quo(a.big(), &t)
		t.Mul(x, k1)
		y.Add(&y, &t)
		y.Quo(&y, k)
		if y.Cmp(x) >= 0 {
			break
		}
		x.Set(&y)
	}
	t.Exp(x, k, nil)
	return uintFrom(x), t.Cmp(a.big()) == 0, nil
}

// toUint64 narrows a to a uint64.
func (a bigUint) toUint64() (uint64, error) {
	v := a.big()
	if !v.IsUint64() {
		return 0, &ValueTooLargeError{Max: math.MaxUint64}
	}
	return v.Uint64(), nil
}

const digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// format renders a in the given base one digit at a time, polling intr at
// each digit.
func (a bigUint) format(base int, intr Interrupt) (string, error) {
	if a.isZero() {
		return "0", nil
	}
	var buf []byte
	b := big.NewInt(int64(base))
	x := new(big.Int).Set(a.big())
	var d big.Int
	for x.Sign() != 0 {
		if err := check(intr); err != nil {
			return "", err
		}
		x.QuoRem(x, b, &d)
		buf = append(buf, digits[d.Int64()])
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf), nil
}
