package calc

import (
	"errors"
	"testing"
)

func rat(t *testing.T, src string) Rational {
	t.Helper()
	r, err := parseNumber(src)
	if err != nil {
		t.Fatalf("parsing %q: %v", src, err)
	}
	return r
}

func TestParseNumber(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"0", "0"},
		{"42", "42"},
		{"1.5", "3/2"},
		{".5", "1/2"},
		{"0.125", "1/8"},
		{"1e3", "1000"},
		{"1e-2", "1/100"},
		{"2.5E+1", "25"},
		{"0xff", "255"},
		{"0o17", "15"},
		{"0b101", "5"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
	}
	for _, c := range cases {
		if got := rat(t, c.src).String(); got != c.want {
			t.Errorf("%q: want %s, got %s", c.src, c.want, got)
		}
	}
	if _, err := parseNumber("1e1000000"); !errors.Is(err, ErrExponentTooLarge) {
		t.Errorf("huge exponent: want ErrExponentTooLarge, got %v", err)
	}
}

func TestRationalNormalized(t *testing.T) {
	cases := []struct {
		neg      bool
		num, den uint64
		want     string
	}{
		{false, 6, 4, "3/2"},
		{true, 6, 4, "-3/2"},
		{true, 0, 5, "0"},
		{false, 10, 5, "2"},
		{false, 7, 1, "7"},
		{true, 21, 14, "-3/2"},
	}
	for _, c := range cases {
		r, err := newRational(c.neg, uintOf(c.num), uintOf(c.den), nil)
		if err != nil {
			t.Errorf("%d/%d: %v", c.num, c.den, err)
			continue
		}
		if got := r.String(); got != c.want {
			t.Errorf("%v %d/%d: want %s, got %s", c.neg, c.num, c.den, c.want, got)
		}
		if r.isZero() && r.neg {
			t.Errorf("%v %d/%d: negative zero", c.neg, c.num, c.den)
		}
	}
	if _, err := newRational(false, uintOf(1), uintOf(0), nil); !errors.As(err, new(*DivideByZeroError)) {
		t.Errorf("zero denominator: want DivideByZeroError, got %v", err)
	}
}

func TestRationalArith(t *testing.T) {
	vals := []string{"0", "1", "-1", "1/2", "-7/3", "22/7", "1e20", "-0.001"}
	for _, a := range vals {
		for _, b := range vals {
			x, y := rat(t, a), rat(t, b)
			s, err := x.add(y, nil)
			if err != nil {
				t.Fatal(err)
			}
			d, err := s.sub(y, nil)
			if err != nil {
				t.Fatal(err)
			}
			if d.cmp(x) != 0 || d.String() != x.String() {
				t.Errorf("(%s + %s) - %s = %s", a, b, b, d)
			}
			if y.isZero() {
				if _, err := x.div(y, nil); !errors.As(err, new(*DivideByZeroError)) {
					t.Errorf("%s / 0: want DivideByZeroError, got %v", a, err)
				}
				continue
			}
			q, err := x.div(y, nil)
			if err != nil {
				t.Fatal(err)
			}
			p, err := q.mul(y, nil)
			if err != nil {
				t.Fatal(err)
			}
			if p.String() != x.String() {
				t.Errorf("(%s / %s) * %s = %s", a, b, b, p)
			}
		}
	}
}

func TestRationalPow(t *testing.T) {
	cases := []struct {
		x, e string
		want string
		err  error
	}{
		{"2", "10", "1024", nil},
		{"2", "-2", "1/4", nil},
		{"-2/3", "3", "-8/27", nil},
		{"-1", "1000001", "-1", nil},
		{"5", "0", "1", nil},
		{"0", "0", "", ErrZeroToThePowerOfZero},
		{"2", "100000000", "", ErrExponentTooLarge},
	}
	for _, c := range cases {
		r, err := rat(t, c.x).pow(rat(t, c.e), nil)
		if c.err != nil {
			if !errors.Is(err, c.err) {
				t.Errorf("%s^%s: want error %v, got %v", c.x, c.e, c.err, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("%s^%s: unexpected error %v", c.x, c.e, err)
			continue
		}
		if got := r.String(); got != c.want {
			t.Errorf("%s^%s: want %s, got %s", c.x, c.e, c.want, got)
		}
	}
	if _, err := rat(t, "0").pow(rat(t, "-1"), nil); !errors.As(err, new(*DivideByZeroError)) {
		t.Errorf("0^-1: want DivideByZeroError, got %v", err)
	}
}

func TestRationalRoot(t *testing.T) {
	cases := []struct {
		x     string
		n     uint64
		want  string
		exact bool
	}{
		{"16", 2, "4", true},
		{"27/8", 3, "3/2", true},
		{"-8", 3, "-2", true},
		{"2", 2, "", false},
		{"-4", 2, "", false},
	}
	for _, c := range cases {
		r, ok, err := rat(t, c.x).root(c.n, nil)
		if err != nil {
			t.Errorf("root %d of %s: %v", c.n, c.x, err)
			continue
		}
		if ok != c.exact {
			t.Errorf("root %d of %s: want exact %t, got %t", c.n, c.x, c.exact, ok)
		}
		if ok && r.String() != c.want {
			t.Errorf("root %d of %s: want %s, got %s", c.n, c.x, c.want, r)
		}
	}
}

func TestRationalDecimal(t *testing.T) {
	cases := []struct {
		x      string
		places int
		base   Base
		want   string
		exact  bool
	}{
		{"2/3", 3, baseDecimal, "0.667", false},
		{"-1/8", 2, baseDecimal, "-0.12", false},
		{"3/8", 2, baseDecimal, "0.38", false},
		{"1/4", 4, baseDecimal, "0.2500", true},
		{"1/2", 0, baseDecimal, "0", false},
		{"5/2", 0, baseDecimal, "2", false},
		{"7/2", 0, baseDecimal, "4", false},
		{"-7/2", 0, baseDecimal, "-4", false},
		{"-1/1000", 2, baseDecimal, "0.00", false},
		{"255/16", 1, baseHex, "0xf.f", true},
		{"1/2", 3, baseBinary, "0b0.100", true},
	}
	for _, c := range cases {
		s, exact, err := rat(t, c.x).decimal(c.places, c.base, nil)
		if err != nil {
			t.Errorf("%s: %v", c.x, err)
			continue
		}
		if s != c.want || exact != c.exact {
			t.Errorf("%s to %d places in %v: want %q (exact %t), got %q (exact %t)", c.x, c.places, c.base, c.want, c.exact, s, exact)
		}
	}
}

func TestKernelsInterrupt(t *testing.T) {
	var f Flag
	f.Set()
	if _, err := uintOf(3).pow(1000, &f); !errors.Is(err, ErrInterrupted) {
		t.Errorf("pow: want ErrInterrupted, got %v", err)
	}
	if _, err := uintOf(12).gcd(uintOf(18), &f); !errors.Is(err, ErrInterrupted) {
		t.Errorf("gcd: want ErrInterrupted, got %v", err)
	}
	if _, err := uintOf(12345).format(10, &f); !errors.Is(err, ErrInterrupted) {
		t.Errorf("format: want ErrInterrupted, got %v", err)
	}
	if _, err := rat(t, "1/3").add(rat(t, "1/6"), &f); !errors.Is(err, ErrInterrupted) {
		t.Errorf("add: want ErrInterrupted, got %v", err)
	}
}

func TestExactness(t *testing.T) {
	one := exactly(ratInt(1))
	inexact := approx(ratInt(2))
	add := func(a, b Rational) (Exact[Rational], error) {
		r, err := a.add(b, nil)
		return exactly(r), err
	}
	cases := []struct {
		name string
		a, b Exact[Rational]
		want bool
	}{
		{"exact", one, one, true},
		{"left", inexact, one, false},
		{"right", one, inexact, false},
		{"both", inexact, inexact, false},
	}
	for _, c := range cases {
		r, err := mapExact2(c.a, c.b, add)
		if err != nil {
			t.Fatal(err)
		}
		if r.Exact != c.want {
			t.Errorf("%s: want exact %t, got %t", c.name, c.want, r.Exact)
		}
	}
	if one.makeApprox().Exact {
		t.Error("makeApprox kept exactness")
	}
}

func TestUintUnderflow(t *testing.T) {
	_, err := uintOf(1).sub(uintOf(2))
	if !errors.As(err, new(*UnderflowError)) {
		t.Errorf("1 - 2: want UnderflowError, got %v", err)
	}
	d, err := uintOf(2).sub(uintOf(1))
	if err != nil || !d.isOne() {
		t.Errorf("2 - 1: want 1, got %v, %v", d.big(), err)
	}
}
