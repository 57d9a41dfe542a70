package calc

import (
	"testing"
)

func TestExactTrig(t *testing.T) {
	pi := func(n, d int64) Real { return piTimes(ratFrac(n, d)) }
	cases := []struct {
		name string
		f    realFunc
		x    Real
		want string
	}{
		{"sin0", realSin, realInt(0), "0"},
		{"sin30", realSin, pi(1, 6), "1/2"},
		{"sin90", realSin, pi(1, 2), "1"},
		{"sin210", realSin, pi(7, 6), "-1/2"},
		{"sin-90", realSin, pi(-1, 2), "-1"},
		{"sin720", realSin, pi(4, 1), "0"},
		{"cos0", realCos, realInt(0), "1"},
		{"cos60", realCos, pi(1, 3), "1/2"},
		{"cos180", realCos, pi(1, 1), "-1"},
		{"tan45", realTan, pi(1, 4), "1"},
		{"tan135", realTan, pi(3, 4), "-1"},
		{"asin1/2", realAsin, realRat(ratHalf), "π/6"},
		{"acos-1", realAcos, realInt(-1), "π"},
		{"atan1", realAtan, realInt(1), "π/4"},
		{"exp0", realExp, realInt(0), "1"},
		{"exp1", realExp, realInt(1), "e"},
		{"ln1", realLn, realInt(1), "0"},
		{"lne", realLn, Real{coef: ratInt(1), sym: symE}, "1"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.f(c.x, nil)
			if err != nil {
				t.Fatal(err)
			}
			if !r.Exact {
				t.Errorf("result %v is approximate", r.Value)
			}
			if got := r.Value.String(); got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestApproxTrig(t *testing.T) {
	cases := []struct {
		name string
		f    realFunc
		x    Real
		want string
	}{
		{"sin1", realSin, realInt(1), "0.8414709848"},
		{"cos1", realCos, realInt(1), "0.5403023059"},
		{"sin1000", realSin, realInt(1000), "0.8268795405"},
		{"atan2", realAtan, realInt(2), "1.1071487178"},
		{"sinh1", realSinh, realInt(1), "1.1752011936"},
		{"exp2", realExp, realInt(2), "7.3890560989"},
		{"ln2", realLn, realInt(2), "0.6931471806"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := c.f(c.x, nil)
			if err != nil {
				t.Fatal(err)
			}
			if r.Exact {
				t.Errorf("result %v is exact", r.Value)
			}
			got, _, err := r.Value.coef.decimal(10, baseDecimal, nil)
			if err != nil {
				t.Fatal(err)
			}
			if got != c.want {
				t.Errorf("want %s, got %s", c.want, got)
			}
		})
	}
}

func TestTanDomain(t *testing.T) {
	for _, x := range []Real{piTimes(ratHalf), piTimes(ratFrac(3, 2)), piTimes(ratFrac(-1, 2))} {
		if _, err := realTan(x, nil); err == nil {
			t.Errorf("tan %v succeeded", x)
		}
	}
}

func TestExactLog(t *testing.T) {
	cases := []struct {
		x    string
		b    int64
		want int64
		ok   bool
	}{
		{"1", 10, 0, true},
		{"1000", 10, 3, true},
		{"1/100", 10, -2, true},
		{"1024", 2, 10, true},
		{"12", 2, 0, false},
		{"3/8", 2, 0, false},
		{"-8", 2, 0, false},
	}
	for _, c := range cases {
		x, err := parseNumber(c.x)
		if err != nil {
			t.Fatal(err)
		}
		k, ok, err := exactLog(x, c.b, nil)
		if err != nil {
			t.Fatal(err)
		}
		if ok != c.ok || ok && k != c.want {
			t.Errorf("log%d %s: want %d, %t; got %d, %t", c.b, c.x, c.want, c.ok, k, ok)
		}
	}
}

func TestExactLogInterrupt(t *testing.T) {
	x, err := parseNumber("1e3000")
	if err != nil {
		t.Fatal(err)
	}
	var f Flag
	f.Set()
	if _, _, err := exactLog(x, 10, &f); !IsInterrupted(err) {
		t.Errorf("want interruption, got %v", err)
	}
	k, ok, err := exactLog(x, 10, nil)
	if err != nil || !ok || k != 3000 {
		t.Errorf("log10 1e3000: want 3000, true; got %d, %t, %v", k, ok, err)
	}
}
