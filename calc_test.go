package calc_test

import (
	"context"
	"errors"
	"regexp"
	"sync"
	"testing"

	"github.com/zephyrtronium/calc"
)

func TestEvaluate(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		main  string
		other []string
	}{
		{"empty", "", "", nil},
		{"int", "1", "1", nil},
		{"fraction", "1/2 + 1/3", "5/6", []string{"approx. 0.8333333333"}},
		{"quarter", "1/4", "1/4", []string{"0.25"}},
		{"decimal", "1.5", "3/2", []string{"1.5"}},
		{"exponent", "2e3", "2000", nil},
		{"neg", "-3 - 4", "-7", nil},
		{"pow", "2^10", "1024", nil},
		{"negpow", "2^-2", "1/4", []string{"0.25"}},
		{"hexlit", "0xff", "255", nil},
		{"hex", "255 to hex", "0xff", []string{"255"}},
		{"base36", "35 to base 36", "z", []string{"35"}},
		{"pi", "pi", "π", []string{"approx. 3.1415926536"}},
		{"tau", "tau/2", "π", []string{"approx. 3.1415926536"}},
		{"sin0", "2 sin(0)", "0", nil},
		{"sin30", "sin(pi/6)", "1/2", []string{"0.5"}},
		{"cos", "cos pi", "-1", nil},
		{"asin", "sin^-1 (1/2)", "π/6", []string{"approx. 0.5235987756"}},
		{"euler", "e^(i pi)", "-1", nil},
		{"i2", "i^2", "-1", nil},
		{"complex", "1 + 2i", "1 + 2i", nil},
		{"sqrtneg", "sqrt(-4)", "2i", nil},
		{"sqrt", "sqrt 16", "4", nil},
		{"sqrt2", "sqrt 2", "approx. 1.4142135624", nil},
		{"cbrt", "cbrt(-8)", "-2", nil},
		{"abs", "abs(-3)", "3", nil},
		{"ln", "ln(e)", "1", nil},
		{"log10", "log10 1000", "3", nil},
		{"log2", "log2 8", "3", nil},
		{"exp", "exp 0", "1", nil},
		{"approx", "approximately 2", "approx. 2", nil},

		{"kg", "3 kg + 2 kg", "5 kg", nil},
		{"grams", "3 kg + 200 g", "16/5 kg", []string{"3.2 kg"}},
		{"km", "1 km to m", "1000 m", nil},
		{"area", "2 m * 3 m", "6 m^2", nil},
		{"speed", "60 mi/h to km/h", "301752/3125 km / h", []string{"96.56064 km / h"}},
		{"percent", "10%", "10%", nil},
		{"degrees", "180° to rad", "π rad", []string{"approx. 3.1415926536 rad"}},
		{"sindeg", "sin(90°)", "1", nil},
		{"cancel", "2 m / (4 m)", "1/2", []string{"0.5"}},
		{"pidivpi", "pi/pi", "1", nil},
		{"taudivpi", "tau/pi", "2", nil},
		{"halfpi", "(2 pi)/(4 pi)", "1/2", []string{"0.5"}},
		{"edive", "e/e", "1", nil},
		{"pidiv", "pi/2", "π/2", []string{"approx. 1.5707963268"}},

		{"dp", "5 dp", "5 dp", nil},
		{"thirddp", "1/3 to 5 dp", "approx. 0.33333", nil},
		{"pidp", "pi to 5 dp", "approx. 3.14159", nil},
		{"frac", "1/3 as fraction", "1/3", nil},
		{"auto", "auto", "auto", nil},

		{"assign", "x = 3; x^2", "9", nil},
		{"lines", "x = 3\ny = 4\nx y", "12", nil},
		{"func", "f = \\x.x^2; f 3", "9", nil},
		{"call", "f = x:x+1; f(4)", "5", nil},
		{"closure", "\\x.x^2", "\\x.x^2", nil},
		{"lazymul", "2 sin", "\\x.2 * sin(x)", nil},
		{"lazyadd", "sin + 1", "\\x.sin(x) + 1", nil},
		{"lazyapply", "(2 sin) (pi/2)", "2", nil},
		{"juxtapose", "2(3)", "6", nil},
		{"builtin", "sin", "sin", nil},
		{"invert", "sin^-1", "asin", nil},
		{"version", "version", calc.Version, nil},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err != nil {
				t.Fatalf("%q: evaluation error: %v", c.src, err)
			}
			if got := r.MainResult(); got != c.main {
				t.Errorf("%q: want %q, got %q", c.src, c.main, got)
			}
			other := r.OtherInfo()
			if len(other) != len(c.other) {
				t.Fatalf("%q: want other info %q, got %q", c.src, c.other, other)
			}
			for i := range other {
				if other[i] != c.other[i] {
					t.Errorf("%q: want other info %q, got %q", c.src, c.other, other)
				}
			}
		})
	}
}

func TestEvaluateErrors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		err  any
		msg  string
	}{
		{"divzero", "1/0", new(*calc.DivideByZeroError), `^division by zero$`},
		{"zerozero", "0^0", nil, `^zero to the power of zero`},
		{"dimension", "3 kg + 2 m", new(*calc.DimensionError), `^cannot convert from m to kg$`},
		{"unitless", "1 + 2 kg", new(*calc.DimensionError), `^cannot convert from kg to unitless$`},
		{"name", "foo", new(*calc.NameError), `foo`},
		{"notfunc", "x = 2; x(3)", new(*calc.NotFunctionError), `^2 is not a function$`},
		{"invert", "ln^-1", new(*calc.InvertError), `ln`},
		{"tan", "tan(pi/2)", new(*calc.DomainError), `tan`},
		{"dplimit", "5001 dp", new(*calc.ValueTooLargeError), `5000`},
		{"base", "base 37", new(*calc.BaseOutOfRangeError), `37`},
		{"sinkg", "sin(2 kg)", new(*calc.DimensionError), `kg`},
		{"exactfrac", "sqrt 2 to fraction", new(*calc.FormatError), `fraction`},
		{"convert", "1 to sin", new(*calc.TypeError), ``},
		{"parse", "1 +", new(calc.InputError), `missing right operand`},
		{"recursion", "f = \\x.f x; f 1", nil, `recursion`},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			r, err := calc.Evaluate(c.src)
			if err == nil {
				t.Fatalf("%q: no error, result %q", c.src, r.MainResult())
			}
			if calc.IsInterrupted(err) {
				t.Errorf("%q: user error reported as interruption: %v", c.src, err)
			}
			if c.err != nil && !errors.As(err, c.err) {
				t.Errorf("%q: wrong error type %T: %v", c.src, err, err)
			}
			if !regexp.MustCompile(c.msg).MatchString(err.Error()) {
				t.Errorf("%q: error %q does not match %q", c.src, err, c.msg)
			}
		})
	}
}

func TestZeroToTheZero(t *testing.T) {
	_, err := calc.Evaluate("0^0")
	if !errors.Is(err, calc.ErrZeroToThePowerOfZero) {
		t.Errorf("want ErrZeroToThePowerOfZero, got %v", err)
	}
}

func TestRecursionDepth(t *testing.T) {
	_, err := calc.Evaluate("f = \\x.f x; f 1")
	if !errors.Is(err, calc.ErrRecursionDepth) {
		t.Errorf("want ErrRecursionDepth, got %v", err)
	}
}

func TestInterrupt(t *testing.T) {
	var f calc.Flag
	f.Set()
	ctx := calc.NewContext()
	_, err := ctx.Evaluate("1 + 1", &f)
	if !calc.IsInterrupted(err) {
		t.Errorf("want interruption, got %v", err)
	}
	f.Reset()
	r, err := ctx.Evaluate("1 + 1", &f)
	if err != nil {
		t.Fatalf("evaluation after reset failed: %v", err)
	}
	if r.MainResult() != "2" {
		t.Errorf("want 2, got %q", r.MainResult())
	}

	cc, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ctx.Evaluate("2^100", calc.ContextInterrupt(cc))
	if !errors.Is(err, calc.ErrInterrupted) {
		t.Errorf("want ErrInterrupted from cancelled context, got %v", err)
	}
}

// pollCounter counts the polls of an evaluation without interrupting it.
type pollCounter struct{ n int }

func (c *pollCounter) ShouldInterrupt() bool {
	c.n++
	return false
}

// countdown interrupts on the poll after its first n.
type countdown struct{ n int }

func (c *countdown) ShouldInterrupt() bool {
	if c.n <= 0 {
		return true
	}
	c.n--
	return false
}

func TestInterruptDuring(t *testing.T) {
	cases := []string{"sin(1)", "atan(3)", "ln 7", "2^(1/3)", "sqrt 2 * pi", "log10 (10^50)"}
	for _, src := range cases {
		t.Run(src, func(t *testing.T) {
			var c pollCounter
			if _, err := calc.NewContext().Evaluate(src, &c); err != nil {
				t.Fatalf("uninterrupted evaluation failed: %v", err)
			}
			if c.n == 0 {
				t.Fatal("evaluation never polled")
			}
			for k := 0; k < c.n; k++ {
				_, err := calc.NewContext().Evaluate(src, &countdown{n: k})
				if !calc.IsInterrupted(err) {
					t.Fatalf("interrupt at poll %d of %d: want interruption, got %v", k+1, c.n, err)
				}
			}
		})
	}
}

func TestConcurrentClones(t *testing.T) {
	base := calc.NewContext(calc.SetVar("a", "2 kg + 500 g"), calc.SetVar("f", "\\x.x^2 kg + a"))
	var wg sync.WaitGroup
	results := make([]string, 16)
	errs := make([]error, len(results))
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			r, err := base.Clone().Evaluate("a + 1 kg; f 3", calc.NeverInterrupt{})
			if err != nil {
				errs[i] = err
				return
			}
			results[i] = r.MainResult()
		}(i)
	}
	wg.Wait()
	for i, r := range results {
		if errs[i] != nil {
			t.Errorf("clone %d: %v", i, errs[i])
			continue
		}
		if r != "23/2 kg" {
			t.Errorf("clone %d: want 23/2 kg, got %q", i, r)
		}
	}
}

func TestContext(t *testing.T) {
	ctx := calc.NewContext(calc.SetVar("a", "2 kg"))
	eval := func(ctx *calc.Context, src string) string {
		t.Helper()
		r, err := ctx.Evaluate(src, calc.NeverInterrupt{})
		if err != nil {
			t.Fatalf("%q: evaluation error: %v", src, err)
		}
		return r.MainResult()
	}
	if got := eval(ctx, "a + 500 g"); got != "5/2 kg" {
		t.Errorf("a + 500 g: want 5/2 kg, got %q", got)
	}
	eval(ctx, "x = 3")
	if got := eval(ctx, "x + 1"); got != "4" {
		t.Errorf("x + 1: want 4, got %q", got)
	}
	// Rebinding creates a new binding, so functions see the old value.
	eval(ctx, "f = \\y.x y")
	eval(ctx, "x = x + 1")
	if got := eval(ctx, "x"); got != "4" {
		t.Errorf("x after x = x + 1: want 4, got %q", got)
	}
	if got := eval(ctx, "f 2"); got != "6" {
		t.Errorf("f 2: want 6, got %q", got)
	}

	clone := ctx.Clone()
	eval(clone, "x = 10")
	if got := eval(ctx, "x"); got != "4" {
		t.Errorf("assignment in clone changed original: x is %q", got)
	}
	if err := ctx.Set("z", "x^2", calc.NeverInterrupt{}); err != nil {
		t.Fatal(err)
	}
	v, err := ctx.Lookup("z", calc.NeverInterrupt{})
	if err != nil {
		t.Fatal(err)
	}
	s, err := calc.FormatValue(v, calc.NeverInterrupt{})
	if err != nil {
		t.Fatal(err)
	}
	if s != "16" {
		t.Errorf("z: want 16, got %q", s)
	}
	var oe *calc.OperatorError
	if err := ctx.Set("w", "y = 1", calc.NeverInterrupt{}); !errors.As(err, &oe) || oe.Place != calc.PlaceValue {
		t.Errorf("Set with an assignment: want OperatorError in a value, got %v", err)
	}
	v, err = ctx.Lookup("nope", calc.NeverInterrupt{})
	if v != nil || err != nil {
		t.Errorf("lookup of undefined variable gave %v, %v", v, err)
	}
	if s, err := calc.FormatValue(v, calc.NeverInterrupt{}); s != "" || err != nil {
		t.Errorf("formatting an undefined variable gave %q, %v", s, err)
	}
}

func TestContextCallsMultiply(t *testing.T) {
	ctx := calc.NewContext(calc.ParseOptions(calc.CallsMultiply()))
	r, err := ctx.Evaluate("x = 2; x(3)", calc.NeverInterrupt{})
	if err != nil {
		t.Fatal(err)
	}
	if r.MainResult() != "6" {
		t.Errorf("want 6, got %q", r.MainResult())
	}
}

func TestResultValue(t *testing.T) {
	r, err := calc.Evaluate("hex")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := r.Value().(calc.Base); !ok {
		t.Errorf("hex evaluated to %T", r.Value())
	}
	r, err = calc.Evaluate("")
	if err != nil {
		t.Fatal(err)
	}
	if r.Value() != nil {
		t.Errorf("empty input evaluated to %v", r.Value())
	}
}

func TestGetVersion(t *testing.T) {
	if calc.GetVersion() != calc.Version {
		t.Errorf("GetVersion() = %q, Version = %q", calc.GetVersion(), calc.Version)
	}
}
