package calc

import (
	"strings"
)

// Value is anything an expression can evaluate to. It is one of Number,
// BuiltIn, FormattingStyle, Dp, Base, *Closure, or VersionMarker.
type Value interface {
	isValue()
}

// BuiltIn is a built-in function, usable as a value before it is applied.
type BuiltIn uint8

const (
	fnApprox BuiltIn = iota
	fnAbs
	fnSin
	fnCos
	fnTan
	fnAsin
	fnAcos
	fnAtan
	fnSinh
	fnCosh
	fnTanh
	fnAsinh
	fnAcosh
	fnAtanh
	fnLn
	fnLog2
	fnLog10
	fnBase
)

var builtinNames = [...]string{
	fnApprox: "approximately",
	fnAbs:    "abs",
	fnSin:    "sin",
	fnCos:    "cos",
	fnTan:    "tan",
	fnAsin:   "asin",
	fnAcos:   "acos",
	fnAtan:   "atan",
	fnSinh:   "sinh",
	fnCosh:   "cosh",
	fnTanh:   "tanh",
	fnAsinh:  "asinh",
	fnAcosh:  "acosh",
	fnAtanh:  "atanh",
	fnLn:     "ln",
	fnLog2:   "log2",
	fnLog10:  "log10",
	fnBase:   "base",
}

func (BuiltIn) isValue() {}

func (f BuiltIn) String() string {
	return builtinNames[f]
}

var inverses = map[BuiltIn]BuiltIn{
	fnSin:   fnAsin,
	fnCos:   fnAcos,
	fnTan:   fnAtan,
	fnAsin:  fnSin,
	fnAcos:  fnCos,
	fnAtan:  fnTan,
	fnSinh:  fnAsinh,
	fnCosh:  fnAcosh,
	fnTanh:  fnAtanh,
	fnAsinh: fnSinh,
	fnAcosh: fnCosh,
	fnAtanh: fnTanh,
}

// Invert returns the inverse of a trigonometric or hyperbolic function. It
// fails with InvertError for any other function.
func (f BuiltIn) Invert() (BuiltIn, error) {
	g, ok := inverses[f]
	if !ok {
		return 0, &InvertError{Func: f.String()}
	}
	return g, nil
}

// call applies the function to a number.
func (f BuiltIn) call(x Number, intr Interrupt) (Value, error) {
	switch f {
	case fnApprox:
		return x.makeApprox(), nil
	case fnAbs:
		return x.abs(intr)
	case fnSin:
		return x.apply1(intr, Complex.sin)
	case fnCos:
		return x.apply1(intr, Complex.cos)
	case fnTan:
		return x.apply1(intr, Complex.tan)
	case fnAsin:
		return x.apply1(intr, realOnly("asin", realAsin))
	case fnAcos:
		return x.apply1(intr, realOnly("acos", realAcos))
	case fnAtan:
		return x.apply1(intr, realOnly("atan", realAtan))
	case fnSinh:
		return x.apply1(intr, Complex.sinh)
	case fnCosh:
		return x.apply1(intr, Complex.cosh)
	case fnTanh:
		return x.apply1(intr, Complex.tanh)
	case fnAsinh:
		return x.apply1(intr, realOnly("asinh", realAsinh))
	case fnAcosh:
		return x.apply1(intr, realOnly("acosh", realAcosh))
	case fnAtanh:
		return x.apply1(intr, realOnly("atanh", realAtanh))
	case fnLn:
		return x.apply1(intr, Complex.ln)
	case fnLog2:
		return x.apply1(intr, func(z Complex, intr Interrupt) (Exact[Complex], error) { return z.logBase(2, intr) })
	case fnLog10:
		return x.apply1(intr, func(z Complex, intr Interrupt) (Exact[Complex], error) { return z.logBase(10, intr) })
	case fnBase:
		n, err := x.toUint64(intr)
		if err != nil {
			return nil, err
		}
		return NewBase(n)
	default:
		panic("calc: invalid builtin " + f.String())
	}
}

func realOnly(name string, f realFunc) func(Complex, Interrupt) (Exact[Complex], error) {
	return func(z Complex, intr Interrupt) (Exact[Complex], error) {
		return z.realOnly(name, f, intr)
	}
}

// Dp is the marker that turns a number of places into a decimal style, as in
// "5 dp".
type Dp struct{}

func (Dp) isValue() {}

// VersionMarker is the value of the name "version".
type VersionMarker struct{}

func (VersionMarker) isValue() {}

func (Base) isValue() {}

// Closure is a function of one parameter. It evaluates its body in a child of
// the scope it was created in, with the parameter bound to the argument.
type Closure struct {
	param string
	body  *node
	scope *Scope
}

func (*Closure) isValue() {}

// FormatValue renders a value. The nil Value, as from looking up an undefined
// name, renders as the empty string.
func FormatValue(v Value, intr Interrupt) (string, error) {
	switch v := v.(type) {
	case nil:
		return "", nil
	case Number:
		s, _, err := v.format(intr)
		return s, err
	case BuiltIn:
		return v.String(), nil
	case FormattingStyle:
		return v.String(), nil
	case Dp:
		return "dp", nil
	case Base:
		return v.String(), nil
	case *Closure:
		var b strings.Builder
		if strings.Contains(v.param, ".") {
			b.WriteString(v.param)
			b.WriteByte(':')
		} else {
			b.WriteByte('\\')
			b.WriteString(v.param)
			b.WriteByte('.')
		}
		v.body.source(&b)
		return b.String(), nil
	case VersionMarker:
		return GetVersion(), nil
	default:
		panic("calc: invalid value")
	}
}

// valueString renders a value in expressions. Numbers that cannot be rendered
// in their own style use the automatic style.
func valueString(v Value) string {
	if n, ok := v.(Number); ok {
		s, err := n.render(AutoStyle, n.base, nil)
		if err != nil {
			return "?"
		}
		return s
	}
	s, _ := FormatValue(v, nil)
	return s
}

type applyMulHandling uint8

const (
	// onlyApply fails when the receiver is a number.
	onlyApply applyMulHandling = iota
	// both multiplies when the receiver is a number.
	both
)

// apply applies v to the unevaluated argument arg.
func (ev *evaluator) apply(v Value, arg *node, h applyMulHandling, s *Scope) (Value, error) {
	switch v := v.(type) {
	case Number:
		x, err := arg.eval(ev, s)
		if err != nil {
			return nil, err
		}
		if _, ok := x.(Dp); ok {
			n, err := v.toUint64(ev.intr)
			if err != nil {
				return nil, err
			}
			return decimalStyle(n)
		}
		if h == onlyApply {
			str, err := FormatValue(v, ev.intr)
			if err != nil {
				return nil, err
			}
			return nil, &NotFunctionError{Value: str, Number: true}
		}
		return ev.lift1(x, s, func(x Number) (Value, error) { return v.mul(x, ev.intr) }, func(n *node) *node {
			return &node{kind: nodeMul, left: valueNode(v), right: n}
		})
	case BuiltIn:
		x, err := arg.eval(ev, s)
		if err != nil {
			return nil, err
		}
		n, err := ev.expectNum(x)
		if err != nil {
			return nil, err
		}
		return v.call(n, ev.intr)
	case *Closure:
		return v.body.eval(ev, v.scope.nested(v.param, arg, s))
	default:
		str, err := FormatValue(v, ev.intr)
		if err != nil {
			return nil, err
		}
		return nil, &NotFunctionError{Value: str}
	}
}

func (ev *evaluator) expectNum(v Value) (Number, error) {
	n, ok := v.(Number)
	if !ok {
		str, err := FormatValue(v, ev.intr)
		if err != nil {
			return Number{}, err
		}
		return Number{}, &TypeError{Want: "a number", Got: str}
	}
	return n, nil
}

func valueNode(v Value) *node {
	return &node{kind: nodeValue, val: v}
}

// wrap creates the function \x.lazy(f x).
func (f BuiltIn) wrap(lazy func(*node) *node, s *Scope) *Closure {
	call := &node{kind: nodeCall, left: valueNode(f), right: &node{kind: nodeName, name: "x"}}
	return &Closure{param: "x", body: lazy(call), scope: s}
}

// lift1 applies f to a number. Applied to a function, it instead creates a
// function that applies f lazily to that function's result.
func (ev *evaluator) lift1(v Value, s *Scope, f func(Number) (Value, error), lazy func(*node) *node) (Value, error) {
	switch v := v.(type) {
	case Number:
		return f(v)
	case *Closure:
		return &Closure{param: v.param, body: lazy(v.body), scope: v.scope}, nil
	case BuiltIn:
		return v.wrap(lazy, s), nil
	default:
		_, err := ev.expectNum(v)
		return nil, err
	}
}

// lift2 combines two numbers with f. When one operand is a function and the
// other a number, it instead creates a function computing the operation
// lazily with the function's result.
func (ev *evaluator) lift2(a, b Value, s *Scope, kind nodeKind, f func(Number, Number) (Value, error)) (Value, error) {
	an, aok := a.(Number)
	bn, bok := b.(Number)
	switch {
	case aok && bok:
		return f(an, bn)
	case bok:
		return ev.lift1(a, s, nil, func(n *node) *node {
			return &node{kind: kind, left: n, right: valueNode(bn)}
		})
	case aok:
		return ev.lift1(b, s, nil, func(n *node) *node {
			return &node{kind: kind, left: valueNode(an), right: n}
		})
	default:
		if _, err := ev.expectNum(a); err != nil {
			return nil, err
		}
		_, err := ev.expectNum(b)
		return nil, err
	}
}
