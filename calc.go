package calc

import (
	"strings"
)

// Version is the version of the calculator.
const Version = "1.4.0"

// GetVersion returns the version string shown for the name "version".
func GetVersion() string {
	return Version
}

// Context is a context for evaluating expressions. Variables assigned in one
// evaluation are visible to later ones. It is not safe to use a Context
// concurrently.
type Context struct {
	scope *Scope
	popts []ParseOption
}

// ContextOption is an option used when creating a context.
type ContextOption interface {
	ctxOption()
}

type (
	varopt struct {
		name string
		e    *Expr
	}
	parseopts []ParseOption
)

func (varopt) ctxOption()    {}
func (parseopts) ctxOption() {}

// SetVar defines a variable in the context as the expression src. The
// expression is evaluated lazily, the first time the variable is used.
// SetVar panics if src is not a valid expression.
func SetVar(name, src string) ContextOption {
	e, err := Parse(strings.NewReader(src))
	if err != nil {
		panic("calc: SetVar(" + name + "): " + err.Error())
	}
	if e.n.kind == nodeAssign {
		panic("calc: SetVar(" + name + "): source is an assignment")
	}
	return varopt{name: name, e: e}
}

// ParseOptions sets the options used to parse source text passed to
// Context.Evaluate. The options replace any given previously.
func ParseOptions(opts ...ParseOption) ContextOption {
	return parseopts(opts)
}

// NewContext creates a new evaluation context.
func NewContext(opts ...ContextOption) *Context {
	var ctx Context
	return ctx.Clone(opts...)
}

// Clone creates a copy of a context and applies options to it. Later
// assignments in either context are not visible in the other.
func (ctx *Context) Clone(opts ...ContextOption) *Context {
	n := Context{scope: ctx.scope, popts: ctx.popts}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case varopt:
			n.scope = n.define(opt.name, opt.e.n)
		case parseopts:
			n.popts = append([]ParseOption(nil), opt...)
		default:
			panic("calc: unknown option type")
		}
	}
	return &n
}

// define binds a name to an unevaluated expression in the context's scope.
// Functions are bound in their own scope so that they can call themselves.
func (ctx *Context) define(name string, n *node) *Scope {
	if n.kind == nodeLambda {
		return ctx.scope.recursive(name, n)
	}
	return ctx.scope.nested(name, n, ctx.scope)
}

// Eval evaluates a single statement. An assignment binds the name in the
// context and evaluates to the assigned value.
func (ctx *Context) Eval(e *Expr, intr Interrupt) (Value, error) {
	ev := evaluator{intr: intr}
	if e.n.kind != nodeAssign {
		return e.n.eval(&ev, ctx.scope)
	}
	s := ctx.define(e.n.name, e.n.left)
	v, err := s.b.get(&ev)
	if err != nil {
		return nil, err
	}
	ctx.scope = s
	return v, nil
}

// Set evaluates src immediately and binds the result to name.
func (ctx *Context) Set(name, src string, intr Interrupt) error {
	e, err := Parse(strings.NewReader(src), ctx.popts...)
	if err != nil {
		return err
	}
	if e.n.kind == nodeAssign {
		return &OperatorError{Col: 1, Operator: "=", Place: PlaceValue}
	}
	v, err := ctx.Eval(e, intr)
	if err != nil {
		return err
	}
	ctx.scope = ctx.scope.bind(name, v)
	return nil
}

// Lookup evaluates a variable defined in the context. The result is nil if
// there is no such variable.
func (ctx *Context) Lookup(name string, intr Interrupt) (Value, error) {
	b := ctx.scope.lookup(name)
	if b == nil {
		return nil, nil
	}
	ev := evaluator{intr: intr}
	return b.get(&ev)
}

// Evaluate evaluates each statement in src in order. The result describes the
// last statement; empty input gives an empty result. Evaluation stops at the
// first error, but assignments made before it remain in the context.
//
// If intr is signaled during evaluation, the error is ErrInterrupted. Other
// errors describe problems with the input.
func (ctx *Context) Evaluate(src string, intr Interrupt) (*Result, error) {
	stmts, err := ParseStatements(strings.NewReader(src), ctx.popts...)
	if err != nil {
		return nil, err
	}
	var v Value
	for _, e := range stmts {
		v, err = ctx.Eval(e, intr)
		if err != nil {
			return nil, err
		}
	}
	if v == nil {
		return &Result{}, nil
	}
	r := Result{val: v}
	if n, ok := v.(Number); ok {
		r.main, r.other, err = n.format(intr)
	} else {
		r.main, err = FormatValue(v, intr)
	}
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Result is the rendered result of evaluation.
type Result struct {
	main  string
	other []string
	val   Value
}

// MainResult is the primary rendering of the result.
func (r *Result) MainResult() string {
	return r.main
}

// OtherInfo is a list of alternative renderings, e.g. a decimal approximation
// of a fraction.
func (r *Result) OtherInfo() []string {
	return r.other
}

// Value is the value of the last statement, or nil if there was none.
func (r *Result) Value() Value {
	return r.val
}

// Evaluate evaluates src in a new context without interruption.
func Evaluate(src string) (*Result, error) {
	return NewContext().Evaluate(src, NeverInterrupt{})
}
