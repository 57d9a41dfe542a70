package calc

// evaluator holds the state of one evaluation.
type evaluator struct {
	intr  Interrupt
	depth int
}

// maxDepth bounds the nesting of evaluation, including recursive function
// application.
const maxDepth = 1 << 14

// eval evaluates the node in a scope.
func (n *node) eval(ev *evaluator, s *Scope) (Value, error) {
	if err := check(ev.intr); err != nil {
		return nil, err
	}
	if ev.depth >= maxDepth {
		return nil, ErrRecursionDepth
	}
	ev.depth++
	defer func() { ev.depth-- }()
	switch n.kind {
	case nodeNum:
		r, err := parseNumber(n.name)
		if err != nil {
			return nil, err
		}
		return numRational(r), nil
	case nodeName:
		return ev.resolve(n.name, s)
	case nodeValue:
		return n.val, nil
	case nodeApply, nodeCall:
		f, err := n.left.eval(ev, s)
		if err != nil {
			return nil, err
		}
		h := both
		if n.kind == nodeCall {
			h = onlyApply
		}
		return ev.apply(f, n.right, h, s)
	case nodeLambda:
		return &Closure{param: n.name, body: n.left, scope: s}, nil
	case nodeAssign:
		panic("calc: assignment inside expression")
	case nodeNeg:
		v, err := n.left.eval(ev, s)
		if err != nil {
			return nil, err
		}
		return ev.lift1(v, s, func(x Number) (Value, error) { return x.negate(), nil }, func(n *node) *node {
			return &node{kind: nodeNeg, left: n}
		})
	case nodeNop:
		return n.left.eval(ev, s)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow:
		l, err := n.left.eval(ev, s)
		if err != nil {
			return nil, err
		}
		r, err := n.right.eval(ev, s)
		if err != nil {
			return nil, err
		}
		if f, ok := l.(BuiltIn); ok && n.kind == nodePow && isMinusOne(r) {
			// sin^-1 is asin.
			return f.Invert()
		}
		return ev.lift2(l, r, s, n.kind, func(x, y Number) (Value, error) { return ev.arith(n.kind, x, y) })
	case nodeConvert:
		l, err := n.left.eval(ev, s)
		if err != nil {
			return nil, err
		}
		r, err := n.right.eval(ev, s)
		if err != nil {
			return nil, err
		}
		return ev.convert(l, r)
	default:
		panic("calc: invalid AST node " + n.kind.String())
	}
}

func (ev *evaluator) arith(kind nodeKind, x, y Number) (Number, error) {
	switch kind {
	case nodeAdd:
		return x.add(y, ev.intr)
	case nodeSub:
		return x.sub(y, ev.intr)
	case nodeMul:
		return x.mul(y, ev.intr)
	case nodeDiv:
		return x.div(y, ev.intr)
	case nodePow:
		return x.pow(y, ev.intr)
	default:
		panic("calc: not arithmetic: " + kind.String())
	}
}

func isMinusOne(v Value) bool {
	n, ok := v.(Number)
	if !ok || len(n.unit) != 0 {
		return false
	}
	r, ok := n.val.Value.realRational()
	return ok && r.cmp(ratInt(-1)) == 0
}

// convert implements x -> y, where y is a unit, a style, or a base.
func (ev *evaluator) convert(x, y Value) (Value, error) {
	n, err := ev.expectNum(x)
	if err != nil {
		return nil, err
	}
	switch y := y.(type) {
	case Number:
		return n.convertTo(y, ev.intr)
	case FormattingStyle:
		n.style = y
		return n, nil
	case Base:
		n.base = y
		return n, nil
	default:
		str, err := FormatValue(y, ev.intr)
		if err != nil {
			return nil, err
		}
		return nil, &TypeError{Want: "a unit, formatting style, or base", Got: str}
	}
}

// resolve looks up a name in the scope, then in the predefined names, then in
// the units.
func (ev *evaluator) resolve(name string, s *Scope) (Value, error) {
	if b := s.lookup(name); b != nil {
		return b.get(ev)
	}
	if v, ok := predefined[name]; ok {
		return v, nil
	}
	if u := units[name]; u != nil {
		return numUnit(u), nil
	}
	return nil, &NameError{Name: name}
}

// predefined holds functions, constants, and markers.
var predefined = func() map[string]Value {
	x := &node{kind: nodeName, name: "x"}
	m := map[string]Value{
		"pi":  numReal(piTimes(ratInt(1))),
		"π":   numReal(piTimes(ratInt(1))),
		"tau": numReal(piTimes(ratInt(2))),
		"τ":   numReal(piTimes(ratInt(2))),
		"e":   numReal(Real{coef: ratInt(1), sym: symE}),
		"i":   Number{val: exactly(imagUnit)},

		"approx":  fnApprox,
		"arcsin":  fnAsin,
		"arccos":  fnAcos,
		"arctan":  fnAtan,
		"arsinh":  fnAsinh,
		"arcosh":  fnAcosh,
		"artanh":  fnAtanh,
		"log":     fnLog10,
		"lg":      fnLog2,
		"sqrt":    &Closure{param: "x", body: &node{kind: nodePow, left: x, right: valueNode(numRational(ratHalf))}},
		"cbrt":    &Closure{param: "x", body: &node{kind: nodePow, left: x, right: valueNode(numRational(ratThird))}},
		"exp":     &Closure{param: "x", body: &node{kind: nodePow, left: valueNode(numReal(Real{coef: ratInt(1), sym: symE})), right: x}},
		"dp":      Dp{},
		"version": VersionMarker{},

		"auto":       AutoStyle,
		"fraction":   FractionStyle,
		"frac":       FractionStyle,
		"exact":      FractionStyle,
		"scientific": ScientificStyle,
		"sci":        ScientificStyle,

		"hex":         baseHex,
		"hexadecimal": baseHex,
		"octal":       baseOctal,
		"binary":      baseBinary,
		"decimal":     baseDecimal,
	}
	for f, name := range builtinNames {
		m[name] = BuiltIn(f)
	}
	return m
}()
