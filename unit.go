package calc

import (
	"strings"
)

// unitPower is a unit raised to a rational power, one component of the
// display unit of a Number.
type unitPower struct {
	def *unitDef
	exp Rational
}

// Number is a dimensioned numeric quantity. The value is expressed in the
// display unit, the product of the unit components; a Number with no
// components is dimensionless. Numbers are immutable.
type Number struct {
	val   Exact[Complex]
	unit  []unitPower
	style FormattingStyle
	base  Base
}

func (Number) isValue() {}

func numRational(r Rational) Number {
	return Number{val: exactly(complexReal(realRat(r)))}
}

func numReal(x Real) Number {
	return Number{val: exactly(complexReal(x))}
}

// numUnit is one of a unit.
func numUnit(u *unitDef) Number {
	return Number{val: exactly(complexReal(realInt(1))), unit: []unitPower{{def: u, exp: ratInt(1)}}}
}

// with returns n's formatting attributes on a new value.
func (n Number) with(v Exact[Complex], unit []unitPower) Number {
	return Number{val: v, unit: unit, style: n.style, base: n.base}
}

// dims computes the dimension vector of n's unit.
func (n Number) dims(intr Interrupt) ([numDims]Rational, error) {
	var d [numDims]Rational
	for _, c := range n.unit {
		for k, e := range c.def.dims {
			if e == 0 {
				continue
			}
			t, err := c.exp.mul(ratInt(int64(e)), intr)
			if err != nil {
				return d, err
			}
			if d[k], err = d[k].add(t, intr); err != nil {
				return d, err
			}
		}
	}
	return d, nil
}

func sameDims(a, b [numDims]Rational) bool {
	for k := range a {
		if a[k].cmp(b[k]) != 0 {
			return false
		}
	}
	return true
}

func isDimensionless(d [numDims]Rational) bool {
	return sameDims(d, [numDims]Rational{})
}

// unitScale computes the factor converting a value in the given unit to base
// units.
func unitScale(unit []unitPower, intr Interrupt) (Exact[Complex], error) {
	r := exactly(complexReal(realInt(1)))
	for _, c := range unit {
		s, err := complexReal(c.def.scale).pow(complexReal(realRat(c.exp)), intr)
		if err != nil {
			return Exact[Complex]{}, err
		}
		if r, err = mulExact(r, s, intr); err != nil {
			return Exact[Complex]{}, err
		}
	}
	return r, nil
}

func mulExact(a, b Exact[Complex], intr Interrupt) (Exact[Complex], error) {
	return mapExact2(a, b, func(x, y Complex) (Exact[Complex], error) { return x.mul(y, intr) })
}

func divExact(a, b Exact[Complex], intr Interrupt) (Exact[Complex], error) {
	return mapExact2(a, b, func(x, y Complex) (Exact[Complex], error) { return x.div(y, intr) })
}

// unitString renders a unit as e.g. "kg m^2 / s^2".
func unitString(unit []unitPower) string {
	var num, den []string
	for _, c := range unit {
		switch {
		case c.exp.sign() > 0:
			num = append(num, powerString(c.def.name, c.exp))
		default:
			den = append(den, powerString(c.def.name, c.exp.negate()))
		}
	}
	if len(num) == 0 {
		for i, c := range unit {
			den[i] = powerString(c.def.name, c.exp)
		}
		return strings.Join(den, " ")
	}
	s := strings.Join(num, " ")
	if len(den) != 0 {
		s += " / " + strings.Join(den, " ")
	}
	return s
}

func powerString(name string, exp Rational) string {
	switch {
	case exp.isOne():
		return name
	case exp.isInt():
		return name + "^" + exp.String()
	default:
		return name + "^(" + exp.String() + ")"
	}
}

// toBase expresses n without any unit components, scaling its value into base
// units. It fails unless n is dimensionless.
func (n Number) toBase(intr Interrupt) (Number, error) {
	if len(n.unit) == 0 {
		return n, nil
	}
	d, err := n.dims(intr)
	if err != nil {
		return Number{}, err
	}
	if !isDimensionless(d) {
		return Number{}, &DimensionError{From: unitString(n.unit), To: ""}
	}
	s, err := unitScale(n.unit, intr)
	if err != nil {
		return Number{}, err
	}
	v, err := mulExact(n.val, s, intr)
	if err != nil {
		return Number{}, err
	}
	return n.with(v, nil), nil
}

// convertTo expresses n in the unit of t.
func (n Number) convertTo(t Number, intr Interrupt) (Number, error) {
	nd, err := n.dims(intr)
	if err != nil {
		return Number{}, err
	}
	td, err := t.dims(intr)
	if err != nil {
		return Number{}, err
	}
	if !sameDims(nd, td) {
		return Number{}, &DimensionError{From: unitString(n.unit), To: unitString(t.unit)}
	}
	ns, err := unitScale(n.unit, intr)
	if err != nil {
		return Number{}, err
	}
	ts, err := unitScale(t.unit, intr)
	if err != nil {
		return Number{}, err
	}
	v, err := mulExact(n.val, ns, intr)
	if err != nil {
		return Number{}, err
	}
	if v, err = divExact(v, ts, intr); err != nil {
		return Number{}, err
	}
	return n.with(v, append([]unitPower(nil), t.unit...)), nil
}

func (n Number) add(m Number, intr Interrupt) (Number, error) {
	m, err := m.convertTo(n, intr)
	if err != nil {
		return Number{}, err
	}
	v, err := mapExact2(n.val, m.val, func(x, y Complex) (Exact[Complex], error) { return x.add(y, intr) })
	if err != nil {
		return Number{}, err
	}
	return n.with(v, n.unit), nil
}

func (n Number) sub(m Number, intr Interrupt) (Number, error) {
	return n.add(m.negate(), intr)
}

func (n Number) negate() Number {
	n.val.Value = n.val.Value.negate()
	return n
}

func (n Number) mul(m Number, intr Interrupt) (Number, error) {
	v, err := mulExact(n.val, m.val, intr)
	if err != nil {
		return Number{}, err
	}
	return n.merge(v, m.unit, intr)
}

// merge combines the components of other into n's unit, taking v as the
// value of the product. Components sharing a dimension with one of n's are
// rescaled into n's unit.
func (n Number) merge(v Exact[Complex], other []unitPower, intr Interrupt) (Number, error) {
	unit := append([]unitPower(nil), n.unit...)
	for _, c := range other {
		k := matchUnit(unit, c.def)
		if k < 0 {
			unit = append(unit, c)
			continue
		}
		if unit[k].def != c.def {
			// Express c in the unit it shares a dimension with.
			r, err := c.def.scale.div(unit[k].def.scale, intr)
			if err != nil {
				return Number{}, err
			}
			f, err := complexReal(r.Value).pow(complexReal(realRat(c.exp)), intr)
			if err != nil {
				return Number{}, err
			}
			f.Exact = f.Exact && r.Exact
			if v, err = mulExact(v, f, intr); err != nil {
				return Number{}, err
			}
		}
		e, err := unit[k].exp.add(c.exp, intr)
		if err != nil {
			return Number{}, err
		}
		if e.isZero() {
			unit = append(unit[:k], unit[k+1:]...)
			continue
		}
		unit[k].exp = e
	}
	return n.with(v, unit).simplify(intr)
}

// matchUnit finds the component of unit with the same definition as u, or
// failing that, with the same non-trivial dimensions.
func matchUnit(unit []unitPower, u *unitDef) int {
	for k, c := range unit {
		if c.def == u {
			return k
		}
	}
	if u.dimensionless() {
		return -1
	}
	for k, c := range unit {
		if c.def.dims == u.dims {
			return k
		}
	}
	return -1
}

// simplify folds dimensionless components of compound units into the value and
// prefers canonical names for compound units.
func (n Number) simplify(intr Interrupt) (Number, error) {
	if len(n.unit) < 2 {
		return n, nil
	}
	var keep, fold []unitPower
	for _, c := range n.unit {
		if c.def.dimensionless() {
			fold = append(fold, c)
		} else {
			keep = append(keep, c)
		}
	}
	v := n.val
	if len(fold) != 0 {
		s, err := unitScale(fold, intr)
		if err != nil {
			return Number{}, err
		}
		if v, err = mulExact(v, s, intr); err != nil {
			return Number{}, err
		}
		n = n.with(v, keep)
	}
	if len(n.unit) < 2 {
		return n, nil
	}
	d, err := n.dims(intr)
	if err != nil {
		return Number{}, err
	}
	if isDimensionless(d) {
		return n.toBase(intr)
	}
	for _, u := range canonicalUnits {
		c := numUnit(u)
		cd, _ := c.dims(nil)
		if sameDims(d, cd) {
			return n.convertTo(c, intr)
		}
	}
	return n, nil
}

func (n Number) div(m Number, intr Interrupt) (Number, error) {
	if m.val.Value.isZero() {
		return Number{}, &DivideByZeroError{}
	}
	v, err := divExact(n.val, m.val, intr)
	if err != nil {
		return Number{}, err
	}
	inv := make([]unitPower, len(m.unit))
	for i, c := range m.unit {
		inv[i] = unitPower{def: c.def, exp: c.exp.negate()}
	}
	return n.merge(v, inv, intr)
}

// pow raises n to the power m, which must be dimensionless. Exponents of
// values with units must be rational.
func (n Number) pow(m Number, intr Interrupt) (Number, error) {
	m, err := m.toBase(intr)
	if err != nil {
		return Number{}, err
	}
	var unit []unitPower
	if len(n.unit) != 0 {
		e, ok := m.val.Value.realRational()
		if !ok {
			return Number{}, &TypeError{Want: "a rational exponent for a value with units", Got: m.val.Value.String()}
		}
		for _, c := range n.unit {
			x, err := c.exp.mul(e, intr)
			if err != nil {
				return Number{}, err
			}
			if !x.isZero() {
				unit = append(unit, unitPower{def: c.def, exp: x})
			}
		}
	}
	v, err := mapExact2(n.val, m.val, func(x, y Complex) (Exact[Complex], error) { return x.pow(y, intr) })
	if err != nil {
		return Number{}, err
	}
	return n.with(v, unit), nil
}

func (n Number) abs(intr Interrupt) (Number, error) {
	v, err := mapExact(n.val, func(z Complex) (Exact[Complex], error) { return z.abs(intr) })
	if err != nil {
		return Number{}, err
	}
	return n.with(v, n.unit), nil
}

func (n Number) makeApprox() Number {
	n.val = n.val.makeApprox()
	return n
}

// apply1 applies a function to n as a dimensionless quantity.
func (n Number) apply1(intr Interrupt, f func(Complex, Interrupt) (Exact[Complex], error)) (Number, error) {
	b, err := n.toBase(intr)
	if err != nil {
		return Number{}, err
	}
	v, err := mapExact(b.val, func(z Complex) (Exact[Complex], error) { return f(z, intr) })
	if err != nil {
		return Number{}, err
	}
	return n.with(v, nil), nil
}

// toUint64 converts a dimensionless non-negative integer to a uint64.
func (n Number) toUint64(intr Interrupt) (uint64, error) {
	b, err := n.toBase(intr)
	if err != nil {
		return 0, err
	}
	r, ok := b.val.Value.realRational()
	if !ok {
		return 0, &TypeError{Want: "a non-negative integer", Got: b.val.Value.String()}
	}
	return r.toUint64()
}
