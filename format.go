package calc

import (
	"strconv"
	"strings"
)

type styleKind uint8

const (
	styleAuto styleKind = iota
	styleFraction
	styleDecimal
	styleScientific
)

// FormattingStyle is a policy for rendering numbers. The zero value is the
// automatic style, which renders exact values as fractions and approximate
// values as decimals. A style with a fixed number of decimal places can only
// be created by evaluating an expression like "5 dp".
type FormattingStyle struct {
	kind   styleKind
	places int
	// trim drops trailing zeros from decimal renderings.
	trim bool
}

func (FormattingStyle) isValue() {}

var (
	// AutoStyle renders exact values as fractions and approximate values as
	// decimals.
	AutoStyle = FormattingStyle{kind: styleAuto}
	// FractionStyle renders values as exact fractions. Rendering an
	// approximate value fails.
	FractionStyle = FormattingStyle{kind: styleFraction}
	// ScientificStyle renders values in scientific notation.
	ScientificStyle = FormattingStyle{kind: styleScientific}
)

// maxDecimalPlaces bounds the places of decimal styles.
const maxDecimalPlaces = 5000

func decimalStyle(n uint64) (FormattingStyle, error) {
	if n > maxDecimalPlaces {
		return FormattingStyle{}, &ValueTooLargeError{Max: maxDecimalPlaces}
	}
	return FormattingStyle{kind: styleDecimal, places: int(n)}, nil
}

func (s FormattingStyle) String() string {
	switch s.kind {
	case styleAuto:
		return "auto"
	case styleFraction:
		return "fraction"
	case styleDecimal:
		return strconv.Itoa(s.places) + " dp"
	case styleScientific:
		return "scientific"
	default:
		panic("calc: invalid formatting style")
	}
}

// autoPlaces is the number of places shown for approximate values in the
// automatic style.
const autoPlaces = 10

const approxPrefix = "approx. "

// formatReal renders one part of a number. The result reports whether the
// rendering is exact.
func formatReal(x Real, exact bool, style FormattingStyle, base Base, intr Interrupt) (string, bool, error) {
	switch style.kind {
	case styleAuto:
		if exact {
			s, err := x.fraction(base, intr)
			return s, true, err
		}
		s, _, err := x.approximate().coef.decimal(autoPlaces, base, intr)
		return trimZeros(s), false, err
	case styleFraction:
		if !exact {
			return "", false, &FormatError{Msg: "cannot render an approximate value as an exact fraction"}
		}
		s, err := x.fraction(base, intr)
		return s, true, err
	case styleDecimal:
		s, ok, err := x.approximate().coef.decimal(style.places, base, intr)
		if style.trim {
			s = trimZeros(s)
		}
		return s, ok && exact && x.isRational(), err
	case styleScientific:
		if base.Radix() != 10 {
			return "", false, &FormatError{Msg: "scientific notation is only supported in base 10"}
		}
		if err := check(intr); err != nil {
			return "", false, err
		}
		f := x.float()
		s := f.Text('e', autoPlaces-1)
		// The mantissa is exact only if rendering it back recovers x.
		back, ok := newFloat().SetString(s)
		ok = ok && exact && x.isRational() && ratFromFloat(back).cmp(x.coef) == 0
		return s, ok, nil
	default:
		panic("calc: invalid formatting style")
	}
}

// trimZeros removes trailing zeros after a radix point.
func trimZeros(s string) string {
	if !strings.Contains(s, ".") {
		return s
	}
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}

// format renders n in its style and base. The second result holds
// alternative renderings.
func (n Number) format(intr Interrupt) (string, []string, error) {
	main, err := n.render(n.style, n.base, intr)
	if err != nil {
		return "", nil, err
	}
	var other []string
	z := n.val.Value
	switch {
	case n.base.Radix() != 10:
		s, err := n.render(AutoStyle, baseDecimal, intr)
		if err != nil {
			return "", nil, err
		}
		other = append(other, s)
	case n.style.kind == styleAuto && n.val.Exact && !(z.re.isRational() && z.re.coef.isInt() && z.im.isRational() && z.im.coef.isInt()):
		s, err := n.render(FormattingStyle{kind: styleDecimal, places: autoPlaces, trim: true}, baseDecimal, intr)
		if err != nil {
			return "", nil, err
		}
		other = append(other, s)
	}
	if len(other) == 1 && other[0] == main {
		other = nil
	}
	return main, other, nil
}

// render renders n in a given style and base.
func (n Number) render(style FormattingStyle, base Base, intr Interrupt) (string, error) {
	z := n.val.Value
	re, exact, err := formatReal(z.re, n.val.Exact, style, base, intr)
	if err != nil {
		return "", err
	}
	s := re
	if !z.isReal() {
		im, ok, err := formatReal(z.im.abs(), n.val.Exact, style, base, intr)
		if err != nil {
			return "", err
		}
		exact = exact && ok
		if im == "1" {
			im = ""
		}
		if strings.Contains(im, "/") {
			im = "(" + im + ")"
		}
		im += "i"
		switch {
		case z.re.isZero() && z.im.sign() < 0:
			s = "-" + im
		case z.re.isZero():
			s = im
		case z.im.sign() < 0:
			s = re + " - " + im
		default:
			s = re + " + " + im
		}
	}
	if !exact {
		s = approxPrefix + s
	}
	if len(n.unit) != 0 {
		if len(n.unit) == 1 && n.unit[0].def.attach && n.unit[0].exp.isOne() {
			s += n.unit[0].def.name
		} else {
			s += " " + unitString(n.unit)
		}
	}
	return s, nil
}
