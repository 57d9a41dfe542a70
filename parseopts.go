package calc

import (
	"strconv"
	"unicode"
)

// ParseOption is an option for parsing.
type ParseOption interface {
	parseOption(parsectx) parsectx
}

type (
	eofopt struct {
		c, s bool
		ws   string
	}
	callmulopt bool
)

// parsectx holds general data for parsing.
type parsectx struct {
	// names is the set of variable names that have been seen this parse.
	names map[string]bool
	// wseof is a string containing the whitespace characters that trigger an
	// EOF token from the lexer.
	wseof string
	// ceof and seof indicate whether commas and semicolons, respectively, are
	// allowed at the end of an expression.
	ceof, seof bool
	// callmul makes immediate calls like f(x) multiply when f is a number.
	callmul bool
}

// StopOn tells the parser to treat a list of characters as ending the
// expression. Each rune must be a comma, semicolon, or whitespace codepoint.
// Whitespace does not end an expression where a term is expected, e.g. at the
// beginning of an expression or following an operator or bracket.
//
// StopOn overrides the effect of any previous StopOn in the parsing options.
// With no arguments, StopOn produces the default termination behavior, which
// is to parse to EOF.
func StopOn(chars ...rune) ParseOption {
	var o eofopt
	v := make([]rune, 0, len(chars))
	have := func(r rune) bool {
		for _, c := range v {
			if r == c {
				return true
			}
		}
		return false
	}
	for _, r := range chars {
		switch {
		case r == ',':
			o.c = true
		case r == ';':
			o.s = true
		case unicode.IsSpace(r):
			if have(r) {
				continue
			}
			v = append(v, r)
		default:
			panic("calc: cannot stop on " + strconv.QuoteRune(r))
		}
	}
	o.ws = string(v)
	return &o
}

func (o *eofopt) parseOption(p parsectx) parsectx {
	p.ceof = o.c
	p.seof = o.s
	p.wseof = o.ws
	return p
}

// CallsMultiply tells the parser that a bracketed term immediately following
// a name or bracket, as in x(2), may be a multiplication. By default, such a
// term is a function call, and evaluating it fails when the callee is a
// number.
func CallsMultiply() ParseOption {
	return callmulopt(true)
}

func (o callmulopt) parseOption(p parsectx) parsectx {
	p.callmul = bool(o)
	return p
}

// callKind is the node kind for immediate calls.
func (p *parsectx) callKind() nodeKind {
	if p.callmul {
		return nodeApply
	}
	return nodeCall
}
