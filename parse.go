package calc

import (
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Stmt = name '=' Expr | Expr
// Expr = num | name | Call | Lambda | Neg | Plus | Apply | Add | Sub | Mul | Div | Pow | Conv | '(' Expr ')' | '[' Expr ']' | '{' Expr '}'
// Call = (name | Call | '(' Expr ')') '(' Expr ')'   (no space before the bracket)
// Lambda = '\' name '.' Expr | name ':' Expr
// Apply = Expr Expr
// Neg = '-' Expr
// Plus = '+' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
// Pow = Expr '^' Expr
// Conv = Expr '->' Expr | Expr 'to' Expr | Expr 'as' Expr

// Expr is a parsed expression that can be evaluated with a context.
type Expr struct {
	// n is the root node of the expression.
	n *node
	// names is the list of names used in the expression.
	names []string
}

// Parse parses an expression so it can be evaluated with a context. The given
// options are applied in order.
func Parse(src io.RuneScanner, opts ...ParseOption) (*Expr, error) {
	scan := lex(src)
	p := parsectx{
		names: make(map[string]bool),
	}
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	n, err := parsestmt(scan, &p)
	if err != nil {
		return nil, err
	}
	switch tok := scan.must(); tok.kind {
	case tokenEOF:
	case tokenSep:
		switch {
		case p.ceof && tok.text == ",":
		case p.seof && tok.text == ";":
		default:
			return nil, itShouldNotHaveEndedThisWay(tok, nil)
		}
	default:
		return nil, itShouldNotHaveEndedThisWay(tok, nil)
	}
	return p.expr(n), nil
}

// ParseStatements parses a sequence of statements separated by semicolons or
// newlines. A newline separates statements only where a term may end, so an
// expression can continue onto the next line after an operator. Empty
// statements are skipped.
func ParseStatements(src io.RuneScanner, opts ...ParseOption) ([]*Expr, error) {
	scan := lex(src)
	var p parsectx
	for _, opt := range opts {
		p = opt.parseOption(p)
	}
	p.seof = true
	if !strings.ContainsRune(p.wseof, '\n') {
		p.wseof += "\n"
	}
	var r []*Expr
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch {
		case tok.kind == tokenEOF:
			if scan.end {
				return r, nil
			}
			scan.resume()
			continue
		case tok.kind == tokenSep && tok.text == ";":
			continue
		}
		scan.push(tok)
		p.names = make(map[string]bool)
		n, err := parsestmt(scan, &p)
		if err != nil {
			return nil, err
		}
		r = append(r, p.expr(n))
		switch tok := scan.must(); {
		case tok.kind == tokenEOF:
			if scan.end {
				return r, nil
			}
			scan.resume()
		case tok.kind == tokenSep && tok.text == ";":
		case tok.kind == tokenSep && tok.text == "," && p.ceof:
		default:
			return nil, itShouldNotHaveEndedThisWay(tok, nil)
		}
	}
}

// expr collects the names seen while parsing n.
func (p *parsectx) expr(n *node) *Expr {
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	return &ex
}

// parsestmt parses an assignment or an expression.
func parsestmt(scan *lexer, p *parsectx) (*node, error) {
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	if tok.kind == tokenIdent {
		eq, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		if eq.kind == tokenAssign {
			rhs, err := parseterm(scan, p, exprprec)
			if err != nil {
				return nil, err
			}
			if rhs == nil {
				return nil, emptyterm(scan, "value for "+tok.text)
			}
			return &node{kind: nodeAssign, name: tok.text, left: rhs}, nil
		}
		scan.push(eq)
	}
	scan.push(tok)
	n, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, emptyterm(scan, "expression")
	}
	return n, nil
}

// sortstrs sorts a string slice without using package sort because that has
// reflection and allocation problems.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// parseterm parses a single term. If there is no error, then parseterm pushes
// the last token it scans, including EOF. If the input is an empty
// subexpression, the result is nil with no error; callers must create an error
// in contexts where empty subexpressions are illegal.
func parseterm(scan *lexer, p *parsectx, until operator) (*node, error) {
	n, err := parselhs(scan, p, until)
	if err != nil {
		return nil, err
	}
	if n == nil {
		return nil, nil
	}
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		switch tok.kind {
		case tokenIdent:
			if tok.text == "to" || tok.text == "as" {
				rhs, stop, err := parsebinary(scan, p, until, n, tok, binop("->"))
				if err != nil {
					return nil, err
				}
				if stop {
					return n, nil
				}
				n = rhs
				continue
			}
			fallthrough
		case tokenNum, tokenOpen, tokenLambda:
			// (parsed) x -> (parsed) applied to (x)
			// (parsed) x^(expr) -> (parsed) applied to (x^(expr))
			// a^(parsed) x -> (a^(parsed)) applied to (x)
			scan.push(tok)
			prec := termprec
			if !prec.moreBinding(until) {
				return n, nil
			}
			rhs, err := parseterm(scan, p, prec)
			if err != nil {
				return nil, err
			}
			n = &node{kind: nodeApply, left: n, right: rhs}
		case tokenOp:
			// Binary operator.
			prec := binop(tok.text)
			if prec.op == nodeNone {
				return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceInfix}
			}
			rhs, stop, err := parsebinary(scan, p, until, n, tok, prec)
			if err != nil {
				return nil, err
			}
			if stop {
				return n, nil
			}
			n = rhs
		case tokenDot, tokenColon:
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceInfix}
		case tokenAssign:
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceStatement}
		case tokenClose, tokenSep, tokenEOF:
			// End of expression.
			scan.push(tok)
			return n, nil
		default:
			panic("calc: unknown token: " + tok.String())
		}
	}
}

// parsebinary parses the right operand of a binary operator. If the operator
// binds less tightly than until, it pushes tok and reports that the term is
// complete.
func parsebinary(scan *lexer, p *parsectx, until operator, lhs *node, tok lexToken, prec operator) (*node, bool, error) {
	if !prec.moreBinding(until) {
		scan.push(tok)
		return nil, true, nil
	}
	rhs, err := parseterm(scan, p, prec)
	if err != nil {
		return nil, false, err
	}
	if rhs == nil {
		return nil, false, emptyterm(scan, "right operand of "+strconv.Quote(tok.text))
	}
	return &node{kind: prec.op, left: lhs, right: rhs}, false, nil
}

// emptyterm creates the error for a missing term ending in the pushed token.
func emptyterm(scan *lexer, term string) error {
	end := scan.must()
	return &MissingTermError{Col: end.pos, End: end.text, Term: term}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// any encountered token must be valid as the start of a subexpression, and
// whitespace normally lexed as EOF is ignored.
func parselhs(scan *lexer, p *parsectx, until operator) (*node, error) {
	// Don't use EOF whitespace for LHS.
	tok, err := scan.next("")
	if err != nil {
		return nil, err
	}
	var n *node
	switch tok.kind {
	case tokenNum:
		n = &node{kind: nodeNum, name: tok.text}
	case tokenIdent:
		sep, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		if sep.kind == tokenColon {
			// x:body
			return parselambda(scan, p, tok.text)
		}
		scan.push(sep)
		p.names[tok.text] = true
		n, err = parsecalls(scan, p, &node{kind: nodeName, name: tok.text})
		if err != nil {
			return nil, err
		}
	case tokenLambda:
		id, err := scan.next("")
		if err != nil {
			return nil, err
		}
		if id.kind != tokenIdent {
			return nil, &LambdaError{Col: id.pos, Text: id.text}
		}
		dot, err := scan.next("")
		if err != nil {
			return nil, err
		}
		switch {
		case dot.kind == tokenDot:
		case dot.kind == tokenNum && strings.HasPrefix(dot.text, "."):
			// \x.5 lexes the dot as part of the number.
			scan.push(lexToken{text: dot.text[1:], kind: tokenNum, pos: dot.pos + 1})
		default:
			return nil, &LambdaError{Col: dot.pos, Text: dot.text}
		}
		return parselambda(scan, p, id.text)
	case tokenOp:
		// unary operator
		prec := unop(tok.text)
		if prec.op == nodeNone {
			return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceOperand}
		}
		if !prec.moreBinding(until) {
			// x^-y -> x^(-y)
			// Just use the new operator's precedence to simplify.
			prec.prec, prec.right = until.prec, until.right
		}
		rhs, err := parseterm(scan, p, prec)
		if err != nil {
			return nil, err
		}
		if rhs == nil {
			return nil, emptyterm(scan, "operand of "+strconv.Quote(tok.text))
		}
		n = &node{kind: prec.op, left: rhs}
	case tokenOpen:
		rhs, err := parsebracket(scan, p, tok)
		if err != nil {
			return nil, err
		}
		n, err = parsecalls(scan, p, rhs)
		if err != nil {
			return nil, err
		}
	case tokenClose:
		// Let the caller decide what to do with the bracket.
		scan.push(tok)
		return nil, nil
	case tokenSep:
		switch tok.text {
		case ",":
			if p.ceof {
				scan.push(tok)
				return nil, nil
			}
		case ";":
			if p.seof {
				scan.push(tok)
				return nil, nil
			}
		default:
			panic("calc: invalid separator " + strconv.Quote(tok.text))
		}
		return nil, &SeparatorError{Col: tok.pos, Sep: tok.text}
	case tokenDot, tokenColon:
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceOperand}
	case tokenAssign:
		return nil, &OperatorError{Col: tok.pos, Operator: tok.text, Place: PlaceStatement}
	case tokenEOF:
		// Let the caller describe what is missing.
		scan.push(tok)
		return nil, nil
	default:
		panic("calc: unknown token: " + tok.String())
	}
	return n, nil
}

// parselambda parses the body of a function with the given parameter. The
// body extends as far as possible.
func parselambda(scan *lexer, p *parsectx, param string) (*node, error) {
	body, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	if body == nil {
		return nil, emptyterm(scan, "function body")
	}
	return &node{kind: nodeLambda, name: param, left: body}, nil
}

// parsebracket parses a bracketed subexpression after its open bracket.
// Whitespace never ends a bracketed subexpression.
func parsebracket(scan *lexer, p *parsectx, open lexToken) (*node, error) {
	match := rightbracket(open.text)
	ws := p.wseof
	p.wseof = ""
	defer func() { p.wseof = ws }()
	rhs, err := parseterm(scan, p, exprprec)
	if err != nil {
		return nil, err
	}
	end := scan.must()
	if end.kind != tokenClose || end.text != closebrackets[match] {
		return nil, itShouldNotHaveEndedThisWay(end, &open)
	}
	if rhs == nil {
		return nil, &MissingTermError{Col: end.pos, End: end.text, Term: "expression inside " + open.text + end.text}
	}
	return rhs, nil
}

// parsecalls parses any bracketed arguments that immediately follow a callee,
// as in f(x) or f(x)(y).
func parsecalls(scan *lexer, p *parsectx, n *node) (*node, error) {
	for {
		tok, err := scan.next(p.wseof)
		if err != nil {
			return nil, err
		}
		if tok.kind != tokenOpen || tok.space {
			scan.push(tok)
			return n, nil
		}
		arg, err := parsebracket(scan, p, tok)
		if err != nil {
			return nil, err
		}
		n = &node{kind: p.callKind(), left: n, right: arg}
	}
}

// rightbracket gets the closing bracket index for an opening bracket.
func rightbracket(left string) int {
	r, sz := utf8.DecodeRuneInString(left)
	k := strings.IndexRune(OpenBrackets, r)
	if k < 0 || sz != len(left) {
		panic("calc: invalid bracket " + strconv.Quote(left))
	}
	return k
}

// itShouldNotHaveEndedThisWay returns an error appropriate for an unexpected
// token at the end of a subexpression. open is the bracket the subexpression
// began with, or nil at the top level.
func itShouldNotHaveEndedThisWay(tok lexToken, open *lexToken) error {
	var left string
	var col int
	if open != nil {
		left, col = open.text, open.pos
	}
	switch tok.kind {
	case tokenEOF:
		// Unexpected EOF implies an open bracket that was not closed.
		return &BracketError{Col: tok.pos, Open: left, OpenCol: col}
	case tokenClose:
		// A bracket could be the wrong bracket for the opening brace or any
		// bracket at the end of an input.
		return &BracketError{Col: tok.pos, Open: left, OpenCol: col, Close: tok.text}
	case tokenSep:
		// Separator where the expression cannot end.
		return &SeparatorError{Col: tok.pos, Sep: tok.text, InBrackets: open != nil}
	default:
		panic("calc: it really should not have ended this way: " + tok.String())
	}
}

// Vars returns the names used in the expression.
func (e *Expr) Vars() []string {
	return append(([]string)(nil), e.names...)
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	var b strings.Builder
	e.n.fmt(&b, false, true)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Lower is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets a binary operator for a token string. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(text string) operator {
	switch text {
	case "->":
		return operator{0, false, nodeConvert}
	case "+":
		return operator{1, false, nodeAdd}
	case "-":
		return operator{1, false, nodeSub}
	case "*":
		return operator{5, false, nodeMul}
	case "/":
		return operator{5, false, nodeDiv}
	case "^":
		return operator{15, true, nodePow}
	case "×":
		return operator{5, false, nodeMul}
	case "÷":
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets a unary operator for a token string. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(text string) operator {
	switch text {
	case "+":
		return operator{10, true, nodeNop}
	case "-":
		return operator{10, true, nodeNeg}
	default:
		return operator{}
	}
}

var (
	// termprec is the default precedence for parsing terms. Its prec
	// should match that of multiplication.
	termprec = operator{5, true, nodeApply}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
