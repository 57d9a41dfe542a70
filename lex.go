package calc

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

type lexToken struct {
	text string
	kind tokenKind
	pos  int
	// space is true when whitespace precedes the token.
	space bool
}

func (t lexToken) String() string {
	return t.kind.String() + ":" + t.text + "@" + strconv.Itoa(t.pos)
}

type tokenKind int

const (
	tokenNone tokenKind = iota
	// tokenEOF indicates the end of the input.
	tokenEOF
	// tokenNum is a number literal.
	tokenNum
	// tokenIdent is a variable, function, constant, or unit name.
	tokenIdent
	// tokenOp is an operator.
	tokenOp
	// tokenOpen is an open bracket, e.g. (.
	tokenOpen
	// tokenClose is a close bracket, e.g. ).
	tokenClose
	// tokenSep is a statement separator, either , or ;.
	tokenSep
	// tokenLambda is the backslash introducing a function, as in \x.x^2.
	tokenLambda
	// tokenDot separates a function's parameter from its body.
	tokenDot
	// tokenColon is the alternative separator, as in x:x^2.
	tokenColon
	// tokenAssign is =.
	tokenAssign
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=tokenKind -trimprefix=token

// Operators contains the runes which are considered to be operators. The
// conversion operator -> is also recognized, as are the words "to" and "as".
const Operators = "+-*/^×÷"

// OpenBrackets and CloseBrackets contain the runes which group expressions.
// The parser checks that a bracket in byte position k in OpenBrackets is
// matched with the bracket in byte position k in ClosedBrackets.
const (
	OpenBrackets  = "([{"
	CloseBrackets = ")]}"
)

func byteidcs(s string) []string {
	v := make([]string, len(s))
	for i, r := range s {
		v[i] = string(r)
	}
	return v
}

var (
	operstrs      = byteidcs(Operators)
	openbrackets  = byteidcs(OpenBrackets)
	closebrackets = byteidcs(CloseBrackets)
)

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	// p holds pushed tokens, last first.
	p []lexToken
	// back holds unread runes, last first.
	back []rune
	eof  bool
	// end is set once the source itself is exhausted, as opposed to a
	// stopping whitespace character.
	end bool
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next.
func (l *lexer) push(tok lexToken) {
	l.p = append(l.p, tok)
}

// must scans the pushed token. Panics if there is no pushed token.
func (l *lexer) must() lexToken {
	if len(l.p) == 0 {
		panic("calc: no pushed token")
	}
	tok := l.p[len(l.p)-1]
	l.p = l.p[:len(l.p)-1]
	return tok
}

// resume allows scanning to continue after a stopping whitespace character.
func (l *lexer) resume() {
	l.eof = l.end
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	if k := len(l.back); k > 0 {
		r = l.back[k-1]
		l.back = l.back[:k-1]
		l.rune++
		return r, nil
	}
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune so that it is the next one read.
func (l *lexer) unreadRune(r rune) {
	l.back = append(l.back, r)
	l.rune--
}

// peek returns the next rune without consuming it. The result is -1 at EOF.
func (l *lexer) peek() rune {
	r, err := l.readRune()
	if err != nil {
		return -1
	}
	l.unreadRune(r)
	return r
}

// next scans the next token from the input. The first time EOF is encountered
// before any non-whitespace characters, the result is an EOF token with a nil
// error. Subsequent times, if the EOF token is not pushed, the result is an
// empty token with io.EOF.
func (l *lexer) next(wseof string) (lexToken, error) {
	if len(l.p) != 0 {
		return l.must(), nil
	}
	if l.eof {
		return lexToken{}, io.EOF
	}
	defer l.buf.Reset()
	tok := lexToken{pos: l.rune}
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				tok.kind = tokenEOF
				l.eof = true
				l.end = true
				return tok, nil
			}
			return tok, err
		}
		switch {
		case unicode.IsSpace(r):
			if strings.ContainsRune(wseof, r) {
				tok.kind = tokenEOF
				l.eof = true
				return tok, nil
			}
			tok.pos++
			tok.space = true
			continue
		case '0' <= r && r <= '9', r == '.' && isDigit(l.peek()):
			l.unreadRune(r)
			if err := l.scanNum(); err != nil {
				return tok, err
			}
			tok.text = l.buf.String()
			tok.kind = tokenNum
			return tok, nil
		case r == '_', unicode.IsLetter(r):
			l.unreadRune(r)
			l.scanIdent()
			tok.text = l.buf.String()
			tok.kind = tokenIdent
			return tok, nil
		case r == '°', r == '%':
			tok.text = string(r)
			tok.kind = tokenIdent
			return tok, nil
		case r == ',', r == ';':
			tok.text = string(r)
			tok.kind = tokenSep
			return tok, nil
		case r == '\\':
			tok.text = string(r)
			tok.kind = tokenLambda
			return tok, nil
		case r == '.':
			tok.text = "."
			tok.kind = tokenDot
			return tok, nil
		case r == ':':
			tok.text = ":"
			tok.kind = tokenColon
			return tok, nil
		case r == '=':
			tok.text = "="
			tok.kind = tokenAssign
			return tok, nil
		case r == '→', r == '-' && l.peek() == '>':
			if r == '-' {
				l.readRune()
			}
			tok.text = "->"
			tok.kind = tokenOp
			return tok, nil
		default:
			if k := strings.IndexRune(Operators, r); k >= 0 {
				tok.text = operstrs[k]
				tok.kind = tokenOp
				return tok, nil
			}
			if k := strings.IndexRune(OpenBrackets, r); k >= 0 {
				tok.text = openbrackets[k]
				tok.kind = tokenOpen
				return tok, nil
			}
			if k := strings.IndexRune(CloseBrackets, r); k >= 0 {
				tok.text = closebrackets[k]
				tok.kind = tokenClose
				return tok, nil
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			return tok, l.error("")
		}
	}
}

func isDigit(r rune) bool {
	return '0' <= r && r <= '9'
}

// digitVal returns the value of r as a digit in bases up to 36, or 36 if it is
// not a digit.
func digitVal(r rune) int {
	switch {
	case '0' <= r && r <= '9':
		return int(r - '0')
	case 'a' <= r && r <= 'z':
		return int(r-'a') + 10
	case 'A' <= r && r <= 'Z':
		return int(r-'A') + 10
	default:
		return 36
	}
}

func prefixBase(r rune) int {
	switch r {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	default:
		return 0
	}
}

// scanNum scans a number literal. Letters end decimal literals so that 3kg is
// a number followed by a unit, except for an e or E that begins an exponent.
func (l *lexer) scanNum() error {
	if r, _ := l.readRune(); r == '0' {
		p := l.peek()
		if base := prefixBase(p); base != 0 {
			l.readRune()
			if digitVal(l.peek()) < base {
				return l.scanPrefixed(p, base)
			}
			l.unreadRune(p)
		}
		l.unreadRune(r)
	} else {
		l.unreadRune(r)
	}
	var dig, dot, e bool
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		if isDigit(r) {
			l.buf.WriteRune(r)
			if !e {
				dig = true
			}
			continue
		}
		if r == '.' {
			if dot || e {
				l.buf.WriteRune(r)
				return l.error("number")
			}
			if !isDigit(l.peek()) {
				// A dot that is not followed by a digit belongs to a
				// function, as in \x.2x.
				l.unreadRune(r)
				break
			}
			l.buf.WriteRune(r)
			dot = true
			continue
		}
		if (r == 'e' || r == 'E') && !e && dig && l.exponentFollows() {
			l.buf.WriteRune(r)
			if s := l.peek(); s == '+' || s == '-' {
				l.readRune()
				l.buf.WriteRune(s)
			}
			e = true
			continue
		}
		l.unreadRune(r)
		break
	}
	if !dig {
		return l.error("number")
	}
	return nil
}

// exponentFollows reports whether the input after an e is a possibly signed
// exponent.
func (l *lexer) exponentFollows() bool {
	r, err := l.readRune()
	if err != nil {
		return false
	}
	defer l.unreadRune(r)
	if isDigit(r) {
		return true
	}
	if r != '+' && r != '-' {
		return false
	}
	return isDigit(l.peek())
}

// scanPrefixed scans the digits of a literal like 0xff after its prefix.
func (l *lexer) scanPrefixed(p rune, base int) error {
	l.buf.WriteRune('0')
	l.buf.WriteRune(p)
	for {
		r, err := l.readRune()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}
		if !unicode.IsLetter(r) && !isDigit(r) {
			l.unreadRune(r)
			return nil
		}
		l.buf.WriteRune(r)
		if digitVal(r) >= base {
			return l.error("number")
		}
	}
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		switch {
		case r == '_', unicode.IsLetter(r), unicode.IsDigit(r):
			l.buf.WriteRune(r)
		default:
			l.unreadRune(r)
			return
		}
	}
}

func (l *lexer) error(kind string) error {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  l.rune,
	}
}

// LexError indicates an invalid token. It implements InputError.
type LexError struct {
	// Text is the token the lexer was scanning when the invalid rune was
	// encountered, plus the invalid rune.
	Text string
	// Kind is the type of token the lexer was scanning. This may be "number"
	// or the empty string (if a token kind hadn't been decided).
	Kind string
	// Col is the total number of runes scanned by the lexer up to and
	// including this error.
	Col int
}

func (err *LexError) Error() string {
	pos := "column " + strconv.Itoa(err.Col)
	if err.Kind == "" {
		return "invalid token at " + pos + ": " + err.Text
	}
	return "invalid " + err.Kind + " token at " + pos + ": " + err.Text
}

func (err *LexError) Pos() int {
	return err.Col
}
