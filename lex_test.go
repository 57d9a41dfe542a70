package calc

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLex(t *testing.T) {
	cases := []struct {
		src    string
		tokens []lexToken
		errs   int
	}{
		// spaces
		{"", nil, 0},
		{" \t \r\n ", nil, 0},
		// numbers
		{"0", []lexToken{{text: "0", kind: tokenNum, pos: 1}}, 0},
		{"9876543210", []lexToken{{text: "9876543210", kind: tokenNum, pos: 1}}, 0},
		{"1 0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "0", kind: tokenNum, pos: 3, space: true}}, 0},
		{"1.0", []lexToken{{text: "1.0", kind: tokenNum, pos: 1}}, 0},
		{"-1", []lexToken{{text: "-", kind: tokenOp, pos: 1}, {text: "1", kind: tokenNum, pos: 2}}, 0},
		{"1e1", []lexToken{{text: "1e1", kind: tokenNum, pos: 1}}, 0},
		{"1e", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "e", kind: tokenIdent, pos: 2}}, 0},
		{"1e+1", []lexToken{{text: "1e+1", kind: tokenNum, pos: 1}}, 0},
		{"1e-1", []lexToken{{text: "1e-1", kind: tokenNum, pos: 1}}, 0},
		{"1.1.1", []lexToken{{pos: 1}, {text: "1", kind: tokenNum, pos: 5}}, 1},
		{"1.0e1", []lexToken{{text: "1.0e1", kind: tokenNum, pos: 1}}, 0},
		{".1", []lexToken{{text: ".1", kind: tokenNum, pos: 1}}, 0},
		{".1e1", []lexToken{{text: ".1e1", kind: tokenNum, pos: 1}}, 0},
		{"1+0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "+", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"1*0", []lexToken{{text: "1", kind: tokenNum, pos: 1}, {text: "*", kind: tokenOp, pos: 2}, {text: "0", kind: tokenNum, pos: 3}}, 0},
		{"(1)", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: "1", kind: tokenNum, pos: 2}, {text: ")", kind: tokenClose, pos: 3}}, 0},
		{"3kg", []lexToken{{text: "3", kind: tokenNum, pos: 1}, {text: "kg", kind: tokenIdent, pos: 2}}, 0},
		{"0xff", []lexToken{{text: "0xff", kind: tokenNum, pos: 1}}, 0},
		{"0o17", []lexToken{{text: "0o17", kind: tokenNum, pos: 1}}, 0},
		{"0b101", []lexToken{{text: "0b101", kind: tokenNum, pos: 1}}, 0},
		{"0b102", []lexToken{{pos: 1}}, 1},
		{"0x", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}}, 0},
		// identifiers
		{"e", []lexToken{{text: "e", kind: tokenIdent, pos: 1}}, 0},
		{"e1", []lexToken{{text: "e1", kind: tokenIdent, pos: 1}}, 0},
		{"π", []lexToken{{text: "π", kind: tokenIdent, pos: 1}}, 0},
		{"eπ", []lexToken{{text: "eπ", kind: tokenIdent, pos: 1}}, 0},
		{"_1234_", []lexToken{{text: "_1234_", kind: tokenIdent, pos: 1}}, 0},
		{"e(", []lexToken{{text: "e", kind: tokenIdent, pos: 1}, {text: "(", kind: tokenOpen, pos: 2}}, 0},
		{"5%", []lexToken{{text: "5", kind: tokenNum, pos: 1}, {text: "%", kind: tokenIdent, pos: 2}}, 0},
		{"°", []lexToken{{text: "°", kind: tokenIdent, pos: 1}}, 0},
		// operators
		{"+", []lexToken{{text: "+", kind: tokenOp, pos: 1}}, 0},
		{"++", []lexToken{{text: "+", kind: tokenOp, pos: 1}, {text: "+", kind: tokenOp, pos: 2}}, 0},
		{"a--b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "-", kind: tokenOp, pos: 2}, {text: "-", kind: tokenOp, pos: 3}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		{"a->b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "->", kind: tokenOp, pos: 2}, {text: "b", kind: tokenIdent, pos: 4}}, 0},
		{"a→b", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "->", kind: tokenOp, pos: 2}, {text: "b", kind: tokenIdent, pos: 3}}, 0},
		{"×÷^", []lexToken{{text: "×", kind: tokenOp, pos: 1}, {text: "÷", kind: tokenOp, pos: 2}, {text: "^", kind: tokenOp, pos: 3}}, 0},
		// functions and assignment
		{"\\x.x", []lexToken{{text: "\\", kind: tokenLambda, pos: 1}, {text: "x", kind: tokenIdent, pos: 2}, {text: ".", kind: tokenDot, pos: 3}, {text: "x", kind: tokenIdent, pos: 4}}, 0},
		{"x:x", []lexToken{{text: "x", kind: tokenIdent, pos: 1}, {text: ":", kind: tokenColon, pos: 2}, {text: "x", kind: tokenIdent, pos: 3}}, 0},
		{".", []lexToken{{text: ".", kind: tokenDot, pos: 1}}, 0},
		{"a = 1", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {text: "=", kind: tokenAssign, pos: 3, space: true}, {text: "1", kind: tokenNum, pos: 5, space: true}}, 0},
		// brackets and separators
		{"()", []lexToken{{text: "(", kind: tokenOpen, pos: 1}, {text: ")", kind: tokenClose, pos: 2}}, 0},
		{"[]", []lexToken{{text: "[", kind: tokenOpen, pos: 1}, {text: "]", kind: tokenClose, pos: 2}}, 0},
		{"{}", []lexToken{{text: "{", kind: tokenOpen, pos: 1}, {text: "}", kind: tokenClose, pos: 2}}, 0},
		{",;", []lexToken{{text: ",", kind: tokenSep, pos: 1}, {text: ";", kind: tokenSep, pos: 2}}, 0},
		// erroneous symbols
		{"$", []lexToken{{pos: 1}}, 1},
		{"a$", []lexToken{{text: "a", kind: tokenIdent, pos: 1}, {pos: 2}}, 1},
		{"$a", []lexToken{{pos: 1}, {text: "a", kind: tokenIdent, pos: 2}}, 1},
		{"0$", []lexToken{{text: "0", kind: tokenNum, pos: 1}, {pos: 2}}, 1},
		{"$0", []lexToken{{pos: 1}, {text: "0", kind: tokenNum, pos: 2}}, 1},
		{"$$", []lexToken{{pos: 1}, {pos: 2}}, 2},
	}
	for _, c := range cases {
		scan := lex(strings.NewReader(c.src))
		var got []lexToken
		errs := 0
		for {
			tok, err := scan.next("")
			if errors.Is(err, io.EOF) {
				t.Errorf("scanning %q: unexpected io.EOF", c.src)
				break
			}
			if err != nil {
				errs++
			} else if tok.kind == tokenEOF {
				break
			}
			got = append(got, tok)
		}
		if len(got) != len(c.tokens) {
			t.Errorf("scanning %q: want %v, got %v", c.src, c.tokens, got)
		} else {
			for i, want := range c.tokens {
				if got[i] != want {
					t.Errorf("scanning %q: token %d: want %v, got %v", c.src, i, want, got[i])
				}
			}
		}
		if errs != c.errs {
			t.Errorf("scanning %q: want %d errors, got %d", c.src, c.errs, errs)
		}
	}
}

func TestLexStopOn(t *testing.T) {
	scan := lex(strings.NewReader("1\n2"))
	want := []lexToken{
		{text: "1", kind: tokenNum, pos: 1},
		{kind: tokenEOF, pos: 2},
	}
	for _, w := range want {
		got, err := scan.next("\n")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != w {
			t.Errorf("want %v, got %v", w, got)
		}
	}
	if scan.end {
		t.Error("lexer ended at a stopping newline")
	}
	scan.resume()
	got, err := scan.next("\n")
	if err != nil {
		t.Fatalf("unexpected error after resume: %v", err)
	}
	if w := (lexToken{text: "2", kind: tokenNum, pos: 3}); got != w {
		t.Errorf("after resume: want %v, got %v", w, got)
	}
}
