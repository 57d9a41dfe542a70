package calc_test

import (
	"strings"
	"testing"

	"github.com/zephyrtronium/calc"
)

func FuzzParse(f *testing.F) {
	f.Add("x")
	f.Add("1×2")
	f.Add("3 kg + 2 m")
	f.Add(`\x.x^2`)
	f.Add("f(x)(y) -> hex")
	f.Add("a = 1; a + 1\n2")
	f.Fuzz(func(t *testing.T, s string) {
		e, err := calc.Parse(strings.NewReader(s))
		if err != nil {
			return
		}
		// Anything that parses must print to something that parses again.
		if _, err := calc.Parse(strings.NewReader(e.String())); err != nil {
			t.Errorf("%q parsed as %q, which does not parse: %v", s, e.String(), err)
		}
	})
}
