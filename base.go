package calc

import "strconv"

// Base is a numeral base for reading and rendering numbers. The zero value is
// decimal without a prefix.
type Base struct {
	radix  uint8
	prefix string
}

// NewBase creates a base without a display prefix. Fails with
// BaseOutOfRangeError unless 2 <= n <= 36.
func NewBase(n uint64) (Base, error) {
	if n < 2 || n > 36 {
		return Base{}, &BaseOutOfRangeError{Base: n}
	}
	return Base{radix: uint8(n)}, nil
}

var (
	baseBinary  = Base{radix: 2, prefix: "0b"}
	baseOctal   = Base{radix: 8, prefix: "0o"}
	baseDecimal = Base{radix: 10}
	baseHex     = Base{radix: 16, prefix: "0x"}
)

// Radix returns the numeric base.
func (b Base) Radix() int {
	if b.radix == 0 {
		return 10
	}
	return int(b.radix)
}

// Prefix returns the prefix shown before numbers rendered in the base.
func (b Base) Prefix() string {
	return b.prefix
}

func (b Base) String() string {
	return "base " + strconv.Itoa(b.Radix())
}
