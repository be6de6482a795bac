package core

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// Decimal is an exact fixed-point value: rawValue / 10^precision. It backs
// the "structured" amount render form and the internal computation behind
// the "string" render form, avoiding the float rounding that a naive
// float64 division would introduce for large raw values.
type Decimal struct {
	raw       *uint256.Int
	precision uint8
}

func newDecimal(raw uint64, precision uint8) Decimal {
	return Decimal{raw: uint256.NewInt(raw), precision: precision}
}

// Raw returns the unscaled integer value as decoded from the wire.
func (d Decimal) Raw() uint64 { return d.raw.Uint64() }

// Precision returns the number of implied decimal places.
func (d Decimal) Precision() uint8 { return d.precision }

// String renders the exact fixed-point decimal, e.g. raw=1234, precision=3
// -> "1.234". Zero precision omits the decimal point entirely.
func (d Decimal) String() string {
	if d.precision == 0 {
		return d.raw.Dec()
	}
	scale := new(uint256.Int).Exp(uint256.NewInt(10), uint256.NewInt(uint64(d.precision)))
	intPart := new(uint256.Int).Div(d.raw, scale)
	fracPart := new(uint256.Int).Mod(d.raw, scale)
	fracStr := fracPart.Dec()
	if pad := int(d.precision) - len(fracStr); pad > 0 {
		fracStr = strings.Repeat("0", pad) + fracStr
	}
	return intPart.Dec() + "." + fracStr
}

// Float64 is a convenience accessor for display only; it is never used on a
// round-trip-critical path.
func (d Decimal) Float64() float64 {
	f, _ := new(big.Float).SetString(d.String())
	if f == nil {
		return 0
	}
	out, _ := f.Float64()
	return out
}

// MarshalJSON renders the decimal as a bare JSON number so API consumers
// don't have to parse a quoted string.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return []byte(d.String()), nil
}

// Amount is the "structured" render form of an amount field.
type Amount struct {
	Value Decimal `json:"amount"`
	Asset string  `json:"asset"`
}

func stripNUL(s string) string {
	return strings.ReplaceAll(s, "\x00", "")
}

// AmountRenderer lets a caller substitute its own domain Amount type for
// either render mode. A nil AmountRenderer falls back to the built-in
// structured/string forms.
type AmountRenderer func(raw uint64, precision uint8, symbol string) interface{}

func formatAmountString(raw uint64, precision uint8, symbol string) string {
	d := newDecimal(raw, precision)
	return fmt.Sprintf("%s %s", d.String(), symbol)
}

func decodeAmount(c *Cursor, rc RenderConfig) (interface{}, error) {
	raw, err := c.ReadUint64()
	if err != nil {
		return nil, err
	}
	precision, err := c.ReadUint8()
	if err != nil {
		return nil, err
	}
	symBytes, err := c.ReadFixedBytes(7)
	if err != nil {
		return nil, err
	}
	symbol := stripNUL(string(symBytes))

	if rc.AmountFn != nil {
		return rc.AmountFn(raw, precision, symbol), nil
	}
	if rc.AmountFormat == AmountFormatString {
		return formatAmountString(raw, precision, symbol), nil
	}
	return Amount{Value: newDecimal(raw, precision), Asset: symbol}, nil
}
