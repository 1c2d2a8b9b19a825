package payments

import (
	"errors"
	"fmt"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// OutputPrecision is the number of fractional digits kept when an Amount
// leaves the engine. Internal arithmetic is exact; rounding happens only at
// the output boundary.
const OutputPrecision = 4

// maxMagnitude bounds the representable range. decimal.Decimal itself grows
// arbitrarily, so the engine enforces the range and reports crossing it as
// an overflow instead of silently accumulating absurd values.
var maxMagnitude = decimal.New(1, 15) // 10^15

// ErrOverflow reports an Amount that left the representable range.
var ErrOverflow = errors.New("amount out of representable range")

// Amount is a signed fixed-point monetary value.
type Amount struct {
	value decimal.Decimal
}

// A is a convenient factory for Amount.
func A[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) Amount {
	return Amount{value: newDecimal(value)}
}

// newDecimal is a convenient factory for decimal.Decimal
func newDecimal[T float32 | float64 | int | int32 | int64 | uint | uint32 | uint64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float32:
		return decimal.NewFromFloat32(v)
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int32:
		return decimal.NewFromInt32(v)
	case int64:
		return decimal.NewFromInt(v)
	case uint:
		return decimal.NewFromUint64(uint64(v))
	case uint32:
		return decimal.NewFromUint64(uint64(v))
	case uint64:
		return decimal.NewFromUint64(v)
	default:
		panic("unsupported type")
	}
}

// ParseAmount parses a decimal string like "1.5" or "0.0001" into an Amount.
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("invalid amount %q: %w", s, err)
	}
	return Amount{value: d}, nil
}

// binary operators, exact, no rounding.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

func (a Amount) Equal(b Amount) bool              { return a.value.Equal(b.value) }
func (a Amount) LessThan(b Amount) bool           { return a.value.LessThan(b.value) }
func (a Amount) GreaterThan(b Amount) bool        { return a.value.GreaterThan(b.value) }
func (a Amount) GreaterThanOrEqual(b Amount) bool { return a.value.GreaterThanOrEqual(b.value) }
func (a Amount) IsZero() bool                     { return a.value.IsZero() }
func (a Amount) IsPositive() bool                 { return a.value.IsPositive() }
func (a Amount) IsNegative() bool                 { return a.value.IsNegative() }

// Overflows reports whether the value left the representable range.
func (a Amount) Overflows() bool {
	return a.value.Abs().GreaterThanOrEqual(maxMagnitude)
}

// Round rounds to the output precision using round-half-to-even, so a value
// exactly halfway between two representable outputs goes to the even
// neighbor (1.00005 -> 1.0000, 1.00015 -> 1.0002).
func (a Amount) Round() Amount {
	return Amount{value: a.value.RoundBank(OutputPrecision)}
}

// String returns the exact value, for diagnostics. Output formatting goes
// through StringFixed.
func (a Amount) String() string { return a.value.String() }

// StringFixed renders the value rounded half-to-even with exactly four
// fractional digits, e.g. "7.0000".
func (a Amount) StringFixed() string {
	return a.value.RoundBank(OutputPrecision).StringFixed(OutputPrecision)
}

// Format renders the value in a display currency, e.g. "$1,234.50" for USD.
// The value is rounded half-to-even to the currency's own fraction.
func (a Amount) Format(currency string) string {
	cur := *money.New(0, currency).Currency()
	shifted := a.value.RoundBank(int32(cur.Fraction)).Shift(int32(cur.Fraction))
	return cur.Formatter().Format(shifted.IntPart())
}
