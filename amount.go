package ledger

import (
	"bytes"
	"errors"
	"fmt"
	"regexp"

	"github.com/shopspring/decimal"
)

var (
	// ErrInvalidAmount is returned when a decimal literal cannot be parsed exactly.
	ErrInvalidAmount = errors.New("invalid decimal literal")
	// ErrNegativeAmount is returned when a negative decimal is given where a non-negative one is required.
	ErrNegativeAmount = errors.New("negative decimal")
)

// decimalLiteral is the only accepted syntax: no exponent, no thousands separator.
var decimalLiteral = regexp.MustCompile(`^[+-]?[0-9]+(\.[0-9]+)?$`)

// parseExact parses s without any rounding, keeping trailing zeros as the scale.
func parseExact(s string) (decimal.Decimal, error) {
	if !decimalLiteral.MatchString(s) {
		return decimal.Decimal{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%w: %q: %w", ErrInvalidAmount, s, err)
	}
	return d, nil
}

// scaleOf returns the number of fractional digits carried by d.
func scaleOf(d decimal.Decimal) uint32 {
	if exp := d.Exponent(); exp < 0 {
		return uint32(-exp)
	}
	return 0
}

// formatExact prints d with exactly its scale, trailing zeros included.
func formatExact(d decimal.Decimal) string {
	return d.StringFixed(int32(scaleOf(d)))
}

// unquote strips the optional quotes around a json amount.
func unquote(data []byte) string {
	data = bytes.TrimSpace(data)
	if len(data) >= 2 && data[0] == '"' && data[len(data)-1] == '"' {
		data = data[1 : len(data)-1]
	}
	return string(data)
}

// Amount is a signed decimal value that remembers its scale, the number of
// digits written after the decimal point.
//
// The zero value is 0 with scale 0.
type Amount struct {
	value decimal.Decimal
}

// ParseAmount parses an exact decimal literal like "-12.30".
func ParseAmount(s string) (Amount, error) {
	d, err := parseExact(s)
	if err != nil {
		return Amount{}, fmt.Errorf("parsing amount: %w", err)
	}
	return Amount{value: d}, nil
}

// MustParseAmount is like ParseAmount but panics on error.
func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Scale returns the number of fractional digits ("1.50" has scale 2).
func (a Amount) Scale() uint32 { return scaleOf(a.value) }

// Add returns a+b. The result scale is the largest of both scales.
func (a Amount) Add(b Amount) Amount { return Amount{value: a.value.Add(b.value)} }

// Sub returns a-b. The result scale is the largest of both scales.
func (a Amount) Sub(b Amount) Amount { return Amount{value: a.value.Sub(b.value)} }

// Neg returns -a.
func (a Amount) Neg() Amount { return Amount{value: a.value.Neg()} }

// Sign returns -1, 0 or +1.
func (a Amount) Sign() int { return a.value.Sign() }

func (a Amount) IsZero() bool { return a.value.IsZero() }

func (a Amount) IsNegative() bool { return a.value.IsNegative() }

// Decimal returns the underlying decimal value.
func (a Amount) Decimal() decimal.Decimal { return a.value }

// Equal reports whether a and b have the same value and the same scale.
func (a Amount) Equal(b Amount) bool {
	return a.value.Equal(b.value) && a.Scale() == b.Scale()
}

// String returns the exact representation, trailing zeros included.
func (a Amount) String() string { return formatExact(a.value) }

// SignedString returns the representation with an explicit sign, "+12.30" or "-0.01".
func (a Amount) SignedString() string {
	if a.value.IsNegative() {
		return a.String()
	}
	return "+" + a.String()
}

// MarshalJSON writes the amount as a bare json number that keeps its scale.
func (a Amount) MarshalJSON() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalJSON reads a json number or string.
func (a *Amount) UnmarshalJSON(data []byte) error {
	v, err := ParseAmount(unquote(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}

// NonNegativeAmount is an Amount that is known to be greater or equal to zero.
type NonNegativeAmount struct {
	value decimal.Decimal
}

// ParseNonNegativeAmount parses an exact decimal literal and rejects negative
// values with ErrNegativeAmount. "-0" is accepted as zero.
func ParseNonNegativeAmount(s string) (NonNegativeAmount, error) {
	d, err := parseExact(s)
	if err != nil {
		return NonNegativeAmount{}, fmt.Errorf("parsing non-negative amount: %w", err)
	}
	// decimal has no negative zero, so "-0.00" has a zero sign here.
	if d.Sign() < 0 {
		return NonNegativeAmount{}, fmt.Errorf("parsing non-negative amount %q: %w", s, ErrNegativeAmount)
	}
	return NonNegativeAmount{value: d}, nil
}

// MustParseNonNegativeAmount is like ParseNonNegativeAmount but panics on error.
func MustParseNonNegativeAmount(s string) NonNegativeAmount {
	a, err := ParseNonNegativeAmount(s)
	if err != nil {
		panic(err.Error())
	}
	return a
}

// Amount converts n into a signed Amount, without loss.
func (n NonNegativeAmount) Amount() Amount { return Amount{value: n.value} }

func (n NonNegativeAmount) Scale() uint32 { return scaleOf(n.value) }

func (n NonNegativeAmount) String() string { return formatExact(n.value) }

// Equal reports whether n and m have the same value and the same scale.
func (n NonNegativeAmount) Equal(m NonNegativeAmount) bool {
	return n.value.Equal(m.value) && n.Scale() == m.Scale()
}

func (n NonNegativeAmount) MarshalJSON() ([]byte, error) { return []byte(n.String()), nil }

func (n *NonNegativeAmount) UnmarshalJSON(data []byte) error {
	v, err := ParseNonNegativeAmount(unquote(data))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
