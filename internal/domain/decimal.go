package domain

import (
	"fmt"
	"math"

	"github.com/cockroachdb/apd/v3"
)

// Decimal is a wrapper around apd.Decimal that keeps money arithmetic exact
// and exposes a small set of error-returning helpers to the domain layer.
type Decimal struct {
	apd.Decimal
}

// DefaultContext is used for arithmetic operations.
var DefaultContext = apd.BaseContext.WithPrecision(20)

// Zero constant for convenience
var Zero = NewDecimalFromInt(0)

// NewDecimalFromInt creates a Decimal from an int64
func NewDecimalFromInt(v int64) Decimal {
	d := Decimal{}
	d.SetInt64(v)
	return d
}

// NewDecimalFromString creates a Decimal from a string
func NewDecimalFromString(v string) (Decimal, error) {
	d := Decimal{}
	if _, _, err := d.SetString(v); err != nil {
		return d, fmt.Errorf("invalid decimal string %s: %w", v, err)
	}
	return d, nil
}

// NewDecimalFromFloat creates a Decimal holding the shortest decimal
// representation of v. NaN and infinities are rejected.
func NewDecimalFromFloat(v float64) (Decimal, error) {
	d := Decimal{}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return d, fmt.Errorf("invalid decimal value %v: not a finite number", v)
	}
	if _, err := d.SetFloat64(v); err != nil {
		return d, fmt.Errorf("invalid decimal value %v: %w", v, err)
	}
	return d, nil
}

// String implements the fmt.Stringer interface.
func (d Decimal) String() string {
	return d.Decimal.String()
}

func (d Decimal) Mul(other Decimal) (Decimal, error) {
	res := Decimal{}
	if _, err := DefaultContext.Mul(&res.Decimal, &d.Decimal, &other.Decimal); err != nil {
		return res, fmt.Errorf("mul operation failed: %w", err)
	}
	return res, nil
}

func (d Decimal) Div(other Decimal) (Decimal, error) {
	if other.IsZero() {
		return Zero, fmt.Errorf("division by zero")
	}
	res := Decimal{}
	if _, err := DefaultContext.Quo(&res.Decimal, &d.Decimal, &other.Decimal); err != nil {
		return res, fmt.Errorf("div operation failed: %w", err)
	}
	return res, nil
}

func (d Decimal) IsZero() bool {
	return d.Decimal.IsZero()
}

// IsFinite reports whether d is neither infinite nor NaN.
func (d Decimal) IsFinite() bool {
	return d.Form == apd.Finite
}

func (d Decimal) Cmp(other Decimal) int {
	return d.Decimal.Cmp(&other.Decimal)
}

// Round rounds half-up to the given number of decimal places. The result
// always carries exactly that many places, so 5E+3 rounded to 2 prints as
// 5000.00. Precision grows with the integer part so large values never
// overflow the quantize.
func (d Decimal) Round(places int32) (Decimal, error) {
	res := Decimal{}
	precision := DefaultContext.Precision
	if need := d.NumDigits() + int64(d.Exponent) + int64(places); need > int64(precision) {
		precision = uint32(need)
	}
	ctx := apd.BaseContext.WithPrecision(precision)
	ctx.Rounding = apd.RoundHalfUp

	if _, err := ctx.Quantize(&res.Decimal, &d.Decimal, -places); err != nil {
		return res, fmt.Errorf("quantize operation failed: %w", err)
	}
	return res, nil
}
