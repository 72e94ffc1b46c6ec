package amount

import (
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

type MoneyUnit string

const (
	MoneyUnitNone        MoneyUnit = ""
	MoneyUnitMillion     MoneyUnit = "million"
	MoneyUnitBillion     MoneyUnit = "billion"
	MoneyUnitTrillion    MoneyUnit = "trillion"
	MoneyUnitQuadrillion MoneyUnit = "quadrillion"
)

var unitByExponent = map[int]MoneyUnit{
	6:  MoneyUnitMillion,
	9:  MoneyUnitBillion,
	12: MoneyUnitTrillion,
	15: MoneyUnitQuadrillion,
}

// Money is a magnitude expressed as a 2-decimal coefficient of a named unit
type Money struct {
	Number string    `json:"number"`
	Unit   MoneyUnit `json:"unit"`
	value  float64
}

// String renders "<number> <unit>", or the grouped raw value when no unit applies
func (m Money) String() string {
	if m.Unit == MoneyUnitNone {
		return InsertCommas(strconv.FormatFloat(m.value, 'f', -1, 64))
	}
	return m.Number + " " + string(m.Unit)
}

// MoneyUnitTranslate takes the digit count of the truncated value, keeps digitCount % 3 leading
// digits and divides by the remaining power of ten. 3_000_000 is 3.00 million, 100_000_000 is
// 0.10 billion.
func MoneyUnitTranslate(v float64) Money {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return Money{Number: "0.00"}
	}
	digits := len(strconv.FormatFloat(math.Abs(math.Trunc(v)), 'f', 0, 64))
	exponent := digits - digits%3
	return Money{
		Number: strconv.FormatFloat(v/math.Pow10(exponent), 'f', 2, 64),
		Unit:   unitByExponent[exponent],
		value:  v,
	}
}

// Ratio is n : d
type Ratio struct {
	Numerator   decimal.Decimal `json:"numerator"`
	Denominator decimal.Decimal `json:"denominator"`
}

func (r Ratio) String() string {
	return r.Numerator.String() + " : " + InsertCommas(r.Denominator.String())
}

// CalculateRatio reduces a/b by their greatest common divisor. When the reduced numerator is
// not 1 the denominator is divided by it and the numerator pinned to 1, so the result always
// reads "1 : x".
func CalculateRatio(a, b decimal.Decimal) Ratio {
	divisor := gcd(a.Abs(), b.Abs())
	if divisor.IsZero() {
		return Ratio{Numerator: a, Denominator: b}
	}
	numerator, denominator := a.Div(divisor), b.Div(divisor)
	if !numerator.Equal(decimal.NewFromInt(1)) && !numerator.IsZero() {
		denominator = denominator.Div(numerator)
		numerator = decimal.NewFromInt(1)
	}
	return Ratio{Numerator: numerator, Denominator: denominator}
}

func gcd(a, b decimal.Decimal) decimal.Decimal {
	for !b.IsZero() {
		a, b = b, a.Mod(b)
	}
	return a
}
