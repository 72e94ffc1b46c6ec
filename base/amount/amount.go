// Package amount converts between 18-decimal on-chain integers and the grouped decimal strings
// shown to users. Nothing here returns an error; bad input degrades to "", "0" or zero.
package amount

import (
	"math/big"
	"regexp"
	"strings"

	"github.com/ethereum/go-ethereum/params"
	"github.com/shopspring/decimal"
)

const (
	TokenSymbol   = "ANFT"
	MaxSupply     = 1232000000
	UsdToVndRatio = 23300

	// DefaultDecimals is how many fraction digits are kept for display
	DefaultDecimals = 4

	tokenDecimals = 18
)

var (
	nonNumeric = regexp.MustCompile(`[^\d.-]`)
	weiPerEth  = big.NewInt(params.Ether)
)

// NoMoreThanOneDot reports whether s holds at most one decimal point
func NoMoreThanOneDot(s string) bool {
	return strings.Count(s, ".") <= 1
}

// InsertCommas groups the integer part of s by thousands and keeps at most 4 fraction digits.
// Input with more than one '.' is rejected and yields "".
func InsertCommas(s string) string {
	return InsertCommasN(s, DefaultDecimals)
}

func InsertCommasN(s string, n int) string {
	if !NoMoreThanOneDot(s) {
		return ""
	}
	parts := strings.Split(s, ".")
	parts[0] = groupThousands(parts[0])
	if len(parts) > 1 && parts[1] != "" {
		parts[1] = truncate(parts[1], n)
	}
	return strings.Join(parts, ".")
}

// UnInsertCommas removes grouping commas from the integer part and keeps at most 4 fraction digits
func UnInsertCommas(s string) string {
	parts := strings.Split(s, ".")
	parts[0] = strings.ReplaceAll(parts[0], ",", "")
	if len(parts) > 1 && parts[1] != "" {
		parts[1] = truncate(parts[1], DefaultDecimals)
	}
	return strings.Join(parts, ".")
}

// FormatEther renders an 18-decimal integer with a mandatory fraction part: 1e18 is "1.0".
func FormatEther(v *big.Int) string {
	if v == nil {
		return "0.0"
	}
	abs := new(big.Int).Abs(v)
	whole, frac := new(big.Int).QuoRem(abs, weiPerEth, new(big.Int))

	fraction := frac.String()
	fraction = strings.Repeat("0", tokenDecimals-len(fraction)) + fraction
	fraction = strings.TrimRight(fraction, "0")
	if fraction == "" {
		fraction = "0"
	}

	sign := ""
	if v.Sign() < 0 {
		sign = "-"
	}
	return sign + whole.String() + "." + fraction
}

// ParseEther strips everything but digits, '.' and '-' and scales the result by 1e18.
// Empty, malformed or over-precise input yields zero.
func ParseEther(s string) *big.Int {
	s = nonNumeric.ReplaceAllString(s, "")
	if s == "" {
		return new(big.Int)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return new(big.Int)
	}
	scaled := d.Shift(tokenDecimals)
	if !scaled.Equal(scaled.Truncate(0)) {
		return new(big.Int)
	}
	return scaled.BigInt()
}

// ToDecimal converts an 18-decimal integer into a decimal token amount
func ToDecimal(v *big.Int) decimal.Decimal {
	if v == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(v, -tokenDecimals)
}

// FormatToken renders an amount for display: "_" when unknown, otherwise 4 fixed decimals,
// grouped, with the token symbol appended on request.
func FormatToken(v *big.Int, withSymbol bool) string {
	if v == nil {
		return "_"
	}
	formatted := InsertCommas(ToDecimal(v).Truncate(DefaultDecimals).StringFixed(DefaultDecimals))
	if withSymbol {
		return formatted + " " + TokenSymbol
	}
	return formatted
}

func truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	if len(s) > n {
		return s[:n]
	}
	return s
}

// groupThousands inserts ',' before every run of digits whose length is a positive multiple of
// three and which ends the digit run, at positions that are not word boundaries.
func groupThousands(s string) string {
	if len(s) < 4 {
		return s
	}
	var b strings.Builder
	b.Grow(len(s) + len(s)/3)
	for i := 0; i < len(s); i++ {
		if i > 0 && isWord(s[i-1]) == isWord(s[i]) {
			if k := digitRun(s[i:]); k >= 3 && k%3 == 0 {
				b.WriteByte(',')
			}
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func digitRun(s string) int {
	n := 0
	for n < len(s) && isDigit(s[n]) {
		n++
	}
	return n
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isWord(c byte) bool {
	return isDigit(c) || c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
