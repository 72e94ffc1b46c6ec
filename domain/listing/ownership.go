package listing

import (
	"math/big"
	"time"

	"github.com/shopspring/decimal"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/domain"
)

const (
	SecondsPerDay = 86400

	// DateLayout renders like "HH:mm - DD/MM/YY"
	DateLayout = "15:04 - 02/01/06"
)

var bigSecondsPerDay = big.NewInt(SecondsPerDay)

// IsExpired is true once now reaches the ownership timestamp
func IsExpired(ts int64, now time.Time) bool {
	return now.Unix() >= ts
}

// IsAboutToExpire is true within the last day before expiry, and after it
func IsAboutToExpire(ts int64, now time.Time) bool {
	return now.Unix() >= ts-SecondsPerDay
}

// EstimateOwnership returns the expiry after paying amount at dailyPayment per day. An expired
// ownership restarts from now. A zero rate buys nothing.
func EstimateOwnership(amt, dailyPayment, current *big.Int, now time.Time) int64 {
	base := now.Unix()
	if current != nil && !IsExpired(current.Int64(), now) {
		base = current.Int64()
	}
	if amt == nil || dailyPayment == nil || dailyPayment.Sign() == 0 {
		return base
	}
	credit := new(big.Int).Mul(amt, bigSecondsPerDay)
	credit.Div(credit, dailyPayment)
	return base + credit.Int64()
}

// FormatUnixDate renders ts in loc, a nil loc means UTC
func FormatUnixDate(ts int64, loc *time.Location) string {
	if loc == nil {
		loc = time.UTC
	}
	return time.Unix(ts, 0).In(loc).Format(DateLayout)
}

// EstimateWithdrawAmount is the token value of the ownership time left, zero once expired
func EstimateWithdrawAmount(dailyPayment *big.Int, ownership int64, now time.Time) decimal.Decimal {
	left := ownership - now.Unix()
	if left <= 0 || dailyPayment == nil {
		return decimal.Zero
	}
	return decimal.NewFromInt(left).
		Mul(amount.ToDecimal(dailyPayment)).
		Div(decimal.NewFromInt(SecondsPerDay))
}

// SpendingFromSeconds is the cost of holding ownership for the given seconds
func SpendingFromSeconds(dailyPayment *big.Int, seconds int64) *big.Int {
	if dailyPayment == nil || seconds <= 0 {
		return new(big.Int)
	}
	spending := new(big.Int).Mul(dailyPayment, big.NewInt(seconds))
	return spending.Div(spending, bigSecondsPerDay)
}

// ExtendPrice is the cost of days more days, plus the gap until startDate when it lies ahead
func ExtendPrice(dailyPayment *big.Int, days int64, startDate, now time.Time) *big.Int {
	if dailyPayment == nil || days <= 0 {
		return new(big.Int)
	}
	price := new(big.Int).Mul(dailyPayment, big.NewInt(days))
	if gap := startDate.Unix() - now.Unix(); gap > 0 {
		price.Add(price, SpendingFromSeconds(dailyPayment, gap))
	}
	return price
}

// ValidateOwnership is true only for the current, unexpired owner
func ValidateOwnership(viewer domain.Address, l *Listing, now time.Time) bool {
	if l == nil || l.Ownership == nil || l.Owner == nil || l.Owner.IsEmpty() {
		return false
	}
	if viewer.IsEmpty() || !viewer.Equals(*l.Owner) {
		return false
	}
	return !IsExpired(l.Ownership.ToInt().Int64(), now)
}

// DateDifference counts whole days between a and b, in either order
func DateDifference(a, b time.Time) int {
	d := a.Sub(b)
	if d < 0 {
		d = -d
	}
	return int(d / (24 * time.Hour))
}

// EstimateOwnershipDate is EstimateOwnership rendered with DateLayout
func EstimateOwnershipDate(amt, dailyPayment, current *big.Int, now time.Time, loc *time.Location) string {
	return FormatUnixDate(EstimateOwnership(amt, dailyPayment, current, now), loc)
}
