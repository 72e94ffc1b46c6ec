package listing

import (
	"github.com/shopspring/decimal"

	"github.com/anft-xyz/goapi/base/amount"
)

type PriceStatus string

const (
	PriceStatusLow  PriceStatus = "LOW"
	PriceStatusGood PriceStatus = "GOOD"
	PriceStatusHigh PriceStatus = "HIGH"
)

// daysPerMonth converts a monthly rent into a daily one
const daysPerMonth = 30

// profitBySuccess pairs a forecast success level with the profit bracket it earns: the riskier
// the forecast, the lower the bracket.
var profitBySuccess = map[RiskLevel]RiskLevel{
	RiskLevelVeryHigh: RiskLevelVeryLow,
	RiskLevelHigh:     RiskLevelLow,
	RiskLevelMedium:   RiskLevelMedium,
	RiskLevelLow:      RiskLevelHigh,
	RiskLevelVeryLow:  RiskLevelVeryHigh,
}

// Profit evaluates an owner's asking prices against a listing's business data
type Profit struct {
	SellPrice     decimal.Decimal
	PricePerDay   decimal.Decimal
	GoodPrice     decimal.Decimal
	GoodRentPrice decimal.Decimal
	RentPrice     decimal.Decimal
	MaximumStage  decimal.Decimal
	risks         map[RiskLevel]decimal.Decimal
	profits       map[RiskLevel]decimal.Decimal
}

func positive(v *float64) decimal.Decimal {
	if v == nil || *v <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*v)
}

func NewProfit(l *Listing) *Profit {
	p := &Profit{
		SellPrice:     positive(l.Price),
		PricePerDay:   positive(l.Fee),
		GoodPrice:     positive(&l.GoodPrice),
		GoodRentPrice: positive(&l.GoodRentCost),
		RentPrice:     positive(l.RentCost),
		risks:         map[RiskLevel]decimal.Decimal{},
		profits:       map[RiskLevel]decimal.Decimal{},
	}
	if l.DurationRisk != nil {
		p.MaximumStage = l.DurationRisk.Value
	}
	if l.Type != nil {
		for _, r := range l.Type.Risks {
			p.risks[r.Type] = r.Value
		}
		for _, r := range l.Type.Profits {
			p.profits[r.Type] = r.Value
		}
	}
	return p
}

// SuccessRateForecast buckets a registration length, as a percentage of the maximum stage,
// against the listing type's risk thresholds.
func (p *Profit) SuccessRateForecast(percent decimal.Decimal) RiskLevel {
	switch {
	case percent.LessThanOrEqual(p.risks[RiskLevelVeryHigh]):
		return RiskLevelVeryHigh
	case percent.LessThanOrEqual(p.risks[RiskLevelHigh]):
		return RiskLevelHigh
	case percent.LessThanOrEqual(p.risks[RiskLevelMedium]):
		return RiskLevelMedium
	case percent.LessThanOrEqual(p.risks[RiskLevelLow]):
		return RiskLevelLow
	}
	return RiskLevelVeryLow
}

// RiskForDays forecasts the success level of holding ownership for days
func (p *Profit) RiskForDays(days int64) RiskLevel {
	if p.MaximumStage.IsZero() {
		return RiskLevelVeryLow
	}
	percent := decimal.NewFromInt(days).Div(p.MaximumStage).Mul(decimal.NewFromInt(100))
	return p.SuccessRateForecast(percent)
}

// SellProfit is the owner's share of a sale above the listing price
func (p *Profit) SellProfit(price decimal.Decimal, risk RiskLevel) decimal.Decimal {
	if price.LessThanOrEqual(p.SellPrice) {
		return decimal.Zero
	}
	share := p.profits[profitBySuccess[risk]].Div(decimal.NewFromInt(100))
	return price.Sub(p.SellPrice).Mul(share)
}

// RentProfit is the monthly rent earned over days minus the fee paid for them
func (p *Profit) RentProfit(monthlyPrice decimal.Decimal, days int64) decimal.Decimal {
	d := decimal.NewFromInt(days)
	earned := monthlyPrice.Div(decimal.NewFromInt(daysPerMonth)).Mul(d)
	paid := p.PricePerDay.Mul(d)
	if earned.GreaterThan(paid) {
		return earned.Sub(paid)
	}
	return decimal.Zero
}

func (p *Profit) Calculate(price decimal.Decimal, risk RiskLevel, days int64, t CommercialType) decimal.Decimal {
	if t == CommercialTypeSell {
		return p.SellProfit(price, risk)
	}
	return p.RentProfit(price, days)
}

// CheckPriceStatus compares an asking price with the listing price and the good price threshold
func (p *Profit) CheckPriceStatus(price decimal.Decimal, t CommercialType) PriceStatus {
	floor, good := p.RentPrice, p.GoodRentPrice
	if t == CommercialTypeSell {
		floor, good = p.SellPrice, p.GoodPrice
	}
	if price.LessThanOrEqual(floor) {
		return PriceStatusLow
	}
	if price.LessThanOrEqual(good) {
		return PriceStatusGood
	}
	return PriceStatusHigh
}

// ProfitRatio renders the fee paid over days against the profit as "1 : x". It is false when
// either input is zero.
func (p *Profit) ProfitRatio(days int64, profit decimal.Decimal) (string, bool) {
	if days == 0 || profit.IsZero() {
		return "", false
	}
	spent := p.PricePerDay.Mul(decimal.NewFromInt(days))
	return amount.CalculateRatio(spent, profit).String(), true
}
