package listing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newProfitListing() *Listing {
	price, fee, rent := 1000.0, 10.0, 600.0
	risk := func(l RiskLevel, v int64) RiskValue { return RiskValue{Type: l, Value: decimal.NewFromInt(v)} }
	return &Listing{
		Price:        &price,
		Fee:          &fee,
		RentCost:     &rent,
		GoodPrice:    1500,
		GoodRentCost: 900,
		DurationRisk: &DurationRisk{Value: decimal.NewFromInt(100)},
		Type: &ListingType{
			Risks: []RiskValue{
				risk(RiskLevelVeryHigh, 10), risk(RiskLevelHigh, 30), risk(RiskLevelMedium, 50), risk(RiskLevelLow, 80),
			},
			Profits: []RiskValue{
				risk(RiskLevelVeryLow, 5), risk(RiskLevelLow, 10), risk(RiskLevelMedium, 20), risk(RiskLevelHigh, 30), risk(RiskLevelVeryHigh, 50),
			},
		},
	}
}

func TestProfitRisk(t *testing.T) {
	req := require.New(t)
	p := NewProfit(newProfitListing())
	req.Equal(RiskLevelVeryHigh, p.RiskForDays(10))
	req.Equal(RiskLevelHigh, p.RiskForDays(11))
	req.Equal(RiskLevelMedium, p.RiskForDays(50))
	req.Equal(RiskLevelLow, p.RiskForDays(80))
	req.Equal(RiskLevelVeryLow, p.RiskForDays(81))
	req.Equal(RiskLevelVeryLow, NewProfit(&Listing{}).RiskForDays(5))
}

func TestProfitAmounts(t *testing.T) {
	req := require.New(t)
	p := NewProfit(newProfitListing())

	req.True(p.SellProfit(decimal.NewFromInt(900), RiskLevelMedium).IsZero())
	// medium success earns the medium bracket, 20% of 500
	req.Equal("100", p.SellProfit(decimal.NewFromInt(1500), RiskLevelMedium).String())
	// very high risk earns the very low bracket, 5% of 500
	req.Equal("25", p.Calculate(decimal.NewFromInt(1500), RiskLevelVeryHigh, 0, CommercialTypeSell).String())

	// 3000 a month is 100 a day, minus a 10 fee, over 10 days
	req.Equal("900", p.RentProfit(decimal.NewFromInt(3000), 10).String())
	req.True(p.Calculate(decimal.NewFromInt(150), RiskLevelLow, 10, CommercialTypeRent).IsZero())
}

func TestCheckPriceStatus(t *testing.T) {
	req := require.New(t)
	p := NewProfit(newProfitListing())
	req.Equal(PriceStatusLow, p.CheckPriceStatus(decimal.NewFromInt(1000), CommercialTypeSell))
	req.Equal(PriceStatusGood, p.CheckPriceStatus(decimal.NewFromInt(1500), CommercialTypeSell))
	req.Equal(PriceStatusHigh, p.CheckPriceStatus(decimal.NewFromInt(1501), CommercialTypeSell))
	req.Equal(PriceStatusLow, p.CheckPriceStatus(decimal.NewFromInt(600), CommercialTypeRent))
	req.Equal(PriceStatusGood, p.CheckPriceStatus(decimal.NewFromInt(900), CommercialTypeRent))
	req.Equal(PriceStatusHigh, p.CheckPriceStatus(decimal.NewFromInt(901), CommercialTypeRent))
}

func TestProfitRatio(t *testing.T) {
	req := require.New(t)
	p := NewProfit(newProfitListing())

	// 10 days at 10 a day against 400 profit
	ratio, ok := p.ProfitRatio(10, decimal.NewFromInt(400))
	req.True(ok)
	req.Equal("1 : 4", ratio)

	_, ok = p.ProfitRatio(0, decimal.NewFromInt(400))
	req.False(ok)
	_, ok = p.ProfitRatio(10, decimal.Zero)
	req.False(ok)
}
