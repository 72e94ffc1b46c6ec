package listing

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/suite"
)

type filterSuite struct {
	suite.Suite
	validate *validator.Validate
}

func TestFilter(t *testing.T) {
	suite.Run(t, new(filterSuite))
}

func (s *filterSuite) SetupTest() {
	s.validate = validator.New()
	s.Require().NoError(RegisterValidations(s.validate))
}

func (s *filterSuite) TestValuesStripsZeroFields() {
	f := DefaultFilter()
	f.ProvinceCode = "01"
	f.FeeGte = 0
	f.FeeLte = 1000000

	v := f.Values()
	s.Equal("5", v.Get("size"))
	s.Equal(DefaultSort, v.Get("sort"))
	s.Equal("01", v.Get("provinceCode"))
	s.Equal("1000000", v.Get("feeLte"))
	for _, absent := range []string{"page", "feeGte", "owner", "districtCode", "quality"} {
		_, ok := v[absent]
		s.False(ok, absent)
	}
}

func (s *filterSuite) TestApplyRanges() {
	f := Filter{MiningFeeRange: UnitRangeMedium, AreaRange: UnitRangeVeryHigh}
	f.ApplyRanges()
	s.Equal(float64(5000000), f.FeeGte)
	s.Equal(float64(10000000), f.FeeLte)
	s.Equal(float64(300), f.AreaGte)
	s.Equal(float64(400), f.AreaLte)

	f = Filter{FeeGte: 7, FeeLte: 9}
	f.ApplyRanges()
	s.Equal(float64(7), f.FeeGte)

	f = Filter{MiningFeeRange: "HUGE", FeeGte: 7, FeeLte: 9}
	f.ApplyRanges()
	s.Zero(f.FeeGte)
	s.Zero(f.FeeLte)
}

func (s *filterSuite) TestSetOwnership() {
	f := Filter{}
	f.SetOwnership(OwnershipYetOwned, "0xabc")
	s.Equal(LevelPrimary, f.Level)
	s.Equal("", f.Owner)
	_, sent := f.Values()["owner"]
	s.False(sent)

	f.SetOwnership(OwnershipOwned, "0xABC")
	s.Equal(LevelAll, f.Level)
	s.Equal("0xabc", f.Values().Get("owner"))

	f.SetOwnership(OwnershipAll, "0xabc")
	s.Equal(LevelAll, f.Level)
	s.Equal("", f.Owner)
}

func (s *filterSuite) TestValidation() {
	f := DefaultFilter()
	f.CommercialTypes = "SELL,RENT"
	f.Quality = "B"
	f.Orientation = "northEast"
	f.Bedroom = "5"
	f.Level = LevelAll
	f.MiningFeeRange = UnitRangeLow
	s.NoError(s.validate.Struct(f))

	for _, bad := range []func(*Filter){
		func(f *Filter) { f.CommercialTypes = "LEASE" },
		func(f *Filter) { f.Quality = "E" },
		func(f *Filter) { f.Orientation = "up" },
		func(f *Filter) { f.Livingroom = "4" },
		func(f *Filter) { f.Level = "SECONDARY" },
		func(f *Filter) { f.AreaRange = "HUGE" },
		func(f *Filter) { f.Size = 1000 },
		func(f *Filter) { f.Page = -1 },
	} {
		g := DefaultFilter()
		bad(&g)
		s.Error(s.validate.Struct(g))
	}
}
