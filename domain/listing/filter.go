package listing

import (
	"net/url"
	"reflect"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/anft-xyz/goapi/domain"
)

type UnitRange string

const (
	UnitRangeExtremelyLow UnitRange = "EXTREMELY_LOW"
	UnitRangeVeryLow      UnitRange = "VERY_LOW"
	UnitRangeLow          UnitRange = "LOW"
	UnitRangeMedium       UnitRange = "MEDIUM"
	UnitRangeHigh         UnitRange = "HIGH"
	UnitRangeVeryHigh     UnitRange = "VERY_HIGH"
)

type Bounds struct {
	Gte float64 `json:"gte"`
	Lte float64 `json:"lte"`
}

// FeeRanges are mining fee buckets in VND
var FeeRanges = map[UnitRange]Bounds{
	UnitRangeExtremelyLow: {0, 1000000},
	UnitRangeVeryLow:      {1000000, 3000000},
	UnitRangeLow:          {3000000, 5000000},
	UnitRangeMedium:       {5000000, 10000000},
	UnitRangeHigh:         {10000000, 20000000},
	UnitRangeVeryHigh:     {20000000, 50000000},
}

// AreaRanges are land area buckets in m2
var AreaRanges = map[UnitRange]Bounds{
	UnitRangeExtremelyLow: {0, 10},
	UnitRangeVeryLow:      {10, 50},
	UnitRangeLow:          {50, 100},
	UnitRangeMedium:       {100, 200},
	UnitRangeHigh:         {200, 300},
	UnitRangeVeryHigh:     {300, 400},
}

// Exchange levels a listing can be traded at
const (
	LevelPrimary   = "PRIMARY"
	LevelSecondary = "SECONDARY"
	LevelAll       = LevelPrimary + "," + LevelSecondary
)

type OwnershipOption string

const (
	OwnershipAll      OwnershipOption = "all"
	OwnershipYetOwned OwnershipOption = "yetOwned"
	OwnershipOwned    OwnershipOption = "owned"
)

const (
	DefaultPageSize = 5
	DefaultSort     = "createdDate,desc"
)

// Filter is the query shape of the listing api. Zero fields are not sent.
type Filter struct {
	Page int    `json:"page" query:"page" validate:"gte=0"`
	Size int    `json:"size" query:"size" validate:"gte=0,lte=100"`
	Sort string `json:"sort,omitempty" query:"sort"`

	ProvinceCode    string    `json:"provinceCode,omitempty" query:"provinceCode"`
	DistrictCode    string    `json:"districtCode,omitempty" query:"districtCode"`
	TypeIds         string    `json:"typeIds,omitempty" query:"typeIds"`
	CommercialTypes string    `json:"commercialTypes,omitempty" query:"commercialTypes" validate:"omitempty,commercialtypes"`
	MiningFeeRange  UnitRange `json:"miningFeeRange,omitempty" query:"miningFeeRange" validate:"omitempty,unitrange"`
	FeeGte          float64   `json:"feeGte,omitempty" query:"feeGte" validate:"gte=0"`
	FeeLte          float64   `json:"feeLte,omitempty" query:"feeLte" validate:"gte=0"`
	AreaRange       UnitRange `json:"areaRange,omitempty" query:"areaRange" validate:"omitempty,unitrange"`
	AreaGte         float64   `json:"areaGte,omitempty" query:"areaGte" validate:"gte=0"`
	AreaLte         float64   `json:"areaLte,omitempty" query:"areaLte" validate:"gte=0"`
	Quality         string    `json:"quality,omitempty" query:"quality" validate:"omitempty,oneof=A B C D"`
	Orientation     string    `json:"orientation,omitempty" query:"orientation" validate:"omitempty,oneof=east west south north northEast northWest southWest southEast"`
	Livingroom      string    `json:"livingroom,omitempty" query:"livingroom" validate:"omitempty,oneof=1 2 3"`
	Bedroom         string    `json:"bedroom,omitempty" query:"bedroom" validate:"omitempty,oneof=1 2 3 4 5"`
	Owner           string    `json:"owner,omitempty" query:"owner"`
	Level           string    `json:"level,omitempty" query:"level" validate:"omitempty,level"`
}

func DefaultFilter() Filter {
	return Filter{
		Page: 0,
		Size: DefaultPageSize,
		Sort: DefaultSort,
	}
}

// ApplyRanges replaces the fee and area bounds by the selected buckets. An unknown bucket
// clears the bounds, no bucket keeps the explicit ones.
func (f *Filter) ApplyRanges() {
	if b, ok := FeeRanges[f.MiningFeeRange]; ok {
		f.FeeGte, f.FeeLte = b.Gte, b.Lte
	} else if f.MiningFeeRange != "" {
		f.FeeGte, f.FeeLte = 0, 0
	}
	if b, ok := AreaRanges[f.AreaRange]; ok {
		f.AreaGte, f.AreaLte = b.Gte, b.Lte
	} else if f.AreaRange != "" {
		f.AreaGte, f.AreaLte = 0, 0
	}
}

// SetOwnership translates the ownership selector. Not yet owned listings only trade on the
// primary level, any other choice searches both levels.
func (f *Filter) SetOwnership(opt OwnershipOption, viewer domain.Address) {
	switch opt {
	case OwnershipYetOwned:
		f.Owner = ""
		f.Level = LevelPrimary
	case OwnershipOwned:
		f.Owner = viewer.ToLowerStr()
		f.Level = LevelAll
	default:
		f.Owner = ""
		f.Level = LevelAll
	}
}

// Values drops every zero field and encodes the rest as query parameters
func (f Filter) Values() url.Values {
	values := url.Values{}
	v := reflect.ValueOf(f)
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		name := t.Field(i).Tag.Get("query")
		if name == "" {
			continue
		}
		field := v.Field(i)
		if field.IsZero() {
			continue
		}
		switch field.Kind() {
		case reflect.String:
			values.Set(name, field.String())
		case reflect.Int, reflect.Int32, reflect.Int64:
			values.Set(name, strconv.FormatInt(field.Int(), 10))
		case reflect.Float32, reflect.Float64:
			values.Set(name, strconv.FormatFloat(field.Float(), 'f', -1, 64))
		}
	}
	return values
}

func IsValidUnitRange(r UnitRange) bool {
	_, ok := FeeRanges[r]
	return ok
}

// RegisterValidations adds the unitrange, commercialtypes and level tags used by Filter
func RegisterValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("unitrange", func(fl validator.FieldLevel) bool {
		return IsValidUnitRange(UnitRange(fl.Field().String()))
	}); err != nil {
		return err
	}
	if err := v.RegisterValidation("commercialtypes", func(fl validator.FieldLevel) bool {
		switch fl.Field().String() {
		case string(CommercialTypeSell), string(CommercialTypeRent), string(CommercialTypeSell) + "," + string(CommercialTypeRent):
			return true
		}
		return false
	}); err != nil {
		return err
	}
	return v.RegisterValidation("level", func(fl validator.FieldLevel) bool {
		l := fl.Field().String()
		return l == LevelPrimary || l == LevelAll
	})
}
