package listing

import (
	"encoding/json"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"

	"github.com/anft-xyz/goapi/domain"
)

type CommercialType string

const (
	CommercialTypeSell CommercialType = "SELL"
	CommercialTypeRent CommercialType = "RENT"
)

type RiskLevel string

const (
	RiskLevelVeryLow  RiskLevel = "VERY_LOW"
	RiskLevelLow      RiskLevel = "LOW"
	RiskLevelMedium   RiskLevel = "MEDIUM"
	RiskLevelHigh     RiskLevel = "HIGH"
	RiskLevelVeryHigh RiskLevel = "VERY_HIGH"
)

type RiskValue struct {
	Type  RiskLevel       `json:"type"`
	Value decimal.Decimal `json:"value"`
}

type ListingType struct {
	Id      string      `json:"id"`
	Name    string      `json:"name"`
	Risks   []RiskValue `json:"risks,omitempty"`
	Profits []RiskValue `json:"profits,omitempty"`
}

type DurationRisk struct {
	Id    string          `json:"id,omitempty"`
	Name  string          `json:"name,omitempty"`
	Value decimal.Decimal `json:"value"`
}

// Stake is a wallet's commitment to one option
type Stake struct {
	Start  *hexutil.Big `json:"start"`
	Amount *hexutil.Big `json:"amount"`
	Active bool         `json:"active"`
}

// Option is an investment activity of a listing. The on-chain part is filled by
// GetOptionsWithStakes, OptionId is the index in Listing.ListingPotentials.
type Option struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`

	OptionId   *int         `json:"optionId,omitempty"`
	Reward     *hexutil.Big `json:"reward,omitempty"`
	TotalStake *hexutil.Big `json:"totalStake,omitempty"`
	IsSet      *bool        `json:"isSet,omitempty"`
	Stake      *Stake       `json:"stake,omitempty"`
}

// Listing is a tokenized real-estate record. Off-chain fields come from the listing api, on-chain
// fields are nil until an enrichment step filled them and must not be read as zero.
type Listing struct {
	Id              string           `json:"id"`
	CreatedDate     *time.Time       `json:"createdDate,omitempty"`
	Address         domain.Address   `json:"address"`
	Images          string           `json:"images,omitempty"`
	THash           string           `json:"tHash,omitempty"`
	Name            string           `json:"name,omitempty"`
	Location        string           `json:"location,omitempty"`
	AreaLand        float64          `json:"areaLand,omitempty"`
	Quality         string           `json:"quality,omitempty"`
	Orientation     string           `json:"orientation,omitempty"`
	Bedroom         int              `json:"bedroom,omitempty"`
	Livingroom      int              `json:"livingroom,omitempty"`
	NumberOfStorey  int              `json:"numberOfStorey,omitempty"`
	CommercialTypes []CommercialType `json:"commercialTypes,omitempty"`
	Price           *float64         `json:"price,omitempty"`
	Fee             *float64         `json:"fee,omitempty"`
	RentCost        *float64         `json:"rentCost,omitempty"`
	GoodPrice       float64          `json:"goodPrice,omitempty"`
	GoodRentCost    float64          `json:"goodRentCost,omitempty"`
	MinPrice        float64          `json:"minPrice,omitempty"`
	MaxPrice        float64          `json:"maxPrice,omitempty"`
	MinRentCost     float64          `json:"minRentCost,omitempty"`
	MaxRentCost     float64          `json:"maxRentCost,omitempty"`
	Period          int              `json:"period,omitempty"`
	LicenseDate     *string          `json:"licenseDate,omitempty"`
	LicensePeriod   *int             `json:"licensePeriod,omitempty"`
	TypeId          string           `json:"typeId,omitempty"`
	Type            *ListingType     `json:"type,omitempty"`
	DurationRisk    *DurationRisk    `json:"durationRisk,omitempty"`
	ProvinceCode    string           `json:"provinceCode,omitempty"`
	DistrictCode    string           `json:"districtCode,omitempty"`

	Value        *hexutil.Big    `json:"value,omitempty"`
	DailyPayment *hexutil.Big    `json:"dailyPayment,omitempty"`
	Ownership    *hexutil.Big    `json:"ownership,omitempty"`
	Owner        *domain.Address `json:"owner,omitempty"`
	Validator    *domain.Address `json:"validator,omitempty"`
	TotalStake   *hexutil.Big    `json:"totalStake,omitempty"`

	ListingPotentials []Option `json:"listingPotentials,omitempty"`
}

type Page struct {
	Results []*Listing `json:"results"`
	Count   int        `json:"count"`
}

// Clone copies l so that slices and nested options are not shared. Big numbers are treated as
// immutable and shared.
func (l *Listing) Clone() *Listing {
	if l == nil {
		return nil
	}
	c := *l
	if l.CommercialTypes != nil {
		c.CommercialTypes = append([]CommercialType{}, l.CommercialTypes...)
	}
	if l.ListingPotentials != nil {
		c.ListingPotentials = make([]Option, len(l.ListingPotentials))
		copy(c.ListingPotentials, l.ListingPotentials)
	}
	return &c
}

// HasCompleteInfo reports whether every detail field has been read from chain
func (l *Listing) HasCompleteInfo() bool {
	return l.Ownership != nil && l.Value != nil && l.DailyPayment != nil &&
		l.Owner != nil && l.Validator != nil && l.TotalStake != nil
}

// OwnershipUnix returns the ownership expiry, or false when not enriched yet
func (l *Listing) OwnershipUnix() (int64, bool) {
	if l.Ownership == nil {
		return 0, false
	}
	return l.Ownership.ToInt().Int64(), true
}

// HasOwner is false for a zero owner, meaning the listing was never registered
func (l *Listing) HasOwner() bool {
	return l.Owner != nil && !l.Owner.IsEmpty() && !l.Owner.Equals(domain.EmptyAddress)
}

func (l *Listing) IsCommercial(t CommercialType) bool {
	for _, c := range l.CommercialTypes {
		if c == t {
			return true
		}
	}
	return false
}

// CoverImage returns the first entry of the json encoded image list
func (l *Listing) CoverImage() string {
	if strings.TrimSpace(l.Images) == "" {
		return ""
	}
	var images []string
	if err := json.Unmarshal([]byte(l.Images), &images); err != nil || len(images) == 0 {
		return ""
	}
	return images[0]
}

// Big wraps v for a Listing field, nil stays nil
func Big(v *big.Int) *hexutil.Big {
	if v == nil {
		return nil
	}
	return (*hexutil.Big)(new(big.Int).Set(v))
}

// ToInt unwraps a Listing field, nil stays nil
func ToInt(v *hexutil.Big) *big.Int {
	if v == nil {
		return nil
	}
	return v.ToInt()
}
