package http

import (
	"time"

	"github.com/anft-xyz/goapi/base/amount"
	"github.com/anft-xyz/goapi/base/ptr"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/stores/listing/session"
)

// Display holds the preformatted strings a client shows next to a listing. Unknown on-chain
// amounts render as "_".
type Display struct {
	Value           string `json:"value"`
	DailyPayment    string `json:"dailyPayment"`
	TotalStake      string `json:"totalStake"`
	CoverImage      string `json:"coverImage,omitempty"`
	Fee             string `json:"fee,omitempty"`
	Price           string `json:"price,omitempty"`
	OwnershipExpiry string `json:"ownershipExpiry,omitempty"`
	IsExpired       *bool  `json:"isExpired,omitempty"`
	IsAboutToExpire *bool  `json:"isAboutToExpire,omitempty"`
}

type ListingView struct {
	*listing.Listing
	Display Display `json:"display"`
}

type PageView struct {
	Results []ListingView `json:"results"`
	Count   int           `json:"count"`
}

type StateView struct {
	session.State
	Entities []ListingView `json:"entities"`
}

func newDisplay(l *listing.Listing, now time.Time, loc *time.Location) Display {
	d := Display{
		Value:        amount.FormatToken(listing.ToInt(l.Value), true),
		DailyPayment: amount.FormatToken(listing.ToInt(l.DailyPayment), true),
		TotalStake:   amount.FormatToken(listing.ToInt(l.TotalStake), true),
		CoverImage:   l.CoverImage(),
	}
	if l.Fee != nil {
		d.Fee = amount.MoneyUnitTranslate(*l.Fee).String()
	}
	if l.Price != nil {
		d.Price = amount.MoneyUnitTranslate(*l.Price).String()
	}
	if ts, ok := l.OwnershipUnix(); ok {
		d.OwnershipExpiry = listing.FormatUnixDate(ts, loc)
		d.IsExpired = ptr.Bool(listing.IsExpired(ts, now))
		d.IsAboutToExpire = ptr.Bool(listing.IsAboutToExpire(ts, now))
	}
	return d
}

func newListingView(l *listing.Listing, now time.Time, loc *time.Location) ListingView {
	return ListingView{Listing: l, Display: newDisplay(l, now, loc)}
}

func newPageView(p *listing.Page, now time.Time, loc *time.Location) PageView {
	v := PageView{Results: make([]ListingView, 0, len(p.Results)), Count: p.Count}
	for _, l := range p.Results {
		v.Results = append(v.Results, newListingView(l, now, loc))
	}
	return v
}

func newStateView(s session.State, now time.Time, loc *time.Location) StateView {
	v := StateView{State: s, Entities: make([]ListingView, 0, len(s.Entities))}
	for _, l := range s.Entities {
		v.Entities = append(v.Entities, newListingView(l, now, loc))
	}
	return v
}
