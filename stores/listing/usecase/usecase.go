package usecase

import (
	"fmt"
	"math/big"

	"github.com/viney-shih/goroutines"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/ptr"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/keys"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/cache"
)

const defaultWorkers = 8

type UsecaseCfg struct {
	Repo listing.Repo
	// nil when no chain provider is configured, enrichment is skipped
	Reader   listing.ContractReader
	Notifier listing.Notifier
	// bound on concurrent contract reads of one request
	Workers int
	// caches fully enriched pages, nil disables it
	Pages cache.Service
}

type impl struct {
	repo     listing.Repo
	reader   listing.ContractReader
	notifier listing.Notifier
	workers  int
	pages    cache.Service
}

func NewUsecase(cfg *UsecaseCfg) listing.UseCase {
	workers := cfg.Workers
	if workers <= 0 {
		workers = defaultWorkers
	}
	return &impl{
		repo:     cfg.Repo,
		reader:   cfg.Reader,
		notifier: cfg.Notifier,
		workers:  workers,
		pages:    cfg.Pages,
	}
}

type field string

const (
	fieldOwnership    field = "ownership"
	fieldValue        field = "value"
	fieldDailyPayment field = "dailyPayment"
	fieldOwner        field = "owner"
	fieldValidator    field = "validator"
	fieldTotalStake   field = "totalStake"
	fieldOption       field = "option"
	fieldStaking      field = "staking"
)

// read is one contract call. Results are matched back by (field, index), never by arrival order.
type read struct {
	field field
	index int
	call  func() (interface{}, error)
}

type tagged struct {
	field field
	index int
	value interface{}
}

// runReads executes reads on a bounded batch. Every successful result is returned together with
// the first error seen, so callers can pick all-or-nothing or partial semantics.
func (im *impl) runReads(c ctx.Ctx, reads []read) ([]tagged, error) {
	if len(reads) == 0 {
		return nil, nil
	}
	b := goroutines.NewBatch(im.workers, goroutines.WithBatchSize(len(reads)))
	defer b.Close()

	for _, r := range reads {
		r := r
		if err := b.Queue(func() (interface{}, error) {
			v, err := r.call()
			if err != nil {
				return nil, fmt.Errorf("%s[%d]: %w", r.field, r.index, err)
			}
			return tagged{field: r.field, index: r.index, value: v}, nil
		}); err != nil {
			c.WithField("err", err).Error("batch.Queue failed")
			return nil, err
		}
	}
	b.QueueComplete()

	var firstErr error
	results := make([]tagged, 0, len(reads))
	for ret := range b.Results() {
		if ret.Error() != nil {
			if firstErr == nil {
				firstErr = ret.Error()
			}
			continue
		}
		results = append(results, ret.Value().(tagged))
	}
	return results, firstErr
}

func (im *impl) ListFiltered(c ctx.Ctx, filter listing.Filter) (*listing.Page, error) {
	filter.ApplyRanges()
	// the api takes the resolved bounds only
	filter.MiningFeeRange, filter.AreaRange = "", ""

	key := keys.MD5(filter.Values().Encode())
	if im.pages != nil {
		cached := &listing.Page{}
		if err := im.pages.Get(c, key, cached); err == nil {
			return cached, nil
		}
	}

	page, err := im.repo.FindAll(c, filter)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAll failed")
		return nil, err
	}
	if im.reader == nil || len(page.Results) == 0 {
		im.cachePage(c, key, page)
		return page, nil
	}

	enriched, err := im.enrichSummaries(c, page.Results)
	if err != nil {
		c.WithFields(log.Fields{
			"err":   err,
			"count": len(page.Results),
		}).Warn("enrichSummaries failed, serving off-chain records")
		return page, nil
	}
	page.Results = enriched
	im.cachePage(c, key, page)
	return page, nil
}

// cachePage stores a page whose enrichment is settled. Degraded pages are never cached.
func (im *impl) cachePage(c ctx.Ctx, key string, page *listing.Page) {
	if im.pages == nil {
		return
	}
	if err := im.pages.Set(c, key, page); err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"key": key,
		}).Warn("pages.Set failed")
	}
}

// enrichSummaries reads value and daily payment of every record. A single failed read fails the
// whole page so partially enriched lists are never served.
func (im *impl) enrichSummaries(c ctx.Ctx, records []*listing.Listing) ([]*listing.Listing, error) {
	reads := make([]read, 0, 2*len(records))
	for i, l := range records {
		if l == nil || l.Address.IsEmpty() {
			continue
		}
		address := l.Address
		reads = append(reads,
			read{fieldValue, i, func() (interface{}, error) { return im.reader.Value(c, address) }},
			read{fieldDailyPayment, i, func() (interface{}, error) { return im.reader.DailyPayment(c, address) }},
		)
	}

	results, err := im.runReads(c, reads)
	if err != nil {
		return nil, err
	}

	out := make([]*listing.Listing, len(records))
	for i, l := range records {
		out[i] = l.Clone()
	}
	for _, r := range results {
		v := listing.Big(r.value.(*big.Int))
		switch r.field {
		case fieldValue:
			out[r.index].Value = v
		case fieldDailyPayment:
			out[r.index].DailyPayment = v
		}
	}
	return out, nil
}

func (im *impl) ListByAddresses(c ctx.Ctx, addresses []domain.Address) (*listing.Page, error) {
	page, err := im.repo.FindByAddresses(c, addresses)
	if err != nil {
		c.WithFields(log.Fields{
			"err":       err,
			"addresses": addresses,
		}).Error("repo.FindByAddresses failed")
		return nil, err
	}
	return page, nil
}

func (im *impl) GetOne(c ctx.Ctx, id string) (*listing.Listing, error) {
	l, err := im.repo.FindOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Error("repo.FindOne failed")
		return nil, err
	}
	if im.reader == nil || l.Address.IsEmpty() {
		return l, nil
	}

	complete, err := im.enrichDetail(c, l)
	if err != nil {
		c.WithFields(log.Fields{
			"err":     err,
			"id":      id,
			"address": l.Address,
		}).Warn("enrichDetail failed, serving off-chain record")
		im.notify(c, listing.NoticeInfo, fmt.Sprintf("Error in fetching complete: %v", err))
		return l, nil
	}
	return complete, nil
}

// enrichDetail reads the six detail fields at once, all or nothing
func (im *impl) enrichDetail(c ctx.Ctx, l *listing.Listing) (*listing.Listing, error) {
	address := l.Address
	reads := []read{
		{fieldOwnership, 0, func() (interface{}, error) { return im.reader.Ownership(c, address) }},
		{fieldValue, 0, func() (interface{}, error) { return im.reader.Value(c, address) }},
		{fieldDailyPayment, 0, func() (interface{}, error) { return im.reader.DailyPayment(c, address) }},
		{fieldOwner, 0, func() (interface{}, error) { return im.reader.Owner(c, address) }},
		{fieldValidator, 0, func() (interface{}, error) { return im.reader.Validator(c, address) }},
		{fieldTotalStake, 0, func() (interface{}, error) { return im.reader.TotalStake(c, address) }},
	}
	results, err := im.runReads(c, reads)
	if err != nil {
		return nil, err
	}

	out := l.Clone()
	for _, r := range results {
		switch r.field {
		case fieldOwnership:
			out.Ownership = listing.Big(r.value.(*big.Int))
		case fieldValue:
			out.Value = listing.Big(r.value.(*big.Int))
		case fieldDailyPayment:
			out.DailyPayment = listing.Big(r.value.(*big.Int))
		case fieldTotalStake:
			out.TotalStake = listing.Big(r.value.(*big.Int))
		case fieldOwner:
			a := r.value.(domain.Address)
			out.Owner = &a
		case fieldValidator:
			a := r.value.(domain.Address)
			out.Validator = &a
		}
	}
	return out, nil
}

func (im *impl) GetOptionsWithStakes(c ctx.Ctx, l *listing.Listing, stakeholder domain.Address) (*listing.Listing, error) {
	if l == nil {
		return nil, domain.ErrNotFound
	}
	if im.reader == nil || l.Address.IsEmpty() {
		return nil, domain.ErrNoContract
	}

	address := l.Address
	reads := make([]read, 0, 2*len(l.ListingPotentials))
	for i := range l.ListingPotentials {
		optionId := i
		reads = append(reads, read{fieldOption, optionId, func() (interface{}, error) {
			return im.reader.Option(c, address, optionId)
		}})
		if !stakeholder.IsEmpty() {
			reads = append(reads, read{fieldStaking, optionId, func() (interface{}, error) {
				return im.reader.Staking(c, address, optionId, stakeholder)
			}})
		}
	}

	results, err := im.runReads(c, reads)

	out := l.Clone()
	for i := range out.ListingPotentials {
		out.ListingPotentials[i].OptionId = ptr.Int(i)
	}
	for _, r := range results {
		opt := &out.ListingPotentials[r.index]
		switch r.field {
		case fieldOption:
			o := r.value.(*listing.OptionOverview)
			opt.Reward = listing.Big(o.Reward)
			opt.TotalStake = listing.Big(o.TotalStake)
			opt.IsSet = ptr.Bool(o.IsSet)
		case fieldStaking:
			s := r.value.(*listing.StakeInfo)
			opt.Stake = &listing.Stake{
				Start:  listing.Big(s.Start),
				Amount: listing.Big(s.Amount),
				Active: s.Active,
			}
		}
	}

	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"id":          l.Id,
			"address":     address,
			"stakeholder": stakeholder,
		}).Warn("option reads failed, serving partial options")
		im.notify(c, listing.NoticeError, fmt.Sprintf("Error in fetching options: %v", err))
	}
	return out, nil
}

func (im *impl) notify(c ctx.Ctx, level listing.NoticeLevel, message string) {
	if im.notifier == nil {
		return
	}
	im.notifier.Notify(c, level, message)
}
