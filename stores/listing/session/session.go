package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/anft-xyz/goapi/base/backoff"
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/goroutine"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/stores/listing/store"
)

// State is what a client renders for its session
type State struct {
	Id       string         `json:"id"`
	Wallet   domain.Address `json:"wallet,omitempty"`
	DetailId string         `json:"detailId,omitempty"`
	store.Snapshot
	Notices []store.Notice `json:"notices,omitempty"`
}

// Session runs the fetch sequence of one client against its own store. A result is applied only
// while the session is open and the fetch is still the latest of its kind.
type Session struct {
	id         string
	store      *store.Store
	uc         listing.UseCase
	filterRepo listing.FilterStateRepo
	cfg        Config

	// cancelled on Close, parent of every fetch
	ctx    ctx.Ctx
	cancel context.CancelFunc

	mu         sync.Mutex
	closed     bool
	listGen    uint64
	detailGen  uint64
	optionsGen uint64
	detailId   string
	wallet     domain.Address
	lastSeen   time.Time
}

func newSession(id string, uc listing.UseCase, filterRepo listing.FilterStateRepo, cfg Config) *Session {
	c, cancel := ctx.WithCancel(ctx.WithValue(ctx.Background(), ctx.KeySessionId, id))
	return &Session{
		id:         id,
		store:      store.New(),
		uc:         uc,
		filterRepo: filterRepo,
		cfg:        cfg,
		ctx:        c,
		cancel:     cancel,
		lastSeen:   timeNow(),
	}
}

func (s *Session) Id() string {
	return s.id
}

// Store is exposed read only by convention, writes go through the session
func (s *Session) Store() *store.Store {
	return s.store
}

func (s *Session) Wallet() domain.Address {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.wallet
}

// begin starts a new fetch of the kind counted by gen
func (s *Session) begin(gen *uint64) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, domain.ErrSessionNotFound
	}
	*gen++
	return *gen, nil
}

// apply runs f if no newer fetch of the same kind started and the session is open
func (s *Session) apply(gen *uint64, mine uint64, f func()) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed || *gen != mine {
		return false
	}
	f()
	return true
}

func (s *Session) isCurrent(gen *uint64, mine uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && *gen == mine
}

// bind tags c with the session id and ends it when the session closes
func (s *Session) bind(c ctx.Ctx) (ctx.Ctx, context.CancelFunc) {
	c, cancel := ctx.WithCancel(ctx.WithValue(c, ctx.KeySessionId, s.id))
	stop := make(chan struct{})
	go func() {
		select {
		case <-s.ctx.Done():
			cancel()
		case <-stop:
		}
	}()
	return c, func() {
		close(stop)
		cancel()
	}
}

func (s *Session) touch(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = now
}

func (s *Session) idleSince(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return now.Sub(s.lastSeen)
}

// filterKey is the wallet when one is connected, otherwise the session id
func (s *Session) filterKey() string {
	if w := s.Wallet(); !w.IsEmpty() {
		return w.ToLowerStr()
	}
	return s.id
}

// FetchEntities loads one filtered page into the store. Only the latest call is applied.
func (s *Session) FetchEntities(c ctx.Ctx, filter listing.Filter) error {
	gen, err := s.begin(&s.listGen)
	if err != nil {
		return err
	}
	c, done := s.bind(c)
	defer done()

	s.store.SetFilterState(filter)
	s.store.MarkLoading(store.KindList)
	s.persistFilter(c, filter)

	page, err := s.uc.ListFiltered(c, filter)
	if err != nil {
		c.WithField("err", err).Warn("uc.ListFiltered failed")
		if !s.apply(&s.listGen, gen, func() { s.store.Reject(store.KindList, err) }) {
			return domain.ErrStale
		}
		return err
	}
	if !s.apply(&s.listGen, gen, func() { s.store.SetAll(page.Results, page.Count) }) {
		return domain.ErrStale
	}
	return nil
}

// FetchByAddresses loads the listings of the given contracts into the store. It shares the list
// generation with FetchEntities, so whichever of the two started last is applied.
func (s *Session) FetchByAddresses(c ctx.Ctx, addresses []domain.Address) error {
	gen, err := s.begin(&s.listGen)
	if err != nil {
		return err
	}
	c, done := s.bind(c)
	defer done()

	s.store.MarkLoading(store.KindList)

	page, err := s.uc.ListByAddresses(c, addresses)
	if err != nil {
		c.WithField("err", err).Warn("uc.ListByAddresses failed")
		if !s.apply(&s.listGen, gen, func() { s.store.Reject(store.KindList, err) }) {
			return domain.ErrStale
		}
		return err
	}
	if !s.apply(&s.listGen, gen, func() { s.store.SetAll(page.Results, page.Count) }) {
		return domain.ErrStale
	}
	return nil
}

func (s *Session) persistFilter(c ctx.Ctx, filter listing.Filter) {
	if s.filterRepo == nil {
		return
	}
	if err := s.filterRepo.Save(c, s.filterKey(), filter); err != nil {
		c.WithField("err", err).Warn("filterRepo.Save failed")
	}
}

func (s *Session) removeFilter(c ctx.Ctx) {
	if s.filterRepo == nil {
		return
	}
	if err := s.filterRepo.Remove(c, s.filterKey()); err != nil {
		c.WithField("err", err).Warn("filterRepo.Remove failed")
	}
}

// RestoreFilter loads the last filter saved for this session or its wallet into the store
func (s *Session) RestoreFilter(c ctx.Ctx) (*listing.Filter, error) {
	if s.filterRepo == nil {
		return nil, domain.ErrNotFound
	}
	f, err := s.filterRepo.Get(c, s.filterKey())
	if err != nil {
		return nil, err
	}
	s.store.SetFilterState(*f)
	return f, nil
}

// FetchEntity loads the detail of id once the list fetch settled. An incomplete chain read is
// retried in the background with an exponential backoff until complete or the session closes.
func (s *Session) FetchEntity(c ctx.Ctx, id string) error {
	gen, err := s.begin(&s.detailGen)
	if err != nil {
		return err
	}
	s.mu.Lock()
	s.detailId = id
	s.mu.Unlock()

	c, done := s.bind(c)
	defer done()

	s.store.MarkLoading(store.KindDetail)
	if err := s.store.WaitEntitiesFetched(c); err != nil {
		c.WithField("err", err).Warn("list fetch did not settle")
		s.apply(&s.detailGen, gen, func() { s.store.Reject(store.KindDetail, err) })
		return err
	}

	l, err := s.uc.GetOne(c, id)
	if err != nil {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("uc.GetOne failed")
		if !s.apply(&s.detailGen, gen, func() { s.store.Reject(store.KindDetail, err) }) {
			return domain.ErrStale
		}
		return err
	}
	if !s.apply(&s.detailGen, gen, func() { s.store.UpsertOne(l) }) {
		return domain.ErrStale
	}

	if !l.HasCompleteInfo() {
		goroutine.RecoverableGo(func() {
			s.refetchEntity(gen, id)
		}, goroutine.WithName("session.refetchEntity"))
	}
	return nil
}

func (s *Session) refetchEntity(gen uint64, id string) {
	c := s.ctx
	b := backoff.NewExponential(s.cfg.RefetchInitial, s.cfg.RefetchLimit)
	err := b.Retry(c, s.cfg.RefetchMaxAttempts, func() bool {
		if !s.isCurrent(&s.detailGen, gen) {
			return true
		}
		l, err := s.uc.GetOne(c, id)
		if err != nil {
			c.WithFields(log.Fields{
				"err":     err,
				"id":      id,
				"attempt": b.Count(),
			}).Warn("refetch uc.GetOne failed")
			return false
		}
		if !s.apply(&s.detailGen, gen, func() { s.store.UpsertOne(l) }) {
			return true
		}
		return l.HasCompleteInfo()
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		c.WithFields(log.Fields{
			"err": err,
			"id":  id,
		}).Warn("refetch gave up")
	}
}

// FetchOptionsWithStakes reads the options of the stored entity id and the stakes of stakeholder
func (s *Session) FetchOptionsWithStakes(c ctx.Ctx, id string, stakeholder domain.Address) error {
	gen, err := s.begin(&s.optionsGen)
	if err != nil {
		return err
	}
	c, done := s.bind(c)
	defer done()

	l, ok := s.store.ById(id)
	if !ok {
		return domain.ErrNotFound
	}
	out, err := s.uc.GetOptionsWithStakes(c, l, stakeholder)
	if err != nil {
		c.WithFields(log.Fields{
			"err":         err,
			"id":          id,
			"stakeholder": stakeholder,
		}).Warn("uc.GetOptionsWithStakes failed")
		if !s.apply(&s.optionsGen, gen, func() { s.store.Reject(store.KindDetail, err) }) {
			return domain.ErrStale
		}
		return err
	}
	if !s.apply(&s.optionsGen, gen, func() { s.store.UpdateOne(out) }) {
		return domain.ErrStale
	}
	return nil
}

// SetWallet records the connected wallet. A changed wallet reloads the stakes of the current
// detail entity.
func (s *Session) SetWallet(c ctx.Ctx, address domain.Address) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return domain.ErrSessionNotFound
	}
	changed := !s.wallet.Equals(address)
	s.wallet = address
	detailId := s.detailId
	s.mu.Unlock()

	if !changed || detailId == "" || address.IsEmpty() {
		return nil
	}
	if _, ok := s.store.ById(detailId); !ok {
		return nil
	}
	return s.FetchOptionsWithStakes(c, detailId, address)
}

// ConsumeError returns the pending fetch error once and soft resets the store. The saved filter
// snapshot goes with it so a later restore does not bring back the failing filter.
func (s *Session) ConsumeError(c ctx.Ctx) (store.Status, bool) {
	st := s.store.Status()
	if !st.HasError() {
		return st, false
	}
	s.store.SoftReset()
	s.removeFilter(c)
	return st, true
}

// State drains pending notices into the returned view
func (s *Session) State() State {
	s.mu.Lock()
	wallet, detailId := s.wallet, s.detailId
	s.mu.Unlock()
	return State{
		Id:       s.id,
		Wallet:   wallet,
		DetailId: detailId,
		Snapshot: s.store.Snapshot(),
		Notices:  s.store.DrainNotices(),
	}
}

// Close cancels in-flight work and hard resets the store. Later results are dropped.
func (s *Session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	s.mu.Unlock()

	s.cancel()
	s.store.HardReset()
}

func (s *Session) Closed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}
