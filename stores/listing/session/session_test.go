package session

import (
	"errors"
	"math/big"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/domain/mocks"
)

var (
	addrA = domain.Address("0x000000000000000000000000000000000000000a")
	addrB = domain.Address("0x000000000000000000000000000000000000000b")
)

func partial(id string) *listing.Listing {
	return &listing.Listing{Id: id, Address: addrA, Name: "listing-" + id}
}

func complete(id string) *listing.Listing {
	owner, validator := addrB, addrA
	l := partial(id)
	l.Ownership = listing.Big(big.NewInt(1700000000))
	l.Value = listing.Big(big.NewInt(100))
	l.DailyPayment = listing.Big(big.NewInt(10))
	l.TotalStake = listing.Big(big.NewInt(0))
	l.Owner = &owner
	l.Validator = &validator
	return l
}

func pageOf(ids ...string) *listing.Page {
	p := &listing.Page{Count: len(ids)}
	for _, id := range ids {
		p.Results = append(p.Results, partial(id))
	}
	return p
}

type sessionSuite struct {
	suite.Suite

	ctx        ctx.Ctx
	uc         *mocks.ListingUseCase
	filterRepo *mocks.FilterStateRepo
	reg        *Registry
	mgr        *Manager
	sess       *Session
}

func TestSession(t *testing.T) {
	suite.Run(t, new(sessionSuite))
}

func (s *sessionSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.uc = mocks.NewListingUseCase(s.T())
	s.filterRepo = mocks.NewFilterStateRepo(s.T())
	s.reg = NewRegistry()
	s.mgr = NewManager(s.reg, s.uc, s.filterRepo, Config{
		IdleTtl:            time.Minute,
		RefetchInitial:     5 * time.Millisecond,
		RefetchLimit:       20 * time.Millisecond,
		RefetchMaxAttempts: 3,
	})
	s.sess = s.mgr.Create(s.ctx)
}

func (s *sessionSuite) TearDownTest() {
	timeNow = time.Now
	for _, sess := range s.reg.list() {
		s.mgr.Close(sess.Id())
	}
}

func (s *sessionSuite) allowSave() {
	s.filterRepo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
}

func (s *sessionSuite) TestFetchEntities() {
	filter := listing.DefaultFilter()
	filter.ProvinceCode = "79"
	s.filterRepo.On("Save", mock.Anything, s.sess.Id(), filter).Return(nil).Once()
	s.uc.On("ListFiltered", mock.Anything, filter).Return(pageOf("1", "2"), nil).Once()

	s.Require().NoError(s.sess.FetchEntities(s.ctx, filter))

	st := s.sess.State()
	s.True(st.FetchEntitiesSuccess)
	s.Equal(2, st.TotalCount)
	s.Require().Len(st.Entities, 2)
	s.Equal("1", st.Entities[0].Id)
	s.Require().NotNil(st.FilterState)
	s.Equal("79", st.FilterState.ProvinceCode)
}

func (s *sessionSuite) TestFetchEntitiesPassesSessionId() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.MatchedBy(func(c ctx.Ctx) bool {
		return ctx.SessionId(c) == s.sess.Id()
	}), mock.Anything).Return(pageOf("1"), nil).Once()

	s.NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
}

func (s *sessionSuite) TestLatestListFetchWins() {
	s.allowSave()
	first, second := listing.DefaultFilter(), listing.DefaultFilter()
	second.Page = 1

	s.uc.On("ListFiltered", mock.Anything, first).After(60*time.Millisecond).Return(pageOf("old"), nil).Once()
	s.uc.On("ListFiltered", mock.Anything, second).Return(pageOf("new"), nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.sess.FetchEntities(s.ctx, first)
	}()
	time.Sleep(15 * time.Millisecond)

	s.Require().NoError(s.sess.FetchEntities(s.ctx, second))
	s.ErrorIs(<-done, domain.ErrStale)

	all := s.sess.Store().All()
	s.Require().Len(all, 1)
	s.Equal("new", all[0].Id)
}

func (s *sessionSuite) TestFetchEntitiesRejectAndConsume() {
	s.allowSave()
	apiErr := listing.NewAPIError(http.StatusBadRequest, []byte(`{"title":"Bad Request"}`))
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(nil, apiErr).Once()

	err := s.sess.FetchEntities(s.ctx, listing.DefaultFilter())
	s.ErrorIs(err, apiErr)

	s.filterRepo.On("Remove", mock.Anything, s.sess.Id()).Return(nil).Once()
	st, ok := s.sess.ConsumeError(s.ctx)
	s.True(ok)
	s.Equal("Bad Request", st.ErrorMessage)
	s.Equal(listing.ErrorCodeBadRequest, st.ErrorCode)

	// consumed once, filter snapshot cleared by the soft reset
	_, ok = s.sess.ConsumeError(s.ctx)
	s.False(ok)
	s.Nil(s.sess.Store().FilterState())
}

func (s *sessionSuite) TestConsumeErrorDropsSavedFilter() {
	filter := listing.DefaultFilter()
	filter.ProvinceCode = "79"
	s.filterRepo.On("Save", mock.Anything, s.sess.Id(), filter).Return(nil).Once()
	s.uc.On("ListFiltered", mock.Anything, filter).Return(nil, listing.NewAPIError(http.StatusBadRequest, nil)).Once()
	s.Error(s.sess.FetchEntities(s.ctx, filter))

	s.filterRepo.On("Remove", mock.Anything, s.sess.Id()).Return(nil).Once()
	_, ok := s.sess.ConsumeError(s.ctx)
	s.Require().True(ok)

	// nothing left to restore
	s.filterRepo.On("Get", mock.Anything, s.sess.Id()).Return(nil, domain.ErrNotFound).Once()
	f, err := s.sess.RestoreFilter(s.ctx)
	s.Nil(f)
	s.ErrorIs(err, domain.ErrNotFound)
	s.Nil(s.sess.Store().FilterState())
}

func (s *sessionSuite) TestConsumeErrorKeepsGoingWhenRemoveFails() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(nil, listing.NewAPIError(http.StatusBadRequest, nil)).Once()
	s.Error(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))

	s.filterRepo.On("Remove", mock.Anything, s.sess.Id()).Return(errors.New("mongo down")).Once()
	st, ok := s.sess.ConsumeError(s.ctx)
	s.True(ok)
	s.True(st.HasError())
	s.False(s.sess.Store().Status().HasError())
}

func (s *sessionSuite) TestFetchByAddresses() {
	addresses := []domain.Address{addrA, addrB}
	s.uc.On("ListByAddresses", mock.Anything, addresses).Return(pageOf("7", "8"), nil).Once()

	s.Require().NoError(s.sess.FetchByAddresses(s.ctx, addresses))

	st := s.sess.State()
	s.True(st.FetchEntitiesSuccess)
	s.Equal(2, st.TotalCount)
	s.Require().Len(st.Entities, 2)
	s.Equal("7", st.Entities[0].Id)
	s.Equal("8", st.Entities[1].Id)
}

func (s *sessionSuite) TestFetchByAddressesReleasesDetailWaiters() {
	s.uc.On("ListByAddresses", mock.Anything, mock.Anything).Return(pageOf("7"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "7").Return(complete("7"), nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.sess.FetchEntity(s.ctx, "7")
	}()
	time.Sleep(10 * time.Millisecond)

	s.Require().NoError(s.sess.FetchByAddresses(s.ctx, []domain.Address{addrA}))
	s.Require().NoError(<-done)

	l, ok := s.sess.Store().ById("7")
	s.Require().True(ok)
	s.True(l.HasCompleteInfo())
}

func (s *sessionSuite) TestFetchByAddressesError() {
	s.uc.On("ListByAddresses", mock.Anything, mock.Anything).Return(nil, listing.NewAPIError(http.StatusBadGateway, nil)).Once()

	s.Error(s.sess.FetchByAddresses(s.ctx, []domain.Address{addrA}))
	st := s.sess.Store().Status()
	s.True(st.HasError())
	s.False(st.EntitiesLoading)
}

func (s *sessionSuite) TestFetchEntityWaitsForList() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1", "2"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "2").Return(complete("2"), nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.sess.FetchEntity(s.ctx, "2")
	}()
	time.Sleep(20 * time.Millisecond)
	s.uc.AssertNotCalled(s.T(), "GetOne", mock.Anything, "2")
	s.True(s.sess.Store().Status().EntityLoading)

	s.Require().NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))

	select {
	case err := <-done:
		s.NoError(err)
	case <-time.After(time.Second):
		s.FailNow("detail fetch not released")
	}

	l, ok := s.sess.Store().ById("2")
	s.Require().True(ok)
	s.True(l.HasCompleteInfo())
	s.Equal("listing-2", l.Name)
	st := s.sess.Store().Status()
	s.True(st.FetchEntitySuccess)
	s.False(st.EntityLoading)
}

func (s *sessionSuite) TestFetchEntityNotFound() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "404").Return(nil, listing.NewAPIError(http.StatusNotFound, nil)).Once()

	s.Require().NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
	err := s.sess.FetchEntity(s.ctx, "404")
	s.ErrorIs(err, domain.ErrNotFound)

	st := s.sess.State()
	s.True(st.NotFound)
	s.Equal(listing.ErrorCodeNotFound, st.ErrorCode)
}

func (s *sessionSuite) TestFetchEntityRefetchesIncomplete() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "1").Return(partial("1"), nil).Twice()
	s.uc.On("GetOne", mock.Anything, "1").Return(complete("1"), nil).Once()

	s.Require().NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
	s.Require().NoError(s.sess.FetchEntity(s.ctx, "1"))

	s.Eventually(func() bool {
		l, ok := s.sess.Store().ById("1")
		return ok && l.HasCompleteInfo()
	}, time.Second, 5*time.Millisecond)
}

func (s *sessionSuite) TestRefetchStopsOnClose() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "1").Return(partial("1"), nil).Once()

	s.Require().NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
	s.Require().NoError(s.sess.FetchEntity(s.ctx, "1"))
	s.Require().NoError(s.mgr.Close(s.sess.Id()))

	time.Sleep(40 * time.Millisecond)
	s.uc.AssertNumberOfCalls(s.T(), "GetOne", 1)
}

func (s *sessionSuite) TestCloseDropsLateResult() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).After(50*time.Millisecond).Return(pageOf("1"), nil).Once()

	done := make(chan error, 1)
	go func() {
		done <- s.sess.FetchEntities(s.ctx, listing.DefaultFilter())
	}()
	time.Sleep(10 * time.Millisecond)
	s.sess.Close()

	s.ErrorIs(<-done, domain.ErrStale)
	s.Empty(s.sess.Store().All())
	s.False(s.sess.Store().Status().EntitiesLoading)

	s.ErrorIs(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()), domain.ErrSessionNotFound)
}

func (s *sessionSuite) TestSetWalletReloadsStakes() {
	s.allowSave()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1"), nil).Once()
	s.uc.On("GetOne", mock.Anything, "1").Return(complete("1"), nil).Once()
	s.Require().NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
	s.Require().NoError(s.sess.FetchEntity(s.ctx, "1"))

	withStakes := complete("1")
	optionId := 0
	withStakes.ListingPotentials = []listing.Option{{Name: "farming", OptionId: &optionId, Stake: &listing.Stake{Active: true}}}
	s.uc.On("GetOptionsWithStakes", mock.Anything, mock.MatchedBy(func(l *listing.Listing) bool {
		return l.Id == "1"
	}), addrB).Return(withStakes, nil).Once()

	s.Require().NoError(s.sess.SetWallet(s.ctx, addrB))
	// unchanged wallet does not reload
	s.Require().NoError(s.sess.SetWallet(s.ctx, addrB))

	l, _ := s.sess.Store().ById("1")
	s.Require().Len(l.ListingPotentials, 1)
	s.True(l.ListingPotentials[0].Stake.Active)
	s.True(s.sess.Store().Status().UpdateEntitySuccess)
	s.Equal(addrB, s.sess.Wallet())
}

func (s *sessionSuite) TestSetWalletWithoutDetail() {
	s.NoError(s.sess.SetWallet(s.ctx, addrB))
	s.uc.AssertNotCalled(s.T(), "GetOptionsWithStakes", mock.Anything, mock.Anything, mock.Anything)
}

func (s *sessionSuite) TestFilterKeyFollowsWallet() {
	s.Require().NoError(s.sess.SetWallet(s.ctx, domain.Address("0xABCDEF0000000000000000000000000000000001")))
	s.filterRepo.On("Save", mock.Anything, "0xabcdef0000000000000000000000000000000001", mock.Anything).Return(nil).Once()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf(), nil).Once()

	s.NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
}

func (s *sessionSuite) TestFilterSaveFailureIsIgnored() {
	s.filterRepo.On("Save", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("mongo down")).Once()
	s.uc.On("ListFiltered", mock.Anything, mock.Anything).Return(pageOf("1"), nil).Once()

	s.NoError(s.sess.FetchEntities(s.ctx, listing.DefaultFilter()))
}

func (s *sessionSuite) TestRestoreFilter() {
	saved := listing.Filter{Size: 5, Quality: "B"}
	s.filterRepo.On("Get", mock.Anything, s.sess.Id()).Return(&saved, nil).Once()

	f, err := s.sess.RestoreFilter(s.ctx)
	s.Require().NoError(err)
	s.Equal("B", f.Quality)
	s.Equal("B", s.sess.Store().FilterState().Quality)
}

func (s *sessionSuite) TestNotifierQueuesOnSession() {
	next := mocks.NewNotifier(s.T())
	next.On("Notify", mock.Anything, listing.NoticeInfo, "chain down").Twice()
	n := NewNotifier(s.reg, next)

	n.Notify(ctx.WithValue(s.ctx, ctx.KeySessionId, s.sess.Id()), listing.NoticeInfo, "chain down")
	// unknown session only forwards
	n.Notify(ctx.WithValue(s.ctx, ctx.KeySessionId, "nope"), listing.NoticeInfo, "chain down")

	st := s.sess.State()
	s.Require().Len(st.Notices, 1)
	s.Equal("chain down", st.Notices[0].Message)
	s.Empty(s.sess.State().Notices)
}

func (s *sessionSuite) TestManager() {
	got, err := s.mgr.Get(s.sess.Id())
	s.Require().NoError(err)
	s.Equal(s.sess, got)

	_, err = s.mgr.Get("unknown")
	s.ErrorIs(err, domain.ErrSessionNotFound)

	s.Require().NoError(s.mgr.Close(s.sess.Id()))
	s.True(s.sess.Closed())
	_, err = s.mgr.Get(s.sess.Id())
	s.ErrorIs(err, domain.ErrSessionNotFound)
	s.ErrorIs(s.mgr.Close(s.sess.Id()), domain.ErrSessionNotFound)
}

func (s *sessionSuite) TestEvictIdle() {
	now := time.Now()
	timeNow = func() time.Time { return now }
	fresh := s.mgr.Create(s.ctx)
	_, err := s.mgr.Get(fresh.Id())
	s.Require().NoError(err)

	s.sess.touch(now.Add(-2 * time.Minute))

	s.Equal(1, s.mgr.EvictIdle(now))
	s.True(s.sess.Closed())
	s.False(fresh.Closed())
	s.Equal(1, s.reg.Len())
}

func (s *sessionSuite) TestRunWithTinyIdleTtl() {
	mgr := NewManager(NewRegistry(), s.uc, nil, Config{IdleTtl: time.Nanosecond})
	s.Equal(minEvictTick, mgr.evictTick())
	s.Equal(15*time.Minute, NewManager(NewRegistry(), s.uc, nil, Config{}).evictTick())

	sess := mgr.Create(s.ctx)
	c, cancel := ctx.WithCancel(s.ctx)
	done := make(chan struct{})
	go func() {
		mgr.Run(c)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("Run did not stop")
	}
	s.True(sess.Closed())
}
