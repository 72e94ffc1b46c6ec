package repository

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	"github.com/anft-xyz/goapi/domain/listing"
	"github.com/anft-xyz/goapi/service/query"
	"github.com/anft-xyz/goapi/service/query/mocks"
)

type filterStateSuite struct {
	suite.Suite

	ctx  ctx.Ctx
	q    *mocks.Mongo
	repo listing.FilterStateRepo
}

func TestFilterStateRepo(t *testing.T) {
	suite.Run(t, new(filterStateSuite))
}

func (s *filterStateSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.q = mocks.NewMongo(s.T())
	s.repo = NewFilterStateRepo(s.q)
	timeNow = func() time.Time { return time.Unix(1700000000, 0) }
}

func (s *filterStateSuite) TearDownTest() {
	timeNow = time.Now
}

func (s *filterStateSuite) TestSave() {
	f := listing.DefaultFilter()
	f.ProvinceCode = "79"

	s.q.On("Upsert", mock.Anything, domain.TableFilterStates, bson.M{"key": "0xabc"}, filterState{
		Key:       "0xabc",
		Filter:    f,
		UpdatedAt: time.Unix(1700000000, 0).UTC(),
	}).Return(nil).Once()

	s.NoError(s.repo.Save(s.ctx, "0xabc", f))
}

func (s *filterStateSuite) TestSaveEmptyKey() {
	s.ErrorIs(s.repo.Save(s.ctx, "", listing.DefaultFilter()), domain.ErrBadParamInput)
}

func (s *filterStateSuite) TestSaveFailed() {
	errDown := errors.New("mongo down")
	s.q.On("Upsert", mock.Anything, domain.TableFilterStates, mock.Anything, mock.Anything).Return(errDown).Once()

	s.ErrorIs(s.repo.Save(s.ctx, "sid", listing.DefaultFilter()), errDown)
}

func (s *filterStateSuite) TestGet() {
	s.q.On("FindOne", mock.Anything, domain.TableFilterStates, bson.M{"key": "sid"}, mock.Anything).
		Run(func(args mock.Arguments) {
			doc := args.Get(3).(*filterState)
			doc.Key = "sid"
			doc.Filter = listing.Filter{Size: 5, Quality: "A"}
		}).Return(nil).Once()

	f, err := s.repo.Get(s.ctx, "sid")
	s.Require().NoError(err)
	s.Equal("A", f.Quality)
	s.Equal(5, f.Size)
}

func (s *filterStateSuite) TestGetNotFound() {
	s.q.On("FindOne", mock.Anything, domain.TableFilterStates, mock.Anything, mock.Anything).Return(query.ErrNotFound).Once()

	f, err := s.repo.Get(s.ctx, "sid")
	s.Nil(f)
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *filterStateSuite) TestRemove() {
	s.q.On("Remove", mock.Anything, domain.TableFilterStates, bson.M{"key": "sid"}).Return(nil).Once()
	s.NoError(s.repo.Remove(s.ctx, "sid"))

	s.q.On("Remove", mock.Anything, domain.TableFilterStates, bson.M{"key": "gone"}).Return(query.ErrNotFound).Once()
	s.NoError(s.repo.Remove(s.ctx, "gone"))
}
