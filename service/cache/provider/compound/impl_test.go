package compound

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/service/cache/provider"
	"github.com/anft-xyz/goapi/service/cache/provider/primitive"
	redisProvider "github.com/anft-xyz/goapi/service/cache/provider/redis"
	"github.com/anft-xyz/goapi/service/redis"
	"github.com/anft-xyz/goapi/service/redis/mocks"
)

var (
	mockCtx = ctx.Background()
)

type testsuite struct {
	suite.Suite
	local  provider.Provider
	shared *mocks.Service
	im     *impl
}

func (ts *testsuite) SetupTest() {
	ts.local = primitive.NewPrimitive("local", 1)
	ts.shared = &mocks.Service{}
	ts.im = NewCompound([]provider.Provider{ts.local, redisProvider.NewRedis(ts.shared)}).(*impl)
}

func (ts *testsuite) TearDownTest() {
	ts.shared.AssertExpectations(ts.T())
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestSet() {
	v := []byte("value")
	ts.shared.On("Set", mock.Anything, "k", v, time.Minute).Return(nil).Once()

	ts.NoError(ts.im.Set(mockCtx, "k", v, time.Minute))
	r, _, err := ts.local.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal(v, r)
}

func (ts *testsuite) TestLocalHit() {
	ts.NoError(ts.local.Set(mockCtx, "k", []byte("local"), time.Minute))

	r, _, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("local"), r)
	ts.shared.AssertNotCalled(ts.T(), "Get", mock.Anything, mock.Anything)
}

func (ts *testsuite) TestSharedHitBackFills() {
	ts.shared.On("Get", mock.Anything, "k").Return([]byte("shared"), nil).Once()
	ts.shared.On("TTL", mock.Anything, "k").Return(30, nil).Once()

	r, ttl, err := ts.im.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("shared"), r)
	ts.Equal(30*time.Second, ttl)

	r, _, err = ts.local.Get(mockCtx, "k")
	ts.NoError(err)
	ts.Equal([]byte("shared"), r)
}

func (ts *testsuite) TestMiss() {
	ts.shared.On("Get", mock.Anything, "k").Return(nil, redis.ErrNotFound).Once()

	_, _, err := ts.im.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}

func (ts *testsuite) TestSharedError() {
	ts.shared.On("Get", mock.Anything, "k").Return(nil, errors.New("conn refused")).Once()

	_, _, err := ts.im.Get(mockCtx, "k")
	ts.EqualError(err, "conn refused")
}

func (ts *testsuite) TestDel() {
	ts.NoError(ts.local.Set(mockCtx, "k", []byte("v"), time.Minute))
	ts.shared.On("Del", mock.Anything, "k").Return(1, nil).Once()

	ts.NoError(ts.im.Del(mockCtx, "k"))
	_, _, err := ts.local.Get(mockCtx, "k")
	ts.Equal(provider.ErrNotFound, err)
}
