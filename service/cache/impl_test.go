package cache

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/keys"
	"github.com/anft-xyz/goapi/service/cache/provider"
	"github.com/anft-xyz/goapi/service/cache/provider/primitive"
)

var (
	mockCtx = ctx.Background()
)

type value struct {
	Value string `json:"value"`
}

type testsuite struct {
	suite.Suite
	im    *impl
	cache provider.Provider
}

func (ts *testsuite) SetupTest() {
	ts.cache = primitive.NewPrimitive("test", 1)
	ts.im = New(ServiceConfig{
		Ttl:   time.Minute,
		Pfx:   keys.PfxListing,
		Cache: ts.cache,
	}).(*impl)
}

func Test(t *testing.T) {
	suite.Run(t, new(testsuite))
}

func (ts *testsuite) TestGet() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))

	sv, err := json.Marshal(v)
	ts.NoError(err)
	ts.NoError(ts.cache.Set(mockCtx, keys.RedisKey(keys.PfxListing, k), sv, time.Minute))
	ts.NoError(ts.im.Get(mockCtx, k, c))
	ts.Equal(v, *c)
}

func (ts *testsuite) TestSetDel() {
	var (
		k = "key"
		v = value{"value"}
		c = &value{}
	)

	ts.NoError(ts.im.Set(mockCtx, k, v))

	sv, _, err := ts.cache.Get(mockCtx, keys.RedisKey(keys.PfxListing, k))
	ts.NoError(err)
	ts.NoError(json.Unmarshal(sv, c))
	ts.Equal(v, *c)

	ts.NoError(ts.im.Del(mockCtx, k))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, k, c))
}

func (ts *testsuite) TestGetByFunc() {
	var (
		k     = "key"
		v     = value{"value"}
		calls = 0
	)
	getter := func() (interface{}, error) {
		calls++
		return &v, nil
	}

	c := &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)

	c = &value{}
	ts.NoError(ts.im.GetByFunc(mockCtx, k, c, getter))
	ts.Equal(v, *c)
	ts.Equal(1, calls)
}

func (ts *testsuite) TestGetByFuncGetterFailed() {
	errBoom := errors.New("boom")
	c := &value{}
	ts.Equal(errBoom, ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return nil, errBoom
	}))
	ts.Equal(ErrNotFound, ts.im.Get(mockCtx, "key", c))
}

func (ts *testsuite) TestGetByFuncTypeMismatch() {
	c := &value{}
	ts.Error(ts.im.GetByFunc(mockCtx, "key", c, func() (interface{}, error) {
		return "value", nil
	}))
}
