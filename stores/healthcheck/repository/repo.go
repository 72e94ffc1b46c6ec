package repository

import (
	"time"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain"
	hcdomain "github.com/anft-xyz/goapi/domain/healthcheck"
	"github.com/anft-xyz/goapi/service/chain"
	"github.com/anft-xyz/goapi/service/query"
	"github.com/anft-xyz/goapi/service/redis"
)

const pingTimeout = 2 * time.Second

type impl struct {
	q          query.Mongo
	redisCache redis.Service
	chain      chain.Client
	chainId    domain.ChainId
}

// New creates new healthCheckRepo object representation of HealthCheckRepo interface. A nil
// chain client skips the chain ping.
func New(
	q query.Mongo,
	redisCache redis.Service,
	chain chain.Client,
	chainId domain.ChainId,
) hcdomain.HealthCheckRepo {
	return &impl{
		q:          q,
		redisCache: redisCache,
		chain:      chain,
		chainId:    chainId,
	}
}

func (im *impl) PingDB(context ctx.Ctx) error {
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if err := im.q.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping mongo error")
		return err
	}

	if err := im.redisCache.Ping(ctx); err != nil {
		context.WithField("err", err).Error("ping redis error")
		return err
	}
	return nil
}

func (im *impl) PingChain(context ctx.Ctx) error {
	if im.chain == nil {
		return nil
	}
	ctx, cancel := ctx.WithTimeout(context, pingTimeout)
	defer cancel()
	if _, err := im.chain.BlockNumber(ctx, int32(im.chainId)); err != nil {
		context.WithField("err", err).Error("ping chain error")
		return err
	}
	return nil
}
