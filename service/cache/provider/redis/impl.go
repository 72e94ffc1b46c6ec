package redis

import (
	"time"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/service/cache/provider"
	"github.com/anft-xyz/goapi/service/redis"
)

type impl struct {
	redis redis.Service
	zip   bool
}

func NewRedis(redis redis.Service) provider.Provider {
	return &impl{redis: redis}
}

// NewRedisZip stores values gzipped, for large bodies such as listing pages
func NewRedisZip(redis redis.Service) provider.Provider {
	return &impl{redis: redis, zip: true}
}

func (im *impl) get(c ctx.Ctx, key string) ([]byte, error) {
	if im.zip {
		return im.redis.GetZip(c, key)
	}
	return im.redis.Get(c, key)
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, err := im.get(c, key)
	if err == redis.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Get failed")
		return nil, 0, err
	}

	ttl, err := im.redis.TTL(c, key)
	switch err {
	case nil:
		return val, time.Duration(ttl) * time.Second, nil
	case redis.ErrNoTTL:
		return val, 0, nil
	case redis.ErrNotFound:
		// expired between GET and TTL
		return nil, 0, provider.ErrNotFound
	}
	c.WithField("err", err).WithField("key", key).Error("redis.TTL failed")
	return nil, 0, err
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	expire := ttl
	if expire <= 0 {
		expire = redis.Forever
	}
	set := im.redis.Set
	if im.zip {
		set = im.redis.SetZip
	}
	if err := set(c, key, value, expire); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	if _, err := im.redis.Del(c, key); err != nil {
		c.WithField("err", err).WithField("key", key).Error("redis.Del failed")
		return err
	}
	return nil
}
