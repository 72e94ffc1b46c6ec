package primitive

import (
	"time"

	"github.com/coocood/freecache"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/service/cache/provider"
)

type impl struct {
	name  string
	cache *freecache.Cache
}

// NewPrimitive is an in-process cache of size MB. Expiry has a one second resolution.
func NewPrimitive(name string, size int) provider.Provider {
	return &impl{name, freecache.NewCache(size * 1024 * 1024)}
}

func (im *impl) Get(c ctx.Ctx, key string) ([]byte, time.Duration, error) {
	val, expireAt, err := im.cache.GetWithExpiration([]byte(key))
	if err == freecache.ErrNotFound {
		return nil, 0, provider.ErrNotFound
	} else if err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Get failed")
		return nil, 0, err
	}
	if expireAt == 0 {
		return val, 0, nil
	}
	ttl := time.Until(time.Unix(int64(expireAt), 0))
	if ttl < time.Second {
		ttl = time.Second
	}
	return val, ttl, nil
}

func (im *impl) Set(c ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	seconds := int(ttl.Seconds())
	if ttl > 0 && seconds == 0 {
		seconds = 1
	}
	if err := im.cache.Set([]byte(key), value, seconds); err != nil {
		c.WithFields(log.Fields{"err": err, "key": key, "cache": im.name}).Error("cache.Set failed")
		return err
	}
	return nil
}

func (im *impl) Del(c ctx.Ctx, key string) error {
	im.cache.Del([]byte(key))
	return nil
}
