package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/anft-xyz/goapi/base/ctx"
)

// Forever stores a key without expiry
const Forever = time.Duration(-1)

var (
	ErrNotFound = redis.ErrNil
	ErrNoTTL    = errors.New("key has no ttl")
	ErrGapTime  = errors.New("redis pool unavailable")
)

// Service is the subset of redis commands used by the cache and health check
type Service interface {
	Get(context ctx.Ctx, key string) ([]byte, error)
	GetZip(context ctx.Ctx, key string) ([]byte, error)
	Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	SetZip(context ctx.Ctx, key string, val []byte, expire time.Duration) error
	Del(context ctx.Ctx, ks ...string) (int, error)
	TTL(context ctx.Ctx, key string) (int, error)
	Ping(context ctx.Ctx) error
}
