package cache

import (
	"errors"
	"time"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/service/cache/provider"
)

var (
	ErrNotFound = errors.New("Cache not found")
)

// OneTimeGetter loads the value on a miss. It must return a pointer of the container's type.
type OneTimeGetter func() (interface{}, error)

type Serializer func(interface{}) ([]byte, error)

type Deserializer func([]byte, interface{}) error

// Service is a typed read-through cache over a raw provider
type Service interface {
	GetByFunc(c ctx.Ctx, key string, container interface{}, getter OneTimeGetter) error
	Get(c ctx.Ctx, key string, container interface{}) error
	Set(c ctx.Ctx, key string, value interface{}) error
	Del(c ctx.Ctx, key string) error
}

type ServiceConfig struct {
	Ttl         time.Duration
	Pfx         string
	Cache       provider.Provider
	Serialize   Serializer
	Deserialize Deserializer
}
