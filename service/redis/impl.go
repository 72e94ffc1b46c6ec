package redis

import (
	"bytes"
	"compress/gzip"
	"fmt"
	"io/ioutil"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/base/metrics"
	"github.com/anft-xyz/goapi/domain/keys"
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	// retTTLNoExpire is the return value of TTL when the key exists but has
	// no associated expire
	retTTLNoExpire = -1
)

var (
	delBatchSize = 100
)

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// New redis pool
func New(name string, metrics metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   metrics,
		pools: pools,
	}
}

func (r *redImpl) getConn() (redis.Conn, error) {
	defer r.met.BumpTime("getconn.time", "cluster", r.name).End()

	if r.pools == nil || r.pools.Src == nil {
		return nil, ErrGapTime
	}

	conn := r.pools.Src.Get()
	if err := conn.Err(); err != nil {
		r.met.BumpSum("getConn.err", 1, "cluster", r.name, "reason", err.Error())
		return nil, err
	}
	return conn, nil
}

func (r *redImpl) connDo(context ctx.Ctx, commandName string, args ...interface{}) (interface{}, error) {
	conn, err := r.getConn()
	if err != nil {
		return nil, err
	}

	reply, err := conn.Do(commandName, args...)

	// release the connection to the pool as soon as the reply is read
	if err := conn.Close(); err != nil {
		r.met.BumpSum("conn.Close.err", 1, "cluster", r.name)
	}
	return reply, err
}

func (r *redImpl) get(context ctx.Ctx, key string, zip bool) ([]byte, error) {
	funcName := "get"
	if zip {
		funcName = "getzip"
	}
	tags := []string{
		"func", funcName,
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()

	val, err := redis.Bytes(r.connDo(context, "GET", key))
	if err != nil {
		return nil, err
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)
	if !zip {
		return val, nil
	}

	rb, err := gzip.NewReader(bytes.NewBuffer(val))
	if err != nil {
		// stored before compression was turned on
		context.WithField("err", err).Warn("new gzip reader failed")
		return val, nil
	}
	defer rb.Close()
	return ioutil.ReadAll(rb)
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	return r.get(context, key, false)
}

func (r *redImpl) GetZip(context ctx.Ctx, key string) ([]byte, error) {
	return r.get(context, key, true)
}

func (r *redImpl) set(context ctx.Ctx, key string, val []byte, expire time.Duration, zip bool) error {
	funcName := "set"
	if zip {
		funcName = "setzip"
	}
	tags := []string{
		"func", funcName,
		"cluster", r.name,
		"prefix", keys.GetPrefix(key),
	}
	defer r.met.BumpTime("time", tags...).End()

	if zip {
		buf := &bytes.Buffer{}
		writer := gzip.NewWriter(buf)
		if _, err := writer.Write(val); err != nil {
			return err
		}
		if err := writer.Close(); err != nil {
			return err
		}
		val = buf.Bytes()
	}
	r.met.BumpHistogram("bytes", float64(len(val)), tags...)

	var err error
	if expire == Forever {
		r.met.BumpSum("ttl.forever", 1, tags...)
		_, err = r.connDo(context, "SET", key, val)
	} else {
		r.met.BumpAvg("ttl", expire.Seconds(), tags...)
		_, err = r.connDo(context, "SET", key, val, "PX", int(expire/time.Millisecond))
	}
	if err != nil {
		context.WithField("err", err).Error("set redis failed")
	}
	return err
}

func (r *redImpl) Set(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	return r.set(context, key, val, expire, false)
}

func (r *redImpl) SetZip(context ctx.Ctx, key string, val []byte, expire time.Duration) error {
	return r.set(context, key, val, expire, true)
}

func (r *redImpl) Del(context ctx.Ctx, ks ...string) (int, error) {
	if len(ks) == 0 {
		return 0, fmt.Errorf("length of keys is 0")
	}

	tags := []string{"func", "del", "cluster", r.name, "prefix", keys.GetPrefix(ks[0])}
	defer r.met.BumpTime("time", tags...).End()

	affected := 0
	for i := 0; i < len(ks); i += delBatchSize {
		end := i + delBatchSize
		if end > len(ks) {
			end = len(ks)
		}
		res, err := redis.Int(r.connDo(context, "DEL", redis.Args{}.AddFlat(ks[i:end])...))
		if err != nil {
			context.WithField("err", err).Error("DEL redis failed")
			return 0, err
		}
		affected += res
	}
	return affected, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int, error) {
	defer r.met.BumpTime("time", "func", "TTL", "cluster", r.name, "prefix", keys.GetPrefix(key)).End()
	res, err := redis.Int(r.connDo(context, "TTL", key))
	if err != nil {
		context.WithField("err", err).Error("TTL redis failed")
		return 0, err
	}

	if res == retTTLNoKey {
		return res, ErrNotFound
	} else if res == retTTLNoExpire {
		return res, ErrNoTTL
	}
	return res, nil
}

func (r *redImpl) Ping(context ctx.Ctx) error {
	defer r.met.BumpTime("time", "func", "ping", "cluster", r.name).End()
	_, err := redis.String(r.connDo(context, "PING"))
	return err
}
