package ctx

import (
	"context"
	"time"

	log "github.com/anft-xyz/goapi/base/log"
)

const (
	KeyRequestId = "requestId"
	KeySessionId = "sessionId"
)

type Ctx struct {
	context.Context
	log.Logger
}

func Background() Ctx {
	return Ctx{
		Context: context.Background(),
		Logger:  log.Log(),
	}
}

func Todo() Ctx {
	return Ctx{
		Context: context.TODO(),
		Logger:  log.Log(),
	}
}

// Detach keeps the logger fields and values of parent but drops its deadline and cancellation,
// for work that outlives the request that started it.
func Detach(parent Ctx) Ctx {
	return Ctx{
		Context: detached{parent.Context},
		Logger:  parent.Logger,
	}
}

func WithValue(parent Ctx, key string, val interface{}) Ctx {
	return Ctx{
		Context: context.WithValue(parent, key, val),
		Logger:  parent.Logger.WithField(key, val),
	}
}

func WithValues(parent Ctx, kvs map[string]interface{}) Ctx {
	c := parent
	for k, v := range kvs {
		c = WithValue(c, k, v)
	}
	return c
}

func WithCancel(parent Ctx) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

func WithTimeout(parent Ctx, timeout time.Duration) (Ctx, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(parent, timeout)
	return Ctx{
		Context: ctx,
		Logger:  parent.Logger,
	}, cancel
}

// SessionId returns the session bound by WithValue(ctx, KeySessionId, id), or "".
func SessionId(c context.Context) string {
	id, _ := c.Value(KeySessionId).(string)
	return id
}

type detached struct {
	parent context.Context
}

func (detached) Deadline() (time.Time, bool)         { return time.Time{}, false }
func (detached) Done() <-chan struct{}               { return nil }
func (detached) Err() error                          { return nil }
func (d detached) Value(key interface{}) interface{} { return d.parent.Value(key) }
