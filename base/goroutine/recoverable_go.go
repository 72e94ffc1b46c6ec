package goroutine

import (
	"github.com/anft-xyz/goapi/base/log"
	"github.com/anft-xyz/goapi/base/utils"
)

type PanicEvent struct {
	Panic interface{}
	Stack []byte
}

type options struct {
	name           string
	beforeStart    func()
	afterEnded     func()
	afterRecovered func(panic interface{}, stack []byte)
}

type Option func(*options)

// WithName tags the panic log with the worker name
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

func WithBeforeStart(f func()) Option {
	return func(o *options) {
		o.beforeStart = f
	}
}

func WithAfterEnded(f func()) Option {
	return func(o *options) {
		o.afterEnded = f
	}
}

func WithAfterRecovered(f func(panic interface{}, stack []byte)) Option {
	return func(o *options) {
		o.afterRecovered = f
	}
}

// RecoverableGo runs f in a new goroutine. The returned channel receives the panic, if any,
// and is closed when f returns normally.
func RecoverableGo(f func(), opts ...Option) chan *PanicEvent {
	o := options{name: "anonymous"}
	for _, opt := range opts {
		opt(&o)
	}

	panicChan := make(chan *PanicEvent, 1)

	go func() {
		defer func() {
			if o.afterEnded != nil {
				o.afterEnded()
			}

			if p := recover(); p != nil {
				stack := utils.Stack(3)

				log.Log().WithFields(log.Fields{
					"err":    p,
					"worker": o.name,
					"stack":  string(stack),
				}).Error("panic")

				if o.afterRecovered != nil {
					o.afterRecovered(p, stack)
				}

				panicChan <- &PanicEvent{p, stack}
			} else {
				close(panicChan)
			}
		}()

		if o.beforeStart != nil {
			o.beforeStart()
		}

		f()
	}()

	return panicChan
}
