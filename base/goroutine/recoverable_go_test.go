package goroutine

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRecoverableGo(t *testing.T) {
	req := require.New(t)
	res := []string{}

	ev := <-RecoverableGo(
		func() {
			res = append(res, "run task")
			panic("panic")
		},
		WithName("test"),
		WithBeforeStart(func() {
			res = append(res, "before start")
		}),
		WithAfterEnded(func() {
			res = append(res, "after ended")
		}),
		WithAfterRecovered(func(p interface{}, stack []byte) {
			res = append(res, "after recovered")
			res = append(res, p.(string))
		}),
	)

	req.NotNil(ev)
	req.Equal("panic", ev.Panic)
	req.Equal([]string{
		"before start",
		"run task",
		"after ended",
		"after recovered",
		"panic",
	}, res)
}

func TestRecoverableGoNoPanic(t *testing.T) {
	req := require.New(t)
	done := false
	ev, ok := <-RecoverableGo(func() { done = true })
	req.Nil(ev)
	req.False(ok)
	req.True(done)
}
