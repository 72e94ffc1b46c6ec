package session

import (
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/listing"
)

type notifier struct {
	reg  *Registry
	next listing.Notifier
}

// NewNotifier queues notices on the store of the session bound to the context and forwards them
// to next, which may be nil.
func NewNotifier(reg *Registry, next listing.Notifier) listing.Notifier {
	return &notifier{reg: reg, next: next}
}

func (n *notifier) Notify(c ctx.Ctx, level listing.NoticeLevel, message string) {
	if s, ok := n.reg.Lookup(ctx.SessionId(c)); ok && !s.Closed() {
		s.store.PushNotice(level, message)
	}
	if n.next != nil {
		n.next.Notify(c, level, message)
	}
}
