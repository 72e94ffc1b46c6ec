package notify

import (
	"github.com/anft-xyz/goapi/base/ctx"
	"github.com/anft-xyz/goapi/domain/listing"
)

type logNotifier struct{}

// NewLogNotifier writes notices to the request logger
func NewLogNotifier() listing.Notifier {
	return &logNotifier{}
}

func (n *logNotifier) Notify(c ctx.Ctx, level listing.NoticeLevel, message string) {
	l := c.WithField("notice", message)
	if level == listing.NoticeError {
		l.Error("notify")
		return
	}
	l.Info("notify")
}

type multi []listing.Notifier

// Multi fans a notice out to every notifier in order
func Multi(notifiers ...listing.Notifier) listing.Notifier {
	res := multi{}
	for _, n := range notifiers {
		if n != nil {
			res = append(res, n)
		}
	}
	return res
}

func (m multi) Notify(c ctx.Ctx, level listing.NoticeLevel, message string) {
	for _, n := range m {
		n.Notify(c, level, message)
	}
}
