package addressbook

import (
	"github.com/vortex-fintech/go-addressbook/domain"
	"github.com/vortex-fintech/go-addressbook/logger"
	"github.com/vortex-fintech/go-addressbook/metrics"
	"github.com/vortex-fintech/go-addressbook/timeutil"
)

type Option func(*AddressBook)

func WithLogger(l logger.LoggerInterface) Option {
	return func(b *AddressBook) {
		if l != nil {
			b.log = l
		}
	}
}

// WithEvents records a domain.ContactEvent into buf for every change.
func WithEvents(buf *domain.EventBuffer) Option {
	return func(b *AddressBook) { b.events = buf }
}

func WithMetrics(m *metrics.BookMetrics) Option {
	return func(b *AddressBook) { b.metrics = m }
}

func WithClock(c timeutil.Clock) Option {
	return func(b *AddressBook) {
		if c != nil {
			b.clock = c
		}
	}
}
