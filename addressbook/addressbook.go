// Package addressbook keeps an ordered, in-memory collection of validated contacts.
//
// An AddressBook is owned by a single caller and is not safe for concurrent use.
// Lookup and duplicate results are reported as outcomes; only field validation
// produces errors.
package addressbook

import (
	"slices"
	"strings"

	"github.com/vortex-fintech/go-addressbook/contact"
	"github.com/vortex-fintech/go-addressbook/domain"
	"github.com/vortex-fintech/go-addressbook/logger"
	"github.com/vortex-fintech/go-addressbook/metrics"
	"github.com/vortex-fintech/go-addressbook/piiutil"
	"github.com/vortex-fintech/go-addressbook/timeutil"
)

// AddressBook is an ordered collection of contacts, in insertion order until
// one of the Sort methods reorders it.
type AddressBook struct {
	contacts []contact.Contact

	log     logger.LoggerInterface
	events  *domain.EventBuffer
	metrics *metrics.BookMetrics
	clock   timeutil.Clock
}

// New returns an empty book. Without options it logs nothing, records no
// events or metrics and stamps time with the system UTC clock.
func New(opts ...Option) *AddressBook {
	b := &AddressBook{
		log:   logger.Nop(),
		clock: timeutil.UTCClock{},
	}
	for _, opt := range opts {
		opt(b)
	}
	b.metrics.SetContacts(0)
	return b
}

// Add appends c unless a contact with exactly the same first and last name
// (case-sensitive) is already stored. A zero Contact, one not built by
// contact.New, is rejected as Invalid.
func (b *AddressBook) Add(c contact.Contact) AddOutcome {
	if c.IsZero() {
		b.log.Infow("contact rejected", "error", "zero contact")
		b.metrics.Observe("add", Invalid.String())
		return Invalid
	}
	for _, existing := range b.contacts {
		if existing.FirstName() == c.FirstName() && existing.LastName() == c.LastName() {
			b.log.Infow("duplicate contact rejected", "contact", c.FullName())
			b.metrics.Observe("add", DuplicateRejected.String())
			return DuplicateRejected
		}
	}

	b.contacts = append(b.contacts, c)
	b.log.Debugw("contact added",
		"contact", c.FullName(),
		"city", c.City(),
		"phone", piiutil.MaskPhone(c.Phone()),
		"email", piiutil.MaskEmail(c.Email()),
	)
	b.metrics.Observe("add", Added.String())
	b.metrics.SetContacts(len(b.contacts))
	b.record(domain.EventContactAdded, c.FullName())
	return Added
}

// AddFields validates f and adds the resulting contact. A validation error
// leaves the book unchanged.
func (b *AddressBook) AddFields(f contact.Fields) (AddOutcome, error) {
	c, err := contact.New(f)
	if err != nil {
		b.log.Infow("contact rejected", "error", err)
		b.metrics.Observe("add", Invalid.String())
		return Invalid, err
	}
	return b.Add(c), nil
}

// Find looks up a contact by first and last name, ignoring case. The first
// match in current order wins.
func (b *AddressBook) Find(firstName, lastName string) (contact.Contact, bool) {
	i := b.indexFold(firstName, lastName)
	if i < 0 {
		return contact.Contact{}, false
	}
	return b.contacts[i], true
}

// Edit locates a contact the way Find does and applies p field by field. The
// first invalid field aborts the edit and is returned with EditInvalid; fields
// applied before it stay changed. An empty patch succeeds without changes.
func (b *AddressBook) Edit(firstName, lastName string, p contact.Patch) (EditOutcome, error) {
	i := b.indexFold(firstName, lastName)
	if i < 0 {
		b.log.Infow("contact not found", "op", "edit", "contact", firstName+" "+lastName)
		b.metrics.Observe("edit", EditNotFound.String())
		return EditNotFound, nil
	}

	c := &b.contacts[i]
	name := c.FullName()
	changed, err := c.Apply(p)
	if len(changed) > 0 {
		b.record(domain.EventContactEdited, name, changed...)
	}
	if err != nil {
		b.log.Infow("contact edit aborted", "contact", name, "applied", changed, "error", err)
		b.metrics.Observe("edit", EditInvalid.String())
		return EditInvalid, err
	}

	b.log.Debugw("contact edited", "contact", name, "fields", changed)
	b.metrics.Observe("edit", Edited.String())
	return Edited, nil
}

// Delete removes the first contact whose first and last name match exactly.
func (b *AddressBook) Delete(firstName, lastName string) DeleteOutcome {
	i := slices.IndexFunc(b.contacts, func(c contact.Contact) bool {
		return c.FirstName() == firstName && c.LastName() == lastName
	})
	if i < 0 {
		b.log.Infow("contact not found", "op", "delete", "contact", firstName+" "+lastName)
		b.metrics.Observe("delete", DeleteNotFound.String())
		return DeleteNotFound
	}

	name := b.contacts[i].FullName()
	b.contacts = slices.Delete(b.contacts, i, i+1)
	b.log.Debugw("contact deleted", "contact", name)
	b.metrics.Observe("delete", Deleted.String())
	b.metrics.SetContacts(len(b.contacts))
	b.record(domain.EventContactDeleted, name)
	return Deleted
}

func (b *AddressBook) Count() int { return len(b.contacts) }

// Contacts returns a copy of the stored contacts in current order.
func (b *AddressBook) Contacts() []contact.Contact {
	return slices.Clone(b.contacts)
}

func (b *AddressBook) indexFold(firstName, lastName string) int {
	return slices.IndexFunc(b.contacts, func(c contact.Contact) bool {
		return strings.EqualFold(c.FirstName(), firstName) && strings.EqualFold(c.LastName(), lastName)
	})
}

func (b *AddressBook) record(name, subject string, fields ...string) {
	if b.events == nil {
		return
	}
	e, err := domain.NewContactEvent(name, subject, b.clock.Now(), fields...)
	if err != nil {
		b.log.Errorw("cannot build event", "event", name, "error", err)
		return
	}
	if err := b.events.Record(e); err != nil {
		b.log.Errorw("event rejected", "event", name, "error", err)
	}
}
