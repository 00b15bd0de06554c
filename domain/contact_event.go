package domain

import (
	"slices"
	"time"
)

// Address book event names.
const (
	EventContactAdded   = "contact.added"
	EventContactEdited  = "contact.edited"
	EventContactDeleted = "contact.deleted"
	EventBookSorted     = "addressbook.sorted"
)

const Producer = "addressbook"

// ContactEvent reports a change to the address book. Subject is the contact's
// "first last" name, or the sort key for EventBookSorted. Fields lists the
// labels changed by an edit.
type ContactEvent struct {
	BaseEvent
	Subject string
	Fields  []string
}

func NewContactEvent(name, subject string, at time.Time, fields ...string) (ContactEvent, error) {
	base, err := NewBaseEvent(name, Producer, at)
	if err != nil {
		return ContactEvent{}, err
	}
	return ContactEvent{BaseEvent: base, Subject: subject, Fields: slices.Clone(fields)}, nil
}
