package domain

import (
	"errors"
	"fmt"
	"reflect"
)

// EventBuffer collects validated events until the owner pulls them. It is not
// safe for concurrent use; it belongs to a single AddressBook.
type EventBuffer struct {
	events []Event
}

// Record validates e and appends it. Nil events and events failing their own
// Validate are rejected with an error wrapping ErrInvalidEvent.
func (b *EventBuffer) Record(e Event) error {
	if isNilEvent(e) {
		return fmt.Errorf("%w: %w", ErrInvalidEvent, ErrInvalidEventNil)
	}

	v, ok := e.(interface{ Validate() error })
	if !ok {
		return fmt.Errorf("%w: event %q has no Validate", ErrInvalidEvent, e.EventName())
	}
	if err := v.Validate(); err != nil {
		if errors.Is(err, ErrInvalidEvent) {
			return err
		}
		return fmt.Errorf("%w: %w", ErrInvalidEvent, err)
	}

	b.events = append(b.events, e)
	return nil
}

// Pull returns buffered events in record order and empties the buffer.
func (b *EventBuffer) Pull() []Event {
	if len(b.events) == 0 {
		return nil
	}
	out := b.events
	b.events = nil
	return out
}

func (b *EventBuffer) Len() int { return len(b.events) }

func isNilEvent(e Event) bool {
	if e == nil {
		return true
	}
	v := reflect.ValueOf(e)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice:
		return v.IsNil()
	default:
		return false
	}
}
